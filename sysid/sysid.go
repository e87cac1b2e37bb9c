// Package sysid derives the short system id under which elements record
// their membership of a system (the column name in the systems family).
//
// The id is the big endian uint32 in the last 4 bytes of the system's full
// key, which is the sub-index of its element id, written as a minimal base
// 128 varint and rendered as unpadded base64url.
package sysid

import (
	"encoding/binary"
	"math"

	"github.com/autodesk-tandem/tandem-keys/b64url"
	"github.com/autodesk-tandem/tandem-keys/kerr"
	"github.com/autodesk-tandem/tandem-keys/varint"
)

// ValueSize is the number of trailing key bytes the id is taken from.
const ValueSize = 4

// MaxLen is the longest binary form of a system id.
const MaxLen = varint.MaxLen32

// Value returns the number behind the system id of a key.
func Value(fullKey string) (v uint32, err error) {
	var b []byte
	if b, err = b64url.Decode(fullKey); chk.D(err) {
		return
	}
	if len(b) < ValueSize {
		err = kerr.Length("system key", len(b), ValueSize)
		return
	}
	return binary.BigEndian.Uint32(b[len(b)-ValueSize:]), nil
}

// Encode renders a value as a system id.
func Encode(v uint32) string {
	var buf [MaxLen]byte
	return b64url.Encode(varint.Append(buf[:0], uint64(v)))
}

// ToSystemID returns the system id of a key. Normally the key is a full key
// but only its last 4 bytes are used.
func ToSystemID(fullKey string) (id string, err error) {
	var v uint32
	if v, err = Value(fullKey); err != nil {
		return
	}
	return Encode(v), nil
}

// FromSystemID recovers the value of a system id. Encodings that are not
// minimal, or that hold trailing bytes or more than 32 bits, are malformed.
func FromSystemID(id string) (v uint32, err error) {
	var b []byte
	if b, err = b64url.Decode(id); chk.D(err) {
		return
	}
	var u uint64
	var rem []byte
	if u, rem, err = varint.Read(b); chk.D(err) {
		return
	}
	if len(rem) > 0 {
		err = kerr.Malformed("system id", errorf.D("%d trailing bytes", len(rem)))
		return
	}
	if u > math.MaxUint32 {
		err = kerr.Malformed("system id", errorf.D("value %d overflows 32 bits", u))
		return
	}
	return uint32(u), nil
}
