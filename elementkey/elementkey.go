// Package elementkey converts between the short and full forms of element
// keys and the hyphenated GUID text used by design authoring tools.
//
// A short key is the base64url text of a 20 byte element id: a 16 byte
// unique id followed by a 4 byte sub-index. A full key is the same id
// prefixed by the 4 byte big endian flags word.
package elementkey

import (
	"encoding/binary"
	"strings"

	"github.com/google/uuid"

	"github.com/autodesk-tandem/tandem-keys/b64url"
	"github.com/autodesk-tandem/tandem-keys/flags"
	"github.com/autodesk-tandem/tandem-keys/hex"
	"github.com/autodesk-tandem/tandem-keys/kerr"
)

const (
	// UUIDSize is the width of the unique part of an element id.
	UUIDSize = 16
	// SubIndexSize is the width of the sub-index that follows it.
	SubIndexSize = 4
	// IDSize is the width of an element id, the binary form of a short key.
	IDSize = UUIDSize + SubIndexSize
	// FullSize is the width of the binary form of a full key.
	FullSize = flags.Size + IDSize
)

// guidGroups are the byte widths of the hyphen separated groups of the GUID
// text. The first five are the usual 8-4-4-4-12 layout, the last one is the
// sub-index.
var guidGroups = [...]int{4, 2, 2, 2, 6, 4}

// ID is an element id.
type ID [IDSize]byte

// Full is a flags word followed by an element id.
type Full [FullSize]byte

// ParseID decodes a short key.
func ParseID(shortKey string) (id ID, err error) {
	var b []byte
	if b, err = b64url.DecodeLen(shortKey, IDSize, "short key"); chk.D(err) {
		return
	}
	copy(id[:], b)
	return
}

// ParseFull decodes a full key.
func ParseFull(fullKey string) (f Full, err error) {
	var b []byte
	if b, err = b64url.DecodeLen(fullKey, FullSize, "full key"); chk.D(err) {
		return
	}
	copy(f[:], b)
	return
}

// ParseAny decodes either form of key to an element id, dropping the flags
// of a full key.
func ParseAny(key string) (id ID, err error) {
	var b []byte
	if b, err = b64url.Decode(key); chk.D(err) {
		return
	}
	switch len(b) {
	case FullSize:
		b = b[flags.Size:]
	case IDSize:
	default:
		err = kerr.Length("element key", len(b), IDSize, FullSize)
		return
	}
	copy(id[:], b)
	return
}

// String is the short key of id.
func (id ID) String() string { return b64url.Encode(id[:]) }

// UUID is the unique part of id.
func (id ID) UUID() (u uuid.UUID) {
	copy(u[:], id[:UUIDSize])
	return
}

// SubIndex is the big endian value of the trailing 4 bytes of id.
func (id ID) SubIndex() uint32 { return binary.BigEndian.Uint32(id[UUIDSize:]) }

// WithFlags prefixes id with a flags word.
func (id ID) WithFlags(w flags.Word) (f Full) {
	fw := w.Bytes()
	copy(f[:], fw[:])
	copy(f[flags.Size:], id[:])
	return
}

// Full prefixes id with the key flags for a logical or physical element.
func (id ID) Full(logical bool) Full { return id.WithFlags(flags.ForKey(logical)) }

// GUID renders id as lowercase hex in groups of 4-2-2-2-6-4 bytes.
func (id ID) GUID() string {
	b := make([]byte, 0, hex.EncLen(IDSize)+len(guidGroups)-1)
	var pos int
	for i, n := range guidGroups {
		if i > 0 {
			b = append(b, '-')
		}
		b = hex.EncAppend(b, id[pos:pos+n])
		pos += n
	}
	return string(b)
}

func (id ID) MarshalText() ([]byte, error) { return b64url.AppendEncode(nil, id[:]), nil }

func (id *ID) UnmarshalText(b []byte) (err error) {
	*id, err = ParseID(string(b))
	return
}

// String is the full key of f.
func (f Full) String() string { return b64url.Encode(f[:]) }

// Flags is the flags word of f.
func (f Full) Flags() flags.Word { return flags.Word(binary.BigEndian.Uint32(f[:flags.Size])) }

// ID is f without its flags word.
func (f Full) ID() (id ID) {
	copy(id[:], f[flags.Size:])
	return
}

func (f Full) MarshalText() ([]byte, error) { return b64url.AppendEncode(nil, f[:]), nil }

func (f *Full) UnmarshalText(b []byte) (err error) {
	*f, err = ParseFull(string(b))
	return
}

// ToFullKey prefixes a short key with the logical or physical key flags.
func ToFullKey(shortKey string, logical bool) (fullKey string, err error) {
	var id ID
	if id, err = ParseID(shortKey); err != nil {
		return
	}
	return id.Full(logical).String(), nil
}

// ToShortKey drops the flags word from a full key.
func ToShortKey(fullKey string) (shortKey string, err error) {
	var f Full
	if f, err = ParseFull(fullKey); err != nil {
		return
	}
	return f.ID().String(), nil
}

// ToElementGUID renders a short or full key as GUID text. Only keys of
// elements imported from a GUID based authoring tool give a meaningful
// result.
func ToElementGUID(key string) (guid string, err error) {
	var id ID
	if id, err = ParseAny(key); err != nil {
		return
	}
	return id.GUID(), nil
}

// ParseGUID reads GUID text, with or without hyphens, into an element id.
func ParseGUID(guid string) (id ID, err error) {
	var b []byte
	if b, err = hex.Dec(strings.ReplaceAll(guid, "-", "")); chk.D(err) {
		return
	}
	if len(b) != IDSize {
		err = kerr.Length("element guid", len(b), IDSize)
		return
	}
	copy(id[:], b)
	return
}

// FromElementGUID converts GUID text to a short key.
func FromElementGUID(guid string) (shortKey string, err error) {
	var id ID
	if id, err = ParseGUID(guid); err != nil {
		return
	}
	return id.String(), nil
}

// New creates an element id with a fresh random unique part and a zero
// sub-index.
func New() (id ID, err error) {
	var u uuid.UUID
	if u, err = uuid.NewRandom(); chk.E(err) {
		return
	}
	copy(id[:], u[:])
	return
}

// NewElementKey creates the full key of a new element with the given flags.
func NewElementKey(w flags.Word) (fullKey string, err error) {
	var id ID
	if id, err = New(); err != nil {
		return
	}
	return id.WithFlags(w).String(), nil
}

// Flags reads the flags word of a full key.
func Flags(fullKey string) (w flags.Word, err error) {
	var f Full
	if f, err = ParseFull(fullKey); err != nil {
		return
	}
	return f.Flags(), nil
}

// IsLogical reports whether a full key carries the logical bit.
func IsLogical(fullKey string) (logical bool, err error) {
	var w flags.Word
	if w, err = Flags(fullKey); err != nil {
		return
	}
	return w.IsLogical(), nil
}
