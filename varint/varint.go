// Package varint is the unsigned base 128 integer encoding used for system
// ids. Seven bits go in each byte, least significant group first, and every
// byte except the last has the high bit set. Zero encodes as a single 0x00.
//
// This is the same byte order as the stdlib binary.Uvarint, but the decoder
// here also rejects encodings that are not minimal, so that every value has
// exactly one text form.
package varint

import (
	"io"

	"github.com/autodesk-tandem/tandem-keys/kerr"
)

// MaxLen32 is the longest encoding of a 32 bit value.
const MaxLen32 = 5

// MaxLen64 is the longest encoding of a 64 bit value.
const MaxLen64 = 10

// Len returns the number of bytes v encodes to.
func Len(v uint64) (n int) {
	for n = 1; v >= 0x80; n++ {
		v >>= 7
	}
	return
}

// Append writes v to the end of dst.
func Append(dst []byte, v uint64) []byte {
	for v >= 0x80 {
		dst = append(dst, byte(v)|0x80)
		v >>= 7
	}
	return append(dst, byte(v))
}

// Encode writes v to w.
func Encode(w io.Writer, v uint64) (err error) {
	var buf [MaxLen64]byte
	_, err = w.Write(Append(buf[:0], v))
	return
}

// Decode reads a value from r one byte at a time.
func Decode(r io.Reader) (v uint64, err error) {
	x := []byte{0}
	for i := 0; ; i++ {
		if _, err = io.ReadFull(r, x); err != nil {
			if i > 0 && err == io.EOF {
				err = io.ErrUnexpectedEOF
			}
			return
		}
		if v, err = accumulate(v, x[0], i); err != nil {
			return
		}
		if x[0] < 0x80 {
			return
		}
	}
}

// Read decodes a value from the front of b and returns the bytes after it.
func Read(b []byte) (v uint64, rem []byte, err error) {
	for i, c := range b {
		if v, err = accumulate(v, c, i); err != nil {
			return
		}
		if c < 0x80 {
			rem = b[i+1:]
			return
		}
	}
	err = kerr.Malformed("varint", errorf.D("truncated after %d bytes", len(b)))
	return
}

// accumulate adds the group c at position i to v.
func accumulate(v uint64, c byte, i int) (uint64, error) {
	if i >= MaxLen64 || (i == MaxLen64-1 && c > 1) {
		return 0, kerr.Malformed("varint", errorf.D("overflows 64 bits"))
	}
	if i > 0 && c == 0 {
		return 0, kerr.Malformed("varint", errorf.D("not minimal, zero final group at %d", i))
	}
	return v | uint64(c&0x7f)<<(7*i), nil
}
