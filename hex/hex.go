// Package hex is lowercase hexadecimal over the SIMD codec in xhex, with
// decode errors reported as malformed input.
package hex

import (
	"github.com/templexxx/xhex"

	"github.com/autodesk-tandem/tandem-keys/kerr"
)

// EncLen is the hex length of n bytes.
func EncLen(n int) int { return n * 2 }

// DecLen is the byte length of n hex characters.
func DecLen(n int) int { return n / 2 }

// Enc renders src as lowercase hex.
func Enc(src []byte) string { return string(EncAppend(nil, src)) }

// EncAppend appends the lowercase hex of src to dst.
func EncAppend(dst, src []byte) []byte {
	l := len(dst)
	dst = append(dst, make([]byte, EncLen(len(src)))...)
	xhex.Encode(dst[l:], src)
	return dst
}

// Dec parses hex text, either case.
func Dec(s string) (b []byte, err error) { return DecAppend(nil, []byte(s)) }

// DecAppend appends the bytes of the hex text src to dst. src is not
// modified.
func DecAppend(dst, src []byte) (b []byte, err error) {
	if len(src)%2 != 0 {
		err = kerr.Malformed("hex", errorf.D("odd length %d", len(src)))
		return dst, err
	}
	lower := make([]byte, len(src))
	for i, c := range src {
		switch {
		case c >= '0' && c <= '9', c >= 'a' && c <= 'f':
			lower[i] = c
		case c >= 'A' && c <= 'F':
			lower[i] = c + 'a' - 'A'
		default:
			err = kerr.Malformed("hex", errorf.D("invalid byte %q at offset %d", c, i))
			return dst, err
		}
	}
	l := len(dst)
	b = append(dst, make([]byte, DecLen(len(src)))...)
	if err = xhex.Decode(b[l:], lower); chk.D(err) {
		return dst, kerr.Malformed("hex", err)
	}
	return
}
