// Package b64url converts between raw bytes and the unpadded URL safe base64
// text that every key shaped field of the facility data protocol uses.
//
// Encoded text never carries '=' padding. Decoding accepts text with or
// without trailing padding but nothing outside the base64url alphabet.
package b64url

import (
	"encoding/base64"
	"strings"

	"github.com/autodesk-tandem/tandem-keys/kerr"
)

var enc = base64.RawURLEncoding

// Encode renders b as unpadded base64url.
func Encode(b []byte) string { return enc.EncodeToString(b) }

// AppendEncode appends the base64url form of src to dst.
func AppendEncode(dst, src []byte) []byte {
	l := len(dst)
	dst = append(dst, make([]byte, enc.EncodedLen(len(src)))...)
	enc.Encode(dst[l:], src)
	return dst
}

// Decode parses base64url text into a freshly allocated buffer.
func Decode(s string) (b []byte, err error) {
	if s, err = prepare(s); chk.D(err) {
		return
	}
	b = make([]byte, enc.DecodedLen(len(s)))
	var n int
	if n, err = enc.Decode(b, []byte(s)); err != nil {
		err = kerr.Malformed("base64url", err)
		log.D.Ln(err)
		return nil, err
	}
	b = b[:n]
	return
}

// AppendDecode appends the bytes encoded in src to dst.
func AppendDecode(dst []byte, src string) (b []byte, err error) {
	var raw []byte
	if raw, err = Decode(src); err != nil {
		return dst, err
	}
	return append(dst, raw...), nil
}

// DecodeLen decodes s and requires the result to be exactly want bytes long.
// what names the layout in the error.
func DecodeLen(s string, want int, what string) (b []byte, err error) {
	if b, err = Decode(s); err != nil {
		return
	}
	if len(b) != want {
		return nil, kerr.Length(what, len(b), want)
	}
	return
}

// EncodedLen is the length of the text form of n bytes.
func EncodedLen(n int) int { return enc.EncodedLen(n) }

// prepare strips padding and rejects anything outside the alphabet. A
// remainder of one character can never be produced by an encoder.
func prepare(s string) (string, error) {
	s = strings.TrimRight(s, "=")
	for i := 0; i < len(s); i++ {
		if !isAlphabet(s[i]) {
			return "", errorf.D("%w: base64url: illegal character %q at offset %d",
				kerr.ErrMalformedInput, s[i], i)
		}
	}
	if len(s)%4 == 1 {
		return "", errorf.D("%w: base64url: %d characters cannot be a whole number of bytes",
			kerr.ErrMalformedInput, len(s))
	}
	return s, nil
}

func isAlphabet(c byte) bool {
	switch {
	case c >= 'A' && c <= 'Z', c >= 'a' && c <= 'z', c >= '0' && c <= '9':
		return true
	case c == '-', c == '_':
		return true
	}
	return false
}
