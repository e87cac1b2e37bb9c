// Package kerr holds the two failure kinds of the key codecs.
//
// Every error returned by a codec wraps exactly one of them, so callers branch
// with errors.Is and still get a message naming the offending width or
// character.
package kerr

import (
	"github.com/pkg/errors"
)

var (
	// ErrInvalidLength is a decoded buffer whose width does not match the
	// layout the operation requires.
	ErrInvalidLength = errors.New("invalid length")
	// ErrMalformedInput is text that is not base64url or not hex.
	ErrMalformedInput = errors.New("malformed input")
)

// Length returns an ErrInvalidLength naming what was decoded and what was
// wanted.
func Length(what string, got int, want ...int) error {
	switch len(want) {
	case 0:
		return errors.Wrapf(ErrInvalidLength, "%s: got %d bytes", what, got)
	case 1:
		return errors.Wrapf(ErrInvalidLength, "%s: got %d bytes require %d",
			what, got, want[0])
	default:
		return errors.Wrapf(ErrInvalidLength, "%s: got %d bytes require one of %v",
			what, got, want)
	}
}

// Malformed wraps cause as ErrMalformedInput. The cause text is kept in the
// message, the cause itself is not reachable through errors.Is.
func Malformed(what string, cause error) error {
	if cause == nil {
		return errors.Wrap(ErrMalformedInput, what)
	}
	return errors.Wrapf(ErrMalformedInput, "%s: %s", what, cause)
}

// IsLength reports whether err is an ErrInvalidLength.
func IsLength(err error) bool { return errors.Is(err, ErrInvalidLength) }

// IsMalformed reports whether err is an ErrMalformedInput.
func IsMalformed(err error) bool { return errors.Is(err, ErrMalformedInput) }
