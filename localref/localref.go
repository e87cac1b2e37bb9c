// Package localref reads and writes lists of references to elements of the
// same model, such as the rooms an asset sits in. The list is the 20 byte
// element ids back to back, without flags and without a length prefix.
package localref

import (
	"github.com/autodesk-tandem/tandem-keys/b64url"
	"github.com/autodesk-tandem/tandem-keys/elementkey"
	"github.com/autodesk-tandem/tandem-keys/flags"
	"github.com/autodesk-tandem/tandem-keys/kerr"
)

// Stride is the width of one entry.
const Stride = elementkey.IDSize

// FromShortKeyArray decodes a list of references to element keys. With
// useFullKeys each key gets the logical or physical key flags in front,
// otherwise short keys are returned. A trailing part shorter than one entry
// is dropped without error.
func FromShortKeyArray(text string, useFullKeys, logical bool) (keys []string, err error) {
	var ids []elementkey.ID
	if ids, err = decode(text, false); err != nil {
		return
	}
	return render(ids, useFullKeys, logical), nil
}

// FromShortKeyArrayStrict is FromShortKeyArray but fails with an invalid
// length error when the text does not hold a whole number of entries.
func FromShortKeyArrayStrict(text string, useFullKeys, logical bool) (keys []string, err error) {
	var ids []elementkey.ID
	if ids, err = decode(text, true); err != nil {
		return
	}
	return render(ids, useFullKeys, logical), nil
}

// ParseIDs decodes a list of references to element ids, leniently.
func ParseIDs(text string) (ids []elementkey.ID, err error) { return decode(text, false) }

// ToShortKeyArray encodes a list of short or full keys as a reference list.
// The flags of full keys are not kept.
func ToShortKeyArray(keys []string) (text string, err error) {
	if len(keys) == 0 {
		return
	}
	b := make([]byte, 0, len(keys)*Stride)
	var id elementkey.ID
	for i, k := range keys {
		if id, err = elementkey.ParseAny(k); err != nil {
			err = errorf.D("key %d of %d: %w", i, len(keys), err)
			return
		}
		b = append(b, id[:]...)
	}
	return b64url.Encode(b), nil
}

// FromIDs encodes element ids as a reference list.
func FromIDs(ids []elementkey.ID) string {
	b := make([]byte, 0, len(ids)*Stride)
	for _, id := range ids {
		b = append(b, id[:]...)
	}
	return b64url.Encode(b)
}

func decode(text string, strict bool) (ids []elementkey.ID, err error) {
	var b []byte
	if b, err = b64url.Decode(text); chk.D(err) {
		return
	}
	if rem := len(b) % Stride; rem != 0 {
		if strict {
			err = kerr.Length("short key array", len(b))
			return
		}
		log.D.F("dropping %d trailing bytes of short key array", rem)
	}
	ids = make([]elementkey.ID, len(b)/Stride)
	for i := range ids {
		copy(ids[i][:], b[i*Stride:])
	}
	return
}

func render(ids []elementkey.ID, useFullKeys, logical bool) (keys []string) {
	keys = make([]string, len(ids))
	w := flags.ForKey(logical)
	for i, id := range ids {
		if useFullKeys {
			keys[i] = id.WithFlags(w).String()
		} else {
			keys[i] = id.String()
		}
	}
	return
}
