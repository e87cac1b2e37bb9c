// Package xref encodes references to elements that live in another model: a
// 16 byte model id followed by the 24 byte full key of the element, 40 bytes
// in all. Arrays of them are stored back to back with no length prefix.
package xref

import (
	"github.com/autodesk-tandem/tandem-keys/b64url"
	"github.com/autodesk-tandem/tandem-keys/elementkey"
	"github.com/autodesk-tandem/tandem-keys/kerr"
	"github.com/autodesk-tandem/tandem-keys/urn"
)

const (
	// ModelIDSize is the width of a model id.
	ModelIDSize = 16
	// Size is the width of one reference.
	Size = ModelIDSize + elementkey.FullSize
)

// ModelID is the binary form of a model id.
type ModelID [ModelIDSize]byte

// ParseModelID decodes a model id, dropping a urn prefix if it has one.
func ParseModelID(modelID string) (m ModelID, err error) {
	var b []byte
	if b, err = b64url.DecodeLen(urn.StripModel(modelID), ModelIDSize, "model id"); chk.D(err) {
		return
	}
	copy(m[:], b)
	return
}

// String is the model id without a prefix.
func (m ModelID) String() string { return b64url.Encode(m[:]) }

// URN is the model id with the model prefix.
func (m ModelID) URN() string { return urn.Model(m.String()) }

// Pair is a decoded reference.
type Pair struct {
	ModelID    string `json:"modelId" yaml:"modelId"`
	ElementKey string `json:"elementKey" yaml:"elementKey"`
}

// Ref is a reference with a full key of the usual width.
type Ref struct {
	Model ModelID
	Key   elementkey.Full
}

// Bytes is the 40 byte binary form of r.
func (r Ref) Bytes() []byte { return r.Append(make([]byte, 0, Size)) }

// Append writes the binary form of r to dst.
func (r Ref) Append(dst []byte) []byte {
	dst = append(dst, r.Model[:]...)
	return append(dst, r.Key[:]...)
}

func (r Ref) String() string { return b64url.Encode(r.Bytes()) }

// Pair is the text form of r.
func (r Ref) Pair() Pair { return Pair{ModelID: r.Model.String(), ElementKey: r.Key.String()} }

// NewRef decodes a model id and a full key.
func NewRef(modelID, fullKey string) (r Ref, err error) {
	if r.Model, err = ParseModelID(modelID); err != nil {
		return
	}
	if r.Key, err = elementkey.ParseFull(fullKey); err != nil {
		return
	}
	return
}

// ParseRef decodes a single 40 byte reference.
func ParseRef(xref string) (r Ref, err error) {
	var b []byte
	if b, err = b64url.DecodeLen(xref, Size, "xref key"); chk.D(err) {
		return
	}
	copy(r.Model[:], b)
	copy(r.Key[:], b[ModelIDSize:])
	return
}

// ToXrefKey joins a model id and an element key. The model id may carry a urn
// prefix. The element key is normally a full key, but is copied through at
// whatever width it decodes to.
func ToXrefKey(modelID, elementKey string) (xref string, err error) {
	var m ModelID
	if m, err = ParseModelID(modelID); err != nil {
		return
	}
	var k []byte
	if k, err = b64url.Decode(elementKey); chk.D(err) {
		return
	}
	b := make([]byte, 0, ModelIDSize+len(k))
	b = append(b, m[:]...)
	b = append(b, k...)
	return b64url.Encode(b), nil
}

// DecodeXrefKey splits a reference into its model id, without prefix, and
// the element key in whatever bytes follow it.
func DecodeXrefKey(xref string) (modelID, elementKey string, err error) {
	var b []byte
	if b, err = b64url.Decode(xref); chk.D(err) {
		return
	}
	if len(b) < ModelIDSize {
		err = kerr.Length("xref key", len(b), ModelIDSize)
		return
	}
	return b64url.Encode(b[:ModelIDSize]), b64url.Encode(b[ModelIDSize:]), nil
}

// ToXrefKeyArray encodes a list of references as one text. Every element key
// has to be a full key, otherwise the array could not be read back.
func ToXrefKeyArray(pairs []Pair) (text string, err error) {
	if len(pairs) == 0 {
		return
	}
	b := make([]byte, 0, len(pairs)*Size)
	var r Ref
	for i, p := range pairs {
		if r, err = NewRef(p.ModelID, p.ElementKey); err != nil {
			err = errorf.D("xref %d of %d: %w", i, len(pairs), err)
			return
		}
		b = r.Append(b)
	}
	return b64url.Encode(b), nil
}

// FromXrefKeyArray decodes a list of references. A trailing part shorter
// than a whole reference is dropped without error, so a result of N pairs
// does not prove the text held exactly N references.
func FromXrefKeyArray(text string) (pairs []Pair, err error) {
	var refs []Ref
	if refs, err = decodeArray(text, false); err != nil {
		return
	}
	return toPairs(refs), nil
}

// FromXrefKeyArrayStrict is FromXrefKeyArray but fails with an invalid length
// error when the text does not hold a whole number of references.
func FromXrefKeyArrayStrict(text string) (pairs []Pair, err error) {
	var refs []Ref
	if refs, err = decodeArray(text, true); err != nil {
		return
	}
	return toPairs(refs), nil
}

// ParseRefs decodes a list of references to their binary form, leniently.
func ParseRefs(text string) (refs []Ref, err error) { return decodeArray(text, false) }

func decodeArray(text string, strict bool) (refs []Ref, err error) {
	var b []byte
	if b, err = b64url.Decode(text); chk.D(err) {
		return
	}
	if rem := len(b) % Size; rem != 0 {
		if strict {
			err = kerr.Length("xref key array", len(b))
			return
		}
		log.D.F("dropping %d trailing bytes of xref key array", rem)
	}
	refs = make([]Ref, 0, len(b)/Size)
	for ; len(b) >= Size; b = b[Size:] {
		var r Ref
		copy(r.Model[:], b)
		copy(r.Key[:], b[ModelIDSize:Size])
		refs = append(refs, r)
	}
	return
}

func toPairs(refs []Ref) (pairs []Pair) {
	pairs = make([]Pair, len(refs))
	for i, r := range refs {
		pairs[i] = r.Pair()
	}
	return
}
