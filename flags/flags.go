// Package flags is the 4 byte word at the front of a full element key.
//
// The word is stored big endian. Its low bits say what sort of element the
// key names, and KeyLogical separates logical elements (levels, streams,
// systems, assets created in the facility) from physical ones that came from
// a design model.
package flags

import (
	"encoding/binary"
	"fmt"

	"github.com/autodesk-tandem/tandem-keys/kerr"
)

// Size is the width of a flags word in bytes.
const Size = 4

// Word is a flags word.
type Word uint32

const (
	KeyPhysical Word = 0x00000000
	KeyLogical  Word = 0x01000000
)

// Element flags stored in the n:a column.
const (
	SimpleElement   Word = 0x00000000
	NestedChild     Word = 0x00000001
	NestedParent    Word = 0x00000002
	CompositeChild  Word = 0x00000003
	CompositeParent Word = 0x00000004
	Room            Word = 0x00000005
	FamilyType      Word = 0x01000000
	Level           Word = 0x01000001
	DocumentRoot    Word = 0x01000002
	Stream          Word = 0x01000003
	System          Word = 0x01000004
	GenericAsset    Word = 0x01000005
	Ticket          Word = 0x01000006
)

var names = map[Word]string{
	SimpleElement:   "simple",
	NestedChild:     "nested-child",
	NestedParent:    "nested-parent",
	CompositeChild:  "composite-child",
	CompositeParent: "composite-parent",
	Room:            "room",
	FamilyType:      "family-type",
	Level:           "level",
	DocumentRoot:    "document-root",
	Stream:          "stream",
	System:          "system",
	GenericAsset:    "generic-asset",
	Ticket:          "ticket",
}

// ForKey returns the key flags for a logical or physical element.
func ForKey(logical bool) Word {
	if logical {
		return KeyLogical
	}
	return KeyPhysical
}

// IsLogical reports whether the logical bit is set.
func (w Word) IsLogical() bool { return w&KeyLogical != 0 }

// Append writes the big endian form of w to dst.
func (w Word) Append(dst []byte) []byte { return binary.BigEndian.AppendUint32(dst, uint32(w)) }

// Bytes is the big endian form of w.
func (w Word) Bytes() (b [Size]byte) {
	binary.BigEndian.PutUint32(b[:], uint32(w))
	return
}

// Name is the element category of w, or its hex value if it has none.
func (w Word) Name() string {
	if n, ok := names[w]; ok {
		return n
	}
	return w.String()
}

func (w Word) String() string { return fmt.Sprintf("0x%08x", uint32(w)) }

// Parse reads a flags word from the first Size bytes of b.
func Parse(b []byte) (w Word, err error) {
	if len(b) < Size {
		return 0, kerr.Length("flags word", len(b), Size)
	}
	return Word(binary.BigEndian.Uint32(b)), nil
}

// Lookup returns the element flags with the given name.
func Lookup(name string) (w Word, ok bool) {
	for w, n := range names {
		if n == name {
			return w, true
		}
	}
	return
}
