package main

import (
	"github.com/autodesk-tandem/tandem-keys/b64url"
	"github.com/autodesk-tandem/tandem-keys/elementkey"
	"github.com/autodesk-tandem/tandem-keys/hex"
	"github.com/autodesk-tandem/tandem-keys/kerr"
	"github.com/autodesk-tandem/tandem-keys/localref"
	"github.com/autodesk-tandem/tandem-keys/sysid"
	"github.com/autodesk-tandem/tandem-keys/urn"
	"github.com/autodesk-tandem/tandem-keys/xref"
)

// Report describes a key. The layout is guessed from the decoded width.
type Report struct {
	Kind     string   `yaml:"kind"`
	Bytes    int      `yaml:"bytes"`
	Hex      string   `yaml:"hex,omitempty"`
	Flags    string   `yaml:"flags,omitempty"`
	Element  string   `yaml:"element,omitempty"`
	Logical  *bool    `yaml:"logical,omitempty"`
	ModelID  string   `yaml:"modelId,omitempty"`
	ShortKey string   `yaml:"shortKey,omitempty"`
	FullKey  string   `yaml:"fullKey,omitempty"`
	GUID     string   `yaml:"guid,omitempty"`
	SubIndex *uint32  `yaml:"subIndex,omitempty"`
	SystemID string   `yaml:"systemId,omitempty"`
	Entries  []Report `yaml:"entries,omitempty"`
}

// Inspect decodes key and describes it. Widths of 40 are read as a single
// xref key and widths of 20 as a single short key, so a two entry reference
// list shows up as an xref key.
func Inspect(key string) (r *Report, err error) {
	key = urn.StripModel(key)
	var b []byte
	if b, err = b64url.Decode(key); err != nil {
		return
	}
	switch n := len(b); {
	case n == xref.ModelIDSize:
		r = &Report{Kind: "model id", ModelID: key}
	case n == elementkey.IDSize:
		var id elementkey.ID
		copy(id[:], b)
		r = describeID(id)
	case n == elementkey.FullSize:
		var f elementkey.Full
		copy(f[:], b)
		r = describeFull(f)
	case n == xref.Size:
		var ref xref.Ref
		if ref, err = xref.ParseRef(key); err != nil {
			return
		}
		r = describeFull(ref.Key)
		r.Kind, r.ModelID = "xref key", ref.Model.String()
	case n > 0 && n%xref.Size == 0:
		var refs []xref.Ref
		if refs, err = xref.ParseRefs(key); err != nil {
			return
		}
		r = &Report{Kind: "xref key array"}
		for _, ref := range refs {
			e := describeFull(ref.Key)
			e.Kind, e.ModelID = "xref key", ref.Model.String()
			r.Entries = append(r.Entries, *e)
		}
	case n > 0 && n%localref.Stride == 0:
		var ids []elementkey.ID
		if ids, err = localref.ParseIDs(key); err != nil {
			return
		}
		r = &Report{Kind: "short key array"}
		for _, id := range ids {
			e := describeID(id)
			r.Entries = append(r.Entries, *e)
		}
	default:
		err = kerr.Length("key", n, xref.ModelIDSize, elementkey.IDSize, elementkey.FullSize, xref.Size)
		return
	}
	r.Bytes = len(b)
	if len(r.Entries) == 0 {
		r.Hex = hex.Enc(b)
	}
	return
}

func describeID(id elementkey.ID) *Report {
	sub := id.SubIndex()
	return &Report{
		Kind:     "short key",
		ShortKey: id.String(),
		GUID:     id.GUID(),
		SubIndex: &sub,
	}
}

func describeFull(f elementkey.Full) *Report {
	r := describeID(f.ID())
	w := f.Flags()
	logical := w.IsLogical()
	r.Kind = "full key"
	r.Flags = w.String()
	r.Element = w.Name()
	r.Logical = &logical
	r.FullKey = f.String()
	r.SystemID, _ = sysid.ToSystemID(r.FullKey)
	return r
}
