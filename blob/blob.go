// Package blob reads and writes the base64url wrapped text values that sit
// next to keys in element rows: JSON settings objects such as stream
// settings, and the urn strings of source documents.
package blob

import (
	"bytes"
	"encoding/json"
	"strings"
	"unicode/utf8"

	"github.com/autodesk-tandem/tandem-keys/b64url"
	"github.com/autodesk-tandem/tandem-keys/kerr"
)

// EncodeObject renders v as compact JSON wrapped in base64url.
func EncodeObject(v any) (text string, err error) {
	var b []byte
	if b, err = json.Marshal(v); chk.E(err) {
		return
	}
	return b64url.Encode(b), nil
}

// DecodeObject unwraps text and decodes the JSON inside it into v.
func DecodeObject(text string, v any) (err error) {
	var b []byte
	if b, err = b64url.Decode(text); chk.D(err) {
		return
	}
	dec := json.NewDecoder(bytes.NewReader(b))
	dec.UseNumber()
	if err = dec.Decode(v); err != nil {
		return kerr.Malformed("settings object", err)
	}
	return
}

// DecodeURN unwraps a base64url encoded urn.
func DecodeURN(text string) (u string, err error) {
	var b []byte
	if b, err = b64url.Decode(text); chk.D(err) {
		return
	}
	if !utf8.Valid(b) {
		err = kerr.Malformed("urn", errorf.D("not utf-8"))
		return
	}
	return string(b), nil
}

// EncodeURN wraps a urn in base64url.
func EncodeURN(u string) string { return b64url.Encode([]byte(u)) }

// ItemID maps the encoded urn of a model's source file version to the
// lineage id of the document item it belongs to, for example
// "urn:adsk.wipprod:fs.file:vf.X?version=2" to
// "urn:adsk.wipprod:dm.lineage:X".
func ItemID(text string) (id string, err error) {
	var u string
	if u, err = DecodeURN(text); err != nil {
		return
	}
	parts := strings.Split(u, ":")
	if len(parts) < 4 {
		err = kerr.Malformed("document urn", errorf.D("%q has %d parts", u, len(parts)))
		return
	}
	lineage := parts[3]
	if i := strings.Index(lineage, "?version="); i >= 0 {
		lineage = lineage[:i]
	}
	lineage = strings.TrimPrefix(lineage, "vf.")
	return parts[0] + ":" + parts[1] + ":dm.lineage:" + lineage, nil
}
