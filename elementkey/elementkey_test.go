package elementkey

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"lukechampine.com/frand"

	"github.com/autodesk-tandem/tandem-keys/b64url"
	"github.com/autodesk-tandem/tandem-keys/flags"
	"github.com/autodesk-tandem/tandem-keys/kerr"
)

var sample = []byte{
	0x01, 0x02, 0x03, 0x04, 0x05, 0x06, 0x07, 0x08, 0x09, 0x0a,
	0x0b, 0x0c, 0x0d, 0x0e, 0x0f, 0x10, 0x11, 0x12, 0x13, 0x14,
}

func randomShortKey() string { return b64url.Encode(frand.Bytes(IDSize)) }

func TestSampleElement(t *testing.T) {
	short := b64url.Encode(sample)
	full, err := ToFullKey(short, false)
	require.NoError(t, err)
	b, err := b64url.Decode(full)
	require.NoError(t, err)
	require.Equal(t, append([]byte{0, 0, 0, 0}, sample...), b)

	guid, err := ToElementGUID(short)
	require.NoError(t, err)
	require.Equal(t, "01020304-0506-0708-090a-0b0c0d0e0f10-11121314", guid)

	// the full key gives the same guid
	guid, err = ToElementGUID(full)
	require.NoError(t, err)
	require.Equal(t, "01020304-0506-0708-090a-0b0c0d0e0f10-11121314", guid)

	id, err := ParseID(short)
	require.NoError(t, err)
	require.Equal(t, uint32(0x11121314), id.SubIndex())
	require.Equal(t, "01020304-0506-0708-090a-0b0c0d0e0f10", id.UUID().String())
}

func TestToFullKeyToShortKey(t *testing.T) {
	var err error
	var full, short string
	for i := range 10000 {
		logical := i%2 == 0
		id := randomShortKey()
		if full, err = ToFullKey(id, logical); chk.E(err) {
			t.Fatal(err)
		}
		if short, err = ToShortKey(full); chk.E(err) {
			t.Fatal(err)
		}
		if short != id {
			t.Fatalf("round trip mismatch %s %s", id, short)
		}
		b, _ := b64url.Decode(full)
		want := []byte{0, 0, 0, 0}
		if logical {
			want[0] = 1
		}
		if !bytes.Equal(b[:4], want) {
			t.Fatalf("flags %x for logical=%v", b[:4], logical)
		}
		if l, _ := IsLogical(full); l != logical {
			t.Fatalf("IsLogical got %v want %v", l, logical)
		}
	}
}

func TestWrongLengths(t *testing.T) {
	full, err := ToFullKey(randomShortKey(), true)
	require.NoError(t, err)

	_, err = ToFullKey(full, true)
	require.True(t, kerr.IsLength(err), "%v", err)
	_, err = ToShortKey(randomShortKey())
	require.True(t, kerr.IsLength(err), "%v", err)
	_, err = ToElementGUID(b64url.Encode(make([]byte, 16)))
	require.True(t, kerr.IsLength(err), "%v", err)
	_, err = ToElementGUID("")
	require.True(t, kerr.IsLength(err), "%v", err)
	_, err = Flags(randomShortKey())
	require.True(t, kerr.IsLength(err), "%v", err)

	_, err = ToShortKey("not/base64")
	require.True(t, kerr.IsMalformed(err), "%v", err)
}

func TestGUID(t *testing.T) {
	var err error
	var guid, short string
	for range 10000 {
		id := randomShortKey()
		if guid, err = ToElementGUID(id); chk.E(err) {
			t.Fatal(err)
		}
		if len(guid) != 45 || strings.Count(guid, "-") != 5 || guid != strings.ToLower(guid) {
			t.Fatalf("bad guid text %s", guid)
		}
		if short, err = FromElementGUID(strings.ToUpper(guid)); chk.E(err) {
			t.Fatal(err)
		}
		if short != id {
			t.Fatalf("guid round trip mismatch %s %s", id, short)
		}
	}
}

func TestFromElementGUIDErrors(t *testing.T) {
	// a plain 16 byte guid has no sub-index
	_, err := FromElementGUID(uuid.NewString())
	require.True(t, kerr.IsLength(err), "%v", err)
	_, err = FromElementGUID("01020304-0506-0708-090a-0b0c0d0e0f10-1112131")
	require.True(t, kerr.IsMalformed(err), "%v", err)
	_, err = FromElementGUID("0102030g-0506-0708-090a-0b0c0d0e0f10-11121314")
	require.True(t, kerr.IsMalformed(err), "%v", err)
}

func TestNewElementKey(t *testing.T) {
	seen := make(map[string]struct{})
	for range 1000 {
		key, err := NewElementKey(flags.GenericAsset)
		require.NoError(t, err)
		f, err := ParseFull(key)
		require.NoError(t, err)
		require.Equal(t, flags.GenericAsset, f.Flags())
		require.Equal(t, uint32(0), f.ID().SubIndex())
		require.Equal(t, uuid.Version(4), f.ID().UUID().Version())
		_, dup := seen[key]
		require.False(t, dup, "duplicate key %s", key)
		seen[key] = struct{}{}
	}
}

func TestText(t *testing.T) {
	type row struct {
		Key    ID   `json:"k"`
		Parent Full `json:"p"`
	}
	var r row
	copy(r.Key[:], sample)
	r.Parent = r.Key.WithFlags(flags.Room)
	b, err := json.Marshal(r)
	require.NoError(t, err)
	var r2 row
	require.NoError(t, json.Unmarshal(b, &r2))
	require.Equal(t, r, r2)
	require.Equal(t, flags.Room, r2.Parent.Flags())

	require.Error(t, json.Unmarshal([]byte(`{"k":"AAAA"}`), &r2))
}
