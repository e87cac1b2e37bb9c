package sysid

import (
	"encoding/binary"
	"math"
	"testing"

	"github.com/stretchr/testify/require"
	"lukechampine.com/frand"

	"github.com/autodesk-tandem/tandem-keys/b64url"
	"github.com/autodesk-tandem/tandem-keys/elementkey"
	"github.com/autodesk-tandem/tandem-keys/flags"
	"github.com/autodesk-tandem/tandem-keys/kerr"
)

func keyWithValue(v uint32) string {
	var id elementkey.ID
	frand.Read(id[:elementkey.UUIDSize])
	binary.BigEndian.PutUint32(id[elementkey.UUIDSize:], v)
	return id.WithFlags(flags.System).String()
}

func TestMinimalLength(t *testing.T) {
	for _, c := range []struct {
		v uint32
		n int
	}{
		{0, 1},
		{1, 1},
		{0x7f, 1},
		{0x80, 2},
		{0x3fff, 2},
		{0x4000, 3},
		{0x1fffff, 3},
		{0x200000, 4},
		{0xfffffff, 4},
		{0x10000000, 5},
		{math.MaxUint32, 5},
	} {
		id, err := ToSystemID(keyWithValue(c.v))
		require.NoError(t, err)
		b, err := b64url.Decode(id)
		require.NoError(t, err)
		require.Len(t, b, c.n, "value %#x", c.v)
		v, err := FromSystemID(id)
		require.NoError(t, err)
		require.Equal(t, c.v, v)
	}
}

func TestKnown(t *testing.T) {
	id, err := ToSystemID(keyWithValue(0))
	require.NoError(t, err)
	require.Equal(t, "AA", id)
	id, err = ToSystemID(keyWithValue(math.MaxUint32))
	require.NoError(t, err)
	require.Equal(t, "_____w8", id)
	id, err = ToSystemID(keyWithValue(300))
	require.NoError(t, err)
	require.Equal(t, b64url.Encode([]byte{0xac, 0x02}), id)
}

func TestInjective(t *testing.T) {
	seen := make(map[string]uint32)
	for range 100000 {
		v := frand.Uint64n(math.MaxUint32 + 1)
		id := Encode(uint32(v))
		if u, ok := seen[id]; ok && u != uint32(v) {
			t.Fatalf("%d and %d share system id %s", u, v, id)
		}
		seen[id] = uint32(v)
		got, err := FromSystemID(id)
		if chk.E(err) {
			t.Fatal(err)
		}
		if got != uint32(v) {
			t.Fatalf("got %d want %d", got, v)
		}
	}
}

func TestShortKeys(t *testing.T) {
	// only the trailing bytes matter, any width from 4 up works
	id, err := ToSystemID(b64url.Encode([]byte{0, 0, 1, 0x2c}))
	require.NoError(t, err)
	require.Equal(t, Encode(300), id)
	_, err = ToSystemID(b64url.Encode([]byte{1, 2, 3}))
	require.True(t, kerr.IsLength(err), "%v", err)
	_, err = ToSystemID("!")
	require.True(t, kerr.IsMalformed(err), "%v", err)
}

func TestFromSystemIDMalformed(t *testing.T) {
	for _, b := range [][]byte{
		{},
		{0x80},
		{0x80, 0x00},
		{0x01, 0x01},
		{0xff, 0xff, 0xff, 0xff, 0x1f},
	} {
		_, err := FromSystemID(b64url.Encode(b))
		require.True(t, kerr.IsMalformed(err), "%x: %v", b, err)
	}
}
