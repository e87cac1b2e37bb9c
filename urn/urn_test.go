package urn

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestStripModel(t *testing.T) {
	for in, want := range map[string]string{
		"urn:adsk.dtm:mprWPFSnT82G1ILC_4dWgA": "mprWPFSnT82G1ILC_4dWgA",
		"urn:adsk.dtt:JTPLuERzTBaLxCXm52PP5Q": "JTPLuERzTBaLxCXm52PP5Q",
		"mprWPFSnT82G1ILC_4dWgA":              "mprWPFSnT82G1ILC_4dWgA",
		"urn:adsk.wip:dm.lineage:abc":         "urn:adsk.wip:dm.lineage:abc",
		"xurn:adsk.dtm:AAAA":                  "xurn:adsk.dtm:AAAA",
		"":                                    "",
	} {
		require.Equal(t, want, StripModel(in), in)
	}
}

func TestDefaultModel(t *testing.T) {
	f := "urn:adsk.dtt:WtMe53OeTWuvLaCP4bvZkw"
	require.Equal(t, "urn:adsk.dtm:WtMe53OeTWuvLaCP4bvZkw", DefaultModel(f))
	require.True(t, IsDefaultModel(f, "urn:adsk.dtm:WtMe53OeTWuvLaCP4bvZkw"))
	require.True(t, IsDefaultModel(f, "WtMe53OeTWuvLaCP4bvZkw"))
	require.False(t, IsDefaultModel(f, "urn:adsk.dtm:mprWPFSnT82G1ILC_4dWgA"))
	require.Equal(t, "urn:adsk.dtm:AAAA", Model("urn:adsk.dtm:AAAA"))
}
