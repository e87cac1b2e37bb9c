package config

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/autodesk-tandem/tandem-keys/lol"
)

func TestNew(t *testing.T) {
	defer lol.SetLoggers(int(lol.Level.Load()))
	t.Setenv("TKEY_STRICT_ARRAYS", "true")
	t.Setenv("TKEY_LOG_LEVEL", "debug")
	c, err := New()
	require.NoError(t, err)
	require.Equal(t, "tkey", c.AppName)
	require.True(t, c.StrictArrays)
	require.False(t, c.Logical)
	require.Equal(t, int32(lol.Debug), lol.Level.Load())
}

func TestPrintEnv(t *testing.T) {
	c := &C{AppName: "tkey", LogLevel: "warn", YAML: true}
	buf := new(bytes.Buffer)
	c.PrintEnv(buf)
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Equal(t, "#!/usr/bin/env bash", lines[0])
	require.Equal(t, []string{
		"export TKEY_APP_NAME=tkey",
		"export TKEY_LOGICAL=false",
		"export TKEY_LOG_LEVEL=warn",
		"export TKEY_LOG_TIMES=false",
		"export TKEY_STRICT_ARRAYS=false",
		"export TKEY_YAML=true",
	}, lines[1:])
}

func TestUsage(t *testing.T) {
	c := &C{AppName: "tkey"}
	buf := new(bytes.Buffer)
	c.Usage(buf)
	require.Contains(t, buf.String(), "TKEY_STRICT_ARRAYS")
}
