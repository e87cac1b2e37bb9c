// Package config is the environment driven configuration of the tkey tool.
package config

import (
	"fmt"
	"io"
	"reflect"
	"sort"

	"go-simpler.org/env"

	"github.com/autodesk-tandem/tandem-keys/lol"
)

// C is the configuration. Command line flags of the same name override it.
type C struct {
	AppName      string `env:"TKEY_APP_NAME" default:"tkey" usage:"name shown in help output"`
	LogLevel     string `env:"TKEY_LOG_LEVEL" default:"warn" usage:"off, fatal, error, warn, info, debug or trace"`
	LogTimes     bool   `env:"TKEY_LOG_TIMES" default:"false" usage:"print timestamps on log lines"`
	StrictArrays bool   `env:"TKEY_STRICT_ARRAYS" default:"false" usage:"fail on key arrays with a partial trailing entry instead of dropping it"`
	Logical      bool   `env:"TKEY_LOGICAL" default:"false" usage:"produce full keys with the logical flag by default"`
	YAML         bool   `env:"TKEY_YAML" default:"false" usage:"print structured output as yaml"`
}

// New loads the configuration from the environment.
func New() (c *C, err error) {
	c = &C{}
	if err = env.Load(c, &env.Options{SliceSep: ","}); chk.E(err) {
		return
	}
	c.Apply()
	return
}

// Apply sets up the logger.
func (c *C) Apply() {
	lol.NoTimeStamp.Store(!c.LogTimes)
	lol.SetLogLevel(c.LogLevel)
}

// Usage prints the variables with their defaults and descriptions.
func (c *C) Usage(w io.Writer) {
	_, _ = fmt.Fprintf(w, "\nenvironment variables that configure %s\n\n", c.AppName)
	env.Usage(c, w, nil)
}

// KV is an environment variable and its value.
type KV struct{ Key, Value string }

// Env lists the variables of c sorted by name.
func (c *C) Env() (kvs []KV) {
	v := reflect.ValueOf(*c)
	t := v.Type()
	for i := range t.NumField() {
		k := t.Field(i).Tag.Get("env")
		if k == "" {
			continue
		}
		kvs = append(kvs, KV{k, fmt.Sprint(v.Field(i).Interface())})
	}
	sort.Slice(kvs, func(i, j int) bool { return kvs[i].Key < kvs[j].Key })
	return
}

// PrintEnv writes c as a shell script that can be edited and sourced.
func (c *C) PrintEnv(w io.Writer) {
	_, _ = fmt.Fprintln(w, "#!/usr/bin/env bash")
	for _, kv := range c.Env() {
		_, _ = fmt.Fprintf(w, "export %s=%s\n", kv.Key, kv.Value)
	}
}
