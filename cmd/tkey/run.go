package main

import (
	"fmt"
	"io"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/autodesk-tandem/tandem-keys/config"
	"github.com/autodesk-tandem/tandem-keys/elementkey"
	"github.com/autodesk-tandem/tandem-keys/flags"
	"github.com/autodesk-tandem/tandem-keys/localref"
	"github.com/autodesk-tandem/tandem-keys/lol"
	"github.com/autodesk-tandem/tandem-keys/sysid"
	"github.com/autodesk-tandem/tandem-keys/xref"
)

// run executes the chosen subcommand, writing results to w.
func run(w io.Writer, cfg *config.C, a *Args) (err error) {
	if a.LogLevel != "" {
		lol.SetLogLevel(a.LogLevel)
	}
	strict := a.Strict || cfg.StrictArrays
	asYAML := a.YAML || cfg.YAML
	out := func(s string, err error) error {
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(w, s)
		return err
	}
	switch {
	case a.Full != nil:
		return out(elementkey.ToFullKey(a.Full.Key, a.Full.Logical || cfg.Logical))
	case a.Short != nil:
		return out(elementkey.ToShortKey(a.Short.Key))
	case a.GUID != nil:
		return out(elementkey.ToElementGUID(a.GUID.Key))
	case a.FromGUID != nil:
		return out(elementkey.FromElementGUID(a.FromGUID.GUID))
	case a.New != nil:
		return newKeys(w, a.New)
	case a.Xref != nil:
		return out(xref.ToXrefKey(a.Xref.Model, a.Xref.Key))
	case a.Unxref != nil:
		var p xref.Pair
		if p.ModelID, p.ElementKey, err = xref.DecodeXrefKey(a.Unxref.Key); err != nil {
			return
		}
		return writePairs(w, []xref.Pair{p}, asYAML)
	case a.Xrefs != nil:
		var pairs []xref.Pair
		if strict {
			pairs, err = xref.FromXrefKeyArrayStrict(a.Xrefs.Key)
		} else {
			pairs, err = xref.FromXrefKeyArray(a.Xrefs.Key)
		}
		if err != nil {
			return
		}
		return writePairs(w, pairs, asYAML)
	case a.MkXrefs != nil:
		if len(a.MkXrefs.Pairs)%2 != 0 {
			return errorf.E("mkxrefs needs model id and key pairs, got %d arguments",
				len(a.MkXrefs.Pairs))
		}
		pairs := make([]xref.Pair, 0, len(a.MkXrefs.Pairs)/2)
		for i := 0; i < len(a.MkXrefs.Pairs); i += 2 {
			pairs = append(pairs, xref.Pair{ModelID: a.MkXrefs.Pairs[i], ElementKey: a.MkXrefs.Pairs[i+1]})
		}
		return out(xref.ToXrefKeyArray(pairs))
	case a.Refs != nil:
		var keys []string
		logical := a.Refs.Logical || cfg.Logical
		if strict {
			keys, err = localref.FromShortKeyArrayStrict(a.Refs.Text, a.Refs.Full, logical)
		} else {
			keys, err = localref.FromShortKeyArray(a.Refs.Text, a.Refs.Full, logical)
		}
		if err != nil {
			return
		}
		return writeList(w, keys, asYAML)
	case a.MkRefs != nil:
		return out(localref.ToShortKeyArray(a.MkRefs.Keys))
	case a.SysID != nil:
		if a.SysID.Decode {
			var v uint32
			if v, err = sysid.FromSystemID(a.SysID.Key); err != nil {
				return
			}
			return out(strconv.FormatUint(uint64(v), 10), nil)
		}
		return out(sysid.ToSystemID(a.SysID.Key))
	case a.Inspect != nil:
		var r *Report
		if r, err = Inspect(a.Inspect.Key); err != nil {
			return
		}
		log.T.S(r)
		return writeYAML(w, r)
	case a.Env != nil:
		cfg.PrintEnv(w)
		return
	}
	return errorf.E("no command given")
}

// parseFlags accepts a flags name or a number in any base strconv knows.
func parseFlags(s string) (w flags.Word, err error) {
	var ok bool
	if w, ok = flags.Lookup(s); ok {
		return
	}
	var n uint64
	if n, err = strconv.ParseUint(s, 0, 32); err != nil {
		err = errorf.E("unknown element flags %q", s)
		return
	}
	return flags.Word(n), nil
}

func newKeys(w io.Writer, c *NewCmd) (err error) {
	var f flags.Word
	if f, err = parseFlags(c.Flags); err != nil {
		return
	}
	log.D.F("creating %d keys with flags %s", c.Count, f)
	var key string
	for range c.Count {
		if key, err = elementkey.NewElementKey(f); err != nil {
			return
		}
		if _, err = fmt.Fprintln(w, key); err != nil {
			return
		}
	}
	return
}

func writePairs(w io.Writer, pairs []xref.Pair, asYAML bool) (err error) {
	if asYAML {
		return writeYAML(w, pairs)
	}
	for _, p := range pairs {
		if _, err = fmt.Fprintf(w, "%s %s\n", p.ModelID, p.ElementKey); err != nil {
			return
		}
	}
	return
}

func writeList(w io.Writer, items []string, asYAML bool) (err error) {
	if asYAML {
		return writeYAML(w, items)
	}
	for _, s := range items {
		if _, err = fmt.Fprintln(w, s); err != nil {
			return
		}
	}
	return
}

func writeYAML(w io.Writer, v any) (err error) {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err = enc.Encode(v); chk.E(err) {
		return
	}
	return enc.Close()
}
