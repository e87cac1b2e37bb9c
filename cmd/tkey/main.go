// Package main is tkey, a command line tool that converts between the key
// forms used by facility data: short and full element keys, GUID text, xref
// keys and their arrays, same model reference lists and system ids.
package main

import (
	"os"

	"github.com/alexflint/go-arg"

	"github.com/autodesk-tandem/tandem-keys/config"
)

const Version = "v0.3.0"

type KeyCmd struct {
	Key string `arg:"positional,required" help:"base64url key"`
}

type FullCmd struct {
	Key     string `arg:"positional,required" help:"short key"`
	Logical bool   `arg:"-l,--logical" help:"set the logical key flag"`
}

type FromGUIDCmd struct {
	GUID string `arg:"positional,required" help:"hyphenated hex element guid"`
}

type NewCmd struct {
	Flags string `arg:"-f,--flags" default:"generic-asset" help:"element flags, a name such as room or level, or a number"`
	Count int    `arg:"-n,--count" default:"1" help:"number of keys to create"`
}

type XrefCmd struct {
	Model string `arg:"positional,required" help:"model id, with or without urn prefix"`
	Key   string `arg:"positional,required" help:"full element key"`
}

type MkXrefsCmd struct {
	Pairs []string `arg:"positional" help:"model id and full key pairs, as MODEL KEY MODEL KEY ..."`
}

type RefsCmd struct {
	Text    string `arg:"positional,required" help:"encoded reference list"`
	Full    bool   `arg:"--full" help:"return full keys"`
	Logical bool   `arg:"-l,--logical" help:"set the logical key flag on full keys"`
}

type MkRefsCmd struct {
	Keys []string `arg:"positional" help:"short or full keys"`
}

type SysIDCmd struct {
	Key    string `arg:"positional,required" help:"full key, or a system id with --decode"`
	Decode bool   `arg:"-d,--decode" help:"print the number behind a system id"`
}

type Args struct {
	Full     *FullCmd     `arg:"subcommand:full" help:"convert a short key to a full key"`
	Short    *KeyCmd      `arg:"subcommand:short" help:"convert a full key to a short key"`
	GUID     *KeyCmd      `arg:"subcommand:guid" help:"render a short or full key as guid text"`
	FromGUID *FromGUIDCmd `arg:"subcommand:fromguid" help:"convert guid text to a short key"`
	New      *NewCmd      `arg:"subcommand:new" help:"create full keys for new elements"`
	Xref     *XrefCmd     `arg:"subcommand:xref" help:"join a model id and a full key"`
	Unxref   *KeyCmd      `arg:"subcommand:unxref" help:"split an xref key"`
	Xrefs    *KeyCmd      `arg:"subcommand:xrefs" help:"decode an xref key array"`
	MkXrefs  *MkXrefsCmd  `arg:"subcommand:mkxrefs" help:"encode an xref key array"`
	Refs     *RefsCmd     `arg:"subcommand:refs" help:"decode a same model reference list"`
	MkRefs   *MkRefsCmd   `arg:"subcommand:mkrefs" help:"encode a same model reference list"`
	SysID    *SysIDCmd    `arg:"subcommand:sysid" help:"derive the system id of a key"`
	Inspect  *KeyCmd      `arg:"subcommand:inspect" help:"describe any key"`
	Env      *struct{}    `arg:"subcommand:env" help:"print the configuration as a shell script"`

	Strict   bool   `arg:"--strict" help:"fail on arrays with a partial trailing entry"`
	YAML     bool   `arg:"--yaml" help:"print structured output as yaml"`
	LogLevel string `arg:"--log-level" help:"log level, overrides TKEY_LOG_LEVEL"`
}

func (Args) Version() string { return "tkey " + Version }

func (Args) Description() string {
	return "tkey converts between the key forms used by facility data.\n" +
		"Environment variables (see tkey env) set the defaults.\n"
}

func main() {
	cfg, err := config.New()
	if chk.E(err) {
		os.Exit(1)
	}
	var args Args
	p := arg.MustParse(&args)
	if p.Subcommand() == nil {
		p.WriteHelp(os.Stdout)
		cfg.Usage(os.Stdout)
		os.Exit(0)
	}
	if err = run(os.Stdout, cfg, &args); err != nil {
		log.F.F("error: %s", err)
		os.Exit(1)
	}
}
