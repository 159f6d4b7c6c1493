package main

import (
	"errors"
	"flag"
	"fmt"
	"io"

	"github.com/itsatony/go-tagtext"
)

// tagConfig holds parsed tag command configuration
type tagConfig struct {
	name    string
	flavor  tagtext.Flavor
	attrs   pairList
	content string
}

func runTag(args []string, stdout, stderr io.Writer) int {
	cfg, err := parseTagFlags(args)
	if err != nil {
		fmt.Fprintf(stderr, FmtErrorWithCause, ErrMsgInvalidUsage, err)
		return ExitCodeUsageError
	}

	tag := cfg.flavor.NewTag(cfg.name, cfg.attrs...)
	fmt.Fprintln(stdout, tag.Tag(cfg.content).String())
	return ExitCodeSuccess
}

func parseTagFlags(args []string) (*tagConfig, error) {
	fs := flag.NewFlagSet(CmdNameTag, flag.ContinueOnError)
	fs.SetOutput(io.Discard) // Suppress default error messages

	cfg := &tagConfig{}
	var kind string

	fs.StringVar(&cfg.name, FlagName, "", "")
	fs.StringVar(&cfg.name, FlagNameShort, "", "")
	fs.StringVar(&kind, FlagKind, FlagDefaultKind, "")
	fs.StringVar(&kind, FlagKindShort, FlagDefaultKind, "")
	fs.Var(&cfg.attrs, FlagAttr, "")
	fs.Var(&cfg.attrs, FlagAttrShort, "")
	fs.StringVar(&cfg.content, FlagContent, "", "")
	fs.StringVar(&cfg.content, FlagContentShort, "", "")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	if cfg.name == "" {
		return nil, errors.New(ErrMsgMissingTagName)
	}

	flavor, ok := tagtext.ParseFlavor(kind)
	if !ok {
		return nil, errors.New(ErrMsgInvalidKind)
	}
	cfg.flavor = flavor

	return cfg, nil
}
