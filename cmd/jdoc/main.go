// Package main is a small filter around the jdoc codec: it reads a document
// from a file or stdin, parses it, optionally dumps the tree, and writes the
// re-serialized form to stdout.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/alexflint/go-arg"
	"go-simpler.org/env"

	"jdoc.mleku.dev"
	"jdoc.mleku.dev/chk"
	"jdoc.mleku.dev/config"
	"jdoc.mleku.dev/lol"
	"jdoc.mleku.dev/parser"
)

// Config is loaded from the environment, with a .env in the working directory
// taking precedence when present.
type Config struct {
	LogLevel string `env:"LOG_LEVEL" default:"info" usage:"log level: fatal error warn info debug trace"`
}

var args struct {
	Input string `arg:"positional" help:"document file to read; stdin when absent"`
	Dump  bool   `arg:"--dump" help:"spew the parsed tree to the log before printing"`
}

var log = lol.Main.Log

func fail(format string, a ...any) {
	_, _ = fmt.Fprintf(os.Stderr, format+"\n", a...)
	os.Exit(1)
}

func main() {
	arg.MustParse(&args)
	cfg := &Config{}
	if err := env.Load(cfg, nil); chk.E(err) {
		fail("loading config: %s", err)
	}
	if e, err := config.GetEnv(".env"); err == nil {
		if err = env.Load(cfg, &env.Options{Source: e}); chk.E(err) {
			fail("loading .env: %s", err)
		}
	}
	lol.SetLogLevel(cfg.LogLevel)
	log.D.F("jdoc %s", jdoc.Version)
	var in io.Reader = os.Stdin
	if args.Input != "" {
		f, err := os.Open(args.Input)
		if chk.E(err) {
			fail("opening %s: %s", args.Input, err)
		}
		defer f.Close()
		in = f
	}
	vals, err := parser.Parse(in)
	if err != nil {
		fail("parse failed: %s", err)
	}
	for _, v := range vals {
		if args.Dump {
			log.D.S(v)
		}
		if err = v.Write(os.Stdout); chk.E(err) {
			fail("writing output: %s", err)
		}
		fmt.Println()
	}
}
