package main

import (
	"errors"
	"go/scanner"
	"os"
	"path/filepath"
	"strings"

	"github.com/alexflint/go-arg"
	"github.com/davecgh/go-spew/spew"
	"github.com/sirkon/message"

	"github.com/sirkon/go-enum2map/internal/check"
	"github.com/sirkon/go-enum2map/internal/generator"
	"github.com/sirkon/go-enum2map/internal/schema"
)

func main() {
	var args struct {
		Output string `arg:"-o" help:"output file, the declaration file itself is rewritten by default"`
		Check  bool   `help:"do not write anything, fail if the output is not up to date"`
		Debug  bool   `help:"dump extracted schema"`
		FILE   string `arg:"positional,required" help:"Go file with enum2map declaration or YAML schema to process"`
	}
	p := arg.MustParse(&args)

	data, err := os.ReadFile(args.FILE)
	if err != nil {
		message.Fatal(err)
	}

	var sch *schema.Schema
	output := args.Output
	ext := filepath.Ext(args.FILE)
	switch ext {
	case ".go":
		sch, err = schema.FromGo(args.FILE, data)
		if output == "" {
			output = args.FILE
		}
	case ".yaml", ".yml":
		sch, err = schema.FromYAML(args.FILE, data)
		if output == "" {
			output = strings.TrimSuffix(args.FILE, ext) + ".go"
		}
	default:
		p.Fail("FILE must be go or yaml file")
	}
	if err != nil {
		fatal(err)
	}

	if args.Debug {
		spew.Fdump(os.Stderr, sch)
	}

	layout := generator.LayoutStandalone
	if sch.Decl != "" && filepath.Clean(output) == filepath.Clean(args.FILE) {
		layout = generator.LayoutInPlace
	}
	res, err := generator.File(sch, layout)
	if err != nil {
		message.Fatal(err)
	}

	if args.Check {
		current, err := os.ReadFile(output)
		if err != nil && !os.IsNotExist(err) {
			message.Fatal(err)
		}
		differ, err := check.Diff(os.Stdout, output, current, res)
		if err != nil {
			message.Fatal(err)
		}
		if differ {
			message.Fatalf("%s is not up to date, run %s %s", output, generator.Command, args.FILE)
		}
		return
	}

	if err := os.WriteFile(output, res, 0644); err != nil {
		message.Fatal(err)
	}
}

// fatal reports every collected problem of the schema and exits
func fatal(err error) {
	var list scanner.ErrorList
	if errors.As(err, &list) {
		for _, l := range list {
			message.Error(l)
		}
		os.Exit(1)
	}

	var errs schema.Errors
	if errors.As(err, &errs) {
		for _, e := range errs {
			message.Error(e)
		}
		message.Fatal("cannot continue")
	}

	message.Fatal(err)
}
