// Copyright 2026 Brett Vickers. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command opcodegen compiles an instruction set specification into an
// instruction table.
//
// Usage:
//
//	opcodegen [options] <specfile>
//
// The table is written as Go source by default. The -format option selects
// C source or a plain opcode listing instead. With -i, the compiled catalog
// is opened in a command shell for inspection.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/beevik/opcodegen/compiler"
	"github.com/beevik/opcodegen/emit"
	"github.com/beevik/opcodegen/host"
	"github.com/beevik/opcodegen/internal/translate"
	"github.com/beevik/term"
	"github.com/bradleyjkemp/memviz"
	"github.com/davecgh/go-spew/spew"
)

var (
	output      string
	format      string
	pkg         string
	importPath  string
	verbose     bool
	dump        bool
	memvizFile  string
	interactive bool
)

func init() {
	flag.StringVar(&output, "o", "", "output file (default stdout)")
	flag.StringVar(&format, "format", emit.Go.String(), "output format: go, c or list")
	flag.StringVar(&pkg, "pkg", "opcodes", "package name of generated Go code")
	flag.StringVar(&importPath, "import", emit.DefaultImportPath, "import path of the catalog package")
	flag.BoolVar(&verbose, "v", false, "report skipped specification lines")
	flag.BoolVar(&dump, "dump", false, "dump the compiled catalog to stderr")
	flag.StringVar(&memvizFile, "memviz", "", "write a graphviz diagram of the catalog to a file")
	flag.BoolVar(&interactive, "i", false, "inspect the catalog in a command shell")
	flag.CommandLine.Usage = func() {
		fmt.Fprintln(flag.CommandLine.Output(), "Usage: opcodegen [options] <specfile>\nOptions:")
		flag.PrintDefaults()
	}
}

func main() {
	log.SetFlags(0)
	log.SetPrefix("opcodegen: ")
	flag.Parse()

	if flag.NArg() != 1 {
		flag.CommandLine.Usage()
		os.Exit(2)
	}

	outputFormat, err := emit.ParseFormat(format)
	if err != nil {
		log.Fatalf("%v", err)
	}

	result, err := compiler.CompileFile(flag.Arg(0))
	if err != nil {
		log.Fatalf("%v", err)
	}

	if verbose {
		logReport(result)
	}

	if dump {
		spew.Fdump(os.Stderr, result.Catalog.Entries())
	}

	if memvizFile != "" {
		if err := writeMemviz(memvizFile, result); err != nil {
			log.Fatalf("%v", err)
		}
	}

	if interactive {
		h := host.New()
		h.Attach(result)
		h.RunCommands(os.Stdin, os.Stdout, term.IsTerminal(int(os.Stdin.Fd())))
		return
	}

	// Render to memory first so that a failure leaves no partial output.
	b, err := emit.Bytes(result.Catalog, outputFormat, emit.Options{
		Source:     result.Source,
		Package:    pkg,
		ImportPath: importPath,
	})
	if err != nil {
		log.Fatalf("%v", err)
	}

	if output == "" {
		_, err = os.Stdout.Write(b)
	} else {
		err = os.WriteFile(output, b, 0644)
	}
	if err != nil {
		log.Fatalf("%v", err)
	}
}

func logReport(r *compiler.Result) {
	log.Print(translate.From("%s: %d lines, %d instructions, %d mnemonics",
		r.Source, r.Report.Lines, r.Report.Matched, r.Catalog.Len()))
	for _, line := range r.Report.Skipped {
		log.Print(skippedLine(r.Source, line))
	}
}

func skippedLine(source string, line int) string {
	return translate.From("%s:%s: skipped line", source, strconv.Itoa(line))
}

func writeMemviz(filename string, r *compiler.Result) error {
	file, err := os.Create(filename)
	if err != nil {
		return err
	}
	memviz.Map(file, r.Catalog)
	return file.Close()
}
