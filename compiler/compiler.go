// Copyright 2026 Brett Vickers. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package compiler turns an instruction set specification into a
// compiled instruction catalog.
package compiler

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/beevik/opcodegen/catalog"
	"github.com/beevik/opcodegen/spec"
)

// A Result holds the output of a successful compilation.
type Result struct {
	Source  string           // name of the specification
	Catalog *catalog.Catalog // compiled catalog
	Report  *spec.Report     // summary of the lines read
}

// Compile reads a specification from r and builds its catalog. The name
// is used only in error messages. Either a complete catalog is returned
// or an error; there are no partial results.
func Compile(r io.Reader, name string) (*Result, error) {
	records, report, err := spec.Read(r)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}

	cat, err := catalog.Build(records)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}

	return &Result{
		Source:  name,
		Catalog: cat,
		Report:  report,
	}, nil
}

// CompileFile compiles the specification stored in a file.
func CompileFile(filename string) (*Result, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	return Compile(file, filepath.Base(filename))
}
