// Copyright 2026 Brett Vickers. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package emit serializes a compiled instruction catalog as source code
// that can be embedded in an instruction dispatcher, or as a plain opcode
// listing.
package emit

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/beevik/opcodegen/catalog"
)

// Format selects the kind of output produced by an emitter.
type Format byte

// Output formats
const (
	Go      Format = iota // Go source file with a static instruction table
	C                     // C source file with subinstr_t/instr_t tables
	Listing               // one line per opcode, in opcode order
)

var formatNames = []string{
	Go:      "go",
	C:       "c",
	Listing: "list",
}

// ParseFormat returns the format with the given name.
func ParseFormat(name string) (Format, error) {
	for i, n := range formatNames {
		if strings.EqualFold(n, name) {
			return Format(i), nil
		}
	}
	return 0, fmt.Errorf("unknown output format '%s'", name)
}

func (f Format) String() string {
	if int(f) < len(formatNames) {
		return formatNames[f]
	}
	return "unknown"
}

// DefaultImportPath is the import path of the catalog package used by
// generated Go code.
const DefaultImportPath = "github.com/beevik/opcodegen/catalog"

// Options control the generated output.
type Options struct {
	Source     string // name of the specification, recorded in the header
	Package    string // Go package name of the generated file
	ImportPath string // import path of the catalog package
}

func (o Options) withDefaults() Options {
	if o.Source == "" {
		o.Source = "specification"
	}
	if o.Package == "" {
		o.Package = "opcodes"
	}
	if o.ImportPath == "" {
		o.ImportPath = DefaultImportPath
	}
	return o
}

// Bytes renders the catalog in the requested format. The output depends
// only on the catalog and the options, so identical inputs always
// produce identical bytes.
func Bytes(c *catalog.Catalog, format Format, opts Options) ([]byte, error) {
	opts = opts.withDefaults()

	var buf bytes.Buffer
	switch format {
	case Go:
		return generateGo(c, opts)
	case C:
		generateC(&buf, c)
	case Listing:
		generateListing(&buf, c)
	default:
		return nil, fmt.Errorf("unknown output format %d", format)
	}
	return buf.Bytes(), nil
}

// Write renders the catalog and writes it to w. Nothing is written if
// rendering fails.
func Write(w io.Writer, c *catalog.Catalog, format Format, opts Options) error {
	b, err := Bytes(c, format, opts)
	if err != nil {
		return err
	}
	_, err = w.Write(b)
	return err
}
