// Copyright 2026 Brett Vickers. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package emit

import (
	"bytes"
	"fmt"
	"go/format"
	"path"

	"github.com/beevik/opcodegen/catalog"
)

func generateGo(c *catalog.Catalog, opts Options) ([]byte, error) {
	var w bytes.Buffer
	pkg := path.Base(opts.ImportPath)
	entries := c.Entries()

	fmt.Fprintf(&w, "// Code generated by opcodegen from %s. DO NOT EDIT.\n\n", opts.Source)
	fmt.Fprintf(&w, "package %s\n\n", opts.Package)
	fmt.Fprintf(&w, "import %q\n\n", opts.ImportPath)

	// One array per mnemonic holding its variants in specification order.
	for _, e := range entries {
		fmt.Fprintf(&w, "var %s = [...]%s.Variant{\n", goVariantsName(e.Name), pkg)
		for _, v := range e.Variants {
			fmt.Fprintf(&w, "\t{Mode: %s.%s, Opcode: 0x%02x, Length: %d, Cycles: %d",
				pkg, v.Mode, v.Opcode, v.Length, v.Cycles)
			if v.ExtraCycle {
				w.WriteString(", ExtraCycle: true")
			}
			w.WriteString("},\n")
		}
		w.WriteString("}\n\n")
	}

	fmt.Fprintf(&w, "var instructions = [...]%s.Entry{\n", pkg)
	for _, e := range entries {
		fmt.Fprintf(&w, "\t{Name: %q, Variants: %s[:]},\n", e.Name, goVariantsName(e.Name))
	}
	w.WriteString("}\n\n")

	w.WriteString("// Instructions returns the instruction table in specification order.\n")
	fmt.Fprintf(&w, "func Instructions() []%s.Entry {\n", pkg)
	w.WriteString("\treturn instructions[:]\n")
	w.WriteString("}\n\n")

	w.WriteString("// InstructionCount returns the number of entries in the instruction table.\n")
	w.WriteString("func InstructionCount() int {\n")
	w.WriteString("\treturn len(instructions)\n")
	w.WriteString("}\n\n")

	w.WriteString("// NewCatalog builds a catalog, including its opcode index, from the\n")
	fmt.Fprintf(&w, "// instruction table. Handlers are bound with %s.NewBindings.\n", pkg)
	fmt.Fprintf(&w, "func NewCatalog() (*%s.Catalog, error) {\n", pkg)
	fmt.Fprintf(&w, "\treturn %s.New(instructions[:])\n", pkg)
	w.WriteString("}\n")

	src, err := format.Source(w.Bytes())
	if err != nil {
		return nil, fmt.Errorf("formatting generated Go source: %w", err)
	}
	return src, nil
}

func goVariantsName(mnemonic string) string {
	return makeIdentCamel(mnemonic) + "Variants"
}
