// Copyright 2026 Brett Vickers. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package compiler_test

import (
	"errors"
	"os"
	"strings"
	"testing"

	"github.com/beevik/opcodegen/catalog"
	"github.com/beevik/opcodegen/compiler"
)

func compile(t *testing.T, text string) (*compiler.Result, error) {
	return compiler.Compile(strings.NewReader(text), "test.txt")
}

func mustCompile(t *testing.T, text string) *catalog.Catalog {
	r, err := compile(t, text)
	if err != nil {
		t.Fatal(err)
	}
	return r.Catalog
}

func expectEntry(t *testing.T, c *catalog.Catalog, name string, variants ...catalog.Variant) {
	t.Helper()
	e, ok := c.Find(name)
	if !ok {
		t.Errorf("Mnemonic %s missing", name)
		return
	}
	if len(e.Variants) != len(variants) {
		t.Errorf("%s variant count incorrect. exp: %d, got: %d", name, len(variants), len(e.Variants))
		return
	}
	for i := range variants {
		if e.Variants[i] != variants[i] {
			t.Errorf("%s variant %d incorrect. exp: %+v, got: %+v", name, i, variants[i], e.Variants[i])
		}
	}
}

func TestScenarioSingleVariant(t *testing.T) {
	c := mustCompile(t, "IMM LDA $A9 2 2\n")
	if c.Len() != 1 {
		t.Errorf("Entry count incorrect. exp: 1, got: %d", c.Len())
	}
	expectEntry(t, c, "LDA",
		catalog.Variant{Mode: catalog.IMM, Opcode: 0xa9, Length: 2, Cycles: 2})
}

func TestScenarioVariantOrder(t *testing.T) {
	c := mustCompile(t, "ZPG LDA $A5 2 3\nIMM LDA $A9 2 2\n")
	expectEntry(t, c, "LDA",
		catalog.Variant{Mode: catalog.ZPG, Opcode: 0xa5, Length: 2, Cycles: 3},
		catalog.Variant{Mode: catalog.IMM, Opcode: 0xa9, Length: 2, Cycles: 2})
}

func TestScenarioExtraCycle(t *testing.T) {
	c := mustCompile(t, "ABX LDA $BD 3 4+\n")
	expectEntry(t, c, "LDA",
		catalog.Variant{Mode: catalog.ABX, Opcode: 0xbd, Length: 3, Cycles: 4, ExtraCycle: true})
}

func TestScenarioDuplicateOpcode(t *testing.T) {
	r, err := compile(t, "IMM LDA $A9 2 2\nIMM LDX $A9 2 2\n")
	if r != nil {
		t.Error("Result produced despite duplicate opcode")
	}

	var dup *catalog.DuplicateOpcodeError
	if !errors.As(err, &dup) {
		t.Fatalf("Expected DuplicateOpcodeError, got %v", err)
	}
	if dup.Opcode != 0xa9 || dup.First != "LDA" || dup.Second != "LDX" {
		t.Errorf("Duplicate error incorrect: %+v", dup)
	}
	msg := err.Error()
	for _, s := range []string{"test.txt", "$A9", "LDA", "LDX"} {
		if !strings.Contains(msg, s) {
			t.Errorf("Error message %q lacks %q", msg, s)
		}
	}
}

func TestScenarioEmpty(t *testing.T) {
	_, err := compile(t, "# 6502 opcodes\n# MODE MNEMONIC OPCODE LENGTH CYCLES\n\n")
	if !errors.Is(err, catalog.ErrEmptySpecification) {
		t.Errorf("Expected ErrEmptySpecification, got %v", err)
	}
}

func TestDeterministic(t *testing.T) {
	text := "ZPG LDA $A5 2 3\nIMP TAX $AA 1 2\nIMM LDA $A9 2 2\n"
	c1 := mustCompile(t, text)
	c2 := mustCompile(t, text)

	e1, e2 := c1.Entries(), c2.Entries()
	if len(e1) != len(e2) {
		t.Fatal("Entry counts differ")
	}
	for i := range e1 {
		if e1[i].Name != e2[i].Name || len(e1[i].Variants) != len(e2[i].Variants) {
			t.Errorf("Entry %d differs: %+v vs %+v", i, e1[i], e2[i])
		}
	}
}

func TestCompileFile6502(t *testing.T) {
	r, err := compiler.CompileFile("testdata/6502ops.txt")
	if err != nil {
		t.Fatal(err)
	}
	c := r.Catalog

	if c.Len() != 56 {
		t.Errorf("Mnemonic count incorrect. exp: 56, got: %d", c.Len())
	}
	if c.VariantCount() != 151 {
		t.Errorf("Variant count incorrect. exp: 151, got: %d", c.VariantCount())
	}
	if len(c.Opcodes()) != 151 {
		t.Errorf("Opcode count incorrect. exp: 151, got: %d", len(c.Opcodes()))
	}
	if r.Report.Matched != 151 {
		t.Errorf("Matched line count incorrect. exp: 151, got: %d", r.Report.Matched)
	}
	if len(r.Report.Skipped) != 3 {
		t.Errorf("Skipped line count incorrect. exp: 3, got: %d", len(r.Report.Skipped))
	}

	tests := []struct {
		opcode byte
		name   string
		v      catalog.Variant
	}{
		{0x69, "ADC", catalog.Variant{Mode: catalog.IMM, Opcode: 0x69, Length: 2, Cycles: 2}},
		{0x7d, "ADC", catalog.Variant{Mode: catalog.ABX, Opcode: 0x7d, Length: 3, Cycles: 4, ExtraCycle: true}},
		{0xb1, "LDA", catalog.Variant{Mode: catalog.IDY, Opcode: 0xb1, Length: 2, Cycles: 5, ExtraCycle: true}},
		{0x6c, "JMP", catalog.Variant{Mode: catalog.IND, Opcode: 0x6c, Length: 3, Cycles: 5}},
		{0xd0, "BNE", catalog.Variant{Mode: catalog.REL, Opcode: 0xd0, Length: 2, Cycles: 2, ExtraCycle: true}},
		{0x00, "BRK", catalog.Variant{Mode: catalog.IMP, Opcode: 0x00, Length: 1, Cycles: 7}},
	}
	for _, test := range tests {
		e, v, ok := c.Lookup(test.opcode)
		if !ok {
			t.Errorf("Opcode $%02X missing", test.opcode)
			continue
		}
		if e.Name != test.name || v != test.v {
			t.Errorf("Opcode $%02X incorrect. exp: %s %+v, got: %s %+v", test.opcode, test.name, test.v, e.Name, v)
		}
	}
}

func TestCompileFileMissing(t *testing.T) {
	_, err := compiler.CompileFile("testdata/does-not-exist.txt")
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("Expected ErrNotExist, got %v", err)
	}
}
