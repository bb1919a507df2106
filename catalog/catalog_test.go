// Copyright 2026 Brett Vickers. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package catalog_test

import (
	"errors"
	"testing"

	"github.com/beevik/opcodegen/catalog"
)

func rec(line int, mode catalog.Mode, name string, opcode, length, cycles byte, extra bool) catalog.Record {
	return catalog.Record{
		Mode:       mode,
		Mnemonic:   name,
		Opcode:     opcode,
		Length:     length,
		Cycles:     cycles,
		ExtraCycle: extra,
		Line:       line,
	}
}

func build(t *testing.T, records ...catalog.Record) *catalog.Catalog {
	c, err := catalog.Build(records)
	if err != nil {
		t.Fatal(err)
	}
	return c
}

func expectVariant(t *testing.T, got, exp catalog.Variant) {
	t.Helper()
	if got != exp {
		t.Errorf("Variant incorrect. exp: %+v, got: %+v", exp, got)
	}
}

func TestBuildSingle(t *testing.T) {
	c := build(t, rec(1, catalog.IMM, "LDA", 0xa9, 2, 2, false))

	if c.Len() != 1 {
		t.Fatalf("Entry count incorrect. exp: 1, got: %d", c.Len())
	}
	e := c.Entry(0)
	if e.Name != "LDA" {
		t.Errorf("Name incorrect. exp: LDA, got: %s", e.Name)
	}
	if len(e.Variants) != 1 {
		t.Fatalf("Variant count incorrect. exp: 1, got: %d", len(e.Variants))
	}
	expectVariant(t, e.Variants[0], catalog.Variant{Mode: catalog.IMM, Opcode: 0xa9, Length: 2, Cycles: 2})
}

func TestBuildOrder(t *testing.T) {
	c := build(t,
		rec(1, catalog.ZPG, "LDA", 0xa5, 2, 3, false),
		rec(2, catalog.IMP, "TAX", 0xaa, 1, 2, false),
		rec(3, catalog.IMM, "LDA", 0xa9, 2, 2, false),
		rec(4, catalog.ABX, "LDA", 0xbd, 3, 4, true),
	)

	entries := c.Entries()
	if len(entries) != 2 || entries[0].Name != "LDA" || entries[1].Name != "TAX" {
		t.Fatalf("Entry order incorrect: %+v", entries)
	}

	modes := []catalog.Mode{catalog.ZPG, catalog.IMM, catalog.ABX}
	if len(entries[0].Variants) != len(modes) {
		t.Fatalf("Variant count incorrect. exp: %d, got: %d", len(modes), len(entries[0].Variants))
	}
	for i, m := range modes {
		if entries[0].Variants[i].Mode != m {
			t.Errorf("Variant %d mode incorrect. exp: %v, got: %v", i, m, entries[0].Variants[i].Mode)
		}
	}

	if c.VariantCount() != 4 {
		t.Errorf("Variant total incorrect. exp: 4, got: %d", c.VariantCount())
	}
}

func TestBuildExtraCycle(t *testing.T) {
	c := build(t, rec(1, catalog.ABX, "LDA", 0xbd, 3, 4, true))

	_, v, ok := c.Lookup(0xbd)
	if !ok {
		t.Fatal("Opcode $BD not found")
	}
	expectVariant(t, v, catalog.Variant{Mode: catalog.ABX, Opcode: 0xbd, Length: 3, Cycles: 4, ExtraCycle: true})
	if v.MaxCycles() != 5 {
		t.Errorf("MaxCycles incorrect. exp: 5, got: %d", v.MaxCycles())
	}
}

func TestBuildDuplicateOpcode(t *testing.T) {
	c, err := catalog.Build([]catalog.Record{
		rec(3, catalog.IMM, "LDA", 0xa9, 2, 2, false),
		rec(7, catalog.IMM, "LDX", 0xa9, 2, 2, false),
	})
	if c != nil {
		t.Error("Catalog produced despite duplicate opcode")
	}

	var dup *catalog.DuplicateOpcodeError
	if !errors.As(err, &dup) {
		t.Fatalf("Expected DuplicateOpcodeError, got %v", err)
	}
	if dup.Opcode != 0xa9 || dup.First != "LDA" || dup.Second != "LDX" {
		t.Errorf("Duplicate error incorrect: %+v", dup)
	}
	if dup.FirstLine != 3 || dup.SecondLine != 7 {
		t.Errorf("Duplicate lines incorrect. exp: 3/7, got: %d/%d", dup.FirstLine, dup.SecondLine)
	}
}

func TestErrorLineNumbers(t *testing.T) {
	_, err := catalog.Build([]catalog.Record{
		rec(1234, catalog.IMM, "LDA", 0xa9, 2, 2, false),
		rec(20000, catalog.IMM, "LDX", 0xa9, 2, 2, false),
	})
	exp := "duplicate opcode $A9: LDA (line 1234) and LDX (line 20000)"
	if err == nil || err.Error() != exp {
		t.Errorf("Error text incorrect. exp: %q, got: %v", exp, err)
	}

	inv := &catalog.InvalidVariantError{Line: 4096, Mnemonic: "LDA", Reason: "zero length"}
	exp = "line 4096: LDA: zero length"
	if inv.Error() != exp {
		t.Errorf("Error text incorrect. exp: %q, got: %q", exp, inv.Error())
	}
}

func TestBuildRepeatedLine(t *testing.T) {
	r := rec(1, catalog.IMM, "LDA", 0xa9, 2, 2, false)
	_, err := catalog.Build([]catalog.Record{r, r})

	var dup *catalog.DuplicateOpcodeError
	if !errors.As(err, &dup) {
		t.Fatalf("Expected DuplicateOpcodeError, got %v", err)
	}
	if dup.First != "LDA" || dup.Second != "LDA" {
		t.Errorf("Duplicate error incorrect: %+v", dup)
	}
}

func TestBuildEmpty(t *testing.T) {
	_, err := catalog.Build(nil)
	if !errors.Is(err, catalog.ErrEmptySpecification) {
		t.Errorf("Expected ErrEmptySpecification, got %v", err)
	}
}

func TestBuildInvalidVariant(t *testing.T) {
	tests := []catalog.Record{
		rec(1, catalog.IMM, "LDA", 0xa9, 0, 2, false),
		rec(2, catalog.IMM, "LDA", 0xa9, 2, 0, false),
		rec(3, catalog.Mode(200), "LDA", 0xa9, 2, 2, false),
		rec(4, catalog.IMM, "", 0xa9, 2, 2, false),
	}
	for _, r := range tests {
		_, err := catalog.Build([]catalog.Record{r})
		var inv *catalog.InvalidVariantError
		if !errors.As(err, &inv) {
			t.Errorf("line %d: expected InvalidVariantError, got %v", r.Line, err)
			continue
		}
		if inv.Line != r.Line {
			t.Errorf("Error line incorrect. exp: %d, got: %d", r.Line, inv.Line)
		}
	}
}

func TestLookup(t *testing.T) {
	c := build(t,
		rec(1, catalog.IMM, "LDA", 0xa9, 2, 2, false),
		rec(2, catalog.ZPG, "LDA", 0xa5, 2, 3, false),
		rec(3, catalog.ZPG, "STA", 0x85, 2, 3, false),
	)

	e, v, ok := c.Lookup(0x85)
	if !ok || e.Name != "STA" || v.Opcode != 0x85 {
		t.Errorf("Lookup($85) incorrect: %v %+v %v", e.Name, v, ok)
	}
	if _, _, ok := c.Lookup(0x00); ok {
		t.Error("Lookup($00) found an unused opcode")
	}

	ops := c.Opcodes()
	exp := []byte{0x85, 0xa5, 0xa9}
	if string(ops) != string(exp) {
		t.Errorf("Opcodes incorrect. exp: % X, got: % X", exp, ops)
	}

	// Every opcode resolves back to an entry that lists it.
	for _, op := range ops {
		e, v, _ := c.Lookup(op)
		found := false
		for _, ev := range e.Variants {
			if ev == v {
				found = true
			}
		}
		if !found {
			t.Errorf("Opcode $%02X not listed by %s", op, e.Name)
		}
	}
}

func TestFindAndVariant(t *testing.T) {
	c := build(t,
		rec(1, catalog.IMM, "LDA", 0xa9, 2, 2, false),
		rec(2, catalog.ZPG, "LDA", 0xa5, 2, 3, false),
		rec(3, catalog.IMP, "NOP", 0xea, 1, 2, false),
	)

	if e, ok := c.Find("lda"); !ok || len(e.Variants) != 2 {
		t.Errorf("Find(lda) incorrect: %+v %v", e, ok)
	}
	if _, ok := c.Find("XXX"); ok {
		t.Error("Find(XXX) found a missing mnemonic")
	}

	v, ok := c.Variant("LDA", catalog.ZPG)
	if !ok || v.Opcode != 0xa5 {
		t.Errorf("Variant(LDA, ZPG) incorrect: %+v %v", v, ok)
	}
	if _, ok := c.Variant("LDA", catalog.ABS); ok {
		t.Error("Variant(LDA, ABS) found a missing variant")
	}

	// A single variant matches any mode.
	v, ok = c.Variant("NOP", catalog.ABS)
	if !ok || v.Opcode != 0xea {
		t.Errorf("Variant(NOP) incorrect: %+v %v", v, ok)
	}
}

func TestEntriesAreCopies(t *testing.T) {
	c := build(t, rec(1, catalog.IMM, "LDA", 0xa9, 2, 2, false))

	entries := c.Entries()
	entries[0].Variants[0].Cycles = 9
	entries[0].Name = "XXX"

	e, v, _ := c.Lookup(0xa9)
	if e.Name != "LDA" || v.Cycles != 2 {
		t.Errorf("Catalog modified through a returned entry: %+v", e)
	}
}

func TestNew(t *testing.T) {
	src := build(t,
		rec(1, catalog.ZPG, "LDA", 0xa5, 2, 3, false),
		rec(2, catalog.IMM, "LDA", 0xa9, 2, 2, false),
		rec(3, catalog.IMP, "TAX", 0xaa, 1, 2, false),
	)

	c, err := catalog.New(src.Entries())
	if err != nil {
		t.Fatal(err)
	}
	for _, op := range src.Opcodes() {
		e1, v1, _ := src.Lookup(op)
		e2, v2, ok := c.Lookup(op)
		if !ok || e1.Name != e2.Name || v1 != v2 {
			t.Errorf("Rebuilt index differs at $%02X", op)
		}
	}

	_, err = catalog.New([]catalog.Entry{
		{Name: "LDA", Variants: []catalog.Variant{{Mode: catalog.IMM, Opcode: 0xa9, Length: 2, Cycles: 2}}},
		{Name: "LDX", Variants: []catalog.Variant{{Mode: catalog.IMM, Opcode: 0xa9, Length: 2, Cycles: 2}}},
	})
	var dup *catalog.DuplicateOpcodeError
	if !errors.As(err, &dup) {
		t.Errorf("Expected DuplicateOpcodeError, got %v", err)
	}

	_, err = catalog.New([]catalog.Entry{{Name: "LDA"}})
	var inv *catalog.InvalidVariantError
	if !errors.As(err, &inv) {
		t.Errorf("Expected InvalidVariantError, got %v", err)
	}
}

func TestParseMode(t *testing.T) {
	tests := []struct {
		tag  string
		mode catalog.Mode
	}{
		{"IMM", catalog.IMM},
		{"IMMEDIATE", catalog.IMM},
		{"ZERO_PAGE_X", catalog.ZPX},
		{"ABX", catalog.ABX},
		{"BRANCH", catalog.REL},
		{"RELATIVE", catalog.REL},
		{"STATUS", catalog.STS},
	}
	for _, test := range tests {
		m, ok := catalog.ParseMode(test.tag)
		if !ok || m != test.mode {
			t.Errorf("ParseMode(%s) incorrect. exp: %v, got: %v", test.tag, test.mode, m)
		}
	}

	if _, ok := catalog.ParseMode("WHATEVER"); ok {
		t.Error("ParseMode accepted an unknown tag")
	}

	for _, m := range catalog.Modes() {
		back, ok := catalog.ParseMode(m.LongName())
		if !ok || back != m {
			t.Errorf("Mode %v does not round trip through %s", m, m.LongName())
		}
	}
}
