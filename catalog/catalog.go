// Copyright 2026 Brett Vickers. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package catalog implements a compiled instruction catalog: every
// mnemonic of an instruction set together with its addressing-mode
// variants, indexed both by mnemonic and by opcode byte.
package catalog

import (
	"slices"
	"strings"
)

// A Record is a single raw instruction encoding as read from an
// instruction set specification.
type Record struct {
	Mode       Mode   // addressing mode
	Mnemonic   string // all-caps instruction name
	Opcode     byte   // opcode byte value
	Length     byte   // combined size of opcode and operand, in bytes
	Cycles     byte   // base number of CPU cycles
	ExtraCycle bool   // a data-dependent extra cycle may be charged
	Line       int    // source line the record was read from
}

// A Variant describes one encoding of an instruction under one
// addressing mode.
type Variant struct {
	Mode       Mode // addressing mode
	Opcode     byte // opcode byte value, unique across the catalog
	Length     byte // combined size of opcode and operand, in bytes
	Cycles     byte // number of CPU cycles, excluding any extra cycle
	ExtraCycle bool // an extra cycle may be charged at execution time
}

// MaxCycles returns the largest number of cycles the variant may take.
func (v Variant) MaxCycles() byte {
	if v.ExtraCycle {
		return v.Cycles + 1
	}
	return v.Cycles
}

// An Entry describes an instruction mnemonic and all of its variants, in
// the order they appeared in the specification.
type Entry struct {
	Name     string
	Variants []Variant
}

func (e Entry) clone() Entry {
	return Entry{Name: e.Name, Variants: slices.Clone(e.Variants)}
}

// Position of a variant within the catalog's entries.
type slot struct {
	entry   int
	variant int
	used    bool
}

// A Catalog is a complete, immutable instruction table. Entries are kept
// in order of first appearance, and an opcode index derived from the
// entries resolves every opcode byte to its owning variant.
type Catalog struct {
	entries []Entry
	names   map[string]int // entry index by mnemonic
	index   [256]slot      // entry and variant by opcode
}

// Build groups instruction records by mnemonic and produces a catalog.
// Records are consumed in order, so the first record of each mnemonic
// fixes that mnemonic's position in the catalog. If two records claim
// the same opcode byte, no catalog is produced.
func Build(records []Record) (*Catalog, error) {
	if len(records) == 0 {
		return nil, ErrEmptySpecification
	}

	c := &Catalog{names: make(map[string]int)}

	var claimed [256]*Record
	for i := range records {
		r := &records[i]
		if err := checkVariant(r.Line, r.Mnemonic, r.Mode, r.Length, r.Cycles); err != nil {
			return nil, err
		}
		if prev := claimed[r.Opcode]; prev != nil {
			return nil, &DuplicateOpcodeError{
				Opcode:     r.Opcode,
				First:      prev.Mnemonic,
				FirstLine:  prev.Line,
				Second:     r.Mnemonic,
				SecondLine: r.Line,
			}
		}
		claimed[r.Opcode] = r

		idx, ok := c.names[r.Mnemonic]
		if !ok {
			idx = len(c.entries)
			c.names[r.Mnemonic] = idx
			c.entries = append(c.entries, Entry{Name: r.Mnemonic})
		}

		e := &c.entries[idx]
		e.Variants = append(e.Variants, Variant{
			Mode:       r.Mode,
			Opcode:     r.Opcode,
			Length:     r.Length,
			Cycles:     r.Cycles,
			ExtraCycle: r.ExtraCycle,
		})
	}

	c.reindex()
	return c, nil
}

// New creates a catalog from a list of previously compiled entries, such
// as the static table emitted by the Go generator. The entries are
// copied and checked against the same rules Build enforces.
func New(entries []Entry) (*Catalog, error) {
	if len(entries) == 0 {
		return nil, ErrEmptySpecification
	}

	c := &Catalog{
		entries: make([]Entry, len(entries)),
		names:   make(map[string]int, len(entries)),
	}

	var claimed [256]string
	for i, e := range entries {
		if _, ok := c.names[e.Name]; ok {
			return nil, &InvalidVariantError{Mnemonic: e.Name, Reason: "mnemonic listed more than once"}
		}
		if len(e.Variants) == 0 {
			return nil, &InvalidVariantError{Mnemonic: e.Name, Reason: "no variants"}
		}
		for _, v := range e.Variants {
			if err := checkVariant(0, e.Name, v.Mode, v.Length, v.Cycles); err != nil {
				return nil, err
			}
			if prev := claimed[v.Opcode]; prev != "" {
				return nil, &DuplicateOpcodeError{Opcode: v.Opcode, First: prev, Second: e.Name}
			}
			claimed[v.Opcode] = e.Name
		}
		c.entries[i] = e.clone()
		c.names[e.Name] = i
	}

	c.reindex()
	return c, nil
}

func checkVariant(line int, name string, mode Mode, length, cycles byte) error {
	var reason string
	switch {
	case name == "" || strings.ToUpper(name) != name:
		reason = "mnemonic must be a non-empty uppercase name"
	case !mode.Valid():
		reason = "unknown addressing mode"
	case length < 1:
		reason = "length must be at least 1"
	case cycles < 1:
		reason = "cycles must be at least 1"
	default:
		return nil
	}
	return &InvalidVariantError{Line: line, Mnemonic: name, Reason: reason}
}

// Rebuild the opcode index from the entries.
func (c *Catalog) reindex() {
	c.index = [256]slot{}
	for i, e := range c.entries {
		for j, v := range e.Variants {
			c.index[v.Opcode] = slot{entry: i, variant: j, used: true}
		}
	}
}

// Len returns the number of mnemonics in the catalog.
func (c *Catalog) Len() int {
	return len(c.entries)
}

// VariantCount returns the number of variants across all mnemonics, which
// is also the number of opcode bytes in use.
func (c *Catalog) VariantCount() int {
	n := 0
	for _, e := range c.entries {
		n += len(e.Variants)
	}
	return n
}

// Entries returns a copy of all catalog entries in specification order.
func (c *Catalog) Entries() []Entry {
	entries := make([]Entry, len(c.entries))
	for i, e := range c.entries {
		entries[i] = e.clone()
	}
	return entries
}

// Entry returns a copy of the i'th entry.
func (c *Catalog) Entry(i int) Entry {
	return c.entries[i].clone()
}

// Find returns the entry whose mnemonic matches the provided string.
func (c *Catalog) Find(name string) (Entry, bool) {
	i, ok := c.names[strings.ToUpper(name)]
	if !ok {
		return Entry{}, false
	}
	return c.entries[i].clone(), true
}

// Lookup retrieves the entry and variant corresponding to the requested
// opcode. The result is false if no variant uses the opcode.
func (c *Catalog) Lookup(opcode byte) (Entry, Variant, bool) {
	s := c.index[opcode]
	if !s.used {
		return Entry{}, Variant{}, false
	}
	e := c.entries[s.entry]
	return e.clone(), e.Variants[s.variant], true
}

// Variant returns the variant of a mnemonic that uses the requested
// addressing mode. A mnemonic with a single variant returns it whatever
// the mode.
func (c *Catalog) Variant(name string, mode Mode) (Variant, bool) {
	i, ok := c.names[strings.ToUpper(name)]
	if !ok {
		return Variant{}, false
	}
	e := c.entries[i]
	if len(e.Variants) == 1 {
		return e.Variants[0], true
	}
	for _, v := range e.Variants {
		if v.Mode == mode {
			return v, true
		}
	}
	return Variant{}, false
}

// Opcodes returns all opcode bytes in use, in ascending order.
func (c *Catalog) Opcodes() []byte {
	var ops []byte
	for i := range c.index {
		if c.index[i].used {
			ops = append(ops, byte(i))
		}
	}
	return ops
}
