// Copyright 2026 Brett Vickers. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package catalog

// Mode describes a memory addressing mode.
type Mode byte

// All known memory addressing modes
const (
	IMM Mode = iota // Immediate
	IMP             // Implied
	REL             // Relative (branch)
	ZPG             // Zero Page
	ZPX             // Zero Page,X
	ZPY             // Zero Page,Y
	ABS             // Absolute
	ABX             // Absolute,X
	ABY             // Absolute,Y
	IND             // (Indirect)
	IDX             // (Indirect,X)
	IDY             // (Indirect),Y
	ACC             // Accumulator
	STK             // Stack
	REG             // Register transfer
	STS             // Status flag

	modeCount
)

// Naming data for each addressing mode, indexed by Mode.
var modeNames = [modeCount]struct {
	short string // tag used by the emitters and listings
	long  string // tag used by the C opcode tables
	desc  string // human-readable description
}{
	IMM: {"IMM", "IMMEDIATE", "Immediate"},
	IMP: {"IMP", "IMPLIED", "Implied"},
	REL: {"REL", "BRANCH", "Branch"},
	ZPG: {"ZPG", "ZERO_PAGE", "Zero Page"},
	ZPX: {"ZPX", "ZERO_PAGE_X", "Zero Page, X"},
	ZPY: {"ZPY", "ZERO_PAGE_Y", "Zero Page, Y"},
	ABS: {"ABS", "ABSOLUTE", "Absolute"},
	ABX: {"ABX", "ABSOLUTE_X", "Absolute, X"},
	ABY: {"ABY", "ABSOLUTE_Y", "Absolute, Y"},
	IND: {"IND", "INDIRECT", "Indirect"},
	IDX: {"IDX", "INDIRECT_X", "Indirect, X"},
	IDY: {"IDY", "INDIRECT_Y", "Indirect, Y"},
	ACC: {"ACC", "ACCUMULATOR", "Accumulator"},
	STK: {"STK", "STACK", "Stack"},
	REG: {"REG", "REGISTER", "Register"},
	STS: {"STS", "STATUS", "Status"},
}

var modeTags map[string]Mode

func init() {
	modeTags = make(map[string]Mode, 2*int(modeCount)+1)
	for m := Mode(0); m < modeCount; m++ {
		modeTags[modeNames[m].short] = m
		modeTags[modeNames[m].long] = m
	}
	modeTags["RELATIVE"] = REL
}

// ParseMode returns the addressing mode named by tag. Both the short
// three-letter tags ("ZPX") and the long tags ("ZERO_PAGE_X") are accepted.
func ParseMode(tag string) (Mode, bool) {
	m, ok := modeTags[tag]
	return m, ok
}

// Modes returns all known addressing modes in enumeration order.
func Modes() []Mode {
	modes := make([]Mode, modeCount)
	for i := range modes {
		modes[i] = Mode(i)
	}
	return modes
}

// Valid reports whether m is a known addressing mode.
func (m Mode) Valid() bool {
	return m < modeCount
}

// String returns the short tag of the addressing mode.
func (m Mode) String() string {
	if !m.Valid() {
		return "???"
	}
	return modeNames[m].short
}

// LongName returns the long tag of the addressing mode, as used by the
// C opcode tables.
func (m Mode) LongName() string {
	if !m.Valid() {
		return "INVALID_ENTRY"
	}
	return modeNames[m].long
}

// Description returns a human-readable description of the addressing mode.
func (m Mode) Description() string {
	if !m.Valid() {
		return "Unknown"
	}
	return modeNames[m].desc
}
