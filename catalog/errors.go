// Copyright 2026 Brett Vickers. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package catalog

import (
	"errors"
	"strconv"

	"github.com/beevik/opcodegen/internal/translate"
)

var f = translate.From

var (
	// ErrEmptySpecification is returned when a specification yields no
	// instruction records at all, which usually means the wrong file was
	// supplied.
	ErrEmptySpecification = errors.New(f("specification contains no instructions"))

	// ErrUnknownMnemonic is returned when a handler is bound to a mnemonic
	// the catalog does not contain.
	ErrUnknownMnemonic = errors.New(f("unknown mnemonic"))
)

// A DuplicateOpcodeError reports two variants that claim the same opcode
// byte. The variants may belong to the same or to different mnemonics.
type DuplicateOpcodeError struct {
	Opcode     byte
	First      string // mnemonic that claimed the byte first
	FirstLine  int
	Second     string // mnemonic that claimed it again
	SecondLine int
}

func (e *DuplicateOpcodeError) Error() string {
	if e.FirstLine == 0 || e.SecondLine == 0 {
		return f("duplicate opcode $%02X: claimed by %s and %s", e.Opcode, e.First, e.Second)
	}
	return f("duplicate opcode $%02X: %s (line %s) and %s (line %s)",
		e.Opcode, e.First, strconv.Itoa(e.FirstLine), e.Second, strconv.Itoa(e.SecondLine))
}

// An InvalidVariantError reports an instruction record or entry that
// breaks a structural rule of the catalog, such as a zero cycle count.
type InvalidVariantError struct {
	Line     int // source line, or 0 when the entry was not read from text
	Mnemonic string
	Reason   string
}

func (e *InvalidVariantError) Error() string {
	if e.Line == 0 {
		return f("%s: %s", e.Mnemonic, e.Reason)
	}
	return f("line %s: %s: %s", strconv.Itoa(e.Line), e.Mnemonic, e.Reason)
}
