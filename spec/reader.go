// Copyright 2026 Brett Vickers. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package spec reads line-oriented instruction set specifications.
//
// Each instruction encoding occupies one line of the form
//
//	<MODE> <MNEMONIC> $<HEX> <LENGTH> <CYCLES>[+]
//
// for example "ABSOLUTE_X LDA $BD 3 4+". A trailing '+' on the cycle count
// marks a variant that may take one extra cycle at execution time. Lines
// that don't have this form, such as comments, headings and blank lines,
// are skipped.
package spec

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/beevik/opcodegen/catalog"
	"github.com/beevik/opcodegen/internal/translate"
)

var f = translate.From

// ErrInternal is wrapped by errors caused by a line that matched the
// specification grammar but whose fields could not be converted. This
// indicates a bug in the reader, not a problem with the input.
var ErrInternal = errors.New(f("internal error"))

// An UnknownModeError reports a well-formed line whose addressing mode
// tag is not a known mode.
type UnknownModeError struct {
	Line int
	Tag  string
}

func (e *UnknownModeError) Error() string {
	return f("line %s: unknown addressing mode %s", strconv.Itoa(e.Line), e.Tag)
}

var lineExp = regexp.MustCompile(`^([A-Z_]+)\s+([A-Z]{3})\s+\$([0-9A-Fa-f]{2})\s+([0-9])\s+([0-9])(\+?)$`)

// A Report summarizes a pass over a specification.
type Report struct {
	Lines   int   // total lines read
	Matched int   // lines that produced a record
	Skipped []int // line numbers of non-blank lines that were skipped
}

// Read parses a specification and returns its instruction records in the
// order they appear. Lines that don't match the grammar are skipped and
// listed in the report.
func Read(r io.Reader) ([]catalog.Record, *Report, error) {
	var records []catalog.Record
	report := &Report{}

	s := bufio.NewScanner(r)
	s.Buffer(make([]byte, 0, 64*1024), math.MaxInt32)
	for s.Scan() {
		report.Lines++
		line := strings.TrimSuffix(s.Text(), "\r")

		rec, ok, err := ParseLine(line, report.Lines)
		switch {
		case err != nil:
			return nil, nil, err
		case !ok:
			if strings.TrimSpace(line) != "" {
				report.Skipped = append(report.Skipped, report.Lines)
			}
			continue
		}

		records = append(records, rec)
		report.Matched++
	}
	if err := s.Err(); err != nil {
		return nil, nil, fmt.Errorf("%s: %w", f("reading specification"), err)
	}

	return records, report, nil
}

// ParseLine parses a single specification line. The result is false if
// the line does not match the grammar.
func ParseLine(line string, lineNumber int) (catalog.Record, bool, error) {
	m := lineExp.FindStringSubmatch(line)
	if m == nil {
		return catalog.Record{}, false, nil
	}

	mode, ok := catalog.ParseMode(m[1])
	if !ok {
		return catalog.Record{}, false, &UnknownModeError{Line: lineNumber, Tag: m[1]}
	}

	opcode, err := strconv.ParseUint(m[3], 16, 8)
	if err != nil {
		return catalog.Record{}, false, internalError(lineNumber, "opcode", err)
	}
	length, err := strconv.ParseUint(m[4], 10, 8)
	if err != nil {
		return catalog.Record{}, false, internalError(lineNumber, "length", err)
	}
	cycles, err := strconv.ParseUint(m[5], 10, 8)
	if err != nil {
		return catalog.Record{}, false, internalError(lineNumber, "cycles", err)
	}

	return catalog.Record{
		Mode:       mode,
		Mnemonic:   m[2],
		Opcode:     byte(opcode),
		Length:     byte(length),
		Cycles:     byte(cycles),
		ExtraCycle: m[6] == "+",
		Line:       lineNumber,
	}, true, nil
}

func internalError(line int, field string, err error) error {
	return fmt.Errorf("%w: line %d: %s: %v", ErrInternal, line, field, err)
}
