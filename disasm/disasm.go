// Copyright 2026 Brett Vickers. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package disasm decodes machine code using the opcode index of a
// compiled instruction catalog.
package disasm

import (
	"fmt"
	"strings"

	"github.com/beevik/opcodegen/catalog"
)

// Disassembler formatting for addressing modes
var modeFormat = [...]string{
	catalog.IMM: "#$%s",
	catalog.IMP: "%s",
	catalog.REL: "$%s",
	catalog.ZPG: "$%s",
	catalog.ZPX: "$%s,X",
	catalog.ZPY: "$%s,Y",
	catalog.ABS: "$%s",
	catalog.ABX: "$%s,X",
	catalog.ABY: "$%s,Y",
	catalog.IND: "($%s)",
	catalog.IDX: "($%s,X)",
	catalog.IDY: "($%s),Y",
	catalog.ACC: "%s",
	catalog.STK: "%s",
	catalog.REG: "%s",
	catalog.STS: "%s",
}

// Unknown is the text produced for a byte that does not start a known
// instruction.
const Unknown = "???"

var hex = "0123456789ABCDEF"

// Return a hexadecimal string representation of the byte slice. The
// bytes are little-endian, so the last byte is printed first.
func hexString(b []byte) string {
	hexlen := len(b) * 2
	hexbuf := make([]byte, hexlen)
	j := hexlen - 1
	for _, n := range b {
		hexbuf[j] = hex[n&0xf]
		hexbuf[j-1] = hex[n>>4]
		j -= 2
	}
	return string(hexbuf)
}

// Disassemble the instruction at the start of 'code', which is located at
// address 'addr'. Return a 'line' string representing the disassembled
// instruction and the number of bytes it occupies. A byte that is not a
// known opcode, or an instruction whose operand runs past the end of
// 'code', disassembles as Unknown and occupies one byte.
func Disassemble(c *catalog.Catalog, code []byte, addr uint16) (line string, length int) {
	if len(code) == 0 {
		return "", 0
	}

	e, v, ok := c.Lookup(code[0])
	if !ok || int(v.Length) > len(code) {
		return Unknown, 1
	}

	operand := code[1:v.Length]
	if v.Mode == catalog.REL && len(operand) == 1 {
		// Convert relative offset to absolute address.
		braddr := int(addr) + int(v.Length) + int(int8(operand[0]))
		operand = []byte{byte(braddr & 0xff), byte(braddr >> 8)}
	}

	format := "%s " + modeFormat[v.Mode]
	line = strings.TrimSpace(fmt.Sprintf(format, e.Name, hexString(operand)))
	return line, int(v.Length)
}

// A Line is one disassembled instruction.
type Line struct {
	Addr uint16 // address of the first byte
	Code []byte // the bytes of the instruction
	Text string // disassembled text
}

// All disassembles every instruction in 'code', which starts at address
// 'addr'.
func All(c *catalog.Catalog, code []byte, addr uint16) []Line {
	var lines []Line
	for len(code) > 0 {
		text, n := Disassemble(c, code, addr)
		lines = append(lines, Line{Addr: addr, Code: code[:n], Text: text})
		code = code[n:]
		addr += uint16(n)
	}
	return lines
}
