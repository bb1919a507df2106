// Copyright 2026 Brett Vickers. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package host implements a command shell for inspecting a compiled
// instruction catalog.
//
// Within the host it is possible to load and compile an instruction set
// specification, list its mnemonics and variants, look up opcode bytes,
// search variants with starlark predicates, disassemble machine code
// through the opcode index, bind handler names to mnemonics, and emit the
// catalog as source code.
package host

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"reflect"
	"strconv"
	"strings"

	"github.com/beevik/cmd"
	"github.com/beevik/opcodegen/catalog"
	"github.com/beevik/opcodegen/compiler"
	"github.com/beevik/opcodegen/disasm"
	"github.com/beevik/opcodegen/emit"
	"github.com/davecgh/go-spew/spew"
)

var errQuit = errors.New("exiting program")

// A Host is a command shell holding at most one compiled catalog and the
// handler bindings made for it.
type Host struct {
	input       *bufio.Scanner
	output      *bufio.Writer
	interactive bool
	lastCmd     *cmd.Command
	lastArgs    []string
	settings    *settings
	result      *compiler.Result
	bindings    *catalog.Bindings[string]
}

// New creates a new host with no catalog loaded.
func New() *Host {
	return &Host{
		settings: newSettings(),
	}
}

// Attach makes the result of a compilation the host's active catalog and
// clears all handler bindings.
func (h *Host) Attach(r *compiler.Result) {
	h.result = r
	h.bindings = catalog.NewBindings[string](r.Catalog)
}

// Load compiles a specification file and attaches the result.
func (h *Host) Load(filename string) error {
	r, err := compiler.CompileFile(filename)
	if err != nil {
		return err
	}
	h.Attach(r)
	return nil
}

// RunCommands accepts host commands from a reader and outputs the results
// to a writer. If the commands are interactive, a prompt is displayed while
// the host waits for the the next command to be entered.
func (h *Host) RunCommands(r io.Reader, w io.Writer, interactive bool) {
	h.input = bufio.NewScanner(r)
	h.output = bufio.NewWriter(w)
	h.interactive = interactive
	defer h.flush()

	if interactive {
		h.println()
		h.displaySummary()
	}

	for {
		h.prompt()

		line, err := h.getLine()
		if err != nil {
			break
		}

		line = strings.TrimSpace(line)
		if strings.HasPrefix(line, "#") {
			continue
		}

		var c *cmd.Command
		var args []string
		if line != "" {
			c, args, err = cmds.LookupCommand(line)
			switch {
			case err == cmd.ErrNotFound:
				h.println("Command not found.")
				continue
			case err == cmd.ErrAmbiguous:
				h.println("Command is ambiguous.")
				continue
			case err != nil:
				h.printf("ERROR: %v.\n", err)
				continue
			}
		} else if h.interactive && h.lastCmd != nil {
			c, args = h.lastCmd, h.lastArgs
		}

		if c == nil {
			continue
		}
		h.lastCmd, h.lastArgs = c, args

		handler := c.Data.(func(*Host, *cmd.Command, []string) error)
		err = handler(h, c, args)
		if err != nil {
			break
		}
	}
}

func (h *Host) print(args ...any) {
	fmt.Fprint(h.output, args...)
}

func (h *Host) printf(format string, args ...any) {
	fmt.Fprintf(h.output, format, args...)
	h.flush()
}

func (h *Host) println(args ...any) {
	fmt.Fprintln(h.output, args...)
	h.flush()
}

// Print items separated by spaces, perRow items to an indented line.
func (h *Host) printRows(items []string, perRow int) {
	for len(items) > 0 {
		n := min(perRow, len(items))
		h.printf("    %s\n", strings.Join(items[:n], " "))
		items = items[n:]
	}
}

func (h *Host) flush() {
	h.output.Flush()
}

func (h *Host) getLine() (string, error) {
	if h.input.Scan() {
		return h.input.Text(), nil
	}
	if h.input.Err() != nil {
		return "", h.input.Err()
	}
	return "", io.EOF
}

func (h *Host) prompt() {
	if h.interactive {
		h.printf("* ")
		h.flush()
	}
}

func (h *Host) displaySummary() {
	if h.result == nil {
		h.println("No specification loaded.")
		return
	}
	h.printf("Loaded '%s': %d mnemonics, %d opcodes.\n", h.result.Source,
		h.result.Catalog.Len(), h.result.Catalog.VariantCount())
}

// Return the active catalog, or display a message and return nil if no
// specification has been loaded.
func (h *Host) activeCatalog() *catalog.Catalog {
	if h.result == nil {
		h.println("No specification loaded.")
		return nil
	}
	return h.result.Catalog
}

func (h *Host) cmdBind(c *cmd.Command, args []string) error {
	if len(args) < 2 {
		h.displayUsage(c)
		return nil
	}

	cat := h.activeCatalog()
	if cat == nil {
		return nil
	}

	name := strings.ToUpper(args[0])
	if err := h.bindings.Bind(name, args[1]); err != nil {
		h.printf("%v\n", err)
		return nil
	}

	h.printf("Bound %s to '%s'.\n", name, args[1])
	return nil
}

func (h *Host) cmdBindings(c *cmd.Command, args []string) error {
	cat := h.activeCatalog()
	if cat == nil {
		return nil
	}

	for _, e := range cat.Entries() {
		if handler, ok := h.bindings.Handler(e.Name); ok {
			h.printf("    %-4s %s\n", e.Name, handler)
		}
	}

	unbound := h.bindings.Unbound()
	h.printf("%d bound, %d unbound.\n", h.bindings.Len(), len(unbound))
	if len(unbound) > 0 {
		h.println("Unbound:")
		h.printRows(unbound, 16)
	}
	return nil
}

func (h *Host) cmdDisassemble(c *cmd.Command, args []string) error {
	if len(args) < 2 {
		h.displayUsage(c)
		return nil
	}

	cat := h.activeCatalog()
	if cat == nil {
		return nil
	}

	var addr uint16
	switch args[0] {
	case "$":
		addr = h.settings.DisasmAddr
	default:
		a, err := h.parseAddr(args[0])
		if err != nil {
			h.printf("%v\n", err)
			return nil
		}
		addr = a
	}

	code := make([]byte, 0, len(args)-1)
	for _, arg := range args[1:] {
		v, err := evalInt(arg)
		if err != nil {
			h.printf("%v\n", err)
			return nil
		}
		if v < 0 || v > 0xff {
			h.printf("Byte value '%s' out of range.\n", arg)
			return nil
		}
		code = append(code, byte(v))
	}

	for _, l := range disasm.All(cat, code, addr) {
		h.printf("%04X-   %-8s    %s\n", l.Addr, codeString(l.Code), l.Text)
		addr = l.Addr + uint16(len(l.Code))
	}

	h.settings.DisasmAddr = addr
	return nil
}

func (h *Host) cmdDump(c *cmd.Command, args []string) error {
	cat := h.activeCatalog()
	if cat == nil {
		return nil
	}

	cfg := spew.ConfigState{Indent: "    ", DisablePointerAddresses: true}
	if len(args) > 0 {
		e, ok := cat.Find(args[0])
		if !ok {
			h.printf("Mnemonic '%s' not found.\n", args[0])
			return nil
		}
		cfg.Fdump(h.output, e)
	} else {
		cfg.Fdump(h.output, cat.Entries())
	}
	h.flush()
	return nil
}

func (h *Host) cmdEmit(c *cmd.Command, args []string) error {
	cat := h.activeCatalog()
	if cat == nil {
		return nil
	}

	format, err := emit.ParseFormat(h.settings.Format)
	if err != nil {
		h.printf("%v\n", err)
		return nil
	}

	b, err := emit.Bytes(cat, format, h.settings.emitOptions(h.result.Source))
	if err != nil {
		h.printf("%v\n", err)
		return nil
	}

	if len(args) < 1 {
		h.print(string(b))
		h.flush()
		return nil
	}

	filename := args[0]
	err = os.WriteFile(filename, b, 0644)
	if err != nil {
		h.printf("Failed to write '%s': %v\n", filename, err)
		return nil
	}

	h.printf("Emitted %s output to '%s'.\n", format, filename)
	return nil
}

func (h *Host) cmdEvaluate(c *cmd.Command, args []string) error {
	if len(args) < 1 {
		h.displayUsage(c)
		return nil
	}

	v, err := evalInt(strings.Join(args, " "))
	if err != nil {
		h.printf("%v\n", err)
		return nil
	}

	h.printf("$%04X (%d)\n", uint64(v)&0xffff, v)
	return nil
}

func (h *Host) cmdFind(c *cmd.Command, args []string) error {
	if len(args) < 1 {
		h.displayUsage(c)
		return nil
	}

	cat := h.activeCatalog()
	if cat == nil {
		return nil
	}

	p := newPredicate(strings.Join(args, " "))
	found := 0
	for _, e := range cat.Entries() {
		for _, v := range e.Variants {
			ok, err := p.Match(e.Name, v)
			if err != nil {
				h.printf("%v\n", err)
				return nil
			}
			if ok {
				h.println(variantString(e.Name, v))
				found++
			}
		}
	}

	h.printf("%d variants found.\n", found)
	return nil
}

func (h *Host) cmdHelp(c *cmd.Command, args []string) error {
	if err := cmds.GetHelp(h.output, args); err != nil {
		h.printf("%v.\n", err)
	}
	h.flush()
	return nil
}

func (h *Host) cmdList(c *cmd.Command, args []string) error {
	cat := h.activeCatalog()
	if cat == nil {
		return nil
	}

	if len(args) > 0 {
		e, ok := cat.Find(args[0])
		if !ok {
			h.printf("Mnemonic '%s' not found.\n", args[0])
			return nil
		}
		for _, v := range e.Variants {
			h.println(variantString(e.Name, v))
		}
		return nil
	}

	n := cat.Len()
	if h.settings.ListLimit > 0 && h.settings.ListLimit < n {
		n = h.settings.ListLimit
	}
	for i := 0; i < n; i++ {
		e := cat.Entry(i)
		h.printf("    %-4s %d variants\n", e.Name, len(e.Variants))
	}
	if n < cat.Len() {
		h.printf("    ... %d more\n", cat.Len()-n)
	}
	return nil
}

func (h *Host) cmdLoad(c *cmd.Command, args []string) error {
	if len(args) < 1 {
		h.displayUsage(c)
		return nil
	}

	if err := h.Load(args[0]); err != nil {
		h.printf("Failed to load '%s': %v\n", args[0], err)
		return nil
	}

	h.displaySummary()
	return nil
}

func (h *Host) cmdLookup(c *cmd.Command, args []string) error {
	if len(args) < 1 {
		h.displayUsage(c)
		return nil
	}

	cat := h.activeCatalog()
	if cat == nil {
		return nil
	}

	v, err := evalInt(strings.Join(args, " "))
	if err != nil {
		h.printf("%v\n", err)
		return nil
	}
	if v < 0 || v > 0xff {
		h.printf("Opcode $%X out of range.\n", v)
		return nil
	}

	e, variant, ok := cat.Lookup(byte(v))
	if !ok {
		h.printf("Opcode $%02X is not used.\n", v)
		return nil
	}
	h.println(variantString(e.Name, variant))
	return nil
}

func (h *Host) cmdModes(c *cmd.Command, args []string) error {
	for _, m := range catalog.Modes() {
		h.printf("    %-4s %-12s %s\n", m, m.LongName(), m.Description())
	}
	return nil
}

func (h *Host) cmdQuit(c *cmd.Command, args []string) error {
	return errQuit
}

func (h *Host) cmdReport(c *cmd.Command, args []string) error {
	if h.activeCatalog() == nil {
		return nil
	}

	r := h.result.Report
	h.printf("Read %d lines from '%s': %d matched, %d skipped.\n",
		r.Lines, h.result.Source, r.Matched, len(r.Skipped))
	if len(r.Skipped) > 0 {
		lines := make([]string, len(r.Skipped))
		for i, l := range r.Skipped {
			lines[i] = strconv.Itoa(l)
		}
		h.println("Skipped lines:")
		h.printRows(lines, 16)
	}
	return nil
}

func (h *Host) cmdSet(c *cmd.Command, args []string) error {
	switch len(args) {
	case 0:
		h.println("Variables:")
		h.settings.Display(h.output)
		h.flush()

	case 1:
		h.displayUsage(c)

	default:
		key, value := strings.ToLower(args[0]), strings.Join(args[1:], " ")

		var err error
		switch h.settings.Kind(key) {
		case reflect.Invalid:
			err = fmt.Errorf("Setting '%s' not found", key)
		case reflect.String:
			err = h.settings.Set(key, value)
		default:
			var v int64
			v, err = evalInt(value)
			if err == nil {
				err = h.settings.Set(key, v)
			}
		}

		if err == nil {
			h.println("Setting updated.")
		} else {
			h.printf("%v\n", err)
		}
	}

	return nil
}

func (h *Host) parseAddr(expr string) (uint16, error) {
	v, err := evalInt(expr)
	if err != nil {
		return 0, err
	}
	if v < 0 {
		v = 0x10000 + v
	}
	return uint16(v), nil
}

func (h *Host) displayUsage(c *cmd.Command) {
	c.DisplayUsage(h.output)
	h.flush()
}
