// Copyright 2026 Brett Vickers. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package host

import "github.com/beevik/cmd"

var cmds *cmd.Tree

func init() {
	root := cmd.NewTree(cmd.TreeDescriptor{Name: "opcodegen"})
	root.AddCommand(cmd.CommandDescriptor{
		Name:        "help",
		Description: "Display help for a command.",
		Usage:       "help [<command>]",
		Data:        (*Host).cmdHelp,
	})
	root.AddCommand(cmd.CommandDescriptor{
		Name:  "bind",
		Brief: "Bind a handler name to a mnemonic",
		Description: "Record the name of the handler that will execute a" +
			" mnemonic. Every variant of the mnemonic shares the handler." +
			" Binding a mnemonic again replaces its handler.",
		Usage: "bind <mnemonic> <handler>",
		Data:  (*Host).cmdBind,
	})
	root.AddCommand(cmd.CommandDescriptor{
		Name:  "bindings",
		Brief: "List handler bindings",
		Description: "List the handler bound to each mnemonic, followed by" +
			" the mnemonics that have no handler yet.",
		Usage: "bindings",
		Data:  (*Host).cmdBindings,
	})
	root.AddCommand(cmd.CommandDescriptor{
		Name:  "disassemble",
		Brief: "Disassemble bytes",
		Description: "Disassemble a sequence of machine code bytes that" +
			" starts at the requested address. Each byte may be an" +
			" expression. Bytes that do not start a known instruction are" +
			" displayed as ???.",
		Usage: "disassemble <address> <byte> [<byte> ...]",
		Data:  (*Host).cmdDisassemble,
	})
	root.AddCommand(cmd.CommandDescriptor{
		Name:  "dump",
		Brief: "Dump catalog data structures",
		Description: "Dump the Go data structures of a mnemonic's catalog" +
			" entry, or of the whole catalog when no mnemonic is given.",
		Usage: "dump [<mnemonic>]",
		Data:  (*Host).cmdDump,
	})
	root.AddCommand(cmd.CommandDescriptor{
		Name:  "emit",
		Brief: "Emit the catalog as source code",
		Description: "Serialize the loaded catalog using the current Format," +
			" Package and ImportPath settings. The output is written to the" +
			" named file, or displayed when no file is given.",
		Usage: "emit [<filename>]",
		Data:  (*Host).cmdEmit,
	})
	root.AddCommand(cmd.CommandDescriptor{
		Name:        "evaluate",
		Brief:       "Evaluate an expression",
		Description: "Evaluate a mathematical expression.",
		Usage:     "evaluate <expression>",
		Data:        (*Host).cmdEvaluate,
	})
	root.AddCommand(cmd.CommandDescriptor{
		Name:  "find",
		Brief: "Find variants matching a predicate",
		Description: "Display every variant for which a starlark predicate" +
			" is true. The predicate may use the variables name, mode," +
			" opcode, length, cycles and extra. Mode tags such as ABX are" +
			" predeclared, so 'mode == ABX and extra' is a valid predicate.",
		Usage: "find <predicate>",
		Data:  (*Host).cmdFind,
	})
	root.AddCommand(cmd.CommandDescriptor{
		Name:  "list",
		Brief: "List mnemonics or variants",
		Description: "Without arguments, list every mnemonic in the catalog" +
			" along with its number of variants. With a mnemonic, list the" +
			" variants of that mnemonic in specification order.",
		Usage: "list [<mnemonic>]",
		Data:  (*Host).cmdList,
	})
	root.AddCommand(cmd.CommandDescriptor{
		Name:  "load",
		Brief: "Load an instruction set specification",
		Description: "Compile an instruction set specification file and make" +
			" its catalog the active catalog. Handler bindings are reset.",
		Usage: "load <filename>",
		Data:  (*Host).cmdLoad,
	})
	root.AddCommand(cmd.CommandDescriptor{
		Name:        "lookup",
		Brief:       "Look up an opcode byte",
		Description: "Display the mnemonic and variant assigned to an opcode byte.",
		Usage:     "lookup <opcode>",
		Data:        (*Host).cmdLookup,
	})
	root.AddCommand(cmd.CommandDescriptor{
		Name:        "modes",
		Brief:       "List addressing modes",
		Description: "List every known addressing mode and its tags.",
		Usage:     "modes",
		Data:        (*Host).cmdModes,
	})
	root.AddCommand(cmd.CommandDescriptor{
		Name:        "quit",
		Brief:       "Quit the program",
		Description: "Quit the program.",
		Usage:     "quit",
		Data:        (*Host).cmdQuit,
	})
	root.AddCommand(cmd.CommandDescriptor{
		Name:  "report",
		Brief: "Display the specification read report",
		Description: "Display the number of lines read from the loaded" +
			" specification, and the line numbers of all lines that were" +
			" skipped because they did not match the grammar.",
		Usage: "report",
		Data:  (*Host).cmdReport,
	})
	root.AddCommand(cmd.CommandDescriptor{
		Name:  "set",
		Brief: "Set a configuration variable",
		Description: "Set the value of a configuration variable. To see the" +
			" current values of all configuration variables, type set" +
			" without any arguments.",
		Usage: "set [<var> <value>]",
		Data:  (*Host).cmdSet,
	})

	// Add command shortcuts.
	root.AddShortcut("?", "help")
	root.AddShortcut("d", "disassemble")
	root.AddShortcut("e", "evaluate")
	root.AddShortcut("f", "find")
	root.AddShortcut("l", "list")

	cmds = root
}
