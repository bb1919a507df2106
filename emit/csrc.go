// Copyright 2026 Brett Vickers. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package emit

import (
	"bytes"
	"fmt"

	"github.com/beevik/opcodegen/catalog"
)

// Generate C tables in the layout expected by instr.h: one subinstr_t
// array per mnemonic, followed by the instr_t list and its accessors.
func generateC(w *bytes.Buffer, c *catalog.Catalog) {
	entries := c.Entries()

	w.WriteString("#include <stdlib.h>\n\n")
	w.WriteString("#include \"cpu.h\"\n")
	w.WriteString("#include \"instr.h\"\n\n")

	for _, e := range entries {
		fmt.Fprintf(w, "subinstr_t %s[] = {\n", cListName(e))
		for i, v := range e.Variants {
			w.WriteString("\t(subinstr_t) {\n")
			fmt.Fprintf(w, "\t\t.opcode = 0x%x,\n", v.Opcode)
			fmt.Fprintf(w, "\t\t.cycles = %d,\n", v.Cycles)
			fmt.Fprintf(w, "\t\t.length = %d,\n", v.Length)
			fmt.Fprintf(w, "\t\t.mode = %s,\n", cMode(v))
			w.WriteString("\t\t.supported = CPU_6502_CORE\n")
			if i < len(e.Variants)-1 {
				w.WriteString("\t},\n")
			} else {
				w.WriteString("\t}\n")
			}
		}
		w.WriteString("};\n\n")
	}

	w.WriteString("instr_t instr_list[] = {\n")
	for i, e := range entries {
		w.WriteString("\t(instr_t) {\n")
		fmt.Fprintf(w, "\t\t.name = %q,\n", e.Name)
		fmt.Fprintf(w, "\t\t.list = %s,\n", cListName(e))
		fmt.Fprintf(w, "\t\t.size = %d,\n", len(e.Variants))
		w.WriteString("\t\t.action = NULL\n")
		if i < len(entries)-1 {
			w.WriteString("\t},\n")
		} else {
			w.WriteString("\t}\n")
		}
	}
	w.WriteString("};\n\n")

	w.WriteString("instr_t* get_instr_list(void) {\n")
	w.WriteString("\treturn instr_list;\n")
	w.WriteString("}\n\n")
	w.WriteString("size_t get_instr_list_size(void) {\n")
	w.WriteString("\treturn sizeof(instr_list) / sizeof(*instr_list);\n")
	w.WriteString("}\n")
}

// The C tables name single-variant arrays differently from multi-variant
// ones. Both are ordinary arrays.
func cListName(e catalog.Entry) string {
	if len(e.Variants) > 1 {
		return makeIdentUnderscores(e.Name) + "_list"
	}
	return makeIdentUnderscores(e.Name) + "_single"
}

func cMode(v catalog.Variant) string {
	s := "MODE_" + v.Mode.LongName()
	if v.ExtraCycle {
		s += " | MODE_EXTRA_CYCLE"
	}
	return s
}
