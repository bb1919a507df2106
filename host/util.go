// Copyright 2026 Brett Vickers. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package host

import (
	"fmt"

	"github.com/beevik/opcodegen/catalog"
)

func codeString(b []byte) string {
	switch len(b) {
	case 1:
		return fmt.Sprintf("%02X", b[0])
	case 2:
		return fmt.Sprintf("%02X %02X", b[0], b[1])
	case 3:
		return fmt.Sprintf("%02X %02X %02X", b[0], b[1], b[2])
	default:
		return ""
	}
}

func cyclesString(v catalog.Variant) string {
	if v.ExtraCycle {
		return fmt.Sprintf("%d+", v.Cycles)
	}
	return fmt.Sprintf("%d", v.Cycles)
}

// Return a one-line description of an opcode variant.
func variantString(name string, v catalog.Variant) string {
	return fmt.Sprintf("$%02X  %-4s %-4s %-14s length %d  cycles %s",
		v.Opcode, name, v.Mode, v.Mode.Description(), v.Length, cyclesString(v))
}
