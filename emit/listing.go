// Copyright 2026 Brett Vickers. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package emit

import (
	"bytes"
	"fmt"

	"github.com/beevik/opcodegen/catalog"
)

func generateListing(w *bytes.Buffer, c *catalog.Catalog) {
	for _, op := range c.Opcodes() {
		e, v, _ := c.Lookup(op)
		fmt.Fprintf(w, "[%02x]: %s (%s)\n", op, e.Name, v.Mode.Description())
	}
}
