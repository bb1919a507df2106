// Copyright 2026 Brett Vickers. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package catalog

import (
	"fmt"
	"strings"
)

// Bindings associates an execution handler with each mnemonic of a
// catalog. The catalog itself never holds handlers; an execution engine
// creates its own Bindings at startup and fills it in.
//
// Bindings is not safe for concurrent modification.
type Bindings[H any] struct {
	cat      *Catalog
	handlers map[string]H
}

// NewBindings creates an empty handler table for the catalog. Every
// mnemonic starts out unbound.
func NewBindings[H any](c *Catalog) *Bindings[H] {
	return &Bindings[H]{
		cat:      c,
		handlers: make(map[string]H, c.Len()),
	}
}

// Bind sets the handler for a mnemonic, replacing any previous handler.
func (b *Bindings[H]) Bind(name string, h H) error {
	name = strings.ToUpper(name)
	if _, ok := b.cat.names[name]; !ok {
		return fmt.Errorf("%w: %s", ErrUnknownMnemonic, name)
	}
	b.handlers[name] = h
	return nil
}

// Handler returns the handler bound to a mnemonic.
func (b *Bindings[H]) Handler(name string) (H, bool) {
	h, ok := b.handlers[strings.ToUpper(name)]
	return h, ok
}

// Resolve decodes an opcode byte into its entry, variant, and handler.
// The result is false if the opcode is unused or its mnemonic is unbound.
func (b *Bindings[H]) Resolve(opcode byte) (Entry, Variant, H, bool) {
	var zero H
	e, v, ok := b.cat.Lookup(opcode)
	if !ok {
		return Entry{}, Variant{}, zero, false
	}
	h, ok := b.handlers[e.Name]
	if !ok {
		return e, v, zero, false
	}
	return e, v, h, true
}

// Len returns the number of bound mnemonics.
func (b *Bindings[H]) Len() int {
	return len(b.handlers)
}

// Unbound returns the mnemonics that have no handler, in catalog order.
func (b *Bindings[H]) Unbound() []string {
	var names []string
	for _, e := range b.cat.entries {
		if _, ok := b.handlers[e.Name]; !ok {
			names = append(names, e.Name)
		}
	}
	return names
}
