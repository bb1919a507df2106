// Copyright 2026 Brett Vickers. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package host

import (
	"errors"
	"fmt"
	"strings"

	"github.com/beevik/opcodegen/catalog"
	"go.starlark.net/starlark"
	"go.starlark.net/syntax"
)

var errExprParse = errors.New("expression syntax error")

// Evaluate a starlark expression with a set of predeclared values.
func evalStarlark(expr string, pred starlark.StringDict) (starlark.Value, error) {
	thread := starlark.Thread{Name: "host"}
	opts := syntax.FileOptions{}
	prog := "rc=" + expr + "\n"
	dict, err := starlark.ExecFileOptions(&opts, &thread, "expr", prog, pred)
	if err != nil {
		return nil, err
	}
	rc, ok := dict["rc"]
	if !ok {
		return nil, errExprParse
	}
	return rc, nil
}

// Evaluate an integer expression. Hexadecimal literals may use the 6502
// assembler's '$' prefix.
func evalInt(expr string) (int64, error) {
	expr = strings.ReplaceAll(expr, "$", "0x")
	rc, err := evalStarlark(expr, nil)
	if err != nil {
		return 0, err
	}
	i, ok := rc.(starlark.Int)
	if !ok {
		return 0, fmt.Errorf("'%s' is not an integer expression", expr)
	}
	v, ok := i.Int64()
	if !ok {
		return 0, fmt.Errorf("'%s' is out of range", expr)
	}
	return v, nil
}

// A predicate is a starlark expression tested against each
// variant of a catalog.
type predicate struct {
	expr string
	base starlark.StringDict
}

func newPredicate(expr string) *predicate {
	base := starlark.StringDict{}
	for _, m := range catalog.Modes() {
		base[m.String()] = starlark.String(m.String())
	}
	return &predicate{expr: expr, base: base}
}

// Match reports whether the predicate is true for a variant of a mnemonic.
func (p *predicate) Match(name string, v catalog.Variant) (bool, error) {
	pred := make(starlark.StringDict, len(p.base)+6)
	for k, val := range p.base {
		pred[k] = val
	}
	pred["name"] = starlark.String(name)
	pred["mode"] = starlark.String(v.Mode.String())
	pred["opcode"] = starlark.MakeInt(int(v.Opcode))
	pred["length"] = starlark.MakeInt(int(v.Length))
	pred["cycles"] = starlark.MakeInt(int(v.Cycles))
	pred["extra"] = starlark.Bool(v.ExtraCycle)

	rc, err := evalStarlark(p.expr, pred)
	if err != nil {
		return false, err
	}
	return bool(rc.Truth()), nil
}
