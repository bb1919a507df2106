// Copyright 2026 Brett Vickers. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package host

import (
	"errors"
	"fmt"
	"io"
	"reflect"
	"strings"

	"github.com/beevik/opcodegen/emit"
	"github.com/beevik/prefixtree/v2"
)

type settings struct {
	Format     string `doc:"output format of the emit command"`
	Package    string `doc:"package name of emitted Go code"`
	ImportPath string `doc:"catalog import path of emitted Go code"`
	ListLimit  int    `doc:"max mnemonics displayed by list, 0 for all"`
	DisasmAddr uint16 `doc:"address of next disassembly"`
}

func newSettings() *settings {
	return &settings{
		Format:     emit.Go.String(),
		Package:    "opcodes",
		ImportPath: emit.DefaultImportPath,
		ListLimit:  0,
		DisasmAddr: 0x0600,
	}
}

type settingsField struct {
	name  string
	index int
	kind  reflect.Kind
	typ   reflect.Type
	doc   string
}

var (
	settingsTree   = prefixtree.New[*settingsField]()
	settingsFields []settingsField
)

func init() {
	settingsType := reflect.TypeOf(settings{})
	settingsFields = make([]settingsField, settingsType.NumField())
	for i := 0; i < len(settingsFields); i++ {
		f := settingsType.Field(i)
		doc, _ := f.Tag.Lookup("doc")
		settingsFields[i] = settingsField{
			name:  f.Name,
			index: i,
			kind:  f.Type.Kind(),
			typ:   f.Type,
			doc:   doc,
		}
		settingsTree.Add(strings.ToLower(f.Name), &settingsFields[i])
	}
}

func (s *settings) Display(w io.Writer) {
	value := reflect.ValueOf(s).Elem()
	for i, f := range settingsFields {
		v := value.Field(i)
		var s string
		switch f.kind {
		case reflect.String:
			s = fmt.Sprintf("    %-12s \"%s\"", f.name, v.String())
		case reflect.Uint16:
			s = fmt.Sprintf("    %-12s $%04X", f.name, uint16(v.Uint()))
		default:
			s = fmt.Sprintf("    %-12s %v", f.name, v)
		}
		fmt.Fprintf(w, "%-48s (%s)\n", s, f.doc)
	}
}

func (s *settings) Kind(key string) reflect.Kind {
	f, err := settingsTree.FindValue(strings.ToLower(key))
	if err != nil {
		return reflect.Invalid
	}
	return f.kind
}

func (s *settings) Set(key string, value any) error {
	f, err := settingsTree.FindValue(strings.ToLower(key))
	if err != nil {
		return err
	}

	vIn := reflect.ValueOf(value)
	if (f.kind == reflect.String && vIn.Type().Kind() != reflect.String) ||
		(f.kind != reflect.String && vIn.Type().Kind() == reflect.String) ||
		!vIn.Type().ConvertibleTo(f.typ) {
		return errors.New("invalid type")
	}
	vInConverted := vIn.Convert(f.typ)

	vOut := reflect.ValueOf(s).Elem().Field(f.index)
	vOut.Set(vInConverted)

	return nil
}

// Return the emitter options described by the settings.
func (s *settings) emitOptions(source string) emit.Options {
	return emit.Options{
		Source:     source,
		Package:    s.Package,
		ImportPath: s.ImportPath,
	}
}
