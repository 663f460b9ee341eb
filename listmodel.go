// Package listmodel ties the list model packages together: it reads
// declarations, builds models from them through the compiler and decoder
// or through the mutation API, and checks that both agree.
package listmodel

import (
	"fmt"

	"github.com/signadot/listmodel/bytecode"
	"github.com/signadot/listmodel/compile"
	"github.com/signadot/listmodel/debug"
	"github.com/signadot/listmodel/decl"
	"github.com/signadot/listmodel/decode"
	"github.com/signadot/listmodel/libdiff"
	"github.com/signadot/listmodel/model"
)

// Load compiles props and decodes the program into a new model.
func Load(props []compile.Property) (*model.Model, error) {
	p, err := compile.Compile(props)
	if err != nil {
		return nil, err
	}
	return FromProgram(p)
}

func FromProgram(p *bytecode.Program) (*model.Model, error) {
	m := model.New()
	if err := decode.Into(m, p); err != nil {
		return nil, err
	}
	return m, nil
}

// LoadFile reads a YAML declaration and loads it.
func LoadFile(path string) (*model.Model, error) {
	props, err := decl.ParseFile(path)
	if err != nil {
		return nil, err
	}
	m, err := Load(props)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return m, nil
}

// Build builds the model props declares by appending its items one by
// one. Declarations the compiler rejects are rejected here too.
func Build(props []compile.Property) (*model.Model, error) {
	if _, err := compile.Compile(props); err != nil {
		return nil, err
	}
	m := model.New()
	for i, item := range compile.Items(props) {
		if err := m.Append(item); err != nil {
			return nil, fmt.Errorf("item %d: %w", i, err)
		}
	}
	return m, nil
}

// Verify loads props both ways and returns the line diff of the two trees,
// which is equal when the compiled form round trips.
func Verify(props []compile.Property) (libdiff.Diff, error) {
	loaded, err := Load(props)
	if err != nil {
		return nil, err
	}
	built, err := Build(props)
	if err != nil {
		return nil, err
	}
	d := libdiff.Trees(loaded.Root(), built.Root())
	if debug.Compile() && !model.Equal(loaded.Root(), built.Root()) {
		ins, del := d.Stats()
		debug.Logf("verify: round trip differs, +%d -%d lines\n", ins, del)
	}
	return d, nil
}
