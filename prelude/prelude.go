// Package prelude provides named closed terms that can be referred to by
// name in source text.
//
// Definitions are written in CUE as a map from name to term source:
//
//	definitions: {
//		"I": "λx.x"
//		"omega": "(λx.x x) (λx.x x)"
//	}
//
// A definition may use other definitions. After expansion every definition
// must be closed, and definitions must not refer to themselves.
package prelude

import (
	_ "embed"
	"errors"
	"fmt"
	"os"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	"github.com/hashicorp/go-set/v3"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"

	"github.com/smasher164/lambda/index"
	"github.com/smasher164/lambda/parser"
	"github.com/smasher164/lambda/term"
)

var (
	// ErrCyclic reports a definition that refers to itself, directly or not.
	ErrCyclic = errors.New("cyclic definition")
	// ErrOpen reports a definition with free variables left after expansion.
	ErrOpen = errors.New("open definition")
)

//go:embed schema.cue
var schema string

//go:embed prelude.cue
var builtin []byte

// Prelude is a set of expanded definitions.
type Prelude struct {
	defs map[string]term.Term[index.Bare]
}

// Builtin returns the prelude shipped with the package.
func Builtin() (*Prelude, error) {
	return Compile(builtin, "prelude.cue")
}

// Load reads a prelude from a CUE file.
func Load(path string) (*Prelude, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading prelude: %w", err)
	}
	return Compile(data, path)
}

// Compile builds a prelude from CUE source. filename is used in error
// messages only.
func Compile(data []byte, filename string) (*Prelude, error) {
	ctx := cuecontext.New()
	v := ctx.CompileBytes(data, cue.Filename(filename))
	if err := v.Err(); err != nil {
		return nil, fmt.Errorf("compiling %s: %w", filename, err)
	}
	s := ctx.CompileString(schema, cue.Filename("schema.cue"))
	if err := s.Err(); err != nil {
		return nil, fmt.Errorf("compiling prelude schema: %w", err)
	}
	v = s.LookupPath(cue.ParsePath("#Prelude")).Unify(v)
	if err := v.Validate(cue.Concrete(true)); err != nil {
		return nil, fmt.Errorf("validating %s: %w", filename, err)
	}

	raw := map[string]term.Term[index.Bare]{}
	iter, err := v.LookupPath(cue.ParsePath("definitions")).Fields()
	if err != nil {
		return nil, fmt.Errorf("reading definitions of %s: %w", filename, err)
	}
	for iter.Next() {
		name := iter.Selector().Unquoted()
		src, err := iter.Value().String()
		if err != nil {
			return nil, fmt.Errorf("definition %s: %w", name, err)
		}
		t, err := parser.Parse(src)
		if err != nil {
			return nil, fmt.Errorf("definition %s: %w", name, err)
		}
		raw[name] = t
	}

	p := &Prelude{defs: make(map[string]term.Term[index.Bare], len(raw))}
	for _, name := range sortedKeys(raw) {
		if err := p.resolve(name, raw, set.New[string](0)); err != nil {
			return nil, err
		}
	}
	return p, nil
}

// resolve expands the definition of name, first resolving every definition
// it mentions. visiting holds the definitions currently being resolved.
func (p *Prelude) resolve(name string, raw map[string]term.Term[index.Bare], visiting *set.Set[string]) error {
	if _, ok := p.defs[name]; ok {
		return nil
	}
	if visiting.Contains(name) {
		return fmt.Errorf("definition %s: %w", name, ErrCyclic)
	}
	visiting.Insert(name)
	defer visiting.Remove(name)

	t := raw[name]
	for _, x := range term.FreeVars(t).Slice() {
		if _, ok := raw[string(x)]; ok {
			if err := p.resolve(string(x), raw, visiting); err != nil {
				return err
			}
		}
	}
	t = p.Expand(t)
	if free := term.FreeVars(t); !free.Empty() {
		names := free.Slice()
		slices.Sort(names)
		return fmt.Errorf("definition %s mentions %v: %w", name, names, ErrOpen)
	}
	p.defs[name] = t
	return nil
}

// Lookup returns the expanded definition of name.
func (p *Prelude) Lookup(name string) (term.Term[index.Bare], bool) {
	t, ok := p.defs[name]
	return t, ok
}

// Names returns the defined names in sorted order.
func (p *Prelude) Names() []string {
	return sortedKeys(p.defs)
}

func sortedKeys[V any](m map[string]V) []string {
	keys := maps.Keys(m)
	slices.Sort(keys)
	return keys
}

// Expand replaces every free occurrence of a defined name in t by its
// definition. A binder of the same name hides the definition in its scope.
func (p *Prelude) Expand(t term.Term[index.Bare]) term.Term[index.Bare] {
	if p == nil {
		return t
	}
	return p.expand(t, set.New[index.Bare](0))
}

func (p *Prelude) expand(t term.Term[index.Bare], bound *set.Set[index.Bare]) term.Term[index.Bare] {
	switch t := t.(type) {
	case term.Var[index.Bare]:
		if def, ok := p.defs[string(t.ID)]; ok && !bound.Contains(t.ID) {
			return def
		}
		return t
	case term.App[index.Bare]:
		return term.App[index.Bare]{Fn: p.expand(t.Fn, bound), Arg: p.expand(t.Arg, bound)}
	case term.Abs[index.Bare]:
		return term.Abs[index.Bare]{Bound: t.Bound, Body: p.expand(t.Body, with(bound, t.Bound))}
	case term.Pi[index.Bare]:
		return term.Pi[index.Bare]{
			Bound:    t.Bound,
			Domain:   p.expand(t.Domain, bound),
			Codomain: p.expand(t.Codomain, with(bound, t.Bound)),
		}
	case term.Kind[index.Bare]:
		return t
	}
	panic("unreachable")
}

func with(bound *set.Set[index.Bare], x index.Bare) *set.Set[index.Bare] {
	inner := bound.Copy()
	inner.Insert(x)
	return inner
}
