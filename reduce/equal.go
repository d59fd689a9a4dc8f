package reduce

import (
	"fmt"

	"github.com/hashicorp/go-set/v3"
	"github.com/samber/lo"

	"github.com/smasher164/lambda/index"
	"github.com/smasher164/lambda/term"
)

// Equal reports whether a and b are equal up to renaming of bound variables
// and eta-conversion. Both are applied to a variable occurring in neither,
// reduced to normal form and compared with bound names ignored; free
// variables are compared by name.
func Equal(a, b Term, opts ...Option) (bool, error) {
	hole := Var{ID: index.UID{Name: holeName(a, b), Tag: index.GeneratorFor(a, b).Next()}}
	ca, err := canonical(a, hole, opts)
	if err != nil {
		return false, err
	}
	cb, err := canonical(b, hole, opts)
	if err != nil {
		return false, err
	}
	return term.DeBruijn(ca) == term.DeBruijn(cb), nil
}

// holeName picks a name no free variable of a or b has; canonical forms
// compare free variables by name.
func holeName(a, b Term) string {
	names := set.From(lo.Map(append(term.FreeVars(a).Slice(), term.FreeVars(b).Slice()...), func(id index.UID, _ int) string {
		return id.Name
	}))
	name := "_"
	for names.Contains(name) {
		name = index.Fresh(name)
	}
	return name
}

func canonical(t Term, hole Var, opts []Option) (term.Term[index.Bare], error) {
	bare, err := index.ToBare(NF(App{Fn: t, Arg: hole}, opts...))
	if err != nil {
		return nil, fmt.Errorf("canonical form of %v: %w", t, err)
	}
	return bare, nil
}
