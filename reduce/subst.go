package reduce

import (
	"golang.org/x/exp/maps"

	"github.com/smasher164/lambda/index"
)

// Subst replaces every occurrence of abs's bound identifier in its body by
// value and returns the body. abs must be an abstraction.
func Subst(abs, value Term) Term {
	a, ok := abs.(Abs)
	if !ok {
		panic("reduce: only an abstraction can be substituted")
	}
	return replace(a.Body, a.Bound, func() Term { return value })
}

// replace substitutes with() for every occurrence of x in t. It stops at a
// binder of x, whose body cannot mention the outer x.
func replace(t Term, x index.UID, with func() Term) Term {
	switch t := t.(type) {
	case Var:
		if t.ID.Equal(x) {
			return with()
		}
		return t
	case App:
		return App{Fn: replace(t.Fn, x, with), Arg: replace(t.Arg, x, with)}
	case Abs:
		if t.Bound.Equal(x) {
			return t
		}
		return Abs{Bound: t.Bound, Body: replace(t.Body, x, with)}
	case Pi:
		dom := replace(t.Domain, x, with)
		if t.Bound.Equal(x) {
			return Pi{Bound: t.Bound, Domain: dom, Codomain: t.Codomain}
		}
		return Pi{Bound: t.Bound, Domain: dom, Codomain: replace(t.Codomain, x, with)}
	case Kind:
		return t
	}
	panic("unreachable")
}

// retag copies t giving each of its binders a new tag from gen. Occurrences
// bound inside t follow their binder; everything else is left as is.
func retag(t Term, gen *index.Generator, fresh map[int]int) Term {
	switch t := t.(type) {
	case Var:
		if tag, ok := fresh[t.ID.Tag]; ok {
			return Var{ID: index.UID{Name: t.ID.Name, Tag: tag}}
		}
		return t
	case App:
		return App{Fn: retag(t.Fn, gen, fresh), Arg: retag(t.Arg, gen, fresh)}
	case Abs:
		x, inner := rebind(t.Bound, gen, fresh)
		return Abs{Bound: x, Body: retag(t.Body, gen, inner)}
	case Pi:
		dom := retag(t.Domain, gen, fresh)
		x, inner := rebind(t.Bound, gen, fresh)
		return Pi{Bound: x, Domain: dom, Codomain: retag(t.Codomain, gen, inner)}
	case Kind:
		return t
	}
	panic("unreachable")
}

func rebind(x index.UID, gen *index.Generator, fresh map[int]int) (index.UID, map[int]int) {
	inner := maps.Clone(fresh)
	tag := gen.Next()
	inner[x.Tag] = tag
	return index.UID{Name: x.Name, Tag: tag}, inner
}
