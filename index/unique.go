package index

import (
	"golang.org/x/exp/maps"

	"github.com/smasher164/lambda/term"
)

// Unique is ToUnique with a generator that lives only for this conversion.
func Unique(t term.Term[Bare]) term.Term[UID] {
	return ToUnique(t, new(Generator))
}

// ToUnique gives every binder in t a fresh tag from gen and every free name
// a single tag of its own. A name is free from the point it is first met
// outside the scope of any binder of that name.
func ToUnique(t term.Term[Bare], gen *Generator) term.Term[UID] {
	u, _ := toUnique(t, gen, map[Bare]int{}, map[Bare]int{})
	return u
}

// toUnique threads free through the traversal so that sibling subtrees agree
// on the tags already minted for free names. bound is never mutated: every
// binder extends a copy, so a binder is visible only within its own scope.
func toUnique(t term.Term[Bare], gen *Generator, free, bound map[Bare]int) (term.Term[UID], map[Bare]int) {
	switch t := t.(type) {
	case term.Var[Bare]:
		tag, ok := bound[t.ID]
		if !ok {
			tag, ok = free[t.ID]
		}
		if !ok {
			tag = gen.Next()
			free[t.ID] = tag
		}
		return term.Var[UID]{ID: UID{Name: string(t.ID), Tag: tag}}, free
	case term.App[Bare]:
		var fn, arg term.Term[UID]
		fn, free = toUnique(t.Fn, gen, free, bound)
		arg, free = toUnique(t.Arg, gen, free, bound)
		return term.App[UID]{Fn: fn, Arg: arg}, free
	case term.Abs[Bare]:
		x := UID{Name: string(t.Bound), Tag: gen.Next()}
		var body term.Term[UID]
		body, free = toUnique(t.Body, gen, free, bind(bound, t.Bound, x.Tag))
		return term.Abs[UID]{Bound: x, Body: body}, free
	case term.Pi[Bare]:
		x := UID{Name: string(t.Bound), Tag: gen.Next()}
		var dom, cod term.Term[UID]
		dom, free = toUnique(t.Domain, gen, free, bound)
		cod, free = toUnique(t.Codomain, gen, free, bind(bound, t.Bound, x.Tag))
		return term.Pi[UID]{Bound: x, Domain: dom, Codomain: cod}, free
	case term.Kind[Bare]:
		return term.Kind[UID]{Sort: t.Sort}, free
	}
	panic("unreachable")
}

func bind(bound map[Bare]int, name Bare, tag int) map[Bare]int {
	inner := maps.Clone(bound)
	inner[name] = tag
	return inner
}
