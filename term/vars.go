package term

import "github.com/hashicorp/go-set/v3"

// FreeVars returns the identifiers occurring in t that are not bound by an
// enclosing abstraction. An inner binder shadowing an outer one of the same
// identity never yields a free occurrence.
func FreeVars[I Ident](t Term[I]) *set.HashSet[I, string] {
	free := set.NewHashSet[I, string](0)
	collectFree(t, set.NewHashSet[I, string](0), free)
	return free
}

func collectFree[I Ident](t Term[I], bound, free *set.HashSet[I, string]) {
	switch t := t.(type) {
	case Var[I]:
		if !bound.Contains(t.ID) {
			free.Insert(t.ID)
		}
	case App[I]:
		collectFree(t.Fn, bound, free)
		collectFree(t.Arg, bound, free)
	case Abs[I]:
		collectFree(t.Body, withBound(bound, t.Bound), free)
	case Pi[I]:
		collectFree(t.Domain, bound, free)
		collectFree(t.Codomain, withBound(bound, t.Bound), free)
	case Kind[I]:
	default:
		panic("unreachable")
	}
}

func withBound[I Ident](bound *set.HashSet[I, string], id I) *set.HashSet[I, string] {
	inner := bound.Copy()
	inner.Insert(id)
	return inner
}

// Vars returns every variable occurrence in t, left to right.
func Vars[I Ident](t Term[I]) []I {
	var ids []I
	walk(t, func(id I, binder bool) {
		if !binder {
			ids = append(ids, id)
		}
	})
	return ids
}

// Idents returns every identifier in t, binders included, in pre-order.
func Idents[I Ident](t Term[I]) []I {
	var ids []I
	walk(t, func(id I, _ bool) {
		ids = append(ids, id)
	})
	return ids
}

func walk[I Ident](t Term[I], visit func(id I, binder bool)) {
	switch t := t.(type) {
	case Var[I]:
		visit(t.ID, false)
	case App[I]:
		walk(t.Fn, visit)
		walk(t.Arg, visit)
	case Abs[I]:
		visit(t.Bound, true)
		walk(t.Body, visit)
	case Pi[I]:
		visit(t.Bound, true)
		walk(t.Domain, visit)
		walk(t.Codomain, visit)
	case Kind[I]:
	default:
		panic("unreachable")
	}
}
