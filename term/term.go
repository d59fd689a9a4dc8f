// Package term defines lambda terms over an arbitrary identifier type.
//
// A term is an immutable tree of Var, App and Abs nodes, with Pi and Kind
// available for the dependently-typed surface syntax. Terms are never
// modified in place, so subtrees may be shared freely.
package term

import (
	"fmt"

	"github.com/hashicorp/go-set/v3"
)

// Ident is the capability set an identifier type must provide. Hash decides
// identity: two identifiers with the same hash name the same variable.
type Ident interface {
	fmt.Stringer
	set.Hasher[string]
}

type Term[I Ident] interface {
	isTerm(I)
	String() string
}

type Var[I Ident] struct {
	ID I
}

func (Var[I]) isTerm(I) {}

func (v Var[I]) String() string { return show[I](v, 0) }

type App[I Ident] struct {
	Fn  Term[I]
	Arg Term[I]
}

func (App[I]) isTerm(I) {}

func (a App[I]) String() string { return show[I](a, 0) }

type Abs[I Ident] struct {
	Bound I
	Body  Term[I]
}

func (Abs[I]) isTerm(I) {}

func (a Abs[I]) String() string { return show[I](a, 0) }

// Pi is the dependent product πBound:Domain.Codomain. Bound is in scope in
// the codomain only.
type Pi[I Ident] struct {
	Bound    I
	Domain   Term[I]
	Codomain Term[I]
}

func (Pi[I]) isTerm(I) {}

func (p Pi[I]) String() string { return show[I](p, 0) }

type Sort uint8

const (
	Star Sort = iota
	Box
)

func (s Sort) String() string {
	switch s {
	case Star:
		return "*"
	case Box:
		return "□"
	}
	panic("unreachable")
}

type Kind[I Ident] struct {
	Sort Sort
}

func (Kind[I]) isTerm(I) {}

func (k Kind[I]) String() string { return k.Sort.String() }

func NewVar[I Ident](id I) Term[I] {
	return Var[I]{ID: id}
}

func NewAbs[I Ident](bound I, body Term[I]) Term[I] {
	return Abs[I]{Bound: bound, Body: body}
}

// Apply builds the left-nested application fn a1 a2 … an.
func Apply[I Ident](fn Term[I], args ...Term[I]) Term[I] {
	for _, arg := range args {
		fn = App[I]{Fn: fn, Arg: arg}
	}
	return fn
}

// Equal reports exact structural equality. Identifiers are compared by hash,
// so binders are not renamed: λx.x and λy.y are different trees.
func Equal[I Ident](a, b Term[I]) bool {
	switch a := a.(type) {
	case Var[I]:
		b, ok := b.(Var[I])
		return ok && a.ID.Hash() == b.ID.Hash()
	case App[I]:
		b, ok := b.(App[I])
		return ok && Equal(a.Fn, b.Fn) && Equal(a.Arg, b.Arg)
	case Abs[I]:
		b, ok := b.(Abs[I])
		return ok && a.Bound.Hash() == b.Bound.Hash() && Equal(a.Body, b.Body)
	case Pi[I]:
		b, ok := b.(Pi[I])
		return ok && a.Bound.Hash() == b.Bound.Hash() &&
			Equal(a.Domain, b.Domain) && Equal(a.Codomain, b.Codomain)
	case Kind[I]:
		b, ok := b.(Kind[I])
		return ok && a.Sort == b.Sort
	}
	panic("unreachable")
}
