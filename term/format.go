package term

import (
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/exp/slices"
)

// Precedence levels for show. Application binds tighter than abstraction;
// the right operand of an application needs the highest level.
const (
	precBinder = iota
	precAppFn
	precAppArg
)

func show[I Ident](t Term[I], prec int) string {
	switch t := t.(type) {
	case Var[I]:
		return t.ID.String()
	case App[I]:
		return paren(prec > precAppFn, show(t.Fn, precAppFn)+" "+show(t.Arg, precAppArg))
	case Abs[I]:
		return paren(prec > precBinder, "λ"+t.Bound.String()+"."+show(t.Body, precBinder))
	case Pi[I]:
		s := "π" + t.Bound.String() + ":" + show(t.Domain, precAppFn) + "." + show(t.Codomain, precBinder)
		return paren(prec > precBinder, s)
	case Kind[I]:
		return t.Sort.String()
	}
	panic("unreachable")
}

func paren(wrap bool, s string) string {
	if wrap {
		return "(" + s + ")"
	}
	return s
}

// DeBruijn renders t with bound variables replaced by their De Bruijn index.
// Free variables keep their names, so two terms render identically exactly
// when they are alpha-equivalent.
func DeBruijn[I Ident](t Term[I]) string {
	return deBruijn(t, nil)
}

func deBruijn[I Ident](t Term[I], ctx []string) string {
	switch t := t.(type) {
	case Var[I]:
		if i := slices.Index(ctx, t.ID.Hash()); i >= 0 {
			return strconv.Itoa(i)
		}
		return t.ID.String()
	case App[I]:
		return "(" + deBruijn(t.Fn, ctx) + " " + deBruijn(t.Arg, ctx) + ")"
	case Abs[I]:
		return "(λ." + deBruijn(t.Body, prepend(t.Bound.Hash(), ctx)) + ")"
	case Pi[I]:
		return "(π:" + deBruijn(t.Domain, ctx) + "." + deBruijn(t.Codomain, prepend(t.Bound.Hash(), ctx)) + ")"
	case Kind[I]:
		return t.Sort.String()
	}
	panic("unreachable")
}

func prepend[T any](v T, from []T) []T {
	return append([]T{v}, from...)
}

// Tree draws t as an indented tree, one node per line.
func Tree[I Ident](t Term[I]) string {
	buf := new(strings.Builder)
	fmt.Fprintln(buf, label(t))
	printChildren(buf, "", childrenOf(t))
	return buf.String()
}

func printChildren[I Ident](buf *strings.Builder, indent string, children []Term[I]) {
	for i, t := range children {
		switch i {
		case len(children) - 1:
			fmt.Fprintf(buf, "%s└─%s\n", indent, label(t))
			printChildren(buf, indent+"  ", childrenOf(t))
		default:
			fmt.Fprintf(buf, "%s├─%s\n", indent, label(t))
			printChildren(buf, indent+"│ ", childrenOf(t))
		}
	}
}

func label[I Ident](t Term[I]) string {
	switch t := t.(type) {
	case Var[I]:
		return t.ID.String()
	case App[I]:
		return "@"
	case Abs[I]:
		return "λ" + t.Bound.String()
	case Pi[I]:
		return "π" + t.Bound.String()
	case Kind[I]:
		return t.Sort.String()
	}
	panic("unreachable")
}

func childrenOf[I Ident](t Term[I]) []Term[I] {
	switch t := t.(type) {
	case App[I]:
		return []Term[I]{t.Fn, t.Arg}
	case Abs[I]:
		return []Term[I]{t.Body}
	case Pi[I]:
		return []Term[I]{t.Domain, t.Codomain}
	}
	return nil
}
