package index

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/hashicorp/go-set/v3"
	"github.com/samber/lo"
	"golang.org/x/exp/maps"

	"github.com/smasher164/lambda/term"
)

// ErrNamesExhausted is returned by ToBare when a binder has to be renamed
// and no single-character name is left to give it.
var ErrNamesExhausted = errors.New("display names exhausted")

// letters is the order in which single-character display names are tried.
const letters = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ"

// ToBare replaces every UID in t by a name. Variables keep their own name
// unless their binder had to be renamed. A binder is renamed when its body
// mentions a different variable printed with the same name; the replacement
// does not occur anywhere in the body, so no occurrence changes its binder.
func ToBare(t term.Term[UID]) (term.Term[Bare], error) {
	return toBare(t, map[int]string{})
}

// MustToBare is like ToBare but panics if the names run out.
func MustToBare(t term.Term[UID]) term.Term[Bare] {
	b, err := ToBare(t)
	if err != nil {
		panic(err)
	}
	return b
}

// toBare never mutates renamed; a binder's choice is visible only in its
// own body, so sibling subtrees pick names independently.
func toBare(t term.Term[UID], renamed map[int]string) (term.Term[Bare], error) {
	switch t := t.(type) {
	case term.Var[UID]:
		return term.Var[Bare]{ID: Bare(display(t.ID, renamed))}, nil
	case term.App[UID]:
		fn, err := toBare(t.Fn, renamed)
		if err != nil {
			return nil, err
		}
		arg, err := toBare(t.Arg, renamed)
		if err != nil {
			return nil, err
		}
		return term.App[Bare]{Fn: fn, Arg: arg}, nil
	case term.Abs[UID]:
		name, inner, err := rename(t.Bound, t.Body, renamed)
		if err != nil {
			return nil, err
		}
		body, err := toBare(t.Body, inner)
		if err != nil {
			return nil, err
		}
		return term.Abs[Bare]{Bound: Bare(name), Body: body}, nil
	case term.Pi[UID]:
		dom, err := toBare(t.Domain, renamed)
		if err != nil {
			return nil, err
		}
		name, inner, err := rename(t.Bound, t.Codomain, renamed)
		if err != nil {
			return nil, err
		}
		cod, err := toBare(t.Codomain, inner)
		if err != nil {
			return nil, err
		}
		return term.Pi[Bare]{Bound: Bare(name), Domain: dom, Codomain: cod}, nil
	case term.Kind[UID]:
		return term.Kind[Bare]{Sort: t.Sort}, nil
	}
	panic("unreachable")
}

func display(id UID, renamed map[int]string) string {
	if name, ok := renamed[id.Tag]; ok {
		return name
	}
	return id.Name
}

// collides reports whether some variable occurring in body is not x but
// would print as x's name.
func collides(x UID, body term.Term[UID], renamed map[int]string) bool {
	return lo.ContainsBy(term.Vars(body), func(v UID) bool {
		return !v.Equal(x) && display(v, renamed) == x.Name
	})
}

// rename decides the display name of binder x over body and returns the
// renaming in effect inside body.
func rename(x UID, body term.Term[UID], renamed map[int]string) (string, map[int]string, error) {
	if !collides(x, body, renamed) {
		return x.Name, renamed, nil
	}
	taken := set.From(maps.Values(renamed))
	for _, id := range term.Idents(body) {
		taken.Insert(id.Name)
		taken.Insert(display(id, renamed))
	}
	name, err := pickName(x.Name, taken, renamed)
	if err != nil {
		return "", nil, err
	}
	inner := maps.Clone(renamed)
	inner[x.Tag] = name
	return name, inner, nil
}

// pickName chooses a name outside taken. A single-character name is
// replaced by the first letter after the highest letter already handed out;
// longer names get their numeric suffix bumped until they are free.
func pickName(name string, taken *set.Set[string], renamed map[int]string) (string, error) {
	if utf8.RuneCountInString(name) > 1 {
		for name = Fresh(name); taken.Contains(name); name = Fresh(name) {
		}
		return name, nil
	}
	assigned := lo.FilterMap(maps.Values(renamed), func(n string, _ int) (int, bool) {
		i := strings.Index(letters, n)
		return i, len(n) == 1 && i >= 0
	})
	start := 0
	if len(assigned) > 0 {
		start = lo.Max(assigned) + 1
	}
	for _, c := range letters[start:] {
		if candidate := string(c); !taken.Contains(candidate) {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("renaming %s: %w", name, ErrNamesExhausted)
}
