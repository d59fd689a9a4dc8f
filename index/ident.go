// Package index converts terms between human-readable identifiers and
// globally unique ones.
//
// ToUnique pairs every name with a tag minted by a Generator so that no two
// binders share an identity; ToBare turns tags back into names, renaming a
// binder only when printing it unchanged would let it be confused with a
// different variable of the same name.
package index

import (
	"strconv"

	"github.com/samber/lo"

	"github.com/smasher164/lambda/term"
)

// Bare is a human-readable identifier. Two bare identifiers are the same
// variable iff their names are equal.
type Bare string

func (b Bare) String() string { return string(b) }

func (b Bare) Hash() string { return string(b) }

// UID is a name paired with a tag. Identity is decided by the tag alone; the
// name is kept only for display.
type UID struct {
	Name string
	Tag  int
}

func (u UID) String() string { return u.Name + "#" + strconv.Itoa(u.Tag) }

func (u UID) Hash() string { return strconv.Itoa(u.Tag) }

func (u UID) Equal(other UID) bool { return u.Tag == other.Tag }

// Generator mints positive tags, each one larger than the last. A Generator
// is not safe for concurrent use.
type Generator struct {
	count int
}

func (g *Generator) Next() int {
	g.count++
	return g.count
}

// GeneratorFor returns a generator whose tags are larger than every tag,
// free or bound, occurring in terms.
func GeneratorFor(terms ...term.Term[UID]) *Generator {
	tags := lo.FlatMap(terms, func(t term.Term[UID], _ int) []int {
		return lo.Map(term.Idents(t), func(id UID, _ int) int { return id.Tag })
	})
	return &Generator{count: lo.Max(tags)}
}

// Fresh derives a new name from name by incrementing its trailing decimal
// suffix: x → x1 → x2, x9 → x10.
func Fresh(name string) string {
	digits := len(name)
	for digits > 0 && '0' <= name[digits-1] && name[digits-1] <= '9' {
		digits--
	}
	n, err := strconv.Atoi(name[digits:])
	if err != nil {
		return name + "1"
	}
	return name[:digits] + strconv.Itoa(n+1)
}
