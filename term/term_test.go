package term_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/smasher164/lambda/index"
	"github.com/smasher164/lambda/parser"
	"github.com/smasher164/lambda/term"
)

func parse(t *testing.T, src string) term.Term[index.Bare] {
	t.Helper()
	tm, err := parser.Parse(src)
	require.NoError(t, err, src)
	return tm
}

func TestFreeVars(t *testing.T) {
	tests := []struct {
		src  string
		want []index.Bare
	}{
		{"λx.x y", []index.Bare{"y"}},
		{"λx.λy.x y z", []index.Bare{"z"}},
		{"λx.λx.x", nil},
		{"x (λx.x)", []index.Bare{"x"}},
		{"f a (g b)", []index.Bare{"f", "a", "g", "b"}},
		{"πx:A.x", []index.Bare{"A"}},
		{"πx:x.*", []index.Bare{"x"}},
	}
	for _, tt := range tests {
		t.Run(tt.src, func(t *testing.T) {
			got := term.FreeVars(parse(t, tt.src)).Slice()
			assert.ElementsMatch(t, tt.want, got)
		})
	}
}

func TestString(t *testing.T) {
	tests := []struct {
		src  string
		want string
	}{
		{"λx.x", "λx.x"},
		{"(λx.x) y", "(λx.x) y"},
		{"f (g x)", "f (g x)"},
		{"(f g) x", "f g x"},
		{"f (λx.x)", "f (λx.x)"},
		{"f λx.x", "f (λx.x)"},
		{"λx y z.x z (y z)", "λx.λy.λz.x z (y z)"},
		{`\x.x`, "λx.x"},
		{"λx.(λy.y) x", "λx.(λy.y) x"},
		{"πA:*.A", "πA:*.A"},
		{"πx:(λy.y).x", "πx:(λy.y).x"},
		{"πx:f a.□", "πx:f a.□"},
		{"(πx:*.x) y", "(πx:*.x) y"},
	}
	for _, tt := range tests {
		t.Run(tt.src, func(t *testing.T) {
			assert.Equal(t, tt.want, parse(t, tt.src).String())
		})
	}
}

func TestPrintParseRoundTrip(t *testing.T) {
	srcs := []string{
		"x",
		"λf.(λx.f (x x)) (λx.f (x x))",
		"(λx.λy.x) a b",
		"a (b c) (d (e f))",
		"(λx.x) (λy.y) (λz.z)",
		"λx.x (λy.y x) x",
		"πA:*.πx:A.A",
		"(λx.x x) (λx.x x)",
	}
	for _, src := range srcs {
		t.Run(src, func(t *testing.T) {
			want := parse(t, src)
			got := parse(t, want.String())
			assert.True(t, term.Equal(want, got), "%s reparsed as %s", want, got)
		})
	}
}

func TestDeBruijn(t *testing.T) {
	assert.Equal(t, "(λ.(λ.((1 0) z)))", term.DeBruijn(parse(t, "λx.λy.x y z")))
	assert.Equal(t, term.DeBruijn(parse(t, "λx.x")), term.DeBruijn(parse(t, "λy.y")))
	assert.NotEqual(t, term.DeBruijn(parse(t, "λx.λy.x")), term.DeBruijn(parse(t, "λx.λy.y")))
	assert.Equal(t, "(π:*.0)", term.DeBruijn(parse(t, "πA:*.A")))
}

func TestTree(t *testing.T) {
	want := "λx\n" +
		"└─@\n" +
		"  ├─f\n" +
		"  └─x\n"
	assert.Equal(t, want, term.Tree(parse(t, "λx.f x")))

	want = "@\n" +
		"├─@\n" +
		"│ ├─a\n" +
		"│ └─b\n" +
		"└─c\n"
	assert.Equal(t, want, term.Tree(parse(t, "a b c")))
}

func TestEqual(t *testing.T) {
	assert.True(t, term.Equal(parse(t, "λx.x y"), parse(t, "λx.x y")))
	assert.False(t, term.Equal(parse(t, "λx.x"), parse(t, "λy.y")))
	assert.False(t, term.Equal(parse(t, "x"), parse(t, "λx.x")))
	assert.False(t, term.Equal(parse(t, "*"), parse(t, "□")))
}

func TestApply(t *testing.T) {
	f := term.NewVar(index.Bare("f"))
	a := term.NewVar(index.Bare("a"))
	b := term.NewVar(index.Bare("b"))
	assert.Equal(t, "f a b", term.Apply(f, a, b).String())
	assert.Equal(t, "λa.f a", term.NewAbs(index.Bare("a"), term.Apply(f, a)).String())
	assert.Equal(t, f, term.Apply(f))
}

func TestVarsAndIdents(t *testing.T) {
	tm := parse(t, "λx.x (λy.y z)")
	assert.Equal(t, []index.Bare{"x", "y", "z"}, term.Vars(tm))
	assert.Equal(t, []index.Bare{"x", "x", "y", "y", "z"}, term.Idents(tm))
}
