package reduce_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/smasher164/lambda/index"
	"github.com/smasher164/lambda/parser"
	"github.com/smasher164/lambda/reduce"
	"github.com/smasher164/lambda/term"
)

func u(t *testing.T, src string) reduce.Term {
	t.Helper()
	tm, err := parser.Parse(src)
	require.NoError(t, err, src)
	return index.Unique(tm)
}

func show(t *testing.T, tm reduce.Term) string {
	t.Helper()
	bare, err := index.ToBare(tm)
	require.NoError(t, err)
	return bare.String()
}

func equal(t *testing.T, a, b reduce.Term) bool {
	t.Helper()
	eq, err := reduce.Equal(a, b)
	require.NoError(t, err)
	return eq
}

func TestStrategiesAgreeOnNormalForm(t *testing.T) {
	want := u(t, "λx.λy.x y")
	for _, s := range []reduce.Strategy{reduce.NOR, reduce.APP, reduce.HAP, reduce.HNO} {
		t.Run(s.String(), func(t *testing.T) {
			got := reduce.Reduce(u(t, "(λf.λx.f x) (λf.λx.f x)"), s)
			assert.True(t, equal(t, want, got), "got %s", show(t, got))
			assert.Equal(t, term.DeBruijn(index.MustToBare(want)), term.DeBruijn(index.MustToBare(got)))
		})
	}
}

func TestWeakStrategiesStopAtAbstraction(t *testing.T) {
	for _, s := range []reduce.Strategy{reduce.CBN, reduce.CBV} {
		t.Run(s.String(), func(t *testing.T) {
			got, n := reduce.Run(u(t, "(λf.λx.f x) (λf.λx.f x)"), s)
			assert.Equal(t, 1, n)
			abs, ok := got.(reduce.Abs)
			require.True(t, ok)
			_, ok = abs.Body.(reduce.App)
			assert.True(t, ok, "body is left unreduced: %s", show(t, got))
		})
	}
}

func TestEveryStrategyReducesSKK(t *testing.T) {
	skk := "(λx y z.x z (y z)) (λx y.x) (λx y.x) z"
	for _, s := range reduce.Strategies() {
		t.Run(s.String(), func(t *testing.T) {
			assert.Equal(t, "z", show(t, reduce.Reduce(u(t, skk), s)))
		})
	}
}

func TestOmegaIsContained(t *testing.T) {
	omega := u(t, "(λx.x x) (λx.x x)")
	for _, s := range reduce.Strategies() {
		t.Run(s.String(), func(t *testing.T) {
			got, n := reduce.Run(omega, s, reduce.WithLimit(10))
			require.NotNil(t, got)
			assert.Equal(t, 10, n)
			assert.Equal(t, term.DeBruijn(omega), term.DeBruijn(got))
		})
	}
}

func TestDefaultLimit(t *testing.T) {
	_, n := reduce.Run(u(t, "(λx.x x) (λx.x x)"), reduce.CBN)
	assert.Equal(t, reduce.DefaultLimit, n)
}

func TestZeroLimitReturnsInput(t *testing.T) {
	in := u(t, "(λx.x) y")
	for _, s := range reduce.Strategies() {
		got, n := reduce.Run(in, s, reduce.WithLimit(0))
		assert.Zero(t, n)
		assert.True(t, term.Equal(in, got), s.String())
	}
	got := reduce.Reduce(in, reduce.HAP, reduce.WithLimit(-3))
	assert.True(t, term.Equal(in, got))
}

func TestReductionAvoidsCapture(t *testing.T) {
	assert.Equal(t, "λa.y", show(t, reduce.NF(u(t, "(λx.λy.x) y"))))
	assert.Equal(t, "λa.y a", show(t, reduce.NF(u(t, "(λx.λy.x y) y"))))
	assert.Equal(t, "λx.λa.x", show(t, reduce.NF(u(t, "λx.(λy.λx.y) x"))))
}

func TestDuplicatedValuesGetFreshBinders(t *testing.T) {
	got, ok := reduce.Step(u(t, "(λx.x x) (λy.y)"), reduce.NOR)
	require.True(t, ok)
	app, ok := got.(reduce.App)
	require.True(t, ok)
	fn, ok := app.Fn.(reduce.Abs)
	require.True(t, ok)
	arg, ok := app.Arg.(reduce.Abs)
	require.True(t, ok)
	assert.False(t, fn.Bound.Equal(arg.Bound))
	assert.Equal(t, "(λy.y) (λy.y)", show(t, got))
}

func TestConvenienceForms(t *testing.T) {
	t.Run("NF", func(t *testing.T) {
		assert.Equal(t, "λx.x", show(t, reduce.NF(u(t, "λx.(λy.y) x"))))
	})
	t.Run("WNF", func(t *testing.T) {
		assert.Equal(t, "λx.(λy.y) x", show(t, reduce.WNF(u(t, "λx.(λy.y) x"))))
		assert.Equal(t, "f (λx.x)", show(t, reduce.WNF(u(t, "f ((λy.y) (λx.x))"))))
	})
	t.Run("WHNF", func(t *testing.T) {
		assert.Equal(t, "λy.(λz.z) y", show(t, reduce.WHNF(u(t, "(λx.x) (λy.(λz.z) y)"))))
		assert.Equal(t, "f ((λy.y) a)", show(t, reduce.WHNF(u(t, "f ((λy.y) a)"))))
	})
	t.Run("HNF", func(t *testing.T) {
		assert.Equal(t, "λy.y", show(t, reduce.HNF(u(t, "(λx.x) (λy.(λz.z) y)"))))
		assert.Equal(t, "f ((λy.y) a)", show(t, reduce.HNF(u(t, "f ((λy.y) a)"))))
	})
	t.Run("Pi", func(t *testing.T) {
		assert.Equal(t, "πA:*.A", show(t, reduce.NF(u(t, "πA:(λx.x) *.A"))))
	})
}

func TestStepAndTrace(t *testing.T) {
	in := u(t, "(λx.λy.x) a b")
	next, ok := reduce.Step(in, reduce.NOR)
	require.True(t, ok)
	assert.Equal(t, "(λy.a) b", show(t, next))

	steps := reduce.Trace(in, reduce.NOR)
	require.Len(t, steps, 3)
	assert.Equal(t, "(λx.λy.x) a b", show(t, steps[0]))
	assert.Equal(t, "(λy.a) b", show(t, steps[1]))
	assert.Equal(t, "a", show(t, steps[2]))

	_, ok = reduce.Step(steps[2], reduce.NOR)
	assert.False(t, ok)

	omega := u(t, "(λx.x x) (λx.x x)")
	assert.Len(t, reduce.Trace(omega, reduce.CBN, reduce.WithLimit(5)), 6)
}

func TestSubst(t *testing.T) {
	values := []string{"λy.y", "λf.λx.f (f x)", "λa.λb.b a"}
	for _, src := range values {
		t.Run(src, func(t *testing.T) {
			gen := new(index.Generator)
			id := index.ToUnique(parser.MustParse("λx.x"), gen)
			v := index.ToUnique(parser.MustParse(src), gen)
			got := reduce.Subst(id, v)
			assert.True(t, term.Equal(v, got))
			assert.True(t, equal(t, v, got))
		})
	}

	body := u(t, "λx.f x (λx.x) x")
	a := reduce.Var{ID: index.UID{Name: "a", Tag: 100}}
	assert.Equal(t, "f#2 a#100 (λx#3.x#3) a#100", reduce.Subst(body, a).String())
}

func TestSubstPanicsOnNonAbstraction(t *testing.T) {
	assert.PanicsWithValue(t, "reduce: only an abstraction can be substituted", func() {
		reduce.Subst(u(t, "f x"), u(t, "y"))
	})
}

func TestEqual(t *testing.T) {
	tests := []struct {
		a, b string
		want bool
	}{
		{"λx.x", "λy.y", true},
		{"λx.f x", "f", true},
		{"(λx.x) a", "a", true},
		{"λf.λx.f (f x)", "(λn.λf.λx.f (n f x)) (λf.λx.f x)", true},
		{"x", "y", false},
		{"λx.λy.x", "λx.λy.y", false},
		{"λx.x x", "λx.x", false},
		{"λy.y _", "λy.y y", false},
		{"λy.y _ _1", "λy.y y y", false},
		{"λy.y _", "λz.z _", true},
	}
	for _, tt := range tests {
		t.Run(tt.a+" = "+tt.b, func(t *testing.T) {
			assert.Equal(t, tt.want, equal(t, u(t, tt.a), u(t, tt.b)))
			assert.Equal(t, tt.want, equal(t, u(t, tt.b), u(t, tt.a)))
		})
	}
}

func TestParseStrategy(t *testing.T) {
	for _, s := range reduce.Strategies() {
		got, err := reduce.ParseStrategy(s.String())
		require.NoError(t, err)
		assert.Equal(t, s, got)
		assert.NotEmpty(t, s.Description())
	}
	got, err := reduce.ParseStrategy(" hno ")
	require.NoError(t, err)
	assert.Equal(t, reduce.HNO, got)

	_, err = reduce.ParseStrategy("fastest")
	assert.ErrorContains(t, err, "unknown strategy")
	assert.Equal(t, "Strategy(42)", reduce.Strategy(42).String())
	assert.Len(t, reduce.Strategies(), 7)
}
