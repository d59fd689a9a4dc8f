// Package reduce implements beta-reduction over terms with unique
// identifiers.
//
// Every strategy shares one rule, (λx.b) a → b[x := a'], and differs in
// which subterms it visits and whether a' is a reduced first. A reduction
// contracts at most a fixed number of redexes, so terms without a normal
// form still return.
package reduce

import (
	"log/slog"

	"github.com/smasher164/lambda/index"
	"github.com/smasher164/lambda/term"
)

type (
	Term = term.Term[index.UID]
	Var  = term.Var[index.UID]
	App  = term.App[index.UID]
	Abs  = term.Abs[index.UID]
	Pi   = term.Pi[index.UID]
	Kind = term.Kind[index.UID]
)

// DefaultLimit is the number of contractions a reduction performs when no
// limit is given.
const DefaultLimit = 100

type options struct {
	limit int
}

// Option configures a reduction.
type Option func(*options)

// WithLimit caps the number of contractions. A limit of zero returns the
// input unchanged.
func WithLimit(n int) Option {
	return func(o *options) { o.limit = max(n, 0) }
}

func newOptions(opts []Option) options {
	o := options{limit: DefaultLimit}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// Reduce reduces t under s until no redex visited by s remains or the limit
// is spent.
func Reduce(t Term, s Strategy, opts ...Option) Term {
	r, _ := Run(t, s, opts...)
	return r
}

// Run is like Reduce but also reports how many contractions were made.
func Run(t Term, s Strategy, opts ...Option) (Term, int) {
	o := newOptions(opts)
	m := &machine{gen: index.GeneratorFor(t), left: o.limit}
	r := m.reduce(s, t)
	slog.Debug("reduced", "strategy", s.String(), "steps", m.steps, "limit", o.limit)
	return r, m.steps
}

// Step contracts the first redex s would contract. It reports false if
// there is none.
func Step(t Term, s Strategy) (Term, bool) {
	r, n := Run(t, s, WithLimit(1))
	return r, n > 0
}

// Trace returns t followed by the term after each contraction under s.
func Trace(t Term, s Strategy, opts ...Option) []Term {
	o := newOptions(opts)
	steps := []Term{t}
	for i := 1; i <= o.limit; i++ {
		next, ok := Step(t, s)
		if !ok {
			break
		}
		slog.Debug("step", "strategy", s.String(), "step", i, "term", next.String())
		steps = append(steps, next)
		t = next
	}
	return steps
}

// NF reduces t to normal form.
func NF(t Term, opts ...Option) Term { return Reduce(t, HAP, opts...) }

// WHNF reduces t to weak head normal form.
func WHNF(t Term, opts ...Option) Term { return Reduce(t, CBN, opts...) }

// WNF reduces t to weak normal form.
func WNF(t Term, opts ...Option) Term { return Reduce(t, CBV, opts...) }

// HNF reduces t to head normal form.
func HNF(t Term, opts ...Option) Term { return Reduce(t, HSR, opts...) }

// machine holds the state of one reduction. gen mints the tags given to the
// binders of substituted copies; left is what remains of the budget.
type machine struct {
	gen   *index.Generator
	left  int
	steps int
}

func (m *machine) reduce(s Strategy, t Term) Term {
	switch s {
	case CBN:
		return m.cbn(t)
	case NOR:
		return m.nor(t)
	case CBV:
		return m.cbv(t)
	case APP:
		return m.app(t)
	case HAP:
		return m.hap(t)
	case HSR:
		return m.hsr(t)
	case HNO:
		return m.hno(t)
	}
	panic("reduce: unknown strategy " + s.String())
}

// redex reports whether fn applied to something may be contracted.
func (m *machine) redex(fn Term) (Abs, bool) {
	abs, ok := fn.(Abs)
	return abs, ok && m.left > 0
}

func (m *machine) beta(abs Abs, arg Term) Term {
	m.left--
	m.steps++
	return replace(abs.Body, abs.Bound, func() Term {
		return retag(arg, m.gen, map[int]int{})
	})
}

// under applies f below a binder, leaving every other term alone.
func under(t Term, f func(Term) Term) Term {
	switch t := t.(type) {
	case Abs:
		return Abs{Bound: t.Bound, Body: f(t.Body)}
	case Pi:
		return Pi{Bound: t.Bound, Domain: f(t.Domain), Codomain: f(t.Codomain)}
	}
	return t
}

func (m *machine) cbn(t Term) Term {
	app, ok := t.(App)
	if !ok {
		return t
	}
	fn := m.cbn(app.Fn)
	if abs, ok := m.redex(fn); ok {
		return m.cbn(m.beta(abs, app.Arg))
	}
	return App{Fn: fn, Arg: app.Arg}
}

func (m *machine) nor(t Term) Term {
	app, ok := t.(App)
	if !ok {
		return under(t, m.nor)
	}
	fn := m.cbn(app.Fn)
	if abs, ok := m.redex(fn); ok {
		return m.nor(m.beta(abs, app.Arg))
	}
	return App{Fn: m.nor(fn), Arg: m.nor(app.Arg)}
}

func (m *machine) cbv(t Term) Term {
	app, ok := t.(App)
	if !ok {
		return t
	}
	fn := m.cbv(app.Fn)
	arg := m.cbv(app.Arg)
	if abs, ok := m.redex(fn); ok {
		return m.cbv(m.beta(abs, arg))
	}
	return App{Fn: fn, Arg: arg}
}

func (m *machine) app(t Term) Term {
	app, ok := t.(App)
	if !ok {
		return under(t, m.app)
	}
	fn := m.app(app.Fn)
	arg := m.app(app.Arg)
	if abs, ok := m.redex(fn); ok {
		return m.app(m.beta(abs, arg))
	}
	return App{Fn: fn, Arg: arg}
}

func (m *machine) hap(t Term) Term {
	app, ok := t.(App)
	if !ok {
		return under(t, m.hap)
	}
	fn := m.cbv(app.Fn)
	arg := m.hap(app.Arg)
	if abs, ok := m.redex(fn); ok {
		return m.hap(m.beta(abs, arg))
	}
	return App{Fn: m.hap(fn), Arg: arg}
}

func (m *machine) hsr(t Term) Term {
	app, ok := t.(App)
	if !ok {
		return under(t, m.hsr)
	}
	fn := m.hsr(app.Fn)
	if abs, ok := m.redex(fn); ok {
		return m.hsr(m.beta(abs, app.Arg))
	}
	return App{Fn: fn, Arg: app.Arg}
}

func (m *machine) hno(t Term) Term {
	app, ok := t.(App)
	if !ok {
		return under(t, m.hno)
	}
	fn := m.hsr(app.Fn)
	if abs, ok := m.redex(fn); ok {
		return m.hno(m.beta(abs, app.Arg))
	}
	return App{Fn: m.hno(fn), Arg: m.hno(app.Arg)}
}
