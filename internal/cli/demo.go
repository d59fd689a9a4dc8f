package cli

import (
	"fmt"
	"strings"

	"github.com/samber/lo"
	"github.com/spf13/cobra"

	"github.com/smasher164/lambda/index"
	"github.com/smasher164/lambda/reduce"
)

// demoTerms are reduced by the demo command.
var demoTerms = []string{
	"λf.(λx.f (x x)) (λx.f (x x))",
	"λx.x x",
	"(λf.λx.f x) (λf.λx.f x)",
	"(λx.λy.x) y",
	"S K K z",
	"(λx.x x) (λx.x x)",
}

// DemoResult is one demo term and its reduct under every strategy.
type DemoResult struct {
	Input   string            `json:"input"`
	Unique  string            `json:"unique"`
	Bare    string            `json:"bare"`
	Reducts map[string]string `json:"reducts"`
}

func (r DemoResult) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s\n  unique: %s\n  bare:   %s\n", r.Input, r.Unique, r.Bare)
	for _, s := range reduce.Strategies() {
		fmt.Fprintf(&b, "  %s: %s\n", s, r.Reducts[s.String()])
	}
	return strings.TrimSuffix(b.String(), "\n")
}

// DemoResults separates results by a blank line in text mode.
type DemoResults []DemoResult

func (rs DemoResults) String() string {
	return strings.Join(lo.Map(rs, func(r DemoResult, _ int) string { return r.String() }), "\n\n")
}

// NewDemoCommand creates the demo command.
func NewDemoCommand(rootOpts *RootOptions) *cobra.Command {
	var limit int
	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Reduce a few well-known terms under every strategy",
		Long: `Index a few well-known terms, convert them back to plain names and
reduce them under every strategy. The default limit is kept small since
some of them have no normal form.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			f := rootOpts.formatter(cmd)
			var results DemoResults
			for _, src := range demoTerms {
				r, err := runDemo(rootOpts, src, limit)
				if err != nil {
					return failTerm(f, src, err)
				}
				results = append(results, r)
			}
			return f.Success(results)
		},
	}
	cmd.Flags().IntVarP(&limit, "limit", "n", 10, "maximum number of contractions per strategy")
	return cmd
}

func runDemo(opts *RootOptions, src string, limit int) (DemoResult, error) {
	t, err := opts.parseTerm(src)
	if err != nil {
		return DemoResult{}, err
	}
	bare, err := index.ToBare(t)
	if err != nil {
		return DemoResult{}, err
	}
	r := DemoResult{Input: src, Unique: t.String(), Bare: bare.String(), Reducts: map[string]string{}}
	for _, s := range reduce.Strategies() {
		if r.Reducts[s.String()], err = display(reduce.Reduce(t, s, reduce.WithLimit(limit)), false); err != nil {
			return DemoResult{}, err
		}
	}
	return r, nil
}
