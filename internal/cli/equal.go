package cli

import (
	"strconv"

	"github.com/spf13/cobra"

	"github.com/smasher164/lambda/reduce"
)

// EqualOptions holds flags for the equal command.
type EqualOptions struct {
	*RootOptions
	Limit int
	Check bool
}

// EqualResult is the answer of the equal command.
type EqualResult struct {
	Left  string `json:"left"`
	Right string `json:"right"`
	Equal bool   `json:"equal"`
}

func (r EqualResult) String() string { return strconv.FormatBool(r.Equal) }

// NewEqualCommand creates the equal command.
func NewEqualCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &EqualOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "equal <term> <term>",
		Short: "Decide alpha-eta equality of two terms",
		Long: `Decide whether two terms are equal up to renaming of bound variables
and eta-conversion, by comparing their normal forms.`,
		Args:          cobra.ExactArgs(2),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runEqual(opts, args[0], args[1], cmd)
		},
	}

	cmd.Flags().IntVarP(&opts.Limit, "limit", "n", -1, "maximum number of contractions per side (default from config, 100)")
	cmd.Flags().BoolVar(&opts.Check, "check", false, "exit with status 1 when the terms differ")

	return cmd
}

func runEqual(opts *EqualOptions, left, right string, cmd *cobra.Command) error {
	f := opts.formatter(cmd)
	limit := opts.Config.Limit
	if opts.Limit >= 0 {
		limit = opts.Limit
	}

	a, err := opts.parseTerm(left)
	if err != nil {
		return failTerm(f, left, err)
	}
	b, err := opts.parseTerm(right)
	if err != nil {
		return failTerm(f, right, err)
	}
	eq, err := reduce.Equal(a, b, reduce.WithLimit(limit))
	if err != nil {
		return failTerm(f, left+" = "+right, err)
	}
	result := EqualResult{Left: left, Right: right, Equal: eq}
	if !opts.Check || eq {
		return f.Success(result)
	}
	if f.Format != "json" {
		if err := f.Success(result); err != nil {
			return err
		}
	}
	return f.Fail(ExitFailure, ErrCodeNotEqual, "terms are not equal", nil)
}

