package cli

import (
	"strings"

	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"golang.org/x/exp/slices"

	"github.com/smasher164/lambda/index"
	"github.com/smasher164/lambda/parser"
	"github.com/smasher164/lambda/term"
)

// FreeVars lists free variable names.
type FreeVars []string

func (fv FreeVars) String() string { return strings.Join(fv, " ") }

// NewFreeVarsCommand creates the fv command.
func NewFreeVarsCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:           "fv <term>",
		Short:         "List the free variables of a term",
		Args:          cobra.MinimumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			f := rootOpts.formatter(cmd)
			src := strings.Join(args, " ")
			t, err := parser.Parse(src)
			if err != nil {
				return failTerm(f, src, err)
			}
			free := term.FreeVars(rootOpts.defs.Expand(t)).Slice()
			names := FreeVars(lo.Map(free, func(x index.Bare, _ int) string { return string(x) }))
			slices.Sort(names)
			return f.Success(names)
		},
	}
}

