package cli

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/smasher164/lambda/parser"
	"github.com/smasher164/lambda/term"
)

// Tree is a drawn syntax tree.
type Tree string

func (t Tree) String() string { return strings.TrimSuffix(string(t), "\n") }

// NewTreeCommand creates the tree command.
func NewTreeCommand(rootOpts *RootOptions) *cobra.Command {
	var expand bool
	cmd := &cobra.Command{
		Use:           "tree <term>",
		Short:         "Draw the syntax tree of a term",
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
			if expand {
				t = rootOpts.defs.Expand(t)
			}
			return f.Success(Tree(term.Tree(t)))
		},
	}
	cmd.Flags().BoolVar(&expand, "expand", false, "expand prelude names first")
	return cmd
}
