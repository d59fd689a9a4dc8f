package cli

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/smasher164/lambda/index"
)

// IndexResult shows a term with unique identifiers and converted back.
type IndexResult struct {
	Unique string `json:"unique"`
	Bare   string `json:"bare"`
}

func (r IndexResult) String() string {
	return "unique: " + r.Unique + "\nbare:   " + r.Bare
}

// NewIndexCommand creates the index command.
func NewIndexCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "index <term>",
		Short: "Show a term with unique identifiers",
		Long: `Show a term with every identifier tagged with its unique number, and
the term converted back to plain names.`,
		Args:          cobra.MinimumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			f := rootOpts.formatter(cmd)
			src := strings.Join(args, " ")
			t, err := rootOpts.parseTerm(src)
			if err != nil {
				return failTerm(f, src, err)
			}
			bare, err := index.ToBare(t)
			if err != nil {
				return failTerm(f, src, err)
			}
			return f.Success(IndexResult{Unique: t.String(), Bare: bare.String()})
		},
	}
}
