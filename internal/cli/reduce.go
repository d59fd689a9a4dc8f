package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/samber/lo"
	"github.com/spf13/cobra"

	"github.com/smasher164/lambda/index"
	"github.com/smasher164/lambda/parser"
	"github.com/smasher164/lambda/reduce"
	"github.com/smasher164/lambda/term"
)

// ReduceOptions holds flags for the reduce command.
type ReduceOptions struct {
	*RootOptions
	Strategy string
	Limit    int
	Trace    bool
	DeBruijn bool
	File     string
}

// ReduceResult is the outcome of reducing one term.
type ReduceResult struct {
	Input    string   `json:"input"`
	Strategy string   `json:"strategy"`
	Steps    int      `json:"steps"`
	Result   string   `json:"result"`
	Trace    []string `json:"trace,omitempty"`
}

func (r ReduceResult) String() string {
	if len(r.Trace) == 0 {
		return r.Result
	}
	return strings.Join(r.Trace, "\n→ ")
}

// ReduceResults prints one result per line in text mode.
type ReduceResults []ReduceResult

func (rs ReduceResults) String() string {
	return strings.Join(lo.Map(rs, func(r ReduceResult, _ int) string { return r.String() }), "\n")
}

// NewReduceCommand creates the reduce command.
func NewReduceCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &ReduceOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "reduce [term]",
		Short: "Reduce terms under a strategy",
		Long: `Reduce a term given as arguments, or every term in a file or on stdin.

Input files hold one term per line; blank lines and lines starting with #
are skipped. Strategies: CBN, NOR, CBV, APP, HAP, HSR, HNO.

Free variables named after prelude definitions (I K S B C W M Y T F, ...)
are expanded unless --no-prelude is given.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runReduce(opts, args, cmd)
		},
	}

	cmd.Flags().StringVarP(&opts.Strategy, "strategy", "s", "", "reduction strategy (default from config, HAP)")
	cmd.Flags().IntVarP(&opts.Limit, "limit", "n", -1, "maximum number of contractions (default from config, 100)")
	cmd.Flags().BoolVar(&opts.Trace, "trace", false, "print every intermediate term")
	cmd.Flags().BoolVar(&opts.DeBruijn, "debruijn", false, "print results with De Bruijn indices")
	cmd.Flags().StringVarP(&opts.File, "file", "f", "", "read terms from file, one per line")

	return cmd
}

func runReduce(opts *ReduceOptions, args []string, cmd *cobra.Command) error {
	f := opts.formatter(cmd)

	s, err := opts.resolveStrategy(opts.Strategy)
	if err != nil {
		return f.Fail(ExitCommandError, ErrCodeConfig, "invalid strategy", err)
	}
	limit := opts.Config.Limit
	if opts.Limit >= 0 {
		limit = opts.Limit
	}

	inputs, err := readInputs(args, opts.File, cmd.InOrStdin())
	if err != nil {
		return f.Fail(ExitCommandError, ErrCodeInput, "reading input", err)
	}

	var results ReduceResults
	for _, src := range inputs {
		r, err := reduceOne(opts, src, s, limit)
		if err != nil {
			return failTerm(f, src, err)
		}
		results = append(results, r)
	}
	return f.Success(results)
}

func reduceOne(opts *ReduceOptions, src string, s reduce.Strategy, limit int) (ReduceResult, error) {
	t, err := opts.parseTerm(src)
	if err != nil {
		return ReduceResult{}, err
	}
	r := ReduceResult{Input: src, Strategy: s.String()}
	var steps []reduce.Term
	if opts.Trace {
		steps = reduce.Trace(t, s, reduce.WithLimit(limit))
		r.Steps = len(steps) - 1
	} else {
		res, n := reduce.Run(t, s, reduce.WithLimit(limit))
		steps = []reduce.Term{res}
		r.Steps = n
	}
	shown := make([]string, len(steps))
	for i, step := range steps {
		if shown[i], err = display(step, opts.DeBruijn); err != nil {
			return ReduceResult{}, err
		}
	}
	r.Result = shown[len(shown)-1]
	if opts.Trace {
		r.Trace = shown
	}
	return r, nil
}

// display prints a reduced term with readable names.
func display(t reduce.Term, deBruijn bool) (string, error) {
	bare, err := index.ToBare(t)
	if err != nil {
		return "", err
	}
	if deBruijn {
		return term.DeBruijn(bare), nil
	}
	return bare.String(), nil
}

// readInputs returns the terms to work on: args joined into one term, or
// the lines of file, or the lines of stdin.
func readInputs(args []string, file string, stdin io.Reader) ([]string, error) {
	if len(args) > 0 {
		return []string{strings.Join(args, " ")}, nil
	}
	r := stdin
	if file != "" {
		fh, err := os.Open(file)
		if err != nil {
			return nil, err
		}
		defer fh.Close()
		r = fh
	}
	var inputs []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		inputs = append(inputs, line)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	if len(inputs) == 0 {
		return nil, errors.New("no terms given")
	}
	return inputs, nil
}

// failTerm reports an error met while handling the term src.
func failTerm(f *OutputFormatter, src string, err error) error {
	var syntaxErr *parser.Error
	switch {
	case errors.As(err, &syntaxErr):
		return f.Fail(ExitCommandError, ErrCodeSyntax, fmt.Sprintf("parsing %q", src), err)
	case errors.Is(err, index.ErrNamesExhausted):
		return f.Fail(ExitCommandError, ErrCodeNames, fmt.Sprintf("printing %q", src), err)
	}
	return f.Fail(ExitCommandError, ErrCodeInput, fmt.Sprintf("handling %q", src), err)
}
