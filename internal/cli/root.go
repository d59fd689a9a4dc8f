// Package cli implements the untyped command tree.
package cli

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"
	"golang.org/x/exp/slices"

	"github.com/smasher164/lambda/index"
	"github.com/smasher164/lambda/internal/config"
	"github.com/smasher164/lambda/parser"
	"github.com/smasher164/lambda/prelude"
	"github.com/smasher164/lambda/reduce"
)

// RootOptions holds global flags for all commands, and the settings they
// resolve to once the config file has been read.
type RootOptions struct {
	Verbose    bool
	Format     string // "json" | "text"
	ConfigPath string
	Prelude    string
	NoPrelude  bool

	Config config.Config
	defs   *prelude.Prelude
}

// ValidFormats defines the allowed output formats.
var ValidFormats = []string{"text", "json"}

// NewRootCommand creates the root command for the untyped CLI.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:   "untyped",
		Short: "untyped lambda calculus",
		Long: `untyped parses, indexes and reduces terms of the untyped lambda calculus.

Terms are written with λ or \ for abstraction, e.g. (λx.λy.x) a b. Names
from the prelude (I, K, S, succ, plus, ...) may be used as free variables.

A free variable spelled like a prelude name is replaced by its definition,
so a variable T or F means true or false. Reduced terms may also rename
binders to capital letters; pass --no-prelude before reading such output
back in.`,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.setup(cmd)
		},
	}

	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "log every reduction step")
	cmd.PersistentFlags().StringVar(&opts.Format, "format", "text", "output format (json|text)")
	cmd.PersistentFlags().StringVar(&opts.ConfigPath, "config", "", "config file (default "+config.FileName+" if present)")
	cmd.PersistentFlags().StringVar(&opts.Prelude, "prelude", "", "CUE file with named definitions (default built-in)")
	cmd.PersistentFlags().BoolVar(&opts.NoPrelude, "no-prelude", false, "do not expand prelude names")

	cmd.AddCommand(NewReduceCommand(opts))
	cmd.AddCommand(NewEqualCommand(opts))
	cmd.AddCommand(NewFreeVarsCommand(opts))
	cmd.AddCommand(NewIndexCommand(opts))
	cmd.AddCommand(NewTreeCommand(opts))
	cmd.AddCommand(NewDemoCommand(opts))

	return cmd
}

// setup merges the config file with the flags given on the command line,
// installs the logger and loads the prelude.
func (o *RootOptions) setup(cmd *cobra.Command) error {
	cfg, err := config.Discover(o.ConfigPath)
	if err != nil {
		return WrapExitError(ExitCommandError, "loading config", err)
	}
	flags := cmd.Flags()
	if flags.Changed("verbose") {
		cfg.Verbose = o.Verbose
	}
	if flags.Changed("format") {
		cfg.Format = o.Format
	}
	if flags.Changed("prelude") {
		cfg.Prelude = o.Prelude
	}
	if !slices.Contains(ValidFormats, cfg.Format) {
		return NewExitError(ExitCommandError, fmt.Sprintf("invalid format %q: must be one of %v", cfg.Format, ValidFormats))
	}
	o.Config = cfg
	o.Verbose = cfg.Verbose
	o.Format = cfg.Format

	logLevel := slog.LevelInfo
	if o.Verbose {
		logLevel = slog.LevelDebug
	}
	handler := slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{
		Level: logLevel,
	})
	slog.SetDefault(slog.New(handler))

	switch {
	case o.NoPrelude:
		o.defs = nil
	case cfg.Prelude != "":
		o.defs, err = prelude.Load(cfg.Prelude)
	default:
		o.defs, err = prelude.Builtin()
	}
	if err != nil {
		return o.formatter(cmd).Fail(ExitCommandError, ErrCodePrelude, "loading prelude", err)
	}
	slog.Debug("configured", "strategy", cfg.Strategy, "limit", cfg.Limit, "format", cfg.Format, "prelude", cfg.Prelude)
	return nil
}

// parseTerm parses src, expands prelude names and indexes the result.
func (o *RootOptions) parseTerm(src string) (reduce.Term, error) {
	t, err := parser.Parse(src)
	if err != nil {
		return nil, err
	}
	return index.Unique(o.defs.Expand(t)), nil
}

// resolveStrategy returns the strategy named by flag, or the configured
// one when flag is empty.
func (o *RootOptions) resolveStrategy(flag string) (reduce.Strategy, error) {
	if flag == "" {
		flag = o.Config.Strategy
	}
	return reduce.ParseStrategy(flag)
}

func (o *RootOptions) formatter(cmd *cobra.Command) *OutputFormatter {
	return newFormatter(o.Format, cmd.OutOrStdout())
}
