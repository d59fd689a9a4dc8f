// Command untyped parses, indexes and reduces untyped lambda terms.
//
// Usage:
//
//	untyped reduce [-s strategy] [-n limit] [--trace] term
//	untyped equal term term
//	untyped fv | index | tree term
//	untyped demo
package main

import (
	"fmt"
	"os"

	"github.com/smasher164/lambda/internal/cli"
)

func main() {
	if err := cli.NewRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "untyped:", err)
		os.Exit(cli.GetExitCode(err))
	}
}
