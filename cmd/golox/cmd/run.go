package cmd

import (
	"fmt"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/loxlang/golox/pkg/golox"
)

var exitCode int

// runFile implements the CLI contract: a single positional source-file
// argument, or -e for inline source. Zero arguments (and no -e) prints
// exactly "script file was not provided" to stderr and exits non-zero
// without attempting to run anything, in place of cobra's default
// "requires at least 1 arg(s)" usage error.
func runFile(_ *cobra.Command, args []string) error {
	var source string

	switch {
	case evalExpr != "":
		source = evalExpr
	case len(args) == 1:
		content, err := os.ReadFile(args[0])
		if err != nil {
			fmt.Fprintf(os.Stderr, "failed to read %s: %v\n", args[0], err)
			exitCode = 1
			return nil
		}
		source = string(content)
	default:
		fmt.Fprintln(os.Stderr, "script file was not provided")
		exitCode = 1
		return nil
	}

	if trace {
		fmt.Fprintln(os.Stderr, "[trace] running script")
	}

	result := golox.Run(source, golox.WithStdout(os.Stdout))

	useColor := isatty.IsTerminal(os.Stderr.Fd())
	for _, e := range result.SyntaxErrors {
		fmt.Fprintln(os.Stderr, e.Format(useColor))
	}
	for _, e := range result.RuntimeErrors {
		fmt.Fprintln(os.Stderr, e.Format(useColor))
	}

	if dumpAST && !result.HasErrors() {
		fmt.Fprintln(os.Stderr, "[dump-ast] program parsed and ran without errors")
	}

	if result.HasErrors() {
		exitCode = 1
	}
	return nil
}
