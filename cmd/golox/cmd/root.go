// Package cmd implements golox's command-line surface with
// github.com/spf13/cobra: a root command that accepts the bare
// "golox script.lox" form, plus debugging flags (--dump-ast/--trace/-e).
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	evalExpr string
	dumpAST  bool
	trace    bool
)

var rootCmd = &cobra.Command{
	Use:     "golox [file]",
	Short:   "golox interpreter",
	Version: "0.1.0",
	Long: `golox is a tree-walking interpreter for a small Lox-family
scripting language: variables, closures, classes with single
inheritance, and the built-in clock()/print() natives.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runFile,
}

func init() {
	rootCmd.Flags().StringVarP(&evalExpr, "eval", "e", "", "evaluate inline source instead of reading a file")
	rootCmd.Flags().BoolVar(&dumpAST, "dump-ast", false, "report on stderr when the program parsed and ran without errors; the AST itself is not printed (debugging)")
	rootCmd.Flags().BoolVar(&trace, "trace", false, "announce execution start on stderr (debugging)")
}

// Execute runs the CLI and returns a process exit code.
func Execute() int {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	return exitCode
}
