package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
)

var (
	Version = "0.1.0-dev"

	evalExpr      string
	optimizeLevel int
	compactJSON   bool
)

var rootCmd = &cobra.Command{
	Use:     "cxxc-dump",
	Short:   "Inspect the compiler front end and mid-end pipeline stage by stage",
	Version: Version,
	Long: `cxxc-dump runs a single C++-like source file through the lexer,
parser, semantic analyzer, IR generator, and optimizer, and prints
whichever stage's output the chosen subcommand asks for.

It is a developer tool, not the compiler driver: it does not process
#include directives or produce target code.`,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&evalExpr, "eval", "e", "", "read source from this flag instead of a file or stdin")
	rootCmd.PersistentFlags().IntVar(&optimizeLevel, "opt", 2, "optimization level (0-3) used by the ir-opt and stats subcommands")
	rootCmd.PersistentFlags().BoolVar(&compactJSON, "compact", false, "emit compact JSON instead of indented")
}

// readSource resolves the source text for a subcommand: the --eval
// flag, a path argument, or stdin when neither is given.
func readSource(args []string) (src, filename string, err error) {
	if evalExpr != "" {
		return evalExpr, "<eval>", nil
	}
	if len(args) == 1 {
		content, err := os.ReadFile(args[0])
		if err != nil {
			return "", "", fmt.Errorf("reading %s: %w", args[0], err)
		}
		return string(content), args[0], nil
	}
	content, err := io.ReadAll(os.Stdin)
	if err != nil {
		return "", "", fmt.Errorf("reading stdin: %w", err)
	}
	return string(content), "<stdin>", nil
}

// colorEnabled reports whether caret diagnostics should be colored:
// only when stdout is an actual terminal, never in a script/CI pipe.
func colorEnabled() bool {
	return isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())
}
