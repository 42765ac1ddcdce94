package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"cxxc/internal/ir"
	"cxxc/internal/lexer"
	"cxxc/internal/optimizer"
	"cxxc/internal/stats"
)

var statsCmd = &cobra.Command{
	Use:   "stats [file]",
	Short: "Compile source and print human-readable compile statistics",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runStats,
}

func init() {
	rootCmd.AddCommand(statsCmd)
}

func runStats(c *cobra.Command, args []string) error {
	src, filename, err := readSource(args)
	if err != nil {
		return err
	}

	start := time.Now()

	toks, err := lexer.New(src, filename).Tokenize()
	if err != nil {
		return fmt.Errorf("%s", formatErr(err, src, filename))
	}

	prog, err := parseProgram(src, filename)
	if err != nil {
		return fmt.Errorf("%s", formatErr(err, src, filename))
	}

	a := semanticAnalyze(prog, filename)

	before := ir.Generate(prog)
	beforeCounts := map[string]int{}
	for _, fn := range before.Functions {
		beforeCounts[fn.Name] = len(fn.Instructions)
	}

	report := optimizer.Optimize(before, optimizeLevel)

	r := stats.New(filename)
	r.TokenCount = len(toks)
	r.NodeCount = len(prog.Declarations)
	r.ErrorCount = len(a.Errors)
	r.OptimizeLevel = optimizeLevel
	r.Passes = report
	for _, fn := range before.Functions {
		r.AddFunction(fn.Name, beforeCounts[fn.Name], len(fn.Instructions))
	}
	r.Duration = time.Since(start)

	fmt.Print(r.String())
	return nil
}
