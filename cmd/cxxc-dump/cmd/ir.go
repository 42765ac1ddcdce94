package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"cxxc/internal/ast"
	"cxxc/internal/dump"
	"cxxc/internal/ir"
	"cxxc/internal/optimizer"
	"cxxc/internal/semantic"
)

var irCmd = &cobra.Command{
	Use:   "ir [file]",
	Short: "Compile source to unoptimized IR and print it",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runIR,
}

var irOptCmd = &cobra.Command{
	Use:   "ir-opt [file]",
	Short: "Compile source to IR, run the optimizer, and print the result",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runIROpt,
}

func init() {
	rootCmd.AddCommand(irCmd)
	rootCmd.AddCommand(irOptCmd)
}

// semanticAnalyze runs the analyzer and returns it so callers can print
// its diagnostics; errors are not fatal here — an IR dump of a program
// with semantic errors is still useful for debugging the generator.
func semanticAnalyze(prog *ast.Program, filename string) *semantic.Analyzer {
	a := semantic.New(filename)
	a.Analyze(prog)
	return a
}

func runIR(c *cobra.Command, args []string) error {
	src, filename, err := readSource(args)
	if err != nil {
		return err
	}

	prog, err := parseProgram(src, filename)
	if err != nil {
		return fmt.Errorf("%s", formatErr(err, src, filename))
	}

	a := semanticAnalyze(prog, filename)
	irProg := ir.Generate(prog)

	if len(a.Errors) > 0 {
		fmt.Println(formatErrs(a.Errors, src, filename))
	}

	doc := dump.IR(irProg)
	if compactJSON {
		doc = dump.Compact(doc)
	} else {
		doc = dump.Pretty(doc)
	}
	fmt.Println(doc)
	return nil
}

func runIROpt(c *cobra.Command, args []string) error {
	src, filename, err := readSource(args)
	if err != nil {
		return err
	}

	prog, err := parseProgram(src, filename)
	if err != nil {
		return fmt.Errorf("%s", formatErr(err, src, filename))
	}

	a := semanticAnalyze(prog, filename)
	irProg := ir.Generate(prog)
	optimizer.Optimize(irProg, optimizeLevel)

	if len(a.Errors) > 0 {
		fmt.Println(formatErrs(a.Errors, src, filename))
	}

	doc := dump.IR(irProg)
	if compactJSON {
		doc = dump.Compact(doc)
	} else {
		doc = dump.Pretty(doc)
	}
	fmt.Println(doc)
	return nil
}
