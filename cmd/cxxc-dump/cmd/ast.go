package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"cxxc/internal/ast"
	"cxxc/internal/dump"
	"cxxc/internal/lexer"
	"cxxc/internal/parser"
)

var astCmd = &cobra.Command{
	Use:   "ast [file]",
	Short: "Parse source and print the AST as JSON",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runAST,
}

func init() {
	rootCmd.AddCommand(astCmd)
}

func parseProgram(src, filename string) (*ast.Program, error) {
	toks, err := lexer.New(src, filename).Tokenize()
	if err != nil {
		return nil, err
	}
	return parser.New(toks, filename).ParseProgram()
}

func runAST(c *cobra.Command, args []string) error {
	src, filename, err := readSource(args)
	if err != nil {
		return err
	}

	prog, err := parseProgram(src, filename)
	if err != nil {
		return fmt.Errorf("%s", formatErr(err, src, filename))
	}

	doc := dump.AST(prog)
	if compactJSON {
		doc = dump.Compact(doc)
	} else {
		doc = dump.Pretty(doc)
	}
	fmt.Println(doc)
	return nil
}
