package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"cxxc/internal/dump"
	"cxxc/internal/lexer"
)

var tokensCmd = &cobra.Command{
	Use:   "tokens [file]",
	Short: "Tokenize source and print the token stream as JSON",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runTokens,
}

func init() {
	rootCmd.AddCommand(tokensCmd)
}

func runTokens(c *cobra.Command, args []string) error {
	src, filename, err := readSource(args)
	if err != nil {
		return err
	}

	toks, err := lexer.New(src, filename).Tokenize()
	if err != nil {
		return fmt.Errorf("%s", formatErr(err, src, filename))
	}

	doc := dump.Tokens(toks)
	if compactJSON {
		doc = dump.Compact(doc)
	} else {
		doc = dump.Pretty(doc)
	}
	fmt.Println(doc)
	return nil
}
