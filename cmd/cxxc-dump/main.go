// Command cxxc-dump is a thin manual-testing tool for the compiler
// front end and mid-end: it reads source from a file or stdin and
// prints whichever stage's output the chosen subcommand asks for
// (tokens, AST, unoptimized IR, optimized IR, statistics). It does not
// implement the full driver contract — no #include processing, no
// target codegen — it exists to let a developer poke the pipeline from
// a terminal the way the teacher's own command-line tool does.
package main

import (
	"fmt"
	"os"

	"cxxc/cmd/cxxc-dump/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
