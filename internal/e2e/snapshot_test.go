package e2e

import (
	"testing"

	"github.com/gkampitakis/go-snaps/snaps"

	"cxxc/internal/ir"
	"cxxc/internal/lexer"
	"cxxc/internal/optimizer"
	"cxxc/internal/parser"
	"cxxc/internal/semantic"
)

// TestCanonicalIRSnapshots snapshot-tests the §6 canonical textual IR
// form for a handful of representative functions, the way the teacher
// snapshot-tests its own interpreter output with go-snaps.
func TestCanonicalIRSnapshots(t *testing.T) {
	cases := []struct{ name, src string }{
		{"simple_add", "int add(int a, int b) { return a + b; }"},
		{"if_else", "int max(int a, int b) { if (a > b) { return a; } else { return b; } }"},
		{"for_loop", "int f(int n) { int s = 0; for (int i = 1; i <= n; i++) s = s + i; return s; }"},
		{"constant_fold", "int compute() { int x = 2 + 3; int y = x * 4; int z = y + 10; return z; }"},
	}

	for _, c := range cases {
		name, src := c.name, c.src
		toks, err := lexer.New(src, name).Tokenize()
		if err != nil {
			t.Fatalf("%s: Tokenize: %v", name, err)
		}
		prog, err := parser.New(toks, name).ParseProgram()
		if err != nil {
			t.Fatalf("%s: ParseProgram: %v", name, err)
		}
		a := semantic.New(name)
		if !a.Analyze(prog) {
			t.Fatalf("%s: unexpected semantic errors: %v", name, a.Errors)
		}
		irProg := ir.Generate(prog)
		optimizer.Optimize(irProg, 3)

		snaps.MatchSnapshot(t, name, ir.Print(irProg))
	}
}
