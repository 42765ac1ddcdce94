package ir

import (
	"strings"
	"testing"

	"cxxc/internal/lexer"
	"cxxc/internal/parser"
)

func genSrc(t *testing.T, src string) *Program {
	t.Helper()
	toks, err := lexer.New(src, "<test>").Tokenize()
	if err != nil {
		t.Fatalf("Tokenize: %v", err)
	}
	prog, err := parser.New(toks, "<test>").ParseProgram()
	if err != nil {
		t.Fatalf("ParseProgram: %v", err)
	}
	return Generate(prog)
}

func countOp(fn *Function, op Opcode) int {
	n := 0
	for _, in := range fn.Instructions {
		if in.Op == op {
			n++
		}
	}
	return n
}

// TestS1SimpleFunction covers §8 scenario S1: one ADD, operands a and
// b, and a terminating RETURN.
func TestS1SimpleFunction(t *testing.T) {
	p := genSrc(t, "int add(int a, int b) { return a + b; }")
	if len(p.Functions) != 1 {
		t.Fatalf("got %d functions, want 1", len(p.Functions))
	}
	fn := p.Functions[0]
	if fn.Name != "add" || len(fn.Parameters) != 2 {
		t.Fatalf("got name=%q params=%d, want add/2", fn.Name, len(fn.Parameters))
	}
	if countOp(fn, ADD) != 1 {
		t.Fatalf("got %d ADDs, want 1", countOp(fn, ADD))
	}
	var add Instruction
	for _, in := range fn.Instructions {
		if in.Op == ADD {
			add = in
		}
	}
	if add.Arg1.String() != "a" || add.Arg2.String() != "b" {
		t.Fatalf("got ADD %s, %s, want a, b", add.Arg1, add.Arg2)
	}
	last := fn.Instructions[len(fn.Instructions)-1]
	if last.Op != RETURN {
		t.Fatalf("function does not end with RETURN (§8 invariant 6): last=%v", last)
	}
}

// TestS4ControlFlow covers §8 scenario S4's IR shape.
func TestS4ControlFlow(t *testing.T) {
	p := genSrc(t, "int max(int a, int b) { if (a > b) { return a; } else { return b; } }")
	fn := p.Functions[0]
	if countOp(fn, GT) != 1 {
		t.Fatalf("got %d GTs, want 1", countOp(fn, GT))
	}
	if countOp(fn, IF_FALSE) != 1 {
		t.Fatalf("got %d IF_FALSE, want 1", countOp(fn, IF_FALSE))
	}
	if countOp(fn, GOTO) != 1 {
		t.Fatalf("got %d GOTO, want 1", countOp(fn, GOTO))
	}
	if countOp(fn, RETURN) < 2 {
		t.Fatalf("got %d RETURN, want at least 2 (then+else branches)", countOp(fn, RETURN))
	}

	var labels []string
	for _, in := range fn.Instructions {
		if in.Op == LABEL {
			labels = append(labels, in.Label)
		}
	}
	seen := map[string]bool{}
	for _, l := range labels {
		if seen[l] {
			t.Fatalf("label %q appears more than once (§8 invariant 4)", l)
		}
		seen[l] = true
	}
}

// TestS6ForLoopLowering covers §8 scenario S6.
func TestS6ForLoopLowering(t *testing.T) {
	p := genSrc(t, "int f(int n) { int s = 0; for (int i = 1; i <= n; i++) s = s + i; return s; }")
	fn := p.Functions[0]
	if countOp(fn, LE) != 1 {
		t.Fatalf("got %d LE, want exactly 1 (the loop condition)", countOp(fn, LE))
	}
	if countOp(fn, ADD) != 2 {
		t.Fatalf("got %d ADD, want 2 (body update + increment)", countOp(fn, ADD))
	}

	// The continue-target label (the increment label) sits between the
	// body and the loop back-edge GOTO.
	text := PrintFunction(fn)
	incrIdx := strings.Index(text, "for_incr0:")
	gotoIdx := strings.Index(text, "goto for_start0")
	if incrIdx == -1 || gotoIdx == -1 || incrIdx > gotoIdx {
		t.Fatalf("expected for_incr0: label before the back-edge goto, got:\n%s", text)
	}
}

// TestIRWellFormedness covers §8 invariant 5: every GOTO/IF_FALSE/IF_TRUE
// target is defined as a LABEL somewhere in the same function.
func TestIRWellFormedness(t *testing.T) {
	sources := []string{
		"int add(int a, int b) { return a + b; }",
		"int max(int a, int b) { if (a > b) { return a; } else { return b; } }",
		"int f(int n) { int s = 0; for (int i = 1; i <= n; i++) s = s + i; return s; }",
		"int f(int n) { int i = 0; while (i < n) { i = i + 1; } return i; }",
		"int f(int x) { switch (x) { case 1: return 1; case 2: return 2; default: return 0; } return 0; }",
	}
	for _, src := range sources {
		p := genSrc(t, src)
		for _, fn := range p.Functions {
			defined := map[string]bool{}
			for _, in := range fn.Instructions {
				if in.Op == LABEL {
					defined[in.Label] = true
				}
			}
			for _, in := range fn.Instructions {
				if in.Op == GOTO || in.Op == IF_FALSE || in.Op == IF_TRUE {
					if !defined[in.Label] {
						t.Fatalf("%s: jump target %q is never defined as a LABEL\n%s", src, in.Label, PrintFunction(fn))
					}
				}
			}
		}
	}
}

func TestTernaryGeneratesBothBranches(t *testing.T) {
	p := genSrc(t, "int f(int a, int b) { return a > b ? a : b; }")
	fn := p.Functions[0]
	if countOp(fn, GT) != 1 {
		t.Fatalf("got %d GT, want 1", countOp(fn, GT))
	}
	if countOp(fn, ASSIGN) < 2 {
		t.Fatalf("got %d ASSIGN, want at least 2 (then and else assign the shared temp)", countOp(fn, ASSIGN))
	}
}

func TestSwitchEvaluatesDiscriminantOnce(t *testing.T) {
	p := genSrc(t, `
int f(int x) {
	switch (x) {
	case 1: return 1;
	case 2: return 2;
	default: return 0;
	}
}`)
	fn := p.Functions[0]
	// The discriminant is materialized once via ASSIGN, then compared
	// against each case value with EQ.
	if countOp(fn, EQ) != 2 {
		t.Fatalf("got %d EQ comparisons, want 2 (one per non-default case)", countOp(fn, EQ))
	}
}
