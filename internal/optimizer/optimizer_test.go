package optimizer

import (
	"testing"

	"cxxc/internal/ir"
	"cxxc/internal/lexer"
	"cxxc/internal/parser"
)

func compileIR(t *testing.T, src string) *ir.Program {
	t.Helper()
	toks, err := lexer.New(src, "<test>").Tokenize()
	if err != nil {
		t.Fatalf("Tokenize: %v", err)
	}
	prog, err := parser.New(toks, "<test>").ParseProgram()
	if err != nil {
		t.Fatalf("ParseProgram: %v", err)
	}
	return ir.Generate(prog)
}

// TestS2ConstantFolding covers §8 scenario S2: at -O3 every arithmetic
// instruction folds away and the returned value is provably the
// constant 30.
func TestS2ConstantFolding(t *testing.T) {
	p := compileIR(t, "int compute() { int x = 2 + 3; int y = x * 4; int z = y + 10; return z; }")
	Optimize(p, 3)
	fn := p.Functions[0]

	for _, in := range fn.Instructions {
		if in.Op == ir.ADD || in.Op == ir.MUL {
			t.Fatalf("expected no ADD/MUL left after -O3 folding, found %v", in)
		}
	}
	var ret ir.Instruction
	for _, in := range fn.Instructions {
		if in.Op == ir.RETURN {
			ret = in
		}
	}
	c, ok := ret.Arg1.(ir.Constant)
	if !ok {
		t.Fatalf("got return operand %#v, want a folded Constant", ret.Arg1)
	}
	v, ok := c.Value.(int64)
	if !ok || v != 30 {
		t.Fatalf("got folded value %v, want 30", c.Value)
	}
}

// TestS7FoldingSoundness covers §8 invariant 7: any folded constant
// equals the operator's semantic evaluation.
func TestS7FoldingSoundness(t *testing.T) {
	p := compileIR(t, "int f() { return 6 * 7; }")
	Optimize(p, 1)
	fn := p.Functions[0]
	ret := fn.Instructions[len(fn.Instructions)-1]
	if ret.Op != ir.RETURN {
		t.Fatalf("got last instruction %v, want RETURN", ret)
	}
	c, ok := ret.Arg1.(ir.Constant)
	if !ok {
		t.Fatalf("got %#v, want a folded Constant", ret.Arg1)
	}
	if c.Value.(int64) != 42 {
		t.Fatalf("got %v, want 42", c.Value)
	}
}

// TestOptimizerMonotonicity covers §8 invariant 8: a pass never
// increases instruction count, and re-optimizing an already-optimized
// program at the same level is a no-op.
func TestOptimizerMonotonicity(t *testing.T) {
	sources := []string{
		"int compute() { int x = 2 + 3; int y = x * 4; int z = y + 10; return z; }",
		"int max(int a, int b) { if (a > b) { return a; } else { return b; } }",
		"int f(int n) { int s = 0; for (int i = 1; i <= n; i++) s = s + i; return s; }",
	}
	for _, src := range sources {
		for level := 1; level <= 3; level++ {
			p := compileIR(t, src)
			before := len(p.Functions[0].Instructions)
			Optimize(p, level)
			after := len(p.Functions[0].Instructions)
			if after > before {
				t.Fatalf("%s at O%d: instruction count grew %d -> %d", src, level, before, after)
			}

			textAfterFirst := ir.PrintFunction(p.Functions[0])
			Optimize(p, level)
			textAfterSecond := ir.PrintFunction(p.Functions[0])
			if textAfterFirst != textAfterSecond {
				t.Fatalf("%s at O%d: re-optimizing changed output:\nfirst:\n%s\nsecond:\n%s", src, level, textAfterFirst, textAfterSecond)
			}
		}
	}
}

func TestOptimizeLevelZeroIsNoOp(t *testing.T) {
	p := compileIR(t, "int compute() { int x = 2 + 3; return x; }")
	before := ir.PrintFunction(p.Functions[0])
	report := Optimize(p, 0)
	after := ir.PrintFunction(p.Functions[0])
	if before != after {
		t.Fatalf("level 0 must not touch the program; before:\n%s\nafter:\n%s", before, after)
	}
	if len(report.Functions) != 0 {
		t.Fatalf("level 0 should report no passes fired, got %#v", report.Functions)
	}
}

func TestConstantPropagationAcrossUses(t *testing.T) {
	p := compileIR(t, "int f() { int a = 5; int b = a + a; return b; }")
	Optimize(p, 1)
	fn := p.Functions[0]
	ret := fn.Instructions[len(fn.Instructions)-1]
	c, ok := ret.Arg1.(ir.Constant)
	if !ok || c.Value.(int64) != 10 {
		t.Fatalf("got %#v, want folded constant 10", ret.Arg1)
	}
}

func TestDeadCodeEliminationDropsUnusedTemp(t *testing.T) {
	p := compileIR(t, "int f(int a, int b) { int unused = a + b; return a; }")
	Optimize(p, 1)
	fn := p.Functions[0]
	for _, in := range fn.Instructions {
		if in.Op == ir.ADD {
			t.Fatalf("expected the dead ADD for 'unused' to be eliminated, found %v", in)
		}
	}
}

func TestPeepholeIdentityFolding(t *testing.T) {
	p := compileIR(t, "int f(int a) { return a + 0; }")
	Optimize(p, 2)
	fn := p.Functions[0]
	for _, in := range fn.Instructions {
		if in.Op == ir.ADD {
			t.Fatalf("expected 'a + 0' to fold to 'a' at -O2, found %v", in)
		}
	}
}
