package parser

import (
	"testing"

	"cxxc/internal/ast"
	"cxxc/internal/lexer"
	"cxxc/internal/token"
)

func parseSrc(t *testing.T, src string) *ast.Program {
	t.Helper()
	toks, err := lexer.New(src, "<test>").Tokenize()
	if err != nil {
		t.Fatalf("Tokenize: %v", err)
	}
	prog, err := New(toks, "<test>").ParseProgram()
	if err != nil {
		t.Fatalf("ParseProgram: %v", err)
	}
	return prog
}

func TestParseSimpleFunction(t *testing.T) {
	prog := parseSrc(t, "int add(int a, int b) { return a + b; }")
	if len(prog.Declarations) != 1 {
		t.Fatalf("got %d declarations, want 1", len(prog.Declarations))
	}
	fn, ok := prog.Declarations[0].(*ast.FunctionDecl)
	if !ok {
		t.Fatalf("got %T, want *ast.FunctionDecl", prog.Declarations[0])
	}
	if fn.Name != "add" || len(fn.Params) != 2 {
		t.Fatalf("got name=%q params=%d, want add/2", fn.Name, len(fn.Params))
	}
	if fn.Body == nil || len(fn.Body.Statements) != 1 {
		t.Fatalf("expected a single-statement body")
	}
	ret, ok := fn.Body.Statements[0].(*ast.ReturnStmt)
	if !ok {
		t.Fatalf("got %T, want *ast.ReturnStmt", fn.Body.Statements[0])
	}
	bin, ok := ret.Value.(*ast.BinaryExpr)
	if !ok || bin.Op != token.PLUS {
		t.Fatalf("got %#v, want a '+' binary expression", ret.Value)
	}
}

func TestParseFunctionPrototype(t *testing.T) {
	prog := parseSrc(t, "int f(int x);")
	fn, ok := prog.Declarations[0].(*ast.FunctionDecl)
	if !ok {
		t.Fatalf("got %T, want *ast.FunctionDecl", prog.Declarations[0])
	}
	if fn.Body != nil {
		t.Fatalf("expected a prototype (nil body)")
	}
}

func TestParseVariableWithInitializer(t *testing.T) {
	prog := parseSrc(t, "int x = 5;")
	v, ok := prog.Declarations[0].(*ast.VariableDecl)
	if !ok {
		t.Fatalf("got %T, want *ast.VariableDecl", prog.Declarations[0])
	}
	if v.Name != "x" || v.Init == nil {
		t.Fatalf("got name=%q init=%v, want x with an initializer", v.Name, v.Init)
	}
}

// TestExpressionPrecedence exercises the full precedence ladder from
// §4.2: `*` binds tighter than `+`, which binds tighter than `<`, which
// binds tighter than `&&`, which binds tighter than assignment.
func TestExpressionPrecedence(t *testing.T) {
	prog := parseSrc(t, "int f() { return a + b * c < d && e = f; }")
	fn := prog.Declarations[0].(*ast.FunctionDecl)
	ret := fn.Body.Statements[0].(*ast.ReturnStmt)

	// Top level is the lowest-precedence operator actually present:
	// assignment binds loosest, so the outermost node should be an
	// AssignmentExpr whose Target is the `&&` expression.
	assign, ok := ret.Value.(*ast.AssignmentExpr)
	if !ok {
		t.Fatalf("got %#v, want top-level AssignmentExpr", ret.Value)
	}
	land, ok := assign.Target.(*ast.BinaryExpr)
	if !ok || land.Op != token.LOGICAL_AND {
		t.Fatalf("got %#v, want a '&&' binary expression", assign.Target)
	}
	lt, ok := land.Left.(*ast.BinaryExpr)
	if !ok || lt.Op != token.LT {
		t.Fatalf("got %#v, want a '<' binary expression", land.Left)
	}
	add, ok := lt.Left.(*ast.BinaryExpr)
	if !ok || add.Op != token.PLUS {
		t.Fatalf("got %#v, want a '+' binary expression", lt.Left)
	}
	mul, ok := add.Right.(*ast.BinaryExpr)
	if !ok || mul.Op != token.STAR {
		t.Fatalf("got %#v, want a '*' binary expression on the right of '+'", add.Right)
	}
}

func TestTernaryIsRightAssociativeAndLowPrecedence(t *testing.T) {
	prog := parseSrc(t, "int f() { return a ? b : c ? d : e; }")
	fn := prog.Declarations[0].(*ast.FunctionDecl)
	ret := fn.Body.Statements[0].(*ast.ReturnStmt)
	outer, ok := ret.Value.(*ast.TernaryExpr)
	if !ok {
		t.Fatalf("got %#v, want *ast.TernaryExpr", ret.Value)
	}
	if _, ok := outer.Else.(*ast.TernaryExpr); !ok {
		t.Fatalf("got %#v, want a nested ternary as the else-branch (right-associative)", outer.Else)
	}
}

func TestParseIfElse(t *testing.T) {
	prog := parseSrc(t, "int max(int a, int b) { if (a > b) { return a; } else { return b; } }")
	fn := prog.Declarations[0].(*ast.FunctionDecl)
	ifs, ok := fn.Body.Statements[0].(*ast.IfStmt)
	if !ok {
		t.Fatalf("got %T, want *ast.IfStmt", fn.Body.Statements[0])
	}
	if ifs.Else == nil {
		t.Fatalf("expected an else branch")
	}
	cond, ok := ifs.Cond.(*ast.BinaryExpr)
	if !ok || cond.Op != token.GT {
		t.Fatalf("got %#v, want a '>' condition", ifs.Cond)
	}
}

func TestParseForLoop(t *testing.T) {
	prog := parseSrc(t, "int f(int n) { int s = 0; for (int i = 1; i <= n; i++) s = s + i; return s; }")
	fn := prog.Declarations[0].(*ast.FunctionDecl)
	forStmt, ok := fn.Body.Statements[1].(*ast.ForStmt)
	if !ok {
		t.Fatalf("got %T, want *ast.ForStmt", fn.Body.Statements[1])
	}
	if forStmt.Init == nil || forStmt.Cond == nil || forStmt.Incr == nil {
		t.Fatalf("expected init/cond/incr all present, got %#v/%#v/%#v", forStmt.Init, forStmt.Cond, forStmt.Incr)
	}
}

func TestParseClassWithAccessSpecifiers(t *testing.T) {
	prog := parseSrc(t, `
class Shape {
public:
	Shape();
	~Shape();
	int area();
private:
	int width;
};`)
	cls, ok := prog.Declarations[0].(*ast.ClassDecl)
	if !ok {
		t.Fatalf("got %T, want *ast.ClassDecl", prog.Declarations[0])
	}
	if cls.Name != "Shape" {
		t.Fatalf("got name %q, want Shape", cls.Name)
	}
	var sawCtor, sawDtor bool
	for _, m := range cls.Members {
		switch m.(type) {
		case *ast.ConstructorDecl:
			sawCtor = true
		case *ast.DestructorDecl:
			sawDtor = true
		}
	}
	if !sawCtor || !sawDtor {
		t.Fatalf("expected a constructor and destructor among members, got %#v", cls.Members)
	}
}

func TestParseMismatchedTokenFailsFast(t *testing.T) {
	toks, err := lexer.New("int f(int x { return x; }", "<test>").Tokenize()
	if err != nil {
		t.Fatalf("Tokenize: %v", err)
	}
	_, err = New(toks, "<test>").ParseProgram()
	if err == nil {
		t.Fatal("expected a parse error for a missing ')'")
	}
}

func TestParseSwitchStatement(t *testing.T) {
	prog := parseSrc(t, `
int f(int x) {
	switch (x) {
	case 1:
		return 1;
	case 2:
		return 2;
	default:
		return 0;
	}
}`)
	fn := prog.Declarations[0].(*ast.FunctionDecl)
	sw, ok := fn.Body.Statements[0].(*ast.SwitchStmt)
	if !ok {
		t.Fatalf("got %T, want *ast.SwitchStmt", fn.Body.Statements[0])
	}
	if len(sw.Cases) != 3 {
		t.Fatalf("got %d cases, want 3", len(sw.Cases))
	}
}

func TestParserDeterminismOnSameInput(t *testing.T) {
	src := "int max(int a, int b) { if (a > b) { return a; } else { return b; } }"
	p1 := parseSrc(t, src)
	p2 := parseSrc(t, src)
	if p1.String() != p2.String() {
		t.Fatalf("re-parsing the same tokens produced different trees:\n%s\n---\n%s", p1.String(), p2.String())
	}
}
