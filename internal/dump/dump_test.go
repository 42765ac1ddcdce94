package dump_test

import (
	"testing"

	"github.com/tidwall/gjson"

	"cxxc/internal/dump"
	"cxxc/internal/ir"
	"cxxc/internal/lexer"
	"cxxc/internal/optimizer"
	"cxxc/internal/parser"
	"cxxc/internal/semantic"
)

// TestTokensDumpQueriesBackOutWithGJSON builds a token dump and queries
// individual fields back out of it, the way a driver inspecting a
// --dump-tokens run would.
func TestTokensDumpQueriesBackOutWithGJSON(t *testing.T) {
	toks, err := lexer.New("int x = 1;", "t.cpp").Tokenize()
	if err != nil {
		t.Fatalf("Tokenize: %v", err)
	}
	doc := dump.Tokens(toks)

	if !gjson.Valid(doc) {
		t.Fatalf("token dump is not valid JSON: %s", doc)
	}
	if got := gjson.Get(doc, "0.kind").String(); got != "int" {
		t.Errorf("token 0 kind = %q, want int", got)
	}
	if got := gjson.Get(doc, "1.lexeme").String(); got != "x" {
		t.Errorf("token 1 lexeme = %q, want x", got)
	}
	arr := gjson.Parse(doc).Array()
	if got := arr[len(arr)-1].Get("kind").String(); got != "EOF" {
		t.Errorf("last token kind = %q, want EOF", got)
	}
}

// TestASTDumpExposesFunctionBody checks that a dumped function
// declaration carries its compound-statement body as a nested child, and
// that the fields are reachable by gjson path.
func TestASTDumpExposesFunctionBody(t *testing.T) {
	toks, err := lexer.New("int add(int a, int b) { return a + b; }", "t.cpp").Tokenize()
	if err != nil {
		t.Fatalf("Tokenize: %v", err)
	}
	prog, err := parser.New(toks, "t.cpp").ParseProgram()
	if err != nil {
		t.Fatalf("ParseProgram: %v", err)
	}
	doc := dump.AST(prog)

	if got := gjson.Get(doc, "0.kind").String(); got != "*ast.FunctionDecl" {
		t.Errorf("declaration 0 kind = %q, want *ast.FunctionDecl", got)
	}
	children := gjson.Get(doc, "0.children")
	if !children.IsArray() || len(children.Array()) == 0 {
		t.Fatalf("function declaration dump has no children, got: %s", doc)
	}
	body := children.Array()[0]
	if got := body.Get("children.0.kind").String(); got != "*ast.ReturnStmt" {
		t.Errorf("body statement kind = %q, want *ast.ReturnStmt", got)
	}
}

// TestIRDumpInstructionFieldsQueryable exercises the per-instruction op
// records a test would filter on to find, say, every ADD the optimizer
// left behind.
func TestIRDumpInstructionFieldsQueryable(t *testing.T) {
	src := "int add(int a, int b) { return a + b; }"
	toks, err := lexer.New(src, "t.cpp").Tokenize()
	if err != nil {
		t.Fatalf("Tokenize: %v", err)
	}
	prog, err := parser.New(toks, "t.cpp").ParseProgram()
	if err != nil {
		t.Fatalf("ParseProgram: %v", err)
	}
	a := semantic.New("t.cpp")
	if !a.Analyze(prog) {
		t.Fatalf("unexpected semantic errors: %v", a.Errors)
	}
	irProg := ir.Generate(prog)
	optimizer.Optimize(irProg, 0)

	doc := dump.IR(irProg)
	if got := gjson.Get(doc, "functions.0.name").String(); got != "add" {
		t.Errorf("function 0 name = %q, want add", got)
	}

	ops := gjson.Get(doc, "functions.0.instructions.#.op").Array()
	found := false
	for _, op := range ops {
		if op.String() == "ADD" {
			found = true
		}
	}
	if !found {
		t.Errorf("expected an ADD instruction among %v", ops)
	}
}
