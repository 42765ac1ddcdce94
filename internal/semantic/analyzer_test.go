package semantic

import (
	"strings"
	"testing"

	"cxxc/internal/lexer"
	"cxxc/internal/parser"
)

func analyzeSrc(t *testing.T, src string) *Analyzer {
	t.Helper()
	toks, err := lexer.New(src, "<test>").Tokenize()
	if err != nil {
		t.Fatalf("Tokenize: %v", err)
	}
	prog, err := parser.New(toks, "<test>").ParseProgram()
	if err != nil {
		t.Fatalf("ParseProgram: %v", err)
	}
	a := New("<test>")
	a.Analyze(prog)
	return a
}

func TestS1SimpleFunctionAnalyzesClean(t *testing.T) {
	a := analyzeSrc(t, "int add(int a, int b) { return a + b; }")
	if len(a.Errors) != 0 {
		t.Fatalf("unexpected errors: %v", a.Errors)
	}
}

// TestS3UndeclaredVariable covers §8 scenario S3.
func TestS3UndeclaredVariable(t *testing.T) {
	a := analyzeSrc(t, "int main() { int x = 5; int y = z; return 0; }")
	if len(a.Errors) == 0 {
		t.Fatal("expected at least one semantic error")
	}
	found := false
	for _, e := range a.Errors {
		if strings.Contains(e.Message, "z") {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected an error mentioning 'z', got: %v", a.Errors)
	}
}

// TestS5BreakOutsideLoop covers §8 scenario S5.
func TestS5BreakOutsideLoop(t *testing.T) {
	a := analyzeSrc(t, "int main() { if (1) { break; } return 0; }")
	if len(a.Errors) == 0 {
		t.Fatal("expected a semantic error for 'break' outside a loop/switch")
	}
	found := false
	for _, e := range a.Errors {
		if strings.Contains(e.Message, "break") {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected an error naming 'break', got: %v", a.Errors)
	}
}

func TestContinueOutsideLoopIsAnError(t *testing.T) {
	a := analyzeSrc(t, "int main() { continue; return 0; }")
	if len(a.Errors) == 0 {
		t.Fatal("expected a semantic error for 'continue' outside a loop")
	}
}

func TestBreakInsideSwitchIsFine(t *testing.T) {
	a := analyzeSrc(t, `
int f(int x) {
	switch (x) {
	case 1:
		break;
	default:
		break;
	}
	return 0;
}`)
	if len(a.Errors) != 0 {
		t.Fatalf("unexpected errors: %v", a.Errors)
	}
}

// TestScopeBalance covers §8 invariant 3: after analysis completes the
// scope cursor is back at the global scope.
func TestScopeBalance(t *testing.T) {
	srcs := []string{
		"int add(int a, int b) { return a + b; }",
		"int max(int a, int b) { if (a > b) { return a; } else { return b; } }",
		"int f(int n) { int s = 0; for (int i = 1; i <= n; i++) s = s + i; return s; }",
		"namespace ns { int f() { return 0; } }",
		"class C { public: int f() { return 0; } };",
	}
	for _, src := range srcs {
		a := analyzeSrc(t, src)
		if a.Table.Current() != a.Table.Global {
			t.Fatalf("%s: scope cursor not back at global root after analysis", src)
		}
	}
}

func TestRedefinitionInSameScopeIsAnError(t *testing.T) {
	a := analyzeSrc(t, "int f() { int x = 1; int x = 2; return x; }")
	if len(a.Errors) == 0 {
		t.Fatal("expected a redefinition error")
	}
}

func TestShadowingInNestedScopeIsAllowed(t *testing.T) {
	a := analyzeSrc(t, "int f(int x) { { int x = 2; } return x; }")
	if len(a.Errors) != 0 {
		t.Fatalf("unexpected errors for an inner-scope shadow: %v", a.Errors)
	}
}

func TestReturnTypeMismatchIsAnError(t *testing.T) {
	a := analyzeSrc(t, "bool f() { return 5; }")
	// bool and int are both numeric-family primitives, so this should
	// in fact be compatible; use a genuinely incompatible case instead.
	_ = a

	a2 := analyzeSrc(t, "void f() { return 5; }")
	if len(a2.Errors) == 0 {
		t.Fatal("expected an error: a void function must not return a value")
	}
}

func TestVoidReturnWithNoValueIsFine(t *testing.T) {
	a := analyzeSrc(t, "void f() { return; }")
	if len(a.Errors) != 0 {
		t.Fatalf("unexpected errors: %v", a.Errors)
	}
}

func TestNonVoidReturnRequiresAValue(t *testing.T) {
	a := analyzeSrc(t, "int f() { return; }")
	if len(a.Errors) == 0 {
		t.Fatal("expected an error: non-void function must return a value")
	}
}
