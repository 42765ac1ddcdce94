package token

import "testing"

func TestLookupIdentClassifiesKeywords(t *testing.T) {
	cases := map[string]Kind{
		"if":            IF,
		"return":        RETURN,
		"class":         CLASS,
		"static_cast":   STATIC_CAST,
		"co_await":      CO_AWAIT,
		"true":          TRUE,
		"false":         FALSE,
		"nullptr":       NULLPTR,
		"my_identifier": IDENTIFIER,
		"Foo123":        IDENTIFIER,
	}
	for ident, want := range cases {
		if got := LookupIdent(ident); got != want {
			t.Errorf("LookupIdent(%q) = %v, want %v", ident, got, want)
		}
	}
}

func TestKindStringRoundTripsKeywordSpelling(t *testing.T) {
	for lexeme, kind := range keywords {
		if got := kind.String(); got != lexeme {
			t.Errorf("Kind(%d).String() = %q, want %q", int(kind), got, lexeme)
		}
	}
}

func TestIsKeywordAndIsLiteral(t *testing.T) {
	if !IF.IsKeyword() {
		t.Error("IF should be a keyword")
	}
	if IDENTIFIER.IsKeyword() {
		t.Error("IDENTIFIER should not be a keyword")
	}
	if !INTEGER.IsLiteral() {
		t.Error("INTEGER should be a literal kind")
	}
	if IF.IsLiteral() {
		t.Error("IF should not be a literal kind")
	}
}

func TestPositionString(t *testing.T) {
	p := Position{Line: 3, Column: 7, Offset: 42}
	if got, want := p.String(), "3:7"; got != want {
		t.Errorf("Position.String() = %q, want %q", got, want)
	}
}
