package lexer

import (
	"testing"

	"cxxc/internal/token"
)

func TestTokenizeEndsWithEOF(t *testing.T) {
	toks, err := New("int x = 1;", "<test>").Tokenize()
	if err != nil {
		t.Fatalf("Tokenize: %v", err)
	}
	if len(toks) == 0 || toks[len(toks)-1].Kind != token.EOF {
		t.Fatalf("last token = %v, want EOF", toks[len(toks)-1])
	}
}

func TestTokenizeBasicDeclaration(t *testing.T) {
	toks, err := New("int x = 1;", "<test>").Tokenize()
	if err != nil {
		t.Fatalf("Tokenize: %v", err)
	}
	want := []token.Kind{token.INT, token.IDENTIFIER, token.ASSIGN, token.INTEGER, token.SEMICOLON, token.EOF}
	if len(toks) != len(want) {
		t.Fatalf("got %d tokens, want %d: %v", len(toks), len(want), toks)
	}
	for i, k := range want {
		if toks[i].Kind != k {
			t.Errorf("token %d: got %v, want %v", i, toks[i].Kind, k)
		}
	}
}

func TestTokenizeOperatorLongestMatch(t *testing.T) {
	toks, err := New("a <=> b; c <<= d; e -> f; g ->* h;", "<test>").Tokenize()
	if err != nil {
		t.Fatalf("Tokenize: %v", err)
	}
	var kinds []token.Kind
	for _, tk := range toks {
		kinds = append(kinds, tk.Kind)
	}
	mustContain(t, kinds, token.SPACESHIP, token.SHL_ASSIGN, token.ARROW, token.ARROW_STAR)
}

func mustContain(t *testing.T, kinds []token.Kind, want ...token.Kind) {
	t.Helper()
	for _, w := range want {
		found := false
		for _, k := range kinds {
			if k == w {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("token stream missing %v", w)
		}
	}
}

func TestTokenizeNumericLiterals(t *testing.T) {
	src := "0x1A 0b101 3.14 1e10 42u 7L"
	toks, err := New(src, "<test>").Tokenize()
	if err != nil {
		t.Fatalf("Tokenize: %v", err)
	}
	kinds := []token.Kind{token.INTEGER, token.INTEGER, token.FLOAT, token.FLOAT, token.INTEGER, token.INTEGER, token.EOF}
	if len(toks) != len(kinds) {
		t.Fatalf("got %d tokens, want %d: %v", len(toks), len(kinds), toks)
	}
	for i, k := range kinds {
		if toks[i].Kind != k {
			t.Errorf("token %d (%q): got %v, want %v", i, toks[i].Lexeme, toks[i].Kind, k)
		}
	}
}

func TestTokenizeStringAndCharLiterals(t *testing.T) {
	toks, err := New(`"hi\n" 'a'`, "<test>").Tokenize()
	if err != nil {
		t.Fatalf("Tokenize: %v", err)
	}
	if toks[0].Kind != token.STRING || toks[1].Kind != token.CHAR {
		t.Fatalf("got kinds %v, %v", toks[0].Kind, toks[1].Kind)
	}
}

func TestTokenizeUnterminatedStringFailsFast(t *testing.T) {
	_, err := New(`"unterminated`, "<test>").Tokenize()
	if err == nil {
		t.Fatal("expected a lexer error for an unterminated string")
	}
}

func TestTokenizeSkipsComments(t *testing.T) {
	toks, err := New("int x; // trailing\n/* block */ int y;", "<test>").Tokenize()
	if err != nil {
		t.Fatalf("Tokenize: %v", err)
	}
	count := 0
	for _, tk := range toks {
		if tk.Kind == token.INT {
			count++
		}
	}
	if count != 2 {
		t.Errorf("expected 2 'int' tokens around comments, got %d", count)
	}
}

func TestTokenizeUnicodeIdentifier(t *testing.T) {
	toks, err := New("int café = 1;", "<test>").Tokenize()
	if err != nil {
		t.Fatalf("Tokenize: %v", err)
	}
	if toks[1].Kind != token.IDENTIFIER || toks[1].Lexeme != "café" {
		t.Fatalf("got %v %q, want IDENTIFIER café", toks[1].Kind, toks[1].Lexeme)
	}
}

func TestTokenizePreprocessorLineIsOneToken(t *testing.T) {
	toks, err := New("#define FOO 1\nint x;", "<test>").Tokenize()
	if err != nil {
		t.Fatalf("Tokenize: %v", err)
	}
	if toks[0].Kind != token.PREPROCESSOR {
		t.Fatalf("got %v, want PREPROCESSOR", toks[0].Kind)
	}
	if toks[1].Kind != token.INT {
		t.Fatalf("got %v after preprocessor line, want INT", toks[1].Kind)
	}
}
