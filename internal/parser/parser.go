// Package parser implements a recursive-descent parser with
// precedence-climbing expression parsing, turning a token stream into an
// AST Program. The parser does not attempt error recovery: the first
// syntax error terminates parsing, wrapped as a *cerr.Error of kind
// cerr.Parser.
package parser

import (
	"fmt"

	"cxxc/internal/ast"
	"cxxc/internal/cerr"
	"cxxc/internal/token"
)

// Parser consumes a fixed token list and produces a Program.
type Parser struct {
	tokens   []token.Token
	pos      int
	filename string
}

// New creates a Parser over toks, which must end with an EOF token.
func New(toks []token.Token, filename string) *Parser {
	return &Parser{tokens: toks, filename: filename}
}

// ParseProgram parses the full token stream into a Program, or returns
// the first parse error encountered.
func (p *Parser) ParseProgram() (prog *ast.Program, err error) {
	defer func() {
		if r := recover(); r != nil {
			if pe, ok := r.(*cerr.Error); ok {
				err = pe
				return
			}
			panic(r)
		}
	}()

	prog = &ast.Program{}
	p.skipPreprocessor()
	for !p.check(token.EOF) {
		d := p.parseDeclaration()
		prog.Declarations = append(prog.Declarations, d)
		p.skipPreprocessor()
	}
	return prog, nil
}

// --- token stream primitives -----------------------------------------

func (p *Parser) current() token.Token { return p.tokens[p.pos] }

func (p *Parser) peek(n int) token.Token {
	idx := p.pos + n
	if idx >= len(p.tokens) {
		return p.tokens[len(p.tokens)-1]
	}
	return p.tokens[idx]
}

func (p *Parser) advance() token.Token {
	t := p.current()
	if t.Kind != token.EOF {
		p.pos++
	}
	return t
}

func (p *Parser) check(kind token.Kind) bool { return p.current().Kind == kind }

func (p *Parser) checkAny(kinds ...token.Kind) bool {
	for _, k := range kinds {
		if p.check(k) {
			return true
		}
	}
	return false
}

// match reports whether the current token is one of kinds, without
// consuming it.
func (p *Parser) match(kinds ...token.Kind) bool { return p.checkAny(kinds...) }

// matchAndConsume consumes and returns the current token if it is one of
// kinds.
func (p *Parser) matchAndConsume(kinds ...token.Kind) (token.Token, bool) {
	if p.checkAny(kinds...) {
		return p.advance(), true
	}
	return token.Token{}, false
}

// expect consumes the current token if it has the given kind, or raises
// a parse error.
func (p *Parser) expect(kind token.Kind) token.Token {
	if p.check(kind) {
		return p.advance()
	}
	p.fail(fmt.Sprintf("expected %s, found %s %q", kind, p.current().Kind, p.current().Lexeme))
	return token.Token{}
}

func (p *Parser) skipPreprocessor() {
	for p.check(token.PREPROCESSOR) {
		p.advance()
	}
}

// fail raises the single parse failure that terminates parsing,
// via panic/recover so deeply nested recursive-descent rules don't need
// to thread error returns through every call.
func (p *Parser) fail(msg string) {
	panic(cerr.New(cerr.Parser, p.current().Pos, p.filename, msg))
}
