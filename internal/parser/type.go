package parser

import "cxxc/internal/ast"
import "cxxc/internal/token"

var primitiveKeywords = map[token.Kind]string{
	token.VOID:     "void",
	token.BOOL:     "bool",
	token.CHAR_KW:  "char",
	token.INT:      "int",
	token.SHORT:    "short",
	token.LONG:     "long",
	token.FLOAT_KW: "float",
	token.DOUBLE:   "double",
	token.WCHAR_T:  "wchar_t",
	token.CHAR8_T:  "char8_t",
	token.CHAR16_T: "char16_t",
	token.CHAR32_T: "char32_t",
}

// startsType reports whether the current token can begin a type (used to
// disambiguate a local-declaration statement from an expression
// statement).
func (p *Parser) startsType() bool {
	if p.check(token.AUTO) {
		return true
	}
	if p.checkAny(token.CONST, token.VOLATILE, token.SIGNED, token.UNSIGNED) {
		return true
	}
	if _, ok := primitiveKeywords[p.current().Kind]; ok {
		return true
	}
	if p.check(token.IDENTIFIER) {
		// A bare identifier only starts a type when immediately followed by
		// another identifier (the declarator name) or a pointer/reference
		// suffix — `Foo bar;` / `Foo *bar;` — distinguishing a declaration
		// from an expression statement like `foo();` or `foo = 1;`.
		next := p.peek(1)
		return next.Kind == token.IDENTIFIER || next.Kind == token.STAR || next.Kind == token.AMP
	}
	return false
}

// parseType parses a Type-category AST node: qualifiers, a primitive or
// user-defined base, then a suffix sequence of `*`/`&`.
func (p *Parser) parseType() ast.TypeExpr {
	isConst := false
	isVolatile := false
	unsigned := false
	signed := false
	for p.checkAny(token.CONST, token.VOLATILE, token.SIGNED, token.UNSIGNED) {
		switch p.current().Kind {
		case token.CONST:
			isConst = true
		case token.VOLATILE:
			isVolatile = true
		case token.SIGNED:
			signed = true
		case token.UNSIGNED:
			unsigned = true
		}
		p.advance()
	}

	var base ast.TypeExpr
	startTok := p.current()

	if p.check(token.AUTO) {
		p.advance()
		base = &ast.PrimitiveType{Token: startTok, Name: "auto", IsConst: isConst, Volatile: isVolatile}
	} else if name, ok := primitiveKeywords[p.current().Kind]; ok {
		p.advance()
		if name == "long" && p.check(token.LONG) {
			p.advance()
			name = "long long"
		}
		base = &ast.PrimitiveType{Token: startTok, Name: name, Signed: signed, Unsigned: unsigned, IsConst: isConst, Volatile: isVolatile}
	} else if p.check(token.IDENTIFIER) {
		name := p.advance().Lexeme
		base = &ast.UserDefinedType{Token: startTok, Name: name, IsConst: isConst}
	} else {
		p.fail("expected a type")
		return nil
	}

	// Trailing qualifiers after the base name, e.g. `int const`.
	for p.check(token.CONST) {
		p.advance()
		isConst = true
		if pt, ok := base.(*ast.PrimitiveType); ok {
			pt.IsConst = true
		}
	}

	for p.checkAny(token.STAR, token.AMP) {
		if p.check(token.STAR) {
			tok := p.advance()
			ptrConst := false
			if p.check(token.CONST) {
				p.advance()
				ptrConst = true
			}
			base = &ast.PointerType{Token: tok, Base: base, IsConst: ptrConst}
		} else {
			tok := p.advance()
			base = &ast.ReferenceType{Token: tok, Base: base}
		}
	}

	return base
}
