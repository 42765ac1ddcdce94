package parser

import (
	"cxxc/internal/ast"
	"cxxc/internal/token"
)

// parseClass parses a `class`/`struct` declaration or definition. A
// trailing `;` with no body is a forward declaration, represented as a
// ClassDecl with no Members.
func (p *Parser) parseClass() ast.Decl {
	tok := p.advance() // CLASS or STRUCT
	isStruct := tok.Kind == token.STRUCT
	name := p.expect(token.IDENTIFIER).Lexeme

	var bases []string
	if _, ok := p.matchAndConsume(token.COLON); ok {
		for {
			p.matchAndConsume(token.PUBLIC, token.PRIVATE, token.PROTECTED, token.VIRTUAL)
			bases = append(bases, p.expect(token.IDENTIFIER).Lexeme)
			if _, ok := p.matchAndConsume(token.COMMA); !ok {
				break
			}
		}
	}

	if _, ok := p.matchAndConsume(token.SEMICOLON); ok {
		return &ast.ClassDecl{Token: tok, Name: name, IsStruct: isStruct, Bases: bases}
	}

	p.expect(token.LBRACE)
	access := defaultAccess(isStruct)
	var members []ast.Decl
	for !p.check(token.RBRACE) && !p.check(token.EOF) {
		if kind, ok := p.matchAccessSpecifier(); ok {
			access = kind
			members = append(members, &ast.AccessSpecifierDecl{Token: p.tokens[p.pos-1], Access: access})
			continue
		}
		members = append(members, p.parseClassMember(name))
	}
	p.expect(token.RBRACE)
	p.expect(token.SEMICOLON)
	return &ast.ClassDecl{Token: tok, Name: name, IsStruct: isStruct, Bases: bases, Members: members}
}

// defaultAccess returns the default access level for a class body:
// public for struct, private for class.
func defaultAccess(isStruct bool) ast.Access {
	if isStruct {
		return ast.AccessPublic
	}
	return ast.AccessPrivate
}

func (p *Parser) matchAccessSpecifier() (ast.Access, bool) {
	var kind ast.Access
	switch p.current().Kind {
	case token.PUBLIC:
		kind = ast.AccessPublic
	case token.PRIVATE:
		kind = ast.AccessPrivate
	case token.PROTECTED:
		kind = ast.AccessProtected
	default:
		return 0, false
	}
	if p.peek(1).Kind != token.COLON {
		return 0, false
	}
	p.advance()
	p.advance()
	return kind, true
}

// parseClassMember dispatches between a constructor (`ClassName(...)`), a
// destructor (`~ClassName()`), and an ordinary member
// function/variable, recognized by name against the enclosing class.
func (p *Parser) parseClassMember(className string) ast.Decl {
	if p.check(token.TILDE) && p.peek(1).Kind == token.IDENTIFIER && p.peek(1).Lexeme == className {
		return p.parseDestructor(className)
	}
	if p.check(token.IDENTIFIER) && p.current().Lexeme == className && p.peek(1).Kind == token.LPAREN {
		return p.parseConstructor(className)
	}
	if p.check(token.EXPLICIT) && p.peek(1).Kind == token.IDENTIFIER && p.peek(1).Lexeme == className {
		p.advance()
		d := p.parseConstructor(className)
		d.(*ast.ConstructorDecl).IsExplicit = true
		return d
	}
	if p.check(token.VIRTUAL) && p.peek(1).Kind == token.TILDE {
		p.advance()
		d := p.parseDestructor(className)
		d.(*ast.DestructorDecl).IsVirtual = true
		return d
	}
	d := p.parseDeclaration()
	if v, ok := d.(*ast.VariableDecl); ok && v.IsStatic {
		v.ClassMember = true
	}
	return d
}

func (p *Parser) parseConstructor(className string) ast.Decl {
	tok := p.advance() // className identifier
	params := p.parseParameterList()

	var inits []*ast.MemberInitializer
	if _, ok := p.matchAndConsume(token.COLON); ok {
		for {
			itok := p.expect(token.IDENTIFIER)
			p.expect(token.LPAREN)
			var args []ast.Expr
			for !p.check(token.RPAREN) {
				args = append(args, p.parseExpression())
				if _, ok := p.matchAndConsume(token.COMMA); !ok {
					break
				}
			}
			p.expect(token.RPAREN)
			inits = append(inits, &ast.MemberInitializer{Token: itok, Name: itok.Lexeme, Args: args})
			if _, ok := p.matchAndConsume(token.COMMA); !ok {
				break
			}
		}
	}

	var body *ast.CompoundStmt
	if p.check(token.LBRACE) {
		body = p.parseCompoundStmt()
	} else {
		p.expect(token.SEMICOLON)
	}
	return &ast.ConstructorDecl{Token: tok, ClassName: className, Params: params, Initializers: inits, Body: body}
}

func (p *Parser) parseDestructor(className string) ast.Decl {
	tok := p.expect(token.TILDE)
	p.expect(token.IDENTIFIER)
	p.expect(token.LPAREN)
	p.expect(token.RPAREN)
	var body *ast.CompoundStmt
	if p.check(token.LBRACE) {
		body = p.parseCompoundStmt()
	} else {
		p.expect(token.SEMICOLON)
	}
	return &ast.DestructorDecl{Token: tok, ClassName: className, Body: body}
}
