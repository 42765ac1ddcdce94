package parser

import "cxxc/internal/ast"
import "cxxc/internal/token"

// parseDeclaration dispatches on the leading token kind, per the grammar
// skeleton in the component design.
func (p *Parser) parseDeclaration() ast.Decl {
	switch p.current().Kind {
	case token.NAMESPACE:
		return p.parseNamespace()
	case token.USING:
		return p.parseUsing()
	case token.TEMPLATE:
		return p.parseTemplate()
	case token.CLASS, token.STRUCT:
		return p.parseClass()
	case token.ENUM:
		return p.parseEnum()
	case token.TYPEDEF:
		return p.parseTypedef()
	default:
		return p.parseFunctionOrVariable()
	}
}

func (p *Parser) parseNamespace() ast.Decl {
	tok := p.expect(token.NAMESPACE)
	name := p.expect(token.IDENTIFIER).Lexeme
	p.expect(token.LBRACE)
	var decls []ast.Decl
	for !p.check(token.RBRACE) && !p.check(token.EOF) {
		decls = append(decls, p.parseDeclaration())
	}
	p.expect(token.RBRACE)
	return &ast.NamespaceDecl{Token: tok, Name: name, Declarations: decls}
}

func (p *Parser) parseUsing() ast.Decl {
	tok := p.expect(token.USING)
	name := p.expect(token.IDENTIFIER).Lexeme
	if _, ok := p.matchAndConsume(token.ASSIGN); ok {
		typ := p.parseType()
		p.expect(token.SEMICOLON)
		return &ast.UsingDecl{Token: tok, Name: name, Aliased: typ}
	}
	// `using NS::name;` directive form: name captured the first segment.
	qualified := name
	for {
		if _, ok := p.matchAndConsume(token.SCOPE); !ok {
			break
		}
		qualified += "::" + p.expect(token.IDENTIFIER).Lexeme
	}
	p.expect(token.SEMICOLON)
	return &ast.UsingDecl{Token: tok, Name: name, Qualified: qualified}
}

func (p *Parser) parseTemplate() ast.Decl {
	tok := p.expect(token.TEMPLATE)
	p.expect(token.LT)
	var params []*ast.TemplateParameter
	for !p.check(token.GT) {
		ptok := p.current()
		if !p.checkAny(token.TYPENAME, token.CLASS) {
			p.fail("expected 'typename' or 'class' in template parameter list")
		}
		p.advance()
		name := p.expect(token.IDENTIFIER).Lexeme
		params = append(params, &ast.TemplateParameter{Token: ptok, Name: name})
		if _, ok := p.matchAndConsume(token.COMMA); !ok {
			break
		}
	}
	p.expect(token.GT)
	inner := p.parseDeclaration()
	return &ast.TemplateDecl{Token: tok, Parameters: params, Decl: inner}
}

func (p *Parser) parseTypedef() ast.Decl {
	tok := p.expect(token.TYPEDEF)
	typ := p.parseType()
	name := p.expect(token.IDENTIFIER).Lexeme
	p.expect(token.SEMICOLON)
	return &ast.TypedefDecl{Token: tok, Name: name, Type: typ}
}

func (p *Parser) parseEnum() ast.Decl {
	tok := p.expect(token.ENUM)
	scoped := false
	if _, ok := p.matchAndConsume(token.CLASS); ok {
		scoped = true
	} else if _, ok := p.matchAndConsume(token.STRUCT); ok {
		scoped = true
	}
	name := p.expect(token.IDENTIFIER).Lexeme
	var underlying ast.TypeExpr
	if _, ok := p.matchAndConsume(token.COLON); ok {
		underlying = p.parseType()
	}
	p.expect(token.LBRACE)
	var enumerators []*ast.EnumeratorDecl
	for !p.check(token.RBRACE) {
		etok := p.current()
		ename := p.expect(token.IDENTIFIER).Lexeme
		var value ast.Expr
		if _, ok := p.matchAndConsume(token.ASSIGN); ok {
			value = p.parseExpression()
		}
		enumerators = append(enumerators, &ast.EnumeratorDecl{Token: etok, Name: ename, Value: value})
		if _, ok := p.matchAndConsume(token.COMMA); !ok {
			break
		}
	}
	p.expect(token.RBRACE)
	p.expect(token.SEMICOLON)
	return &ast.EnumDecl{Token: tok, Name: name, IsScoped: scoped, Underlying: underlying, Enumerators: enumerators}
}

// parseFunctionOrVariable handles the function-vs-variable ambiguity:
// leading modifiers, then a type, then an identifier; `(` starts a
// function, anything else starts a variable with an optional
// initializer.
func (p *Parser) parseFunctionOrVariable() ast.Decl {
	tok := p.current()

	isStatic, isExtern, isInline, isVirtual, isConstexpr := p.parseModifiers()
	_ = isConstexpr

	typ := p.parseType()
	name := p.expect(token.IDENTIFIER).Lexeme

	if p.check(token.LPAREN) {
		params := p.parseParameterList()
		isConstMethod := false
		if _, ok := p.matchAndConsume(token.CONST); ok {
			isConstMethod = true
		}
		var body *ast.CompoundStmt
		if p.check(token.LBRACE) {
			body = p.parseCompoundStmt()
		} else {
			p.expect(token.SEMICOLON)
		}
		return &ast.FunctionDecl{
			Token: tok, Name: name, ReturnType: typ, Params: params, Body: body,
			IsStatic: isStatic, IsVirtual: isVirtual, IsConst: isConstMethod, IsInline: isInline,
		}
	}

	var arrayBase ast.TypeExpr = typ
	if _, ok := p.matchAndConsume(token.LBRACKET); ok {
		var size ast.Expr
		if !p.check(token.RBRACKET) {
			size = p.parseExpression()
		}
		p.expect(token.RBRACKET)
		arrayBase = &ast.ArrayType{Token: tok, Base: typ, Size: size}
	}

	var init ast.Expr
	if _, ok := p.matchAndConsume(token.ASSIGN); ok {
		init = p.parseExpression()
	}
	p.expect(token.SEMICOLON)
	return &ast.VariableDecl{Token: tok, Name: name, Type: arrayBase, Init: init, IsStatic: isStatic, IsExtern: isExtern}
}

func (p *Parser) parseModifiers() (isStatic, isExtern, isInline, isVirtual, isConstexpr bool) {
	for {
		switch p.current().Kind {
		case token.STATIC:
			isStatic = true
		case token.EXTERN:
			isExtern = true
		case token.INLINE:
			isInline = true
		case token.VIRTUAL:
			isVirtual = true
		case token.CONSTEXPR:
			isConstexpr = true
		case token.REGISTER, token.THREAD_LOCAL, token.EXPLICIT:
			// accepted and otherwise ignored at this level of fidelity
		default:
			return
		}
		p.advance()
	}
}

func (p *Parser) parseParameterList() []*ast.Parameter {
	p.expect(token.LPAREN)
	var params []*ast.Parameter
	for !p.check(token.RPAREN) {
		ptok := p.current()
		ptype := p.parseType()
		pname := ""
		if p.check(token.IDENTIFIER) {
			pname = p.advance().Lexeme
		}
		var def ast.Expr
		if _, ok := p.matchAndConsume(token.ASSIGN); ok {
			def = p.parseExpression()
		}
		params = append(params, &ast.Parameter{Token: ptok, Name: pname, Type: ptype, Default: def})
		if _, ok := p.matchAndConsume(token.COMMA); !ok {
			break
		}
	}
	p.expect(token.RPAREN)
	return params
}
