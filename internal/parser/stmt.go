package parser

import (
	"cxxc/internal/ast"
	"cxxc/internal/token"
)

// parseStatement dispatches on the leading token to produce one
// statement, including local declarations.
func (p *Parser) parseStatement() ast.Stmt {
	switch p.current().Kind {
	case token.LBRACE:
		return p.parseCompoundStmt()
	case token.IF:
		return p.parseIfStmt()
	case token.WHILE:
		return p.parseWhileStmt()
	case token.DO:
		return p.parseDoWhileStmt()
	case token.FOR:
		return p.parseForStmt()
	case token.SWITCH:
		return p.parseSwitchStmt()
	case token.BREAK:
		tok := p.advance()
		p.expect(token.SEMICOLON)
		return &ast.BreakStmt{Token: tok}
	case token.CONTINUE:
		tok := p.advance()
		p.expect(token.SEMICOLON)
		return &ast.ContinueStmt{Token: tok}
	case token.RETURN:
		return p.parseReturnStmt()
	case token.TRY:
		return p.parseTryStmt()
	case token.THROW:
		return p.parseThrowStmt()
	case token.SEMICOLON:
		tok := p.advance()
		return &ast.ExpressionStmt{Token: tok, Expr: nil}
	default:
		if p.startsType() || p.checkAny(token.STATIC, token.CONST, token.EXTERN) {
			decl := p.parseFunctionOrVariable()
			if s, ok := decl.(ast.Stmt); ok {
				return s
			}
		}
		return p.parseExpressionStmt()
	}
}

func (p *Parser) parseCompoundStmt() *ast.CompoundStmt {
	tok := p.expect(token.LBRACE)
	var stmts []ast.Stmt
	for !p.check(token.RBRACE) && !p.check(token.EOF) {
		stmts = append(stmts, p.parseStatement())
	}
	p.expect(token.RBRACE)
	return &ast.CompoundStmt{Token: tok, Statements: stmts}
}

func (p *Parser) parseIfStmt() ast.Stmt {
	tok := p.expect(token.IF)
	p.expect(token.LPAREN)
	cond := p.parseExpression()
	p.expect(token.RPAREN)
	then := p.parseStatement()
	var els ast.Stmt
	if _, ok := p.matchAndConsume(token.ELSE); ok {
		els = p.parseStatement()
	}
	return &ast.IfStmt{Token: tok, Cond: cond, Then: then, Else: els}
}

func (p *Parser) parseWhileStmt() ast.Stmt {
	tok := p.expect(token.WHILE)
	p.expect(token.LPAREN)
	cond := p.parseExpression()
	p.expect(token.RPAREN)
	body := p.parseStatement()
	return &ast.WhileStmt{Token: tok, Cond: cond, Body: body}
}

func (p *Parser) parseDoWhileStmt() ast.Stmt {
	tok := p.expect(token.DO)
	body := p.parseStatement()
	p.expect(token.WHILE)
	p.expect(token.LPAREN)
	cond := p.parseExpression()
	p.expect(token.RPAREN)
	p.expect(token.SEMICOLON)
	return &ast.DoWhileStmt{Token: tok, Body: body, Cond: cond}
}

func (p *Parser) parseForStmt() ast.Stmt {
	tok := p.expect(token.FOR)
	p.expect(token.LPAREN)

	var init ast.Stmt
	if !p.check(token.SEMICOLON) {
		if p.startsType() {
			if d, ok := p.parseFunctionOrVariable().(ast.Stmt); ok {
				init = d
			}
		} else {
			init = p.parseExpressionStmt()
		}
	} else {
		p.advance()
	}

	var cond ast.Expr
	if !p.check(token.SEMICOLON) {
		cond = p.parseExpression()
	}
	p.expect(token.SEMICOLON)

	var incr ast.Expr
	if !p.check(token.RPAREN) {
		incr = p.parseExpression()
	}
	p.expect(token.RPAREN)

	body := p.parseStatement()
	return &ast.ForStmt{Token: tok, Init: init, Cond: cond, Incr: incr, Body: body}
}

func (p *Parser) parseSwitchStmt() ast.Stmt {
	tok := p.expect(token.SWITCH)
	p.expect(token.LPAREN)
	tag := p.parseExpression()
	p.expect(token.RPAREN)
	p.expect(token.LBRACE)

	var cases []*ast.CaseStmt
	for !p.check(token.RBRACE) && !p.check(token.EOF) {
		cases = append(cases, p.parseCaseStmt())
	}
	p.expect(token.RBRACE)
	return &ast.SwitchStmt{Token: tok, Tag: tag, Cases: cases}
}

func (p *Parser) parseCaseStmt() *ast.CaseStmt {
	var value ast.Expr
	tok := p.current()
	if _, ok := p.matchAndConsume(token.DEFAULT); ok {
		p.expect(token.COLON)
	} else {
		p.expect(token.CASE)
		value = p.parseExpression()
		p.expect(token.COLON)
	}
	var stmts []ast.Stmt
	for !p.checkAny(token.CASE, token.DEFAULT, token.RBRACE) {
		stmts = append(stmts, p.parseStatement())
	}
	return &ast.CaseStmt{Token: tok, Value: value, Statements: stmts}
}

func (p *Parser) parseReturnStmt() ast.Stmt {
	tok := p.expect(token.RETURN)
	var value ast.Expr
	if !p.check(token.SEMICOLON) {
		value = p.parseExpression()
	}
	p.expect(token.SEMICOLON)
	return &ast.ReturnStmt{Token: tok, Value: value}
}

func (p *Parser) parseTryStmt() ast.Stmt {
	tok := p.expect(token.TRY)
	body := p.parseCompoundStmt()
	var handlers []*ast.CatchClause
	for p.check(token.CATCH) {
		handlers = append(handlers, p.parseCatchClause())
	}
	if len(handlers) == 0 {
		p.fail("expected at least one 'catch' clause after 'try'")
	}
	return &ast.TryStmt{Token: tok, Body: body, Handlers: handlers}
}

func (p *Parser) parseCatchClause() *ast.CatchClause {
	tok := p.expect(token.CATCH)
	p.expect(token.LPAREN)
	var typ ast.TypeExpr
	name := ""
	if _, ok := p.matchAndConsume(token.ELLIPSIS); !ok {
		typ = p.parseType()
		if p.check(token.IDENTIFIER) {
			name = p.advance().Lexeme
		}
	}
	p.expect(token.RPAREN)
	body := p.parseCompoundStmt()
	return &ast.CatchClause{Token: tok, Type: typ, Name: name, Body: body}
}

func (p *Parser) parseThrowStmt() ast.Stmt {
	tok := p.expect(token.THROW)
	var value ast.Expr
	if !p.check(token.SEMICOLON) {
		value = p.parseExpression()
	}
	p.expect(token.SEMICOLON)
	return &ast.ThrowStmt{Token: tok, Value: value}
}

func (p *Parser) parseExpressionStmt() ast.Stmt {
	tok := p.current()
	expr := p.parseExpression()
	p.expect(token.SEMICOLON)
	return &ast.ExpressionStmt{Token: tok, Expr: expr}
}
