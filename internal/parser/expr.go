package parser

import (
	"cxxc/internal/ast"
	"cxxc/internal/token"
)

// parseExpression is the entry point of the precedence-climbing
// expression parser, starting at assignment level (the lowest
// precedence, right-associative).
func (p *Parser) parseExpression() ast.Expr {
	return p.parseAssignment()
}

var assignOps = map[token.Kind]bool{
	token.ASSIGN: true, token.PLUS_ASSIGN: true, token.MINUS_ASSIGN: true,
	token.STAR_ASSIGN: true, token.SLASH_ASSIGN: true, token.PERCENT_ASSIGN: true,
	token.AMP_ASSIGN: true, token.PIPE_ASSIGN: true, token.CARET_ASSIGN: true,
	token.SHL_ASSIGN: true, token.SHR_ASSIGN: true,
}

func (p *Parser) parseAssignment() ast.Expr {
	left := p.parseTernary()
	if assignOps[p.current().Kind] {
		tok := p.advance()
		value := p.parseAssignment() // right-associative
		return &ast.AssignmentExpr{Token: tok, Op: tok.Kind, Target: left, Value: value}
	}
	return left
}

func (p *Parser) parseTernary() ast.Expr {
	cond := p.parseLogicalOr()
	if tok, ok := p.matchAndConsume(token.QUESTION); ok {
		then := p.parseAssignment()
		p.expect(token.COLON)
		els := p.parseAssignment()
		return &ast.TernaryExpr{Token: tok, Cond: cond, Then: then, Else: els}
	}
	return cond
}

func (p *Parser) parseLogicalOr() ast.Expr {
	left := p.parseLogicalAnd()
	for p.check(token.LOGICAL_OR) {
		tok := p.advance()
		right := p.parseLogicalAnd()
		left = &ast.BinaryExpr{Token: tok, Op: tok.Kind, Left: left, Right: right}
	}
	return left
}

func (p *Parser) parseLogicalAnd() ast.Expr {
	left := p.parseBitwiseOr()
	for p.check(token.LOGICAL_AND) {
		tok := p.advance()
		right := p.parseBitwiseOr()
		left = &ast.BinaryExpr{Token: tok, Op: tok.Kind, Left: left, Right: right}
	}
	return left
}

func (p *Parser) parseBitwiseOr() ast.Expr {
	left := p.parseBitwiseXor()
	for p.check(token.PIPE) {
		tok := p.advance()
		right := p.parseBitwiseXor()
		left = &ast.BinaryExpr{Token: tok, Op: tok.Kind, Left: left, Right: right}
	}
	return left
}

func (p *Parser) parseBitwiseXor() ast.Expr {
	left := p.parseBitwiseAnd()
	for p.check(token.CARET) {
		tok := p.advance()
		right := p.parseBitwiseAnd()
		left = &ast.BinaryExpr{Token: tok, Op: tok.Kind, Left: left, Right: right}
	}
	return left
}

func (p *Parser) parseBitwiseAnd() ast.Expr {
	left := p.parseEquality()
	for p.check(token.AMP) {
		tok := p.advance()
		right := p.parseEquality()
		left = &ast.BinaryExpr{Token: tok, Op: tok.Kind, Left: left, Right: right}
	}
	return left
}

func (p *Parser) parseEquality() ast.Expr {
	left := p.parseRelational()
	for p.checkAny(token.EQ, token.NE) {
		tok := p.advance()
		right := p.parseRelational()
		left = &ast.BinaryExpr{Token: tok, Op: tok.Kind, Left: left, Right: right}
	}
	return left
}

func (p *Parser) parseRelational() ast.Expr {
	left := p.parseShift()
	for p.checkAny(token.LT, token.GT, token.LE, token.GE) {
		tok := p.advance()
		right := p.parseShift()
		left = &ast.BinaryExpr{Token: tok, Op: tok.Kind, Left: left, Right: right}
	}
	return left
}

func (p *Parser) parseShift() ast.Expr {
	left := p.parseAdditive()
	for p.checkAny(token.SHL, token.SHR) {
		tok := p.advance()
		right := p.parseAdditive()
		left = &ast.BinaryExpr{Token: tok, Op: tok.Kind, Left: left, Right: right}
	}
	return left
}

func (p *Parser) parseAdditive() ast.Expr {
	left := p.parseMultiplicative()
	for p.checkAny(token.PLUS, token.MINUS) {
		tok := p.advance()
		right := p.parseMultiplicative()
		left = &ast.BinaryExpr{Token: tok, Op: tok.Kind, Left: left, Right: right}
	}
	return left
}

func (p *Parser) parseMultiplicative() ast.Expr {
	left := p.parseUnary()
	for p.checkAny(token.STAR, token.SLASH, token.PERCENT) {
		tok := p.advance()
		right := p.parseUnary()
		left = &ast.BinaryExpr{Token: tok, Op: tok.Kind, Left: left, Right: right}
	}
	return left
}

var unaryOps = map[token.Kind]bool{
	token.PLUS: true, token.MINUS: true, token.LOGICAL_NOT: true, token.TILDE: true,
	token.STAR: true, token.AMP: true, token.PLUS_PLUS: true, token.MINUS_MINUS: true,
}

func (p *Parser) parseUnary() ast.Expr {
	switch p.current().Kind {
	case token.SIZEOF:
		return p.parseSizeof()
	case token.NEW:
		return p.parseNew()
	case token.DELETE:
		return p.parseDelete()
	case token.STATIC_CAST, token.DYNAMIC_CAST, token.CONST_CAST, token.REINTERPRET_CAST:
		return p.parseCast()
	}
	if unaryOps[p.current().Kind] {
		tok := p.advance()
		operand := p.parseUnary()
		return &ast.UnaryExpr{Token: tok, Op: tok.Kind, Operand: operand}
	}
	return p.parsePostfix()
}

func (p *Parser) parseSizeof() ast.Expr {
	tok := p.expect(token.SIZEOF)
	p.expect(token.LPAREN)
	if p.startsType() {
		typ := p.parseType()
		p.expect(token.RPAREN)
		return &ast.SizeofExpr{Token: tok, Type: typ}
	}
	operand := p.parseExpression()
	p.expect(token.RPAREN)
	return &ast.SizeofExpr{Token: tok, Operand: operand}
}

func (p *Parser) parseNew() ast.Expr {
	tok := p.expect(token.NEW)
	typ := p.parseType()
	if _, ok := p.matchAndConsume(token.LBRACKET); ok {
		size := p.parseExpression()
		p.expect(token.RBRACKET)
		return &ast.NewExpr{Token: tok, Type: typ, IsArray: true, Size: size}
	}
	var args []ast.Expr
	if _, ok := p.matchAndConsume(token.LPAREN); ok {
		for !p.check(token.RPAREN) {
			args = append(args, p.parseExpression())
			if _, ok := p.matchAndConsume(token.COMMA); !ok {
				break
			}
		}
		p.expect(token.RPAREN)
	}
	return &ast.NewExpr{Token: tok, Type: typ, Args: args}
}

func (p *Parser) parseDelete() ast.Expr {
	tok := p.expect(token.DELETE)
	isArray := false
	if _, ok := p.matchAndConsume(token.LBRACKET); ok {
		p.expect(token.RBRACKET)
		isArray = true
	}
	operand := p.parseUnary()
	return &ast.DeleteExpr{Token: tok, Operand: operand, IsArray: isArray}
}

var castKinds = map[token.Kind]ast.CastKind{
	token.STATIC_CAST:       ast.StaticCast,
	token.DYNAMIC_CAST:      ast.DynamicCast,
	token.CONST_CAST:        ast.ConstCast,
	token.REINTERPRET_CAST:  ast.ReinterpretCast,
}

func (p *Parser) parseCast() ast.Expr {
	tok := p.advance()
	p.expect(token.LT)
	typ := p.parseType()
	p.expect(token.GT)
	p.expect(token.LPAREN)
	operand := p.parseExpression()
	p.expect(token.RPAREN)
	return &ast.CastExpr{Token: tok, Kind: castKinds[tok.Kind], Type: typ, Operand: operand}
}

func (p *Parser) parsePostfix() ast.Expr {
	expr := p.parsePrimary()
	for {
		switch p.current().Kind {
		case token.LPAREN:
			tok := p.advance()
			var args []ast.Expr
			for !p.check(token.RPAREN) {
				args = append(args, p.parseExpression())
				if _, ok := p.matchAndConsume(token.COMMA); !ok {
					break
				}
			}
			p.expect(token.RPAREN)
			expr = &ast.CallExpr{Token: tok, Callee: expr, Args: args}
		case token.LBRACKET:
			tok := p.advance()
			index := p.parseExpression()
			p.expect(token.RBRACKET)
			expr = &ast.ArrayAccessExpr{Token: tok, Array: expr, Index: index}
		case token.DOT:
			tok := p.advance()
			member := p.expect(token.IDENTIFIER).Lexeme
			expr = &ast.MemberAccessExpr{Token: tok, Object: expr, Member: member}
		case token.ARROW:
			tok := p.advance()
			member := p.expect(token.IDENTIFIER).Lexeme
			expr = &ast.MemberAccessExpr{Token: tok, Object: expr, Member: member, Arrow: true}
		case token.PLUS_PLUS, token.MINUS_MINUS:
			tok := p.advance()
			expr = &ast.UnaryExpr{Token: tok, Op: tok.Kind, Operand: expr, IsPostfix: true}
		default:
			return expr
		}
	}
}

func (p *Parser) parsePrimary() ast.Expr {
	tok := p.current()
	switch tok.Kind {
	case token.INTEGER:
		p.advance()
		return &ast.IntegerLit{Token: tok, Value: parseIntLiteral(tok.Lexeme)}
	case token.FLOAT:
		p.advance()
		return &ast.FloatLit{Token: tok, Value: parseFloatLiteral(tok.Lexeme)}
	case token.CHAR:
		p.advance()
		return &ast.CharLit{Token: tok, Value: []rune(tok.Lexeme)[0]}
	case token.STRING:
		p.advance()
		return &ast.StringLit{Token: tok, Value: tok.Lexeme}
	case token.TRUE:
		p.advance()
		return &ast.BoolLit{Token: tok, Value: true}
	case token.FALSE:
		p.advance()
		return &ast.BoolLit{Token: tok, Value: false}
	case token.NULLPTR:
		p.advance()
		return &ast.NullptrLit{Token: tok}
	case token.THIS:
		p.advance()
		return &ast.This{Token: tok}
	case token.IDENTIFIER:
		p.advance()
		name := tok.Lexeme
		for p.check(token.SCOPE) {
			p.advance()
			name += "::" + p.expect(token.IDENTIFIER).Lexeme
		}
		return &ast.Identifier{Token: tok, Name: name}
	case token.LPAREN:
		p.advance()
		expr := p.parseExpression()
		p.expect(token.RPAREN)
		return expr
	case token.LBRACKET:
		return p.parseLambda()
	}
	p.fail("expected an expression, found " + tok.Kind.String())
	return nil
}

func (p *Parser) parseLambda() ast.Expr {
	tok := p.expect(token.LBRACKET)
	var captures []string
	for !p.check(token.RBRACKET) {
		if p.checkAny(token.AMP, token.ASSIGN) {
			captures = append(captures, p.advance().Lexeme)
		} else {
			captures = append(captures, p.expect(token.IDENTIFIER).Lexeme)
		}
		if _, ok := p.matchAndConsume(token.COMMA); !ok {
			break
		}
	}
	p.expect(token.RBRACKET)
	params := p.parseParameterList()
	var ret ast.TypeExpr
	if _, ok := p.matchAndConsume(token.ARROW); ok {
		ret = p.parseType()
	}
	body := p.parseCompoundStmt()
	return &ast.LambdaExpr{Token: tok, Captures: captures, Params: params, ReturnType: ret, Body: body}
}
