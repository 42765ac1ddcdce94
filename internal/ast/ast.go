// Package ast defines the closed family of Abstract Syntax Tree node
// types produced by the parser: Type, Declaration, Statement, and
// Expression variants, plus the top-level Program container.
//
// Every node implements the base Node interface directly (TokenLiteral-
// free; position and a debug String() are enough downstream) — a
// deliberate sum-type-plus-interface shape, not a duck-typed
// accept(visitor) dispatch. Code that must branch on the concrete
// variant (the semantic analyzer, the IR generator) uses a Go type
// switch over the interface value.
//
// The AST is produced only by the parser and is read-only to every
// downstream stage: no node holds a back-pointer to its parent, so the
// tree has simple, acyclic, single-owner structure.
package ast

import (
	"strings"

	"cxxc/internal/token"
)

// Node is the interface every AST node implements.
type Node interface {
	Pos() token.Position
	String() string
}

// TypeExpr is a Type-category node: Primitive, Pointer, Reference,
// Array, or UserDefined.
type TypeExpr interface {
	Node
	typeExprNode()
}

// Expr is an Expression-category node: anything that produces a value.
type Expr interface {
	Node
	exprNode()
}

// Stmt is a Statement-category node: anything that performs an action.
type Stmt interface {
	Node
	stmtNode()
}

// Decl is a Declaration-category node. Declarations are also valid
// statements (a local variable declaration inside a compound statement
// is a Decl used as a Stmt), so every Decl implements Stmt too.
type Decl interface {
	Stmt
	declNode()
}

// Program is the root of the AST: an ordered list of top-level
// declarations.
type Program struct {
	Declarations []Decl
}

func (p *Program) Pos() token.Position {
	if len(p.Declarations) > 0 {
		return p.Declarations[0].Pos()
	}
	return token.Position{Line: 1, Column: 1}
}

func (p *Program) String() string {
	var sb strings.Builder
	for _, d := range p.Declarations {
		sb.WriteString(d.String())
		sb.WriteString("\n")
	}
	return sb.String()
}
