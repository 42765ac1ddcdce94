package ast

import "cxxc/internal/token"

// CompoundStmt is a `{ ... }` block; it introduces its own lexical scope.
type CompoundStmt struct {
	Token      token.Token
	Statements []Stmt
}

func (s *CompoundStmt) stmtNode()          {}
func (s *CompoundStmt) Pos() token.Position { return s.Token.Pos }
func (s *CompoundStmt) String() string      { return "{ ... }" }

// ExpressionStmt evaluates Expr for its side effects and discards the
// result.
type ExpressionStmt struct {
	Token token.Token
	Expr  Expr
}

func (s *ExpressionStmt) stmtNode()          {}
func (s *ExpressionStmt) Pos() token.Position { return s.Token.Pos }
func (s *ExpressionStmt) String() string      { return s.Expr.String() + ";" }

// ReturnStmt is `return;` or `return expr;`.
type ReturnStmt struct {
	Token token.Token
	Value Expr // nil for a bare `return;`
}

func (s *ReturnStmt) stmtNode()          {}
func (s *ReturnStmt) Pos() token.Position { return s.Token.Pos }
func (s *ReturnStmt) String() string {
	if s.Value != nil {
		return "return " + s.Value.String() + ";"
	}
	return "return;"
}

// IfStmt is `if (Cond) Then [else Else]`.
type IfStmt struct {
	Token token.Token
	Cond  Expr
	Then  Stmt
	Else  Stmt // nil if no else branch
}

func (s *IfStmt) stmtNode()          {}
func (s *IfStmt) Pos() token.Position { return s.Token.Pos }
func (s *IfStmt) String() string      { return "if (" + s.Cond.String() + ") ..." }

// WhileStmt is `while (Cond) Body`.
type WhileStmt struct {
	Token token.Token
	Cond  Expr
	Body  Stmt
}

func (s *WhileStmt) stmtNode()          {}
func (s *WhileStmt) Pos() token.Position { return s.Token.Pos }
func (s *WhileStmt) String() string      { return "while (" + s.Cond.String() + ") ..." }

// DoWhileStmt is `do Body while (Cond);`.
type DoWhileStmt struct {
	Token token.Token
	Body  Stmt
	Cond  Expr
}

func (s *DoWhileStmt) stmtNode()          {}
func (s *DoWhileStmt) Pos() token.Position { return s.Token.Pos }
func (s *DoWhileStmt) String() string      { return "do ... while (" + s.Cond.String() + ");" }

// ForStmt is `for (Init; Cond; Incr) Body`; any of Init/Cond/Incr may be
// nil.
type ForStmt struct {
	Token token.Token
	Init  Stmt
	Cond  Expr
	Incr  Expr
	Body  Stmt
}

func (s *ForStmt) stmtNode()          {}
func (s *ForStmt) Pos() token.Position { return s.Token.Pos }
func (s *ForStmt) String() string      { return "for (...) ..." }

// BreakStmt is `break;`.
type BreakStmt struct{ Token token.Token }

func (s *BreakStmt) stmtNode()          {}
func (s *BreakStmt) Pos() token.Position { return s.Token.Pos }
func (s *BreakStmt) String() string      { return "break;" }

// ContinueStmt is `continue;`.
type ContinueStmt struct{ Token token.Token }

func (s *ContinueStmt) stmtNode()          {}
func (s *ContinueStmt) Pos() token.Position { return s.Token.Pos }
func (s *ContinueStmt) String() string      { return "continue;" }

// CaseStmt is one `case Value:` or `default:` arm of a SwitchStmt; Value
// is nil for the default arm.
type CaseStmt struct {
	Token      token.Token
	Value      Expr // nil for `default:`
	Statements []Stmt
}

func (s *CaseStmt) stmtNode()          {}
func (s *CaseStmt) Pos() token.Position { return s.Token.Pos }
func (s *CaseStmt) String() string {
	if s.Value != nil {
		return "case " + s.Value.String() + ": ..."
	}
	return "default: ..."
}

// SwitchStmt is `switch (Tag) { Cases... }`.
type SwitchStmt struct {
	Token token.Token
	Tag   Expr
	Cases []*CaseStmt
}

func (s *SwitchStmt) stmtNode()          {}
func (s *SwitchStmt) Pos() token.Position { return s.Token.Pos }
func (s *SwitchStmt) String() string      { return "switch (" + s.Tag.String() + ") { ... }" }

// CatchClause is one `catch (Type Name) Body` handler; Name may be empty
// for an unnamed exception variable, and Type may be nil for `catch (...)`.
type CatchClause struct {
	Token token.Token
	Type  TypeExpr
	Name  string
	Body  *CompoundStmt
}

func (c *CatchClause) Pos() token.Position { return c.Token.Pos }
func (c *CatchClause) String() string      { return "catch (...) { ... }" }

// TryStmt is `try Body Handlers...`.
type TryStmt struct {
	Token    token.Token
	Body     *CompoundStmt
	Handlers []*CatchClause
}

func (s *TryStmt) stmtNode()          {}
func (s *TryStmt) Pos() token.Position { return s.Token.Pos }
func (s *TryStmt) String() string      { return "try { ... }" }

// ThrowStmt is `throw;` (re-throw) or `throw Expr;`.
type ThrowStmt struct {
	Token token.Token
	Value Expr // nil for a bare re-throw
}

func (s *ThrowStmt) stmtNode()          {}
func (s *ThrowStmt) Pos() token.Position { return s.Token.Pos }
func (s *ThrowStmt) String() string {
	if s.Value != nil {
		return "throw " + s.Value.String() + ";"
	}
	return "throw;"
}
