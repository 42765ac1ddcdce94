package ast

import (
	"fmt"
	"strings"

	"cxxc/internal/token"
)

// IntegerLit is an integer literal. The lexer strips digit separators
// from its lexeme but keeps any u/U/l/L suffix; the parser drops the
// suffix when it computes Value.
type IntegerLit struct {
	Token token.Token
	Value int64
}

func (e *IntegerLit) exprNode()          {}
func (e *IntegerLit) Pos() token.Position { return e.Token.Pos }
func (e *IntegerLit) String() string      { return e.Token.Lexeme }

// FloatLit is a floating-point literal.
type FloatLit struct {
	Token token.Token
	Value float64
}

func (e *FloatLit) exprNode()          {}
func (e *FloatLit) Pos() token.Position { return e.Token.Pos }
func (e *FloatLit) String() string      { return e.Token.Lexeme }

// CharLit is a character literal.
type CharLit struct {
	Token token.Token
	Value rune
}

func (e *CharLit) exprNode()          {}
func (e *CharLit) Pos() token.Position { return e.Token.Pos }
func (e *CharLit) String() string      { return "'" + string(e.Value) + "'" }

// StringLit is a string literal, with escapes left un-decoded (decoding
// is left to whichever stage needs the runtime bytes; IR generation
// treats the lexeme as already valid).
type StringLit struct {
	Token token.Token
	Value string
}

func (e *StringLit) exprNode()          {}
func (e *StringLit) Pos() token.Position { return e.Token.Pos }
func (e *StringLit) String() string      { return fmt.Sprintf("%q", e.Value) }

// BoolLit is `true` or `false`.
type BoolLit struct {
	Token token.Token
	Value bool
}

func (e *BoolLit) exprNode()          {}
func (e *BoolLit) Pos() token.Position { return e.Token.Pos }
func (e *BoolLit) String() string {
	if e.Value {
		return "true"
	}
	return "false"
}

// NullptrLit is the `nullptr` literal.
type NullptrLit struct{ Token token.Token }

func (e *NullptrLit) exprNode()          {}
func (e *NullptrLit) Pos() token.Position { return e.Token.Pos }
func (e *NullptrLit) String() string      { return "nullptr" }

// Identifier is a name reference, resolved by the semantic analyzer.
type Identifier struct {
	Token token.Token
	Name  string
}

func (e *Identifier) exprNode()          {}
func (e *Identifier) Pos() token.Position { return e.Token.Pos }
func (e *Identifier) String() string      { return e.Name }

// This is the `this` expression inside a member function.
type This struct{ Token token.Token }

func (e *This) exprNode()          {}
func (e *This) Pos() token.Position { return e.Token.Pos }
func (e *This) String() string      { return "this" }

// BinaryExpr is `Left Op Right` for any binary operator (arithmetic,
// bitwise, comparison, logical).
type BinaryExpr struct {
	Token token.Token
	Op    token.Kind
	Left  Expr
	Right Expr
}

func (e *BinaryExpr) exprNode()          {}
func (e *BinaryExpr) Pos() token.Position { return e.Token.Pos }
func (e *BinaryExpr) String() string {
	return "(" + e.Left.String() + " " + e.Op.String() + " " + e.Right.String() + ")"
}

// UnaryExpr is a prefix or postfix unary operator (`++x`, `x++`, `-x`,
// `!x`, `~x`, `*x`, `&x`).
type UnaryExpr struct {
	Token    token.Token
	Op       token.Kind
	Operand  Expr
	IsPostfix bool
}

func (e *UnaryExpr) exprNode()          {}
func (e *UnaryExpr) Pos() token.Position { return e.Token.Pos }
func (e *UnaryExpr) String() string {
	if e.IsPostfix {
		return e.Operand.String() + e.Op.String()
	}
	return e.Op.String() + e.Operand.String()
}

// AssignmentExpr is `Target Op Value` for `=` or a compound assignment
// (`+=`, `-=`, ...).
type AssignmentExpr struct {
	Token  token.Token
	Op     token.Kind
	Target Expr
	Value  Expr
}

func (e *AssignmentExpr) exprNode()          {}
func (e *AssignmentExpr) Pos() token.Position { return e.Token.Pos }
func (e *AssignmentExpr) String() string {
	return e.Target.String() + " " + e.Op.String() + " " + e.Value.String()
}

// CallExpr is `Callee(Args...)`.
type CallExpr struct {
	Token  token.Token
	Callee Expr
	Args   []Expr
}

func (e *CallExpr) exprNode()          {}
func (e *CallExpr) Pos() token.Position { return e.Token.Pos }
func (e *CallExpr) String() string {
	parts := make([]string, len(e.Args))
	for i, a := range e.Args {
		parts[i] = a.String()
	}
	return e.Callee.String() + "(" + strings.Join(parts, ", ") + ")"
}

// MemberAccessExpr is `Object.Member` or, when Arrow is true,
// `Object->Member`.
type MemberAccessExpr struct {
	Token  token.Token
	Object Expr
	Member string
	Arrow  bool
}

func (e *MemberAccessExpr) exprNode()          {}
func (e *MemberAccessExpr) Pos() token.Position { return e.Token.Pos }
func (e *MemberAccessExpr) String() string {
	op := "."
	if e.Arrow {
		op = "->"
	}
	return e.Object.String() + op + e.Member
}

// ArrayAccessExpr is `Array[Index]`.
type ArrayAccessExpr struct {
	Token token.Token
	Array Expr
	Index Expr
}

func (e *ArrayAccessExpr) exprNode()          {}
func (e *ArrayAccessExpr) Pos() token.Position { return e.Token.Pos }
func (e *ArrayAccessExpr) String() string {
	return e.Array.String() + "[" + e.Index.String() + "]"
}

// TernaryExpr is `Cond ? Then : Else`.
type TernaryExpr struct {
	Token token.Token
	Cond  Expr
	Then  Expr
	Else  Expr
}

func (e *TernaryExpr) exprNode()          {}
func (e *TernaryExpr) Pos() token.Position { return e.Token.Pos }
func (e *TernaryExpr) String() string {
	return e.Cond.String() + " ? " + e.Then.String() + " : " + e.Else.String()
}

// CastKind distinguishes the four named cast operators.
type CastKind int

const (
	StaticCast CastKind = iota
	DynamicCast
	ConstCast
	ReinterpretCast
)

func (k CastKind) String() string {
	switch k {
	case DynamicCast:
		return "dynamic_cast"
	case ConstCast:
		return "const_cast"
	case ReinterpretCast:
		return "reinterpret_cast"
	default:
		return "static_cast"
	}
}

// CastExpr is `kind<Type>(Operand)`.
type CastExpr struct {
	Token    token.Token
	Kind     CastKind
	Type     TypeExpr
	Operand  Expr
}

func (e *CastExpr) exprNode()          {}
func (e *CastExpr) Pos() token.Position { return e.Token.Pos }
func (e *CastExpr) String() string {
	return e.Kind.String() + "<" + e.Type.String() + ">(" + e.Operand.String() + ")"
}

// NewExpr is `new Type`, `new Type(Args...)`, or `new Type[Size]`.
type NewExpr struct {
	Token   token.Token
	Type    TypeExpr
	Args    []Expr
	IsArray bool
	Size    Expr // non-nil iff IsArray
}

func (e *NewExpr) exprNode()          {}
func (e *NewExpr) Pos() token.Position { return e.Token.Pos }
func (e *NewExpr) String() string {
	if e.IsArray {
		return "new " + e.Type.String() + "[" + e.Size.String() + "]"
	}
	return "new " + e.Type.String() + "(...)"
}

// DeleteExpr is `delete Operand` or, when IsArray, `delete[] Operand`.
type DeleteExpr struct {
	Token   token.Token
	Operand Expr
	IsArray bool
}

func (e *DeleteExpr) exprNode()          {}
func (e *DeleteExpr) Pos() token.Position { return e.Token.Pos }
func (e *DeleteExpr) String() string {
	if e.IsArray {
		return "delete[] " + e.Operand.String()
	}
	return "delete " + e.Operand.String()
}

// SizeofExpr is `sizeof(Operand)` or `sizeof(Type)`; exactly one of
// Operand/Type is set.
type SizeofExpr struct {
	Token   token.Token
	Operand Expr     // nil for the type form
	Type    TypeExpr // nil for the expression form
}

func (e *SizeofExpr) exprNode()          {}
func (e *SizeofExpr) Pos() token.Position { return e.Token.Pos }
func (e *SizeofExpr) String() string {
	if e.Type != nil {
		return "sizeof(" + e.Type.String() + ")"
	}
	return "sizeof(" + e.Operand.String() + ")"
}

// LambdaExpr is `[Captures](Params) -> ReturnType { Body }`; ReturnType
// is nil when not explicitly annotated.
type LambdaExpr struct {
	Token      token.Token
	Captures   []string
	Params     []*Parameter
	ReturnType TypeExpr
	Body       *CompoundStmt
}

func (e *LambdaExpr) exprNode()          {}
func (e *LambdaExpr) Pos() token.Position { return e.Token.Pos }
func (e *LambdaExpr) String() string      { return "[...](...) { ... }" }
