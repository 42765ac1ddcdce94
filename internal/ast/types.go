package ast

import (
	"fmt"

	"cxxc/internal/token"
)

// PrimitiveType is a built-in numeric/bool/void type, e.g. `unsigned long`.
type PrimitiveType struct {
	Token    token.Token
	Name     string // canonical spelling, e.g. "long long"
	Signed   bool   // explicit signed/unsigned; meaningless for non-integral names
	Unsigned bool
	IsConst  bool
	Volatile bool
}

func (t *PrimitiveType) typeExprNode()      {}
func (t *PrimitiveType) Pos() token.Position { return t.Token.Pos }
func (t *PrimitiveType) String() string {
	s := t.Name
	if t.Unsigned {
		s = "unsigned " + s
	}
	if t.IsConst {
		s = "const " + s
	}
	return s
}

// PointerType is `base *` with an optional trailing const.
type PointerType struct {
	Token   token.Token
	Base    TypeExpr
	IsConst bool
}

func (t *PointerType) typeExprNode()      {}
func (t *PointerType) Pos() token.Position { return t.Token.Pos }
func (t *PointerType) String() string {
	if t.IsConst {
		return t.Base.String() + "* const"
	}
	return t.Base.String() + "*"
}

// ReferenceType is `base &`.
type ReferenceType struct {
	Token token.Token
	Base  TypeExpr
}

func (t *ReferenceType) typeExprNode()      {}
func (t *ReferenceType) Pos() token.Position { return t.Token.Pos }
func (t *ReferenceType) String() string      { return t.Base.String() + "&" }

// ArrayType is `base[size]`; Size is nil for an unsized array type.
type ArrayType struct {
	Token token.Token
	Base  TypeExpr
	Size  Expr // may be nil
}

func (t *ArrayType) typeExprNode()      {}
func (t *ArrayType) Pos() token.Position { return t.Token.Pos }
func (t *ArrayType) String() string {
	if t.Size != nil {
		return fmt.Sprintf("%s[%s]", t.Base.String(), t.Size.String())
	}
	return t.Base.String() + "[]"
}

// UserDefinedType names a class/struct/enum declared elsewhere.
type UserDefinedType struct {
	Token   token.Token
	Name    string
	IsConst bool
}

func (t *UserDefinedType) typeExprNode()      {}
func (t *UserDefinedType) Pos() token.Position { return t.Token.Pos }
func (t *UserDefinedType) String() string {
	if t.IsConst {
		return "const " + t.Name
	}
	return t.Name
}
