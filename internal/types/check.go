package types

import "cxxc/internal/token"

// Hierarchy abstracts the type registry's base-class graph so this
// package stays free of any dependency on internal/semantic.
type Hierarchy interface {
	// IsDerivedFrom reports whether source is target or inherits from
	// target, transitively, over the registered base-class lists.
	IsDerivedFrom(source, target string) bool
}

// Compatible implements the `source ≲ target` relation from §4.4.
func Compatible(source, target Type, h Hierarchy) bool {
	if Equal(source, target) {
		return true
	}
	if _, ok := source.(Unknown); ok {
		return true
	}
	if _, ok := target.(Unknown); ok {
		return true
	}
	if sp, ok := source.(Pointer); ok {
		if tp, ok := target.(Pointer); ok {
			return Compatible(sp.Elem, tp.Elem, h)
		}
	}
	if IsNumeric(source) && IsNumeric(target) {
		return true
	}
	if su, ok := source.(UserDefined); ok {
		if tu, ok := target.(UserDefined); ok {
			return h != nil && h.IsDerivedFrom(su.Name, tu.Name)
		}
	}
	if _, ok := source.(NullptrT); ok {
		if _, ok := target.(Pointer); ok {
			return true
		}
	}
	return false
}

// BinaryOpResult computes the result type of a binary operator per
// §4.4's operator tables. ok is false when the operand types are not
// valid for op.
func BinaryOpResult(op token.Kind, left, right Type, h Hierarchy) (Type, bool) {
	switch op {
	case token.EQ, token.NE, token.LT, token.GT, token.LE, token.GE, token.SPACESHIP:
		if Compatible(left, right, h) || Compatible(right, left, h) {
			return Bool, true
		}
		return nil, false

	case token.LOGICAL_AND, token.LOGICAL_OR:
		if isBooleanCompatible(left) && isBooleanCompatible(right) {
			return Bool, true
		}
		return nil, false

	case token.PLUS, token.MINUS, token.STAR, token.SLASH, token.PERCENT:
		if IsNumeric(left) && IsNumeric(right) {
			return Wider(left, right), true
		}
		return nil, false

	case token.AMP, token.PIPE, token.CARET, token.SHL, token.SHR:
		if IsIntegral(left) && IsIntegral(right) {
			return Wider(left, right), true
		}
		return nil, false
	}
	return nil, false
}

// isBooleanCompatible reports whether t may appear as a logical
// operand: any primitive or pointer type.
func isBooleanCompatible(t Type) bool {
	switch t.(type) {
	case Primitive, Pointer:
		return true
	}
	return false
}

// UnaryOpResult computes the result type of a prefix/postfix unary
// operator, per §4.4.
func UnaryOpResult(op token.Kind, operand Type) (Type, bool) {
	switch op {
	case token.PLUS, token.MINUS:
		if IsNumeric(operand) {
			return operand, true
		}
		return nil, false
	case token.LOGICAL_NOT:
		if isBooleanCompatible(operand) {
			return Bool, true
		}
		return nil, false
	case token.TILDE:
		if IsIntegral(operand) {
			return operand, true
		}
		return nil, false
	case token.PLUS_PLUS, token.MINUS_MINUS:
		switch operand.(type) {
		case Primitive, Pointer:
			return operand, true
		}
		return nil, false
	case token.STAR:
		if p, ok := operand.(Pointer); ok {
			return p.Elem, true
		}
		return nil, false
	case token.AMP:
		return Pointer{Elem: operand}, true
	}
	return nil, false
}

// CastKind mirrors ast.CastKind without importing the ast
// package, avoiding a dependency cycle (ast -> types would otherwise be
// needed for type annotations; instead the analyzer translates).
type CastKind int

const (
	StaticCast CastKind = iota
	DynamicCast
	ConstCast
	ReinterpretCast
)

// CastValid reports whether converting operand to target via kind is
// permitted.
func CastValid(kind CastKind, operand, target Type) bool {
	switch kind {
	case StaticCast:
		if IsNumeric(operand) && IsNumeric(target) {
			return true
		}
		_, p1 := operand.(Pointer)
		_, p2 := target.(Pointer)
		return p1 && p2
	case DynamicCast:
		op, ok1 := operand.(Pointer)
		tp, ok2 := target.(Pointer)
		if !ok1 || !ok2 {
			return false
		}
		_, c1 := op.Elem.(UserDefined)
		_, c2 := tp.Elem.(UserDefined)
		return c1 && c2
	case ConstCast:
		_, p1 := operand.(Pointer)
		_, p2 := target.(Pointer)
		return p1 && p2
	case ReinterpretCast:
		_, p1 := operand.(Pointer)
		_, p2 := target.(Pointer)
		return p1 && p2
	}
	return false
}

// IndexResult computes the result type of `base[index]`: base must be
// an Array or Pointer, index must be integral.
func IndexResult(base, index Type) (Type, bool) {
	if !IsIntegral(index) {
		return nil, false
	}
	switch b := base.(type) {
	case Array:
		return b.Elem, true
	case Pointer:
		return b.Elem, true
	}
	return nil, false
}
