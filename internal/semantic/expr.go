package semantic

import (
	"cxxc/internal/ast"
	"cxxc/internal/token"
	"cxxc/internal/types"
)

// compoundBase maps a compound-assignment operator to the binary
// operator it expands to, e.g. `+=` -> `+`.
var compoundBase = map[token.Kind]token.Kind{
	token.PLUS_ASSIGN:    token.PLUS,
	token.MINUS_ASSIGN:   token.MINUS,
	token.STAR_ASSIGN:    token.STAR,
	token.SLASH_ASSIGN:   token.SLASH,
	token.PERCENT_ASSIGN: token.PERCENT,
	token.AMP_ASSIGN:     token.AMP,
	token.PIPE_ASSIGN:    token.PIPE,
	token.CARET_ASSIGN:   token.CARET,
	token.SHL_ASSIGN:     token.SHL,
	token.SHR_ASSIGN:     token.SHR,
}

// visitExpr returns expr's static type, recording a diagnostic and
// returning types.Int as a best-effort placeholder (per §7's
// error-accumulation policy) whenever it cannot be determined.
func (a *Analyzer) visitExpr(expr ast.Expr) types.Type {
	switch e := expr.(type) {
	case *ast.IntegerLit:
		return types.Int
	case *ast.FloatLit:
		return types.Double
	case *ast.CharLit:
		return types.Char
	case *ast.StringLit:
		return types.Pointer{Elem: types.Primitive{Name: "char", Unsigned: false}}
	case *ast.BoolLit:
		return types.Bool
	case *ast.NullptrLit:
		return types.NullptrT{}
	case *ast.This:
		cls := a.Table.CurrentClass()
		if cls == "" {
			a.errorf(e.Pos(), "'this' used outside a member function")
			return types.Int
		}
		return types.Pointer{Elem: types.UserDefined{Name: cls}}

	case *ast.Identifier:
		sym, ok := a.Table.Lookup(e.Name)
		if !ok {
			a.errorf(e.Pos(), "undeclared identifier %q", e.Name)
			return types.Int
		}
		return sym.Type

	case *ast.BinaryExpr:
		left := a.visitExpr(e.Left)
		right := a.visitExpr(e.Right)
		result, ok := types.BinaryOpResult(e.Op, left, right, a.Registry)
		if !ok {
			a.errorf(e.Pos(), "invalid operands of type %s and %s to operator %s", left, right, e.Op)
			return types.Int
		}
		return result

	case *ast.UnaryExpr:
		operand := a.visitExpr(e.Operand)
		result, ok := types.UnaryOpResult(e.Op, operand)
		if !ok {
			a.errorf(e.Pos(), "invalid operand of type %s to operator %s", operand, e.Op)
			return types.Int
		}
		return result

	case *ast.AssignmentExpr:
		return a.visitAssignment(e)

	case *ast.CallExpr:
		return a.visitCall(e)

	case *ast.MemberAccessExpr:
		return a.visitMemberAccess(e)

	case *ast.ArrayAccessExpr:
		base := a.visitExpr(e.Array)
		index := a.visitExpr(e.Index)
		result, ok := types.IndexResult(base, index)
		if !ok {
			a.errorf(e.Pos(), "invalid array subscript of type %s with index of type %s", base, index)
			return types.Int
		}
		return result

	case *ast.TernaryExpr:
		a.visitExpr(e.Cond)
		thenType := a.visitExpr(e.Then)
		elseType := a.visitExpr(e.Else)
		if types.Compatible(elseType, thenType, a.Registry) {
			return thenType
		}
		if types.Compatible(thenType, elseType, a.Registry) {
			return elseType
		}
		a.errorf(e.Pos(), "incompatible ternary branch types %s and %s", thenType, elseType)
		return types.Int

	case *ast.CastExpr:
		operand := a.visitExpr(e.Operand)
		target := a.resolveType(e.Type)
		if !types.CastValid(astCastKind(e.Kind), operand, target) {
			a.errorf(e.Pos(), "invalid %s from %s to %s", e.Kind, operand, target)
		}
		return target

	case *ast.NewExpr:
		for _, arg := range e.Args {
			a.visitExpr(arg)
		}
		elem := a.resolveType(e.Type)
		if e.IsArray {
			a.visitExpr(e.Size)
			return types.Pointer{Elem: elem}
		}
		return types.Pointer{Elem: elem}

	case *ast.DeleteExpr:
		a.visitExpr(e.Operand)
		return types.Void

	case *ast.SizeofExpr:
		if e.Operand != nil {
			a.visitExpr(e.Operand)
		}
		return types.Primitive{Name: "long", Unsigned: true}

	case *ast.LambdaExpr:
		savedReturn := a.returnType
		a.Table.EnterScope("<lambda>")
		for _, p := range e.Params {
			psym := &Symbol{Name: p.Name, Kind: SymParameter, Type: a.resolveType(p.Type)}
			if err := a.Table.Define(psym); err != nil {
				a.errorf(p.Pos(), "%s", err)
			}
		}
		if e.ReturnType != nil {
			a.returnType = a.resolveType(e.ReturnType)
		} else {
			a.returnType = types.Unknown{}
		}
		for _, s := range e.Body.Statements {
			a.visitStmt(s)
		}
		a.returnType = savedReturn
		if err := a.Table.ExitScope(); err != nil {
			a.errorf(e.Pos(), "%s", err)
		}
		return types.Unknown{}
	}
	a.errorf(expr.Pos(), "unsupported expression %T", expr)
	return types.Int
}

func (a *Analyzer) visitAssignment(e *ast.AssignmentExpr) types.Type {
	targetType := a.visitExpr(e.Target)
	valueType := a.visitExpr(e.Value)

	if e.Op == token.ASSIGN {
		if !types.Compatible(valueType, targetType, a.Registry) {
			a.errorf(e.Pos(), "cannot assign value of type %s to target of type %s", valueType, targetType)
		}
		return targetType
	}

	base, ok := compoundBase[e.Op]
	if !ok {
		a.errorf(e.Pos(), "unsupported assignment operator %s", e.Op)
		return targetType
	}
	result, ok := types.BinaryOpResult(base, targetType, valueType, a.Registry)
	if !ok {
		a.errorf(e.Pos(), "invalid operands of type %s and %s to operator %s", targetType, valueType, e.Op)
		return targetType
	}
	if !types.Compatible(result, targetType, a.Registry) {
		a.errorf(e.Pos(), "cannot assign value of type %s to target of type %s", result, targetType)
	}
	return targetType
}

func (a *Analyzer) visitCall(e *ast.CallExpr) types.Type {
	for _, arg := range e.Args {
		a.visitExpr(arg)
	}
	name, ok := calleeName(e.Callee)
	if !ok {
		a.visitExpr(e.Callee)
		return types.Int
	}
	if sigs, ok := a.Table.Overloads[normalizeIdent(a.Table.QualifiedName(name))]; ok && len(sigs) > 0 {
		return sigs[0].ReturnType
	}
	if sigs, ok := a.Table.Overloads[normalizeIdent(name)]; ok && len(sigs) > 0 {
		return sigs[0].ReturnType
	}
	if _, ok := a.Table.Lookup(name); !ok {
		a.errorf(e.Pos(), "call to undeclared function %q", name)
	}
	return types.Int
}

func calleeName(expr ast.Expr) (string, bool) {
	if id, ok := expr.(*ast.Identifier); ok {
		return id.Name, true
	}
	return "", false
}

func (a *Analyzer) visitMemberAccess(e *ast.MemberAccessExpr) types.Type {
	objType := a.visitExpr(e.Object)
	target := objType
	if e.Arrow {
		ptr, ok := objType.(types.Pointer)
		if !ok {
			a.errorf(e.Pos(), "'->' requires a pointer receiver, got %s", objType)
			return types.Int
		}
		target = ptr.Elem
	}
	ud, ok := target.(types.UserDefined)
	if !ok {
		a.errorf(e.Pos(), "member access on non-class type %s", target)
		return types.Int
	}
	members, ok := a.Registry.ClassMembers[ud.Name]
	if !ok {
		a.errorf(e.Pos(), "unknown class %q", ud.Name)
		return types.Int
	}
	sym, ok := members[e.Member]
	if !ok {
		a.errorf(e.Pos(), "no member %q in class %q", e.Member, ud.Name)
		return types.Int
	}
	return sym.Type
}

func astCastKind(k ast.CastKind) types.CastKind {
	switch k {
	case ast.DynamicCast:
		return types.DynamicCast
	case ast.ConstCast:
		return types.ConstCast
	case ast.ReinterpretCast:
		return types.ReinterpretCast
	default:
		return types.StaticCast
	}
}
