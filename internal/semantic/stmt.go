package semantic

import (
	"cxxc/internal/ast"
	"cxxc/internal/types"
)

func (a *Analyzer) visitStmt(s ast.Stmt) {
	switch st := s.(type) {
	case *ast.CompoundStmt:
		a.Table.EnterScope("<block>")
		for _, inner := range st.Statements {
			a.visitStmt(inner)
		}
		if err := a.Table.ExitScope(); err != nil {
			a.errorf(st.Pos(), "%s", err)
		}

	case *ast.ExpressionStmt:
		if st.Expr != nil {
			a.visitExpr(st.Expr)
		}

	case *ast.ReturnStmt:
		a.visitReturn(st)

	case *ast.IfStmt:
		a.visitExpr(st.Cond)
		a.visitStmt(st.Then)
		if st.Else != nil {
			a.visitStmt(st.Else)
		}

	case *ast.WhileStmt:
		a.visitExpr(st.Cond)
		a.inLoop++
		a.visitStmt(st.Body)
		a.inLoop--

	case *ast.DoWhileStmt:
		a.inLoop++
		a.visitStmt(st.Body)
		a.inLoop--
		a.visitExpr(st.Cond)

	case *ast.ForStmt:
		a.Table.EnterScope("<for>")
		if st.Init != nil {
			a.visitStmt(st.Init)
		}
		if st.Cond != nil {
			a.visitExpr(st.Cond)
		}
		if st.Incr != nil {
			a.visitExpr(st.Incr)
		}
		a.inLoop++
		a.visitStmt(st.Body)
		a.inLoop--
		if err := a.Table.ExitScope(); err != nil {
			a.errorf(st.Pos(), "%s", err)
		}

	case *ast.BreakStmt:
		if a.inLoop == 0 && a.inSwitch == 0 {
			a.errorf(st.Pos(), "'break' used outside a loop or switch")
		}

	case *ast.ContinueStmt:
		if a.inLoop == 0 {
			a.errorf(st.Pos(), "'continue' used outside a loop")
		}

	case *ast.SwitchStmt:
		a.visitExpr(st.Tag)
		a.inSwitch++
		for _, c := range st.Cases {
			a.visitStmt(c)
		}
		a.inSwitch--

	case *ast.CaseStmt:
		if st.Value != nil {
			a.visitExpr(st.Value)
		}
		a.Table.EnterScope("<case>")
		for _, inner := range st.Statements {
			a.visitStmt(inner)
		}
		if err := a.Table.ExitScope(); err != nil {
			a.errorf(st.Pos(), "%s", err)
		}

	case *ast.TryStmt:
		a.visitStmt(st.Body)
		for _, h := range st.Handlers {
			a.Table.EnterScope("<catch>")
			if h.Name != "" {
				sym := &Symbol{Name: h.Name, Kind: SymVariable, Type: a.resolveCatchType(h.Type)}
				if err := a.Table.Define(sym); err != nil {
					a.errorf(h.Pos(), "%s", err)
				}
			}
			for _, inner := range h.Body.Statements {
				a.visitStmt(inner)
			}
			if err := a.Table.ExitScope(); err != nil {
				a.errorf(h.Pos(), "%s", err)
			}
		}

	case *ast.ThrowStmt:
		if st.Value != nil {
			a.visitExpr(st.Value)
		}

	case *ast.VariableDecl:
		a.visitVariable(st)

	case ast.Decl:
		a.visitDecl(st)

	default:
		a.errorf(s.Pos(), "unsupported statement %T", s)
	}
}

func (a *Analyzer) resolveCatchType(te ast.TypeExpr) types.Type {
	if te == nil {
		return types.Unknown{}
	}
	return a.resolveType(te)
}

func (a *Analyzer) visitReturn(st *ast.ReturnStmt) {
	isVoid := types.Equal(a.returnType, types.Void) || a.returnType == nil
	if st.Value == nil {
		if !isVoid {
			a.errorf(st.Pos(), "non-void function must return a value")
		}
		return
	}
	if isVoid {
		a.errorf(st.Pos(), "void function must not return a value")
		return
	}
	valType := a.visitExpr(st.Value)
	if !types.Compatible(valType, a.returnType, a.Registry) {
		a.errorf(st.Pos(), "cannot return value of type %s from function returning %s", valType, a.returnType)
	}
}
