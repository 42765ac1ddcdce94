package ir

import (
	"cxxc/internal/ast"
	"cxxc/internal/token"
)

var binaryOpcode = map[token.Kind]Opcode{
	token.PLUS: ADD, token.MINUS: SUB, token.STAR: MUL, token.SLASH: DIV, token.PERCENT: MOD,
	token.AMP: AND, token.PIPE: OR, token.CARET: XOR, token.SHL: SHL, token.SHR: SHR,
	token.LOGICAL_AND: LAND, token.LOGICAL_OR: LOR,
	token.EQ: EQ, token.NE: NE, token.LT: LT, token.LE: LE, token.GT: GT, token.GE: GE,
}

var compoundOpcode = map[token.Kind]Opcode{
	token.PLUS_ASSIGN: ADD, token.MINUS_ASSIGN: SUB, token.STAR_ASSIGN: MUL,
	token.SLASH_ASSIGN: DIV, token.PERCENT_ASSIGN: MOD, token.AMP_ASSIGN: AND,
	token.PIPE_ASSIGN: OR, token.CARET_ASSIGN: XOR, token.SHL_ASSIGN: SHL, token.SHR_ASSIGN: SHR,
}

// Generator walks an AST Program and emits its IR via a Builder,
// tracking the break/continue label stacks a structured-control-flow
// source language needs (§4.5).
type Generator struct {
	b             *Builder
	breakStack    []string
	continueStack []string
}

// NewGenerator creates a Generator with a fresh Builder.
func NewGenerator() *Generator { return &Generator{b: NewBuilder()} }

// Generate walks prog and returns the resulting unoptimized Program.
func Generate(prog *ast.Program) *Program {
	g := NewGenerator()
	for _, d := range prog.Declarations {
		g.genTopDecl(d)
	}
	return g.b.Program()
}

func (g *Generator) genTopDecl(d ast.Decl) {
	switch decl := d.(type) {
	case *ast.FunctionDecl:
		g.genFunction(decl)
	case *ast.NamespaceDecl:
		for _, inner := range decl.Declarations {
			g.genTopDecl(inner)
		}
	case *ast.TemplateDecl:
		g.genTopDecl(decl.Decl)
	case *ast.ClassDecl:
		for _, m := range decl.Members {
			if fn, ok := m.(*ast.FunctionDecl); ok {
				g.genFunction(fn)
			}
		}
	case *ast.VariableDecl:
		g.b.program.GlobalVars = append(g.b.program.GlobalVars, Variable{Name: decl.Name})
	}
}

func (g *Generator) genFunction(decl *ast.FunctionDecl) {
	if decl.Body == nil {
		return
	}
	paramNames := make([]string, len(decl.Params))
	for i, p := range decl.Params {
		paramNames[i] = p.Name
	}
	g.b.StartFunction(decl.Name, decl.ReturnType.String(), paramNames)
	for _, s := range decl.Body.Statements {
		g.genStmt(s)
	}
	g.b.FinishFunction()
}

func (g *Generator) genStmt(s ast.Stmt) {
	switch st := s.(type) {
	case *ast.CompoundStmt:
		for _, inner := range st.Statements {
			g.genStmt(inner)
		}
	case *ast.ExpressionStmt:
		if st.Expr != nil {
			g.genExpr(st.Expr)
		}
	case *ast.VariableDecl:
		g.genLocalVar(st)
	case *ast.ReturnStmt:
		if st.Value != nil {
			v := g.genExpr(st.Value)
			g.b.Emit(Instruction{Op: RETURN, Arg1: v})
		} else {
			g.b.Emit(Instruction{Op: RETURN})
		}
	case *ast.IfStmt:
		g.genIf(st)
	case *ast.WhileStmt:
		g.genWhile(st)
	case *ast.DoWhileStmt:
		g.genDoWhile(st)
	case *ast.ForStmt:
		g.genFor(st)
	case *ast.SwitchStmt:
		g.genSwitch(st)
	case *ast.BreakStmt:
		if len(g.breakStack) > 0 {
			g.b.Emit(Instruction{Op: GOTO, Label: g.breakStack[len(g.breakStack)-1]})
		}
	case *ast.ContinueStmt:
		if len(g.continueStack) > 0 {
			g.b.Emit(Instruction{Op: GOTO, Label: g.continueStack[len(g.continueStack)-1]})
		}
	case *ast.TryStmt:
		g.genStmt(st.Body)
		for _, h := range st.Handlers {
			g.genStmt(h.Body)
		}
	case *ast.ThrowStmt:
		if st.Value != nil {
			g.genExpr(st.Value)
		}
	case ast.Decl:
		g.genTopDecl(st)
	}
}

func (g *Generator) genLocalVar(decl *ast.VariableDecl) {
	v := g.b.Var(decl.Name)
	if decl.Init != nil {
		rhs := g.genExpr(decl.Init)
		g.b.Emit(Instruction{Op: ASSIGN, Result: v, Arg1: rhs})
	}
}

func (g *Generator) genIf(st *ast.IfStmt) {
	cond := g.genExpr(st.Cond)
	lelse := g.b.NewLabel("else")
	lend := g.b.NewLabel("endif")
	target := lend
	if st.Else != nil {
		target = lelse
	}
	g.b.Emit(Instruction{Op: IF_FALSE, Arg1: cond, Label: target.Name})
	g.genStmt(st.Then)
	if st.Else != nil {
		g.b.Emit(Instruction{Op: GOTO, Label: lend.Name})
		g.b.Emit(Instruction{Op: LABEL, Label: lelse.Name})
		g.genStmt(st.Else)
	}
	g.b.Emit(Instruction{Op: LABEL, Label: lend.Name})
}

func (g *Generator) genWhile(st *ast.WhileStmt) {
	lstart := g.b.NewLabel("while_start")
	lend := g.b.NewLabel("while_end")
	g.b.Emit(Instruction{Op: LABEL, Label: lstart.Name})
	cond := g.genExpr(st.Cond)
	g.b.Emit(Instruction{Op: IF_FALSE, Arg1: cond, Label: lend.Name})
	g.pushLoop(lend.Name, lstart.Name)
	g.genStmt(st.Body)
	g.popLoop()
	g.b.Emit(Instruction{Op: GOTO, Label: lstart.Name})
	g.b.Emit(Instruction{Op: LABEL, Label: lend.Name})
}

func (g *Generator) genDoWhile(st *ast.DoWhileStmt) {
	lstart := g.b.NewLabel("do_start")
	ltest := g.b.NewLabel("do_test")
	lend := g.b.NewLabel("do_end")
	g.b.Emit(Instruction{Op: LABEL, Label: lstart.Name})
	g.pushLoop(lend.Name, ltest.Name)
	g.genStmt(st.Body)
	g.popLoop()
	g.b.Emit(Instruction{Op: LABEL, Label: ltest.Name})
	cond := g.genExpr(st.Cond)
	g.b.Emit(Instruction{Op: IF_TRUE, Arg1: cond, Label: lstart.Name})
	g.b.Emit(Instruction{Op: LABEL, Label: lend.Name})
}

func (g *Generator) genFor(st *ast.ForStmt) {
	if st.Init != nil {
		g.genStmt(st.Init)
	}
	lstart := g.b.NewLabel("for_start")
	lincr := g.b.NewLabel("for_incr")
	lend := g.b.NewLabel("for_end")
	g.b.Emit(Instruction{Op: LABEL, Label: lstart.Name})
	if st.Cond != nil {
		cond := g.genExpr(st.Cond)
		g.b.Emit(Instruction{Op: IF_FALSE, Arg1: cond, Label: lend.Name})
	}
	g.pushLoop(lend.Name, lincr.Name)
	g.genStmt(st.Body)
	g.popLoop()
	g.b.Emit(Instruction{Op: LABEL, Label: lincr.Name})
	if st.Incr != nil {
		g.genExpr(st.Incr)
	}
	g.b.Emit(Instruction{Op: GOTO, Label: lstart.Name})
	g.b.Emit(Instruction{Op: LABEL, Label: lend.Name})
}

func (g *Generator) genSwitch(st *ast.SwitchStmt) {
	tag := g.genExpr(st.Tag)
	v := g.newAssignedTemp(tag)
	lend := g.b.NewLabel("switch_end")

	var caseLabels []Label
	var defaultLabel *Label
	for range st.Cases {
		caseLabels = append(caseLabels, g.b.NewLabel("case"))
	}
	ldefault := g.b.NewLabel("default")

	for i, c := range st.Cases {
		if c.Value == nil {
			defaultLabel = &ldefault
			continue
		}
		cv := g.genExpr(c.Value)
		t := g.b.NewTemp()
		g.b.Emit(Instruction{Op: EQ, Result: t, Arg1: v, Arg2: cv})
		g.b.Emit(Instruction{Op: IF_TRUE, Arg1: t, Label: caseLabels[i].Name})
	}
	if defaultLabel != nil {
		g.b.Emit(Instruction{Op: GOTO, Label: defaultLabel.Name})
	} else {
		g.b.Emit(Instruction{Op: GOTO, Label: lend.Name})
	}

	g.breakStack = append(g.breakStack, lend.Name)
	for i, c := range st.Cases {
		if c.Value == nil {
			g.b.Emit(Instruction{Op: LABEL, Label: ldefault.Name})
		} else {
			g.b.Emit(Instruction{Op: LABEL, Label: caseLabels[i].Name})
		}
		for _, inner := range c.Statements {
			g.genStmt(inner)
		}
	}
	g.breakStack = g.breakStack[:len(g.breakStack)-1]
	g.b.Emit(Instruction{Op: LABEL, Label: lend.Name})
}

// newAssignedTemp materializes v into a fresh temporary so the switch
// discriminant is evaluated exactly once, per §4.5.
func (g *Generator) newAssignedTemp(v Value) Temp {
	t := g.b.NewTemp()
	g.b.Emit(Instruction{Op: ASSIGN, Result: t, Arg1: v})
	return t
}

func (g *Generator) pushLoop(breakLabel, continueLabel string) {
	g.breakStack = append(g.breakStack, breakLabel)
	g.continueStack = append(g.continueStack, continueLabel)
}

func (g *Generator) popLoop() {
	g.breakStack = g.breakStack[:len(g.breakStack)-1]
	g.continueStack = g.continueStack[:len(g.continueStack)-1]
}

// genExpr emits the instructions computing expr and returns the Value
// holding its result.
func (g *Generator) genExpr(expr ast.Expr) Value {
	switch e := expr.(type) {
	case *ast.IntegerLit:
		return Constant{Value: e.Value}
	case *ast.FloatLit:
		return Constant{Value: e.Value}
	case *ast.CharLit:
		return Constant{Value: e.Value}
	case *ast.BoolLit:
		return Constant{Value: e.Value}
	case *ast.NullptrLit:
		return Constant{Value: nil}
	case *ast.StringLit:
		return g.b.InternString(e.Value)
	case *ast.Identifier:
		return g.b.Var(e.Name)
	case *ast.This:
		return g.b.Var("this")

	case *ast.BinaryExpr:
		left := g.genExpr(e.Left)
		right := g.genExpr(e.Right)
		op, ok := binaryOpcode[e.Op]
		if !ok {
			op = NOP
		}
		t := g.b.NewTemp()
		g.b.Emit(Instruction{Op: op, Result: t, Arg1: left, Arg2: right})
		return t

	case *ast.UnaryExpr:
		return g.genUnary(e)

	case *ast.AssignmentExpr:
		return g.genAssignment(e)

	case *ast.CallExpr:
		return g.genCall(e)

	case *ast.MemberAccessExpr:
		// Field layout is outside this mid-end's scope; the object is
		// still evaluated for its side effects.
		return g.genExpr(e.Object)

	case *ast.ArrayAccessExpr:
		arr := g.genExpr(e.Array)
		idx := g.genExpr(e.Index)
		t := g.b.NewTemp()
		g.b.Emit(Instruction{Op: INDEX, Result: t, Arg1: arr, Arg2: idx})
		return t

	case *ast.TernaryExpr:
		return g.genTernary(e)

	case *ast.CastExpr:
		operand := g.genExpr(e.Operand)
		t := g.b.NewTemp()
		g.b.Emit(Instruction{Op: CAST, Result: t, Arg1: operand, Label: e.Type.String()})
		return t

	case *ast.NewExpr:
		for _, a := range e.Args {
			g.genExpr(a)
		}
		size := Value(Constant{Value: int64(1)})
		if e.IsArray {
			size = g.genExpr(e.Size)
		}
		t := g.b.NewTemp()
		g.b.Emit(Instruction{Op: ALLOC, Result: t, Arg1: size})
		return t

	case *ast.DeleteExpr:
		ptr := g.genExpr(e.Operand)
		g.b.Emit(Instruction{Op: FREE, Arg1: ptr})
		return Constant{Value: nil}

	case *ast.SizeofExpr:
		return Constant{Value: int64(0)}

	case *ast.LambdaExpr:
		return Constant{Value: nil}
	}
	return Constant{Value: nil}
}

func (g *Generator) genUnary(e *ast.UnaryExpr) Value {
	switch e.Op {
	case token.PLUS_PLUS, token.MINUS_MINUS:
		return g.genIncrDecr(e)
	case token.PLUS:
		return g.genExpr(e.Operand)
	case token.MINUS:
		v := g.genExpr(e.Operand)
		t := g.b.NewTemp()
		g.b.Emit(Instruction{Op: NEG, Result: t, Arg1: v})
		return t
	case token.LOGICAL_NOT:
		v := g.genExpr(e.Operand)
		t := g.b.NewTemp()
		g.b.Emit(Instruction{Op: LNOT, Result: t, Arg1: v})
		return t
	case token.TILDE:
		v := g.genExpr(e.Operand)
		t := g.b.NewTemp()
		g.b.Emit(Instruction{Op: NOT, Result: t, Arg1: v})
		return t
	case token.STAR:
		v := g.genExpr(e.Operand)
		t := g.b.NewTemp()
		g.b.Emit(Instruction{Op: LOAD, Result: t, Arg1: v})
		return t
	case token.AMP:
		v := g.genExpr(e.Operand)
		t := g.b.NewTemp()
		g.b.Emit(Instruction{Op: LOAD_ADDR, Result: t, Arg1: v})
		return t
	}
	return g.genExpr(e.Operand)
}

func (g *Generator) genIncrDecr(e *ast.UnaryExpr) Value {
	x := g.genExpr(e.Operand)
	op := ADD
	if e.Op == token.MINUS_MINUS {
		op = SUB
	}
	t := g.b.NewTemp()
	g.b.Emit(Instruction{Op: op, Result: t, Arg1: x, Arg2: Constant{Value: int64(1)}})
	g.b.Emit(Instruction{Op: ASSIGN, Result: x, Arg1: t})
	if e.IsPostfix {
		return x
	}
	return t
}

func (g *Generator) genAssignment(e *ast.AssignmentExpr) Value {
	rhs := g.genExpr(e.Value)

	if idx, ok := e.Target.(*ast.ArrayAccessExpr); ok {
		arr := g.genExpr(idx.Array)
		index := g.genExpr(idx.Index)
		value := rhs
		if e.Op != token.ASSIGN {
			cur := g.b.NewTemp()
			g.b.Emit(Instruction{Op: INDEX, Result: cur, Arg1: arr, Arg2: index})
			value = g.combine(e.Op, cur, rhs)
		}
		g.b.Emit(Instruction{Op: STORE_INDEX, Arg1: arr, Arg2: index, Arg3: value})
		return value
	}

	if deref, ok := e.Target.(*ast.UnaryExpr); ok && deref.Op == token.STAR {
		ptr := g.genExpr(deref.Operand)
		value := rhs
		if e.Op != token.ASSIGN {
			cur := g.b.NewTemp()
			g.b.Emit(Instruction{Op: LOAD, Result: cur, Arg1: ptr})
			value = g.combine(e.Op, cur, rhs)
		}
		g.b.Emit(Instruction{Op: STORE, Arg1: ptr, Arg2: value})
		return value
	}

	target := g.genExpr(e.Target)
	value := rhs
	if e.Op != token.ASSIGN {
		value = g.combine(e.Op, target, rhs)
	}
	g.b.Emit(Instruction{Op: ASSIGN, Result: target, Arg1: value})
	return target
}

func (g *Generator) combine(op token.Kind, left, right Value) Value {
	opcode, ok := compoundOpcode[op]
	if !ok {
		opcode = NOP
	}
	t := g.b.NewTemp()
	g.b.Emit(Instruction{Op: opcode, Result: t, Arg1: left, Arg2: right})
	return t
}

func (g *Generator) genCall(e *ast.CallExpr) Value {
	for _, arg := range e.Args {
		v := g.genExpr(arg)
		g.b.Emit(Instruction{Op: PARAM, Arg1: v})
	}
	name := calleeLabel(e.Callee)
	t := g.b.NewTemp()
	g.b.Emit(Instruction{
		Op: CALL, Result: t,
		Arg1: Label{Name: name},
		Arg2: Constant{Value: int64(len(e.Args))},
	})
	return t
}

func calleeLabel(expr ast.Expr) string {
	if id, ok := expr.(*ast.Identifier); ok {
		return id.Name
	}
	return "<indirect>"
}

func (g *Generator) genTernary(e *ast.TernaryExpr) Value {
	cond := g.genExpr(e.Cond)
	t := g.b.NewTemp()
	lfalse := g.b.NewLabel("ternary_false")
	lend := g.b.NewLabel("ternary_end")
	g.b.Emit(Instruction{Op: IF_FALSE, Arg1: cond, Label: lfalse.Name})
	thenVal := g.genExpr(e.Then)
	g.b.Emit(Instruction{Op: ASSIGN, Result: t, Arg1: thenVal})
	g.b.Emit(Instruction{Op: GOTO, Label: lend.Name})
	g.b.Emit(Instruction{Op: LABEL, Label: lfalse.Name})
	elseVal := g.genExpr(e.Else)
	g.b.Emit(Instruction{Op: ASSIGN, Result: t, Arg1: elseVal})
	g.b.Emit(Instruction{Op: LABEL, Label: lend.Name})
	return t
}
