package semantic

import (
	"fmt"

	"cxxc/internal/ast"
	"cxxc/internal/cerr"
	"cxxc/internal/token"
	"cxxc/internal/types"
)

// Analyzer walks a Program once, populating a SymbolTable and
// TypeRegistry and delegating type questions to internal/types. It
// never aborts on the first problem: every failure is recorded in
// Errors and the walk continues with a best-effort placeholder.
type Analyzer struct {
	filename string
	Table    *SymbolTable
	Registry *TypeRegistry
	Errors   []*cerr.Error

	inLoop     int
	inSwitch   int
	returnType types.Type
}

// New creates an Analyzer for a single translation unit named filename.
func New(filename string) *Analyzer {
	return &Analyzer{
		filename: filename,
		Table:    NewSymbolTable(),
		Registry: NewTypeRegistry(),
	}
}

// Analyze walks prog and returns whether the unit is error-free.
// Accumulated diagnostics are sorted into a stable, human-friendly
// order before returning (§4.11).
func (a *Analyzer) Analyze(prog *ast.Program) bool {
	for _, d := range prog.Declarations {
		a.visitDecl(d)
	}
	sortDiagnostics(a.Errors)
	return len(a.Errors) == 0
}

func (a *Analyzer) errorf(pos token.Position, format string, args ...any) {
	a.Errors = append(a.Errors, cerr.New(cerr.Semantic, pos, a.filename, fmt.Sprintf(format, args...)))
}

// --- declarations ------------------------------------------------------

func (a *Analyzer) visitDecl(d ast.Decl) {
	switch decl := d.(type) {
	case *ast.NamespaceDecl:
		a.Table.EnterNamespace(decl.Name)
		for _, inner := range decl.Declarations {
			a.visitDecl(inner)
		}
		if err := a.Table.ExitNamespace(); err != nil {
			a.errorf(decl.Pos(), "%s", err)
		}

	case *ast.UsingDecl:
		// No registry effect beyond what a driver's name-resolution layer
		// would want; aliasing is recorded for completeness.
		if decl.Aliased != nil {
			a.Registry.Types[decl.Name] = decl
		}

	case *ast.TemplateDecl:
		// Templates are parsed but never instantiated (§1 non-goal);
		// still walk the wrapped declaration so its names are visible.
		a.visitDecl(decl.Decl)

	case *ast.ClassDecl:
		a.visitClass(decl)

	case *ast.EnumDecl:
		a.Registry.RegisterEnum(decl)
		sym := &Symbol{Name: decl.Name, Kind: SymEnum, Type: types.UserDefined{Name: decl.Name}}
		if err := a.Table.Define(sym); err != nil {
			a.errorf(decl.Pos(), "%s", err)
		}
		for _, e := range decl.Enumerators {
			if e.Value != nil {
				a.visitExpr(e.Value)
			}
		}

	case *ast.TypedefDecl:
		a.Registry.RegisterTypedef(decl)
		sym := &Symbol{Name: decl.Name, Kind: SymTypedef, Type: a.resolveType(decl.Type)}
		if err := a.Table.Define(sym); err != nil {
			a.errorf(decl.Pos(), "%s", err)
		}

	case *ast.FunctionDecl:
		a.visitFunction(decl)

	case *ast.ConstructorDecl:
		a.visitConstructor(decl)

	case *ast.DestructorDecl:
		a.visitDestructor(decl)

	case *ast.VariableDecl:
		a.visitVariable(decl)

	case *ast.AccessSpecifierDecl:
		// Access specifiers do not affect analysis: no current access
		// level is tracked, inside a class body or at top level.

	default:
		a.errorf(d.Pos(), "unsupported declaration %T", d)
	}
}

func (a *Analyzer) visitVariable(decl *ast.VariableDecl) {
	declType := a.resolveType(decl.Type)
	if decl.Init != nil {
		initType := a.visitExpr(decl.Init)
		if !types.Compatible(initType, declType, a.Registry) {
			a.errorf(decl.Pos(), "cannot initialize %q of type %s with value of type %s", decl.Name, declType, initType)
		}
	}
	sym := &Symbol{Name: decl.Name, Kind: SymVariable, Type: declType}
	if err := a.Table.Define(sym); err != nil {
		a.errorf(decl.Pos(), "%s", err)
	}
	if cls := a.Table.CurrentClass(); cls != "" {
		a.Registry.AddMember(cls, decl.Name, sym)
	}
}

func (a *Analyzer) paramTypes(params []*ast.Parameter) []types.Type {
	out := make([]types.Type, len(params))
	for i, p := range params {
		out[i] = a.resolveType(p.Type)
	}
	return out
}

func (a *Analyzer) visitFunction(decl *ast.FunctionDecl) {
	retType := a.resolveType(decl.ReturnType)
	sig := FunctionSignature{
		ReturnType: retType,
		ParamTypes: a.paramTypes(decl.Params),
		IsStatic:   decl.IsStatic,
		IsVirtual:  decl.IsVirtual,
		IsConst:    decl.IsConst,
	}
	a.Table.DefineOverload(decl.Name, sig)

	sym := &Symbol{Name: decl.Name, Kind: SymFunction, Type: retType}
	if err := a.Table.Define(sym); err != nil {
		a.errorf(decl.Pos(), "%s", err)
	}
	if cls := a.Table.CurrentClass(); cls != "" {
		a.Registry.AddMember(cls, decl.Name, sym)
	}

	if decl.Body == nil {
		return // prototype: no body scope to enter
	}

	a.Table.EnterScope(decl.Name)
	for _, p := range decl.Params {
		psym := &Symbol{Name: p.Name, Kind: SymParameter, Type: a.resolveType(p.Type)}
		if err := a.Table.Define(psym); err != nil {
			a.errorf(p.Pos(), "%s", err)
		}
	}
	savedReturn := a.returnType
	a.returnType = retType
	for _, s := range decl.Body.Statements {
		a.visitStmt(s)
	}
	a.returnType = savedReturn
	if err := a.Table.ExitScope(); err != nil {
		a.errorf(decl.Pos(), "%s", err)
	}
}

func (a *Analyzer) visitClass(decl *ast.ClassDecl) {
	a.Registry.RegisterClass(decl)
	sym := &Symbol{Name: decl.Name, Kind: SymClass, Type: types.UserDefined{Name: decl.Name}}
	if err := a.Table.Define(sym); err != nil {
		a.errorf(decl.Pos(), "%s", err)
	}

	a.Table.EnterClass(decl.Name)
	for _, m := range decl.Members {
		a.visitDecl(m)
	}
	if err := a.Table.ExitClass(); err != nil {
		a.errorf(decl.Pos(), "%s", err)
	}
}

func (a *Analyzer) visitConstructor(decl *ast.ConstructorDecl) {
	sig := FunctionSignature{ReturnType: types.Void, ParamTypes: a.paramTypes(decl.Params)}
	a.Table.DefineOverload(decl.ClassName, sig)

	if decl.Body == nil {
		return
	}
	a.Table.EnterScope(decl.ClassName + "::ctor")
	for _, p := range decl.Params {
		psym := &Symbol{Name: p.Name, Kind: SymParameter, Type: a.resolveType(p.Type)}
		if err := a.Table.Define(psym); err != nil {
			a.errorf(p.Pos(), "%s", err)
		}
	}
	for _, init := range decl.Initializers {
		for _, arg := range init.Args {
			a.visitExpr(arg)
		}
	}
	savedReturn := a.returnType
	a.returnType = types.Void
	for _, s := range decl.Body.Statements {
		a.visitStmt(s)
	}
	a.returnType = savedReturn
	if err := a.Table.ExitScope(); err != nil {
		a.errorf(decl.Pos(), "%s", err)
	}
}

// visitDestructor walks a destructor body. Unlike the source this
// rewrite replaces (§9 noted defect), IsVirtual is taken at face value
// from the parser rather than forced false.
func (a *Analyzer) visitDestructor(decl *ast.DestructorDecl) {
	if decl.Body == nil {
		return
	}
	a.Table.EnterScope(decl.ClassName + "::dtor")
	savedReturn := a.returnType
	a.returnType = types.Void
	for _, s := range decl.Body.Statements {
		a.visitStmt(s)
	}
	a.returnType = savedReturn
	if err := a.Table.ExitScope(); err != nil {
		a.errorf(decl.Pos(), "%s", err)
	}
}
