package ast

import "cxxc/internal/token"

// VariableDecl declares one variable, optionally with an initializer.
// Used both at namespace/class scope and as a local declaration
// statement inside a compound statement.
type VariableDecl struct {
	Token       token.Token
	Name        string
	Type        TypeExpr
	Init        Expr // nil if uninitialized
	IsStatic    bool
	IsConst     bool
	IsExtern    bool
	ClassMember bool // true for `static` class member variables
}

func (d *VariableDecl) declNode()          {}
func (d *VariableDecl) stmtNode()          {}
func (d *VariableDecl) Pos() token.Position { return d.Token.Pos }
func (d *VariableDecl) String() string {
	s := d.Type.String() + " " + d.Name
	if d.Init != nil {
		s += " = " + d.Init.String()
	}
	return s + ";"
}

// Parameter is one formal parameter of a Function.
type Parameter struct {
	Token   token.Token
	Name    string
	Type    TypeExpr
	Default Expr // nil if no default argument
}

func (p *Parameter) declNode()          {}
func (p *Parameter) stmtNode()          {}
func (p *Parameter) Pos() token.Position { return p.Token.Pos }
func (p *Parameter) String() string      { return p.Type.String() + " " + p.Name }

// FunctionDecl is a free function or class method declaration or
// definition. Body is nil for a prototype (`;`-terminated).
type FunctionDecl struct {
	Token      token.Token
	Name       string
	ReturnType TypeExpr
	Params     []*Parameter
	Body       *CompoundStmt // nil for a prototype
	IsStatic   bool
	IsVirtual  bool
	IsConst    bool // trailing `const` qualifier on a method
	IsInline   bool
}

func (d *FunctionDecl) declNode()          {}
func (d *FunctionDecl) stmtNode()          {}
func (d *FunctionDecl) Pos() token.Position { return d.Token.Pos }
func (d *FunctionDecl) String() string {
	s := d.ReturnType.String() + " " + d.Name + "("
	for i, p := range d.Params {
		if i > 0 {
			s += ", "
		}
		s += p.String()
	}
	s += ")"
	if d.Body != nil {
		return s + " " + d.Body.String()
	}
	return s + ";"
}

// Access is a C++ access-control level.
type Access int

const (
	AccessPrivate Access = iota
	AccessProtected
	AccessPublic
)

func (a Access) String() string {
	switch a {
	case AccessProtected:
		return "protected"
	case AccessPublic:
		return "public"
	default:
		return "private"
	}
}

// AccessSpecifierDecl is a bare `public:` / `protected:` / `private:`
// label inside a class body. It updates the analyzer's rolling "current
// access" but defines nothing itself.
type AccessSpecifierDecl struct {
	Token  token.Token
	Access Access
}

func (d *AccessSpecifierDecl) declNode()          {}
func (d *AccessSpecifierDecl) stmtNode()          {}
func (d *AccessSpecifierDecl) Pos() token.Position { return d.Token.Pos }
func (d *AccessSpecifierDecl) String() string      { return d.Access.String() + ":" }

// ClassDecl declares a class or struct, its base classes, and its
// members in source order (VariableDecl, FunctionDecl,
// AccessSpecifierDecl, ConstructorDecl, DestructorDecl, ... interleaved
// exactly as written).
type ClassDecl struct {
	Token    token.Token
	Name     string
	IsStruct bool // struct defaults members to public; class defaults to private
	Bases    []string
	Members  []Decl
}

func (d *ClassDecl) declNode()          {}
func (d *ClassDecl) stmtNode()          {}
func (d *ClassDecl) Pos() token.Position { return d.Token.Pos }
func (d *ClassDecl) String() string {
	kw := "class"
	if d.IsStruct {
		kw = "struct"
	}
	return kw + " " + d.Name + " { ... };"
}

// MemberInitializer is one entry in a constructor's initializer list:
// `Name(Args...)`.
type MemberInitializer struct {
	Token token.Token
	Name  string
	Args  []Expr
}

func (m *MemberInitializer) Pos() token.Position { return m.Token.Pos }
func (m *MemberInitializer) String() string       { return m.Name + "(...)" }

// ConstructorDecl declares/defines a class constructor, recognized by
// the parser when a class-scope identifier matches the enclosing class
// name.
type ConstructorDecl struct {
	Token        token.Token
	ClassName    string
	Params       []*Parameter
	Initializers []*MemberInitializer
	Body         *CompoundStmt // nil for a prototype
	IsExplicit   bool
}

func (d *ConstructorDecl) declNode()          {}
func (d *ConstructorDecl) stmtNode()          {}
func (d *ConstructorDecl) Pos() token.Position { return d.Token.Pos }
func (d *ConstructorDecl) String() string      { return d.ClassName + "(...)" }

// DestructorDecl declares/defines a class destructor, recognized by a
// leading `~` followed by the enclosing class name.
type DestructorDecl struct {
	Token     token.Token
	ClassName string
	Body      *CompoundStmt
	IsVirtual bool
}

func (d *DestructorDecl) declNode()          {}
func (d *DestructorDecl) stmtNode()          {}
func (d *DestructorDecl) Pos() token.Position { return d.Token.Pos }
func (d *DestructorDecl) String() string      { return "~" + d.ClassName + "()" }

// NamespaceDecl groups a list of declarations under a qualifying name.
type NamespaceDecl struct {
	Token        token.Token
	Name         string
	Declarations []Decl
}

func (d *NamespaceDecl) declNode()          {}
func (d *NamespaceDecl) stmtNode()          {}
func (d *NamespaceDecl) Pos() token.Position { return d.Token.Pos }
func (d *NamespaceDecl) String() string      { return "namespace " + d.Name + " { ... }" }

// UsingDecl is a `using Name = Type;` alias or a `using NS::Name;`
// directive; Aliased is nil for the directive form.
type UsingDecl struct {
	Token     token.Token
	Name      string
	Aliased   TypeExpr // nil for `using NS::name;`
	Qualified string   // the qualified name being imported, for the directive form
}

func (d *UsingDecl) declNode()          {}
func (d *UsingDecl) stmtNode()          {}
func (d *UsingDecl) Pos() token.Position { return d.Token.Pos }
func (d *UsingDecl) String() string      { return "using " + d.Name + ";" }

// TypedefDecl is a classic `typedef Type Name;`.
type TypedefDecl struct {
	Token token.Token
	Name  string
	Type  TypeExpr
}

func (d *TypedefDecl) declNode()          {}
func (d *TypedefDecl) stmtNode()          {}
func (d *TypedefDecl) Pos() token.Position { return d.Token.Pos }
func (d *TypedefDecl) String() string      { return "typedef " + d.Type.String() + " " + d.Name + ";" }

// EnumeratorDecl is one `Name` or `Name = value` entry of an EnumDecl.
type EnumeratorDecl struct {
	Token token.Token
	Name  string
	Value Expr // nil if implicit
}

func (e *EnumeratorDecl) declNode()          {}
func (e *EnumeratorDecl) stmtNode()          {}
func (e *EnumeratorDecl) Pos() token.Position { return e.Token.Pos }
func (e *EnumeratorDecl) String() string      { return e.Name }

// EnumDecl declares an enumeration.
type EnumDecl struct {
	Token       token.Token
	Name        string
	IsScoped    bool // `enum class`
	Underlying  TypeExpr
	Enumerators []*EnumeratorDecl
}

func (d *EnumDecl) declNode()          {}
func (d *EnumDecl) stmtNode()          {}
func (d *EnumDecl) Pos() token.Position { return d.Token.Pos }
func (d *EnumDecl) String() string      { return "enum " + d.Name + " { ... };" }

// TemplateParameter is one `typename T` / `class T` template parameter.
// Templates are parsed, per the spec's non-goals, but never instantiated.
type TemplateParameter struct {
	Token token.Token
	Name  string
}

func (t *TemplateParameter) Pos() token.Position { return t.Token.Pos }
func (t *TemplateParameter) String() string       { return "typename " + t.Name }

// TemplateDecl wraps a class or function declaration with a template
// parameter list.
type TemplateDecl struct {
	Token      token.Token
	Parameters []*TemplateParameter
	Decl       Decl
}

func (d *TemplateDecl) declNode()          {}
func (d *TemplateDecl) stmtNode()          {}
func (d *TemplateDecl) Pos() token.Position { return d.Token.Pos }
func (d *TemplateDecl) String() string      { return "template<...> " + d.Decl.String() }
