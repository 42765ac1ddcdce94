package semantic

import "cxxc/internal/ast"

// TypeRegistry records user-defined types (classes/structs/enums),
// their members, and their base-class lists, per §3.
type TypeRegistry struct {
	Types        map[string]ast.Decl
	ClassMembers map[string]map[string]*Symbol
	ClassBases   map[string][]string
}

// NewTypeRegistry returns an empty registry.
func NewTypeRegistry() *TypeRegistry {
	return &TypeRegistry{
		Types:        map[string]ast.Decl{},
		ClassMembers: map[string]map[string]*Symbol{},
		ClassBases:   map[string][]string{},
	}
}

// RegisterClass records a class/struct declaration and its base list.
// Every key placed in ClassMembers also appears in Types, preserving
// the invariant from §3.
func (r *TypeRegistry) RegisterClass(decl *ast.ClassDecl) {
	r.Types[decl.Name] = decl
	r.ClassMembers[decl.Name] = map[string]*Symbol{}
	r.ClassBases[decl.Name] = append([]string(nil), decl.Bases...)
}

// RegisterEnum records an enum declaration.
func (r *TypeRegistry) RegisterEnum(decl *ast.EnumDecl) {
	r.Types[decl.Name] = decl
}

// RegisterTypedef records a typedef's aliased name.
func (r *TypeRegistry) RegisterTypedef(decl *ast.TypedefDecl) {
	r.Types[decl.Name] = decl
}

// AddMember records member under className's member map.
func (r *TypeRegistry) AddMember(className, memberName string, sym *Symbol) {
	m, ok := r.ClassMembers[className]
	if !ok {
		m = map[string]*Symbol{}
		r.ClassMembers[className] = m
	}
	m[memberName] = sym
}

// Lookup returns the declaration registered under name, if any.
func (r *TypeRegistry) Lookup(name string) (ast.Decl, bool) {
	d, ok := r.Types[name]
	return d, ok
}

// IsDerivedFrom implements types.Hierarchy: source is target or
// inherits from it, transitively, over ClassBases. The base-class graph
// is not required to be acyclic at build time (§3), so the walk is
// guarded with a visited set to guarantee termination.
func (r *TypeRegistry) IsDerivedFrom(source, target string) bool {
	if source == target {
		return true
	}
	visited := map[string]bool{}
	var walk func(name string) bool
	walk = func(name string) bool {
		if visited[name] {
			return false
		}
		visited[name] = true
		for _, base := range r.ClassBases[name] {
			if base == target {
				return true
			}
			if walk(base) {
				return true
			}
		}
		return false
	}
	return walk(source)
}
