package semantic

import (
	"cxxc/internal/ast"
	"cxxc/internal/types"
)

// resolveType maps a parsed TypeExpr to its types.Type value. `auto` and
// any other form the analyzer cannot pin down resolves to types.Unknown,
// which Compatible treats as compatible with anything so it never
// cascades into a spurious second diagnostic.
func (a *Analyzer) resolveType(te ast.TypeExpr) types.Type {
	switch t := te.(type) {
	case *ast.PrimitiveType:
		if t.Name == "auto" {
			return types.Unknown{}
		}
		return types.Primitive{Name: t.Name, Unsigned: t.Unsigned}
	case *ast.PointerType:
		return types.Pointer{Elem: a.resolveType(t.Base)}
	case *ast.ReferenceType:
		return types.Reference{Elem: a.resolveType(t.Base)}
	case *ast.ArrayType:
		n := -1
		if lit, ok := t.Size.(*ast.IntegerLit); ok {
			n = int(lit.Value)
		}
		return types.Array{Elem: a.resolveType(t.Base), N: n}
	case *ast.UserDefinedType:
		return types.UserDefined{Name: t.Name}
	}
	return types.Unknown{}
}
