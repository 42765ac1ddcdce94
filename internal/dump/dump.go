// Package dump renders tokens, AST trees, and IR programs as JSON
// documents for the driver's dump toggles (§6) and for golden-file
// tests. Documents are built incrementally with sjson rather than
// marshaled from a fixed struct, since the shape of an AST node varies
// by its concrete kind; tests that assert on a dump query it back out
// with gjson.
package dump

import (
	"fmt"

	"github.com/tidwall/pretty"
	"github.com/tidwall/sjson"

	"cxxc/internal/ast"
	"cxxc/internal/ir"
	"cxxc/internal/token"
)

// Tokens renders a token stream as a JSON array of
// {kind, lexeme, line, column} objects.
func Tokens(toks []token.Token) string {
	doc := "[]"
	for i, t := range toks {
		var err error
		prefix := fmt.Sprintf("%d", i)
		doc, err = sjson.Set(doc, prefix+".kind", t.Kind.String())
		if err != nil {
			continue
		}
		doc, _ = sjson.Set(doc, prefix+".lexeme", t.Lexeme)
		doc, _ = sjson.Set(doc, prefix+".line", t.Pos.Line)
		doc, _ = sjson.Set(doc, prefix+".column", t.Pos.Column)
	}
	return doc
}

// AST renders prog as a JSON document: one object per top-level
// declaration, each carrying its kind, source position, a one-line text
// rendering, and a recursively dumped "children" array for the node
// kinds that contain nested statements or declarations.
func AST(prog *ast.Program) string {
	doc := "[]"
	for i, d := range prog.Declarations {
		doc, _ = sjson.SetRaw(doc, fmt.Sprintf("%d", i), nodeJSON(d))
	}
	return doc
}

func nodeJSON(n ast.Node) string {
	doc := "{}"
	doc, _ = sjson.Set(doc, "kind", kindName(n))
	doc, _ = sjson.Set(doc, "line", n.Pos().Line)
	doc, _ = sjson.Set(doc, "column", n.Pos().Column)
	doc, _ = sjson.Set(doc, "text", n.String())

	children := childrenOf(n)
	if len(children) > 0 {
		arr := "[]"
		for i, c := range children {
			arr, _ = sjson.SetRaw(arr, fmt.Sprintf("%d", i), nodeJSON(c))
		}
		doc, _ = sjson.SetRaw(doc, "children", arr)
	}
	return doc
}

func kindName(n ast.Node) string {
	return fmt.Sprintf("%T", n)
}

// childrenOf returns the nested statement/declaration nodes of n, for
// the node kinds that have any. Expression subtrees are left out of the
// structural dump (they already appear in full in "text") to keep dump
// documents a readable size.
func childrenOf(n ast.Node) []ast.Node {
	switch v := n.(type) {
	case *ast.Program:
		out := make([]ast.Node, len(v.Declarations))
		for i, d := range v.Declarations {
			out[i] = d
		}
		return out
	case *ast.NamespaceDecl:
		return declsToNodes(v.Declarations)
	case *ast.TemplateDecl:
		return []ast.Node{v.Decl}
	case *ast.ClassDecl:
		return declsToNodes(v.Members)
	case *ast.FunctionDecl:
		if v.Body != nil {
			return []ast.Node{v.Body}
		}
	case *ast.ConstructorDecl:
		if v.Body != nil {
			return []ast.Node{v.Body}
		}
	case *ast.DestructorDecl:
		if v.Body != nil {
			return []ast.Node{v.Body}
		}
	case *ast.CompoundStmt:
		out := make([]ast.Node, len(v.Statements))
		for i, s := range v.Statements {
			out[i] = s
		}
		return out
	case *ast.IfStmt:
		out := []ast.Node{v.Then}
		if v.Else != nil {
			out = append(out, v.Else)
		}
		return out
	case *ast.WhileStmt:
		return []ast.Node{v.Body}
	case *ast.DoWhileStmt:
		return []ast.Node{v.Body}
	case *ast.ForStmt:
		return []ast.Node{v.Body}
	case *ast.SwitchStmt:
		out := make([]ast.Node, len(v.Cases))
		for i, c := range v.Cases {
			out[i] = c
		}
		return out
	case *ast.CaseStmt:
		out := make([]ast.Node, len(v.Statements))
		for i, s := range v.Statements {
			out[i] = s
		}
		return out
	case *ast.TryStmt:
		out := []ast.Node{v.Body}
		for _, h := range v.Handlers {
			out = append(out, h)
		}
		return out
	case *ast.CatchClause:
		if v.Body != nil {
			return []ast.Node{v.Body}
		}
	}
	return nil
}

func declsToNodes(decls []ast.Decl) []ast.Node {
	out := make([]ast.Node, len(decls))
	for i, d := range decls {
		out[i] = d
	}
	return out
}

// IR renders an ir.Program as a JSON document: one object per function,
// carrying its name, parameters, and its instructions both as a
// canonical textual listing (the §6 form) and as individual op/result/
// args records for tests that want to query a specific field.
func IR(prog *ir.Program) string {
	doc := "{}"
	doc, _ = sjson.Set(doc, "globals", variableNames(prog.GlobalVars))

	fns := "[]"
	for i, fn := range prog.Functions {
		fns, _ = sjson.SetRaw(fns, fmt.Sprintf("%d", i), functionJSON(fn))
	}
	doc, _ = sjson.SetRaw(doc, "functions", fns)
	return doc
}

func variableNames(vars []ir.Variable) []string {
	names := make([]string, len(vars))
	for i, v := range vars {
		names[i] = v.Name
	}
	return names
}

func functionJSON(fn *ir.Function) string {
	doc := "{}"
	doc, _ = sjson.Set(doc, "name", fn.Name)
	doc, _ = sjson.Set(doc, "parameters", variableNames(fn.Parameters))
	doc, _ = sjson.Set(doc, "returnType", fn.ReturnType)
	doc, _ = sjson.Set(doc, "text", ir.PrintFunction(fn))

	instrs := "[]"
	for i, in := range fn.Instructions {
		instrs, _ = sjson.SetRaw(instrs, fmt.Sprintf("%d", i), instructionJSON(in))
	}
	doc, _ = sjson.SetRaw(doc, "instructions", instrs)
	return doc
}

func instructionJSON(in ir.Instruction) string {
	doc := "{}"
	doc, _ = sjson.Set(doc, "op", in.Op.String())
	doc, _ = sjson.Set(doc, "text", ir.PrintInstruction(in))
	if in.Result != nil {
		doc, _ = sjson.Set(doc, "result", in.Result.String())
	}
	if in.Arg1 != nil {
		doc, _ = sjson.Set(doc, "arg1", in.Arg1.String())
	}
	if in.Arg2 != nil {
		doc, _ = sjson.Set(doc, "arg2", in.Arg2.String())
	}
	if in.Arg3 != nil {
		doc, _ = sjson.Set(doc, "arg3", in.Arg3.String())
	}
	if in.Label != "" {
		doc, _ = sjson.Set(doc, "label", in.Label)
	}
	return doc
}

// Pretty indents a dump document for terminal viewing.
func Pretty(doc string) string {
	return string(pretty.Pretty([]byte(doc)))
}

// Compact strips insignificant whitespace from a dump document, the
// form used when a script pipes a dump into another tool.
func Compact(doc string) string {
	return string(pretty.Ugly([]byte(doc)))
}
