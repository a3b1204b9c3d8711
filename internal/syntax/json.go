package syntax

import (
	"encoding/json"
	"io"
)

// FprintJSON writes a JSON representation of the AST to w.
func FprintJSON(w io.Writer, node Node) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(toJSON(node))
}

func toJSON(node Node) interface{} {
	if isNil(node) {
		return nil
	}

	m := map[string]interface{}{
		"type": node.Kind().String(),
		"pos":  node.Pos().String(),
	}

	switch n := node.(type) {
	case *Program:
		m["decls"] = mapSlice(n.Decls, func(s Stmt) interface{} { return toJSON(s) })

	case *ClassDecl:
		m["name"] = n.Name.Text
		m["hasBody"] = n.HasBody
		if n.Superclass != nil {
			m["superclass"] = n.Superclass.Value()
		}
		m["methods"] = mapSlice(n.Methods, func(f *FuncDecl) interface{} { return toJSON(f) })

	case *FuncDecl:
		m["name"] = n.Name.Text
		m["hasBody"] = n.HasBody
		m["params"] = mapSlice(n.Params, func(t Token) interface{} { return t.Text })
		m["body"] = mapSlice(n.Body, func(s Stmt) interface{} { return toJSON(s) })

	case *VarDecl:
		m["name"] = n.Name.Text
		if n.Init != nil {
			m["init"] = toJSON(n.Init)
		}

	case *BlockStmt:
		m["stmts"] = mapSlice(n.Stmts, func(s Stmt) interface{} { return toJSON(s) })

	case *PrintStmt:
		m["targets"] = mapSlice(n.Targets, func(x Expr) interface{} { return toJSON(x) })

	case *ExprStmt:
		m["x"] = toJSON(n.X)

	case *IfStmt:
		m["cond"] = toJSON(n.Cond)
		m["then"] = toJSON(n.Then)
		if n.Else != nil {
			m["else"] = toJSON(n.Else)
		}

	case *WhileStmt:
		m["cond"] = toJSON(n.Cond)
		m["body"] = toJSON(n.Body)

	case *ForStmt:
		if n.Init != nil {
			m["init"] = toJSON(n.Init)
		}
		if n.Cond != nil {
			m["cond"] = toJSON(n.Cond)
		}
		if n.Post != nil {
			m["post"] = toJSON(n.Post)
		}
		m["body"] = toJSON(n.Body)

	case *ReturnStmt:
		if n.Result != nil {
			m["result"] = toJSON(n.Result)
		}

	case *Name:
		m["value"] = n.Tok.Text

	case *BasicLit:
		m["kind"] = n.Tok.Kind.String()
		m["value"] = n.Tok.Text

	case *AssignExpr:
		m["name"] = n.Name.Text
		m["value"] = toJSON(n.Value)

	case *BinaryExpr:
		m["op"] = n.Op.Text
		m["x"] = toJSON(n.X)
		m["y"] = toJSON(n.Y)

	case *LogicalExpr:
		m["op"] = n.Op.Text
		m["x"] = toJSON(n.X)
		m["y"] = toJSON(n.Y)

	case *UnaryExpr:
		m["op"] = n.Op.Text
		m["x"] = toJSON(n.X)

	case *CallExpr:
		m["fun"] = toJSON(n.Fun)
		m["args"] = mapSlice(n.Args, func(x Expr) interface{} { return toJSON(x) })

	case *GetExpr:
		m["x"] = toJSON(n.X)
		m["sel"] = n.Sel.Text

	case *SetExpr:
		m["x"] = toJSON(n.X)
		m["sel"] = n.Sel.Text
		m["value"] = toJSON(n.Value)

	case *ParenExpr:
		m["x"] = toJSON(n.X)

	case *ThisExpr:
		// no fields

	case *SuperExpr:
		m["method"] = n.Method.Text
	}

	return m
}

// mapSlice applies f to every element of s.
func mapSlice[T any](s []T, f func(T) interface{}) []interface{} {
	result := make([]interface{}, len(s))
	for i, v := range s {
		result[i] = f(v)
	}
	return result
}
