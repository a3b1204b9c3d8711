package syntax

import "reflect"

// A Visitor sees each node before its children and returns false to prune
// them.
type Visitor func(node Node) bool

// Walk visits node and then, unless v returned false, each of its
// children in source order. Nil nodes are skipped.
//
// Walk recurses once per tree level. Parse bounds nesting in the source,
// but left-associative chains such as a+b+c and f()()() grow the tree by
// one level per operator, so depth is at most linear in the input.
func Walk(node Node, v Visitor) {
	if isNil(node) || !v(node) {
		return
	}
	for _, c := range Children(node) {
		Walk(c, v)
	}
}

// Inspect is Walk for a plain function.
func Inspect(node Node, f func(Node) bool) {
	Walk(node, Visitor(f))
}

// Children returns the direct child nodes of node in source order.
// Absent optional children are omitted. Tokens (names, parameters,
// operators) are not nodes and are not returned.
func Children(node Node) []Node {
	var out []Node
	add := func(n Node) {
		if !isNil(n) {
			out = append(out, n)
		}
	}

	switch n := node.(type) {
	case *Program:
		for _, d := range n.Decls {
			add(d)
		}

	case *ClassDecl:
		if n.Superclass != nil {
			add(n.Superclass)
		}
		for _, m := range n.Methods {
			add(m)
		}

	case *FuncDecl:
		for _, s := range n.Body {
			add(s)
		}

	case *VarDecl:
		add(n.Init)

	case *BlockStmt:
		for _, s := range n.Stmts {
			add(s)
		}

	case *PrintStmt:
		for _, x := range n.Targets {
			add(x)
		}

	case *ExprStmt:
		add(n.X)

	case *IfStmt:
		add(n.Cond)
		add(n.Then)
		add(n.Else)

	case *WhileStmt:
		add(n.Cond)
		add(n.Body)

	case *ForStmt:
		add(n.Init)
		add(n.Cond)
		add(n.Post)
		add(n.Body)

	case *ReturnStmt:
		add(n.Result)

	case *AssignExpr:
		add(n.Value)

	case *BinaryExpr:
		add(n.X)
		add(n.Y)

	case *LogicalExpr:
		add(n.X)
		add(n.Y)

	case *UnaryExpr:
		add(n.X)

	case *CallExpr:
		add(n.Fun)
		for _, a := range n.Args {
			add(a)
		}

	case *GetExpr:
		add(n.X)

	case *SetExpr:
		add(n.X)
		add(n.Value)

	case *ParenExpr:
		add(n.X)
	}
	// Name, BasicLit, ThisExpr and SuperExpr are leaves.

	return out
}

// isNil reports whether n is nil or a typed nil pointer.
func isNil(n Node) bool {
	if n == nil {
		return true
	}
	v := reflect.ValueOf(n)
	return v.Kind() == reflect.Ptr && v.IsNil()
}
