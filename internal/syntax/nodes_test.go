package syntax

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewKinds(t *testing.T) {
	for k := ProgramNode; k < nodeKindCount; k++ {
		n := New(k)
		require.NotNil(t, n, "New(%s)", k)
		assert.Equal(t, k, n.Kind(), "New(%s).Kind()", k)
		assert.Equal(t, "*syntax."+k.String(), fmt.Sprintf("%T", n))
		assert.False(t, n.Pos().IsValid(), "zero position")
	}

	assert.Nil(t, New(BadNode))
	assert.Nil(t, New(nodeKindCount))
}

func TestNewEmptyLists(t *testing.T) {
	assert.NotNil(t, New(ProgramNode).(*Program).Decls)
	assert.NotNil(t, New(ClassNode).(*ClassDecl).Methods)
	assert.NotNil(t, New(FuncNode).(*FuncDecl).Params)
	assert.NotNil(t, New(FuncNode).(*FuncDecl).Body)
	assert.NotNil(t, New(BlockNode).(*BlockStmt).Stmts)
	assert.NotNil(t, New(PrintNode).(*PrintStmt).Targets)
	assert.NotNil(t, New(CallNode).(*CallExpr).Args)

	c := New(ClassNode).(*ClassDecl)
	assert.False(t, c.HasBody)
	assert.Empty(t, c.Name.Text)
}

func TestNodeInterfaces(t *testing.T) {
	decls := []NodeKind{ClassNode, FuncNode, VarNode}
	stmts := []NodeKind{BlockNode, PrintNode, ExprStmtNode, IfNode, WhileNode, ForNode, ReturnNode}
	exprs := []NodeKind{
		NameNode, LiteralNode, AssignNode, BinaryNode, LogicalNode, UnaryNode,
		CallNode, GetNode, SetNode, GroupNode, ThisNode, SuperNode,
	}

	for _, k := range decls {
		_, ok := New(k).(Decl)
		assert.True(t, ok, "%s is a Decl", k)
	}
	for _, k := range append(decls, stmts...) {
		_, ok := New(k).(Stmt)
		assert.True(t, ok, "%s is a Stmt", k)
	}
	for _, k := range stmts {
		_, ok := New(k).(Decl)
		assert.False(t, ok, "%s is not a Decl", k)
	}
	for _, k := range exprs {
		n := New(k)
		_, ok := n.(Expr)
		assert.True(t, ok, "%s is an Expr", k)
		_, ok = n.(Stmt)
		assert.False(t, ok, "%s is not a Stmt", k)
	}
}

func TestNodeKindString(t *testing.T) {
	assert.Equal(t, "Bad", BadNode.String())
	assert.Equal(t, "ClassDecl", ClassNode.String())
	assert.Equal(t, "ParenExpr", GroupNode.String())
	assert.Equal(t, "NodeKind(200)", NodeKind(200).String())
}

// ----------------------------------------------------------------------------
// Walk

func TestWalk(t *testing.T) {
	prog := parseSrc(t, `
class A < B {
  m(x) { return x + 1; }
}
fun f() { print A().m(2); }
`)

	counts := map[NodeKind]int{}
	Walk(prog, func(n Node) bool {
		counts[n.Kind()]++
		return true
	})

	assert.Equal(t, 1, counts[ProgramNode])
	assert.Equal(t, 1, counts[ClassNode])
	assert.Equal(t, 2, counts[FuncNode])
	assert.Equal(t, 1, counts[ReturnNode])
	assert.Equal(t, 1, counts[BinaryNode])
	assert.Equal(t, 2, counts[CallNode])
	assert.Equal(t, 1, counts[GetNode])
	// B (superclass), x, A
	assert.Equal(t, 3, counts[NameNode])
}

func TestWalkSkipsChildren(t *testing.T) {
	prog := parseSrc(t, "fun f() { var x = 1; } var y = 2;")

	var vars []string
	Walk(prog, func(n Node) bool {
		if _, ok := n.(*FuncDecl); ok {
			return false
		}
		if v, ok := n.(*VarDecl); ok {
			vars = append(vars, v.Name.Text)
		}
		return true
	})
	assert.Equal(t, []string{"y"}, vars)
}

func TestInspect(t *testing.T) {
	prog := parseSrc(t, "if (a) { if (b) print 1; } else print 2;")

	var ifCount int
	Inspect(prog, func(n Node) bool {
		if _, ok := n.(*IfStmt); ok {
			ifCount++
		}
		return true
	})
	assert.Equal(t, 2, ifCount)
}

func TestChildren(t *testing.T) {
	prog := parseSrc(t, "for (;;) print 1;")
	f := prog.Decls[0].(*ForStmt)

	children := Children(f)
	require.Len(t, children, 1, "absent clauses are omitted")
	assert.Same(t, f.Body, children[0])

	set := firstExpr(t, "a.b = c;").(*SetExpr)
	children = Children(set)
	require.Len(t, children, 2)
	assert.Equal(t, NameNode, children[0].Kind())
	assert.Equal(t, NameNode, children[1].Kind())

	assert.Empty(t, Children(New(ThisNode)))
	assert.Empty(t, Children(New(ProgramNode)))
}

// ----------------------------------------------------------------------------
// Printing

func TestFprint(t *testing.T) {
	prog := parseSrc(t, "class A {}\nfun f(a, b) { print a; }")

	var buf bytes.Buffer
	Fprint(&buf, prog)

	want := `Program test.lox:1:1
  ClassDecl test.lox:1:1 "A"
    HasBody: true
  FuncDecl test.lox:2:1 "f"
    Params: a, b
    Body:
      PrintStmt test.lox:2:15
        Name test.lox:2:21 "a"
`
	assert.Equal(t, want, buf.String())
}

func TestFprintExpressions(t *testing.T) {
	prog := parseSrc(t, "x = -1 + y.z;")

	var buf bytes.Buffer
	Fprint(&buf, prog)

	want := `Program test.lox:1:1
  ExprStmt test.lox:1:1
    AssignExpr test.lox:1:1 "x"
      BinaryExpr test.lox:1:5 +
        X:
          UnaryExpr test.lox:1:5 -
            BasicLit test.lox:1:6 NUMBER "1"
        Y:
          GetExpr test.lox:1:10 .z
            Name test.lox:1:10 "y"
`
	assert.Equal(t, want, buf.String())
}

func TestFprintJSON(t *testing.T) {
	prog := parseSrc(t, "class A < B { m() {} }")

	var buf bytes.Buffer
	require.NoError(t, FprintJSON(&buf, prog))

	var got map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))

	assert.Equal(t, "Program", got["type"])
	assert.Equal(t, "test.lox:1:1", got["pos"])

	decls := got["decls"].([]interface{})
	require.Len(t, decls, 1)
	class := decls[0].(map[string]interface{})
	assert.Equal(t, "ClassDecl", class["type"])
	assert.Equal(t, "A", class["name"])
	assert.Equal(t, "B", class["superclass"])
	assert.Equal(t, true, class["hasBody"])

	methods := class["methods"].([]interface{})
	require.Len(t, methods, 1)
	m := methods[0].(map[string]interface{})
	assert.Equal(t, "m", m["name"])
	assert.Equal(t, []interface{}{}, m["params"])
	assert.Equal(t, []interface{}{}, m["body"])
}

func TestFprintTokens(t *testing.T) {
	toks, _ := Scan("t.lox", []byte("print \"a\\nb\";"))

	var buf bytes.Buffer
	FprintTokens(&buf, "t.lox", toks)
	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")

	require.Len(t, lines, 2+len(toks))
	assert.True(t, strings.HasPrefix(lines[0], "POSITION"))
	assert.Contains(t, lines[2], "PRINT")
	assert.Contains(t, lines[3], "STRING")
	assert.Contains(t, lines[3], `a\\nb`)
	assert.Contains(t, lines[len(lines)-1], "EOF")
}
