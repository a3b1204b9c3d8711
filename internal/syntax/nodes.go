package syntax

import "fmt"

// ----------------------------------------------------------------------------
// Interfaces
//
// There are 3 main classes of nodes: Statements, Declarations, and
// Expressions. Declarations are statements that introduce a name, so a
// Decl is also a Stmt and both may appear wherever the grammar says
// "declaration". All nodes implement the Node interface; the marker
// methods keep the set of implementations closed to this package.

// Node is the interface implemented by all AST nodes.
type Node interface {
	Pos() Pos       // position of first character belonging to the node
	Kind() NodeKind // tag of the concrete node type
	aNode()
}

// Stmt is the interface for all statement nodes, declarations included.
type Stmt interface {
	Node
	aStmt()
}

// Decl is the interface for class, function and variable declarations.
type Decl interface {
	Stmt
	aDecl()
}

// Expr is the interface for all expression nodes.
type Expr interface {
	Node
	aExpr()
}

// NodeKind tags the concrete type of a Node.
type NodeKind uint8

const (
	BadNode NodeKind = iota

	ProgramNode

	// Declarations
	ClassNode
	FuncNode
	VarNode

	// Statements
	BlockNode
	PrintNode
	ExprStmtNode
	IfNode
	WhileNode
	ForNode
	ReturnNode

	// Expressions
	NameNode
	LiteralNode
	AssignNode
	BinaryNode
	LogicalNode
	UnaryNode
	CallNode
	GetNode
	SetNode
	GroupNode
	ThisNode
	SuperNode

	nodeKindCount
)

var nodeKindNames = [...]string{
	BadNode:      "Bad",
	ProgramNode:  "Program",
	ClassNode:    "ClassDecl",
	FuncNode:     "FuncDecl",
	VarNode:      "VarDecl",
	BlockNode:    "BlockStmt",
	PrintNode:    "PrintStmt",
	ExprStmtNode: "ExprStmt",
	IfNode:       "IfStmt",
	WhileNode:    "WhileStmt",
	ForNode:      "ForStmt",
	ReturnNode:   "ReturnStmt",
	NameNode:     "Name",
	LiteralNode:  "BasicLit",
	AssignNode:   "AssignExpr",
	BinaryNode:   "BinaryExpr",
	LogicalNode:  "LogicalExpr",
	UnaryNode:    "UnaryExpr",
	CallNode:     "CallExpr",
	GetNode:      "GetExpr",
	SetNode:      "SetExpr",
	GroupNode:    "ParenExpr",
	ThisNode:     "ThisExpr",
	SuperNode:    "SuperExpr",
}

func (k NodeKind) String() string {
	if k < nodeKindCount {
		return nodeKindNames[k]
	}
	return fmt.Sprintf("NodeKind(%d)", k)
}

// ----------------------------------------------------------------------------
// Base node types

// node is the base struct embedded in all AST nodes.
type node struct {
	pos Pos
}

func (n *node) Pos() Pos { return n.pos }
func (n *node) aNode()   {}

// stmt is embedded in all statement nodes.
type stmt struct{ node }

func (*stmt) aStmt() {}

// decl is embedded in all declaration nodes.
type decl struct{ stmt }

func (*decl) aDecl() {}

// expr is embedded in all expression nodes.
type expr struct{ node }

func (*expr) aExpr() {}

// ----------------------------------------------------------------------------
// Program and Declarations

// Program is the root of a parsed source file.
type Program struct {
	node
	Decls []Stmt // top-level declarations in source order
}

// ClassDecl represents: class Name [< Superclass] { Methods... }
type ClassDecl struct {
	decl
	Name       Token
	Superclass *Name       // nil if none
	Methods    []*FuncDecl // method declarations
	HasBody    bool        // set once the closing brace is consumed
}

// FuncDecl represents a function or method: fun Name(Params) { Body }
type FuncDecl struct {
	decl
	Name    Token
	Params  []Token // parameter names
	Body    []Stmt  // body declarations; empty, not nil, for {}
	HasBody bool
}

// VarDecl represents: var Name [= Init];
type VarDecl struct {
	decl
	Name Token
	Init Expr // nil if none
}

// ----------------------------------------------------------------------------
// Statements

// BlockStmt represents a block: { Stmts... }
type BlockStmt struct {
	stmt
	Stmts []Stmt
}

// PrintStmt represents: print Targets...;
type PrintStmt struct {
	stmt
	Targets []Expr
}

// ExprStmt represents an expression used as a statement.
type ExprStmt struct {
	stmt
	X Expr
}

// IfStmt represents: if (Cond) Then [else Else]
type IfStmt struct {
	stmt
	Cond Expr
	Then Stmt
	Else Stmt // nil if none
}

// WhileStmt represents: while (Cond) Body
type WhileStmt struct {
	stmt
	Cond Expr
	Body Stmt
}

// ForStmt represents: for (Init; Cond; Post) Body
// Any of Init, Cond, and Post may be nil.
type ForStmt struct {
	stmt
	Init Stmt // *VarDecl or *ExprStmt
	Cond Expr
	Post Expr
	Body Stmt
}

// ReturnStmt represents: return [Result];
type ReturnStmt struct {
	stmt
	Result Expr // nil for bare return
}

// ----------------------------------------------------------------------------
// Expressions

// Name represents an identifier used as a variable.
type Name struct {
	expr
	Tok Token
}

// Value returns the identifier text.
func (n *Name) Value() string { return n.Tok.Text }

// BasicLit represents a literal: STRING, NUMBER, TRUE, FALSE, or NIL.
type BasicLit struct {
	expr
	Tok Token
}

// AssignExpr represents: Name = Value
type AssignExpr struct {
	expr
	Name  Token
	Value Expr
}

// BinaryExpr represents: X Op Y for arithmetic and comparison operators.
type BinaryExpr struct {
	expr
	Op Token
	X  Expr
	Y  Expr
}

// LogicalExpr represents: X and Y, X or Y.
type LogicalExpr struct {
	expr
	Op Token
	X  Expr
	Y  Expr
}

// UnaryExpr represents: Op X, where Op is ! or -.
type UnaryExpr struct {
	expr
	Op Token
	X  Expr
}

// CallExpr represents: Fun(Args...)
type CallExpr struct {
	expr
	Fun  Expr
	Args []Expr
}

// GetExpr represents: X.Sel
type GetExpr struct {
	expr
	X   Expr
	Sel Token
}

// SetExpr represents: X.Sel = Value
type SetExpr struct {
	expr
	X     Expr
	Sel   Token
	Value Expr
}

// ParenExpr represents: (X)
type ParenExpr struct {
	expr
	X Expr
}

// ThisExpr represents the this keyword.
type ThisExpr struct {
	expr
	Tok Token
}

// SuperExpr represents: super.Method
type SuperExpr struct {
	expr
	Tok    Token
	Method Token
}

// ----------------------------------------------------------------------------
// Kinds

func (*Program) Kind() NodeKind     { return ProgramNode }
func (*ClassDecl) Kind() NodeKind   { return ClassNode }
func (*FuncDecl) Kind() NodeKind    { return FuncNode }
func (*VarDecl) Kind() NodeKind     { return VarNode }
func (*BlockStmt) Kind() NodeKind   { return BlockNode }
func (*PrintStmt) Kind() NodeKind   { return PrintNode }
func (*ExprStmt) Kind() NodeKind    { return ExprStmtNode }
func (*IfStmt) Kind() NodeKind      { return IfNode }
func (*WhileStmt) Kind() NodeKind   { return WhileNode }
func (*ForStmt) Kind() NodeKind     { return ForNode }
func (*ReturnStmt) Kind() NodeKind  { return ReturnNode }
func (*Name) Kind() NodeKind        { return NameNode }
func (*BasicLit) Kind() NodeKind    { return LiteralNode }
func (*AssignExpr) Kind() NodeKind  { return AssignNode }
func (*BinaryExpr) Kind() NodeKind  { return BinaryNode }
func (*LogicalExpr) Kind() NodeKind { return LogicalNode }
func (*UnaryExpr) Kind() NodeKind   { return UnaryNode }
func (*CallExpr) Kind() NodeKind    { return CallNode }
func (*GetExpr) Kind() NodeKind     { return GetNode }
func (*SetExpr) Kind() NodeKind     { return SetNode }
func (*ParenExpr) Kind() NodeKind   { return GroupNode }
func (*ThisExpr) Kind() NodeKind    { return ThisNode }
func (*SuperExpr) Kind() NodeKind   { return SuperNode }

// ----------------------------------------------------------------------------
// Construction

// New returns a zero node of the given kind. Kinds that hold a list of
// children get an empty, non-nil list; leaf kinds carry none.
// New returns nil for BadNode and unknown kinds.
func New(kind NodeKind) Node {
	switch kind {
	case ProgramNode:
		return &Program{Decls: []Stmt{}}
	case ClassNode:
		return &ClassDecl{Methods: []*FuncDecl{}}
	case FuncNode:
		return &FuncDecl{Params: []Token{}, Body: []Stmt{}}
	case VarNode:
		return &VarDecl{}
	case BlockNode:
		return &BlockStmt{Stmts: []Stmt{}}
	case PrintNode:
		return &PrintStmt{Targets: []Expr{}}
	case ExprStmtNode:
		return &ExprStmt{}
	case IfNode:
		return &IfStmt{}
	case WhileNode:
		return &WhileStmt{}
	case ForNode:
		return &ForStmt{}
	case ReturnNode:
		return &ReturnStmt{}
	case NameNode:
		return &Name{}
	case LiteralNode:
		return &BasicLit{}
	case AssignNode:
		return &AssignExpr{}
	case BinaryNode:
		return &BinaryExpr{}
	case LogicalNode:
		return &LogicalExpr{}
	case UnaryNode:
		return &UnaryExpr{}
	case CallNode:
		return &CallExpr{Args: []Expr{}}
	case GetNode:
		return &GetExpr{}
	case SetNode:
		return &SetExpr{}
	case GroupNode:
		return &ParenExpr{}
	case ThisNode:
		return &ThisExpr{}
	case SuperNode:
		return &SuperExpr{}
	}
	return nil
}

// setPos is implemented by every node through the embedded node struct.
type setPos interface{ setPos(Pos) }

func (n *node) setPos(pos Pos) { n.pos = pos }

// newAt is New with a position, typed for the caller.
func newAt[T Node](kind NodeKind, pos Pos) T {
	n := New(kind)
	n.(setPos).setPos(pos)
	return n.(T)
}
