package syntax

import (
	"fmt"
	"io"
	"strings"
)

// Fprint writes a textual representation of the AST to w. Like Walk it
// recurses once per tree level.
func Fprint(w io.Writer, node Node) {
	p := &printer{w: w}
	p.print(node)
}

type printer struct {
	w      io.Writer
	indent int
}

func (p *printer) printf(format string, args ...interface{}) {
	fmt.Fprintf(p.w, "%s%s", strings.Repeat("  ", p.indent), fmt.Sprintf(format, args...))
}

// nested prints label and then node one level deeper.
func (p *printer) nested(label string, node Node) {
	if isNil(node) {
		return
	}
	p.printf("%s:\n", label)
	p.indent++
	p.print(node)
	p.indent--
}

func (p *printer) print(node Node) {
	if isNil(node) {
		return
	}

	switch n := node.(type) {
	case *Program:
		p.printf("Program %s\n", n.pos)
		p.indent++
		for _, d := range n.Decls {
			p.print(d)
		}
		p.indent--

	case *ClassDecl:
		p.printf("ClassDecl %s %q\n", n.pos, n.Name.Text)
		p.indent++
		if n.Superclass != nil {
			p.printf("Superclass: %s\n", n.Superclass.Value())
		}
		p.printf("HasBody: %t\n", n.HasBody)
		for _, m := range n.Methods {
			p.print(m)
		}
		p.indent--

	case *FuncDecl:
		p.printf("FuncDecl %s %q\n", n.pos, n.Name.Text)
		p.indent++
		if len(n.Params) > 0 {
			p.printf("Params: %s\n", tokenTexts(n.Params))
		}
		p.printf("Body:\n")
		p.indent++
		for _, s := range n.Body {
			p.print(s)
		}
		p.indent--
		p.indent--

	case *VarDecl:
		p.printf("VarDecl %s %q\n", n.pos, n.Name.Text)
		p.indent++
		p.nested("Init", n.Init)
		p.indent--

	case *BlockStmt:
		p.printf("BlockStmt %s\n", n.pos)
		p.indent++
		for _, s := range n.Stmts {
			p.print(s)
		}
		p.indent--

	case *PrintStmt:
		p.printf("PrintStmt %s\n", n.pos)
		p.indent++
		for _, x := range n.Targets {
			p.print(x)
		}
		p.indent--

	case *ExprStmt:
		p.printf("ExprStmt %s\n", n.pos)
		p.indent++
		p.print(n.X)
		p.indent--

	case *IfStmt:
		p.printf("IfStmt %s\n", n.pos)
		p.indent++
		p.nested("Cond", n.Cond)
		p.nested("Then", n.Then)
		p.nested("Else", n.Else)
		p.indent--

	case *WhileStmt:
		p.printf("WhileStmt %s\n", n.pos)
		p.indent++
		p.nested("Cond", n.Cond)
		p.nested("Body", n.Body)
		p.indent--

	case *ForStmt:
		p.printf("ForStmt %s\n", n.pos)
		p.indent++
		p.nested("Init", n.Init)
		p.nested("Cond", n.Cond)
		p.nested("Post", n.Post)
		p.nested("Body", n.Body)
		p.indent--

	case *ReturnStmt:
		p.printf("ReturnStmt %s\n", n.pos)
		if n.Result != nil {
			p.indent++
			p.print(n.Result)
			p.indent--
		}

	case *Name:
		p.printf("Name %s %q\n", n.pos, n.Tok.Text)

	case *BasicLit:
		p.printf("BasicLit %s %s %q\n", n.pos, n.Tok.Kind, n.Tok.Text)

	case *AssignExpr:
		p.printf("AssignExpr %s %q\n", n.pos, n.Name.Text)
		p.indent++
		p.print(n.Value)
		p.indent--

	case *BinaryExpr:
		p.printf("BinaryExpr %s %s\n", n.pos, n.Op.Text)
		p.indent++
		p.nested("X", n.X)
		p.nested("Y", n.Y)
		p.indent--

	case *LogicalExpr:
		p.printf("LogicalExpr %s %s\n", n.pos, n.Op.Text)
		p.indent++
		p.nested("X", n.X)
		p.nested("Y", n.Y)
		p.indent--

	case *UnaryExpr:
		p.printf("UnaryExpr %s %s\n", n.pos, n.Op.Text)
		p.indent++
		p.print(n.X)
		p.indent--

	case *CallExpr:
		p.printf("CallExpr %s\n", n.pos)
		p.indent++
		p.nested("Fun", n.Fun)
		if len(n.Args) > 0 {
			p.printf("Args:\n")
			p.indent++
			for _, a := range n.Args {
				p.print(a)
			}
			p.indent--
		}
		p.indent--

	case *GetExpr:
		p.printf("GetExpr %s .%s\n", n.pos, n.Sel.Text)
		p.indent++
		p.print(n.X)
		p.indent--

	case *SetExpr:
		p.printf("SetExpr %s .%s\n", n.pos, n.Sel.Text)
		p.indent++
		p.nested("X", n.X)
		p.nested("Value", n.Value)
		p.indent--

	case *ParenExpr:
		p.printf("ParenExpr %s\n", n.pos)
		p.indent++
		p.print(n.X)
		p.indent--

	case *ThisExpr:
		p.printf("ThisExpr %s\n", n.pos)

	case *SuperExpr:
		p.printf("SuperExpr %s .%s\n", n.pos, n.Method.Text)

	default:
		p.printf("<%T>\n", node)
	}
}

// tokenTexts joins the texts of toks with ", ".
func tokenTexts(toks []Token) string {
	texts := make([]string, len(toks))
	for i, t := range toks {
		texts[i] = t.Text
	}
	return strings.Join(texts, ", ")
}

// FprintTokens writes a table of tokens with their positions to w.
func FprintTokens(w io.Writer, filename string, tokens []Token) {
	fmt.Fprintf(w, "%-20s %-14s %-6s %s\n", "POSITION", "TOKEN", "LEN", "TEXT")
	fmt.Fprintf(w, "%-20s %-14s %-6s %s\n", strings.Repeat("-", 20), strings.Repeat("-", 14), strings.Repeat("-", 6), strings.Repeat("-", 20))
	for _, t := range tokens {
		fmt.Fprintf(w, "%-20s %-14s %-6d %s\n", t.Pos(filename), t.Kind, t.Length, formatText(t.Text))
	}
}

// formatText escapes control characters for display.
func formatText(s string) string {
	if s == "" {
		return ""
	}
	q := fmt.Sprintf("%q", s)
	return q[1 : len(q)-1]
}
