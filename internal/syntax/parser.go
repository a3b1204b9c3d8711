package syntax

import "fmt"

// bailout carries a fatal error from deep in the recursive descent back to
// Parse.
type bailout struct{ err error }

// Parser performs syntax analysis over a scanned token sequence.
//
// There is no error recovery: the first unexpected token ends the parse and
// Parse returns no tree.
type Parser struct {
	filename string
	tokens   []Token

	// Cursor
	index int   // index of tok in tokens
	tok   Token // current token

	nestLev int // statement and expression nesting depth
}

// maxNestLev bounds the parser's recursion depth. Nesting statements,
// blocks or expressions deeper than this is a SyntaxError.
const maxNestLev int = 1e4

func incNestLev(p *Parser) *Parser {
	p.nestLev++
	if p.nestLev > maxNestLev {
		p.errorAt(p.tok, "nesting too deep")
	}
	return p
}

func decNestLev(p *Parser) {
	p.nestLev--
}

// NewParser creates a Parser over tokens. The slice is read, never
// modified, and must end in an EOF token.
func NewParser(filename string, tokens []Token) *Parser {
	p := &Parser{
		filename: filename,
		tokens:   tokens,
	}
	if len(tokens) > 0 {
		p.tok = tokens[0]
	}
	return p
}

// Parse is a convenience wrapper around NewParser(...).Parse().
func Parse(filename string, tokens []Token) (*Program, error) {
	return NewParser(filename, tokens).Parse()
}

// Parse parses the whole token sequence and returns the Program root.
// On failure it returns a nil tree and a *SyntaxError, or ErrNoEOF if the
// sequence is not terminated.
func (p *Parser) Parse() (prog *Program, err error) {
	if n := len(p.tokens); n == 0 || p.tokens[n-1].Kind != EOF {
		return nil, ErrNoEOF
	}

	defer func() {
		if r := recover(); r != nil {
			b, ok := r.(bailout)
			if !ok {
				panic(r)
			}
			prog, err = nil, b.err
		}
	}()

	return p.program(), nil
}

// ----------------------------------------------------------------------------
// Token navigation

// pos returns the display position of the current token.
func (p *Parser) pos() Pos {
	return p.tok.Pos(p.filename)
}

// next advances to the next token. The cursor stays on a final EOF.
func (p *Parser) next() {
	if p.index+1 < len(p.tokens) {
		p.index++
		p.tok = p.tokens[p.index]
		return
	}
	if p.tok.Kind != EOF {
		panic(bailout{ErrExhausted})
	}
}

// got reports whether the current token is of kind k.
// If so, it consumes the token and returns true.
func (p *Parser) got(k Kind) bool {
	if p.tok.Kind == k {
		p.next()
		return true
	}
	return false
}

// want consumes and returns the current token if it is of kind k.
// Otherwise the parse fails; alts name other kinds that would also have
// been acceptable here and only appear in the error.
func (p *Parser) want(k Kind, alts ...Kind) Token {
	if p.tok.Kind != k {
		p.errorExpected(append([]Kind{k}, alts...)...)
	}
	tok := p.tok
	p.next()
	return tok
}

// ----------------------------------------------------------------------------
// Error handling

// errorExpected aborts the parse with an "expected ..., got ..." error.
func (p *Parser) errorExpected(want ...Kind) {
	panic(bailout{&SyntaxError{
		Pos:      p.pos(),
		Expected: want,
		Got:      p.tok.Kind,
		Text:     p.tok.Text,
		Msg:      expectedMsg(want, p.tok),
	}})
}

// errorAt aborts the parse with msg reported at tok.
func (p *Parser) errorAt(tok Token, msg string) {
	panic(bailout{&SyntaxError{
		Pos:  tok.Pos(p.filename),
		Got:  tok.Kind,
		Text: tok.Text,
		Msg:  msg,
	}})
}

// ----------------------------------------------------------------------------
// Declarations

// program parses: declaration* EOF
func (p *Parser) program() *Program {
	prog := newAt[*Program](ProgramNode, p.pos())
	for p.tok.Kind != EOF {
		prog.Decls = append(prog.Decls, p.declaration())
	}
	p.want(EOF)
	return prog
}

// declaration parses: classDecl | funDecl | varDecl | statement
func (p *Parser) declaration() Stmt {
	switch p.tok.Kind {
	case Class:
		return p.classDecl()
	case Fun:
		return p.funDecl()
	case Var:
		return p.varDecl()
	default:
		return p.statement()
	}
}

// classDecl parses: "class" IDENTIFIER ( "<" IDENTIFIER )? "{" method* "}"
func (p *Parser) classDecl() *ClassDecl {
	d := newAt[*ClassDecl](ClassNode, p.pos())

	p.want(Class)
	d.Name = p.want(Identifier)

	if p.got(Less) {
		sup := newAt[*Name](NameNode, p.pos())
		sup.Tok = p.want(Identifier)
		d.Superclass = sup
	}

	p.want(LeftBrace)
	for p.tok.Kind != RightBrace {
		if p.tok.Kind == EOF {
			p.errorExpected(RightBrace)
		}
		d.Methods = append(d.Methods, p.method())
	}
	p.want(RightBrace)
	d.HasBody = true

	return d
}

// method parses a class member: "fun"? function
func (p *Parser) method() *FuncDecl {
	pos := p.pos()
	if !p.got(Fun) && p.tok.Kind != Identifier {
		p.errorExpected(Fun, Identifier, RightBrace)
	}
	return p.function(pos)
}

// funDecl parses: "fun" function
func (p *Parser) funDecl() *FuncDecl {
	pos := p.pos()
	p.want(Fun)
	return p.function(pos)
}

// function parses: IDENTIFIER "(" paramList? ")" block
func (p *Parser) function(pos Pos) *FuncDecl {
	d := newAt[*FuncDecl](FuncNode, pos)

	d.Name = p.want(Identifier)
	d.Params = append(d.Params, p.paramList()...)
	d.Body = append(d.Body, p.block()...)
	d.HasBody = true

	return d
}

// paramList parses: "(" ( IDENTIFIER ( "," IDENTIFIER )* )? ")"
// A trailing comma is rejected.
func (p *Parser) paramList() []Token {
	p.want(LeftParen)

	var params []Token
	if p.got(RightParen) {
		return params
	}

	params = append(params, p.want(Identifier, RightParen))
	for p.got(Comma) {
		params = append(params, p.want(Identifier))
	}

	p.want(RightParen, Comma)
	return params
}

// varDecl parses: "var" IDENTIFIER ( "=" expression )? ";"
func (p *Parser) varDecl() *VarDecl {
	d := newAt[*VarDecl](VarNode, p.pos())

	p.want(Var)
	d.Name = p.want(Identifier)

	if p.got(Equal) {
		d.Init = p.expr()
	}

	p.want(Semicolon)
	return d
}

// ----------------------------------------------------------------------------
// Statements

// statement parses a non-declaration statement.
func (p *Parser) statement() Stmt {
	defer decNestLev(incNestLev(p))

	switch p.tok.Kind {
	case Print:
		return p.printStmt()
	case LeftBrace:
		return p.blockStmt()
	case If:
		return p.ifStmt()
	case While:
		return p.whileStmt()
	case For:
		return p.forStmt()
	case Return:
		return p.returnStmt()
	default:
		return p.exprStmt()
	}
}

// block parses: "{" declaration* "}"
// The result of {} is empty but not nil.
func (p *Parser) block() []Stmt {
	defer decNestLev(incNestLev(p))
	p.want(LeftBrace)

	stmts := []Stmt{}
	for p.tok.Kind != RightBrace {
		if p.tok.Kind == EOF {
			p.errorExpected(RightBrace)
		}
		stmts = append(stmts, p.declaration())
	}

	p.want(RightBrace)
	return stmts
}

// blockStmt parses a block used as a statement.
func (p *Parser) blockStmt() *BlockStmt {
	b := newAt[*BlockStmt](BlockNode, p.pos())
	b.Stmts = append(b.Stmts, p.block()...)
	return b
}

// printStmt parses: "print" expression ( "," expression )* ";"
func (p *Parser) printStmt() *PrintStmt {
	s := newAt[*PrintStmt](PrintNode, p.pos())

	p.want(Print)
	s.Targets = append(s.Targets, p.expr())
	for p.got(Comma) {
		s.Targets = append(s.Targets, p.expr())
	}

	p.want(Semicolon)
	return s
}

// exprStmt parses: expression ";"
func (p *Parser) exprStmt() *ExprStmt {
	s := newAt[*ExprStmt](ExprStmtNode, p.pos())
	s.X = p.expr()
	p.want(Semicolon)
	return s
}

// ifStmt parses: "if" "(" expression ")" statement ( "else" statement )?
func (p *Parser) ifStmt() *IfStmt {
	s := newAt[*IfStmt](IfNode, p.pos())

	p.want(If)
	p.want(LeftParen)
	s.Cond = p.expr()
	p.want(RightParen)
	s.Then = p.statement()

	if p.got(Else) {
		s.Else = p.statement()
	}

	return s
}

// whileStmt parses: "while" "(" expression ")" statement
func (p *Parser) whileStmt() *WhileStmt {
	s := newAt[*WhileStmt](WhileNode, p.pos())

	p.want(While)
	p.want(LeftParen)
	s.Cond = p.expr()
	p.want(RightParen)
	s.Body = p.statement()

	return s
}

// forStmt parses:
//
//	"for" "(" ( varDecl | exprStmt | ";" ) expression? ";" expression? ")" statement
func (p *Parser) forStmt() *ForStmt {
	s := newAt[*ForStmt](ForNode, p.pos())

	p.want(For)
	p.want(LeftParen)

	switch p.tok.Kind {
	case Semicolon:
		p.next()
	case Var:
		s.Init = p.varDecl()
	default:
		s.Init = p.exprStmt()
	}

	if p.tok.Kind != Semicolon {
		s.Cond = p.expr()
	}
	p.want(Semicolon)

	if p.tok.Kind != RightParen {
		s.Post = p.expr()
	}
	p.want(RightParen)

	s.Body = p.statement()
	return s
}

// returnStmt parses: "return" expression? ";"
func (p *Parser) returnStmt() *ReturnStmt {
	s := newAt[*ReturnStmt](ReturnNode, p.pos())

	p.want(Return)
	if p.tok.Kind != Semicolon {
		s.Result = p.expr()
	}

	p.want(Semicolon)
	return s
}

// ----------------------------------------------------------------------------
// Expressions

// expr parses an expression.
func (p *Parser) expr() Expr {
	return p.assignment()
}

// assignment parses: ( call "." )? IDENTIFIER "=" assignment | binary
// Assignment is right associative.
func (p *Parser) assignment() Expr {
	defer decNestLev(incNestLev(p))

	x := p.binaryExpr(0)

	if p.tok.Kind != Equal {
		return x
	}
	eq := p.tok
	p.next()
	value := p.assignment()

	switch t := x.(type) {
	case *Name:
		a := newAt[*AssignExpr](AssignNode, t.Pos())
		a.Name = t.Tok
		a.Value = value
		return a
	case *GetExpr:
		s := newAt[*SetExpr](SetNode, t.Pos())
		s.X = t.X
		s.Sel = t.Sel
		s.Value = value
		return s
	}
	p.errorAt(eq, "invalid assignment target")
	return nil
}

// binaryExpr parses a binary expression whose operators bind tighter than
// prec, by precedence climbing. All binary operators are left associative.
func (p *Parser) binaryExpr(prec int) Expr {
	x := p.unaryExpr()

	for {
		oprec := p.tok.Kind.Precedence()
		if oprec <= prec {
			return x
		}

		op := p.tok
		p.next() // consume operator
		y := p.binaryExpr(oprec)

		// Binary expression position starts at the left operand.
		if op.Kind.IsLogical() {
			l := newAt[*LogicalExpr](LogicalNode, x.Pos())
			l.Op, l.X, l.Y = op, x, y
			x = l
		} else {
			b := newAt[*BinaryExpr](BinaryNode, x.Pos())
			b.Op, b.X, b.Y = op, x, y
			x = b
		}
	}
}

// unaryExpr parses: ( "!" | "-" ) unaryExpr | call
func (p *Parser) unaryExpr() Expr {
	defer decNestLev(incNestLev(p))

	switch p.tok.Kind {
	case Bang, Minus:
		u := newAt[*UnaryExpr](UnaryNode, p.pos())
		u.Op = p.tok
		p.next()
		u.X = p.unaryExpr()
		return u
	default:
		return p.callExpr()
	}
}

// callExpr parses a primary expression followed by calls and property
// accesses.
func (p *Parser) callExpr() Expr {
	x := p.primaryExpr()

	for {
		switch p.tok.Kind {
		case LeftParen:
			x = p.finishCall(x)

		case Dot:
			p.next()
			g := newAt[*GetExpr](GetNode, x.Pos())
			g.X = x
			g.Sel = p.want(Identifier)
			x = g

		default:
			return x
		}
	}
}

// finishCall parses the argument list of a call to fun.
func (p *Parser) finishCall(fun Expr) Expr {
	call := newAt[*CallExpr](CallNode, fun.Pos())
	call.Fun = fun

	p.want(LeftParen)
	if p.tok.Kind != RightParen {
		call.Args = append(call.Args, p.expr())
		for p.got(Comma) {
			call.Args = append(call.Args, p.expr())
		}
	}
	p.want(RightParen, Comma)

	return call
}

// primaryExpr parses literals, names, this, super.method and (expr).
func (p *Parser) primaryExpr() Expr {
	switch p.tok.Kind {
	case Number, String, True, False, Nil:
		lit := newAt[*BasicLit](LiteralNode, p.pos())
		lit.Tok = p.tok
		p.next()
		return lit

	case Identifier:
		n := newAt[*Name](NameNode, p.pos())
		n.Tok = p.tok
		p.next()
		return n

	case This:
		t := newAt[*ThisExpr](ThisNode, p.pos())
		t.Tok = p.tok
		p.next()
		return t

	case Super:
		s := newAt[*SuperExpr](SuperNode, p.pos())
		s.Tok = p.tok
		p.next()
		p.want(Dot)
		s.Method = p.want(Identifier)
		return s

	case LeftParen:
		paren := newAt[*ParenExpr](GroupNode, p.pos())
		p.next()
		paren.X = p.expr()
		p.want(RightParen)
		return paren
	}

	p.errorAt(p.tok, expressionMsg(p.tok))
	return nil
}

func expressionMsg(got Token) string {
	msg := "expected expression, got " + got.Kind.String()
	if got.Kind != EOF && got.Text != "" {
		msg += fmt.Sprintf(" %q", got.Text)
	}
	return msg
}
