// Package syntax implements lexical and syntactic analysis for the Lox
// scripting language.
package syntax

import "fmt"

// Kind represents the type of a lexical token.
type Kind uint8

const (
	// Special tokens
	EOF Kind = iota // end of input

	// Single-character tokens
	LeftParen  // (
	RightParen // )
	LeftBrace  // {
	RightBrace // }
	Comma      // ,
	Dot        // .
	Minus      // -
	Plus       // +
	Semicolon  // ;
	Slash      // /
	Star       // *

	// One or two character tokens
	Bang         // !
	BangEqual    // !=
	Equal        // =
	EqualEqual   // ==
	Greater      // >
	GreaterEqual // >=
	Less         // <
	LessEqual    // <=

	// Literals
	Identifier // foo, Bar, _baz
	String     // "hello"
	Number     // 123, 4.5

	// Keywords
	And
	Class
	Else
	False
	Fun
	For
	If
	Nil
	Or
	Print
	Return
	Super
	This
	True
	Var
	While

	kindCount
)

// kindNames maps kinds to their string representation.
var kindNames = [...]string{
	EOF: "EOF",

	LeftParen:  "LEFT_PAREN",
	RightParen: "RIGHT_PAREN",
	LeftBrace:  "LEFT_BRACE",
	RightBrace: "RIGHT_BRACE",
	Comma:      "COMMA",
	Dot:        "DOT",
	Minus:      "MINUS",
	Plus:       "PLUS",
	Semicolon:  "SEMICOLON",
	Slash:      "SLASH",
	Star:       "STAR",

	Bang:         "BANG",
	BangEqual:    "BANG_EQUAL",
	Equal:        "EQUAL",
	EqualEqual:   "EQUAL_EQUAL",
	Greater:      "GREATER",
	GreaterEqual: "GREATER_EQUAL",
	Less:         "LESS",
	LessEqual:    "LESS_EQUAL",

	Identifier: "IDENTIFIER",
	String:     "STRING",
	Number:     "NUMBER",

	And:    "AND",
	Class:  "CLASS",
	Else:   "ELSE",
	False:  "FALSE",
	Fun:    "FUN",
	For:    "FOR",
	If:     "IF",
	Nil:    "NIL",
	Or:     "OR",
	Print:  "PRINT",
	Return: "RETURN",
	Super:  "SUPER",
	This:   "THIS",
	True:   "TRUE",
	Var:    "VAR",
	While:  "WHILE",
}

// String returns the upper-case name of the kind.
func (k Kind) String() string {
	if k < kindCount {
		return kindNames[k]
	}
	return fmt.Sprintf("kind(%d)", k)
}

// Precedence returns the binding power of k as a binary operator.
// Returns 0 for non-operators.
// Precedence levels (higher = binds tighter):
//
//	1: or
//	2: and
//	3: == !=
//	4: < <= > >=
//	5: + -
//	6: * /
func (k Kind) Precedence() int {
	switch k {
	case Or:
		return 1
	case And:
		return 2
	case EqualEqual, BangEqual:
		return 3
	case Less, LessEqual, Greater, GreaterEqual:
		return 4
	case Plus, Minus:
		return 5
	case Star, Slash:
		return 6
	}
	return 0
}

// IsKeyword reports whether k is a reserved word.
func (k Kind) IsKeyword() bool {
	return k >= And && k <= While
}

// IsLiteral reports whether k is an identifier, string or number.
func (k Kind) IsLiteral() bool {
	return k >= Identifier && k <= Number
}

// IsOperator reports whether k is an operator or punctuation token.
func (k Kind) IsOperator() bool {
	return k >= LeftParen && k <= LessEqual
}

// IsLogical reports whether k is a short-circuit operator.
func (k Kind) IsLogical() bool {
	return k == And || k == Or
}

// keywords maps reserved words to their kind. Matching is exact and
// case-sensitive.
var keywords = map[string]Kind{
	"and":    And,
	"class":  Class,
	"else":   Else,
	"false":  False,
	"for":    For,
	"fun":    Fun,
	"if":     If,
	"nil":    Nil,
	"or":     Or,
	"print":  Print,
	"return": Return,
	"super":  Super,
	"this":   This,
	"true":   True,
	"var":    Var,
	"while":  While,
}

// LookupKeyword returns the keyword kind for ident, or Identifier if ident
// is not reserved.
func LookupKeyword(ident string) Kind {
	if k, ok := keywords[ident]; ok {
		return k
	}
	return Identifier
}

// Token is a single lexical unit.
//
// Text is the slice of source the token covers. For string literals the
// quotes are excluded and Column, Offset and Length describe the content
// between them. Length always equals len(Text).
type Token struct {
	Kind   Kind
	Text   string
	Line   uint32 // 1-based
	Column uint32 // 0-based byte offset within Line
	Length uint32
	Offset int // byte offset into the source
}

// Pos returns the display position of the token's first character.
func (t Token) Pos(filename string) Pos {
	return NewPos(filename, t.Line, t.Column+1)
}

// String returns a compact "KIND text" form for diagnostics.
func (t Token) String() string {
	if t.Kind == EOF {
		return "EOF"
	}
	return fmt.Sprintf("%s %q", t.Kind, t.Text)
}
