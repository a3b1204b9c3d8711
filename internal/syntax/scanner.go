package syntax

import "fmt"

// ErrorHandler is called for each lexical error as it is recorded.
type ErrorHandler func(pos Pos, msg string)

// ScanOption configures a Scanner.
type ScanOption func(*Scanner)

// WithMaxErrors bounds the number of errors kept by the scanner.
// Errors past the bound are counted but not stored. Zero means unbounded.
func WithMaxErrors(n int) ScanOption {
	return func(s *Scanner) {
		if n > 0 {
			s.maxErrors = n
		}
	}
}

// WithErrorHandler registers h to be called for every lexical error,
// including those dropped by WithMaxErrors.
func WithErrorHandler(h ErrorHandler) ScanOption {
	return func(s *Scanner) {
		s.errh = h
	}
}

// Scanner performs lexical analysis on Lox source code.
//
// A Scanner is used once: Scan runs it to completion.
type Scanner struct {
	source // embedded character reader

	tokens []Token

	// Error handling
	errors    ErrorList
	hadError  bool
	maxErrors int
	dropped   int
	errh      ErrorHandler
}

// NewScanner creates a Scanner over src.
func NewScanner(filename string, src []byte, opts ...ScanOption) *Scanner {
	s := &Scanner{}
	s.source.init(filename, src)
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Scan tokenizes src and returns the tokens along with any lexical errors.
// The token slice always ends in exactly one EOF token.
func Scan(filename string, src []byte, opts ...ScanOption) ([]Token, ErrorList) {
	return NewScanner(filename, src, opts...).Scan()
}

// Scan runs the scanner to the end of the input.
func (s *Scanner) Scan() ([]Token, ErrorList) {
	for s.next() {
	}
	return s.tokens, s.errors
}

// HadError reports whether any lexical error was seen.
func (s *Scanner) HadError() bool {
	return s.hadError
}

// Errors returns the recorded lexical errors.
func (s *Scanner) Errors() ErrorList {
	return s.errors
}

// Dropped returns the number of errors not stored because of WithMaxErrors.
func (s *Scanner) Dropped() int {
	return s.dropped
}

// next scans one token, or skips one blank, newline or comment.
// It returns false once EOF has been emitted.
func (s *Scanner) next() bool {
	switch {
	case s.ch < 0:
		s.emit(EOF, s.offs, s.line, s.col)
		return false

	case isWhitespace(s.ch), isNewline(s.ch):
		s.nextch()

	case isLetter(s.ch):
		s.scanIdent()

	case isDigit(s.ch):
		s.scanNumber()

	case s.ch == '"':
		s.scanString()

	default:
		s.scanOperator()
	}
	return true
}

// emit appends a token covering buf[start:offs] that began at line:col.
func (s *Scanner) emit(kind Kind, start int, line, col uint32) {
	text := s.segment(start)
	s.tokens = append(s.tokens, Token{
		Kind:   kind,
		Text:   text,
		Line:   line,
		Column: col,
		Length: uint32(len(text)),
		Offset: start,
	})
}

// errorAt records a lexical error.
func (s *Scanner) errorAt(pos Pos, msg string) {
	s.hadError = true
	if s.errh != nil {
		s.errh(pos, msg)
	}
	if s.maxErrors > 0 && len(s.errors) >= s.maxErrors {
		s.dropped++
		return
	}
	s.errors.Add(pos, msg)
}

// scanIdent scans an identifier or keyword.
func (s *Scanner) scanIdent() {
	start, line, col := s.offs, s.line, s.col
	for isLetter(s.ch) || isDigit(s.ch) {
		s.nextch()
	}
	s.emit(LookupKeyword(s.segment(start)), start, line, col)
}

// scanNumber scans a decimal number with an optional fraction.
// A '.' not followed by a digit is left for the next token.
func (s *Scanner) scanNumber() {
	start, line, col := s.offs, s.line, s.col
	s.scanDigits()
	if s.ch == '.' && isDigit(s.peek()) {
		s.nextch()
		s.scanDigits()
	}
	s.emit(Number, start, line, col)
}

func (s *Scanner) scanDigits() {
	for isDigit(s.ch) {
		s.nextch()
	}
}

// scanString scans a string literal. The token text is the raw content
// between the quotes; a backslash keeps the following character in the
// literal.
func (s *Scanner) scanString() {
	open := s.pos()
	s.nextch() // skip opening "
	start, line, col := s.offs, s.line, s.col

	for {
		switch s.ch {
		case '"':
			s.emit(String, start, line, col)
			s.nextch()
			return

		case '\\':
			s.nextch()
			if s.ch >= 0 {
				s.nextch()
			}

		case -1:
			s.errorAt(open, "unterminated string")
			return

		default:
			s.nextch()
		}
	}
}

// scanOperator scans punctuation and operators, skips line comments,
// and reports anything else as an unexpected character.
func (s *Scanner) scanOperator() {
	start, line, col := s.offs, s.line, s.col
	pos := s.pos()
	ch := s.ch
	s.nextch()

	var kind Kind
	switch ch {
	case '(':
		kind = LeftParen
	case ')':
		kind = RightParen
	case '{':
		kind = LeftBrace
	case '}':
		kind = RightBrace
	case ',':
		kind = Comma
	case '.':
		kind = Dot
	case '-':
		kind = Minus
	case '+':
		kind = Plus
	case ';':
		kind = Semicolon
	case '*':
		kind = Star
	case '/':
		if s.ch == '/' {
			s.skipLineComment()
			return
		}
		kind = Slash
	case '!':
		kind = s.withEqual(BangEqual, Bang)
	case '=':
		kind = s.withEqual(EqualEqual, Equal)
	case '<':
		kind = s.withEqual(LessEqual, Less)
	case '>':
		kind = s.withEqual(GreaterEqual, Greater)
	default:
		s.errorAt(pos, fmt.Sprintf("unexpected character %q", ch))
		return
	}
	s.emit(kind, start, line, col)
}

// withEqual consumes a following '=' and returns two, or returns one.
func (s *Scanner) withEqual(two, one Kind) Kind {
	if s.ch == '=' {
		s.nextch()
		return two
	}
	return one
}

// skipLineComment skips to, but not past, the end of the line.
func (s *Scanner) skipLineComment() {
	for s.ch >= 0 && !isNewline(s.ch) {
		s.nextch()
	}
}
