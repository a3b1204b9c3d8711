package syntax

import "unicode/utf8"

// source is a character reader with position tracking over an in-memory
// buffer. Loading the buffer is the caller's business.
type source struct {
	// Input
	buf      []byte // entire source
	filename string // source file name

	// Position of ch
	line uint32 // 1-based line number
	col  uint32 // 0-based byte offset within the line
	offs int    // byte offset of ch in buf

	// Current state
	ch    rune // current character, -1 at EOF
	width int  // byte width of ch, 0 at EOF
}

// init resets s to read buf from the beginning.
func (s *source) init(filename string, buf []byte) {
	*s = source{
		buf:      buf,
		filename: filename,
		line:     1,
	}
	s.read()
}

// read decodes the character at s.offs into s.ch without moving.
func (s *source) read() {
	if s.offs >= len(s.buf) {
		s.ch, s.width = -1, 0
		return
	}
	if b := s.buf[s.offs]; b < utf8.RuneSelf {
		s.ch, s.width = rune(b), 1
		return
	}
	// Invalid encodings come back as (RuneError, 1) and are rejected by
	// the scanner like any other unexpected character.
	s.ch, s.width = utf8.DecodeRune(s.buf[s.offs:])
}

// nextch advances past the current character and updates the position.
//
// A '\n' or a lone '\r' ends a line; in "\r\n" only the '\n' does.
func (s *source) nextch() {
	if s.ch < 0 {
		return
	}
	switch {
	case s.ch == '\n', s.ch == '\r' && s.peek() != '\n':
		s.line++
		s.col = 0
	default:
		s.col += uint32(s.width)
	}
	s.offs += s.width
	s.read()
}

// peek returns the character after ch without consuming anything,
// or -1 if there is none.
func (s *source) peek() rune {
	next := s.offs + s.width
	if s.ch < 0 || next >= len(s.buf) {
		return -1
	}
	if b := s.buf[next]; b < utf8.RuneSelf {
		return rune(b)
	}
	r, _ := utf8.DecodeRune(s.buf[next:])
	return r
}

// segment returns the source text from start up to, not including, ch.
func (s *source) segment(start int) string {
	return string(s.buf[start:s.offs])
}

// pos returns the display position of ch.
func (s *source) pos() Pos {
	return NewPos(s.filename, s.line, s.col+1)
}

// Character classification helpers

// isLetter reports whether r is a letter (a-z, A-Z, or _).
func isLetter(r rune) bool {
	return 'a' <= r && r <= 'z' || 'A' <= r && r <= 'Z' || r == '_'
}

// isDigit reports whether r is a decimal digit (0-9).
func isDigit(r rune) bool {
	return '0' <= r && r <= '9'
}

// isWhitespace reports whether r is a blank that does not end a line.
func isWhitespace(r rune) bool {
	return r == ' ' || r == '\t'
}

// isNewline reports whether r ends a line.
func isNewline(r rune) bool {
	return r == '\n' || r == '\r'
}
