package syntax

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

var (
	// ErrExhausted is reported when the parser is asked to advance past
	// the last token. A well-formed token sequence never triggers it.
	ErrExhausted = errors.New("token sequence exhausted")

	// ErrNoEOF is reported when a token sequence does not end in EOF.
	ErrNoEOF = errors.New("token sequence not terminated by EOF")
)

// Error is a lexical diagnostic.
type Error struct {
	Pos Pos
	Msg string
}

func (e *Error) Error() string {
	return e.Pos.String() + ": " + e.Msg
}

// ErrorList is an ordered list of lexical diagnostics.
type ErrorList []*Error

// Add appends an error with the given position and message.
func (l *ErrorList) Add(pos Pos, msg string) {
	*l = append(*l, &Error{Pos: pos, Msg: msg})
}

func (l ErrorList) Len() int      { return len(l) }
func (l ErrorList) Swap(i, j int) { l[i], l[j] = l[j], l[i] }
func (l ErrorList) Less(i, j int) bool {
	return l[i].Pos.Before(l[j].Pos)
}

// Sort sorts the list by position.
func (l ErrorList) Sort() {
	sort.Stable(l)
}

func (l ErrorList) Error() string {
	switch len(l) {
	case 0:
		return "no errors"
	case 1:
		return l[0].Error()
	}
	var b strings.Builder
	b.WriteString(l[0].Error())
	fmt.Fprintf(&b, " (and %d more errors)", len(l)-1)
	return b.String()
}

// Err returns l as an error, or nil if the list is empty.
func (l ErrorList) Err() error {
	if len(l) == 0 {
		return nil
	}
	return l
}

// SyntaxError is a fatal parse error.
type SyntaxError struct {
	Pos      Pos
	Expected []Kind // kinds the grammar would have accepted
	Got      Kind   // kind of the offending token
	Text     string // text of the offending token
	Msg      string
}

func (e *SyntaxError) Error() string {
	return e.Pos.String() + ": " + e.Msg
}

// Expects reports whether k is among the kinds the parser wanted.
func (e *SyntaxError) Expects(k Kind) bool {
	for _, x := range e.Expected {
		if x == k {
			return true
		}
	}
	return false
}

// expectedMsg formats "expected A or B, got C".
func expectedMsg(want []Kind, got Token) string {
	names := make([]string, len(want))
	for i, k := range want {
		names[i] = k.String()
	}
	msg := "expected " + strings.Join(names, " or ") + ", got " + got.Kind.String()
	if got.Kind != EOF && got.Text != "" {
		msg += fmt.Sprintf(" %q", got.Text)
	}
	return msg
}
