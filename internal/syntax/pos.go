package syntax

import "strconv"

// Pos is a line and column in a named source. Columns count bytes from 1.
// The zero Pos is not a valid position.
type Pos struct {
	filename string
	line     uint32
	col      uint32
}

func NewPos(filename string, line, col uint32) Pos {
	return Pos{filename: filename, line: line, col: col}
}

func (p Pos) Filename() string { return p.filename }
func (p Pos) Line() uint32     { return p.line }
func (p Pos) Col() uint32      { return p.col }

// IsValid reports whether p has a line number.
func (p Pos) IsValid() bool { return p.line > 0 }

// Compare orders p and q by line, then column, returning -1, 0 or +1.
// File names are ignored.
func (p Pos) Compare(q Pos) int {
	switch {
	case p.line < q.line:
		return -1
	case p.line > q.line:
		return +1
	case p.col < q.col:
		return -1
	case p.col > q.col:
		return +1
	}
	return 0
}

// Before reports whether p sorts before q.
func (p Pos) Before(q Pos) bool { return p.Compare(q) < 0 }

// String formats p as file:line:col, dropping the file part when the name
// is empty.
func (p Pos) String() string {
	b := make([]byte, 0, len(p.filename)+16)
	if p.filename != "" {
		b = append(b, p.filename...)
		b = append(b, ':')
	}
	b = strconv.AppendUint(b, uint64(p.line), 10)
	b = append(b, ':')
	b = strconv.AppendUint(b, uint64(p.col), 10)
	return string(b)
}
