// Package diag renders lexical and syntax diagnostics for the terminal,
// with the offending source line and a caret under the reported column.
package diag

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-colorable"
	"github.com/mattn/go-isatty"

	"github.com/you-not-fish/loxc/internal/syntax"
)

// Console is an output stream and whether it accepts colors.
type Console struct {
	Writer io.Writer
	Color  bool
}

// NewConsole wraps f. Colors are used only when f is a terminal and
// noColor is false; otherwise escape sequences are stripped from output.
func NewConsole(f *os.File, noColor bool) Console {
	tty := isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
	if noColor || !tty {
		return Console{Writer: colorable.NewNonColorable(f)}
	}
	return Console{Writer: colorable.NewColorable(f), Color: true}
}

// Printer writes diagnostics for one source buffer.
type Printer struct {
	w   io.Writer
	src []byte

	pos   *color.Color
	label *color.Color
	caret *color.Color
	count int
}

// NewPrinter returns a Printer for diagnostics about src.
func NewPrinter(c Console, src []byte) *Printer {
	p := &Printer{
		w:     c.Writer,
		src:   src,
		pos:   color.New(color.Bold),
		label: color.New(color.FgRed, color.Bold),
		caret: color.New(color.FgGreen, color.Bold),
	}
	for _, col := range []*color.Color{p.pos, p.label, p.caret} {
		if c.Color {
			col.EnableColor()
		} else {
			col.DisableColor()
		}
	}
	return p
}

// Count returns the number of diagnostics written so far.
func (p *Printer) Count() int {
	return p.count
}

// Error writes one diagnostic at pos.
func (p *Printer) Error(pos syntax.Pos, msg string) {
	p.count++
	p.pos.Fprintf(p.w, "%s: ", pos)
	p.label.Fprint(p.w, "error: ")
	fmt.Fprintln(p.w, msg)

	line, ok := lineAt(p.src, pos.Line())
	if !ok {
		return
	}
	fmt.Fprintf(p.w, "    %s\n", line)
	fmt.Fprintf(p.w, "    %s", indent(line, int(pos.Col())-1))
	p.caret.Fprintln(p.w, "^")
}

// ErrorList writes every lexical error in errs.
func (p *Printer) ErrorList(errs syntax.ErrorList) {
	for _, e := range errs {
		p.Error(e.Pos, e.Msg)
	}
}

// Err writes err, expanding syntax errors and error lists. Other errors
// are written without a position.
func (p *Printer) Err(err error) {
	var serr *syntax.SyntaxError
	var list syntax.ErrorList
	switch {
	case errors.As(err, &serr):
		p.Error(serr.Pos, serr.Msg)
	case errors.As(err, &list):
		p.ErrorList(list)
	default:
		p.count++
		p.label.Fprint(p.w, "error: ")
		fmt.Fprintln(p.w, err)
	}
}

// lineAt returns the text of the 1-based line n, split the way the scanner
// counts lines.
func lineAt(src []byte, n uint32) (string, bool) {
	if n == 0 {
		return "", false
	}
	cur := uint32(1)
	start := 0
	for i := 0; i < len(src); i++ {
		c := src[i]
		if c != '\n' && c != '\r' {
			continue
		}
		if cur == n {
			return string(src[start:i]), true
		}
		if c == '\r' && i+1 < len(src) && src[i+1] == '\n' {
			i++
		}
		cur++
		start = i + 1
	}
	if cur == n {
		return string(src[start:]), true
	}
	return "", false
}

// indent returns blanks covering the first col bytes of line, keeping tabs
// so the caret lines up.
func indent(line string, col int) string {
	if col > len(line) {
		col = len(line)
	}
	if col < 0 {
		col = 0
	}
	var b strings.Builder
	for _, r := range line[:col] {
		if r == '\t' {
			b.WriteByte('\t')
		} else {
			b.WriteByte(' ')
		}
	}
	return b.String()
}

// Summary writes "name: n error(s)" when any diagnostics were written.
func (p *Printer) Summary(name string) {
	if p.count == 0 {
		return
	}
	noun := "errors"
	if p.count == 1 {
		noun = "error"
	}
	p.label.Fprintf(p.w, "%s: %d %s\n", name, p.count, noun)
}
