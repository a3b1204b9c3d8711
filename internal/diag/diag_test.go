package diag

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/you-not-fish/loxc/internal/syntax"
)

func TestPrinterLexicalErrors(t *testing.T) {
	t.Parallel()

	src := []byte("var a;\n\tprint \"abc")
	_, errs := syntax.Scan("t.lox", src)
	require.Len(t, errs, 1)

	var buf bytes.Buffer
	p := NewPrinter(Console{Writer: &buf}, src)
	p.ErrorList(errs)
	p.Summary("t.lox")

	want := "t.lox:2:8: error: unterminated string\n" +
		"    \tprint \"abc\n" +
		"    \t      ^\n" +
		"t.lox: 1 error\n"
	assert.Equal(t, want, buf.String())
	assert.Equal(t, 1, p.Count())
}

func TestPrinterSyntaxError(t *testing.T) {
	t.Parallel()

	src := []byte("class A { fun f( }")
	toks, _ := syntax.Scan("t.lox", src)
	_, err := syntax.Parse("t.lox", toks)
	require.Error(t, err)

	var buf bytes.Buffer
	p := NewPrinter(Console{Writer: &buf}, src)
	p.Err(fmt.Errorf("wrapped: %w", err))

	want := "t.lox:1:18: error: expected IDENTIFIER or RIGHT_PAREN, got RIGHT_BRACE \"}\"\n" +
		"    class A { fun f( }\n" +
		"                     ^\n"
	assert.Equal(t, want, buf.String())
}

func TestPrinterErrKinds(t *testing.T) {
	t.Parallel()

	src := []byte("@ #")
	_, errs := syntax.Scan("", src)

	var buf bytes.Buffer
	p := NewPrinter(Console{Writer: &buf}, src)
	p.Err(errs.Err())
	assert.Equal(t, 2, p.Count())

	buf.Reset()
	p = NewPrinter(Console{Writer: &buf}, nil)
	p.Err(errors.New("reading x.lox: file does not exist"))
	assert.Equal(t, "error: reading x.lox: file does not exist\n", buf.String())

	buf.Reset()
	p.Summary("x.lox")
	assert.Equal(t, "x.lox: 1 error\n", buf.String())
}

func TestPrinterColor(t *testing.T) {
	t.Parallel()

	var plain, colored bytes.Buffer
	NewPrinter(Console{Writer: &plain}, []byte("@")).Error(syntax.NewPos("", 1, 1), "bad")
	NewPrinter(Console{Writer: &colored, Color: true}, []byte("@")).Error(syntax.NewPos("", 1, 1), "bad")

	assert.NotContains(t, plain.String(), "\x1b[")
	assert.Contains(t, colored.String(), "\x1b[")
}

func TestPrinterNoSummaryWithoutErrors(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	NewPrinter(Console{Writer: &buf}, nil).Summary("ok.lox")
	assert.Empty(t, buf.String())
}

func TestLineAt(t *testing.T) {
	t.Parallel()

	src := []byte("one\ntwo\r\nthree\rfour")
	tests := []struct {
		n    uint32
		want string
		ok   bool
	}{
		{0, "", false},
		{1, "one", true},
		{2, "two", true},
		{3, "three", true},
		{4, "four", true},
		{5, "", false},
	}
	for _, tt := range tests {
		got, ok := lineAt(src, tt.n)
		assert.Equal(t, tt.ok, ok, "line %d", tt.n)
		assert.Equal(t, tt.want, got, "line %d", tt.n)
	}

	got, ok := lineAt([]byte("a\n"), 2)
	assert.True(t, ok)
	assert.Empty(t, got)
}

func TestIndent(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "", indent("abc", 0))
	assert.Equal(t, "  ", indent("abc", 2))
	assert.Equal(t, "\t ", indent("\tx = 1", 2))
	assert.Equal(t, "   ", indent("abc", 10), "clamped to the line")
}

func TestNewConsoleNotTerminal(t *testing.T) {
	t.Parallel()

	f, err := os.CreateTemp(t.TempDir(), "out")
	require.NoError(t, err)
	defer func() { _ = f.Close() }()

	c := NewConsole(f, false)
	assert.False(t, c.Color)
	_, err = fmt.Fprint(c.Writer, "\x1b[31mred\x1b[0m")
	require.NoError(t, err)

	data, err := os.ReadFile(f.Name())
	require.NoError(t, err)
	assert.Equal(t, "red", string(data))
}
