package syntax

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPosString(t *testing.T) {
	tests := []struct {
		pos  Pos
		want string
	}{
		{NewPos("test.lox", 10, 5), "test.lox:10:5"},
		{NewPos("dir/main.lox", 1, 1), "dir/main.lox:1:1"},
		{NewPos("", 3, 7), "3:7"},
		{NewPos("<stdin>", 2, 4), "<stdin>:2:4"},
		{Pos{}, "0:0"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.pos.String())
	}
}

func TestPosAccessors(t *testing.T) {
	p := NewPos("a.lox", 42, 13)
	assert.Equal(t, "a.lox", p.Filename())
	assert.Equal(t, uint32(42), p.Line())
	assert.Equal(t, uint32(13), p.Col())
	assert.True(t, p.IsValid())

	assert.False(t, Pos{}.IsValid())
	assert.False(t, NewPos("a.lox", 0, 5).IsValid())
	assert.True(t, NewPos("", 1, 0).IsValid(), "line alone makes a position valid")
}

func TestPosCompare(t *testing.T) {
	tests := []struct {
		p, q Pos
		want int
	}{
		{NewPos("a.lox", 1, 1), NewPos("a.lox", 1, 2), -1},
		{NewPos("a.lox", 1, 9), NewPos("a.lox", 2, 1), -1},
		{NewPos("a.lox", 2, 1), NewPos("a.lox", 1, 9), +1},
		{NewPos("a.lox", 3, 4), NewPos("a.lox", 3, 3), +1},
		{NewPos("a.lox", 3, 3), NewPos("b.lox", 3, 3), 0},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.p.Compare(tt.q), "%s vs %s", tt.p, tt.q)
		assert.Equal(t, tt.want < 0, tt.p.Before(tt.q), "%s before %s", tt.p, tt.q)
	}
}
