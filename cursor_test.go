package stacklang

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCursorConsumeWord(t *testing.T) {
	c := NewCursor("  foo bar", "test")
	assert.Equal(t, "foo", c.ConsumeWord())
	assert.Equal(t, "bar", c.ConsumeWord())
	assert.True(t, c.AtEnd())
}

func TestCursorConsumeUntilRune(t *testing.T) {
	c := NewCursor("hello/ world", "test")
	got := c.Consume(byte('/'), true, false)
	assert.Equal(t, "hello", got)
	assert.Equal(t, " world", c.Text()[c.Pos():])
}

func TestCursorConsumeUnescapes(t *testing.T) {
	c := NewCursor(`say \"hi\"'`, "test")
	got := c.Consume(byte('\''), true, false)
	assert.Equal(t, `say "hi"`, got)
}

func TestCursorSkipOneSpace(t *testing.T) {
	c := NewCursor(" x", "test")
	c.SkipOneSpace()
	assert.Equal(t, "x", c.Text()[c.Pos():])
	c2 := NewCursor("x", "test")
	c2.SkipOneSpace()
	assert.Equal(t, "x", c2.Text()[c2.Pos():])
}

func TestCursorMark(t *testing.T) {
	c := NewCursor("abcdef", "test")
	c.Consume(byte('c'), false, false)
	assert.Equal(t, "ab<--!-->cdef", c.Mark())
}

func TestCursorAtEndOnEmpty(t *testing.T) {
	c := NewCursor("", "test")
	assert.True(t, c.AtEnd())
	assert.Equal(t, "", c.ConsumeWord())
}
