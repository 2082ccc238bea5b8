package lexer

import (
	"tdl/internal/source"
)

// cursor is a byte position inside one source.File, plus the helpers the
// scan_* routines need to look ahead without consuming.
type cursor struct {
	file *source.File
	off  uint32
	line uint32
}

func newCursor(f *source.File) cursor {
	return cursor{file: f, off: 0, line: 1}
}

func (c *cursor) eof() bool {
	return c.off >= c.file.Len()
}

func (c *cursor) peek() byte {
	if c.eof() {
		return 0
	}
	return c.file.Content[c.off]
}

func (c *cursor) peekAt(n uint32) byte {
	if c.off+n >= c.file.Len() {
		return 0
	}
	return c.file.Content[c.off+n]
}

func (c *cursor) bump() byte {
	if c.eof() {
		return 0
	}
	b := c.file.Content[c.off]
	c.off++
	if b == '\n' {
		c.line++
	}
	return b
}

// mark captures the current offset so a scanner can later build a Span
// from mark to the cursor's present position.
type mark struct {
	off  uint32
	line uint32
}

func (c *cursor) mark() mark {
	return mark{off: c.off, line: c.line}
}

func (c *cursor) spanFrom(m mark) source.Span {
	_, col := c.file.LineCol(m.off)
	return source.Span{Line: m.line, Column: col, Offset: m.off, Length: c.off - m.off}
}

func (c *cursor) textFrom(m mark) string {
	return c.file.Content[m.off:c.off]
}
