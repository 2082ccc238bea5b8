// Package source carries the position data shared by every later stage of
// the pipeline: the lexer, the parser, the AST, and diagnostics all address
// text through a Span rather than holding a reference to the text itself.
package source

import "fmt"

// Span is a half-open-by-length region of source text: (line, column) mark
// the first byte for human display, Offset/Length address the same region
// in raw bytes. Line and Column are 1-based; Offset is 0-based.
type Span struct {
	Line   uint32
	Column uint32
	Offset uint32
	Length uint32
}

// End returns the exclusive byte offset one past the span.
func (s Span) End() uint32 {
	return s.Offset + s.Length
}

// Empty reports whether the span covers zero bytes.
func (s Span) Empty() bool {
	return s.Length == 0
}

// Merge combines two spans produced by the same lexer pass into one that
// starts at a's position and extends to cover b, per the engine's span
// composition rule: merge(a, b) = (a.line, a.column, a.offset, (b.offset +
// b.length) - a.offset). Parsers call this to grow a node's span as they
// consume child tokens; they never forge a Span from scratch.
func (a Span) Merge(b Span) Span {
	end := b.End()
	if end < a.Offset {
		end = a.Offset
	}
	return Span{
		Line:   a.Line,
		Column: a.Column,
		Offset: a.Offset,
		Length: end - a.Offset,
	}
}

func (s Span) String() string {
	return fmt.Sprintf("%d:%d", s.Line, s.Column)
}
