package source

import (
	"fmt"

	"fortio.org/safecast"
)

// File wraps one analyzed document together with a byte-offset -> line
// index built once per analysis. A TDL document is always self-contained
// (the engine does not resolve symbols across files), so unlike a
// multi-file compiler's FileSet, one File is all a single Analyze call
// ever needs.
type File struct {
	Name    string
	Content string
	// lineStarts[i] is the byte offset of the first byte of line i+2
	// (line 1 always starts at offset 0, so it is never recorded here).
	lineStarts []uint32
}

// NewFile builds a File and its line index from raw source text.
func NewFile(name, content string) *File {
	return &File{
		Name:       name,
		Content:    content,
		lineStarts: buildLineStarts(content),
	}
}

func buildLineStarts(content string) []uint32 {
	var starts []uint32
	for i := 0; i < len(content); i++ {
		if content[i] == '\n' {
			off, err := safecast.Conv[uint32](i + 1)
			if err != nil {
				panic(fmt.Errorf("source: line offset overflow: %w", err))
			}
			starts = append(starts, off)
		}
	}
	return starts
}

// Len returns the byte length of the content.
func (f *File) Len() uint32 {
	n, err := safecast.Conv[uint32](len(f.Content))
	if err != nil {
		panic(fmt.Errorf("source: content length overflow: %w", err))
	}
	return n
}

// LineCol resolves a byte offset into a 1-based (line, column) pair. Column
// counts bytes, not runes, matching the lexer's byte-oriented scanning.
func (f *File) LineCol(offset uint32) (line, column uint32) {
	// lineStarts is sorted; find the last start <= offset via binary search.
	lo, hi := 0, len(f.lineStarts)
	for lo < hi {
		mid := (lo + hi) / 2
		if f.lineStarts[mid] <= offset {
			lo = mid + 1
		} else {
			hi = mid
		}
	}
	lineIdx := lo // number of newlines strictly before offset's line start search settled
	var lineStart uint32
	if lineIdx == 0 {
		lineStart = 0
	} else {
		lineStart = f.lineStarts[lineIdx-1]
	}
	line, err := safecast.Conv[uint32](lineIdx + 1)
	if err != nil {
		panic(fmt.Errorf("source: line number overflow: %w", err))
	}
	return line, offset - lineStart + 1
}

// Span builds a Span from a byte range, resolving line/column for the start.
func (f *File) Span(start, end uint32) Span {
	line, col := f.LineCol(start)
	return Span{Line: line, Column: col, Offset: start, Length: end - start}
}

// Line returns the text of the given 1-based line number, or "" if it does
// not exist. Used by the pretty diagnostic renderer for source previews.
func (f *File) Line(n uint32) string {
	if n == 0 {
		return ""
	}
	var start uint32
	if n == 1 {
		start = 0
	} else if int(n-2) < len(f.lineStarts) {
		start = f.lineStarts[n-2]
	} else {
		return ""
	}
	end := f.Len()
	if int(n-1) < len(f.lineStarts) {
		end = f.lineStarts[n-1]
		if end > 0 && f.Content[end-1] == '\n' {
			end--
		}
	}
	if start > f.Len() {
		return ""
	}
	if end > f.Len() {
		end = f.Len()
	}
	if end < start {
		return ""
	}
	return f.Content[start:end]
}
