// Package lexer implements the TDL scanner: source text in, an ordered
// token stream (including trivia) with precise spans out. The lexer never
// raises an error; unrecognized input becomes Unknown tokens so that
// downstream stages always make progress, which matters because the
// engine is driving a live editor on possibly-malformed text.
package lexer

import (
	"tdl/internal/source"
	"tdl/internal/token"
)

// Lexer scans one source.File into a token stream on demand.
type Lexer struct {
	file *source.File
	cur  cursor
}

// New constructs a Lexer over f.
func New(f *source.File) *Lexer {
	return &Lexer{file: f, cur: newCursor(f)}
}

// Next scans and returns the next token, including trivia. After the
// logical end of input it always returns EOF.
func (lx *Lexer) Next() token.Token {
	if lx.cur.eof() {
		return lx.eofToken()
	}

	b := lx.cur.peek()
	switch {
	case b == ' ' || b == '\t' || b == '\r':
		return lx.scanWhitespace()
	case b == '\n':
		return lx.scanNewline()
	case b == '-' && lx.cur.peekAt(1) == '-':
		return lx.scanComment()
	case b == '"':
		return lx.scanString()
	case isDigit(b):
		return lx.scanNumber()
	case b == 'J' && isDigit(lx.cur.peekAt(1)):
		return lx.scanJMessage()
	case isIdentStart(b):
		return lx.scanIdentOrKeyword()
	default:
		return lx.scanOperatorOrPunct()
	}
}

// All scans the entire file and returns every token, terminated by EOF.
func (lx *Lexer) All() []token.Token {
	var toks []token.Token
	for {
		t := lx.Next()
		toks = append(toks, t)
		if t.Kind == token.EOF {
			return toks
		}
	}
}

func (lx *Lexer) eofToken() token.Token {
	sp := source.Span{Line: lx.cur.line, Offset: lx.cur.off, Length: 0}
	_, col := lx.file.LineCol(lx.cur.off)
	sp.Column = col
	return token.Token{Kind: token.EOF, Text: "", Span: sp}
}

func (lx *Lexer) scanWhitespace() token.Token {
	start := lx.cur.mark()
	for {
		b := lx.cur.peek()
		if b == ' ' || b == '\t' || b == '\r' {
			lx.cur.bump()
			continue
		}
		break
	}
	return token.Token{Kind: token.Whitespace, Text: lx.cur.textFrom(start), Span: lx.cur.spanFrom(start)}
}

func (lx *Lexer) scanNewline() token.Token {
	start := lx.cur.mark()
	lx.cur.bump()
	return token.Token{Kind: token.Newline, Text: lx.cur.textFrom(start), Span: lx.cur.spanFrom(start)}
}

// scanComment scans `--` to end-of-line, verbatim, never including the
// newline itself.
func (lx *Lexer) scanComment() token.Token {
	start := lx.cur.mark()
	lx.cur.bump()
	lx.cur.bump()
	for !lx.cur.eof() && lx.cur.peek() != '\n' {
		lx.cur.bump()
	}
	return token.Token{Kind: token.Comment, Text: lx.cur.textFrom(start), Span: lx.cur.spanFrom(start)}
}
