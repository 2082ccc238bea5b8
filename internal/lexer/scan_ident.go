package lexer

import "tdl/internal/token"

// scanIdentOrKeyword scans an identifier-start run and classifies the
// result as Boolean, Keyword, or Identifier.
func (lx *Lexer) scanIdentOrKeyword() token.Token {
	start := lx.cur.mark()
	lx.cur.bump()
	for isIdentContinue(lx.cur.peek()) {
		lx.cur.bump()
	}
	text := lx.cur.textFrom(start)

	kind := token.Identifier
	switch {
	case text == "true" || text == "false":
		kind = token.Boolean
	case token.IsKeyword(text):
		kind = token.Keyword
	}
	return token.Token{Kind: kind, Text: text, Span: lx.cur.spanFrom(start)}
}

// scanJMessage scans the lexeme `J <digits> [ / <digits> ]`. It is only
// invoked once the dispatcher has confirmed the current byte is 'J'
// immediately followed by a digit.
func (lx *Lexer) scanJMessage() token.Token {
	start := lx.cur.mark()
	lx.cur.bump() // 'J'
	for isDigit(lx.cur.peek()) {
		lx.cur.bump()
	}
	if lx.cur.peek() == '/' && isDigit(lx.cur.peekAt(1)) {
		lx.cur.bump() // '/'
		for isDigit(lx.cur.peek()) {
			lx.cur.bump()
		}
	}
	return token.Token{Kind: token.JMessage, Text: lx.cur.textFrom(start), Span: lx.cur.spanFrom(start)}
}
