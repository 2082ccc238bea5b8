package lexer

import "tdl/internal/token"

// scanOperatorOrPunct scans punctuation and comparison operators. It
// handles the two-character operators (>=, <=, ==, !=) before falling back
// to single-character punctuation, and emits Unknown for exactly one byte
// when nothing else matches (the lexer's only error-signaling mechanism;
// it never panics or returns an error).
func (lx *Lexer) scanOperatorOrPunct() token.Token {
	start := lx.cur.mark()
	b := lx.cur.bump()

	single := func(k token.Kind) token.Token {
		return token.Token{Kind: k, Text: lx.cur.textFrom(start), Span: lx.cur.spanFrom(start)}
	}

	switch b {
	case '{':
		return single(token.LBrace)
	case '}':
		return single(token.RBrace)
	case '[':
		return single(token.LBracket)
	case ']':
		return single(token.RBracket)
	case ':':
		return single(token.Colon)
	case ',':
		return single(token.Comma)
	case '>':
		if lx.cur.peek() == '=' {
			lx.cur.bump()
			return single(token.Ge)
		}
		return single(token.Gt)
	case '<':
		if lx.cur.peek() == '=' {
			lx.cur.bump()
			return single(token.Le)
		}
		return single(token.Lt)
	case '=':
		if lx.cur.peek() == '=' {
			lx.cur.bump()
			return single(token.EqEq)
		}
		return single(token.Unknown)
	case '!':
		if lx.cur.peek() == '=' {
			lx.cur.bump()
			return single(token.NotEq)
		}
		return single(token.Unknown)
	default:
		return single(token.Unknown)
	}
}
