package lexer

import "tdl/internal/token"

var durationSuffixes = []string{"min", "ms", "h", "s"}

// scanNumber scans a decimal or hex number and promotes it to Percent or
// Duration when the appropriate suffix follows, per the longest-match
// tokenization rules: 0x/0X with at least one hex digit is HexNumber;
// digits optionally followed by '.' and more digits is Number; a trailing
// '%' promotes to Percent; a trailing s|ms|min|h promotes to Duration, but
// only when followed by a non-identifier-continue byte (or EOF) so that an
// identifier like "sec" is not mistaken for a duration.
func (lx *Lexer) scanNumber() token.Token {
	start := lx.cur.mark()

	if lx.cur.peek() == '0' && (lx.cur.peekAt(1) == 'x' || lx.cur.peekAt(1) == 'X') {
		save := lx.cur
		lx.cur.bump()
		lx.cur.bump()
		hexStart := lx.cur.off
		for isHexDigit(lx.cur.peek()) {
			lx.cur.bump()
		}
		if lx.cur.off > hexStart {
			return token.Token{Kind: token.HexNumber, Text: lx.cur.textFrom(start), Span: lx.cur.spanFrom(start)}
		}
		// No hex digit followed "0x": not actually hex, rescan as plain decimal.
		lx.cur = save
	}

	for isDigit(lx.cur.peek()) {
		lx.cur.bump()
	}
	if lx.cur.peek() == '.' && isDigit(lx.cur.peekAt(1)) {
		lx.cur.bump()
		for isDigit(lx.cur.peek()) {
			lx.cur.bump()
		}
	}

	kind := token.Number
	if lx.cur.peek() == '%' {
		lx.cur.bump()
		kind = token.Percent
	} else if suf, ok := lx.matchDurationSuffix(); ok {
		for range suf {
			lx.cur.bump()
		}
		kind = token.Duration
	}

	return token.Token{Kind: kind, Text: lx.cur.textFrom(start), Span: lx.cur.spanFrom(start)}
}

// matchDurationSuffix looks ahead (without consuming) for the longest
// duration suffix starting at the cursor, requiring that the byte after the
// suffix not continue an identifier.
func (lx *Lexer) matchDurationSuffix() (string, bool) {
	for _, suf := range durationSuffixes {
		n := uint32(len(suf))
		matched := true
		for i := uint32(0); i < n; i++ {
			if lx.cur.peekAt(i) != suf[i] {
				matched = false
				break
			}
		}
		if !matched {
			continue
		}
		after := lx.cur.peekAt(n)
		if !isIdentContinue(after) {
			return suf, true
		}
	}
	return "", false
}
