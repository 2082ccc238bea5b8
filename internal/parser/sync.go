package parser

import "tdl/internal/token"

// declStartKeywords are the six keywords that begin a top-level or
// net-body declaration; they double as synchronization points per spec
// §4.3.
var declStartKeywords = []string{
	"network", "terminal", "net", "subnetwork", "messages", "filters",
}

func isDeclStart(t token.Token) bool {
	if t.Kind != token.Keyword {
		return false
	}
	for _, k := range declStartKeywords {
		if t.Text == k {
			return true
		}
	}
	return false
}

// resyncTop recovers from a failed top-level (network) parse: advance
// until '}' (consumed) or a declaration-start keyword or EOF.
func (p *Parser) resyncTop() {
	p.resyncTo(isDeclStart)
}

// resyncTo advances the cursor until the current token is '}' (which is
// then consumed), the predicate matches (left unconsumed, so the caller's
// enclosing loop sees it), or EOF is reached. This is the single shared
// recovery helper every production that can fail falls back to.
func (p *Parser) resyncTo(isSync func(token.Token) bool) {
	for {
		t := p.peek()
		if t.Kind == token.EOF {
			return
		}
		if t.Kind == token.RBrace {
			p.advance()
			return
		}
		if isSync(t) {
			return
		}
		p.advance()
	}
}

// filterTrivia splits a full token stream (as produced by lexer.All) into
// the significant tokens the parser consumes and a side list of comments,
// per spec §4.3: trivia is dropped by the parser, not by the lexer, and
// comments are retained separately for a host to attach to AST nodes.
func filterTrivia(all []token.Token) ([]token.Token, []token.CommentTrivia) {
	sig := make([]token.Token, 0, len(all))
	var comments []token.CommentTrivia
	for _, t := range all {
		switch t.Kind {
		case token.Comment:
			comments = append(comments, token.CommentTrivia{Text: t.Text, Span: t.Span})
		case token.Whitespace, token.Newline:
			// dropped
		default:
			sig = append(sig, t)
		}
	}
	if len(sig) == 0 || sig[len(sig)-1].Kind != token.EOF {
		sig = append(sig, token.Token{Kind: token.EOF})
	}
	return sig, comments
}
