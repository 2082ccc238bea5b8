package token

import "tdl/internal/source"

// Token is one lexical unit: a Kind, the verbatim source slice that
// produced it, and the Span the lexer stamped at the moment the lexeme
// completed. Parsers never forge a Token's Span; they only copy or merge
// spans already produced by the lexer.
type Token struct {
	Kind Kind
	Text string
	Span source.Span
}

// CommentTrivia pairs a Comment-kind token's text with its span, retained
// separately so a host can attach comments to AST nodes by offset.
type CommentTrivia struct {
	Text string
	Span source.Span
}
