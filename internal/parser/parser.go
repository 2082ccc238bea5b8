// Package parser implements the TDL recursive-descent parser: a
// significant-token stream in, an *ast.Document plus an ordered list of
// parse diagnostics out. Parser state is a flat, pure value
// (tokens []token.Token, cursor int, diagnostics *diag.Bag), not a class
// hierarchy; each production is a function that reads and advances that
// state and optionally reports a diagnostic. There is a single shared
// synchronization helper (sync.go) rather than one recovery routine per
// production.
package parser

import (
	"fmt"

	"tdl/internal/ast"
	"tdl/internal/diag"
	"tdl/internal/lexer"
	"tdl/internal/source"
	"tdl/internal/token"
)

// Parser holds the parse state for one document.
type Parser struct {
	tokens   []token.Token
	cursor   int
	bag      *diag.Bag
	lastSpan source.Span
}

// Result is everything Parse produces.
type Result struct {
	Document *ast.Document
	Bag      *diag.Bag
	Comments []token.CommentTrivia
}

// Parse runs the full pipeline from source text to a Document plus parse
// diagnostics: lex, filter trivia (retaining comments separately), then
// recursive-descent parse with synchronization-based error recovery. It
// never panics and always terminates, per spec §4.3's guarantees.
func Parse(text string) Result {
	f := source.NewFile("", text)
	all := lexer.New(f).All()
	toks, comments := filterTrivia(all)

	p := &Parser{tokens: toks, bag: diag.NewBag()}
	doc := p.parseDocument()
	return Result{Document: doc, Bag: p.bag, Comments: comments}
}

func (p *Parser) parseDocument() *ast.Document {
	doc := &ast.Document{}
	start := p.peek().Span
	for !p.at(token.EOF) {
		net, ok := p.parseNetwork()
		if ok {
			doc.Networks = append(doc.Networks, net)
		} else {
			before := p.cursor
			p.resyncTop()
			if p.cursor == before {
				p.advance()
			}
		}
	}
	doc.Span = start.Merge(p.lastOrCurrentSpan())
	return doc
}

func (p *Parser) lastOrCurrentSpan() source.Span {
	if p.lastSpan.Length > 0 || p.lastSpan.Offset > 0 {
		return p.lastSpan
	}
	return p.peek().Span
}

// --- token stream primitives ---

func (p *Parser) peek() token.Token {
	if p.cursor >= len(p.tokens) {
		return p.tokens[len(p.tokens)-1] // EOF sentinel is always last
	}
	return p.tokens[p.cursor]
}

func (p *Parser) peekAt(n int) token.Token {
	idx := p.cursor + n
	if idx >= len(p.tokens) {
		return p.tokens[len(p.tokens)-1]
	}
	return p.tokens[idx]
}

func (p *Parser) advance() token.Token {
	t := p.peek()
	if t.Kind != token.EOF {
		p.cursor++
	}
	p.lastSpan = t.Span
	return t
}

func (p *Parser) at(k token.Kind) bool {
	return p.peek().Kind == k
}

func (p *Parser) atKeyword(text string) bool {
	t := p.peek()
	return t.Kind == token.Keyword && t.Text == text
}

func (p *Parser) atAnyKeyword(texts ...string) bool {
	t := p.peek()
	if t.Kind != token.Keyword {
		return false
	}
	for _, want := range texts {
		if t.Text == want {
			return true
		}
	}
	return false
}

// expect consumes the current token if it matches k, else reports a syntax
// diagnostic at the current token's span and returns (zero, false). It
// never consumes on failure.
func (p *Parser) expect(k token.Kind, label string) (token.Token, bool) {
	if p.at(k) {
		return p.advance(), true
	}
	p.errorf("expected %s, got %q", label, p.peek().Text)
	return token.Token{}, false
}

func (p *Parser) expectKeyword(text string) (token.Token, bool) {
	if p.atKeyword(text) {
		return p.advance(), true
	}
	p.errorf("expected '%s', got %q", text, p.peek().Text)
	return token.Token{}, false
}

func (p *Parser) errorf(format string, args ...any) {
	diag.ReportError(diag.BagReporter{Bag: p.bag}, p.peek().Span, fmt.Sprintf(format, args...))
}
