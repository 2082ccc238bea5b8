package parser

import (
	"tdl/internal/ast"
	"tdl/internal/token"
)

// parseMessages parses `"messages" "{" { msg-entry } "}"`.
func (p *Parser) parseMessages() (*ast.MessageCatalog, bool) {
	head, ok := p.expectKeyword("messages")
	if !ok {
		return nil, false
	}
	if _, ok := p.expect(token.LBrace, "'{'"); !ok {
		return nil, false
	}
	mc := &ast.MessageCatalog{}
	for !p.at(token.RBrace) && !p.at(token.EOF) && !isDeclStart(p.peek()) {
		if p.at(token.JMessage) {
			if entry, ok := p.parseMessageEntry(); ok {
				mc.Entries = append(mc.Entries, entry)
			} else {
				p.resyncTop()
			}
			continue
		}
		p.errorf("expected a J-message id, got %q", p.peek().Text)
		p.advance()
	}
	p.expect(token.RBrace, "'}'")
	mc.Span = head.Span.Merge(p.lastSpan)
	return mc, true
}

// parseMessageEntry parses `j-message "{" { property } "}"`.
func (p *Parser) parseMessageEntry() (*ast.MessageEntry, bool) {
	idTok, ok := p.expect(token.JMessage, "a J-message id")
	if !ok {
		return nil, false
	}
	if _, ok := p.expect(token.LBrace, "'{'"); !ok {
		return nil, false
	}
	entry := &ast.MessageEntry{MessageID: idTok.Text}
	p.parsePropertyLoop(&entry.Properties)
	p.expect(token.RBrace, "'}'")
	entry.Span = idTok.Span.Merge(p.lastSpan)
	return entry, true
}
