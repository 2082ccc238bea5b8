package parser

import (
	"tdl/internal/ast"
	"tdl/internal/token"
)

// parseName consumes a string literal naming a declaration, substituting
// ast.MissingName on failure per spec §4.3 ("a missing string ... yields a
// placeholder name ... and continues").
func (p *Parser) parseName() string {
	t, ok := p.expect(token.String, "a name string")
	if !ok {
		return ast.MissingName
	}
	return stripQuotes(t.Text)
}

// parseNetwork parses `"network" string "{" { net-body } "}"`. A missing
// opening brace yields no node at all (spec §4.3); once the brace is
// confirmed present, a partial node is always returned even if the body
// parse never reaches its closing brace.
func (p *Parser) parseNetwork() (*ast.Network, bool) {
	head, ok := p.expectKeyword("network")
	if !ok {
		return nil, false
	}
	name := p.parseName()
	if _, ok := p.expect(token.LBrace, "'{'"); !ok {
		return nil, false
	}
	n := &ast.Network{Name: name}

	for !p.at(token.RBrace) && !p.at(token.EOF) {
		if p.parseNetBodyItem(n) {
			break
		}
	}
	p.expect(token.RBrace, "'}'")
	n.Span = head.Span.Merge(p.lastSpan)
	return n, true
}

// parseNetBodyItem dispatches one `net-body` alternative, reports and skips
// a single unrecognized token, or reports true when the current token is
// the start of a sibling top-level declaration that has no place in a
// net-body, signalling the caller to stop without consuming it.
func (p *Parser) parseNetBodyItem(n *ast.Network) (stop bool) {
	t := p.peek()
	switch {
	case t.Kind == token.Keyword && t.Text == "network":
		return true
	case t.Kind == token.Keyword && t.Text == "terminal":
		if term, ok := p.parseTerminal(); ok {
			n.Terminals = append(n.Terminals, term)
		} else {
			p.resyncTop()
		}
	case t.Kind == token.Keyword && t.Text == "net":
		if net, ok := p.parseNet(); ok {
			n.Nets = append(n.Nets, net)
		} else {
			p.resyncTop()
		}
	case t.Kind == token.Keyword && t.Text == "subnetwork":
		if sub, ok := p.parseSubnetwork(); ok {
			n.Subnetworks = append(n.Subnetworks, sub)
		} else {
			p.resyncTop()
		}
	case t.Kind == token.Keyword && t.Text == "messages":
		if mc, ok := p.parseMessages(); ok {
			n.Messages = mc
		} else {
			p.resyncTop()
		}
	case t.Kind == token.Keyword && t.Text == "filters":
		if fb, ok := p.parseFilters(); ok {
			n.Filters = fb
		} else {
			p.resyncTop()
		}
	case t.Kind == token.Identifier || t.Kind == token.Keyword:
		if prop, ok := p.parseProperty(); ok {
			n.Properties = append(n.Properties, prop)
		} else {
			p.resyncTop()
		}
	default:
		p.errorf("unexpected token %q in network body", t.Text)
		p.advance()
	}
	return false
}

// parseTerminal parses `"terminal" string "{" { property } "}"`.
func (p *Parser) parseTerminal() (*ast.Terminal, bool) {
	head, ok := p.expectKeyword("terminal")
	if !ok {
		return nil, false
	}
	name := p.parseName()
	if _, ok := p.expect(token.LBrace, "'{'"); !ok {
		return nil, false
	}
	t := &ast.Terminal{Name: name}
	p.parsePropertyLoop(&t.Properties)
	p.expect(token.RBrace, "'}'")
	t.Span = head.Span.Merge(p.lastSpan)
	return t, true
}

// parseNet parses `"net" string "{" { property } "}"`.
func (p *Parser) parseNet() (*ast.Net, bool) {
	head, ok := p.expectKeyword("net")
	if !ok {
		return nil, false
	}
	name := p.parseName()
	if _, ok := p.expect(token.LBrace, "'{'"); !ok {
		return nil, false
	}
	net := &ast.Net{Name: name}
	p.parsePropertyLoop(&net.Properties)
	p.expect(token.RBrace, "'}'")
	net.Span = head.Span.Merge(p.lastSpan)
	return net, true
}

// parseSubnetwork parses `"subnetwork" string "{" { property | member } "}"`.
func (p *Parser) parseSubnetwork() (*ast.Subnetwork, bool) {
	head, ok := p.expectKeyword("subnetwork")
	if !ok {
		return nil, false
	}
	name := p.parseName()
	if _, ok := p.expect(token.LBrace, "'{'"); !ok {
		return nil, false
	}
	sub := &ast.Subnetwork{Name: name}
	for !p.at(token.RBrace) && !p.at(token.EOF) && !isDeclStart(p.peek()) {
		t := p.peek()
		switch {
		case t.Kind == token.Keyword && t.Text == "member":
			if m, ok := p.parseMember(); ok {
				sub.Members = append(sub.Members, m)
			} else {
				p.resyncTop()
			}
		case t.Kind == token.Identifier || t.Kind == token.Keyword:
			if prop, ok := p.parseProperty(); ok {
				sub.Properties = append(sub.Properties, prop)
			} else {
				p.resyncTop()
			}
		default:
			p.errorf("unexpected token %q in subnetwork body", t.Text)
			p.advance()
		}
	}
	p.expect(token.RBrace, "'}'")
	sub.Span = head.Span.Merge(p.lastSpan)
	return sub, true
}

// parseMember parses `"member" string "{" { property } "}"`.
func (p *Parser) parseMember() (*ast.Member, bool) {
	head, ok := p.expectKeyword("member")
	if !ok {
		return nil, false
	}
	name := p.parseName()
	if _, ok := p.expect(token.LBrace, "'{'"); !ok {
		return nil, false
	}
	m := &ast.Member{Name: name}
	p.parsePropertyLoop(&m.Properties)
	p.expect(token.RBrace, "'}'")
	m.Span = head.Span.Merge(p.lastSpan)
	return m, true
}

// parsePropertyLoop consumes `{ property }` up to (not including) the
// closing brace, which the caller consumes itself. Shared by terminal,
// net, and member bodies.
func (p *Parser) parsePropertyLoop(props *ast.Properties) {
	for !p.at(token.RBrace) && !p.at(token.EOF) && !isDeclStart(p.peek()) {
		t := p.peek()
		if t.Kind == token.Identifier || t.Kind == token.Keyword {
			if prop, ok := p.parseProperty(); ok {
				*props = append(*props, prop)
			} else {
				p.resyncTop()
			}
			continue
		}
		p.errorf("unexpected token %q, expected a property", t.Text)
		p.advance()
	}
}
