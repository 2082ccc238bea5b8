package parser

import (
	"tdl/internal/ast"
	"tdl/internal/token"
)

var compareOps = map[token.Kind]ast.CompareOp{
	token.Ge:    ast.OpGe,
	token.Le:    ast.OpLe,
	token.Gt:    ast.OpGt,
	token.Lt:    ast.OpLt,
	token.EqEq:  ast.OpEqEq,
	token.NotEq: ast.OpNotEq,
}

// parseFilters parses `"filters" "{" { ("inbound"|"outbound") "{" { rule } "}" } "}"`.
func (p *Parser) parseFilters() (*ast.FilterBlock, bool) {
	head, ok := p.expectKeyword("filters")
	if !ok {
		return nil, false
	}
	if _, ok := p.expect(token.LBrace, "'{'"); !ok {
		return nil, false
	}
	fb := &ast.FilterBlock{}
	for !p.at(token.RBrace) && !p.at(token.EOF) && !isDeclStart(p.peek()) {
		switch {
		case p.atKeyword("inbound"):
			p.advance()
			rules := p.parseRuleBody()
			fb.Inbound = append(fb.Inbound, rules...)
		case p.atKeyword("outbound"):
			p.advance()
			rules := p.parseRuleBody()
			fb.Outbound = append(fb.Outbound, rules...)
		default:
			p.errorf("expected 'inbound' or 'outbound', got %q", p.peek().Text)
			p.advance()
		}
	}
	p.expect(token.RBrace, "'}'")
	fb.Span = head.Span.Merge(p.lastSpan)
	return fb, true
}

// parseRuleBody parses the `"{" { rule } "}"` body of one inbound/outbound
// section.
func (p *Parser) parseRuleBody() []*ast.FilterRule {
	if _, ok := p.expect(token.LBrace, "'{'"); !ok {
		return nil
	}
	var rules []*ast.FilterRule
	for !p.at(token.RBrace) && !p.at(token.EOF) && !isDeclStart(p.peek()) {
		if p.atAnyKeyword("accept", "drop") {
			if rule, ok := p.parseFilterRule(); ok {
				rules = append(rules, rule)
			} else {
				p.resyncTop()
			}
			continue
		}
		p.errorf("expected 'accept' or 'drop', got %q", p.peek().Text)
		p.advance()
	}
	p.expect(token.RBrace, "'}'")
	return rules
}

// parseFilterRule parses `("accept"|"drop") j-message [ "where" "{" cond "}" ]`.
func (p *Parser) parseFilterRule() (*ast.FilterRule, bool) {
	actionTok := p.advance()
	action := ast.ActionDrop
	if actionTok.Text == "accept" {
		action = ast.ActionAccept
	}
	idTok, ok := p.expect(token.JMessage, "a J-message id")
	if !ok {
		return nil, false
	}
	rule := &ast.FilterRule{Action: action, MessageID: idTok.Text, Span: actionTok.Span.Merge(idTok.Span)}
	if p.atKeyword("where") {
		where, ok := p.parseWhereClause()
		if ok {
			rule.Where = where
			rule.Span = actionTok.Span.Merge(where.Span)
		}
	}
	return rule, true
}

// parseWhereClause parses `"where" "{" cond "}"`.
func (p *Parser) parseWhereClause() (*ast.WhereClause, bool) {
	head, ok := p.expectKeyword("where")
	if !ok {
		return nil, false
	}
	if _, ok := p.expect(token.LBrace, "'{'"); !ok {
		return &ast.WhereClause{Span: head.Span.Merge(p.lastOrCurrentSpan())}, false
	}
	cond, ok := p.parseCondition()
	if !ok {
		p.resyncTo(func(t token.Token) bool { return t.Kind == token.RBrace })
	}
	p.expect(token.RBrace, "'}'")
	return &ast.WhereClause{Condition: cond, Span: head.Span.Merge(p.lastSpan)}, true
}

// parseCondition parses `field op value` where field is an identifier or
// keyword and op is one of the six comparison operators.
func (p *Parser) parseCondition() (ast.Condition, bool) {
	fieldTok := p.peek()
	if fieldTok.Kind != token.Identifier && fieldTok.Kind != token.Keyword {
		p.errorf("expected a field name, got %q", fieldTok.Text)
		return ast.Condition{}, false
	}
	p.advance()
	op, ok := compareOps[p.peek().Kind]
	if !ok {
		p.errorf("expected a comparison operator, got %q", p.peek().Text)
		return ast.Condition{}, false
	}
	p.advance()
	valTok := p.peek()
	if valTok.Kind == token.LBrace || valTok.Kind == token.EOF {
		p.errorf("expected a comparison value, got %q", valTok.Text)
		return ast.Condition{}, false
	}
	p.advance()
	return ast.Condition{
		Field:     fieldTok.Text,
		Op:        op,
		ValueText: valTok.Text,
		Span:      fieldTok.Span.Merge(valTok.Span),
	}, true
}
