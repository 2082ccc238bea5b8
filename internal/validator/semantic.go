package validator

import (
	"fmt"

	"tdl/internal/ast"
	"tdl/internal/diag"
	"tdl/internal/specdb"
)

const (
	ruleValidLinkType         = "valid-link-type"
	ruleValidClassification   = "valid-classification"
	ruleTrackNumberUniqueness = "track-number-uniqueness"
	ruleNetNumberUniqueness   = "net-number-uniqueness"
)

// checkValidLinkType runs on every network regardless of link type: the
// `link` identifier, if present, must be Link16 or Link22.
func checkValidLinkType(r diag.Reporter, doc *ast.Document) {
	for _, n := range doc.Networks {
		p, ok := n.Properties.GetAny("link")
		if !ok {
			continue
		}
		v, ok := p.Value.AsIdentifierLike()
		if !ok || (v != "Link16" && v != "Link22") {
			diag.ReportRule(r, diag.SevError, p.Value.Span, ruleValidLinkType, "",
				fmt.Sprintf("link must be 'Link16' or 'Link22', got %q", p.Value.Raw))
		}
	}
}

// checkValidClassification verifies `classification`, when present, names
// a declared classification level.
func checkValidClassification(r diag.Reporter, doc *ast.Document) {
	for _, n := range doc.Networks {
		p, ok := n.Properties.GetAny("classification")
		if !ok {
			continue
		}
		v, ok := p.Value.AsIdentifierLike()
		if !ok || !specdb.IsClassification(v) {
			diag.ReportRule(r, diag.SevError, p.Value.Span, ruleValidClassification, "",
				fmt.Sprintf("%q is not a declared classification level", p.Value.Raw))
		}
	}
}

// checkTrackNumberUniqueness forbids two terminals in the same network
// from sharing a track_number; the second and later occurrences are
// reported.
func checkTrackNumberUniqueness(r diag.Reporter, doc *ast.Document) {
	for _, n := range doc.Networks {
		seen := make(map[string]bool)
		for _, t := range n.Terminals {
			p, ok := t.Properties.GetAny("track_number")
			if !ok {
				continue
			}
			key := p.Value.Raw
			if seen[key] {
				diag.ReportRule(r, diag.SevError, p.Span, ruleTrackNumberUniqueness, "",
					fmt.Sprintf("track_number %s is already used by another terminal in network %q", key, n.Name))
				continue
			}
			seen[key] = true
		}
	}
}

// checkNetNumberUniqueness forbids two nets in the same network from
// sharing a net_number; the second and later occurrences are reported.
func checkNetNumberUniqueness(r diag.Reporter, doc *ast.Document) {
	for _, n := range doc.Networks {
		seen := make(map[string]bool)
		for _, net := range n.Nets {
			p, ok := net.Properties.GetAny("net_number")
			if !ok {
				continue
			}
			key := p.Value.Raw
			if seen[key] {
				diag.ReportRule(r, diag.SevError, p.Span, ruleNetNumberUniqueness, "",
					fmt.Sprintf("net_number %s is already used by another net in network %q", key, n.Name))
				continue
			}
			seen[key] = true
		}
	}
}
