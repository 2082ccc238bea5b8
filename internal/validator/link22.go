package validator

import (
	"fmt"

	"tdl/internal/ast"
	"tdl/internal/diag"
	"tdl/internal/specdb"
)

const (
	ruleValidOperatingMode     = "valid-operating-mode"
	ruleValidDataRate          = "valid-data-rate"
	ruleValidUnitID            = "valid-unit-id"
	ruleValidForwarding        = "valid-forwarding"
	ruleLink22ControllerReq    = "link22-controller-required"
	ruleLink22Forwarding       = "link22-forwarding"
	ruleUnitIDUniqueness       = "unit-id-uniqueness"
)

func link22Networks(doc *ast.Document) []*ast.Network {
	var out []*ast.Network
	for _, n := range doc.Networks {
		if linkType(n) == "Link22" {
			out = append(out, n)
		}
	}
	return out
}

// checkLink22ValidRole verifies each member's role, if present, is a
// declared Link-22 role id.
func checkLink22ValidRole(r diag.Reporter, doc *ast.Document) {
	for _, n := range link22Networks(doc) {
		for _, sub := range n.Subnetworks {
			for _, m := range sub.Members {
				p, ok := m.Properties.GetAny("role")
				if !ok {
					continue
				}
				v, ok := p.Value.AsIdentifierLike()
				if !ok || !specdb.IsLink22Role(v) {
					diag.ReportRule(r, diag.SevError, p.Value.Span, ruleValidRole, "",
						fmt.Sprintf("%q is not a declared Link-22 role", p.Value.Raw))
				}
			}
		}
	}
}

// checkValidOperatingMode verifies a subnetwork's operating_mode, if
// present, names a declared operating mode.
func checkValidOperatingMode(r diag.Reporter, doc *ast.Document) {
	for _, n := range link22Networks(doc) {
		for _, sub := range n.Subnetworks {
			p, ok := sub.Properties.GetAny("operating_mode")
			if !ok {
				continue
			}
			v, ok := p.Value.AsIdentifierLike()
			if !ok || !specdb.IsOperatingMode(v) {
				diag.ReportRule(r, diag.SevError, p.Value.Span, ruleValidOperatingMode, "",
					fmt.Sprintf("%q is not a declared Link-22 operating mode", p.Value.Raw))
			}
		}
	}
}

// checkValidDataRate verifies a subnetwork's data_rate, if present, names
// a declared data rate.
func checkValidDataRate(r diag.Reporter, doc *ast.Document) {
	for _, n := range link22Networks(doc) {
		for _, sub := range n.Subnetworks {
			p, ok := sub.Properties.GetAny("data_rate")
			if !ok {
				continue
			}
			v, ok := p.Value.AsIdentifierLike()
			if !ok || !specdb.IsDataRate(v) {
				diag.ReportRule(r, diag.SevError, p.Value.Span, ruleValidDataRate, "",
					fmt.Sprintf("%q is not a declared Link-22 data rate", p.Value.Raw))
			}
		}
	}
}

// checkValidUnitID requires a member's unit_id, if present, to be a Hex
// value.
func checkValidUnitID(r diag.Reporter, doc *ast.Document) {
	for _, n := range link22Networks(doc) {
		for _, sub := range n.Subnetworks {
			for _, m := range sub.Members {
				p, ok := m.Properties.GetAny("unit_id")
				if !ok {
					continue
				}
				if p.Value.Kind != ast.VHex {
					diag.ReportRule(r, diag.SevError, p.Value.Span, ruleValidUnitID, "",
						fmt.Sprintf("unit_id must be a hex literal, got %s", p.Value.Kind))
				}
			}
		}
	}
}

// checkValidForwarding requires a member's forwarding, if present as an
// identifier, to be exactly "enabled" or "disabled".
func checkValidForwarding(r diag.Reporter, doc *ast.Document) {
	for _, n := range link22Networks(doc) {
		for _, sub := range n.Subnetworks {
			for _, m := range sub.Members {
				p, ok := m.Properties.GetAny("forwarding")
				if !ok {
					continue
				}
				v, ok := p.Value.AsIdentifierLike()
				if !ok || (v != "enabled" && v != "disabled") {
					diag.ReportRule(r, diag.SevError, p.Value.Span, ruleValidForwarding, "",
						fmt.Sprintf("forwarding must be 'enabled' or 'disabled', got %q", p.Value.Raw))
				}
			}
		}
	}
}

func memberForwardingEnabled(m *ast.Member) bool {
	p, ok := m.Properties.Get("forwarding")
	return ok && p.Raw == "enabled"
}

func memberIsController(m *ast.Member) bool {
	p, ok := m.Properties.Get("role")
	return ok && p.Raw == "Controller"
}

// checkLink22ControllerRequired: every subnetwork must contain at least
// one member with role: Controller.
func checkLink22ControllerRequired(r diag.Reporter, doc *ast.Document) {
	for _, n := range link22Networks(doc) {
		for _, sub := range n.Subnetworks {
			ok := false
			for _, m := range sub.Members {
				if memberIsController(m) {
					ok = true
					break
				}
			}
			if !ok {
				diag.ReportRule(r, diag.SevError, sub.Span, ruleLink22ControllerReq, "",
					fmt.Sprintf("subnetwork %q has no member with role Controller", sub.Name))
			}
		}
	}
}

// checkLink22Forwarding: every non-empty subnetwork must contain at least
// one member with forwarding: enabled.
func checkLink22Forwarding(r diag.Reporter, doc *ast.Document) {
	for _, n := range link22Networks(doc) {
		for _, sub := range n.Subnetworks {
			if len(sub.Members) == 0 {
				continue
			}
			ok := false
			for _, m := range sub.Members {
				if memberForwardingEnabled(m) {
					ok = true
					break
				}
			}
			if !ok {
				diag.ReportRule(r, diag.SevError, sub.Span, ruleLink22Forwarding, "",
					fmt.Sprintf("subnetwork %q has no member with forwarding enabled", sub.Name))
			}
		}
	}
}

// checkUnitIDUniqueness: two members with different names sharing the
// same unit_id within a network is a warning; the same name reused
// across subnetworks with the same unit_id is allowed.
func checkUnitIDUniqueness(r diag.Reporter, doc *ast.Document) {
	for _, n := range link22Networks(doc) {
		type seenEntry struct {
			name string
			prop ast.Property
		}
		seen := make(map[string]seenEntry)
		for _, sub := range n.Subnetworks {
			for _, m := range sub.Members {
				p, ok := m.Properties.GetAny("unit_id")
				if !ok {
					continue
				}
				key := p.Value.Raw
				prior, found := seen[key]
				if !found {
					seen[key] = seenEntry{name: m.Name, prop: p}
					continue
				}
				if prior.name != m.Name {
					diag.ReportRule(r, diag.SevWarning, p.Value.Span, ruleUnitIDUniqueness, "",
						fmt.Sprintf("unit_id %s is shared by members %q and %q", key, prior.name, m.Name))
				}
			}
		}
	}
}

// checkLink22RequiredProperty warns on a member missing role or unit_id.
func checkLink22RequiredProperty(r diag.Reporter, doc *ast.Document) {
	for _, n := range link22Networks(doc) {
		for _, sub := range n.Subnetworks {
			for _, m := range sub.Members {
				if _, ok := m.Properties.GetAny("role"); !ok {
					diag.ReportRule(r, diag.SevWarning, m.Span, ruleRequiredProperty, "",
						fmt.Sprintf("member %q has no role", m.Name))
				}
				if _, ok := m.Properties.GetAny("unit_id"); !ok {
					diag.ReportRule(r, diag.SevWarning, m.Span, ruleRequiredProperty, "",
						fmt.Sprintf("member %q has no unit_id", m.Name))
				}
			}
		}
	}
}
