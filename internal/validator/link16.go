package validator

import (
	"fmt"

	"tdl/internal/ast"
	"tdl/internal/diag"
	"tdl/internal/specdb"
)

const (
	ruleNCSRequired            = "ncs-required"
	ruleValidRole              = "valid-role"
	ruleValidPlatformType      = "valid-platform-type"
	ruleValidTrackNumber       = "valid-track-number"
	ruleValidNetNumber         = "valid-net-number"
	ruleValidTSDF              = "valid-tsdf"
	ruleTotalTSDFBudget        = "total-tsdf-budget"
	ruleStackingConsistency    = "stacking-consistency"
	ruleNPGSubscriberCoverage  = "npg-subscriber-coverage"
	rulePPLIRequired           = "ppli-required"
	ruleValidNPGReference      = "valid-npg-reference"
	ruleValidJMessageReference = "valid-j-message-reference"
	ruleMessageNPGMatch        = "message-npg-match"
	ruleParticipantReference   = "participant-reference"
	ruleRequiredProperty       = "required-property"
)

func link16Networks(doc *ast.Document) []*ast.Network {
	var out []*ast.Network
	for _, n := range doc.Networks {
		if linkType(n) == "Link16" {
			out = append(out, n)
		}
	}
	return out
}

// checkNCSRequired requires exactly one Link-16 terminal with role:
// NetControlStation per network.
func checkNCSRequired(r diag.Reporter, doc *ast.Document) {
	for _, n := range link16Networks(doc) {
		var ncsTerminals []*ast.Terminal
		for _, t := range n.Terminals {
			if v, ok := t.Properties.Get("role"); ok && v.Raw == "NetControlStation" {
				ncsTerminals = append(ncsTerminals, t)
			}
		}
		switch {
		case len(ncsTerminals) == 0:
			diag.ReportRule(r, diag.SevError, n.Span, ruleNCSRequired, "MIL-STD-6016 §2.1",
				fmt.Sprintf("network %q has no terminal with role NetControlStation", n.Name))
		case len(ncsTerminals) > 1:
			for _, extra := range ncsTerminals[1:] {
				diag.ReportRule(r, diag.SevError, extra.Span, ruleNCSRequired, "MIL-STD-6016 §2.1",
					fmt.Sprintf("terminal %q is an extra NetControlStation in network %q", extra.Name, n.Name))
			}
		}
	}
}

// checkLink16ValidRole verifies each terminal's role, if present, is a
// declared Link-16 role id.
func checkLink16ValidRole(r diag.Reporter, doc *ast.Document) {
	for _, n := range link16Networks(doc) {
		for _, t := range n.Terminals {
			p, ok := t.Properties.GetAny("role")
			if !ok {
				continue
			}
			v, ok := p.Value.AsIdentifierLike()
			if !ok || !specdb.IsLink16Role(v) {
				diag.ReportRule(r, diag.SevError, p.Value.Span, ruleValidRole, "",
					fmt.Sprintf("%q is not a declared Link-16 role", p.Value.Raw))
			}
		}
	}
}

// checkValidPlatformType verifies each terminal's platform_type, if
// present, is a declared platform type id (warning only).
func checkValidPlatformType(r diag.Reporter, doc *ast.Document) {
	for _, n := range link16Networks(doc) {
		for _, t := range n.Terminals {
			p, ok := t.Properties.GetAny("platform_type")
			if !ok {
				continue
			}
			v, ok := p.Value.AsIdentifierLike()
			if !ok || !specdb.IsPlatformType(v) {
				diag.ReportRule(r, diag.SevWarning, p.Value.Span, ruleValidPlatformType, "",
					fmt.Sprintf("%q is not a declared platform type", p.Value.Raw))
			}
		}
	}
}

// checkValidTrackNumber bounds a terminal's track_number to 0..=77777.
func checkValidTrackNumber(r diag.Reporter, doc *ast.Document) {
	for _, n := range link16Networks(doc) {
		for _, t := range n.Terminals {
			num, ok := numberOf(t.Properties, "track_number")
			if !ok {
				continue
			}
			if num < 0 || num > 77777 {
				p, _ := t.Properties.GetAny("track_number")
				diag.ReportRule(r, diag.SevError, p.Value.Span, ruleValidTrackNumber, "",
					fmt.Sprintf("track_number %g is out of range 0..=77777", num))
			}
		}
	}
}

// checkValidNetNumber bounds a net's net_number to 0..=127.
func checkValidNetNumber(r diag.Reporter, doc *ast.Document) {
	for _, n := range link16Networks(doc) {
		for _, net := range n.Nets {
			num, ok := numberOf(net.Properties, "net_number")
			if !ok {
				continue
			}
			if num < 0 || num > 127 {
				p, _ := net.Properties.GetAny("net_number")
				diag.ReportRule(r, diag.SevError, p.Value.Span, ruleValidNetNumber, "",
					fmt.Sprintf("net_number %g is out of range 0..=127", num))
			}
		}
	}
}

// checkValidTSDF bounds a net's tsdf to 0..=100 (percent).
func checkValidTSDF(r diag.Reporter, doc *ast.Document) {
	for _, n := range link16Networks(doc) {
		for _, net := range n.Nets {
			num, ok := numberOf(net.Properties, "tsdf")
			if !ok {
				continue
			}
			if num < 0 || num > 100 {
				p, _ := net.Properties.GetAny("tsdf")
				diag.ReportRule(r, diag.SevError, p.Value.Span, ruleValidTSDF, "",
					fmt.Sprintf("tsdf %g%% is out of range 0..=100", num))
			}
		}
	}
}

// checkTotalTSDFBudget sums every net's tsdf per network: over 100% is an
// error, over 90% up to 100% is a warning. Reported once per network.
func checkTotalTSDFBudget(r diag.Reporter, doc *ast.Document) {
	for _, n := range link16Networks(doc) {
		var sum float64
		for _, net := range n.Nets {
			if num, ok := numberOf(net.Properties, "tsdf"); ok {
				sum += num
			}
		}
		switch {
		case sum > 100:
			diag.ReportRule(r, diag.SevError, n.Span, ruleTotalTSDFBudget, "",
				fmt.Sprintf("network %q tsdf budget %s exceeds 100%%", n.Name, formatPercent(sum)))
		case sum > 90:
			diag.ReportRule(r, diag.SevWarning, n.Span, ruleTotalTSDFBudget, "",
				fmt.Sprintf("network %q tsdf budget %s is close to the 100%% limit", n.Name, formatPercent(sum)))
		}
	}
}

func formatPercent(v float64) string {
	if v == float64(int64(v)) {
		return fmt.Sprintf("%d%%", int64(v))
	}
	return fmt.Sprintf("%g%%", v)
}

// checkStackingConsistency enforces stacked/stacking_level coherence.
func checkStackingConsistency(r diag.Reporter, doc *ast.Document) {
	for _, n := range link16Networks(doc) {
		for _, net := range n.Nets {
			stacked, hasStacked := boolOf(net.Properties, "stacked")
			levelProp, hasLevel := net.Properties.GetAny("stacking_level")
			switch {
			case hasStacked && stacked && !hasLevel:
				diag.ReportRule(r, diag.SevError, net.Span, ruleStackingConsistency, "",
					fmt.Sprintf("net %q is stacked but has no stacking_level", net.Name))
			case hasStacked && stacked && hasLevel:
				if levelProp.Value.Kind == ast.VNumber && levelProp.Value.Num != 2 && levelProp.Value.Num != 4 {
					diag.ReportRule(r, diag.SevError, levelProp.Value.Span, ruleStackingConsistency, "",
						fmt.Sprintf("stacking_level must be 2 or 4, got %g", levelProp.Value.Num))
				}
			case (!hasStacked || !stacked) && hasLevel:
				diag.ReportRule(r, diag.SevWarning, levelProp.Value.Span, ruleStackingConsistency, "",
					fmt.Sprintf("net %q has stacking_level but is not stacked", net.Name))
			}
		}
	}
}

// checkNPGSubscriberCoverage: every NPG a terminal transmits must be
// subscribed to by at least one other terminal.
func checkNPGSubscriberCoverage(r diag.Reporter, doc *ast.Document) {
	for _, n := range link16Networks(doc) {
		for _, t := range n.Terminals {
			transmits, ok := arrayOf(t.Properties, "transmits")
			if !ok {
				continue
			}
			for _, npg := range transmits {
				if !anyOtherSubscribes(n, t, npg) {
					p, _ := t.Properties.GetAny("transmits")
					diag.ReportRule(r, diag.SevWarning, p.Value.Span, ruleNPGSubscriberCoverage, "",
						fmt.Sprintf("no other terminal in network %q subscribes to %s", n.Name, npg))
				}
			}
		}
	}
}

func anyOtherSubscribes(n *ast.Network, self *ast.Terminal, npg string) bool {
	for _, t := range n.Terminals {
		if t == self {
			continue
		}
		subs, ok := arrayOf(t.Properties, "subscribes")
		if !ok {
			continue
		}
		if hasItem(subs, npg) {
			return true
		}
	}
	return false
}

// checkPPLIRequired: every terminal with a subscribes array must include
// NPG_A or NPG_B.
func checkPPLIRequired(r diag.Reporter, doc *ast.Document) {
	for _, n := range link16Networks(doc) {
		for _, t := range n.Terminals {
			subs, ok := arrayOf(t.Properties, "subscribes")
			if !ok {
				continue
			}
			if !hasItem(subs, "NPG_A") && !hasItem(subs, "NPG_B") {
				p, _ := t.Properties.GetAny("subscribes")
				diag.ReportRule(r, diag.SevWarning, p.Value.Span, rulePPLIRequired, "",
					fmt.Sprintf("terminal %q subscribes to neither NPG_A nor NPG_B", t.Name))
			}
		}
	}
}

// checkValidNPGReference: every NPG id in subscribes/transmits/net.npg
// must be declared.
func checkValidNPGReference(r diag.Reporter, doc *ast.Document) {
	for _, n := range link16Networks(doc) {
		for _, t := range n.Terminals {
			for _, key := range []string{"subscribes", "transmits"} {
				items, ok := arrayOf(t.Properties, key)
				if !ok {
					continue
				}
				p, _ := t.Properties.GetAny(key)
				for _, npg := range items {
					if !specdb.IsNPG(npg) {
						diag.ReportRule(r, diag.SevError, p.Value.Span, ruleValidNPGReference, "",
							fmt.Sprintf("%q is not a declared NPG id", npg))
					}
				}
			}
		}
		for _, net := range n.Nets {
			p, ok := net.Properties.GetAny("npg")
			if !ok {
				continue
			}
			v, ok := p.Value.AsIdentifierLike()
			if !ok || !specdb.IsNPG(v) {
				diag.ReportRule(r, diag.SevError, p.Value.Span, ruleValidNPGReference, "",
					fmt.Sprintf("%q is not a declared NPG id", p.Value.Raw))
			}
		}
	}
}

// checkValidJMessageReference: every message catalog entry's id must be
// a declared J-message id.
func checkValidJMessageReference(r diag.Reporter, doc *ast.Document) {
	for _, n := range link16Networks(doc) {
		if n.Messages == nil {
			continue
		}
		for _, e := range n.Messages.Entries {
			if !specdb.IsJMessage(e.MessageID) {
				diag.ReportRule(r, diag.SevError, e.Span, ruleValidJMessageReference, "",
					fmt.Sprintf("%q is not a declared J-message id", e.MessageID))
			}
		}
	}
}

// checkMessageNPGMatch: a message entry's npg, if set, must be in that
// message id's declared valid NPG list.
func checkMessageNPGMatch(r diag.Reporter, doc *ast.Document) {
	for _, n := range link16Networks(doc) {
		if n.Messages == nil {
			continue
		}
		for _, e := range n.Messages.Entries {
			p, ok := e.Properties.GetAny("npg")
			if !ok {
				continue
			}
			npg, ok := p.Value.AsIdentifierLike()
			if !ok {
				continue
			}
			msg, ok := specdb.JMessageByID(e.MessageID)
			if !ok {
				continue
			}
			if !hasItem(msg.ValidNPGs, npg) {
				diag.ReportRule(r, diag.SevError, e.Span, ruleMessageNPGMatch, msg.SpecRef,
					fmt.Sprintf("%s is not valid on %s (valid: %v)", npg, e.MessageID, msg.ValidNPGs))
			}
		}
	}
}

// checkParticipantReference: every name in a net's participants array
// must match a declared terminal name in the same network.
func checkParticipantReference(r diag.Reporter, doc *ast.Document) {
	for _, n := range link16Networks(doc) {
		names := make(map[string]bool, len(n.Terminals))
		for _, t := range n.Terminals {
			names[t.Name] = true
		}
		for _, net := range n.Nets {
			participants, ok := arrayOf(net.Properties, "participants")
			if !ok {
				continue
			}
			p, _ := net.Properties.GetAny("participants")
			for _, name := range participants {
				if !names[name] {
					diag.ReportRule(r, diag.SevError, p.Value.Span, ruleParticipantReference, "",
						fmt.Sprintf("%q is not a declared terminal in network %q", name, n.Name))
				}
			}
		}
	}
}

// checkLink16RequiredProperty warns on a terminal missing role or a net
// missing net_number.
func checkLink16RequiredProperty(r diag.Reporter, doc *ast.Document) {
	for _, n := range link16Networks(doc) {
		for _, t := range n.Terminals {
			if _, ok := t.Properties.GetAny("role"); !ok {
				diag.ReportRule(r, diag.SevWarning, t.Span, ruleRequiredProperty, "",
					fmt.Sprintf("terminal %q has no role", t.Name))
			}
		}
		for _, net := range n.Nets {
			if _, ok := net.Properties.GetAny("net_number"); !ok {
				diag.ReportRule(r, diag.SevWarning, net.Span, ruleRequiredProperty, "",
					fmt.Sprintf("net %q has no net_number", net.Name))
			}
		}
	}
}
