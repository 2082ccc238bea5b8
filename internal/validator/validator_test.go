package validator

import (
	"strings"
	"testing"

	"tdl/internal/diag"
	"tdl/internal/parser"
)

func parseOK(t *testing.T, src string) *parser.Result {
	t.Helper()
	res := parser.Parse(src)
	if res.Bag.HasErrors() {
		t.Fatalf("unexpected parse errors for %q: %+v", src, res.Bag.Items())
	}
	return &res
}

func findRule(items []diag.Diagnostic, rule string) []diag.Diagnostic {
	var out []diag.Diagnostic
	for _, d := range items {
		if d.Rule == rule {
			out = append(out, d)
		}
	}
	return out
}

func TestMinimalLink16NetworkHasNoErrors(t *testing.T) {
	res := parseOK(t, `network "X" { link: Link16 terminal "A" { role: NetControlStation } }`)
	bag := Validate(res.Document)
	if bag.HasErrors() {
		t.Fatalf("expected zero errors, got %+v", bag.Items())
	}
	if len(findRule(bag.Items(), rulePPLIRequired)) != 0 {
		t.Fatal("ppli-required should not fire when subscribes is absent")
	}
}

func TestTSDFOverflow(t *testing.T) {
	src := `network "X" { link: Link16 terminal "A" { role: NetControlStation } ` +
		`net "A" { net_number: 1, npg: NPG_9, tsdf: 60% } ` +
		`net "B" { net_number: 2, npg: NPG_6, tsdf: 50% } }`
	res := parseOK(t, src)
	bag := Validate(res.Document)
	got := findRule(bag.Items(), ruleTotalTSDFBudget)
	if len(got) != 1 {
		t.Fatalf("expected exactly 1 total-tsdf-budget diagnostic, got %d: %+v", len(got), got)
	}
	if got[0].Severity != diag.SevError {
		t.Fatalf("expected error severity, got %v", got[0].Severity)
	}
	if !strings.Contains(got[0].Message, "110%") {
		t.Fatalf("expected message to contain 110%%, got %q", got[0].Message)
	}
}

func TestMessageNPGMismatch(t *testing.T) {
	src := `network "X" { link: Link16 terminal "A" { role: NetControlStation } ` +
		`messages { J3/2 { enabled: true, npg: NPG_6 } } }`
	res := parseOK(t, src)
	bag := Validate(res.Document)
	got := findRule(bag.Items(), ruleMessageNPGMatch)
	if len(got) != 1 {
		t.Fatalf("expected exactly 1 message-npg-match diagnostic, got %d: %+v", len(got), got)
	}
	entrySpan := res.Document.Networks[0].Messages.Entries[0].Span
	if got[0].Span != entrySpan {
		t.Fatalf("expected diagnostic on the message entry span %+v, got %+v", entrySpan, got[0].Span)
	}
}

func TestLink22SubnetworkMissingControllerAndForwarding(t *testing.T) {
	src := `network "X" { link: Link22 subnetwork "S" { member "A" { role: Participant, unit_id: 0x1, forwarding: disabled } } }`
	res := parseOK(t, src)
	bag := Validate(res.Document)
	if len(findRule(bag.Items(), ruleLink22ControllerReq)) != 1 {
		t.Fatalf("expected 1 link22-controller-required error, got %+v", bag.Items())
	}
	if len(findRule(bag.Items(), ruleLink22Forwarding)) != 1 {
		t.Fatalf("expected 1 link22-forwarding error, got %+v", bag.Items())
	}
}

func TestNCSRequiredZeroAndMultiple(t *testing.T) {
	zero := parseOK(t, `network "X" { link: Link16 terminal "A" { role: Participant } }`)
	bag := Validate(zero.Document)
	if len(findRule(bag.Items(), ruleNCSRequired)) != 1 {
		t.Fatalf("expected 1 ncs-required error for zero NCS terminals, got %+v", bag.Items())
	}

	multi := parseOK(t, `network "X" { link: Link16 `+
		`terminal "A" { role: NetControlStation } terminal "B" { role: NetControlStation } }`)
	bag2 := Validate(multi.Document)
	got := findRule(bag2.Items(), ruleNCSRequired)
	if len(got) != 1 {
		t.Fatalf("expected 1 extra ncs-required error for a second NCS terminal, got %d: %+v", len(got), got)
	}
	if got[0].Span != multi.Document.Networks[0].Terminals[1].Span {
		t.Fatalf("expected the error on the second (extra) terminal's span")
	}
}

func TestTrackNumberUniqueness(t *testing.T) {
	src := `network "X" { link: Link16 ` +
		`terminal "A" { role: NetControlStation, track_number: 100 } ` +
		`terminal "B" { track_number: 100 } }`
	res := parseOK(t, src)
	bag := Validate(res.Document)
	if len(findRule(bag.Items(), ruleTrackNumberUniqueness)) != 1 {
		t.Fatalf("expected 1 track-number-uniqueness error, got %+v", bag.Items())
	}
}

func TestValidNPGReferenceCatchesUnknownID(t *testing.T) {
	src := `network "X" { link: Link16 terminal "A" { role: NetControlStation, subscribes: [NPG_999] } }`
	res := parseOK(t, src)
	bag := Validate(res.Document)
	if len(findRule(bag.Items(), ruleValidNPGReference)) != 1 {
		t.Fatalf("expected 1 valid-npg-reference error, got %+v", bag.Items())
	}
}

func TestParticipantReferenceCatchesUnknownTerminal(t *testing.T) {
	src := `network "X" { link: Link16 terminal "A" { role: NetControlStation } ` +
		`net "N" { net_number: 1, participants: [A, GHOST] } }`
	res := parseOK(t, src)
	bag := Validate(res.Document)
	if len(findRule(bag.Items(), ruleParticipantReference)) != 1 {
		t.Fatalf("expected 1 participant-reference error, got %+v", bag.Items())
	}
}

func TestUnitIDUniquenessAllowsSameMemberNameAcrossSubnetworks(t *testing.T) {
	src := `network "X" { link: Link22 ` +
		`subnetwork "S1" { member "A" { role: Controller, unit_id: 0x1 } } ` +
		`subnetwork "S2" { member "A" { role: Participant, unit_id: 0x1 } } }`
	res := parseOK(t, src)
	bag := Validate(res.Document)
	if len(findRule(bag.Items(), ruleUnitIDUniqueness)) != 0 {
		t.Fatalf("expected no unit-id-uniqueness warning for the same member name reused, got %+v", bag.Items())
	}
}

func TestUnitIDUniquenessWarnsOnDifferentNames(t *testing.T) {
	src := `network "X" { link: Link22 ` +
		`subnetwork "S1" { member "A" { role: Controller, unit_id: 0x1, forwarding: enabled } ` +
		`member "B" { role: Participant, unit_id: 0x1 } } }`
	res := parseOK(t, src)
	bag := Validate(res.Document)
	if len(findRule(bag.Items(), ruleUnitIDUniqueness)) != 1 {
		t.Fatalf("expected 1 unit-id-uniqueness warning, got %+v", bag.Items())
	}
}
