package parser

import (
	"testing"

	"tdl/internal/ast"
)

func TestParseEmptyInput(t *testing.T) {
	res := Parse("")
	if len(res.Document.Networks) != 0 {
		t.Fatalf("expected zero networks, got %d", len(res.Document.Networks))
	}
	if res.Bag.Len() != 0 {
		t.Fatalf("expected zero diagnostics, got %d", res.Bag.Len())
	}
}

func TestParseMinimalLink16Network(t *testing.T) {
	src := `network "X" { link: Link16 terminal "A" { role: NetControlStation } }`
	res := Parse(src)
	if res.Bag.HasErrors() {
		t.Fatalf("unexpected parse errors: %+v", res.Bag.Items())
	}
	if len(res.Document.Networks) != 1 {
		t.Fatalf("expected 1 network, got %d", len(res.Document.Networks))
	}
	net := res.Document.Networks[0]
	if net.Name != "X" {
		t.Fatalf("expected network name X, got %q", net.Name)
	}
	if len(net.Terminals) != 1 {
		t.Fatalf("expected 1 terminal, got %d", len(net.Terminals))
	}
	if net.Terminals[0].Name != "A" {
		t.Fatalf("expected terminal name A, got %q", net.Terminals[0].Name)
	}
	link, ok := net.Properties.Get("link")
	if !ok || link.Raw != "Link16" {
		t.Fatalf("expected link=Link16 property, got %+v ok=%v", link, ok)
	}
	role, ok := net.Terminals[0].Properties.Get("role")
	if !ok || role.Raw != "NetControlStation" {
		t.Fatalf("expected role=NetControlStation, got %+v ok=%v", role, ok)
	}
}

func TestParseUnterminatedNetworkBlock(t *testing.T) {
	src := `network "TEST" { link: Link16`
	res := Parse(src)
	if len(res.Document.Networks) != 1 {
		t.Fatalf("expected a partial network, got %d", len(res.Document.Networks))
	}
	if !res.Bag.HasErrors() {
		t.Fatal("expected at least one parse diagnostic")
	}
	found := false
	for _, d := range res.Bag.Items() {
		if containsRune(d.Message, '}') {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected a diagnostic mentioning '}', got %+v", res.Bag.Items())
	}
}

func TestParseMessagesAndFilters(t *testing.T) {
	src := `network "X" {
		link: Link16
		terminal "A" { role: NetControlStation }
		messages { J3/2 { enabled: true, npg: NPG_6 } }
		filters {
			inbound { accept J3/2 where { npg == NPG_6 } }
			outbound { drop J3/2 }
		}
	}`
	res := Parse(src)
	if res.Bag.HasErrors() {
		t.Fatalf("unexpected parse errors: %+v", res.Bag.Items())
	}
	net := res.Document.Networks[0]
	if net.Messages == nil || len(net.Messages.Entries) != 1 {
		t.Fatalf("expected 1 message entry, got %+v", net.Messages)
	}
	if net.Messages.Entries[0].MessageID != "J3/2" {
		t.Fatalf("expected message id J3/2, got %q", net.Messages.Entries[0].MessageID)
	}
	if net.Filters == nil || len(net.Filters.Inbound) != 1 || len(net.Filters.Outbound) != 1 {
		t.Fatalf("expected 1 inbound and 1 outbound rule, got %+v", net.Filters)
	}
	rule := net.Filters.Inbound[0]
	if rule.Action != ast.ActionAccept || rule.MessageID != "J3/2" {
		t.Fatalf("unexpected inbound rule: %+v", rule)
	}
	if rule.Where == nil || rule.Where.Condition.Field != "npg" || rule.Where.Condition.Op != ast.OpEqEq {
		t.Fatalf("unexpected where clause: %+v", rule.Where)
	}
}

func TestParseSubnetworkAndMembers(t *testing.T) {
	src := `network "X" { link: Link22 subnetwork "S" { member "A" { role: Participant, unit_id: 0x1, forwarding: disabled } } }`
	res := Parse(src)
	if res.Bag.HasErrors() {
		t.Fatalf("unexpected parse errors: %+v", res.Bag.Items())
	}
	net := res.Document.Networks[0]
	if len(net.Subnetworks) != 1 || len(net.Subnetworks[0].Members) != 1 {
		t.Fatalf("expected 1 subnetwork with 1 member, got %+v", net.Subnetworks)
	}
	member := net.Subnetworks[0].Members[0]
	unitID, ok := member.Properties.GetAny("unit_id")
	if !ok || unitID.Value.Kind != ast.VHex || unitID.Value.Raw != "0x1" {
		t.Fatalf("unexpected unit_id property: %+v ok=%v", unitID, ok)
	}
}

func TestParseArrayProperty(t *testing.T) {
	src := `network "X" { terminal "A" { subscribes: [NPG_A, NPG_B, "NPG_9"] } }`
	res := Parse(src)
	if res.Bag.HasErrors() {
		t.Fatalf("unexpected parse errors: %+v", res.Bag.Items())
	}
	term := res.Document.Networks[0].Terminals[0]
	v, ok := term.Properties.GetAny("subscribes")
	if !ok || v.Value.Kind != ast.VArray {
		t.Fatalf("expected an array property, got %+v ok=%v", v, ok)
	}
	want := []string{"NPG_A", "NPG_B", "NPG_9"}
	if len(v.Value.Items) != len(want) {
		t.Fatalf("expected %d items, got %d: %+v", len(want), len(v.Value.Items), v.Value.Items)
	}
	for i, w := range want {
		if v.Value.Items[i] != w {
			t.Fatalf("item %d: expected %q, got %q", i, w, v.Value.Items[i])
		}
	}
}

func TestParseMissingNameYieldsPlaceholder(t *testing.T) {
	src := `network { link: Link16 }`
	res := Parse(src)
	if len(res.Document.Networks) != 1 {
		t.Fatalf("expected a partial network, got %d", len(res.Document.Networks))
	}
	if res.Document.Networks[0].Name != ast.MissingName {
		t.Fatalf("expected placeholder name, got %q", res.Document.Networks[0].Name)
	}
	if !res.Bag.HasErrors() {
		t.Fatal("expected a diagnostic for the missing name")
	}
}

func TestParseUnknownTokenSkippedSingly(t *testing.T) {
	src := `network "X" { @@@ link: Link16 }`
	res := Parse(src)
	if !res.Bag.HasErrors() {
		t.Fatal("expected diagnostics for the unknown tokens")
	}
	net := res.Document.Networks[0]
	link, ok := net.Properties.Get("link")
	if !ok || link.Raw != "Link16" {
		t.Fatalf("expected link property to still parse after skipping junk, got %+v ok=%v", link, ok)
	}
}

func TestParseRecoversBetweenNetworks(t *testing.T) {
	src := `network "A" { link: ??? } network "B" { link: Link22 }`
	res := Parse(src)
	if len(res.Document.Networks) != 2 {
		t.Fatalf("expected both networks to be recovered, got %d: %+v", len(res.Document.Networks), res.Document.Networks)
	}
	if res.Document.Networks[1].Name != "B" {
		t.Fatalf("expected second network name B, got %q", res.Document.Networks[1].Name)
	}
}

func containsRune(s string, r rune) bool {
	for _, c := range s {
		if c == r {
			return true
		}
	}
	return false
}
