package browse

import "testing"

func TestBuildOutlineReflectsNesting(t *testing.T) {
	m := New("x.tdl", `network "X" { link: Link16 `+
		`terminal "A" { role: NetControlStation } `+
		`subnetwork "S" { member "M" { role: Controller } } `+
		`messages { J3/2 { npg: NPG_9 } } }`)
	if len(m.outline) == 0 {
		t.Fatal("expected a non-empty outline")
	}
	if m.outline[0].label != `network "X"` || m.outline[0].depth != 0 {
		t.Fatalf("expected the network as the root outline line, got %+v", m.outline[0])
	}
	var sawMember, sawMessage bool
	for _, l := range m.outline {
		if l.label == `member "M"` && l.depth == 2 {
			sawMember = true
		}
		if l.label == "J3/2" && l.depth == 2 {
			sawMessage = true
		}
	}
	if !sawMember {
		t.Fatal("expected a depth-2 member outline line")
	}
	if !sawMessage {
		t.Fatal("expected a depth-2 message entry outline line")
	}
}

func TestNewCollectsTokensAndDiagnosticsTogether(t *testing.T) {
	m := New("x.tdl", `network "X" { link: Link16 }`)
	if len(m.tokens) == 0 {
		t.Fatal("expected a non-empty token stream")
	}
	if len(m.result.Diagnostics) != 1 || m.result.Diagnostics[0].Rule != "ncs-required" {
		t.Fatalf("expected a single ncs-required diagnostic, got %+v", m.result.Diagnostics)
	}
}

func TestJumpToDiagnosticSelectsMatchingSpan(t *testing.T) {
	m := New("x.tdl", `network "X" { link: Link16 }`)
	m.focus = paneOutline
	m.cursor[paneOutline] = 0

	m.jumpToDiagnostic()

	if m.focus != paneDiagnostics {
		t.Fatalf("expected focus to move to the diagnostics pane, got %v", m.focus)
	}
	if m.cursor[paneDiagnostics] != 0 {
		t.Fatalf("expected the ncs-required diagnostic to be selected, got cursor %d", m.cursor[paneDiagnostics])
	}
}

func TestPaneLenMatchesUnderlyingSlices(t *testing.T) {
	m := New("x.tdl", `network "X" { link: Link16 }`)
	if m.paneLen(paneTokens) != len(m.tokens) {
		t.Fatal("paneLen(paneTokens) mismatch")
	}
	if m.paneLen(paneOutline) != len(m.outline) {
		t.Fatal("paneLen(paneOutline) mismatch")
	}
	if m.paneLen(paneDiagnostics) != len(m.result.Diagnostics) {
		t.Fatal("paneLen(paneDiagnostics) mismatch")
	}
}
