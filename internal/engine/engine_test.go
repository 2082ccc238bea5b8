package engine

import (
	"strings"
	"testing"
)

func TestAnalyzeEmptyInput(t *testing.T) {
	res := Analyze("")
	if len(res.AST.Networks) != 0 {
		t.Fatalf("expected zero networks, got %d", len(res.AST.Networks))
	}
	if len(res.Diagnostics) != 0 {
		t.Fatalf("expected zero diagnostics, got %+v", res.Diagnostics)
	}
}

func TestAnalyzeMinimalLink16Network(t *testing.T) {
	res := Analyze(`network "X" { link: Link16 terminal "A" { role: NetControlStation } }`)
	for _, d := range res.Diagnostics {
		if d.Severity.String() == "error" {
			t.Fatalf("unexpected error diagnostic: %+v", d)
		}
	}
	if len(res.AST.Networks[0].Terminals) != 1 {
		t.Fatalf("expected 1 terminal, got %d", len(res.AST.Networks[0].Terminals))
	}
}

func TestAnalyzeUnterminatedNetworkBlock(t *testing.T) {
	res := Analyze(`network "TEST" { link: Link16`)
	if len(res.AST.Networks) != 1 {
		t.Fatalf("expected a partial network, got %d", len(res.AST.Networks))
	}
	found := false
	for _, d := range res.Diagnostics {
		if strings.Contains(d.Message, "}") {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected a diagnostic mentioning '}', got %+v", res.Diagnostics)
	}
}

func TestAnalyzeMessageNPGMismatch(t *testing.T) {
	res := Analyze(`network "X" { link: Link16 terminal "A" { role: NetControlStation } ` +
		`messages { J3/2 { enabled: true, npg: NPG_6 } } }`)
	found := false
	for _, d := range res.Diagnostics {
		if d.Rule == "message-npg-match" {
			found = true
			if d.Span != res.AST.Networks[0].Messages.Entries[0].Span {
				t.Fatalf("expected diagnostic on the message entry span")
			}
		}
	}
	if !found {
		t.Fatalf("expected a message-npg-match diagnostic, got %+v", res.Diagnostics)
	}
}

func TestAnalyzeLink22MissingControllerAndForwarding(t *testing.T) {
	res := Analyze(`network "X" { link: Link22 subnetwork "S" { ` +
		`member "A" { role: Participant, unit_id: 0x1, forwarding: disabled } } }`)
	rules := make(map[string]int)
	for _, d := range res.Diagnostics {
		rules[d.Rule]++
	}
	if rules["link22-controller-required"] != 1 {
		t.Fatalf("expected 1 link22-controller-required diagnostic, got %+v", rules)
	}
	if rules["link22-forwarding"] != 1 {
		t.Fatalf("expected 1 link22-forwarding diagnostic, got %+v", rules)
	}
}

func TestAnalyzeDiagnosticOrderIsParseThenValidate(t *testing.T) {
	res := Analyze(`network "X" { link: Link22 subnetwork "S" { ` +
		`member "A" { role: BogusRole forwarding: sideways unit_id: 5 } } }`)
	sawRule := false
	for _, d := range res.Diagnostics {
		if d.Rule == "" && sawRule {
			t.Fatalf("a rule-less (parse) diagnostic appeared after a ruled (validator) diagnostic: %+v", res.Diagnostics)
		}
		if d.Rule != "" {
			sawRule = true
		}
	}
}

func TestTokenizeIncludesTrivia(t *testing.T) {
	toks := Tokenize("-- comment\nnetwork \"X\" {}")
	sawComment := false
	for _, tok := range toks {
		if tok.Kind.String() == "Comment" {
			sawComment = true
		}
	}
	if !sawComment {
		t.Fatal("expected Tokenize to retain comment trivia")
	}
}
