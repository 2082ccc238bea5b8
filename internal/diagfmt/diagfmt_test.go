package diagfmt

import (
	"bytes"
	"strings"
	"testing"

	"tdl/internal/diag"
	"tdl/internal/source"
)

func sampleBag() *diag.Bag {
	bag := diag.NewBag()
	bag.Add(diag.Diagnostic{
		Message:  "missing '}'",
		Severity: diag.SevError,
		Span:     source.Span{Line: 1, Column: 20, Offset: 19, Length: 1},
	})
	bag.Add(diag.Diagnostic{
		Message:  "network has no NetControlStation terminal",
		Severity: diag.SevError,
		Span:     source.Span{Line: 1, Column: 1, Offset: 0, Length: 7},
		Rule:     "ncs-required",
		SpecRef:  "spec 4.4",
	})
	return bag
}

func TestPrettyRendersOneLinePerDiagnostic(t *testing.T) {
	var buf bytes.Buffer
	Pretty(&buf, sampleBag(), nil, Options{})
	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d: %q", len(lines), buf.String())
	}
	if !strings.Contains(lines[0], "syntax") {
		t.Fatalf("expected ruleless diagnostic to show as syntax, got %q", lines[0])
	}
	if !strings.Contains(lines[1], "ncs-required") {
		t.Fatalf("expected rule code in output, got %q", lines[1])
	}
}

func TestPrettyContextDrawsCaretUnderSpan(t *testing.T) {
	file := source.NewFile("x.tdl", `network "X" { link: Link16 }`)
	bag := diag.NewBag()
	bag.Add(diag.Diagnostic{
		Message:  "unknown link type",
		Severity: diag.SevError,
		Span:     source.Span{Line: 1, Column: 21, Offset: 20, Length: 6},
		Rule:     "valid-link-type",
	})
	var buf bytes.Buffer
	Pretty(&buf, bag, file, Options{Context: true})
	out := buf.String()
	if !strings.Contains(out, "^^^^^^") {
		t.Fatalf("expected a 6-wide caret underline, got %q", out)
	}
}

func TestJSONRoundTripsFields(t *testing.T) {
	var buf bytes.Buffer
	if err := JSON(&buf, sampleBag()); err != nil {
		t.Fatalf("JSON returned error: %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, `"rule": "ncs-required"`) {
		t.Fatalf("expected rule field in JSON output, got %q", out)
	}
	if !strings.Contains(out, `"spec_ref": "spec 4.4"`) {
		t.Fatalf("expected spec_ref field in JSON output, got %q", out)
	}
}
