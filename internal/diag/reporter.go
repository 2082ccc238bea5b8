package diag

import "tdl/internal/source"

// Reporter is the minimal contract producers (the parser, the validator)
// use to emit diagnostics without coupling to a particular collection or
// rendering strategy.
type Reporter interface {
	Report(d Diagnostic)
}

// BagReporter adapts a *Bag to the Reporter interface.
type BagReporter struct {
	Bag *Bag
}

func (r BagReporter) Report(d Diagnostic) {
	if r.Bag == nil {
		return
	}
	r.Bag.Add(d)
}

// ReportError is a convenience for emitting a syntax diagnostic: error
// severity, no rule, as spec §7 specifies for the parser.
func ReportError(r Reporter, sp source.Span, msg string) {
	if r == nil {
		return
	}
	r.Report(Diagnostic{Message: msg, Severity: SevError, Span: sp})
}

// ReportRule emits a semantic or domain diagnostic: it always carries a
// rule code, and a spec reference when one is known.
func ReportRule(r Reporter, sev Severity, sp source.Span, rule, specRef, msg string) {
	if r == nil {
		return
	}
	r.Report(Diagnostic{Message: msg, Severity: sev, Span: sp, Rule: rule, SpecRef: specRef})
}
