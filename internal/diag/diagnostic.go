// Package diag defines the diagnostic record shared by the parser and the
// validator: a flat, serializable value with no formatting or IO baked in.
// Rendering lives in internal/diagfmt; this package only models the data.
package diag

import "tdl/internal/source"

// Diagnostic is the stable interface contract from spec §6: a message, a
// severity, a span, and for semantic/domain diagnostics a stable rule code
// and an optional reference into the originating spec section.
type Diagnostic struct {
	Message  string
	Severity Severity
	Span     source.Span
	// Rule is empty for syntax diagnostics (spec §7): those carry no rule
	// code, only an error severity and a span.
	Rule    string
	SpecRef string
}
