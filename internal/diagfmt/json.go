package diagfmt

import (
	"encoding/json"
	"io"

	"tdl/internal/diag"
)

// record is the stable, machine-readable diagnostic shape an editor host
// consumes (spec §6): field names are fixed independent of the internal
// diag.Diagnostic layout.
type record struct {
	Severity string `json:"severity"`
	Rule     string `json:"rule,omitempty"`
	SpecRef  string `json:"spec_ref,omitempty"`
	Message  string `json:"message"`
	Line     uint32 `json:"line"`
	Column   uint32 `json:"column"`
	Offset   uint32 `json:"offset"`
	Length   uint32 `json:"length"`
}

// JSON writes bag as a JSON array of records to w, one call, newline
// terminated, suitable for piping to an editor host or another CLI.
func JSON(w io.Writer, bag *diag.Bag) error {
	items := bag.Items()
	out := make([]record, len(items))
	for i, d := range items {
		out[i] = record{
			Severity: severityLabel(d.Severity),
			Rule:     d.Rule,
			SpecRef:  d.SpecRef,
			Message:  d.Message,
			Line:     d.Span.Line,
			Column:   d.Span.Column,
			Offset:   d.Span.Offset,
			Length:   d.Span.Length,
		}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}
