// Package browse implements the `tdl browse <file>` interactive viewer: a
// three-pane split over one document's token stream, AST outline, and
// diagnostics list, driven entirely by internal/engine's public Result.
// It is a CLI convenience consuming (tokens, ast, diagnostics); it does
// not implement any editor-host protocol itself.
package browse

import (
	"fmt"

	"tdl/internal/ast"
	"tdl/internal/source"
)

// outlineLine is one row of the AST outline pane: a label, the depth to
// indent it at, and the node's full span, used to jump the diagnostics
// pane to the diagnostics that fall within it.
type outlineLine struct {
	label string
	depth int
	span  source.Span
}

// buildOutline flattens doc into a depth-first list of display lines.
func buildOutline(doc *ast.Document) []outlineLine {
	var lines []outlineLine
	if doc == nil {
		return lines
	}
	for _, n := range doc.Networks {
		lines = append(lines, outlineLine{label: fmt.Sprintf("network %q", n.Name), depth: 0, span: n.Span})
		for _, t := range n.Terminals {
			lines = append(lines, outlineLine{label: fmt.Sprintf("terminal %q", t.Name), depth: 1, span: t.Span})
		}
		for _, net := range n.Nets {
			lines = append(lines, outlineLine{label: fmt.Sprintf("net %q", net.Name), depth: 1, span: net.Span})
		}
		for _, sn := range n.Subnetworks {
			lines = append(lines, outlineLine{label: fmt.Sprintf("subnetwork %q", sn.Name), depth: 1, span: sn.Span})
			for _, m := range sn.Members {
				lines = append(lines, outlineLine{label: fmt.Sprintf("member %q", m.Name), depth: 2, span: m.Span})
			}
		}
		if n.Messages != nil {
			lines = append(lines, outlineLine{label: "messages", depth: 1, span: n.Messages.Span})
			for _, e := range n.Messages.Entries {
				lines = append(lines, outlineLine{label: e.MessageID, depth: 2, span: e.Span})
			}
		}
		if n.Filters != nil {
			lines = append(lines, outlineLine{label: "filters", depth: 1, span: n.Filters.Span})
		}
	}
	return lines
}

// diagnosticInSpan reports whether offset falls within sp.
func diagnosticInSpan(offset uint32, sp source.Span) bool {
	return offset >= sp.Offset && offset < sp.Offset+sp.Length
}
