// Package diagfmt renders a diag.Bag for a human (pretty, colorized) or a
// host tool (json, stable schema). Both renderers consume the same data
// the engine already produced; neither re-runs analysis.
package diagfmt

// Options controls how diagnostics are rendered. The zero value renders
// without color and without a source preview, which is always safe (a
// renderer never needs a terminal to produce output).
type Options struct {
	// Color enables ANSI coloring of severities and rule codes.
	Color bool
	// Context shows the offending source line with a caret under the span
	// when a *source.File is available.
	Context bool
}
