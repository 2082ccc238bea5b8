package diagfmt

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"golang.org/x/text/width"

	"tdl/internal/diag"
	"tdl/internal/source"
)

var (
	errorColor   = color.New(color.FgRed, color.Bold)
	warningColor = color.New(color.FgYellow, color.Bold)
	infoColor    = color.New(color.FgCyan)
	ruleColor    = color.New(color.FgMagenta)
	caretColor   = color.New(color.FgGreen, color.Bold)
)

// Pretty writes one human-readable line per diagnostic to w, in the order
// bag.Items() returns them. When file is non-nil and opts.Context is set,
// each line is followed by the offending source line and a caret
// underline spanning the diagnostic's span.
func Pretty(w io.Writer, bag *diag.Bag, file *source.File, opts Options) {
	items := bag.Items()
	ruleWidth := widestRule(items)
	for _, d := range items {
		fmt.Fprintln(w, formatHeader(d, ruleWidth, opts))
		if opts.Context && file != nil {
			writeContext(w, file, d.Span, opts)
		}
	}
}

func formatHeader(d diag.Diagnostic, ruleWidth int, opts Options) string {
	sevText := severityLabel(d.Severity)
	if opts.Color {
		sevText = colorForSeverity(d.Severity).Sprint(sevText)
	}
	rule := d.Rule
	if rule == "" {
		rule = "syntax"
	}
	padded := padRule(rule, ruleWidth)
	if opts.Color {
		padded = ruleColor.Sprint(padded)
	}
	return fmt.Sprintf("%s: %s %s: %s", d.Span.String(), sevText, padded, d.Message)
}

func severityLabel(s diag.Severity) string {
	switch s {
	case diag.SevError:
		return "error"
	case diag.SevWarning:
		return "warning"
	case diag.SevHint:
		return "hint"
	default:
		return "info"
	}
}

func colorForSeverity(s diag.Severity) *color.Color {
	switch s {
	case diag.SevError:
		return errorColor
	case diag.SevWarning:
		return warningColor
	default:
		return infoColor
	}
}

// widestRule finds the display width of the longest rule code (or
// "syntax" for ruleless diagnostics), so the message column lines up
// across a multi-diagnostic listing.
func widestRule(items []diag.Diagnostic) int {
	best := len("syntax")
	for _, d := range items {
		rule := d.Rule
		if rule == "" {
			rule = "syntax"
		}
		if n := foldedWidth(rule); n > best {
			best = n
		}
	}
	return best
}

func padRule(rule string, want int) string {
	n := want - foldedWidth(rule)
	if n <= 0 {
		return rule
	}
	return rule + strings.Repeat(" ", n)
}

// foldedWidth applies compatibility-width folding (so a listing of rule
// codes that happen to include fullwidth forms still lines up) before
// measuring byte length; rule codes are otherwise plain ASCII kebab-case.
func foldedWidth(s string) int {
	folded := width.Fold.String(s)
	return len(folded)
}

func writeContext(w io.Writer, file *source.File, sp source.Span, opts Options) {
	line := file.Line(sp.Line)
	if line == "" {
		return
	}
	fmt.Fprintln(w, "  "+line)
	col := int(sp.Column)
	if col < 1 {
		col = 1
	}
	length := int(sp.Length)
	if length < 1 {
		length = 1
	}
	caret := strings.Repeat(" ", col-1) + strings.Repeat("^", length)
	if opts.Color {
		caret = caretColor.Sprint(caret)
	}
	fmt.Fprintln(w, "  "+caret)
}
