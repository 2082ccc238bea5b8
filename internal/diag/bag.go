package diag

import "sort"

// Bag is an ordered collection of diagnostics. Producers append in source
// order; Sort imposes a stable, deterministic order for presentation
// without disturbing the producer-order semantics the pipeline relies on
// internally (parse diagnostics, then validator diagnostics, concatenated
// rather than merged).
type Bag struct {
	items []Diagnostic
	max   int
}

// NewBag returns an empty Bag with no capacity limit. The core pipeline
// (lexer, parser, validator, engine) always uses an unlimited bag; any
// truncation for display happens at the CLI layer via NewBagWithLimit.
func NewBag() *Bag {
	return &Bag{max: -1}
}

// NewBagWithLimit returns an empty Bag that silently drops diagnostics
// past max (a max of 0 accepts none). Used by the CLI to cap how many
// diagnostics a command prints.
func NewBagWithLimit(max int) *Bag {
	return &Bag{max: max}
}

// Add appends one diagnostic, reporting false without appending if the
// bag is already at its limit.
func (b *Bag) Add(d Diagnostic) bool {
	if b.max >= 0 && len(b.items) >= b.max {
		return false
	}
	b.items = append(b.items, d)
	return true
}

// Append concatenates another Bag's items onto this one, preserving order.
func (b *Bag) Append(other *Bag) {
	if other == nil {
		return
	}
	b.items = append(b.items, other.items...)
}

// Items returns the diagnostics in their current order. Callers must not
// mutate the returned slice.
func (b *Bag) Items() []Diagnostic {
	return b.items
}

// Len reports how many diagnostics have been collected.
func (b *Bag) Len() int {
	return len(b.items)
}

// HasErrors reports whether any diagnostic has SevError.
func (b *Bag) HasErrors() bool {
	for _, d := range b.items {
		if d.Severity == SevError {
			return true
		}
	}
	return false
}

// HasWarnings reports whether any diagnostic has SevWarning.
func (b *Bag) HasWarnings() bool {
	for _, d := range b.items {
		if d.Severity == SevWarning {
			return true
		}
	}
	return false
}

// Sort orders diagnostics by span (line, column), then by severity
// (errors before warnings before info/hint), then by rule, for stable
// presentation. It does not change the underlying producer-order
// semantics of Items as returned by the engine's public API.
func (b *Bag) Sort() {
	rank := func(s Severity) int {
		if s == SevHint {
			return -1
		}
		return int(s)
	}
	sort.SliceStable(b.items, func(i, j int) bool {
		a, c := b.items[i], b.items[j]
		if a.Span.Line != c.Span.Line {
			return a.Span.Line < c.Span.Line
		}
		if a.Span.Column != c.Span.Column {
			return a.Span.Column < c.Span.Column
		}
		if a.Severity != c.Severity {
			return rank(a.Severity) > rank(c.Severity)
		}
		return a.Rule < c.Rule
	})
}
