package ast

import "tdl/internal/source"

// Document is the root of the tree: an ordered sequence of Network
// declarations. It is always present from Analyze, even for an empty or
// fully malformed source (it may simply have zero networks).
type Document struct {
	Networks []*Network
	Span     source.Span
}

// Network is `network <name> { ... }`.
type Network struct {
	Name        string
	Properties  Properties
	Terminals   []*Terminal
	Nets        []*Net
	Subnetworks []*Subnetwork
	Messages    *MessageCatalog // nil if the block was absent
	Filters     *FilterBlock    // nil if the block was absent
	Span        source.Span
}

// Terminal is `terminal <name> { ... }`.
type Terminal struct {
	Name       string
	Properties Properties
	Span       source.Span
}

// Net is `net <name> { ... }`.
type Net struct {
	Name       string
	Properties Properties
	Span       source.Span
}

// Subnetwork is `subnetwork <name> { ... }`, owning an ordered list of
// Member declarations in addition to its own properties.
type Subnetwork struct {
	Name       string
	Properties Properties
	Members    []*Member
	Span       source.Span
}

// Member is `member <name> { ... }`, found only inside a Subnetwork.
type Member struct {
	Name       string
	Properties Properties
	Span       source.Span
}

// MissingName is the placeholder the parser substitutes when a
// declaration's name string is missing, per spec §4.3: the validator then
// cannot match by name, which is an accepted trade-off.
const MissingName = "<missing>"
