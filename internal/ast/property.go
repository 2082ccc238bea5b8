package ast

import "tdl/internal/source"

// Property is one `key: value` assignment. Keys are drawn from the
// keyword/identifier token set (spec §3); duplicate keys within one
// property list are legal. Properties.Get decides which one wins for a
// given lookup, not the parser.
type Property struct {
	Key   string
	Value Value
	Span  source.Span
}

// Properties is an ordered list of Property, preserving source order.
type Properties []Property

// Get returns the first property with the given key whose value is an
// Identifier or a String, mirroring the validator's get_identifier lookup
// rule from spec §4.4: duplicates are not coalesced, the first wins.
func (ps Properties) Get(key string) (Value, bool) {
	for _, p := range ps {
		if p.Key != key {
			continue
		}
		if _, ok := p.Value.AsIdentifierLike(); ok {
			return p.Value, true
		}
	}
	return Value{}, false
}

// GetAny returns the first property with the given key regardless of its
// value's variant.
func (ps Properties) GetAny(key string) (Property, bool) {
	for _, p := range ps {
		if p.Key == key {
			return p, true
		}
	}
	return Property{}, false
}

// All returns every property with the given key, in source order.
func (ps Properties) All(key string) []Property {
	var out []Property
	for _, p := range ps {
		if p.Key == key {
			out = append(out, p)
		}
	}
	return out
}
