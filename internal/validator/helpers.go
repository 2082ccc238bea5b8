// Package validator implements the TDL semantic and domain rule catalog:
// a fixed, ordered set of pure functions over a Document that each emit
// zero or more diagnostics in document order. Validate concatenates every
// rule's output in catalog order, never interleaving rules the way a
// single depth-first tree walk naturally would, because the engine's
// contract is determinism over discovery order.
package validator

import (
	"tdl/internal/ast"
)

// linkType returns the network's declared link identifier as written (any
// identifier or string, not only "Link16"/"Link22"), or "" if absent or
// not an identifier-like value.
func linkType(n *ast.Network) string {
	v, ok := n.Properties.Get("link")
	if !ok {
		return ""
	}
	return v.Raw
}

// numberOf returns a property's numeric value when its kind is VNumber or
// VPercent, the two kinds that carry a decoded float.
func numberOf(props ast.Properties, key string) (float64, bool) {
	p, ok := props.GetAny(key)
	if !ok {
		return 0, false
	}
	switch p.Value.Kind {
	case ast.VNumber, ast.VPercent:
		return p.Value.Num, true
	default:
		return 0, false
	}
}

// boolOf returns a property's decoded boolean, when present and Boolean.
func boolOf(props ast.Properties, key string) (bool, bool) {
	p, ok := props.GetAny(key)
	if !ok || p.Value.Kind != ast.VBoolean {
		return false, false
	}
	return p.Value.Bool, true
}

// arrayOf returns a property's array items, when present and VArray.
func arrayOf(props ast.Properties, key string) ([]string, bool) {
	p, ok := props.GetAny(key)
	if !ok || p.Value.Kind != ast.VArray {
		return nil, false
	}
	return p.Value.Items, true
}

// hasItem reports whether needle is present in haystack.
func hasItem(haystack []string, needle string) bool {
	for _, h := range haystack {
		if h == needle {
			return true
		}
	}
	return false
}
