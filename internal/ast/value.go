// Package ast defines the TDL abstract syntax tree: a plain struct tree,
// tolerant of partial input, where every node carries a source.Span. A TDL
// document is small (a handful of networks, each with a handful of
// declarations), so a directly-walkable tree with no arena/ID indirection
// is simpler than the node-table layout a general-purpose compiler AST
// would need at scale.
package ast

import "tdl/internal/source"

// ValueKind is the tag of a Property's polymorphic value. The validator
// pattern-matches on Kind; it never inspects a runtime type assertion on an
// "any" payload.
type ValueKind uint8

const (
	VString ValueKind = iota
	VNumber
	VPercent
	VDuration
	VBoolean
	VIdentifier
	VHex
	VArray
)

func (k ValueKind) String() string {
	switch k {
	case VString:
		return "string"
	case VNumber:
		return "number"
	case VPercent:
		return "percent"
	case VDuration:
		return "duration"
	case VBoolean:
		return "boolean"
	case VIdentifier:
		return "identifier"
	case VHex:
		return "hex"
	case VArray:
		return "array"
	default:
		return "unknown"
	}
}

// Value is a tagged union over the token kinds a property assignment may
// produce. Raw is the verbatim lexeme for variants the exporter must
// preserve byte-for-byte (Hex, Duration) and for String/Identifier it is
// the processed text (quotes stripped for String). Num holds the decoded
// float for Number/Percent; Bool holds the decoded boolean; Items holds
// the element lexemes of an Array, in source order.
type Value struct {
	Kind  ValueKind
	Raw   string
	Num   float64
	Bool  bool
	Items []string
	Span  source.Span
}

// AsIdentifierLike returns (text, true) when the value is a String or
// Identifier, which is the lookup rule the validator's get_identifier
// helper uses: either variant is acceptable wherever a bare name is
// expected.
func (v Value) AsIdentifierLike() (string, bool) {
	switch v.Kind {
	case VIdentifier, VString:
		return v.Raw, true
	default:
		return "", false
	}
}
