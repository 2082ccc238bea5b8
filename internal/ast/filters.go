package ast

import "tdl/internal/source"

// FilterAction is exactly one of the two literal strings the grammar
// allows; any producer path assigning anything else is a bug (spec §3).
type FilterAction string

const (
	ActionAccept FilterAction = "accept"
	ActionDrop   FilterAction = "drop"
)

// FilterBlock is the `filters { inbound { ... } outbound { ... } }` block.
type FilterBlock struct {
	Inbound  []*FilterRule
	Outbound []*FilterRule
	Span     source.Span
}

// FilterRule is one `accept|drop <j-message> [where { cond }]` rule.
type FilterRule struct {
	Action    FilterAction
	MessageID string
	Where     *WhereClause // nil when absent: spec treats this as "match all"
	Span      source.Span
}

// WhereClause owns exactly one Condition.
type WhereClause struct {
	Condition Condition
	Span      source.Span
}

// CompareOp is a comparison operator token's meaning.
type CompareOp string

const (
	OpGe    CompareOp = ">="
	OpLe    CompareOp = "<="
	OpGt    CompareOp = ">"
	OpLt    CompareOp = "<"
	OpEqEq  CompareOp = "=="
	OpNotEq CompareOp = "!="
)

// Condition is `(field, operator, value-lexeme)`.
type Condition struct {
	Field      string
	Op         CompareOp
	ValueText  string
	Span       source.Span
}
