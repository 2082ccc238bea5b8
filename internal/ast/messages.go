package ast

import "tdl/internal/source"

// MessageCatalog is the `messages { ... }` block: an ordered sequence of
// MessageEntry. Duplicate message IDs are permitted syntactically.
type MessageCatalog struct {
	Entries []*MessageEntry
	Span    source.Span
}

// MessageEntry is one `J<major>[/<minor>] { ... }` entry.
type MessageEntry struct {
	MessageID  string
	Properties Properties
	Span       source.Span
}
