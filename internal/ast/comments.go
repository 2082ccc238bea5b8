package ast

import "tdl/internal/token"

// AttachComments maps each comment to the span of the nearest node that
// starts at or after the comment's offset, letting a host build an outline
// with inline documentation without the engine itself mutating its own
// output. It returns a map keyed by that node span's byte offset.
//
// This implements the editor-host hook spec §3 leaves implicit ("comments
// are preserved separately so a host may attach them to AST nodes");
// nothing in the engine's own pipeline calls it.
func AttachComments(comments []token.CommentTrivia, doc *Document) map[uint32][]token.CommentTrivia {
	if len(comments) == 0 || doc == nil {
		return nil
	}
	offsets := collectSpans(doc)
	out := make(map[uint32][]token.CommentTrivia)
	for _, c := range comments {
		target, ok := nearestFollowing(offsets, c.Span.Offset)
		if !ok {
			continue
		}
		out[target] = append(out[target], c)
	}
	return out
}

func collectSpans(doc *Document) []uint32 {
	var offsets []uint32
	for _, n := range doc.Networks {
		offsets = append(offsets, n.Span.Offset)
		for _, t := range n.Terminals {
			offsets = append(offsets, t.Span.Offset)
		}
		for _, net := range n.Nets {
			offsets = append(offsets, net.Span.Offset)
		}
		for _, sn := range n.Subnetworks {
			offsets = append(offsets, sn.Span.Offset)
			for _, m := range sn.Members {
				offsets = append(offsets, m.Span.Offset)
			}
		}
		if n.Messages != nil {
			offsets = append(offsets, n.Messages.Span.Offset)
			for _, e := range n.Messages.Entries {
				offsets = append(offsets, e.Span.Offset)
			}
		}
		if n.Filters != nil {
			offsets = append(offsets, n.Filters.Span.Offset)
		}
	}
	return offsets
}

func nearestFollowing(offsets []uint32, from uint32) (uint32, bool) {
	best := uint32(0)
	found := false
	for _, o := range offsets {
		if o >= from && (!found || o < best) {
			best = o
			found = true
		}
	}
	return best, found
}
