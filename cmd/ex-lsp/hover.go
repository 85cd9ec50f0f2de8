package main

import (
	"context"
	"fmt"

	"github.com/jagprog5/language-expression/token"
	"go.lsp.dev/protocol"
)

// Hover describes the innermost call enclosing the cursor: its name
// and argument count. Hovering literal text outside any call yields
// nothing.
func (s *Server) Hover(ctx context.Context, params *protocol.HoverParams) (*protocol.Hover, error) {
	doc := s.docs.get(string(params.TextDocument.URI))
	if doc == nil || doc.seq == nil {
		return nil, nil
	}

	off := lineColToOffset(doc.content, int(params.Position.Line), int(params.Position.Character))
	fi := enclosingCall(doc.seq, off)
	if fi < 0 {
		return nil, nil
	}
	fn := &doc.seq[fi]

	name := string(fn.Name)
	if name == "" {
		name = "(unnamed)"
	}
	hoverText := fmt.Sprintf("**Call:** `%s`\n\n**Args:** %d", name, fn.NumArgs)

	return &protocol.Hover{
		Contents: protocol.MarkupContent{
			Kind:  protocol.Markdown,
			Value: hoverText,
		},
	}, nil
}

// enclosingCall returns the index of the innermost function token
// whose source span contains off, or -1. Functions precede their
// arguments in the sequence and sibling spans are disjoint, so the
// last containing function is the innermost.
func enclosingCall(seq token.Seq, off int) int {
	best := -1
	for i := range seq {
		t := &seq[i]
		if t.Type != token.TFunction {
			continue
		}
		if off >= t.Offset && off < callEnd(seq, i) {
			best = i
		}
	}
	return best
}

// callEnd returns the source offset one past the call's close.
func callEnd(seq token.Seq, fi int) int {
	fn := &seq[fi]
	if fn.NumArgs == 0 {
		return fn.Offset + 1 + len(fn.Name) + 1
	}
	last := &seq[seq.Skip(fi)-1]
	return last.Offset + 1
}
