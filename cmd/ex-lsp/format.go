package main

import (
	"context"
	"strings"

	"github.com/jagprog5/language-expression/encode"
	"go.lsp.dev/protocol"
)

// Formatting rewrites the document with canonical escaping. Documents
// that do not tokenize come back with no edits.
func (s *Server) Formatting(ctx context.Context, params *protocol.DocumentFormattingParams) ([]protocol.TextEdit, error) {
	doc := s.docs.get(string(params.TextDocument.URI))
	if doc == nil || doc.seq == nil {
		return nil, nil
	}

	formatted, err := encode.TokensString(doc.seq)
	if err != nil {
		return nil, nil
	}

	// If content hasn't changed, return empty edits
	if formatted == doc.content {
		return []protocol.TextEdit{}, nil
	}

	// Calculate line count for the range
	lines := strings.Count(doc.content, "\n")
	if len(doc.content) > 0 && doc.content[len(doc.content)-1] != '\n' {
		lines++
	}

	// Return a single edit that replaces the entire document
	return []protocol.TextEdit{
		{
			Range: protocol.Range{
				Start: protocol.Position{Line: 0, Character: 0},
				End: protocol.Position{
					Line:      uint32(lines),
					Character: 0,
				},
			},
			NewText: formatted,
		},
	}, nil
}
