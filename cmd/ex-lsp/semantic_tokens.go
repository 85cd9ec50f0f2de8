package main

import (
	"context"

	"github.com/jagprog5/language-expression/token"
	"go.lsp.dev/protocol"
)

// tokenInfo is one semantic token before LSP delta encoding.
type tokenInfo struct {
	line      uint32
	character uint32
	length    uint32
	tokenType protocol.SemanticTokenTypes
}

// posScanner converts ascending byte offsets to 0-based line/character
// pairs with a single forward scan over the document.
type posScanner struct {
	content string
	off     int
	line    uint32
	char    uint32
}

func (p *posScanner) at(off int) (line, char uint32) {
	for p.off < off && p.off < len(p.content) {
		if p.content[p.off] == '\n' {
			p.line++
			p.char = 0
		} else {
			p.char++
		}
		p.off++
	}
	return p.line, p.char
}

// collectSemanticTokens maps the document's token sequence to LSP
// semantic tokens: call names highlight as functions, the structural
// bytes of calls and canonical escape pairs as operators. Literal text
// is left unhighlighted.
func (s *Server) collectSemanticTokens(doc *document) []uint32 {
	if doc.seq == nil {
		return nil
	}

	content := doc.content
	ps := &posScanner{content: content}
	var tokenList []tokenInfo
	add := func(off, length int, tt protocol.SemanticTokenTypes) {
		line, char := ps.at(off)
		tokenList = append(tokenList, tokenInfo{
			line:      line,
			character: char,
			length:    uint32(length),
			tokenType: tt,
		})
	}

	for i := range doc.seq {
		t := &doc.seq[i]
		switch t.Type {
		case token.TFunction:
			add(t.Offset, 1, protocol.SemanticTokenOperator)
			if len(t.Name) > 0 {
				add(t.Offset+1, len(t.Name), protocol.SemanticTokenFunction)
			}
			// the separator after the name, or the close of a
			// zero-argument call
			add(t.Offset+1+len(t.Name), 1, protocol.SemanticTokenOperator)
		case token.TEndArg:
			add(t.Offset, 1, protocol.SemanticTokenOperator)
		case token.TCharacter:
			if t.Offset+1 < len(content) && content[t.Offset] == '\\' && content[t.Offset+1] == t.Char {
				add(t.Offset, 2, protocol.SemanticTokenOperator)
			}
		}
	}

	// Index into the legend advertised in main.go.
	typeMap := map[protocol.SemanticTokenTypes]uint32{
		protocol.SemanticTokenFunction: 0,
		protocol.SemanticTokenOperator: 1,
	}

	// Token offsets ascend, so tokenList is already in the order the
	// wire encoding wants.
	tokens := []uint32{}
	var prevLine, prevChar uint32
	for _, ti := range tokenList {
		deltaLine := ti.line - prevLine
		deltaChar := ti.character
		if deltaLine == 0 {
			deltaChar = ti.character - prevChar
		}
		tokens = append(tokens, deltaLine, deltaChar, ti.length, typeMap[ti.tokenType], 0)
		prevLine = ti.line
		prevChar = ti.character
	}
	return tokens
}

func (s *Server) SemanticTokensFull(ctx context.Context, params *protocol.SemanticTokensParams) (*protocol.SemanticTokens, error) {
	doc := s.docs.get(string(params.TextDocument.URI))
	if doc == nil || doc.seq == nil {
		return &protocol.SemanticTokens{
			Data: []uint32{},
		}, nil
	}

	return &protocol.SemanticTokens{
		Data: s.collectSemanticTokens(doc),
	}, nil
}

func (s *Server) SemanticTokensRange(ctx context.Context, params *protocol.SemanticTokensRangeParams) (*protocol.SemanticTokens, error) {
	doc := s.docs.get(string(params.TextDocument.URI))
	if doc == nil || doc.seq == nil {
		return &protocol.SemanticTokens{
			Data: []uint32{},
		}, nil
	}

	// Clients tolerate tokens outside the requested range, so serve
	// the full document here too.
	return &protocol.SemanticTokens{
		Data: s.collectSemanticTokens(doc),
	}, nil
}
