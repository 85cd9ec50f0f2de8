package main

import (
	"context"
	"errors"
	"sync"

	"github.com/jagprog5/language-expression/debug"
	"github.com/jagprog5/language-expression/diag"
	"github.com/jagprog5/language-expression/token"
	"go.lsp.dev/protocol"
)

// maxDepth bounds call nesting when tokenizing editor buffers.
const maxDepth = 10000

type documentStore struct {
	mu   sync.RWMutex
	docs map[string]*document
}

type document struct {
	uri     string
	content string
	version int32
	seq     token.Seq
	tokErr  error
}

func (ds *documentStore) get(uri string) *document {
	ds.mu.RLock()
	defer ds.mu.RUnlock()
	return ds.docs[uri]
}

func (ds *documentStore) put(uri string, content string, version int32) {
	ds.mu.Lock()
	defer ds.mu.Unlock()

	// Tokenize once per edit; readers get the sequence or the error,
	// never a partial result.
	seq, err := token.Tokenize(nil, []byte(content), token.TokenMaxDepth(maxDepth))
	if err != nil {
		seq = nil
	}
	ds.docs[uri] = &document{
		uri:     uri,
		content: content,
		version: version,
		seq:     seq,
		tokErr:  err,
	}
}

func (ds *documentStore) remove(uri string) {
	ds.mu.Lock()
	defer ds.mu.Unlock()
	delete(ds.docs, uri)
}

func (s *Server) publishDiagnostics(ctx context.Context, uri string) {
	doc := s.docs.get(uri)
	if doc == nil {
		return
	}

	diagnostics := s.validateDocument(doc)
	if debug.LSP() {
		debug.Logf("lsp", "%s v%d: %d tokens, %d diagnostics\n",
			uri, doc.version, len(doc.seq), len(diagnostics))
	}

	if s.conn != nil {
		s.conn.Notify(ctx, protocol.MethodTextDocumentPublishDiagnostics, &protocol.PublishDiagnosticsParams{
			URI:         protocol.DocumentURI(uri),
			Diagnostics: diagnostics,
		})
	}
}

// validateDocument converts the stored tokenize error, if any, into
// protocol diagnostics. A clean document yields the empty slice, which
// clears anything published earlier.
func (s *Server) validateDocument(doc *document) []protocol.Diagnostic {
	diagnostics := []protocol.Diagnostic{}
	if doc.tokErr == nil {
		return diagnostics
	}

	start := protocol.Position{}
	if off, ok := errOffset(doc.tokErr); ok {
		line, col := diag.LineCol([]byte(doc.content), off)
		start = protocol.Position{
			Line:      uint32(line - 1),
			Character: uint32(col - 1),
		}
	}
	diagnostics = append(diagnostics, protocol.Diagnostic{
		Range: protocol.Range{
			Start: start,
			End: protocol.Position{
				Line:      start.Line,
				Character: start.Character + 1,
			},
		},
		Severity: protocol.DiagnosticSeverityError,
		Message:  doc.tokErr.Error(),
		Source:   lsName,
	})
	return diagnostics
}

func errOffset(err error) (int, bool) {
	var d *token.Diagnostic
	if errors.As(err, &d) {
		return d.Offset, true
	}
	var de *token.DepthError
	if errors.As(err, &de) {
		return de.Offset, true
	}
	return 0, false
}

func (s *Server) DidOpen(ctx context.Context, params *protocol.DidOpenTextDocumentParams) error {
	s.docs.put(string(params.TextDocument.URI), params.TextDocument.Text, params.TextDocument.Version)
	s.publishDiagnostics(ctx, string(params.TextDocument.URI))
	return nil
}

func (s *Server) DidChange(ctx context.Context, params *protocol.DidChangeTextDocumentParams) error {
	uri := string(params.TextDocument.URI)
	doc := s.docs.get(uri)
	if doc == nil {
		return nil
	}

	// Sync is full-document, so each change carries the whole text.
	content := doc.content
	for _, change := range params.ContentChanges {
		content = change.Text
	}

	s.docs.put(uri, content, params.TextDocument.Version)
	s.publishDiagnostics(ctx, uri)
	return nil
}

func (s *Server) DidSave(ctx context.Context, params *protocol.DidSaveTextDocumentParams) error {
	s.publishDiagnostics(ctx, string(params.TextDocument.URI))
	return nil
}

func (s *Server) DidClose(ctx context.Context, params *protocol.DidCloseTextDocumentParams) error {
	uri := string(params.TextDocument.URI)
	s.docs.remove(uri)
	if s.conn != nil {
		s.conn.Notify(ctx, protocol.MethodTextDocumentPublishDiagnostics, &protocol.PublishDiagnosticsParams{
			URI:         protocol.DocumentURI(uri),
			Diagnostics: []protocol.Diagnostic{},
		})
	}
	return nil
}

func lineColToOffset(content string, line, col int) int {
	currentLine := 0
	currentCol := 0
	for i := 0; i < len(content); i++ {
		if currentLine == line && currentCol == col {
			return i
		}
		if content[i] == '\n' {
			currentLine++
			currentCol = 0
		} else {
			currentCol++
		}
	}
	return len(content)
}
