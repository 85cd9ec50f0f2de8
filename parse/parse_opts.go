package parse

import (
	"github.com/jagprog5/language-expression/token"
)

type parseOpts struct {
	maxDepth int
}

func (o *parseOpts) TokenizeOpts() []token.TokenOpt {
	if o.maxDepth > 0 {
		return []token.TokenOpt{token.TokenMaxDepth(o.maxDepth)}
	}
	return nil
}

type ParseOption func(*parseOpts)

// ParseMaxDepth caps call nesting during tokenization; zero means no
// cap.
func ParseMaxDepth(n int) ParseOption {
	return func(o *parseOpts) { o.maxDepth = n }
}
