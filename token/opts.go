package token

type tokenOpts struct {
	maxDepth int
}

type TokenOpt func(*tokenOpts)

// TokenMaxDepth caps how deep calls may nest. A '{' that would open a
// frame beyond n fails tokenization with a DepthError. Zero, the
// default, means no cap.
func TokenMaxDepth(n int) TokenOpt {
	return func(o *tokenOpts) { o.maxDepth = n }
}
