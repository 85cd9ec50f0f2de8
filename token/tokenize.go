package token

// frame is one open call. fn indexes the call's TFunction token in the
// output; lastEnd indexes its most recent TEndArg, -1 before the first.
type frame struct {
	fn      int
	args    int
	lastEnd int
	inName  bool
}

// Tokenize appends the token sequence of src to dst and returns the
// extended slice. Pass nil, or a previous result sliced to zero length,
// to control allocation. On error the returned slice is nil: no partial
// sequence escapes.
//
// The error is a *Diagnostic for syntax errors and a *DepthError when a
// TokenMaxDepth cap is exceeded.
func Tokenize(dst []Token, src []byte, opts ...TokenOpt) ([]Token, error) {
	o := &tokenOpts{}
	for _, opt := range opts {
		opt(o)
	}

	out := dst
	var frames []frame
	escaped := false
	escOff := 0

	for i := 0; i < len(src); i++ {
		c := src[i]

		if n := len(frames); n > 0 && frames[n-1].inName {
			top := &frames[n-1]
			switch classify(c, true) {
			case classSep:
				out[top.fn].Name = src[out[top.fn].Offset+1 : i]
				top.inName = false
			case classClose:
				out[top.fn].Name = src[out[top.fn].Offset+1 : i]
				out[top.fn].Delta = len(out) - top.fn
				frames = frames[:n-1]
			}
			// anything else is name content; nothing is emitted
			continue
		}

		if escaped {
			escaped = false
			switch c {
			case Escape, Open, Sep, Close:
				// structural meaning suppressed; the character sits at
				// the escape's offset
				out = append(out, Token{Type: TCharacter, Offset: escOff, Char: c})
			default:
				// nothing to suppress: the escape and the unit both
				// come through literally
				out = append(out, Token{Type: TCharacter, Offset: escOff, Char: Escape})
				out = append(out, Token{Type: TCharacter, Offset: i, Char: c})
			}
			continue
		}

		switch classify(c, false) {
		case classEscape:
			escaped, escOff = true, i
		case classOpen:
			if o.maxDepth > 0 && len(frames) == o.maxDepth {
				return nil, &DepthError{Offset: i, Limit: o.maxDepth}
			}
			frames = append(frames, frame{fn: len(out), lastEnd: -1, inName: true})
			out = append(out, Token{Type: TFunction, Offset: i})
		case classSep, classClose:
			n := len(frames)
			if n == 0 {
				// top level: ',' and '}' are ordinary characters
				out = append(out, Token{Type: TCharacter, Offset: i, Char: c})
				continue
			}
			top := &frames[n-1]
			end := len(out)
			if top.args == 0 {
				out[top.fn].FirstArgDelta = end - top.fn
			} else {
				out[top.lastEnd].NextArgDelta = end - top.lastEnd
			}
			top.args++
			top.lastEnd = end
			out = append(out, Token{Type: TEndArg, Offset: i})
			if c == Close {
				out[top.fn].NumArgs = top.args
				out[top.fn].Delta = len(out) - top.fn
				frames = frames[:n-1]
			}
		default:
			out = append(out, Token{Type: TCharacter, Offset: i, Char: c})
		}
	}

	if escaped {
		return nil, NewDiagnostic(DanglingEscape, len(src))
	}
	if n := len(frames); n > 0 {
		if frames[n-1].inName {
			return nil, NewDiagnostic(UnterminatedName, len(src))
		}
		return nil, NewDiagnostic(UnclosedFunction, out[frames[0].fn].Offset)
	}
	return out, nil
}
