// Package parse materializes expression text, or an already tokenized
// sequence, into an ir tree.
package parse

import (
	"fmt"

	"github.com/jagprog5/language-expression/ir"
	"github.com/jagprog5/language-expression/token"
)

// Parse tokenizes d and builds its tree. Errors are the token package's
// types untouched, so callers can render them with diag.
func Parse(d []byte, opts ...ParseOption) (*ir.Node, error) {
	o := &parseOpts{}
	for _, f := range opts {
		f(o)
	}
	toks, err := token.Tokenize(nil, d, o.TokenizeOpts()...)
	if err != nil {
		return nil, err
	}
	return fromTokens(token.Seq(toks), false)
}

// FromTokens builds a tree from a token sequence. The sequence is
// verified first; sequences straight from Tokenize always pass.
func FromTokens(seq token.Seq) (*ir.Node, error) {
	return fromTokens(seq, true)
}

func fromTokens(seq token.Seq, verify bool) (*ir.Node, error) {
	if verify {
		if err := seq.Verify(); err != nil {
			return nil, err
		}
	}
	root := &ir.Node{Type: ir.TemplateType, Offset: 0}
	if err := pieces(root, seq, 0, len(seq)); err != nil {
		return nil, err
	}
	return root, nil
}

// pieces appends the tokens of [lo, hi) to parent as TextType runs and
// CallType subtrees.
func pieces(parent *ir.Node, s token.Seq, lo, hi int) error {
	i := lo
	for i < hi {
		switch s[i].Type {
		case token.TCharacter:
			off := s[i].Offset
			var run []byte
			for i < hi && s[i].Type == token.TCharacter {
				run = append(run, s[i].Char)
				i++
			}
			parent.Append(&ir.Node{Type: ir.TextType, Offset: off, Text: string(run)})
		case token.TFunction:
			call := &ir.Node{Type: ir.CallType, Offset: s[i].Offset, Name: string(s[i].Name)}
			it := s.Args(i)
			for {
				a, ok := it.Next()
				if !ok {
					break
				}
				off := s[a.End].Offset
				if a.Start < a.End {
					off = s[a.Start].Offset
				}
				arg := &ir.Node{Type: ir.ArgType, Offset: off}
				if err := pieces(arg, s, a.Start, a.End); err != nil {
					return err
				}
				call.Append(arg)
			}
			parent.Append(call)
			i = s.Skip(i)
		default:
			return fmt.Errorf("%w: unexpected %s at token %d", token.ErrMalformed, s[i].Type, i)
		}
	}
	return nil
}
