package eval

import (
	"errors"
	"fmt"
	"strings"

	"github.com/jagprog5/language-expression/debug"
	"github.com/jagprog5/language-expression/encode"
	"github.com/jagprog5/language-expression/token"
)

// Env is the variable environment expansion runs against.
type Env map[string]any

// Context holds the function registry and environment for expansion.
type Context struct {
	funcs       map[string]Func
	env         Env
	maxDepth    int
	passthrough bool
}

// NewContext creates a Context with the builtin functions registered.
// Options apply in order.
func NewContext(opts ...Option) *Context {
	c := &Context{
		funcs: builtins(),
		env:   Env{},
	}
	for _, o := range opts {
		o(c)
	}
	return c
}

// Env returns the context's variable environment.
func (c *Context) Env() Env {
	return c.env
}

// Eval tokenizes src and expands it.
func (c *Context) Eval(src []byte) (string, error) {
	var topts []token.TokenOpt
	if c.maxDepth > 0 {
		topts = append(topts, token.TokenMaxDepth(c.maxDepth))
	}
	seq, err := token.Tokenize(nil, src, topts...)
	if err != nil {
		return "", err
	}
	return c.EvalTokens(seq)
}

// EvalTokens expands a token sequence produced by token.Tokenize.
func (c *Context) EvalTokens(seq token.Seq) (string, error) {
	return c.expand(seq, 0, len(seq))
}

// expand renders the tokens in [lo, hi): characters copy through, calls
// dispatch, subtrees advance via Skip.
func (c *Context) expand(seq token.Seq, lo, hi int) (string, error) {
	var b strings.Builder
	i := lo
	for i < hi {
		switch seq[i].Type {
		case token.TCharacter:
			b.WriteByte(seq[i].Char)
			i++
		case token.TFunction:
			out, err := c.call(seq, i)
			if err != nil {
				return "", err
			}
			b.WriteString(out)
			i = seq.Skip(i)
		default:
			return "", fmt.Errorf("%w: stray %s token %d", token.ErrMalformed, seq[i].Type, i)
		}
	}
	return b.String(), nil
}

func (c *Context) call(seq token.Seq, fi int) (string, error) {
	fn := &seq[fi]
	name := string(fn.Name)
	f, ok := c.funcs[name]
	if !ok {
		if c.passthrough {
			return encode.TokensString(seq[fi:seq.Skip(fi)])
		}
		return "", &CallError{Offset: fn.Offset, Name: name, Err: ErrUnknownFunc}
	}
	call := Call{Name: name, Offset: fn.Offset}
	it := seq.Args(fi)
	for {
		a, ok := it.Next()
		if !ok {
			break
		}
		call.Args = append(call.Args, ArgSpan{ctx: c, seq: seq, lo: a.Start, hi: a.End})
	}
	out, err := f(c, call)
	if err != nil {
		var ce *CallError
		if errors.As(err, &ce) {
			// keep the innermost failing call's position
			return "", err
		}
		return "", &CallError{Offset: fn.Offset, Name: name, Err: err}
	}
	if debug.Eval() {
		debug.Logf("eval", "%s at %d gave %q\n", name, fn.Offset, out)
	}
	return out, nil
}
