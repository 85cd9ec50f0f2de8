package eval

import (
	"errors"
	"fmt"

	"github.com/jagprog5/language-expression/token"
)

// ErrUnknownFunc reports a call whose name has no registered function.
var ErrUnknownFunc = errors.New("unknown function")

// Func expands one call. Implementations expand the argument spans they
// need and return the replacement text.
type Func func(ctx *Context, call Call) (string, error)

// Call is one function call being expanded.
type Call struct {
	Name   string
	Offset int
	Args   []ArgSpan
}

// ArgSpan is one unexpanded argument. Expand walks its tokens on
// demand; a span never touched costs nothing.
type ArgSpan struct {
	ctx    *Context
	seq    token.Seq
	lo, hi int
}

// Expand renders the argument.
func (a ArgSpan) Expand() (string, error) {
	return a.ctx.expand(a.seq, a.lo, a.hi)
}

// CallError reports a failure expanding the call at Offset.
type CallError struct {
	Offset int
	Name   string
	Err    error
}

func (e *CallError) Error() string {
	return fmt.Sprintf("call %q at offset %d: %v", e.Name, e.Offset, e.Err)
}

func (e *CallError) Unwrap() error {
	return e.Err
}
