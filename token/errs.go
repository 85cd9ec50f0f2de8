package token

import (
	"errors"
	"fmt"
)

var (
	ErrUnterminatedName = errors.New("unterminated function name")
	ErrUnclosedFunction = errors.New("unclosed function")
	ErrDanglingEscape   = errors.New("dangling escape")

	// ErrDepth is resource exhaustion, not a syntax error, and so is
	// carried by DepthError rather than Diagnostic.
	ErrDepth = errors.New("function nesting too deep")

	ErrMalformed = errors.New("malformed token sequence")
)

// DiagKind enumerates the syntax errors Tokenize can report.
type DiagKind int

const (
	UnterminatedName DiagKind = iota
	UnclosedFunction
	DanglingEscape
)

func (k DiagKind) String() string {
	return map[DiagKind]string{
		UnterminatedName: "UnterminatedName",
		UnclosedFunction: "UnclosedFunction",
		DanglingEscape:   "DanglingEscape",
	}[k]
}

func (k DiagKind) sentinel() error {
	return map[DiagKind]error{
		UnterminatedName: ErrUnterminatedName,
		UnclosedFunction: ErrUnclosedFunction,
		DanglingEscape:   ErrDanglingEscape,
	}[k]
}

// Diagnostic is a syntax error at a byte offset. For UnterminatedName
// and DanglingEscape the offset is one past the input's last unit; for
// UnclosedFunction it is the '{' of the outermost open call.
type Diagnostic struct {
	Kind   DiagKind
	Offset int
}

func NewDiagnostic(kind DiagKind, offset int) *Diagnostic {
	return &Diagnostic{Kind: kind, Offset: offset}
}

func (d *Diagnostic) Unwrap() error {
	return d.Kind.sentinel()
}

func (d *Diagnostic) Error() string {
	return fmt.Sprintf("%s at offset %d", d.Kind.sentinel().Error(), d.Offset)
}

// DepthError reports that a '{' at Offset would have nested calls
// deeper than the configured limit.
type DepthError struct {
	Offset int
	Limit  int
}

func (e *DepthError) Unwrap() error {
	return ErrDepth
}

func (e *DepthError) Error() string {
	return fmt.Sprintf("%s: limit %d at offset %d", ErrDepth.Error(), e.Limit, e.Offset)
}
