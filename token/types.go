// Package token turns expression text into a flat, randomly indexable
// token sequence.
//
// An expression is literal text interleaved with function calls written
// {name,arg1,arg2}. Calls nest arbitrarily. A '\' escapes the unit after
// it. Tokenize walks the input once, left to right, with an explicit
// stack of open-function frames, and back-patches delta links into the
// output so that consumers can hop over a whole call subtree, or between
// sibling arguments, in O(1) per hop.
package token

import "fmt"

type TokenType int

const (
	// TInvalid is the zero value; it never appears in a Tokenize result.
	TInvalid TokenType = iota
	TCharacter
	TFunction
	TEndArg
)

func (t TokenType) String() string {
	return map[TokenType]string{
		TInvalid:   "TInvalid",
		TCharacter: "TCharacter",
		TFunction:  "TFunction",
		TEndArg:    "TEndArg",
	}[t]
}

// Token is one element of a tokenized expression. Type selects which
// fields are meaningful. Offsets are byte offsets into the input.
//
// Delta links encode structure. A present link is always >= 1; zero
// means absent.
//
//   - TFunction: Offset is the '{'. Name is the input span between the
//     '{' and the unit that ended the name (it may be empty, and is a
//     subslice of the input, not a copy). Adding Delta to the token's
//     index lands one past the end of the call's whole subtree. Adding
//     FirstArgDelta lands on the TEndArg terminating the first argument;
//     FirstArgDelta is absent iff NumArgs is zero.
//   - TEndArg: Offset is the ',' or '}' that closed the argument. Adding
//     NextArgDelta to the token's index lands on the TEndArg terminating
//     the next sibling argument; NextArgDelta is absent on a call's
//     final argument. The end-args of one call form a chain threaded
//     through the sequence.
//   - TCharacter: one literal input byte in Char.
type Token struct {
	Type   TokenType
	Offset int

	// TFunction
	Name          []byte
	NumArgs       int
	Delta         int
	FirstArgDelta int

	// TEndArg
	NextArgDelta int

	// TCharacter
	Char byte
}

func (t *Token) Info() string {
	return fmt.Sprintf("%s at offset %d", t.Type, t.Offset)
}

func (t *Token) String() string {
	switch t.Type {
	case TFunction:
		return fmt.Sprintf("{%s args=%d delta=%d firstArg=%d", t.Name, t.NumArgs, t.Delta, t.FirstArgDelta)
	case TEndArg:
		if t.NextArgDelta == 0 {
			return "}"
		}
		return fmt.Sprintf(", next=%d", t.NextArgDelta)
	case TCharacter:
		return fmt.Sprintf("%q", t.Char)
	default:
		return t.Type.String()
	}
}
