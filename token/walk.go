package token

// Seq is a token sequence as produced by Tokenize.
type Seq []Token

// Skip returns the index one past the subtree rooted at i: one past the
// whole call for a TFunction, i+1 otherwise.
func (s Seq) Skip(i int) int {
	if s[i].Type == TFunction {
		return i + s[i].Delta
	}
	return i + 1
}

// Arg is one argument span of a call. The argument's content tokens
// occupy [Start, End); End indexes the TEndArg that terminated it.
type Arg struct {
	Start, End int
}

// Args returns an iterator over the argument spans of the call at fn,
// in order, following the end-arg chain. Each hop is O(1).
func (s Seq) Args(fn int) ArgIter {
	if s[fn].FirstArgDelta == 0 {
		return ArgIter{next: -1}
	}
	return ArgIter{s: s, cur: fn + 1, next: fn + s[fn].FirstArgDelta}
}

type ArgIter struct {
	s    Seq
	cur  int // start of the next argument's content
	next int // index of the end-arg terminating it, -1 when done
}

func (it *ArgIter) Next() (Arg, bool) {
	if it.next < 0 {
		return Arg{}, false
	}
	a := Arg{Start: it.cur, End: it.next}
	if d := it.s[it.next].NextArgDelta; d == 0 {
		it.next = -1
	} else {
		it.cur = it.next + 1
		it.next += d
	}
	return a, true
}
