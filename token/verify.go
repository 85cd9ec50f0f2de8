package token

import "fmt"

// Verify audits the structural invariants of a tokenized sequence:
// offsets strictly increase, delta links are present exactly when they
// should be and land on tokens of the right type, and each call's
// end-arg chain has exactly NumArgs links, the last of them sitting at
// the end of the call's subtree.
//
// Tokenize output always verifies; the check exists for sequences that
// were built by hand or crossed a process boundary.
func (s Seq) Verify() error {
	for i := range s {
		t := &s[i]
		if i > 0 && t.Offset <= s[i-1].Offset {
			return fmt.Errorf("%w: token %d: offset %d not after %d", ErrMalformed, i, t.Offset, s[i-1].Offset)
		}
		switch t.Type {
		case TCharacter:
		case TEndArg:
			if d := t.NextArgDelta; d != 0 {
				if d < 1 || i+d >= len(s) {
					return fmt.Errorf("%w: token %d: next-arg delta %d out of range", ErrMalformed, i, d)
				}
				if s[i+d].Type != TEndArg {
					return fmt.Errorf("%w: token %d: next-arg delta lands on %s", ErrMalformed, i, s[i+d].Type)
				}
			}
		case TFunction:
			if t.Delta < 1 || i+t.Delta > len(s) {
				return fmt.Errorf("%w: token %d: delta %d out of range", ErrMalformed, i, t.Delta)
			}
			if err := s.verifyChain(i); err != nil {
				return err
			}
		default:
			return fmt.Errorf("%w: token %d: %s", ErrMalformed, i, t.Type)
		}
	}
	return nil
}

func (s Seq) verifyChain(fn int) error {
	t := &s[fn]
	if t.NumArgs == 0 {
		if t.FirstArgDelta != 0 {
			return fmt.Errorf("%w: token %d: first-arg delta on a zero-arg call", ErrMalformed, fn)
		}
		if t.Delta != 1 {
			return fmt.Errorf("%w: token %d: zero-arg call with delta %d", ErrMalformed, fn, t.Delta)
		}
		return nil
	}
	last := fn + t.Delta - 1
	e := fn + t.FirstArgDelta
	if t.FirstArgDelta < 1 || e > last {
		return fmt.Errorf("%w: token %d: first-arg delta %d out of range", ErrMalformed, fn, t.FirstArgDelta)
	}
	for n := 1; ; n++ {
		if s[e].Type != TEndArg {
			return fmt.Errorf("%w: token %d: arg %d terminator at %d is %s", ErrMalformed, fn, n, e, s[e].Type)
		}
		d := s[e].NextArgDelta
		if d == 0 {
			if n != t.NumArgs {
				return fmt.Errorf("%w: token %d: end-arg chain has %d links, call declares %d", ErrMalformed, fn, n, t.NumArgs)
			}
			if e != last {
				return fmt.Errorf("%w: token %d: final end-arg at %d, subtree ends at %d", ErrMalformed, fn, e, last)
			}
			return nil
		}
		if n == t.NumArgs {
			return fmt.Errorf("%w: token %d: end-arg chain longer than declared %d", ErrMalformed, fn, t.NumArgs)
		}
		e += d
		if e > last {
			return fmt.Errorf("%w: token %d: end-arg chain escapes the subtree at %d", ErrMalformed, fn, e)
		}
	}
}
