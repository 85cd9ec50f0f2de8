package token

import (
	"errors"
	"strings"
	"testing"
)

func TestVerifyCorruption(t *testing.T) {
	src := "{outer,{inner,a,b},1,2}z"

	tests := []struct {
		name    string
		corrupt func(s Seq)
		detail  string
	}{
		{
			name:    "delta out of range",
			corrupt: func(s Seq) { s[0].Delta = 100 },
			detail:  "out of range",
		},
		{
			name:    "delta absent",
			corrupt: func(s Seq) { s[0].Delta = 0 },
			detail:  "out of range",
		},
		{
			name:    "first-arg delta on zero-arg call",
			corrupt: func(s Seq) { s[0].NumArgs = 0 },
			detail:  "zero-arg",
		},
		{
			name:    "arg count above chain length",
			corrupt: func(s Seq) { s[0].NumArgs = 4 },
			detail:  "chain has",
		},
		{
			name:    "arg count below chain length",
			corrupt: func(s Seq) { s[0].NumArgs = 2 },
			detail:  "longer than declared",
		},
		{
			name:    "first-arg delta lands on content",
			corrupt: func(s Seq) { s[1].FirstArgDelta = 1 },
			detail:  "terminator",
		},
		{
			name:    "offsets regress",
			corrupt: func(s Seq) { s[5].Offset = 3 },
			detail:  "not after",
		},
		{
			name:    "invalid type",
			corrupt: func(s Seq) { s[2].Type = TInvalid },
			detail:  "TInvalid",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			toks, err := Tokenize(nil, []byte(src))
			if err != nil {
				t.Fatal(err)
			}
			s := Seq(toks)
			if err := s.Verify(); err != nil {
				t.Fatalf("fresh sequence does not verify: %v", err)
			}
			tt.corrupt(s)
			err = s.Verify()
			if err == nil {
				t.Fatal("corrupted sequence verifies")
			}
			if !errors.Is(err, ErrMalformed) {
				t.Errorf("error %v does not unwrap to ErrMalformed", err)
			}
			if !strings.Contains(err.Error(), tt.detail) {
				t.Errorf("error %q does not mention %q", err.Error(), tt.detail)
			}
		})
	}
}

func TestVerifyStrayEndArg(t *testing.T) {
	// not reachable from Tokenize: an end-arg owned by no call, linking
	// into a character
	s := Seq{
		{Type: TEndArg, Offset: 0, NextArgDelta: 1},
		{Type: TCharacter, Offset: 1, Char: 'x'},
	}
	err := s.Verify()
	if err == nil {
		t.Fatal("stray end-arg verifies")
	}
	if !strings.Contains(err.Error(), "lands on") {
		t.Errorf("error %q does not mention the bad landing", err.Error())
	}
}
