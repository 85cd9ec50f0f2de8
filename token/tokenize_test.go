package token

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestTokenize(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want Seq
	}{
		{
			name: "empty input",
			src:  "",
			want: nil,
		},
		{
			name: "plain text",
			src:  "ab",
			want: Seq{
				{Type: TCharacter, Offset: 0, Char: 'a'},
				{Type: TCharacter, Offset: 1, Char: 'b'},
			},
		},
		{
			name: "empty call",
			src:  "{}",
			want: Seq{
				{Type: TFunction, Offset: 0, Name: []byte{}, NumArgs: 0, Delta: 1},
			},
		},
		{
			name: "zero-arg call",
			src:  "{f}",
			want: Seq{
				{Type: TFunction, Offset: 0, Name: []byte("f"), NumArgs: 0, Delta: 1},
			},
		},
		{
			name: "one empty arg",
			src:  "{f,}",
			want: Seq{
				{Type: TFunction, Offset: 0, Name: []byte("f"), NumArgs: 1, Delta: 2, FirstArgDelta: 1},
				{Type: TEndArg, Offset: 3},
			},
		},
		{
			name: "two args",
			src:  "{f,a,b}",
			want: Seq{
				{Type: TFunction, Offset: 0, Name: []byte("f"), NumArgs: 2, Delta: 5, FirstArgDelta: 2},
				{Type: TCharacter, Offset: 3, Char: 'a'},
				{Type: TEndArg, Offset: 4, NextArgDelta: 2},
				{Type: TCharacter, Offset: 5, Char: 'b'},
				{Type: TEndArg, Offset: 6},
			},
		},
		{
			name: "three empty args",
			src:  "{f,,,}",
			want: Seq{
				{Type: TFunction, Offset: 0, Name: []byte("f"), NumArgs: 3, Delta: 4, FirstArgDelta: 1},
				{Type: TEndArg, Offset: 3, NextArgDelta: 1},
				{Type: TEndArg, Offset: 4, NextArgDelta: 1},
				{Type: TEndArg, Offset: 5},
			},
		},
		{
			name: "nested call with trailing text",
			src:  "{outer,{inner,a,b},1,2}z",
			want: Seq{
				{Type: TFunction, Offset: 0, Name: []byte("outer"), NumArgs: 3, Delta: 11, FirstArgDelta: 6},
				{Type: TFunction, Offset: 7, Name: []byte("inner"), NumArgs: 2, Delta: 5, FirstArgDelta: 2},
				{Type: TCharacter, Offset: 14, Char: 'a'},
				{Type: TEndArg, Offset: 15, NextArgDelta: 2},
				{Type: TCharacter, Offset: 16, Char: 'b'},
				{Type: TEndArg, Offset: 17},
				{Type: TEndArg, Offset: 18, NextArgDelta: 2},
				{Type: TCharacter, Offset: 19, Char: '1'},
				{Type: TEndArg, Offset: 20, NextArgDelta: 2},
				{Type: TCharacter, Offset: 21, Char: '2'},
				{Type: TEndArg, Offset: 22},
				{Type: TCharacter, Offset: 23, Char: 'z'},
			},
		},
		{
			name: "top-level separator and close are literal",
			src:  "a,b}",
			want: Seq{
				{Type: TCharacter, Offset: 0, Char: 'a'},
				{Type: TCharacter, Offset: 1, Char: ','},
				{Type: TCharacter, Offset: 2, Char: 'b'},
				{Type: TCharacter, Offset: 3, Char: '}'},
			},
		},
		{
			name: "escaped open",
			src:  `\{a`,
			want: Seq{
				{Type: TCharacter, Offset: 0, Char: '{'},
				{Type: TCharacter, Offset: 2, Char: 'a'},
			},
		},
		{
			name: "escapes of structural and plain units",
			src:  `,\{{a,\,}`,
			want: Seq{
				{Type: TCharacter, Offset: 0, Char: ','},
				{Type: TCharacter, Offset: 1, Char: '{'},
				{Type: TFunction, Offset: 3, Name: []byte("a"), NumArgs: 1, Delta: 3, FirstArgDelta: 2},
				{Type: TCharacter, Offset: 6, Char: ','},
				{Type: TEndArg, Offset: 8},
			},
		},
		{
			name: "escape of a plain unit keeps both",
			src:  `\a\n\{`,
			want: Seq{
				{Type: TCharacter, Offset: 0, Char: '\\'},
				{Type: TCharacter, Offset: 1, Char: 'a'},
				{Type: TCharacter, Offset: 2, Char: '\\'},
				{Type: TCharacter, Offset: 3, Char: 'n'},
				{Type: TCharacter, Offset: 4, Char: '{'},
			},
		},
		{
			name: "name content is raw",
			src:  `{a\b{c,}`,
			want: Seq{
				{Type: TFunction, Offset: 0, Name: []byte(`a\b{c`), NumArgs: 1, Delta: 2, FirstArgDelta: 1},
				{Type: TEndArg, Offset: 7},
			},
		},
		{
			name: "multi-byte runes are plain bytes",
			src:  "é",
			want: Seq{
				{Type: TCharacter, Offset: 0, Char: 0xc3},
				{Type: TCharacter, Offset: 1, Char: 0xa9},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Tokenize(nil, []byte(tt.src))
			if err != nil {
				t.Fatalf("Tokenize(%q): %v", tt.src, err)
			}
			if diff := cmp.Diff(tt.want, Seq(got)); diff != "" {
				t.Errorf("Tokenize(%q) mismatch (-want +got):\n%s", tt.src, diff)
			}
			if err := Seq(got).Verify(); err != nil {
				t.Errorf("Verify of Tokenize(%q): %v", tt.src, err)
			}
		})
	}
}

func TestTokenizeErrors(t *testing.T) {
	tests := []struct {
		name       string
		src        string
		wantKind   DiagKind
		wantOffset int
	}{
		{name: "open only", src: "{", wantKind: UnterminatedName, wantOffset: 1},
		{name: "name runs out", src: "{hi", wantKind: UnterminatedName, wantOffset: 3},
		{name: "inner name runs out", src: "{a,{bc", wantKind: UnterminatedName, wantOffset: 6},
		{name: "arg runs out", src: "{hi,ab", wantKind: UnclosedFunction, wantOffset: 0},
		{name: "outermost frame reported", src: "x{a,{b,c", wantKind: UnclosedFunction, wantOffset: 1},
		{name: "trailing escape", src: `ab\`, wantKind: DanglingEscape, wantOffset: 3},
		{name: "escape wins over unclosed", src: `{a,\`, wantKind: DanglingEscape, wantOffset: 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Tokenize(nil, []byte(tt.src))
			if got != nil {
				t.Errorf("Tokenize(%q) returned %d tokens alongside an error", tt.src, len(got))
			}
			var diag *Diagnostic
			if !errors.As(err, &diag) {
				t.Fatalf("Tokenize(%q) error %v, want a *Diagnostic", tt.src, err)
			}
			if diag.Kind != tt.wantKind || diag.Offset != tt.wantOffset {
				t.Errorf("Tokenize(%q) = %s at %d, want %s at %d",
					tt.src, diag.Kind, diag.Offset, tt.wantKind, tt.wantOffset)
			}
			if !errors.Is(err, tt.wantKind.sentinel()) {
				t.Errorf("Tokenize(%q) error does not unwrap to %v", tt.src, tt.wantKind.sentinel())
			}
		})
	}
}

func TestTokenizeMaxDepth(t *testing.T) {
	src := []byte("{a,{b,{c,}}}")

	if _, err := Tokenize(nil, src, TokenMaxDepth(3)); err != nil {
		t.Errorf("depth 3 within cap 3: %v", err)
	}

	got, err := Tokenize(nil, src, TokenMaxDepth(2))
	if got != nil {
		t.Errorf("returned %d tokens alongside an error", len(got))
	}
	var de *DepthError
	if !errors.As(err, &de) {
		t.Fatalf("error %v, want a *DepthError", err)
	}
	if de.Offset != 6 || de.Limit != 2 {
		t.Errorf("DepthError{Offset: %d, Limit: %d}, want {6, 2}", de.Offset, de.Limit)
	}
	if !errors.Is(err, ErrDepth) {
		t.Errorf("error does not unwrap to ErrDepth")
	}

	// the default is no cap
	deep := make([]byte, 0, 4096)
	for i := 0; i < 1024; i++ {
		deep = append(deep, '{', ',')
	}
	for i := 0; i < 1024; i++ {
		deep = append(deep, '}')
	}
	if _, err := Tokenize(nil, deep); err != nil {
		t.Errorf("uncapped deep nesting: %v", err)
	}
}

func TestTokenizeAppendsToDst(t *testing.T) {
	first, err := Tokenize(nil, []byte("a"))
	if err != nil {
		t.Fatal(err)
	}
	both, err := Tokenize(first, []byte("{f,b}"))
	if err != nil {
		t.Fatal(err)
	}
	if len(both) != 4 {
		t.Fatalf("Expected 4 tokens, got %d", len(both))
	}
	if both[0].Type != TCharacter || both[0].Char != 'a' {
		t.Errorf("dst prefix clobbered: %s", both[0].String())
	}
	if both[1].Type != TFunction || both[1].Delta != 3 {
		t.Errorf("appended call = %s, want delta 3", both[1].String())
	}
}

func TestTokenizeOffsetsWithinInput(t *testing.T) {
	srcs := []string{
		"{}",
		"{outer,{inner,a,b},1,2}z",
		`,\{{a,\,}`,
		`\a\n\{`,
		"plain text, nothing else",
	}
	for _, src := range srcs {
		toks, err := Tokenize(nil, []byte(src))
		if err != nil {
			t.Fatalf("Tokenize(%q): %v", src, err)
		}
		prev := -1
		for i := range toks {
			off := toks[i].Offset
			if off <= prev {
				t.Errorf("%q: token %d offset %d not after %d", src, i, off, prev)
			}
			if off < 0 || off >= len(src) {
				t.Errorf("%q: token %d offset %d outside input", src, i, off)
			}
			prev = off
		}
	}
}
