package token_test

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"golang.org/x/tools/txtar"

	"github.com/jagprog5/language-expression/encode"
	"github.com/jagprog5/language-expression/stream"
	"github.com/jagprog5/language-expression/token"
)

// corpusFiles loads one archive from the shared testdata directory.
// Archive files end with a newline that is not part of the expression;
// callers trim it with trimArchiveNewline. The end-of-input error
// cases depend on that trim.
func corpusFiles(t *testing.T, name string) []txtar.File {
	t.Helper()
	ar, err := txtar.ParseFile(filepath.Join("..", "testdata", name))
	if err != nil {
		t.Fatalf("failed to read corpus %q: %v", name, err)
	}
	return ar.Files
}

func trimArchiveNewline(d []byte) []byte {
	return bytes.TrimSuffix(d, []byte("\n"))
}

// TestCorpus_Expressions runs every canonical corpus expression through
// the full pipeline: tokenize, verify, re-encode to identical bytes,
// re-tokenize to an identical sequence, and replay through the stream
// reader/writer pair.
func TestCorpus_Expressions(t *testing.T) {
	for _, f := range corpusFiles(t, "expressions.txtar") {
		t.Run(f.Name, func(t *testing.T) {
			src := trimArchiveNewline(f.Data)
			seq, err := token.Tokenize(nil, src)
			if err != nil {
				t.Fatalf("Tokenize(%q): %v", src, err)
			}
			if err := token.Seq(seq).Verify(); err != nil {
				t.Fatalf("Verify(%q): %v", src, err)
			}
			out, err := encode.TokensString(seq)
			if err != nil {
				t.Fatalf("TokensString(%q): %v", src, err)
			}
			if out != string(src) {
				t.Errorf("re-encode changed canonical text:\n got %q\nwant %q", out, src)
			}
			seq2, err := token.Tokenize(nil, []byte(out))
			if err != nil {
				t.Fatalf("re-Tokenize(%q): %v", out, err)
			}
			if diff := cmp.Diff(seq, seq2); diff != "" {
				t.Errorf("token sequences differ after round trip (-src +reencoded):\n%s", diff)
			}
			checkWalk(t, seq)

			var buf bytes.Buffer
			if err := stream.Copy(stream.NewWriter(&buf), stream.NewReader(seq)); err != nil {
				t.Fatalf("stream copy of %q: %v", src, err)
			}
			if buf.String() != string(src) {
				t.Errorf("stream copy changed canonical text:\n got %q\nwant %q", buf.String(), src)
			}
		})
	}
}

// checkWalk cross-checks every call's delta links against its walk:
// Skip stays in bounds, argument spans nest inside the subtree, and
// the end-arg chain visits NumArgs arguments.
func checkWalk(t *testing.T, seq token.Seq) {
	t.Helper()
	for i := range seq {
		if seq[i].Type != token.TFunction {
			continue
		}
		end := seq.Skip(i)
		if end <= i || end > len(seq) {
			t.Fatalf("Skip(%d) = %d out of range (len %d)", i, end, len(seq))
		}
		n := 0
		it := seq.Args(i)
		for {
			arg, ok := it.Next()
			if !ok {
				break
			}
			if arg.Start > arg.End || arg.End >= end {
				t.Fatalf("argument %d of call %d spans [%d,%d) outside subtree ending at %d",
					n, i, arg.Start, arg.End, end)
			}
			n++
		}
		if n != seq[i].NumArgs {
			t.Errorf("call %d iterated %d arguments, NumArgs is %d", i, n, seq[i].NumArgs)
		}
	}
}

// TestCorpus_Errors pairs each name/input with name/want, the exact
// error string Tokenize must produce.
func TestCorpus_Errors(t *testing.T) {
	type errCase struct {
		input, want string
	}
	cases := map[string]errCase{}
	var order []string
	for _, f := range corpusFiles(t, "errors.txtar") {
		name, role, ok := strings.Cut(f.Name, "/")
		if !ok {
			t.Fatalf("corpus file %q: want name/input or name/want", f.Name)
		}
		if _, seen := cases[name]; !seen {
			order = append(order, name)
		}
		c := cases[name]
		switch role {
		case "input":
			c.input = string(trimArchiveNewline(f.Data))
		case "want":
			c.want = string(trimArchiveNewline(f.Data))
		default:
			t.Fatalf("corpus file %q: unknown role %q", f.Name, role)
		}
		cases[name] = c
	}
	for _, name := range order {
		c := cases[name]
		t.Run(name, func(t *testing.T) {
			seq, err := token.Tokenize(nil, []byte(c.input))
			if err == nil {
				t.Fatalf("Tokenize(%q) = %d tokens, want error", c.input, len(seq))
			}
			if seq != nil {
				t.Errorf("Tokenize(%q) returned a partial sequence alongside the error", c.input)
			}
			if got := err.Error(); got != c.want {
				t.Errorf("Tokenize(%q) error %q, want %q", c.input, got, c.want)
			}
		})
	}
}
