package expression

import (
	"errors"
	"testing"

	"github.com/jagprog5/language-expression/ir"
	"github.com/jagprog5/language-expression/token"
)

type renderTest struct {
	in, out string
}

var renderTests = []renderTest{
	{
		in:  `plain text`,
		out: `plain text`,
	},
	{
		in:  `{upper,hi}`,
		out: `HI`,
	},
	{
		in:  `Hello {env,name}!`,
		out: `Hello World!`,
	},
	{
		in:  `{if,{env,ok},yes,no}`,
		out: `yes`,
	},
}

func TestRender(t *testing.T) {
	vars := map[string]any{"name": "World", "ok": true}
	for i := range renderTests {
		tc := &renderTests[i]
		got, err := Render([]byte(tc.in), vars)
		if err != nil {
			t.Errorf("Render(%q): %v", tc.in, err)
			continue
		}
		if got != tc.out {
			t.Errorf("Render(%q): got %q want %q", tc.in, got, tc.out)
		}
	}
}

func TestTokenize(t *testing.T) {
	seq, err := Tokenize([]byte("{f,a}"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := seq.Verify(); err != nil {
		t.Errorf("Verify: %v", err)
	}
	if len(seq) != 3 || seq[0].Type != token.TFunction {
		t.Errorf("seq = %v", seq)
	}
}

func TestParse(t *testing.T) {
	node, err := Parse([]byte("a{f,b}"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if node.Type != ir.TemplateType || len(node.Values) != 2 {
		t.Errorf("node = %+v", node)
	}
	if node.Values[1].Type != ir.CallType || node.Values[1].Name != "f" {
		t.Errorf("call = %+v", node.Values[1])
	}
}

func TestCheck(t *testing.T) {
	if err := Check([]byte("fine {f,a} text")); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
	err := Check([]byte("{oops"))
	var d *token.Diagnostic
	if !errors.As(err, &d) {
		t.Fatalf("expected *token.Diagnostic, got %v", err)
	}
	if d.Kind != token.UnterminatedName {
		t.Errorf("kind = %v", d.Kind)
	}
}
