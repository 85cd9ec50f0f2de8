package eval

import (
	"strings"
	"testing"
)

func TestScriptGetenv(t *testing.T) {
	t.Setenv("EXPRESSION_TEST_VAR", "zap")
	ctx := testContext()
	got, err := ctx.Eval([]byte(`{expr,getenv("EXPRESSION_TEST_VAR")}`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "zap" {
		t.Errorf("got %q want %q", got, "zap")
	}
}

func TestScriptLookup(t *testing.T) {
	ctx := testContext()
	got, err := ctx.Eval([]byte(`{expr,lookup("name")}`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "World" {
		t.Errorf("got %q want %q", got, "World")
	}
}

func TestScriptCompileError(t *testing.T) {
	ctx := testContext()
	_, err := ctx.Eval([]byte("{expr,1 +}"))
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "error compiling") {
		t.Errorf("expected compile error, got %v", err)
	}
}

func TestStringify(t *testing.T) {
	tests := []struct {
		in   any
		want string
	}{
		{nil, ""},
		{"s", "s"},
		{[]byte("b"), "b"},
		{true, "true"},
		{7, "7"},
		{int64(-2), "-2"},
		{uint64(9), "9"},
		{2.5, "2.5"},
		{0.1, "0.1"},
	}
	for _, tc := range tests {
		got, err := stringify(tc.in)
		if err != nil {
			t.Errorf("stringify(%#v): %v", tc.in, err)
			continue
		}
		if got != tc.want {
			t.Errorf("stringify(%#v): got %q want %q", tc.in, got, tc.want)
		}
	}
}
