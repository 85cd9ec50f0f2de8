package ir

import "testing"

func TestConstructorsWireParents(t *testing.T) {
	call := Call("if",
		Arg(Text("cond")),
		Arg(Text("yes"), Call("upper", Arg(Text("x")))),
	)
	tpl := Template(Text("pre"), call)

	if tpl.Type != TemplateType || len(tpl.Values) != 2 {
		t.Fatalf("template: %s with %d pieces", tpl.Type, len(tpl.Values))
	}
	if call.Parent != tpl || call.ParentIndex != 1 {
		t.Errorf("call parent = %v index %d", call.Parent, call.ParentIndex)
	}
	if call.NumArgs() != 2 {
		t.Errorf("NumArgs = %d, want 2", call.NumArgs())
	}
	arg := call.Values[1]
	if arg.Type != ArgType || arg.Parent != call || arg.ParentIndex != 1 {
		t.Errorf("second arg: %s parent %v index %d", arg.Type, arg.Parent, arg.ParentIndex)
	}
	inner := arg.Values[1]
	if inner.Type != CallType || inner.Name != "upper" || inner.Parent != arg {
		t.Errorf("inner call: %s %q parent %v", inner.Type, inner.Name, inner.Parent)
	}
}

func TestCloneIsDeep(t *testing.T) {
	orig := Template(Text("a"), Call("f", Arg(Text("b"))))
	cl := orig.Clone()

	if !Equal(orig, cl) {
		t.Fatal("clone not equal to original")
	}
	cl.Values[1].Values[0].Values[0].Text = "changed"
	if Equal(orig, cl) {
		t.Error("mutating a clone leaked into the original")
	}
	if cl.Values[0].Parent != cl {
		t.Error("clone children do not point at the clone")
	}
}

func TestCompare(t *testing.T) {
	tests := []struct {
		name string
		a, b *Node
		want int
	}{
		{name: "nil nodes", a: nil, b: nil, want: 0},
		{name: "nil before text", a: nil, b: Text("a"), want: -1},
		{name: "equal texts", a: Text("a"), b: Text("a"), want: 0},
		{name: "text ordering", a: Text("a"), b: Text("b"), want: -1},
		{name: "type ordering", a: Text("z"), b: Call("a"), want: -1},
		{name: "call name ordering", a: Call("f"), b: Call("g"), want: -1},
		{
			name: "arity breaks name ties",
			a:    Call("f", Arg()),
			b:    Call("f", Arg(), Arg()),
			want: -1,
		},
		{
			name: "deep equality ignores offsets",
			a:    Call("f", Arg(Text("x"))),
			b:    &Node{Type: CallType, Offset: 42, Name: "f", Values: []*Node{{Type: ArgType, Values: []*Node{{Type: TextType, Text: "x"}}}}},
			want: 0,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Compare(tt.a, tt.b); got != tt.want {
				t.Errorf("Compare = %d, want %d", got, tt.want)
			}
			if got := Compare(tt.b, tt.a); got != -tt.want {
				t.Errorf("Compare reversed = %d, want %d", got, -tt.want)
			}
		})
	}
}
