package ir

type Node struct {
	Type        Type
	Parent      *Node
	ParentIndex int

	// Offset is the byte offset of the node's origin in the parsed
	// source, -1 when the node was built programmatically.
	Offset int

	// Name is a call's function name, raw input bytes (names have no
	// escape processing).
	Name string

	// Text is a text node's literal content with escapes resolved.
	Text string

	// Values holds a template's or an argument's pieces, or a call's
	// ArgType children.
	Values []*Node
}

// Template builds a root node from pieces (TextType or CallType nodes).
func Template(pieces ...*Node) *Node {
	n := &Node{Type: TemplateType, Offset: -1}
	n.Append(pieces...)
	return n
}

// Text builds a literal text node.
func Text(s string) *Node {
	return &Node{Type: TextType, Offset: -1, Text: s}
}

// Call builds a call node from a name and ArgType children.
func Call(name string, args ...*Node) *Node {
	n := &Node{Type: CallType, Offset: -1, Name: name}
	n.Append(args...)
	return n
}

// Arg builds one argument from pieces.
func Arg(pieces ...*Node) *Node {
	n := &Node{Type: ArgType, Offset: -1}
	n.Append(pieces...)
	return n
}

// Append adds children to a composite node, maintaining parent links.
func (y *Node) Append(children ...*Node) {
	for _, c := range children {
		c.Parent = y
		c.ParentIndex = len(y.Values)
		y.Values = append(y.Values, c)
	}
}

func (y *Node) Clone() *Node {
	res := &Node{}
	return y.CloneTo(res)
}

func (y *Node) CloneTo(dst *Node) *Node {
	dst.Type = y.Type
	dst.Parent = y.Parent
	dst.ParentIndex = y.ParentIndex
	dst.Offset = y.Offset
	dst.Name = y.Name
	dst.Text = y.Text
	dst.Values = make([]*Node, len(y.Values))
	for i, yv := range y.Values {
		dstI := &Node{}
		yv.CloneTo(dstI)
		dstI.Parent = dst
		dstI.ParentIndex = i
		dst.Values[i] = dstI
	}
	return dst
}

// NumArgs returns a call's argument count.
func (y *Node) NumArgs() int {
	if y.Type != CallType {
		return 0
	}
	return len(y.Values)
}
