package encode

import (
	"bytes"

	"github.com/jagprog5/language-expression/ir"
)

// MustString encodes node to a string, panicking on malformed nodes.
// For tests and tools working with trees they built themselves.
func MustString(node *ir.Node) string {
	buf := bytes.NewBuffer(nil)
	if err := Encode(node, buf); err != nil {
		panic(err)
	}
	return buf.String()
}
