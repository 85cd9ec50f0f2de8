package debug

import (
	"bytes"
	"fmt"
	"os"

	"github.com/jagprog5/language-expression/encode"
	"github.com/jagprog5/language-expression/ir"
	"github.com/jagprog5/language-expression/token"
)

// Logf writes an area-prefixed line to stderr. Node and token sequence
// arguments render as expression text rather than struct dumps.
func Logf(area, msg string, args ...any) {
	for i := range args {
		a := args[i]
		switch x := a.(type) {
		case *ir.Node:
			buf := bytes.NewBuffer(nil)
			if err := encode.Encode(x, buf); err != nil {
				args[i] = fmt.Sprintf("[raw node] %v", x)
				continue
			}
			args[i] = buf.String()
		case token.Seq:
			args[i] = seqString(x)
		case bool, string, float64, int:

		default:
		}
	}
	fmt.Fprintf(os.Stderr, "["+area+"] "+msg, args...)
}

func seqString(s token.Seq) string {
	buf := bytes.NewBuffer(nil)
	for i := range s {
		if i > 0 {
			buf.WriteByte(' ')
		}
		buf.WriteString(s[i].String())
	}
	return buf.String()
}
