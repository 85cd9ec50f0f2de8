package encode

import (
	"bytes"
	"fmt"
	"io"

	"github.com/jagprog5/language-expression/ir"
	"github.com/jagprog5/language-expression/token"
)

// EncodeTokens renders a token sequence back to source text in one
// linear pass. The output tokenizes to a structurally identical
// sequence; offsets shift where the original had redundant escapes.
func EncodeTokens(seq token.Seq, w io.Writer, opts ...EncodeOption) error {
	es := &EncState{}
	for _, o := range opts {
		o(es)
	}
	sep := func(c byte) string {
		return applyColor(es, ir.CallType, SepColor, string(c))
	}
	for i := range seq {
		t := &seq[i]
		switch t.Type {
		case token.TFunction:
			if j := bytes.IndexAny(t.Name, string([]byte{token.Sep, token.Close})); j >= 0 {
				return fmt.Errorf("call name %q cannot contain %q", t.Name, t.Name[j])
			}
			name := applyColor(es, ir.CallType, NameColor, string(t.Name))
			if err := writeString(w, sep(token.Open)+name); err != nil {
				return err
			}
			if t.NumArgs == 0 {
				if err := writeString(w, sep(token.Close)); err != nil {
					return err
				}
				continue
			}
			if err := writeString(w, sep(token.Sep)); err != nil {
				return err
			}
			es.depth++
		case token.TEndArg:
			glyph := token.Sep
			if t.NextArgDelta == 0 {
				glyph = token.Close
				es.depth--
			}
			if err := writeString(w, sep(glyph)); err != nil {
				return err
			}
		case token.TCharacter:
			if err := encodeText(string(t.Char), w, es); err != nil {
				return err
			}
		default:
			return fmt.Errorf("cannot encode %s token", t.Type)
		}
	}
	return nil
}

// TokensString is EncodeTokens into a string, for tests and tools.
func TokensString(seq token.Seq) (string, error) {
	var b bytes.Buffer
	if err := EncodeTokens(seq, &b); err != nil {
		return "", err
	}
	return b.String(), nil
}
