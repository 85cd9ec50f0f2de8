package encode

import (
	"fmt"
	"io"
	"strings"

	"github.com/jagprog5/language-expression/ir"
	"github.com/jagprog5/language-expression/token"
)

type EncState struct {
	colors *Colors
	depth  int
}

// Encode writes node as expression source text.
func Encode(node *ir.Node, w io.Writer, opts ...EncodeOption) error {
	es := &EncState{}
	for _, o := range opts {
		o(es)
	}
	return encode(node, w, es)
}

func encode(node *ir.Node, w io.Writer, es *EncState) error {
	switch node.Type {
	case ir.TemplateType, ir.ArgType:
		for _, v := range node.Values {
			if err := encode(v, w, es); err != nil {
				return err
			}
		}
		return nil
	case ir.TextType:
		return encodeText(node.Text, w, es)
	case ir.CallType:
		return encodeCall(node, w, es)
	}
	return fmt.Errorf("cannot encode %s node", node.Type)
}

func encodeCall(node *ir.Node, w io.Writer, es *EncState) error {
	if i := strings.IndexAny(node.Name, string([]byte{token.Sep, token.Close})); i >= 0 {
		return fmt.Errorf("call name %q cannot contain %q", node.Name, node.Name[i])
	}
	open := applyColor(es, ir.CallType, SepColor, string(token.Open))
	name := applyColor(es, ir.CallType, NameColor, node.Name)
	if err := writeString(w, open+name); err != nil {
		return err
	}
	es.depth++
	for _, arg := range node.Values {
		if err := writeString(w, applyColor(es, ir.CallType, SepColor, string(token.Sep))); err != nil {
			return err
		}
		if err := encode(arg, w, es); err != nil {
			return err
		}
	}
	es.depth--
	return writeString(w, applyColor(es, ir.CallType, SepColor, string(token.Close)))
}

// encodeText writes a literal run, escaping the bytes that would act
// structurally where the run sits.
func encodeText(s string, w io.Writer, es *EncState) error {
	var plain strings.Builder
	flush := func() error {
		if plain.Len() == 0 {
			return nil
		}
		err := writeString(w, applyColor(es, ir.TextType, ValueColor, plain.String()))
		plain.Reset()
		return err
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		if !token.NeedsEscape(c, es.depth > 0) {
			plain.WriteByte(c)
			continue
		}
		if err := flush(); err != nil {
			return err
		}
		pair := string([]byte{token.Escape, c})
		if err := writeString(w, applyColor(es, ir.TextType, EscapeColor, pair)); err != nil {
			return err
		}
	}
	return flush()
}

func writeString(w io.Writer, s string) error {
	_, err := io.WriteString(w, s)
	return err
}

func applyColor(es *EncState, t ir.Type, attr ColorAttr, v string) string {
	if es.colors == nil {
		return v
	}
	return es.colors.Color(t, attr, v)
}
