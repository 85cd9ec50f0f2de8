package format

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/goccy/go-yaml"

	"github.com/jagprog5/language-expression/token"
)

// Row is one token of a dump, flattened for serialization. Delta fields
// keep the sequence convention that zero means absent, so omitempty
// drops exactly the absent links.
type Row struct {
	Index         int     `json:"index" yaml:"index"`
	Offset        int     `json:"offset" yaml:"offset"`
	Kind          string  `json:"kind" yaml:"kind"`
	Name          *string `json:"name,omitempty" yaml:"name,omitempty"`
	NumArgs       int     `json:"numArgs,omitempty" yaml:"numArgs,omitempty"`
	Delta         int     `json:"delta,omitempty" yaml:"delta,omitempty"`
	FirstArgDelta int     `json:"firstArgDelta,omitempty" yaml:"firstArgDelta,omitempty"`
	NextArgDelta  int     `json:"nextArgDelta,omitempty" yaml:"nextArgDelta,omitempty"`
	Char          string  `json:"char,omitempty" yaml:"char,omitempty"`
}

func kindName(t token.TokenType) string {
	n, ok := map[token.TokenType]string{
		token.TCharacter: "character",
		token.TFunction:  "function",
		token.TEndArg:    "endArg",
	}[t]
	if !ok {
		return t.String()
	}
	return n
}

// Rows flattens a token sequence for serialization.
func Rows(seq token.Seq) []Row {
	rows := make([]Row, len(seq))
	for i := range seq {
		t := &seq[i]
		r := Row{Index: i, Offset: t.Offset, Kind: kindName(t.Type)}
		switch t.Type {
		case token.TFunction:
			name := string(t.Name)
			r.Name = &name
			r.NumArgs = t.NumArgs
			r.Delta = t.Delta
			r.FirstArgDelta = t.FirstArgDelta
		case token.TEndArg:
			r.NextArgDelta = t.NextArgDelta
		case token.TCharacter:
			r.Char = string(t.Char)
		}
		rows[i] = r
	}
	return rows
}

// Dump writes seq to w in the chosen format.
func Dump(w io.Writer, seq token.Seq, f Format) error {
	switch f {
	case TextFormat:
		return dumpText(w, seq)
	case JSONFormat:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(Rows(seq))
	case YAMLFormat:
		d, err := yaml.Marshal(Rows(seq))
		if err != nil {
			return err
		}
		_, err = w.Write(d)
		return err
	}
	return fmt.Errorf("%w: %d", ErrBadFormat, f)
}

func dumpText(w io.Writer, seq token.Seq) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "IDX\tOFFSET\tKIND\tTOKEN")
	for i := range seq {
		t := &seq[i]
		fmt.Fprintf(tw, "%d\t%d\t%s\t%s\n", i, t.Offset, kindName(t.Type), t.String())
	}
	return tw.Flush()
}
