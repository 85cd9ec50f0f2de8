// Package expression tokenizes, parses, and expands textual expressions
// of literal text and nested calls written {name,arg1,arg2}.
package expression

import (
	"github.com/jagprog5/language-expression/eval"
	"github.com/jagprog5/language-expression/ir"
	"github.com/jagprog5/language-expression/parse"
	"github.com/jagprog5/language-expression/token"
)

// Tokenize scans src into a flat token sequence.
func Tokenize(src []byte) (token.Seq, error) {
	return token.Tokenize(nil, src)
}

// Parse builds the tree form of src.
func Parse(src []byte) (*ir.Node, error) {
	return parse.Parse(src)
}

// Render expands src against vars using the builtin functions.
func Render(src []byte, vars map[string]any) (string, error) {
	return eval.NewContext(eval.WithEnv(vars)).Eval(src)
}

// Check reports the first syntax problem in src, or nil.
func Check(src []byte) error {
	_, err := token.Tokenize(nil, src)
	return err
}
