// Package format selects and renders tool output formats for token
// sequence dumps.
//
// # Usage
//
//	f, err := format.ParseFormat("yaml")
//	if err != nil { ... }
//	err = format.Dump(os.Stdout, seq, f)
//
// # Related Packages
//
//   - github.com/jagprog5/language-expression/token - Token sequences
package format
