// Package eval expands expressions: literal text copies through and
// calls dispatch by name through a function registry.
//
// Arguments are lazy. A function receives its arguments as spans over
// the token sequence and expands only the ones it uses; the rest are
// skipped without evaluation.
//
// # Related Packages
//
//   - github.com/jagprog5/language-expression/token - Token sequences
//   - github.com/jagprog5/language-expression/diag - Error rendering
package eval
