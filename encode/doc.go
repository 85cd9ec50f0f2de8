// Package encode renders expression trees and token sequences back to
// source text.
//
// Escaping is contextual and minimal: the escape unit and '{' are
// escaped everywhere, while ',' and '}' are escaped only inside an open
// call, where they would otherwise act structurally. Encoding a parsed
// input therefore reproduces an expression that tokenizes to the same
// structure, though not necessarily the same bytes (redundant escapes
// are not preserved).
//
// With EncodeColors the output carries ANSI colors for call names,
// structural punctuation, and escape pairs, for terminal display.
package encode
