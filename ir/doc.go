// Package ir provides the tree representation of an expression.
//
// # Overview
//
// An expression is a flat interleaving of literal text and function
// calls; the ir package represents it as a tree of nodes, the shape
// consumers want when they manipulate or build expressions rather than
// scan them. Trees come from parse (which builds them from token
// sequences) or are constructed programmatically with the Template,
// Text, Call, and Arg constructors, and go back to source text through
// encode.
//
// # Node Structure
//
// A Node is a recursive tagged union; Type selects which fields hold
// data:
//
//   - TemplateType: the root, Values are the top-level pieces
//   - TextType: a maximal run of literal characters in Text, with
//     escapes already resolved
//   - CallType: a function call, Name plus one ArgType child in Values
//     per argument
//   - ArgType: one argument, Values are its pieces
//
// Pieces are TextType or CallType nodes. Each node keeps Parent and
// ParentIndex so tooling can walk upward; Offset is the byte offset of
// the node's origin in the source it was parsed from, -1 for nodes
// built programmatically.
package ir
