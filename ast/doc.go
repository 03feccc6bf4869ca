// Package ast defines the syntax nodes of the Sol concrete syntax tree:
// the type-expression family, the type declaration/field family, and the
// compound-assignment statement extension, together with the capabilities
// every node supports: exact source rendering, on-demand span computation,
// structural equality, read-only and mutating traversal, pure
// field-replacement builders, and conversion to source-independent
// ownership.
//
// Nodes are immutable values. Edits go through the With* builder methods,
// which return a new node with one field replaced, or through Rewrite,
// which rebuilds the subtrees it changes. Rendering a tree that was parsed
// and not modified reproduces the original source byte for byte, trivia
// included.
//
// Structural equality is trivia-sensitive: two trees that differ only in
// whitespace or comments compare unequal. There is no normalized-equality
// variant.
//
// A fully built tree may be read concurrently without synchronization.
// Rewrite requires exclusive access to the tree it mutates.
//
// # Related Packages
//
//   - github.com/sol-lang/go-sol/token - trivia-carrying tokens
//   - github.com/sol-lang/go-sol/parse - parse text into nodes
//   - github.com/sol-lang/go-sol/encode - render and serialize nodes
package ast
