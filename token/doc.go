// Package token provides the token layer of the Sol concrete syntax tree:
// trivia-carrying tokens, source positions, the dialect lexer, and
// synthesis of default tokens from fixed literals.
//
// # Usage
//
//	// Tokenize Sol source
//	refs, err := token.Tokenize([]byte("type Meters = number"))
//	if err != nil {
//	    return err
//	}
//
//	// Synthesize a default token
//	colon := token.Symbol(": ")
//
// Every token carries its leading and trailing trivia (whitespace and
// comments), so concatenating the refs of a tokenized document reproduces
// it byte for byte.
//
// # Related Packages
//
//   - github.com/sol-lang/go-sol/ast - syntax nodes built on refs
//   - github.com/sol-lang/go-sol/parse - parse text into nodes
package token
