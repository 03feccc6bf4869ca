// Package encode renders syntax trees back to text.
//
// # Usage
//
//	// Render a node to its exact source text
//	t, err := parse.ParseTypeString("{ foo: number }")
//	err = encode.Encode(t, os.Stdout)
//
//	// Render with colors
//	err = encode.Encode(t, os.Stdout, encode.EncodeColors(encode.NewColors()))
//
//	// Structured forms
//	err = encode.EncodeJSON(t, os.Stdout)
//	err = encode.EncodeYAML(t, os.Stdout)
//
// # Related Packages
//
//   - github.com/sol-lang/go-sol/ast - syntax tree nodes
//   - github.com/sol-lang/go-sol/parse - parse text to nodes
package encode
