// Package parse parses Sol type annotations and statements into syntax
// nodes.
//
// # Usage
//
//	// Parse a type expression
//	info, err := parse.ParseType([]byte("string | number"))
//	if err != nil {
//	    return err
//	}
//
//	// Parse a (possibly exported) type declaration
//	decl, err := parse.ParseDeclaration([]byte("export type Meters = number"))
//
//	// Parse with options
//	info, err := parse.ParseType(data, parse.ParseOwned(true))
//
// Parsed trees are lossless: ast.Print on the result reproduces the
// input byte for byte.
//
// # Related Packages
//
//   - github.com/sol-lang/go-sol/ast - syntax nodes
//   - github.com/sol-lang/go-sol/token - tokenization
//   - github.com/sol-lang/go-sol/encode - render nodes to text
package parse
