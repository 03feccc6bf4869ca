package ast

import (
	"fmt"
	"strings"

	"github.com/sol-lang/go-sol/token"
)

// Node is any Sol syntax node. The set of implementations is closed: the
// type-expression family, the declaration/field family, the statement
// extension, and the small expression set they reference.
type Node interface {
	isNode()
}

// Kind returns the node's kind name, the same tag its structured-data
// form carries.
func Kind(n Node) string {
	switch n.(type) {
	case ArrayType:
		return "array"
	case BasicType:
		return "basic"
	case CallbackType:
		return "callback"
	case GenericType:
		return "generic"
	case IntersectionType:
		return "intersection"
	case ModuleType:
		return "module"
	case OptionalType:
		return "optional"
	case TableType:
		return "table"
	case TypeofType:
		return "typeof"
	case TupleType:
		return "tuple"
	case UnionType:
		return "union"
	case VariadicType:
		return "variadic"
	case TypeField:
		return "type_field"
	case NameKey:
		return "name_key"
	case IndexSignatureKey:
		return "index_signature_key"
	case TypeAssertion:
		return "type_assertion"
	case TypeDeclaration:
		return "type_declaration"
	case GenericDeclaration:
		return "generic_declaration"
	case TypeSpecifier:
		return "type_specifier"
	case ExportedTypeDeclaration:
		return "exported_type_declaration"
	case CompoundAssignment:
		return "compound_assignment"
	case NameExpr:
		return "name_expr"
	case DotExpr:
		return "dot_expr"
	case NumberExpr:
		return "number_expr"
	case StringExpr:
		return "string_expr"
	}
	panic(fmt.Sprintf("ast: unknown node kind %T", n))
}

// Tokens calls f for every token ref in n, depth-first in source order.
// Returning false stops the walk.
func Tokens(n Node, f func(*token.Ref) bool) bool {
	return components(n,
		func(c Node) bool { return Tokens(c, f) },
		f)
}

// VisitTokens calls f for every token ref in n, in source order.
func VisitTokens(n Node, f func(*token.Ref)) {
	Tokens(n, func(r *token.Ref) bool {
		f(r)
		return true
	})
}

// Print renders n exactly: for every token in source order, its leading
// trivia, text, and trailing trivia. For an unmodified parsed node the
// result is the slice of source it was parsed from, byte for byte.
func Print(n Node) string {
	var sb strings.Builder
	Tokens(n, func(r *token.Ref) bool {
		r.Write(&sb)
		return true
	})
	return sb.String()
}

// StartPosition returns the start of n's first token, computed on demand
// so builder-produced trees always report current spans. It is nil when
// the first token was synthesized rather than parsed.
func StartPosition(n Node) *token.Pos {
	var pos *token.Pos
	Tokens(n, func(r *token.Ref) bool {
		pos = r.Start()
		return false
	})
	return pos
}

// EndPosition returns the position one past n's last token, or nil when
// that token was synthesized.
func EndPosition(n Node) *token.Pos {
	var pos *token.Pos
	Tokens(n, func(r *token.Ref) bool {
		pos = r.End()
		return true
	})
	return pos
}
