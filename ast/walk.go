package ast

import (
	"fmt"

	"github.com/sol-lang/go-sol/token"
)

// components calls fn for each direct child node of n and ft for each
// token ref n holds directly, interleaved in declaration order (the order
// the pieces appear in the grammar). Either func may be nil. Returning
// false stops the walk. This switch is the single place that knows each
// node kind's shape; rendering, spans, visiting and token walks all
// derive from it.
func components(n Node, fn func(Node) bool, ft func(*token.Ref) bool) bool {
	node := func(c Node) bool {
		if fn == nil {
			return true
		}
		return fn(c)
	}
	tok := func(r token.Ref) bool {
		if ft == nil {
			return true
		}
		return ft(&r)
	}
	nodes := func(p Punctuated[TypeInfo]) bool {
		return eachPair(p, func(t TypeInfo) bool { return node(t) }, tok)
	}

	switch v := n.(type) {
	case ArrayType:
		return tok(v.braces.open) && node(v.elem) && tok(v.braces.close)
	case BasicType:
		return tok(v.tok)
	case CallbackType:
		return tok(v.parens.open) && nodes(v.args) && tok(v.parens.close) &&
			tok(v.arrow) && node(v.ret)
	case GenericType:
		return tok(v.base) && tok(v.arrows.open) && nodes(v.params) && tok(v.arrows.close)
	case IntersectionType:
		return node(v.left) && tok(v.amp) && node(v.right)
	case ModuleType:
		return tok(v.module) && tok(v.dot) && node(v.index)
	case OptionalType:
		return node(v.base) && tok(v.question)
	case TableType:
		return tok(v.braces.open) &&
			eachPair(v.fields, func(f TypeField) bool { return node(f) }, tok) &&
			tok(v.braces.close)
	case TypeofType:
		return tok(v.typeofTok) && tok(v.parens.open) && node(v.expr) && tok(v.parens.close)
	case TupleType:
		return tok(v.parens.open) && nodes(v.types) && tok(v.parens.close)
	case UnionType:
		return node(v.left) && tok(v.pipe) && node(v.right)
	case VariadicType:
		return tok(v.ellipsis) && node(v.typ)

	case TypeField:
		return node(v.key) && tok(v.colon) && node(v.value)
	case NameKey:
		return tok(v.tok)
	case IndexSignatureKey:
		return tok(v.brackets.open) && node(v.inner) && tok(v.brackets.close)
	case TypeAssertion:
		return tok(v.op) && node(v.castTo)
	case TypeDeclaration:
		if !(tok(v.typeTok) && tok(v.name)) {
			return false
		}
		if v.generics != nil && !node(*v.generics) {
			return false
		}
		return tok(v.eq) && node(v.declareAs)
	case GenericDeclaration:
		return tok(v.arrows.open) &&
			eachPair(v.names, func(r token.Ref) bool { return tok(r) }, tok) &&
			tok(v.arrows.close)
	case TypeSpecifier:
		return tok(v.colon) && node(v.typ)
	case ExportedTypeDeclaration:
		return tok(v.export) && node(v.decl)

	case CompoundAssignment:
		return node(v.lhs) && tok(v.op.tok) && node(v.rhs)

	case NameExpr:
		return tok(v.tok)
	case DotExpr:
		return node(v.base) && tok(v.dot) && tok(v.name)
	case NumberExpr:
		return tok(v.tok)
	case StringExpr:
		return tok(v.tok)
	}
	panic(fmt.Sprintf("ast: unknown node kind %T", n))
}

func eachPair[T any](p Punctuated[T], item func(T) bool, tok func(token.Ref) bool) bool {
	for i := range p.pairs {
		if !item(p.pairs[i].item) {
			return false
		}
		if s := p.pairs[i].sep; s != nil {
			if !tok(*s) {
				return false
			}
		}
	}
	return true
}
