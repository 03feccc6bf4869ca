package ast

import (
	"fmt"

	"github.com/sol-lang/go-sol/token"
)

// Rewrite walks n depth-first and rebuilds it, offering two replacement
// points per node: pre runs before descending (its result's children are
// what gets descended into), post runs after. Either may be nil. A
// replacement must satisfy the slot it occupies: putting, say, a
// UnionType where an IndexedTypeInfo is required panics, mirroring the
// compile-time restriction on construction.
//
// Rewrite requires exclusive access to the tree: it must not run
// concurrently with any other walk over the same tree.
func Rewrite(n Node, pre, post func(Node) Node) Node {
	if pre != nil {
		n = pre(n)
	}
	n = rebuild(n, func(c Node) Node { return Rewrite(c, pre, post) }, nil)
	if post != nil {
		n = post(n)
	}
	return n
}

// Owned returns a deep copy of n whose token text is independent of the
// source buffer the tree was parsed from. The copy renders identically to
// and compares structurally equal with n.
func Owned(n Node) Node {
	return rebuild(n, Owned, token.Ref.Owned)
}

// OwnedAs is Owned with the node kind preserved in the type system.
func OwnedAs[T Node](n T) T {
	return Owned(n).(T)
}

// rebuild reconstructs n with fn applied to each direct child node and ft
// to each directly held token ref. Like components, this switch is
// centralized: it is the one place that knows how to put each node kind
// back together.
func rebuild(n Node, fn func(Node) Node, ft func(token.Ref) token.Ref) Node {
	node := func(c Node) Node {
		if fn == nil {
			return c
		}
		return fn(c)
	}
	tok := func(r token.Ref) token.Ref {
		if ft == nil {
			return r
		}
		return ft(r)
	}
	span := func(c ContainedSpan) ContainedSpan {
		return ContainedSpan{open: tok(c.open), close: tok(c.close)}
	}
	types := func(p Punctuated[TypeInfo]) Punctuated[TypeInfo] {
		return rebuildPairs(p, func(t TypeInfo) TypeInfo { return node(t).(TypeInfo) }, tok)
	}

	switch v := n.(type) {
	case ArrayType:
		v.braces = span(v.braces)
		v.elem = node(v.elem).(TypeInfo)
		return v
	case BasicType:
		v.tok = tok(v.tok)
		return v
	case CallbackType:
		v.parens = span(v.parens)
		v.args = types(v.args)
		v.arrow = tok(v.arrow)
		v.ret = node(v.ret).(TypeInfo)
		return v
	case GenericType:
		v.base = tok(v.base)
		v.arrows = span(v.arrows)
		v.params = types(v.params)
		return v
	case IntersectionType:
		v.left = node(v.left).(TypeInfo)
		v.amp = tok(v.amp)
		v.right = node(v.right).(TypeInfo)
		return v
	case ModuleType:
		v.module = tok(v.module)
		v.dot = tok(v.dot)
		v.index = node(v.index).(IndexedTypeInfo)
		return v
	case OptionalType:
		v.base = node(v.base).(TypeInfo)
		v.question = tok(v.question)
		return v
	case TableType:
		v.braces = span(v.braces)
		v.fields = rebuildPairs(v.fields, func(f TypeField) TypeField { return node(f).(TypeField) }, tok)
		return v
	case TypeofType:
		v.typeofTok = tok(v.typeofTok)
		v.parens = span(v.parens)
		v.expr = node(v.expr).(Expr)
		return v
	case TupleType:
		v.parens = span(v.parens)
		v.types = types(v.types)
		return v
	case UnionType:
		v.left = node(v.left).(TypeInfo)
		v.pipe = tok(v.pipe)
		v.right = node(v.right).(TypeInfo)
		return v
	case VariadicType:
		v.ellipsis = tok(v.ellipsis)
		v.typ = node(v.typ).(TypeInfo)
		return v

	case TypeField:
		v.key = node(v.key).(TypeFieldKey)
		v.colon = tok(v.colon)
		v.value = node(v.value).(TypeInfo)
		return v
	case NameKey:
		v.tok = tok(v.tok)
		return v
	case IndexSignatureKey:
		v.brackets = span(v.brackets)
		v.inner = node(v.inner).(TypeInfo)
		return v
	case TypeAssertion:
		v.op = tok(v.op)
		v.castTo = node(v.castTo).(TypeInfo)
		return v
	case TypeDeclaration:
		v.typeTok = tok(v.typeTok)
		v.name = tok(v.name)
		if v.generics != nil {
			g := node(*v.generics).(GenericDeclaration)
			v.generics = &g
		}
		v.eq = tok(v.eq)
		v.declareAs = node(v.declareAs).(TypeInfo)
		return v
	case GenericDeclaration:
		v.arrows = span(v.arrows)
		v.names = rebuildPairs(v.names, tok, tok)
		return v
	case TypeSpecifier:
		v.colon = tok(v.colon)
		v.typ = node(v.typ).(TypeInfo)
		return v
	case ExportedTypeDeclaration:
		v.export = tok(v.export)
		v.decl = node(v.decl).(TypeDeclaration)
		return v

	case CompoundAssignment:
		v.lhs = node(v.lhs).(Var)
		v.op.tok = tok(v.op.tok)
		v.rhs = node(v.rhs).(Expr)
		return v

	case NameExpr:
		v.tok = tok(v.tok)
		return v
	case DotExpr:
		v.base = node(v.base).(Var)
		v.dot = tok(v.dot)
		v.name = tok(v.name)
		return v
	case NumberExpr:
		v.tok = tok(v.tok)
		return v
	case StringExpr:
		v.tok = tok(v.tok)
		return v
	}
	panic(fmt.Sprintf("ast: unknown node kind %T", n))
}

func rebuildPairs[T any](p Punctuated[T], item func(T) T, tok func(token.Ref) token.Ref) Punctuated[T] {
	pairs := make([]Pair[T], len(p.pairs))
	for i := range p.pairs {
		pairs[i].item = item(p.pairs[i].item)
		if s := p.pairs[i].sep; s != nil {
			ss := tok(*s)
			pairs[i].sep = &ss
		}
	}
	return Punctuated[T]{pairs: pairs}
}
