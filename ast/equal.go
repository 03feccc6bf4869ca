package ast

import "github.com/sol-lang/go-sol/token"

// Equal reports structural equality: the node kinds match and every
// field, token trivia included, is equal. Equality is
// reconstruction-sensitive (two trees differing only in whitespace or
// comments are unequal) and position-insensitive: where a tree was
// parsed from does not matter, only what it reconstructs to.
func Equal(a, b Node) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	switch av := a.(type) {
	case ArrayType:
		bv, ok := b.(ArrayType)
		return ok && av.braces.equal(bv.braces) && Equal(av.elem, bv.elem)
	case BasicType:
		bv, ok := b.(BasicType)
		return ok && av.tok.Equal(&bv.tok)
	case CallbackType:
		bv, ok := b.(CallbackType)
		return ok && av.parens.equal(bv.parens) &&
			pairsEqual(av.args, bv.args, typeInfoEqual) &&
			av.arrow.Equal(&bv.arrow) && Equal(av.ret, bv.ret)
	case GenericType:
		bv, ok := b.(GenericType)
		return ok && av.base.Equal(&bv.base) && av.arrows.equal(bv.arrows) &&
			pairsEqual(av.params, bv.params, typeInfoEqual)
	case IntersectionType:
		bv, ok := b.(IntersectionType)
		return ok && Equal(av.left, bv.left) && av.amp.Equal(&bv.amp) &&
			Equal(av.right, bv.right)
	case ModuleType:
		bv, ok := b.(ModuleType)
		return ok && av.module.Equal(&bv.module) && av.dot.Equal(&bv.dot) &&
			Equal(av.index, bv.index)
	case OptionalType:
		bv, ok := b.(OptionalType)
		return ok && Equal(av.base, bv.base) && av.question.Equal(&bv.question)
	case TableType:
		bv, ok := b.(TableType)
		return ok && av.braces.equal(bv.braces) &&
			pairsEqual(av.fields, bv.fields, func(x, y TypeField) bool { return Equal(x, y) })
	case TypeofType:
		bv, ok := b.(TypeofType)
		return ok && av.typeofTok.Equal(&bv.typeofTok) && av.parens.equal(bv.parens) &&
			Equal(av.expr, bv.expr)
	case TupleType:
		bv, ok := b.(TupleType)
		return ok && av.parens.equal(bv.parens) &&
			pairsEqual(av.types, bv.types, typeInfoEqual)
	case UnionType:
		bv, ok := b.(UnionType)
		return ok && Equal(av.left, bv.left) && av.pipe.Equal(&bv.pipe) &&
			Equal(av.right, bv.right)
	case VariadicType:
		bv, ok := b.(VariadicType)
		return ok && av.ellipsis.Equal(&bv.ellipsis) && Equal(av.typ, bv.typ)

	case TypeField:
		bv, ok := b.(TypeField)
		return ok && Equal(av.key, bv.key) && av.colon.Equal(&bv.colon) &&
			Equal(av.value, bv.value)
	case NameKey:
		bv, ok := b.(NameKey)
		return ok && av.tok.Equal(&bv.tok)
	case IndexSignatureKey:
		bv, ok := b.(IndexSignatureKey)
		return ok && av.brackets.equal(bv.brackets) && Equal(av.inner, bv.inner)
	case TypeAssertion:
		bv, ok := b.(TypeAssertion)
		return ok && av.op.Equal(&bv.op) && Equal(av.castTo, bv.castTo)
	case TypeDeclaration:
		bv, ok := b.(TypeDeclaration)
		if !ok || !av.typeTok.Equal(&bv.typeTok) || !av.name.Equal(&bv.name) {
			return false
		}
		if (av.generics == nil) != (bv.generics == nil) {
			return false
		}
		if av.generics != nil && !Equal(*av.generics, *bv.generics) {
			return false
		}
		return av.eq.Equal(&bv.eq) && Equal(av.declareAs, bv.declareAs)
	case GenericDeclaration:
		bv, ok := b.(GenericDeclaration)
		return ok && av.arrows.equal(bv.arrows) &&
			pairsEqual(av.names, bv.names, func(x, y token.Ref) bool { return x.Equal(&y) })
	case TypeSpecifier:
		bv, ok := b.(TypeSpecifier)
		return ok && av.colon.Equal(&bv.colon) && Equal(av.typ, bv.typ)
	case ExportedTypeDeclaration:
		bv, ok := b.(ExportedTypeDeclaration)
		return ok && av.export.Equal(&bv.export) && Equal(av.decl, bv.decl)

	case CompoundAssignment:
		bv, ok := b.(CompoundAssignment)
		return ok && Equal(av.lhs, bv.lhs) && av.op.equal(bv.op) && Equal(av.rhs, bv.rhs)

	case NameExpr:
		bv, ok := b.(NameExpr)
		return ok && av.tok.Equal(&bv.tok)
	case DotExpr:
		bv, ok := b.(DotExpr)
		return ok && Equal(av.base, bv.base) && av.dot.Equal(&bv.dot) &&
			av.name.Equal(&bv.name)
	case NumberExpr:
		bv, ok := b.(NumberExpr)
		return ok && av.tok.Equal(&bv.tok)
	case StringExpr:
		bv, ok := b.(StringExpr)
		return ok && av.tok.Equal(&bv.tok)
	}
	return false
}

func typeInfoEqual(a, b TypeInfo) bool {
	return Equal(a, b)
}

func pairsEqual[T any](a, b Punctuated[T], eq func(T, T) bool) bool {
	if len(a.pairs) != len(b.pairs) {
		return false
	}
	for i := range a.pairs {
		if !eq(a.pairs[i].item, b.pairs[i].item) {
			return false
		}
		as, bs := a.pairs[i].sep, b.pairs[i].sep
		if (as == nil) != (bs == nil) {
			return false
		}
		if as != nil && !as.Equal(bs) {
			return false
		}
	}
	return true
}
