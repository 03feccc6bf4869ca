package ast

import "github.com/sol-lang/go-sol/token"

// TypeField is a single field in a table type: the `foo: number` in
// `{ foo: number }`.
type TypeField struct {
	key   TypeFieldKey
	colon token.Ref
	value TypeInfo
}

// NewTypeField builds a field with a default ": " colon token.
func NewTypeField(key TypeFieldKey, value TypeInfo) TypeField {
	return TypeField{
		key:   key,
		colon: token.Symbol(": "),
		value: value,
	}
}

func NewTypeFieldWithColon(key TypeFieldKey, colon token.Ref, value TypeInfo) TypeField {
	return TypeField{key: key, colon: colon, value: value}
}

// Key returns the field's key: `foo` in `foo: number`.
func (f TypeField) Key() TypeFieldKey {
	return f.key
}

// ColonToken returns the `:` between the key and the value type.
func (f TypeField) ColonToken() token.Ref {
	return f.colon
}

// Value returns the field's type: `number` in `foo: number`.
func (f TypeField) Value() TypeInfo {
	return f.value
}

func (f TypeField) WithKey(key TypeFieldKey) TypeField {
	f.key = key
	return f
}

func (f TypeField) WithColonToken(colon token.Ref) TypeField {
	f.colon = colon
	return f
}

func (f TypeField) WithValue(value TypeInfo) TypeField {
	f.value = value
	return f
}

// TypeFieldKey is the key of a TypeField: either a plain name or an index
// signature.
type TypeFieldKey interface {
	Node
	typeFieldKey()
}

// NameKey is a named key, such as `foo`.
type NameKey struct {
	tok token.Ref
}

func NewNameKey(tok token.Ref) NameKey {
	return NameKey{tok: tok}
}

func (k NameKey) Token() token.Ref {
	return k.tok
}

func (k NameKey) WithToken(tok token.Ref) NameKey {
	k.tok = tok
	return k
}

// IndexSignatureKey is an index signature key, such as `[number]`.
type IndexSignatureKey struct {
	brackets ContainedSpan
	inner    TypeInfo
}

func NewIndexSignatureKey(brackets ContainedSpan, inner TypeInfo) IndexSignatureKey {
	return IndexSignatureKey{brackets: brackets, inner: inner}
}

// Brackets returns the `[]` containing the type.
func (k IndexSignatureKey) Brackets() ContainedSpan {
	return k.brackets
}

// Inner returns the index type: `number` in `[number]`.
func (k IndexSignatureKey) Inner() TypeInfo {
	return k.inner
}

func (k IndexSignatureKey) WithBrackets(brackets ContainedSpan) IndexSignatureKey {
	k.brackets = brackets
	return k
}

func (k IndexSignatureKey) WithInner(inner TypeInfo) IndexSignatureKey {
	k.inner = inner
	return k
}

// TypeAssertion is an inline cast suffix using `::`, such as `:: number`.
type TypeAssertion struct {
	op     token.Ref
	castTo TypeInfo
}

// NewTypeAssertion builds an assertion with a default "::" token.
func NewTypeAssertion(castTo TypeInfo) TypeAssertion {
	return TypeAssertion{
		op:     token.Symbol("::"),
		castTo: castTo,
	}
}

// AssertionOp returns the `::` token.
func (a TypeAssertion) AssertionOp() token.Ref {
	return a.op
}

// CastTo returns the type the expression is cast to: `number` in
// `:: number`.
func (a TypeAssertion) CastTo() TypeInfo {
	return a.castTo
}

func (a TypeAssertion) WithAssertionOp(op token.Ref) TypeAssertion {
	a.op = op
	return a
}

func (a TypeAssertion) WithCastTo(castTo TypeInfo) TypeAssertion {
	a.castTo = castTo
	return a
}

// TypeDeclaration is a type declaration, such as `type Meters = number`.
type TypeDeclaration struct {
	typeTok   token.Ref
	name      token.Ref
	generics  *GenericDeclaration
	eq        token.Ref
	declareAs TypeInfo
}

// NewTypeDeclaration builds a declaration with default "type " and " = "
// tokens and no generics.
func NewTypeDeclaration(name token.Ref, definition TypeInfo) TypeDeclaration {
	return TypeDeclaration{
		typeTok:   token.Symbol("type "),
		name:      name,
		eq:        token.Symbol(" = "),
		declareAs: definition,
	}
}

// TypeToken returns the `type` token.
func (d TypeDeclaration) TypeToken() token.Ref {
	return d.typeTok
}

// TypeName returns the declared name: `Meters` in `type Meters = number`.
func (d TypeDeclaration) TypeName() token.Ref {
	return d.name
}

// Generics returns the generic parameters, or nil: `<T>` in
// `type Foo<T> = T`.
func (d TypeDeclaration) Generics() *GenericDeclaration {
	return d.generics
}

// EqualToken returns the `=` between name and definition.
func (d TypeDeclaration) EqualToken() token.Ref {
	return d.eq
}

// TypeDefinition returns the declared type: `number` in
// `type Meters = number`.
func (d TypeDeclaration) TypeDefinition() TypeInfo {
	return d.declareAs
}

func (d TypeDeclaration) WithTypeToken(typeTok token.Ref) TypeDeclaration {
	d.typeTok = typeTok
	return d
}

func (d TypeDeclaration) WithTypeName(name token.Ref) TypeDeclaration {
	d.name = name
	return d
}

func (d TypeDeclaration) WithGenerics(generics *GenericDeclaration) TypeDeclaration {
	d.generics = generics
	return d
}

func (d TypeDeclaration) WithEqualToken(eq token.Ref) TypeDeclaration {
	d.eq = eq
	return d
}

func (d TypeDeclaration) WithTypeDefinition(definition TypeInfo) TypeDeclaration {
	d.declareAs = definition
	return d
}

// GenericDeclaration is the generic parameter list of a TypeDeclaration:
// `<T, U>`.
type GenericDeclaration struct {
	arrows ContainedSpan
	names  Punctuated[token.Ref]
}

// NewGenericDeclaration builds an empty declaration with default `<` and
// `>` tokens.
func NewGenericDeclaration() GenericDeclaration {
	return GenericDeclaration{
		arrows: NewContainedSpan(token.Symbol("<"), token.Symbol(">")),
	}
}

// Arrows returns the `<>` containing the parameter names.
func (d GenericDeclaration) Arrows() ContainedSpan {
	return d.arrows
}

// Names returns the parameter names: `T, U` in `<T, U>`.
func (d GenericDeclaration) Names() Punctuated[token.Ref] {
	return d.names
}

func (d GenericDeclaration) WithArrows(arrows ContainedSpan) GenericDeclaration {
	d.arrows = arrows
	return d
}

func (d GenericDeclaration) WithNames(names Punctuated[token.Ref]) GenericDeclaration {
	d.names = names
	return d
}

// TypeSpecifier attaches a type annotation to a variable or parameter:
// the `: number` in `local foo: number`.
type TypeSpecifier struct {
	colon token.Ref
	typ   TypeInfo
}

// NewTypeSpecifier builds a specifier with a default ": " token.
func NewTypeSpecifier(typ TypeInfo) TypeSpecifier {
	return TypeSpecifier{
		colon: token.Symbol(": "),
		typ:   typ,
	}
}

// Punctuation returns the `:` token.
func (s TypeSpecifier) Punctuation() token.Ref {
	return s.colon
}

// Type returns the specified type: `number` in `local foo: number`.
func (s TypeSpecifier) Type() TypeInfo {
	return s.typ
}

func (s TypeSpecifier) WithPunctuation(colon token.Ref) TypeSpecifier {
	s.colon = colon
	return s
}

func (s TypeSpecifier) WithType(typ TypeInfo) TypeSpecifier {
	s.typ = typ
	return s
}

// ExportedTypeDeclaration is an exported type declaration, such as
// `export type Meters = number`.
type ExportedTypeDeclaration struct {
	export token.Ref
	decl   TypeDeclaration
}

// NewExportedTypeDeclaration builds an exported declaration with a
// default "export " token.
func NewExportedTypeDeclaration(decl TypeDeclaration) ExportedTypeDeclaration {
	return ExportedTypeDeclaration{
		export: token.Symbol("export "),
		decl:   decl,
	}
}

// ExportToken returns the `export` token.
func (e ExportedTypeDeclaration) ExportToken() token.Ref {
	return e.export
}

// TypeDeclaration returns the declaration being exported.
func (e ExportedTypeDeclaration) TypeDeclaration() TypeDeclaration {
	return e.decl
}

func (e ExportedTypeDeclaration) WithExportToken(export token.Ref) ExportedTypeDeclaration {
	e.export = export
	return e
}

func (e ExportedTypeDeclaration) WithTypeDeclaration(decl TypeDeclaration) ExportedTypeDeclaration {
	e.decl = decl
	return e
}

func (TypeField) isNode()               {}
func (NameKey) isNode()                 {}
func (IndexSignatureKey) isNode()       {}
func (TypeAssertion) isNode()           {}
func (TypeDeclaration) isNode()         {}
func (GenericDeclaration) isNode()      {}
func (TypeSpecifier) isNode()           {}
func (ExportedTypeDeclaration) isNode() {}

func (NameKey) typeFieldKey()           {}
func (IndexSignatureKey) typeFieldKey() {}
