package ast

import "github.com/sol-lang/go-sol/token"

// TypeInfo is any type annotation expression, such as `string`,
// `boolean?` or `number | boolean`. It is a closed sum: the variants are
// the *Type node kinds in this package.
type TypeInfo interface {
	Node
	typeInfo()
}

// IndexedTypeInfo is the subset of TypeInfo legal immediately after a
// module-qualifying dot: only BasicType and GenericType. Anything else is
// unrepresentable in that position by construction.
type IndexedTypeInfo interface {
	Node
	indexedTypeInfo()
}

// ArrayType is the shorthand for the structure of an array: `{ number }`.
type ArrayType struct {
	braces ContainedSpan
	elem   TypeInfo
}

func NewArrayType(braces ContainedSpan, elem TypeInfo) ArrayType {
	return ArrayType{braces: braces, elem: elem}
}

// Braces returns the `{}` containing the element type.
func (t ArrayType) Braces() ContainedSpan {
	return t.braces
}

// ElementType returns the type of the array's values.
func (t ArrayType) ElementType() TypeInfo {
	return t.elem
}

func (t ArrayType) WithBraces(braces ContainedSpan) ArrayType {
	t.braces = braces
	return t
}

func (t ArrayType) WithElementType(elem TypeInfo) ArrayType {
	t.elem = elem
	return t
}

// BasicType is a standalone type, such as `string` or `Foo`.
type BasicType struct {
	tok token.Ref
}

func NewBasicType(tok token.Ref) BasicType {
	return BasicType{tok: tok}
}

func (t BasicType) Token() token.Ref {
	return t.tok
}

func (t BasicType) WithToken(tok token.Ref) BasicType {
	t.tok = tok
	return t
}

// CallbackType is a callback type, such as `(string, number) -> boolean`.
type CallbackType struct {
	parens ContainedSpan
	args   Punctuated[TypeInfo]
	arrow  token.Ref
	ret    TypeInfo
}

func NewCallbackType(parens ContainedSpan, args Punctuated[TypeInfo], arrow token.Ref, ret TypeInfo) CallbackType {
	return CallbackType{parens: parens, args: args, arrow: arrow, ret: ret}
}

// Parentheses returns the `()` around the argument types.
func (t CallbackType) Parentheses() ContainedSpan {
	return t.parens
}

// Arguments returns the argument types: `string, number`.
func (t CallbackType) Arguments() Punctuated[TypeInfo] {
	return t.args
}

// Arrow returns the `->` between the arguments and the return type.
func (t CallbackType) Arrow() token.Ref {
	return t.arrow
}

// ReturnType returns the type after the arrow.
func (t CallbackType) ReturnType() TypeInfo {
	return t.ret
}

func (t CallbackType) WithParentheses(parens ContainedSpan) CallbackType {
	t.parens = parens
	return t
}

func (t CallbackType) WithArguments(args Punctuated[TypeInfo]) CallbackType {
	t.args = args
	return t
}

func (t CallbackType) WithArrow(arrow token.Ref) CallbackType {
	t.arrow = arrow
	return t
}

func (t CallbackType) WithReturnType(ret TypeInfo) CallbackType {
	t.ret = ret
	return t
}

// GenericType is a type with type parameters, such as `map<number, string>`.
type GenericType struct {
	base   token.Ref
	arrows ContainedSpan
	params Punctuated[TypeInfo]
}

func NewGenericType(base token.Ref, arrows ContainedSpan, params Punctuated[TypeInfo]) GenericType {
	return GenericType{base: base, arrows: arrows, params: params}
}

// Base returns the parameterized type: `map`.
func (t GenericType) Base() token.Ref {
	return t.base
}

// Arrows returns the `<>` containing the type parameters.
func (t GenericType) Arrows() ContainedSpan {
	return t.arrows
}

// Parameters returns the type parameters: `number, string`.
func (t GenericType) Parameters() Punctuated[TypeInfo] {
	return t.params
}

func (t GenericType) WithBase(base token.Ref) GenericType {
	t.base = base
	return t
}

func (t GenericType) WithArrows(arrows ContainedSpan) GenericType {
	t.arrows = arrows
	return t
}

func (t GenericType) WithParameters(params Punctuated[TypeInfo]) GenericType {
	t.params = params
	return t
}

// IntersectionType denotes both of two types: `string & number`.
type IntersectionType struct {
	left  TypeInfo
	amp   token.Ref
	right TypeInfo
}

func NewIntersectionType(left TypeInfo, amp token.Ref, right TypeInfo) IntersectionType {
	return IntersectionType{left: left, amp: amp, right: right}
}

func (t IntersectionType) Left() TypeInfo {
	return t.left
}

// Ampersand returns the `&` separating the two sides.
func (t IntersectionType) Ampersand() token.Ref {
	return t.amp
}

func (t IntersectionType) Right() TypeInfo {
	return t.right
}

func (t IntersectionType) WithLeft(left TypeInfo) IntersectionType {
	t.left = left
	return t
}

func (t IntersectionType) WithAmpersand(amp token.Ref) IntersectionType {
	t.amp = amp
	return t
}

func (t IntersectionType) WithRight(right TypeInfo) IntersectionType {
	t.right = right
	return t
}

// ModuleType is a type coming from a module, such as `module.Foo`. The
// indexed side is an IndexedTypeInfo, so only basic and generic types fit
// after the dot.
type ModuleType struct {
	module token.Ref
	dot    token.Ref
	index  IndexedTypeInfo
}

func NewModuleType(module, dot token.Ref, index IndexedTypeInfo) ModuleType {
	return ModuleType{module: module, dot: dot, index: index}
}

// Module returns the module the type comes from: `module`.
func (t ModuleType) Module() token.Ref {
	return t.module
}

// Dot returns the `.` indexing the module.
func (t ModuleType) Dot() token.Ref {
	return t.dot
}

// Index returns the indexed type: `Foo`.
func (t ModuleType) Index() IndexedTypeInfo {
	return t.index
}

func (t ModuleType) WithModule(module token.Ref) ModuleType {
	t.module = module
	return t
}

func (t ModuleType) WithDot(dot token.Ref) ModuleType {
	t.dot = dot
	return t
}

func (t ModuleType) WithIndex(index IndexedTypeInfo) ModuleType {
	t.index = index
	return t
}

// OptionalType is an optional type, such as `string?`.
type OptionalType struct {
	base     TypeInfo
	question token.Ref
}

func NewOptionalType(base TypeInfo, question token.Ref) OptionalType {
	return OptionalType{base: base, question: question}
}

func (t OptionalType) Base() TypeInfo {
	return t.base
}

func (t OptionalType) QuestionMark() token.Ref {
	return t.question
}

func (t OptionalType) WithBase(base TypeInfo) OptionalType {
	t.base = base
	return t
}

func (t OptionalType) WithQuestionMark(question token.Ref) OptionalType {
	t.question = question
	return t
}

// TableType annotates the structure of a table:
// `{ foo: number, bar: string }`.
type TableType struct {
	braces ContainedSpan
	fields Punctuated[TypeField]
}

func NewTableType(braces ContainedSpan, fields Punctuated[TypeField]) TableType {
	return TableType{braces: braces, fields: fields}
}

func (t TableType) Braces() ContainedSpan {
	return t.braces
}

func (t TableType) Fields() Punctuated[TypeField] {
	return t.fields
}

func (t TableType) WithBraces(braces ContainedSpan) TableType {
	t.braces = braces
	return t
}

func (t TableType) WithFields(fields Punctuated[TypeField]) TableType {
	t.fields = fields
	return t
}

// TypeofType is a type in the form `typeof(foo)`.
type TypeofType struct {
	typeofTok token.Ref
	parens    ContainedSpan
	expr      Expr
}

func NewTypeofType(typeofTok token.Ref, parens ContainedSpan, expr Expr) TypeofType {
	return TypeofType{typeofTok: typeofTok, parens: parens, expr: expr}
}

// TypeofToken returns the `typeof` token.
func (t TypeofType) TypeofToken() token.Ref {
	return t.typeofTok
}

func (t TypeofType) Parentheses() ContainedSpan {
	return t.parens
}

// Inner returns the expression inside the parentheses: `foo`.
func (t TypeofType) Inner() Expr {
	return t.expr
}

func (t TypeofType) WithTypeofToken(typeofTok token.Ref) TypeofType {
	t.typeofTok = typeofTok
	return t
}

func (t TypeofType) WithParentheses(parens ContainedSpan) TypeofType {
	t.parens = parens
	return t
}

func (t TypeofType) WithInner(expr Expr) TypeofType {
	t.expr = expr
	return t
}

// TupleType is a tuple of types: `(string, number)`.
type TupleType struct {
	parens ContainedSpan
	types  Punctuated[TypeInfo]
}

func NewTupleType(parens ContainedSpan, types Punctuated[TypeInfo]) TupleType {
	return TupleType{parens: parens, types: types}
}

func (t TupleType) Parentheses() ContainedSpan {
	return t.parens
}

func (t TupleType) Types() Punctuated[TypeInfo] {
	return t.types
}

func (t TupleType) WithParentheses(parens ContainedSpan) TupleType {
	t.parens = parens
	return t
}

func (t TupleType) WithTypes(types Punctuated[TypeInfo]) TupleType {
	t.types = types
	return t
}

// UnionType denotes one of two types: `string | number`.
type UnionType struct {
	left  TypeInfo
	pipe  token.Ref
	right TypeInfo
}

func NewUnionType(left TypeInfo, pipe token.Ref, right TypeInfo) UnionType {
	return UnionType{left: left, pipe: pipe, right: right}
}

func (t UnionType) Left() TypeInfo {
	return t.left
}

// Pipe returns the `|` separating the two sides.
func (t UnionType) Pipe() token.Ref {
	return t.pipe
}

func (t UnionType) Right() TypeInfo {
	return t.right
}

func (t UnionType) WithLeft(left TypeInfo) UnionType {
	t.left = left
	return t
}

func (t UnionType) WithPipe(pipe token.Ref) UnionType {
	t.pipe = pipe
	return t
}

func (t UnionType) WithRight(right TypeInfo) UnionType {
	t.right = right
	return t
}

// VariadicType is a variadic type: `...number`.
type VariadicType struct {
	ellipsis token.Ref
	typ      TypeInfo
}

func NewVariadicType(ellipsis token.Ref, typ TypeInfo) VariadicType {
	return VariadicType{ellipsis: ellipsis, typ: typ}
}

// Ellipsis returns the `...` token.
func (t VariadicType) Ellipsis() token.Ref {
	return t.ellipsis
}

func (t VariadicType) Type() TypeInfo {
	return t.typ
}

func (t VariadicType) WithEllipsis(ellipsis token.Ref) VariadicType {
	t.ellipsis = ellipsis
	return t
}

func (t VariadicType) WithType(typ TypeInfo) VariadicType {
	t.typ = typ
	return t
}

func (ArrayType) isNode()        {}
func (BasicType) isNode()        {}
func (CallbackType) isNode()     {}
func (GenericType) isNode()      {}
func (IntersectionType) isNode() {}
func (ModuleType) isNode()       {}
func (OptionalType) isNode()     {}
func (TableType) isNode()        {}
func (TypeofType) isNode()       {}
func (TupleType) isNode()        {}
func (UnionType) isNode()        {}
func (VariadicType) isNode()     {}

func (ArrayType) typeInfo()        {}
func (BasicType) typeInfo()        {}
func (CallbackType) typeInfo()     {}
func (GenericType) typeInfo()      {}
func (IntersectionType) typeInfo() {}
func (ModuleType) typeInfo()       {}
func (OptionalType) typeInfo()     {}
func (TableType) typeInfo()        {}
func (TypeofType) typeInfo()       {}
func (TupleType) typeInfo()        {}
func (UnionType) typeInfo()        {}
func (VariadicType) typeInfo()     {}

func (BasicType) indexedTypeInfo()   {}
func (GenericType) indexedTypeInfo() {}
