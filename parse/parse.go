package parse

import (
	"github.com/sol-lang/go-sol/ast"
	"github.com/sol-lang/go-sol/debug"
	"github.com/sol-lang/go-sol/token"
)

// ParseType parses a type annotation expression, such as
// `{ foo: number }` or `(string, number) -> boolean`.
func ParseType(d []byte, opts ...ParseOption) (ast.TypeInfo, error) {
	p, pOpts, err := newParser(d, opts)
	if err != nil {
		return nil, err
	}
	t, err := p.parseType()
	if err != nil {
		return nil, err
	}
	if err := p.finish(); err != nil {
		return nil, err
	}
	if pOpts.owned {
		t = ast.OwnedAs(t)
	}
	if debug.Parse() {
		debug.Logf("parse: type %s\n", ast.Kind(t))
	}
	return t, nil
}

// ParseTypeString is ParseType on a string.
func ParseTypeString(s string, opts ...ParseOption) (ast.TypeInfo, error) {
	return ParseType([]byte(s), opts...)
}

// ParseDeclaration parses a type declaration, exported or not. The
// result is an ast.TypeDeclaration or an ast.ExportedTypeDeclaration.
func ParseDeclaration(d []byte, opts ...ParseOption) (ast.Node, error) {
	p, pOpts, err := newParser(d, opts)
	if err != nil {
		return nil, err
	}
	var n ast.Node
	if p.peek().Type() == token.TIdent && p.peek().Text() == "export" {
		exportTok := p.next()
		decl, err := p.parseTypeDeclaration()
		if err != nil {
			return nil, err
		}
		n = ast.NewExportedTypeDeclaration(decl).WithExportToken(exportTok)
	} else {
		decl, err := p.parseTypeDeclaration()
		if err != nil {
			return nil, err
		}
		n = decl
	}
	if err := p.finish(); err != nil {
		return nil, err
	}
	if pOpts.owned {
		n = ast.Owned(n)
	}
	return n, nil
}

// ParseCompoundAssignment parses a compound assignment statement, such
// as `x += 1`.
func ParseCompoundAssignment(d []byte, opts ...ParseOption) (ast.CompoundAssignment, error) {
	p, pOpts, err := newParser(d, opts)
	if err != nil {
		return ast.CompoundAssignment{}, err
	}
	lhs, err := p.parseVar()
	if err != nil {
		return ast.CompoundAssignment{}, err
	}
	if p.peek().Type() != token.TSymbol {
		return ast.CompoundAssignment{}, expectedErr("a compound operator", p.peek())
	}
	opRef := p.next()
	op, err := ast.CompoundOpFromToken(opRef)
	if err != nil {
		return ast.CompoundAssignment{}, expectedErr("a compound operator", &opRef)
	}
	rhs, err := p.parseExpr()
	if err != nil {
		return ast.CompoundAssignment{}, err
	}
	if err := p.finish(); err != nil {
		return ast.CompoundAssignment{}, err
	}
	res := ast.NewCompoundAssignment(lhs, op, rhs)
	if pOpts.owned {
		res = ast.OwnedAs(res)
	}
	return res, nil
}

type parser struct {
	refs []token.Ref
	i    int
}

func newParser(d []byte, opts []ParseOption) (*parser, *parseOpts, error) {
	pOpts := &parseOpts{}
	for _, f := range opts {
		f(pOpts)
	}
	refs, err := token.Tokenize(d)
	if err != nil {
		return nil, nil, err
	}
	if debug.Tokens() {
		for i := range refs {
			debug.Logf("parse: token %d: %s\n", i, refs[i].Tok.Info())
		}
	}
	// Trivia after the last token (a trailing comment line, say) would
	// otherwise live only on the EOF ref and be lost from the returned
	// node; fold it into the last token's trailing trivia so rendering
	// stays lossless.
	if n := len(refs); n >= 2 && len(refs[n-1].Leading) > 0 {
		prev := &refs[n-2]
		trailing := make([]token.Token, 0, len(prev.Trailing)+len(refs[n-1].Leading))
		trailing = append(trailing, prev.Trailing...)
		trailing = append(trailing, refs[n-1].Leading...)
		prev.Trailing = trailing
		refs[n-1].Leading = nil
	}
	return &parser{refs: refs}, pOpts, nil
}

func (p *parser) peek() *token.Ref {
	return &p.refs[p.i]
}

func (p *parser) peekAfter() *token.Ref {
	if p.i+1 < len(p.refs) {
		return &p.refs[p.i+1]
	}
	return &p.refs[len(p.refs)-1]
}

func (p *parser) next() token.Ref {
	r := p.refs[p.i]
	if r.Type() != token.TEof {
		p.i++
	}
	return r
}

func (p *parser) isSymbol(s string) bool {
	return p.peek().Type() == token.TSymbol && p.peek().Text() == s
}

func (p *parser) expectSymbol(s string) (token.Ref, error) {
	if !p.isSymbol(s) {
		return token.Ref{}, expectedErr("`"+s+"`", p.peek())
	}
	return p.next(), nil
}

func (p *parser) expectIdent(what string) (token.Ref, error) {
	if p.peek().Type() != token.TIdent {
		return token.Ref{}, expectedErr(what, p.peek())
	}
	return p.next(), nil
}

func (p *parser) finish() error {
	if p.peek().Type() != token.TEof {
		return trailingErr(p.peek())
	}
	return nil
}

// parseType parses a full type expression. Repeated `|` and `&` nest to
// the right: `a | b | c` is Union{a, Union{b, c}}.
func (p *parser) parseType() (ast.TypeInfo, error) {
	left, err := p.parseSuffixedType()
	if err != nil {
		return nil, err
	}
	switch {
	case p.isSymbol("|"):
		pipe := p.next()
		right, err := p.parseType()
		if err != nil {
			return nil, err
		}
		return ast.NewUnionType(left, pipe, right), nil
	case p.isSymbol("&"):
		amp := p.next()
		right, err := p.parseType()
		if err != nil {
			return nil, err
		}
		return ast.NewIntersectionType(left, amp, right), nil
	}
	return left, nil
}

func (p *parser) parseSuffixedType() (ast.TypeInfo, error) {
	base, err := p.parsePrimaryType()
	if err != nil {
		return nil, err
	}
	for p.isSymbol("?") {
		base = ast.NewOptionalType(base, p.next())
	}
	return base, nil
}

func (p *parser) parsePrimaryType() (ast.TypeInfo, error) {
	switch {
	case p.isSymbol("("):
		return p.parseParenType()
	case p.isSymbol("{"):
		return p.parseBraceType()
	case p.isSymbol("..."):
		ellipsis := p.next()
		typ, err := p.parseSuffixedType()
		if err != nil {
			return nil, err
		}
		return ast.NewVariadicType(ellipsis, typ), nil
	case p.peek().Type() == token.TIdent:
		if p.peek().Text() == "typeof" {
			return p.parseTypeofType()
		}
		return p.parseNamedType()
	case p.isKeywordType():
		return ast.NewBasicType(p.next()), nil
	}
	return nil, expectedErr("a type", p.peek())
}

// isKeywordType reports whether the next token is one of the keywords
// that double as singleton types.
func (p *parser) isKeywordType() bool {
	if p.peek().Type() != token.TKeyword {
		return false
	}
	switch p.peek().Text() {
	case "nil", "true", "false":
		return true
	}
	return false
}

// parseParenType parses `(...)`: a callback type when followed by `->`,
// a tuple otherwise.
func (p *parser) parseParenType() (ast.TypeInfo, error) {
	open := p.next()
	types := ast.NewPunctuated[ast.TypeInfo]()
	if !p.isSymbol(")") {
		var err error
		types, err = p.punctuatedTypes(")")
		if err != nil {
			return nil, err
		}
	}
	closeTok, err := p.expectSymbol(")")
	if err != nil {
		return nil, err
	}
	parens := ast.NewContainedSpan(open, closeTok)
	if !p.isSymbol("->") {
		return ast.NewTupleType(parens, types), nil
	}
	arrow := p.next()
	ret, err := p.parseType()
	if err != nil {
		return nil, err
	}
	return ast.NewCallbackType(parens, types, arrow, ret), nil
}

// parseBraceType parses `{...}`: a table type when the contents look
// like fields, the array shorthand otherwise.
func (p *parser) parseBraceType() (ast.TypeInfo, error) {
	open := p.next()
	if p.isSymbol("}") {
		return ast.NewTableType(
			ast.NewContainedSpan(open, p.next()),
			ast.NewPunctuated[ast.TypeField](),
		), nil
	}
	if p.startsField() {
		fields, err := p.punctuatedFields()
		if err != nil {
			return nil, err
		}
		closeTok, err := p.expectSymbol("}")
		if err != nil {
			return nil, err
		}
		return ast.NewTableType(ast.NewContainedSpan(open, closeTok), fields), nil
	}
	elem, err := p.parseType()
	if err != nil {
		return nil, err
	}
	closeTok, err := p.expectSymbol("}")
	if err != nil {
		return nil, err
	}
	return ast.NewArrayType(ast.NewContainedSpan(open, closeTok), elem), nil
}

func (p *parser) startsField() bool {
	if p.isSymbol("[") {
		return true
	}
	if p.peek().Type() != token.TIdent {
		return false
	}
	after := p.peekAfter()
	return after.Type() == token.TSymbol && after.Text() == ":"
}

func (p *parser) parseTypeofType() (ast.TypeInfo, error) {
	typeofTok := p.next()
	open, err := p.expectSymbol("(")
	if err != nil {
		return nil, err
	}
	expr, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	closeTok, err := p.expectSymbol(")")
	if err != nil {
		return nil, err
	}
	return ast.NewTypeofType(typeofTok, ast.NewContainedSpan(open, closeTok), expr), nil
}

// parseNamedType parses types rooted at a name: basic, generic, and
// module-qualified.
func (p *parser) parseNamedType() (ast.TypeInfo, error) {
	name := p.next()
	switch {
	case p.isSymbol("."):
		dot := p.next()
		index, err := p.parseIndexedType()
		if err != nil {
			return nil, err
		}
		return ast.NewModuleType(name, dot, index), nil
	case p.isSymbol("<"):
		return p.parseGenericType(name)
	}
	return ast.NewBasicType(name), nil
}

// parseIndexedType parses the type after a module dot: only basic and
// generic types are legal there, which the IndexedTypeInfo return type
// preserves.
func (p *parser) parseIndexedType() (ast.IndexedTypeInfo, error) {
	name, err := p.expectIdent("a type name")
	if err != nil {
		return nil, err
	}
	if p.isSymbol("<") {
		return p.parseGenericType(name)
	}
	return ast.NewBasicType(name), nil
}

func (p *parser) parseGenericType(base token.Ref) (ast.GenericType, error) {
	open := p.next()
	params, err := p.punctuatedTypes(">")
	if err != nil {
		return ast.GenericType{}, err
	}
	closeTok, err := p.expectSymbol(">")
	if err != nil {
		return ast.GenericType{}, err
	}
	return ast.NewGenericType(base, ast.NewContainedSpan(open, closeTok), params), nil
}

// punctuatedTypes parses comma-separated types up to (not consuming) the
// closing symbol. A trailing comma is kept as the last pair's separator.
func (p *parser) punctuatedTypes(closing string) (ast.Punctuated[ast.TypeInfo], error) {
	res := ast.NewPunctuated[ast.TypeInfo]()
	for {
		item, err := p.parseType()
		if err != nil {
			return res, err
		}
		if !p.isSymbol(",") {
			return res.PushPair(item, nil), nil
		}
		sep := p.next()
		res = res.PushPair(item, &sep)
		if p.isSymbol(closing) {
			return res, nil
		}
	}
}

func (p *parser) punctuatedFields() (ast.Punctuated[ast.TypeField], error) {
	res := ast.NewPunctuated[ast.TypeField]()
	for {
		item, err := p.parseTypeField()
		if err != nil {
			return res, err
		}
		if !p.isSymbol(",") {
			return res.PushPair(item, nil), nil
		}
		sep := p.next()
		res = res.PushPair(item, &sep)
		if p.isSymbol("}") {
			return res, nil
		}
	}
}

func (p *parser) parseTypeField() (ast.TypeField, error) {
	var key ast.TypeFieldKey
	if p.isSymbol("[") {
		open := p.next()
		inner, err := p.parseType()
		if err != nil {
			return ast.TypeField{}, err
		}
		closeTok, err := p.expectSymbol("]")
		if err != nil {
			return ast.TypeField{}, err
		}
		key = ast.NewIndexSignatureKey(ast.NewContainedSpan(open, closeTok), inner)
	} else {
		name, err := p.expectIdent("a field name")
		if err != nil {
			return ast.TypeField{}, err
		}
		key = ast.NewNameKey(name)
	}
	colon, err := p.expectSymbol(":")
	if err != nil {
		return ast.TypeField{}, err
	}
	value, err := p.parseType()
	if err != nil {
		return ast.TypeField{}, err
	}
	return ast.NewTypeFieldWithColon(key, colon, value), nil
}

func (p *parser) parseTypeDeclaration() (ast.TypeDeclaration, error) {
	if p.peek().Type() != token.TIdent || p.peek().Text() != "type" {
		return ast.TypeDeclaration{}, expectedErr("`type`", p.peek())
	}
	typeTok := p.next()
	name, err := p.expectIdent("a type name")
	if err != nil {
		return ast.TypeDeclaration{}, err
	}
	var generics *ast.GenericDeclaration
	if p.isSymbol("<") {
		g, err := p.parseGenericDeclaration()
		if err != nil {
			return ast.TypeDeclaration{}, err
		}
		generics = &g
	}
	eq, err := p.expectSymbol("=")
	if err != nil {
		return ast.TypeDeclaration{}, err
	}
	declareAs, err := p.parseType()
	if err != nil {
		return ast.TypeDeclaration{}, err
	}
	return ast.NewTypeDeclaration(name, declareAs).
		WithTypeToken(typeTok).
		WithEqualToken(eq).
		WithGenerics(generics), nil
}

func (p *parser) parseGenericDeclaration() (ast.GenericDeclaration, error) {
	open := p.next()
	names := ast.NewPunctuated[token.Ref]()
	for {
		name, err := p.expectIdent("a generic parameter name")
		if err != nil {
			return ast.GenericDeclaration{}, err
		}
		if !p.isSymbol(",") {
			names = names.PushPair(name, nil)
			break
		}
		sep := p.next()
		names = names.PushPair(name, &sep)
		if p.isSymbol(">") {
			break
		}
	}
	closeTok, err := p.expectSymbol(">")
	if err != nil {
		return ast.GenericDeclaration{}, err
	}
	return ast.NewGenericDeclaration().
		WithArrows(ast.NewContainedSpan(open, closeTok)).
		WithNames(names), nil
}

func (p *parser) parseExpr() (ast.Expr, error) {
	switch p.peek().Type() {
	case token.TNumber:
		return ast.NewNumberExpr(p.next()), nil
	case token.TString:
		return ast.NewStringExpr(p.next()), nil
	case token.TIdent:
		return p.parseVar()
	}
	return nil, expectedErr("an expression", p.peek())
}

func (p *parser) parseVar() (ast.Var, error) {
	name, err := p.expectIdent("a name")
	if err != nil {
		return nil, err
	}
	var v ast.Var = ast.NewNameExpr(name)
	for p.isSymbol(".") {
		dot := p.next()
		field, err := p.expectIdent("a name")
		if err != nil {
			return nil, err
		}
		v = ast.NewDotExpr(v, dot, field)
	}
	return v, nil
}
