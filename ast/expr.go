package ast

import "github.com/sol-lang/go-sol/token"

// Expr is the expression node set the type and statement families refer
// to: the inner expression of `typeof(...)` and the right hand side of a
// compound assignment. It is deliberately small; the dialect's full
// expression grammar lives with the statement layer, not here.
type Expr interface {
	Node
	expr()
}

// Var is an assignable target: a name or a dotted path of names.
type Var interface {
	Expr
	assignable()
}

// NameExpr is a bare name: `x`.
type NameExpr struct {
	tok token.Ref
}

func NewNameExpr(tok token.Ref) NameExpr {
	return NameExpr{tok: tok}
}

func (e NameExpr) Token() token.Ref {
	return e.tok
}

func (e NameExpr) WithToken(tok token.Ref) NameExpr {
	e.tok = tok
	return e
}

// DotExpr is a dotted access: `x.y`.
type DotExpr struct {
	base Var
	dot  token.Ref
	name token.Ref
}

func NewDotExpr(base Var, dot, name token.Ref) DotExpr {
	return DotExpr{base: base, dot: dot, name: name}
}

func (e DotExpr) Base() Var {
	return e.base
}

func (e DotExpr) Dot() token.Ref {
	return e.dot
}

func (e DotExpr) Name() token.Ref {
	return e.name
}

func (e DotExpr) WithBase(base Var) DotExpr {
	e.base = base
	return e
}

func (e DotExpr) WithDot(dot token.Ref) DotExpr {
	e.dot = dot
	return e
}

func (e DotExpr) WithName(name token.Ref) DotExpr {
	e.name = name
	return e
}

// NumberExpr is a numeric literal: `1`.
type NumberExpr struct {
	tok token.Ref
}

func NewNumberExpr(tok token.Ref) NumberExpr {
	return NumberExpr{tok: tok}
}

func (e NumberExpr) Token() token.Ref {
	return e.tok
}

func (e NumberExpr) WithToken(tok token.Ref) NumberExpr {
	e.tok = tok
	return e
}

// StringExpr is a string literal: `"s"`.
type StringExpr struct {
	tok token.Ref
}

func NewStringExpr(tok token.Ref) StringExpr {
	return StringExpr{tok: tok}
}

func (e StringExpr) Token() token.Ref {
	return e.tok
}

func (e StringExpr) WithToken(tok token.Ref) StringExpr {
	e.tok = tok
	return e
}

func (NameExpr) isNode()   {}
func (DotExpr) isNode()    {}
func (NumberExpr) isNode() {}
func (StringExpr) isNode() {}

func (NameExpr) expr()   {}
func (DotExpr) expr()    {}
func (NumberExpr) expr() {}
func (StringExpr) expr() {}

func (NameExpr) assignable() {}
func (DotExpr) assignable()  {}
