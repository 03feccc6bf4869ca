package ast

import (
	"fmt"

	"github.com/sol-lang/go-sol/token"
)

// CompoundOpKind enumerates the compound assignment operators.
type CompoundOpKind int

const (
	PlusEqual CompoundOpKind = iota
	MinusEqual
	StarEqual
	SlashEqual
	PercentEqual
	CaretEqual
	TwoDotsEqual
)

var compoundOpText = map[CompoundOpKind]string{
	PlusEqual:    "+=",
	MinusEqual:   "-=",
	StarEqual:    "*=",
	SlashEqual:   "/=",
	PercentEqual: "%=",
	CaretEqual:   "^=",
	TwoDotsEqual: "..=",
}

func (k CompoundOpKind) String() string {
	return compoundOpText[k]
}

// CompoundOp is a compound assignment operator token, such as `+=`.
type CompoundOp struct {
	kind CompoundOpKind
	tok  token.Ref
}

// NewCompoundOp synthesizes an operator token for the given kind, with a
// single space of surrounding trivia (` += `).
func NewCompoundOp(kind CompoundOpKind) CompoundOp {
	return CompoundOp{
		kind: kind,
		tok:  token.Symbol(" " + compoundOpText[kind] + " "),
	}
}

// CompoundOpFromToken maps an operator token to its kind. The token's
// text must be one of the compound operators.
func CompoundOpFromToken(tok token.Ref) (CompoundOp, error) {
	text := tok.Text()
	for kind, s := range compoundOpText {
		if s == text {
			return CompoundOp{kind: kind, tok: tok}, nil
		}
	}
	return CompoundOp{}, fmt.Errorf("not a compound operator: %q", text)
}

func (o CompoundOp) Kind() CompoundOpKind {
	return o.kind
}

func (o CompoundOp) Token() token.Ref {
	return o.tok
}

func (o CompoundOp) WithToken(tok token.Ref) (CompoundOp, error) {
	return CompoundOpFromToken(tok)
}

func (o CompoundOp) equal(p CompoundOp) bool {
	return o.kind == p.kind && o.tok.Equal(&p.tok)
}

func (o CompoundOp) owned() CompoundOp {
	o.tok = o.tok.Owned()
	return o
}

// CompoundAssignment is a compound assignment statement, such as `x += 1`.
type CompoundAssignment struct {
	lhs Var
	op  CompoundOp
	rhs Expr
}

func NewCompoundAssignment(lhs Var, op CompoundOp, rhs Expr) CompoundAssignment {
	return CompoundAssignment{lhs: lhs, op: op, rhs: rhs}
}

// Lhs returns the assigned variable: the `x` in `x += 1`.
func (c CompoundAssignment) Lhs() Var {
	return c.lhs
}

// CompoundOperator returns the operator: the `+=` in `x += 1`.
func (c CompoundAssignment) CompoundOperator() CompoundOp {
	return c.op
}

// Rhs returns the assigned value: the `1` in `x += 1`.
func (c CompoundAssignment) Rhs() Expr {
	return c.rhs
}

func (c CompoundAssignment) WithLhs(lhs Var) CompoundAssignment {
	c.lhs = lhs
	return c
}

func (c CompoundAssignment) WithCompoundOperator(op CompoundOp) CompoundAssignment {
	c.op = op
	return c
}

func (c CompoundAssignment) WithRhs(rhs Expr) CompoundAssignment {
	c.rhs = rhs
	return c
}

func (CompoundAssignment) isNode() {}
