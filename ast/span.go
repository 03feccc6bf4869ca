package ast

import "github.com/sol-lang/go-sol/token"

// ContainedSpan is a matched delimiter pair: the braces of a table type,
// the parentheses of a callback, the arrows of a generic declaration.
type ContainedSpan struct {
	open  token.Ref
	close token.Ref
}

func NewContainedSpan(open, close token.Ref) ContainedSpan {
	return ContainedSpan{open: open, close: close}
}

// Tokens returns the open and close tokens, in that order.
func (c ContainedSpan) Tokens() (token.Ref, token.Ref) {
	return c.open, c.close
}

func (c ContainedSpan) Open() token.Ref {
	return c.open
}

func (c ContainedSpan) Close() token.Ref {
	return c.close
}

func (c ContainedSpan) equal(o ContainedSpan) bool {
	return c.open.Equal(&o.open) && c.close.Equal(&o.close)
}

func (c ContainedSpan) owned() ContainedSpan {
	return ContainedSpan{open: c.open.Owned(), close: c.close.Owned()}
}
