package token

import (
	"fmt"
	"strings"
)

// Ref is a token together with the trivia attached to it. Leading trivia
// is the whitespace and comments preceding the token; trailing trivia is
// the same-line whitespace and comment following it, up to and including
// the line break.
//
// Refs are treated as immutable values by the node layer: once a Ref is
// placed into a node, neither its token nor its trivia slices are
// modified.
type Ref struct {
	Leading  []Token
	Tok      Token
	Trailing []Token
}

func (r Ref) Type() TokenType {
	return r.Tok.Type
}

// Text returns the token's own text, without trivia.
func (r Ref) Text() string {
	return string(r.Tok.Bytes)
}

// String renders the ref exactly: leading trivia, token text, trailing
// trivia.
func (r Ref) String() string {
	var sb strings.Builder
	r.Write(&sb)
	return sb.String()
}

func (r *Ref) Write(sb *strings.Builder) {
	for i := range r.Leading {
		sb.Write(r.Leading[i].Bytes)
	}
	sb.Write(r.Tok.Bytes)
	for i := range r.Trailing {
		sb.Write(r.Trailing[i].Bytes)
	}
}

// Start returns the start position of the token itself (trivia excluded),
// or nil if the token was synthesized.
func (r Ref) Start() *Pos {
	return r.Tok.Pos
}

// End returns the position one past the token itself, or nil if the token
// was synthesized.
func (r Ref) End() *Pos {
	return r.Tok.End()
}

// Equal compares token type, text, and all trivia. Positions are not
// compared: equality is reconstruction-sensitive, not location-sensitive.
func (r *Ref) Equal(o *Ref) bool {
	if !r.Tok.Equal(&o.Tok) {
		return false
	}
	if len(r.Leading) != len(o.Leading) || len(r.Trailing) != len(o.Trailing) {
		return false
	}
	for i := range r.Leading {
		if !r.Leading[i].Equal(&o.Leading[i]) {
			return false
		}
	}
	for i := range r.Trailing {
		if !r.Trailing[i].Equal(&o.Trailing[i]) {
			return false
		}
	}
	return true
}

// Owned returns a copy of r whose token and trivia text is independent of
// the source buffer the ref was lexed from.
func (r Ref) Owned() Ref {
	res := Ref{Tok: r.Tok.Owned()}
	if r.Leading != nil {
		res.Leading = make([]Token, len(r.Leading))
		for i := range r.Leading {
			res.Leading[i] = r.Leading[i].Owned()
		}
	}
	if r.Trailing != nil {
		res.Trailing = make([]Token, len(r.Trailing))
		for i := range r.Trailing {
			res.Trailing[i] = r.Trailing[i].Owned()
		}
	}
	return res
}

// WithLeading returns a copy of r with the given leading trivia.
func (r Ref) WithLeading(trivia []Token) Ref {
	r.Leading = trivia
	return r
}

// WithTrailing returns a copy of r with the given trailing trivia.
func (r Ref) WithTrailing(trivia []Token) Ref {
	r.Trailing = trivia
	return r
}

// Symbol synthesizes a Ref from a fixed literal such as "::", "<" or
// "type ". Surrounding whitespace in the literal becomes trivia. The
// literal must lex to exactly one token; these are compiled-in constants,
// so a literal that does not is a programming error and Symbol panics.
func Symbol(text string) Ref {
	refs, err := Tokenize([]byte(text))
	if err != nil {
		panic(fmt.Sprintf("token: invalid symbol literal %q: %v", text, err))
	}
	// refs always ends with an EOF ref
	if len(refs) != 2 || refs[0].Tok.Type == TEof {
		panic(fmt.Sprintf("token: symbol literal %q is not a single token", text))
	}
	ref := refs[0].Owned()
	ref.Trailing = append(ref.Trailing, refs[1].Owned().Leading...)
	ref.Tok.Pos = nil
	for i := range ref.Leading {
		ref.Leading[i].Pos = nil
	}
	for i := range ref.Trailing {
		ref.Trailing[i].Pos = nil
	}
	return ref
}
