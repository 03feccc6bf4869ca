package token

import "fmt"

type TokenType int

const (
	TEof = iota
	TWhitespace
	TComment
	TIdent
	TKeyword
	TNumber
	TString
	TSymbol
)

func (t TokenType) String() string {
	return map[TokenType]string{
		TEof:        "TEof",
		TWhitespace: "TWhitespace",
		TComment:    "TComment",
		TIdent:      "TIdent",
		TKeyword:    "TKeyword",
		TNumber:     "TNumber",
		TString:     "TString",
		TSymbol:     "TSymbol",
	}[t]
}

// IsTrivia reports whether tokens of this type attach to other tokens as
// leading or trailing trivia rather than standing on their own.
func (t TokenType) IsTrivia() bool {
	return t == TWhitespace || t == TComment
}

// Token is a single lexeme. Bytes is a view into the source buffer the
// token was lexed from; see Owned. Pos is nil for synthesized tokens.
type Token struct {
	Type  TokenType
	Pos   *Pos
	Bytes []byte
}

func (t *Token) Info() string {
	if t.Pos == nil {
		return fmt.Sprintf("%s (synthesized)", t.Type)
	}
	return fmt.Sprintf("%s %s", t.Type, t.Pos.String())
}

func (t *Token) String() string {
	return string(t.Bytes)
}

// End returns the position one byte past the token, or nil for
// synthesized tokens.
func (t *Token) End() *Pos {
	if t.Pos == nil {
		return nil
	}
	return &Pos{I: t.Pos.I + len(t.Bytes), D: t.Pos.D}
}

// Owned returns a copy of t whose text is independent of the source
// buffer.
func (t Token) Owned() Token {
	b := make([]byte, len(t.Bytes))
	copy(b, t.Bytes)
	t.Bytes = b
	return t
}

// Equal compares type and text, trivia-exact by definition since a Token
// carries none. Positions are not compared.
func (t *Token) Equal(o *Token) bool {
	return t.Type == o.Type && string(t.Bytes) == string(o.Bytes)
}
