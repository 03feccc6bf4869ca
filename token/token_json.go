package token

import (
	"encoding/json"
	"fmt"
)

// The JSON form mirrors the token shape by name: type, text, and trivia.
// Positions are derived data and are not serialized; decoded tokens are
// synthesized (owned text, no position).

var tokenTypeNames = func() map[string]TokenType {
	m := map[string]TokenType{}
	for t := TokenType(TEof); t <= TSymbol; t++ {
		m[t.String()] = t
	}
	return m
}()

func (t TokenType) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.String())
}

func (t *TokenType) UnmarshalJSON(d []byte) error {
	var s string
	if err := json.Unmarshal(d, &s); err != nil {
		return err
	}
	typ, ok := tokenTypeNames[s]
	if !ok {
		return fmt.Errorf("unknown token type %q", s)
	}
	*t = typ
	return nil
}

type tokenJSON struct {
	Type TokenType `json:"type"`
	Text string    `json:"text"`
}

func (t Token) MarshalJSON() ([]byte, error) {
	return json.Marshal(tokenJSON{Type: t.Type, Text: string(t.Bytes)})
}

func (t *Token) UnmarshalJSON(d []byte) error {
	tmp := tokenJSON{}
	if err := json.Unmarshal(d, &tmp); err != nil {
		return err
	}
	t.Type = tmp.Type
	t.Bytes = []byte(tmp.Text)
	t.Pos = nil
	return nil
}

type refJSON struct {
	Leading  []Token   `json:"leading,omitempty"`
	Type     TokenType `json:"type"`
	Text     string    `json:"text"`
	Trailing []Token   `json:"trailing,omitempty"`
}

func (r Ref) MarshalJSON() ([]byte, error) {
	return json.Marshal(refJSON{
		Leading:  r.Leading,
		Type:     r.Tok.Type,
		Text:     string(r.Tok.Bytes),
		Trailing: r.Trailing,
	})
}

func (r *Ref) UnmarshalJSON(d []byte) error {
	tmp := refJSON{}
	if err := json.Unmarshal(d, &tmp); err != nil {
		return err
	}
	r.Leading = tmp.Leading
	r.Tok = Token{Type: tmp.Type, Bytes: []byte(tmp.Text)}
	r.Trailing = tmp.Trailing
	return nil
}
