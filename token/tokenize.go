package token

import (
	"bytes"
	"fmt"
)

var keywords = map[string]bool{
	"and": true, "break": true, "do": true, "else": true, "elseif": true,
	"end": true, "false": true, "for": true, "function": true, "if": true,
	"in": true, "local": true, "nil": true, "not": true, "or": true,
	"repeat": true, "return": true, "then": true, "true": true,
	"until": true, "while": true,
}

// symbols3, symbols2 and symbols1 hold the dialect's symbol set, longest
// match first.
var (
	symbols3 = []string{"..=", "..."}
	symbols2 = []string{
		"::", "->", "+=", "-=", "*=", "/=", "%=", "^=",
		"==", "~=", "<=", ">=", "..",
	}
	symbols1 = "{}()[]<>,.?|&:=+-*/%^#;"
)

// Tokenize lexes a Sol document into trivia-carrying token refs. The last
// ref is always a TEof ref holding any trivia not attached to a preceding
// token. Concatenating the String() of every ref reproduces d exactly.
func Tokenize(d []byte) ([]Ref, error) {
	posDoc := NewPosDoc(d)
	raw, err := scan(d, posDoc)
	if err != nil {
		return nil, err
	}
	return attachTrivia(raw, posDoc), nil
}

func scan(d []byte, posDoc *PosDoc) ([]Token, error) {
	var toks []Token
	n := len(d)
	i := 0
	for i < n {
		c := d[i]
		switch {
		case c == ' ' || c == '\t' || c == '\r' || c == '\n':
			j := i
			for j < n && (d[j] == ' ' || d[j] == '\t' || d[j] == '\r') {
				j++
			}
			if j < n && d[j] == '\n' {
				j++
			}
			toks = append(toks, Token{Type: TWhitespace, Pos: posDoc.Pos(i), Bytes: d[i:j]})
			i = j
		case c == '-' && i+1 < n && d[i+1] == '-':
			j, err := scanComment(d, i, posDoc)
			if err != nil {
				return nil, err
			}
			toks = append(toks, Token{Type: TComment, Pos: posDoc.Pos(i), Bytes: d[i:j]})
			i = j
		case c == '"' || c == '\'':
			j, err := scanString(d, i, posDoc)
			if err != nil {
				return nil, err
			}
			toks = append(toks, Token{Type: TString, Pos: posDoc.Pos(i), Bytes: d[i:j]})
			i = j
		case c >= '0' && c <= '9':
			j := scanNumber(d, i)
			toks = append(toks, Token{Type: TNumber, Pos: posDoc.Pos(i), Bytes: d[i:j]})
			i = j
		case isIdentStart(c):
			j := i + 1
			for j < n && isIdentPart(d[j]) {
				j++
			}
			typ := TokenType(TIdent)
			if keywords[string(d[i:j])] {
				typ = TKeyword
			}
			toks = append(toks, Token{Type: typ, Pos: posDoc.Pos(i), Bytes: d[i:j]})
			i = j
		default:
			j := scanSymbol(d, i)
			if j == i {
				return nil, UnexpectedErr(fmt.Sprintf("character %q", c), posDoc.Pos(i))
			}
			toks = append(toks, Token{Type: TSymbol, Pos: posDoc.Pos(i), Bytes: d[i:j]})
			i = j
		}
	}
	return toks, nil
}

func scanComment(d []byte, i int, posDoc *PosDoc) (int, error) {
	n := len(d)
	j := i + 2
	// long form: --[[ ... ]] with optional = padding
	if j < n && d[j] == '[' {
		k := j + 1
		eqs := 0
		for k < n && d[k] == '=' {
			eqs++
			k++
		}
		if k < n && d[k] == '[' {
			closer := "]" + string(bytes.Repeat([]byte{'='}, eqs)) + "]"
			end := bytes.Index(d[k+1:], []byte(closer))
			if end < 0 {
				return 0, ExpectedErr(fmt.Sprintf("comment terminator %q", closer), posDoc.Pos(i))
			}
			return k + 1 + end + len(closer), nil
		}
	}
	for j < n && d[j] != '\n' {
		j++
	}
	return j, nil
}

func scanString(d []byte, i int, posDoc *PosDoc) (int, error) {
	n := len(d)
	quote := d[i]
	j := i + 1
	for j < n {
		switch d[j] {
		case quote:
			return j + 1, nil
		case '\\':
			j += 2
		case '\n':
			return 0, UnexpectedErr("newline in string", posDoc.Pos(j))
		default:
			j++
		}
	}
	return 0, ExpectedErr(fmt.Sprintf("closing %q", quote), posDoc.Pos(i))
}

func scanNumber(d []byte, i int) int {
	n := len(d)
	j := i
	if d[j] == '0' && j+1 < n && (d[j+1] == 'x' || d[j+1] == 'X') {
		j += 2
		for j < n && isHexDigit(d[j]) {
			j++
		}
		return j
	}
	for j < n && isDigit(d[j]) {
		j++
	}
	if j < n && d[j] == '.' && j+1 < n && isDigit(d[j+1]) {
		j++
		for j < n && isDigit(d[j]) {
			j++
		}
	}
	if j < n && (d[j] == 'e' || d[j] == 'E') {
		k := j + 1
		if k < n && (d[k] == '+' || d[k] == '-') {
			k++
		}
		if k < n && isDigit(d[k]) {
			j = k
			for j < n && isDigit(d[j]) {
				j++
			}
		}
	}
	return j
}

func scanSymbol(d []byte, i int) int {
	n := len(d)
	if i+3 <= n {
		for _, s := range symbols3 {
			if string(d[i:i+3]) == s {
				return i + 3
			}
		}
	}
	if i+2 <= n {
		for _, s := range symbols2 {
			if string(d[i:i+2]) == s {
				return i + 2
			}
		}
	}
	if bytes.IndexByte([]byte(symbols1), d[i]) >= 0 {
		return i + 1
	}
	return i
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func isHexDigit(c byte) bool {
	return isDigit(c) || (c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F')
}

func isIdentStart(c byte) bool {
	return c == '_' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isIdentPart(c byte) bool {
	return isIdentStart(c) || isDigit(c)
}

// attachTrivia groups raw tokens into refs: each non-trivia token takes
// the pending whitespace and comments as leading trivia, and same-line
// whitespace and comments, up to and including the line break, as
// trailing trivia. Leftover trivia lands on the final TEof ref.
func attachTrivia(raw []Token, posDoc *PosDoc) []Ref {
	var refs []Ref
	var pending []Token
	i := 0
	n := len(raw)
	for i < n {
		t := raw[i]
		if t.Type.IsTrivia() {
			pending = append(pending, t)
			i++
			continue
		}
		ref := Ref{Leading: pending, Tok: t}
		pending = nil
		i++
		for i < n && raw[i].Type.IsTrivia() {
			tr := raw[i]
			ref.Trailing = append(ref.Trailing, tr)
			i++
			if tr.Type == TWhitespace && bytes.IndexByte(tr.Bytes, '\n') >= 0 {
				break
			}
		}
		refs = append(refs, ref)
	}
	refs = append(refs, Ref{
		Leading: pending,
		Tok:     Token{Type: TEof, Pos: posDoc.End()},
	})
	return refs
}
