package encode

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"

	"github.com/goccy/go-yaml"

	"github.com/sol-lang/go-sol/ast"
	"github.com/sol-lang/go-sol/token"
)

type EncState struct {
	format   Format
	noTrivia bool

	Color func(token.TokenType, string) string
}

// Encode writes the node's text to w. Without options the output is the
// node's exact source text, trivia included.
func Encode(n ast.Node, w io.Writer, opts ...EncodeOption) error {
	es := &EncState{}
	for _, opt := range opts {
		opt(es)
	}
	switch es.format {
	case JSONFormat:
		return EncodeJSON(n, w)
	case YAMLFormat:
		return EncodeYAML(n, w)
	}
	var err error
	first := true
	ast.Tokens(n, func(r *token.Ref) bool {
		if es.noTrivia {
			if !first {
				if err = writeString(w, " "); err != nil {
					return false
				}
			}
			first = false
			err = es.writeToken(w, &r.Tok)
			return err == nil
		}
		for i := range r.Leading {
			if err = es.writeToken(w, &r.Leading[i]); err != nil {
				return false
			}
		}
		if err = es.writeToken(w, &r.Tok); err != nil {
			return false
		}
		for i := range r.Trailing {
			if err = es.writeToken(w, &r.Trailing[i]); err != nil {
				return false
			}
		}
		return true
	})
	return err
}

// MustString renders the node, panicking on write error. It is a
// convenience for tests and string contexts.
func MustString(n ast.Node, opts ...EncodeOption) string {
	var buf bytes.Buffer
	if err := Encode(n, &buf, opts...); err != nil {
		panic(err)
	}
	return buf.String()
}

// EncodeJSON writes the node's tagged structured form as indented JSON.
func EncodeJSON(n ast.Node, w io.Writer) error {
	d, err := ast.MarshalNode(n)
	if err != nil {
		return err
	}
	var buf bytes.Buffer
	if err := json.Indent(&buf, d, "", "  "); err != nil {
		return err
	}
	buf.WriteByte('\n')
	_, err = w.Write(buf.Bytes())
	return err
}

// DecodeJSON reads a node from its tagged structured form. Decoded
// nodes carry synthesized tokens without positions.
func DecodeJSON(r io.Reader) (ast.Node, error) {
	d, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return ast.UnmarshalNode(d)
}

// EncodeYAML writes the node's tagged structured form as YAML.
func EncodeYAML(n ast.Node, w io.Writer) error {
	d, err := ast.MarshalNode(n)
	if err != nil {
		return err
	}
	y, err := yaml.JSONToYAML(d)
	if err != nil {
		return err
	}
	_, err = w.Write(y)
	return err
}

func (es *EncState) writeToken(w io.Writer, t *token.Token) error {
	s := string(t.Bytes)
	if es.Color != nil {
		s = es.Color(t.Type, s)
	}
	return writeString(w, s)
}

func writeString(w io.Writer, s string) error {
	n, err := io.WriteString(w, s)
	if err != nil {
		return err
	}
	if n != len(s) {
		return fmt.Errorf("short write: %d of %d bytes", n, len(s))
	}
	return nil
}
