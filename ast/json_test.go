package ast

import (
	"encoding/json"
	"testing"

	"github.com/sol-lang/go-sol/token"
)

func jsonRoundTrip(t *testing.T, n Node) Node {
	t.Helper()
	d, err := MarshalNode(n)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	back, err := UnmarshalNode(d)
	if err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	return back
}

func TestJSONRoundTrip(t *testing.T) {
	g := NewGenericDeclaration().
		WithNames(NewPunctuated[token.Ref]().
			Push(token.Symbol("T")).
			Push(token.Symbol("U")))
	nodes := []Node{
		NewUnionType(spaced("string"), token.Symbol("| "), basic("number")),
		NewOptionalType(basic("string"), token.Symbol("?")),
		NewTableType(
			NewContainedSpan(token.Symbol("{ "), token.Symbol("}")),
			NewPunctuated[TypeField]().Push(
				NewTypeField(NewNameKey(token.Symbol("foo")), spaced("number")),
			),
		),
		NewTypeofType(
			token.Symbol("typeof"),
			NewContainedSpan(token.Symbol("("), token.Symbol(")")),
			NewDotExpr(NewNameExpr(token.Symbol("a")), token.Symbol("."), token.Symbol("b")),
		),
		NewExportedTypeDeclaration(
			NewTypeDeclaration(token.Symbol("Pair"), basic("T")).WithGenerics(&g),
		),
		NewCompoundAssignment(
			NewNameExpr(token.Symbol("x")),
			NewCompoundOp(TwoDotsEqual),
			NewStringExpr(token.Symbol(`"s"`)),
		),
	}
	for _, n := range nodes {
		back := jsonRoundTrip(t, n)
		if !Equal(n, back) {
			t.Errorf("%s: decoded tree differs\nin:  %q\nout: %q",
				Kind(n), Print(n), Print(back))
		}
		if Print(back) != Print(n) {
			t.Errorf("%s: decoded tree renders %q, want %q",
				Kind(n), Print(back), Print(n))
		}
	}
}

func TestJSONDropsPositions(t *testing.T) {
	refs, err := token.Tokenize([]byte("string|number"))
	if err != nil {
		t.Fatal(err)
	}
	parsed := NewUnionType(NewBasicType(refs[0]), refs[1], NewBasicType(refs[2]))
	back := jsonRoundTrip(t, parsed)
	if StartPosition(back) != nil {
		t.Error("decoded tree should be synthesized, positions dropped")
	}
	if !Equal(parsed, back) {
		t.Error("decoding changed the tree's text")
	}
}

func TestJSONKindTag(t *testing.T) {
	d, err := MarshalNode(basic("string"))
	if err != nil {
		t.Fatal(err)
	}
	var m map[string]any
	if err := json.Unmarshal(d, &m); err != nil {
		t.Fatal(err)
	}
	if m["kind"] != "basic" {
		t.Errorf("kind tag %v", m["kind"])
	}
}

func TestJSONUnknownKind(t *testing.T) {
	if _, err := UnmarshalNode([]byte(`{"kind": "nope"}`)); err == nil {
		t.Error("expected error for unknown kind")
	}
	if _, err := UnmarshalNode([]byte(`{"no": "kind"}`)); err == nil {
		t.Error("expected error for missing kind")
	}
}
