package ast

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/sol-lang/go-sol/token"
)

func TestVisitOrder(t *testing.T) {
	// (string) -> number
	cb := NewCallbackType(
		NewContainedSpan(token.Symbol("("), token.Symbol(") ")),
		NewPunctuated[TypeInfo]().Push(TypeInfo(basic("string"))),
		token.Symbol("-> "),
		basic("number"),
	)
	var kinds []string
	err := Visit(cb, func(n Node, post bool) (bool, error) {
		if !post {
			kinds = append(kinds, Kind(n))
		}
		return true, nil
	})
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"callback", "basic", "basic"}
	if diff := cmp.Diff(want, kinds); diff != "" {
		t.Errorf("visit order (-want +got):\n%s", diff)
	}
}

func TestVisitPrune(t *testing.T) {
	union := NewUnionType(
		NewOptionalType(basic("string"), token.Symbol("?")),
		token.Symbol("|"),
		basic("number"),
	)
	var kinds []string
	err := Visit(union, func(n Node, post bool) (bool, error) {
		if post {
			return true, nil
		}
		kinds = append(kinds, Kind(n))
		// skip the children of the optional branch
		return Kind(n) != "optional", nil
	})
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"union", "optional", "basic"}
	if diff := cmp.Diff(want, kinds); diff != "" {
		t.Errorf("pruned visit (-want +got):\n%s", diff)
	}
}

func TestRewrite(t *testing.T) {
	union := NewUnionType(spaced("string"), token.Symbol("| "), basic("number"))
	got := Rewrite(union, nil, func(n Node) Node {
		b, ok := n.(BasicType)
		if !ok {
			return n
		}
		if b.Token().Text() != "number" {
			return n
		}
		return b.WithToken(token.Symbol("integer"))
	})
	if s := Print(got); s != "string | integer" {
		t.Errorf("rewritten union renders %q", s)
	}
	if s := Print(union); s != "string | number" {
		t.Errorf("rewrite mutated its input: %q", s)
	}
}

func TestRewritePreservesTrivia(t *testing.T) {
	refs, err := token.Tokenize([]byte("string  -- keep me\n| number"))
	if err != nil {
		t.Fatal(err)
	}
	union := NewUnionType(NewBasicType(refs[0]), refs[1], NewBasicType(refs[2]))
	got := Rewrite(union, nil, func(n Node) Node {
		b, ok := n.(BasicType)
		if !ok || b.Token().Text() != "number" {
			return n
		}
		return b.WithToken(token.Symbol("nil"))
	})
	if s := Print(got); s != "string  -- keep me\n| nil" {
		t.Errorf("rewritten union renders %q", s)
	}
}

func TestOwnedIndependence(t *testing.T) {
	src := []byte("string | number")
	refs, err := token.Tokenize(src)
	if err != nil {
		t.Fatal(err)
	}
	union := NewUnionType(NewBasicType(refs[0]), refs[1], NewBasicType(refs[2]))
	owned := OwnedAs(union)
	before := Print(owned)

	copy(src, []byte("strong # nimber"))
	if got := Print(owned); got != before {
		t.Errorf("owned tree changed with its buffer: %q", got)
	}
	if got := Print(union); got == before {
		t.Error("borrowed tree should alias its buffer")
	}
	if !Equal(owned, Owned(owned)) {
		t.Error("owning twice changed the tree")
	}
}
