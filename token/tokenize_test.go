package token

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func renderRefs(refs []Ref) string {
	var sb strings.Builder
	for i := range refs {
		refs[i].Write(&sb)
	}
	return sb.String()
}

func TestTokenizeRoundTrip(t *testing.T) {
	srcs := []string{
		"string",
		"string | number",
		"string|number",
		"{ foo: number, bar: string }",
		"(string, number) -> boolean",
		"typeof(x)",
		"...number",
		"module.Type<T, U>",
		"x += 1",
		"y ..= \"suffix\"",
		"-- leading comment\nstring",
		"string -- trailing comment\n",
		"string  --[[ long\ncomment ]]  | number",
		"type Foo<T> = { value: T }\n",
		"export type Pair = (string) -> string\n",
		"0x1f | 1e10 | 1.25",
		"",
		"   \t \n",
	}
	for _, src := range srcs {
		refs, err := Tokenize([]byte(src))
		if err != nil {
			t.Errorf("%q: %v", src, err)
			continue
		}
		if got := renderRefs(refs); got != src {
			t.Errorf("%q: rendered %q", src, got)
		}
		if n := len(refs); n == 0 || refs[n-1].Type() != TEof {
			t.Errorf("%q: missing eof ref", src)
		}
	}
}

func TestTokenizeTypes(t *testing.T) {
	refs, err := Tokenize([]byte(`local x = "s" .. 0x2 --done`))
	if err != nil {
		t.Fatal(err)
	}
	want := []string{
		"TKeyword local",
		"TIdent x",
		"TSymbol =",
		`TString "s"`,
		"TSymbol ..",
		"TNumber 0x2",
		"TEof ",
	}
	got := make([]string, len(refs))
	for i := range refs {
		got[i] = refs[i].Type().String() + " " + refs[i].Text()
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("token mismatch (-want +got):\n%s", diff)
	}
}

func TestTriviaAttachment(t *testing.T) {
	refs, err := Tokenize([]byte("a -- one\n-- two\nb"))
	if err != nil {
		t.Fatal(err)
	}
	// a, b, eof
	if len(refs) != 3 {
		t.Fatalf("got %d refs, want 3", len(refs))
	}
	a, b := refs[0], refs[1]
	// same-line comment and its newline trail "a"
	var aTrail strings.Builder
	for i := range a.Trailing {
		aTrail.WriteString(a.Trailing[i].String())
	}
	if aTrail.String() != " -- one\n" {
		t.Errorf("a trailing: %q", aTrail.String())
	}
	// next-line comment leads "b"
	var bLead strings.Builder
	for i := range b.Leading {
		bLead.WriteString(b.Leading[i].String())
	}
	if bLead.String() != "-- two\n" {
		t.Errorf("b leading: %q", bLead.String())
	}
}

func TestTokenizePositions(t *testing.T) {
	refs, err := Tokenize([]byte("aa | bb\n| cc"))
	if err != nil {
		t.Fatal(err)
	}
	cc := refs[4]
	if cc.Text() != "cc" {
		t.Fatalf("expected cc, got %q", cc.Text())
	}
	line, col := cc.Start().LineCol()
	if line != 2 || col != 3 {
		t.Errorf("cc at %d:%d, want 2:3", line, col)
	}
	// lines and columns are 1-based, so first-line tokens report line 1
	if line, col = refs[0].Start().LineCol(); line != 1 || col != 1 {
		t.Errorf("aa at %d:%d, want 1:1", line, col)
	}
	if line, col = refs[2].Start().LineCol(); line != 1 || col != 6 {
		t.Errorf("bb at %d:%d, want 1:6", line, col)
	}
}

func TestTokenizeErrors(t *testing.T) {
	for _, src := range []string{
		`"unterminated`,
		"\"newline\nin string\"",
		"--[[ unterminated long comment",
		"a $ b",
	} {
		_, err := Tokenize([]byte(src))
		if err == nil {
			t.Errorf("%q: expected error", src)
			continue
		}
		te := &TokenizeErr{}
		if !errors.As(err, &te) {
			t.Errorf("%q: error %v is not a TokenizeErr", src, err)
		}
	}
}
