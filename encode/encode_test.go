package encode

import (
	"bytes"
	"strings"
	"testing"

	"github.com/sol-lang/go-sol/ast"
	"github.com/sol-lang/go-sol/parse"
)

func mustParse(t *testing.T, src string) ast.TypeInfo {
	t.Helper()
	n, err := parse.ParseTypeString(src)
	if err != nil {
		t.Fatalf("%q: %v", src, err)
	}
	return n
}

func TestEncodeExact(t *testing.T) {
	srcs := []string{
		"string | number",
		"{ foo: number, -- note\n  bar: string }",
		"(Array<T>) -> module.Type?",
	}
	for _, src := range srcs {
		n := mustParse(t, src)
		var buf bytes.Buffer
		if err := Encode(n, &buf); err != nil {
			t.Fatalf("%q: %v", src, err)
		}
		if buf.String() != src {
			t.Errorf("%q: encoded %q", src, buf.String())
		}
	}
}

func TestEncodeNoTrivia(t *testing.T) {
	n := mustParse(t, "string  -- gone\n|  number")
	got := MustString(n, EncodeTrivia(false))
	if got != "string | number" {
		t.Errorf("encoded %q", got)
	}
}

func TestEncodeJSONRoundTrip(t *testing.T) {
	n := mustParse(t, "{ foo: number, bar: string? }")
	var buf bytes.Buffer
	if err := EncodeJSON(n, &buf); err != nil {
		t.Fatal(err)
	}
	back, err := DecodeJSON(&buf)
	if err != nil {
		t.Fatal(err)
	}
	if !ast.Equal(n, back) {
		t.Errorf("decoded tree differs: %q", ast.Print(back))
	}
	if ast.StartPosition(back) != nil {
		t.Error("decoded tree should carry no positions")
	}
}

func TestEncodeYAML(t *testing.T) {
	n := mustParse(t, "string | number")
	var buf bytes.Buffer
	if err := EncodeYAML(n, &buf); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	if !strings.Contains(out, "kind: union") {
		t.Errorf("yaml output missing kind tag:\n%s", out)
	}
}

func TestEncodeColorsPassThrough(t *testing.T) {
	// colors wrap the text but never change the bytes themselves
	c := NewColors()
	n := mustParse(t, "string | number")
	plain := MustString(n)
	colored := MustString(n, EncodeColors(c))
	for _, part := range []string{"string", "|", "number"} {
		if !strings.Contains(colored, part) {
			t.Errorf("colored output lost %q:\n%q", part, colored)
		}
	}
	if len(colored) < len(plain) {
		t.Error("colored output shorter than plain")
	}
}

func TestEncodeFormatOption(t *testing.T) {
	n := mustParse(t, "string")
	got := MustString(n, EncodeFormat(JSONFormat))
	if !strings.Contains(got, `"kind": "basic"`) {
		t.Errorf("json format output:\n%s", got)
	}
	if f := FormatFromOpts(EncodeFormat(YAMLFormat)); f != YAMLFormat {
		t.Errorf("FormatFromOpts returned %v", f)
	}
	if FormatSuffix(JSONFormat) != ".json" || FormatSuffix(SourceFormat) != ".sol" {
		t.Error("unexpected format suffixes")
	}
}
