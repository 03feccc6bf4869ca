package parse

import (
	"errors"
	"testing"

	"github.com/sol-lang/go-sol/ast"
	"github.com/sol-lang/go-sol/token"
)

func TestParseTypeRoundTrip(t *testing.T) {
	srcs := []string{
		"string",
		"string | number",
		"string|number",
		"string | number | boolean",
		"string & number",
		"string?",
		"string??",
		"{ foo: number, bar: string }",
		"{foo: number,}",
		"{ [string]: boolean }",
		"{ number }",
		"{number}",
		"{}",
		"(string, number) -> boolean",
		"() -> nil",
		"(string) -> (number) -> boolean",
		"(string, number)",
		"typeof(x)",
		"typeof(obj.field)",
		"typeof(42)",
		`typeof("s")`,
		"...number",
		"...string?",
		"module.Type",
		"module.Type<T, U>",
		"Array<T>",
		"Map<string, Array<number>>",
		"Array<T,>",
		"{ pos: { x: number, y: number }, name: string }",
		"string -- comment\n| number",
		"  string  ",
		"-- leading\nstring -- trailing\n",
		"string --[[ inline ]] | number",
	}
	for _, src := range srcs {
		n, err := ParseTypeString(src)
		if err != nil {
			t.Errorf("%q: %v", src, err)
			continue
		}
		if got := ast.Print(n); got != src {
			t.Errorf("%q: renders %q", src, got)
		}
	}
}

func TestParseDeclarationRoundTrip(t *testing.T) {
	srcs := []string{
		"type Foo = string",
		"type Foo = { value: number }",
		"type Pair<T, U> = (T) -> U",
		"type Opt<T> = T?",
		"export type Foo = string",
		"export type Pair<T, U> = { first: T, second: U }",
		"-- doc comment\ntype Foo = string\n",
	}
	for _, src := range srcs {
		n, err := ParseDeclaration([]byte(src))
		if err != nil {
			t.Errorf("%q: %v", src, err)
			continue
		}
		if got := ast.Print(n); got != src {
			t.Errorf("%q: renders %q", src, got)
		}
	}
}

func TestParseCompoundAssignmentRoundTrip(t *testing.T) {
	srcs := []string{
		"x += 1",
		"x -= 2",
		"x *= 3",
		"x /= 4",
		"x %= 5",
		"x ^= 6",
		`s ..= "suffix"`,
		"obj.field += obj.other",
		"counter+=1",
	}
	for _, src := range srcs {
		n, err := ParseCompoundAssignment([]byte(src))
		if err != nil {
			t.Errorf("%q: %v", src, err)
			continue
		}
		if got := ast.Print(n); got != src {
			t.Errorf("%q: renders %q", src, got)
		}
	}
}

func TestUnionRightNesting(t *testing.T) {
	n, err := ParseTypeString("a | b | c")
	if err != nil {
		t.Fatal(err)
	}
	u, ok := n.(ast.UnionType)
	if !ok {
		t.Fatalf("got %T", n)
	}
	if _, ok := u.Left().(ast.BasicType); !ok {
		t.Errorf("left is %T, want basic", u.Left())
	}
	inner, ok := u.Right().(ast.UnionType)
	if !ok {
		t.Fatalf("right is %T, want union", u.Right())
	}
	if ast.Print(inner) != "b | c" {
		t.Errorf("inner union renders %q", ast.Print(inner))
	}
}

func TestTupleVsCallback(t *testing.T) {
	n, err := ParseTypeString("(string, number)")
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := n.(ast.TupleType); !ok {
		t.Fatalf("got %T, want tuple", n)
	}
	n, err = ParseTypeString("(string, number) -> boolean")
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := n.(ast.CallbackType); !ok {
		t.Fatalf("got %T, want callback", n)
	}
}

func TestTableVsArray(t *testing.T) {
	n, err := ParseTypeString("{ foo: number }")
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := n.(ast.TableType); !ok {
		t.Fatalf("got %T, want table", n)
	}
	n, err = ParseTypeString("{ number }")
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := n.(ast.ArrayType); !ok {
		t.Fatalf("got %T, want array", n)
	}
	n, err = ParseTypeString("{}")
	if err != nil {
		t.Fatal(err)
	}
	tab, ok := n.(ast.TableType)
	if !ok {
		t.Fatalf("got %T, want table", n)
	}
	if tab.Fields().Len() != 0 {
		t.Errorf("empty table has %d fields", tab.Fields().Len())
	}
}

func TestModuleIndexRestriction(t *testing.T) {
	n, err := ParseTypeString("module.Type<T>")
	if err != nil {
		t.Fatal(err)
	}
	mod, ok := n.(ast.ModuleType)
	if !ok {
		t.Fatalf("got %T, want module", n)
	}
	if _, ok := mod.Index().(ast.GenericType); !ok {
		t.Errorf("index is %T, want generic", mod.Index())
	}
	// anything but a name after the dot is rejected
	for _, src := range []string{"module.{ foo: number }", "module.(string)", "module.typeof(x)?"} {
		if _, err := ParseTypeString(src); err == nil {
			t.Errorf("%q: expected error", src)
		}
	}
}

func TestParseErrors(t *testing.T) {
	typeSrcs := []string{
		"",
		"string |",
		"| string",
		"{ foo: }",
		"{ foo number }",
		"(string",
		"(string, ) -> ",
		"string number",
		"typeof x",
		"Array<",
	}
	for _, src := range typeSrcs {
		if _, err := ParseTypeString(src); err == nil {
			t.Errorf("%q: expected error", src)
		}
	}
	declSrcs := []string{
		"type = string",
		"type Foo string",
		"type Foo =",
		"export Foo = string",
		"type Foo<> = string",
		"type Foo = string extra",
	}
	for _, src := range declSrcs {
		if _, err := ParseDeclaration([]byte(src)); err == nil {
			t.Errorf("%q: expected error", src)
		}
	}
	assignSrcs := []string{
		"x == 1",
		"x += ",
		"1 += x",
		"x.1 += 2",
	}
	for _, src := range assignSrcs {
		if _, err := ParseCompoundAssignment([]byte(src)); err == nil {
			t.Errorf("%q: expected error", src)
		}
	}
}

func TestParseErrorsWrapped(t *testing.T) {
	_, err := ParseTypeString("string |")
	if !errors.Is(err, ErrParse) {
		t.Errorf("error %v does not wrap ErrParse", err)
	}
	_, err = ParseTypeString("string number")
	if !errors.Is(err, ErrParse) {
		t.Errorf("trailing input error %v does not wrap ErrParse", err)
	}
}

func TestReparseIdempotence(t *testing.T) {
	srcs := []string{
		"string  |  number -- keep\n",
		"{ foo: number, -- per field\n  bar: string }",
		"(Array<T>, module.Type) -> { [string]: boolean }?",
	}
	for _, src := range srcs {
		first, err := ParseTypeString(src)
		if err != nil {
			t.Fatalf("%q: %v", src, err)
		}
		second, err := ParseTypeString(ast.Print(first))
		if err != nil {
			t.Fatalf("%q: reparse: %v", src, err)
		}
		if !ast.Equal(first, second) {
			t.Errorf("%q: reparse differs", src)
		}
	}
}

func TestParseOwned(t *testing.T) {
	src := []byte("string | number")
	n, err := ParseType(src, ParseOwned(true))
	if err != nil {
		t.Fatal(err)
	}
	copy(src, []byte("strung ? nomber"))
	if got := ast.Print(n); got != "string | number" {
		t.Errorf("owned parse changed with its buffer: %q", got)
	}
}

func TestBuilderLocalityOnParsed(t *testing.T) {
	src := "{ foo: number, -- first\n  bar: string }"
	n, err := ParseTypeString(src)
	if err != nil {
		t.Fatal(err)
	}
	tab := n.(ast.TableType)
	fields := tab.Fields()
	pairs := fields.Pairs()
	// the trailing space keeps the closing brace spaced as before
	changed := pairs[1].Item().WithValue(
		ast.NewBasicType(token.Symbol("boolean ")),
	)
	rebuilt := tab.WithFields(
		ast.NewPunctuated[ast.TypeField]().
			PushPair(pairs[0].Item(), pairs[0].Separator()).
			PushPair(changed, pairs[1].Separator()),
	)
	want := "{ foo: number, -- first\n  bar: boolean }"
	if got := ast.Print(rebuilt); got != want {
		t.Errorf("rebuilt table renders %q, want %q", got, want)
	}
	if got := ast.Print(n); got != src {
		t.Errorf("original table changed: %q", got)
	}
}

func TestDeclarationShape(t *testing.T) {
	n, err := ParseDeclaration([]byte("export type Pair<T, U> = { first: T, second: U }"))
	if err != nil {
		t.Fatal(err)
	}
	exp, ok := n.(ast.ExportedTypeDeclaration)
	if !ok {
		t.Fatalf("got %T, want exported declaration", n)
	}
	decl := exp.TypeDeclaration()
	if decl.TypeName().Text() != "Pair" {
		t.Errorf("name %q", decl.TypeName().Text())
	}
	g := decl.Generics()
	if g == nil {
		t.Fatal("missing generics")
	}
	if g.Names().Len() != 2 {
		t.Errorf("%d generic names", g.Names().Len())
	}
	if _, ok := decl.TypeDefinition().(ast.TableType); !ok {
		t.Errorf("definition is %T, want table", decl.TypeDefinition())
	}
}
