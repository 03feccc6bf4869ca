package ast

import (
	"testing"

	"github.com/sol-lang/go-sol/token"
)

func basic(name string) BasicType {
	return NewBasicType(token.Symbol(name))
}

func spaced(name string) BasicType {
	return NewBasicType(token.Symbol(name + " "))
}

func TestBuilderRendering(t *testing.T) {
	union := NewUnionType(spaced("string"), token.Symbol("| "), basic("number"))
	if got := Print(union); got != "string | number" {
		t.Errorf("union renders %q", got)
	}

	opt := NewOptionalType(basic("string"), token.Symbol("?"))
	if got := Print(opt); got != "string?" {
		t.Errorf("optional renders %q", got)
	}

	arr := NewArrayType(
		NewContainedSpan(token.Symbol("{ "), token.Symbol(" }")),
		basic("number"),
	)
	if got := Print(arr); got != "{ number }" {
		t.Errorf("array renders %q", got)
	}

	variadic := NewVariadicType(token.Symbol("..."), basic("string"))
	if got := Print(variadic); got != "...string" {
		t.Errorf("variadic renders %q", got)
	}

	mod := NewModuleType(token.Symbol("module"), token.Symbol("."), basic("Foo"))
	if got := Print(mod); got != "module.Foo" {
		t.Errorf("module renders %q", got)
	}
}

func TestTypeDeclarationDefaults(t *testing.T) {
	decl := NewTypeDeclaration(token.Symbol("Foo"), basic("string"))
	if got := Print(decl); got != "type Foo = string" {
		t.Errorf("declaration renders %q", got)
	}

	exported := NewExportedTypeDeclaration(decl)
	if got := Print(exported); got != "export type Foo = string" {
		t.Errorf("exported declaration renders %q", got)
	}
}

func TestGenericDeclarationRendering(t *testing.T) {
	names := NewPunctuated[token.Ref]().
		Push(token.Symbol("T")).
		Push(token.Symbol("U"))
	g := NewGenericDeclaration().WithNames(names)
	if got := Print(g); got != "<T, U>" {
		t.Errorf("generics render %q", got)
	}

	decl := NewTypeDeclaration(token.Symbol("Pair"), basic("T")).
		WithGenerics(&g)
	if got := Print(decl); got != "type Pair<T, U> = T" {
		t.Errorf("generic declaration renders %q", got)
	}
}

func TestTypeFieldDefaults(t *testing.T) {
	f := NewTypeField(NewNameKey(token.Symbol("foo")), basic("number"))
	if got := Print(f); got != "foo: number" {
		t.Errorf("field renders %q", got)
	}

	idx := NewTypeField(
		NewIndexSignatureKey(
			NewContainedSpan(token.Symbol("["), token.Symbol("]")),
			basic("string"),
		),
		basic("boolean"),
	)
	if got := Print(idx); got != "[string]: boolean" {
		t.Errorf("index field renders %q", got)
	}
}

func TestTypeAssertionDefaults(t *testing.T) {
	a := NewTypeAssertion(basic("number"))
	if got := Print(a); got != "::number" {
		t.Errorf("assertion renders %q", got)
	}
}

func TestBuilderLocality(t *testing.T) {
	union := NewUnionType(spaced("string"), token.Symbol("| "), basic("number"))
	before := Print(union)

	changed := union.WithRight(basic("boolean"))
	if got := Print(changed); got != "string | boolean" {
		t.Errorf("changed union renders %q", got)
	}
	if got := Print(union); got != before {
		t.Errorf("builder mutated its receiver: %q", got)
	}
	// the untouched branches still compare equal
	if !Equal(union.Left(), changed.Left()) {
		t.Error("left branch changed under WithRight")
	}
}

func TestCompoundAssignment(t *testing.T) {
	for kind, want := range map[CompoundOpKind]string{
		PlusEqual:    "x += y",
		MinusEqual:   "x -= y",
		StarEqual:    "x *= y",
		SlashEqual:   "x /= y",
		PercentEqual: "x %= y",
		CaretEqual:   "x ^= y",
		TwoDotsEqual: "x ..= y",
	} {
		c := NewCompoundAssignment(
			NewNameExpr(token.Symbol("x")),
			NewCompoundOp(kind),
			NewNameExpr(token.Symbol("y")),
		)
		if got := Print(c); got != want {
			t.Errorf("%s renders %q, want %q", kind, got, want)
		}
	}
}

func TestCompoundOpFromToken(t *testing.T) {
	op, err := CompoundOpFromToken(token.Symbol("..="))
	if err != nil {
		t.Fatal(err)
	}
	if op.Kind() != TwoDotsEqual {
		t.Errorf("got kind %s", op.Kind())
	}
	if _, err := CompoundOpFromToken(token.Symbol("==")); err == nil {
		t.Error("expected error for non-compound operator")
	}
}

func TestPositionsOnDemand(t *testing.T) {
	refs, err := token.Tokenize([]byte("string | number"))
	if err != nil {
		t.Fatal(err)
	}
	union := NewUnionType(
		NewBasicType(refs[0]),
		refs[1],
		NewBasicType(refs[2]),
	)
	start, end := StartPosition(union), EndPosition(union)
	if start == nil || end == nil {
		t.Fatal("parsed node has nil span")
	}
	if start.I != 0 || end.I != len("string | number") {
		t.Errorf("span [%d, %d)", start.I, end.I)
	}

	// a synthesized replacement has no position of its own
	changed := union.WithLeft(basic("boolean"))
	if StartPosition(changed) != nil {
		t.Error("synthesized first token should have nil start")
	}
	if EndPosition(changed) == nil {
		t.Error("last token is still parsed, end should be known")
	}
}
