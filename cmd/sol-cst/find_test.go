package main

import (
	"testing"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
	"github.com/google/go-cmp/cmp"

	"github.com/sol-lang/go-sol/ast"
	"github.com/sol-lang/go-sol/parse"
	"github.com/sol-lang/go-sol/token"
)

func compileFind(t *testing.T, src string) *vm.Program {
	t.Helper()
	prog, err := expr.Compile(src, expr.Env(emptyFindEnv()), expr.AsBool())
	if err != nil {
		t.Fatalf("compile %q: %v", src, err)
	}
	return prog
}

func TestFindMatches(t *testing.T) {
	n, err := parse.ParseType([]byte("string |\nnumber"))
	if err != nil {
		t.Fatal(err)
	}
	tests := []struct {
		expr string
		want []string
	}{
		{`kind == "basic"`, []string{
			"1:1: basic: string",
			"2:1: basic: number",
		}},
		{`kind == "union" && depth == 0`, []string{
			"1:1: union: string |\nnumber",
		}},
		{`line == 2`, []string{
			"2:1: basic: number",
		}},
		{`text == "nothing"`, nil},
	}
	for _, tt := range tests {
		got, err := findMatches(compileFind(t, tt.expr), n)
		if err != nil {
			t.Errorf("findMatches(%q): %v", tt.expr, err)
			continue
		}
		if d := cmp.Diff(tt.want, got); d != "" {
			t.Errorf("findMatches(%q): (-want +got)\n%s", tt.expr, d)
		}
	}
}

func TestFindMatchesSynthesized(t *testing.T) {
	// nodes built from synthesized tokens have no position and print
	// without a line:col prefix
	n := ast.NewBasicType(token.Symbol("string"))
	got, err := findMatches(compileFind(t, `line == 0`), n)
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"basic: string"}
	if d := cmp.Diff(want, got); d != "" {
		t.Errorf("(-want +got)\n%s", d)
	}
}
