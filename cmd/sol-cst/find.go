package main

import (
	"fmt"
	"strings"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
	"github.com/scott-cotton/cli"

	"github.com/sol-lang/go-sol/ast"
)

// findEnv holds the variables visible to a find expression, one env per
// visited node. It is an alias, not a defined type: the expr VM resolves
// variables through a map[string]any assertion on the env it is run with.
type findEnv = map[string]any

func emptyFindEnv() findEnv {
	return findEnv{
		"kind":  "",
		"text":  "",
		"depth": 0,
		"line":  0,
		"col":   0,
	}
}

func find(cfg *FindConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Find.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: find requires an expression argument", cli.ErrUsage)
	}
	prog, err := expr.Compile(args[0], expr.Env(emptyFindEnv()), expr.AsBool())
	if err != nil {
		return fmt.Errorf("%w: bad find expression: %w", cli.ErrUsage, err)
	}
	total := 0
	err = eachSrc(cc, args[1:], func(name string, d []byte) error {
		n, err := cfg.parseNode(d)
		if err != nil {
			return fmt.Errorf("error parsing: %w", err)
		}
		matches, err := findMatches(prog, n)
		if err != nil {
			return err
		}
		total += len(matches)
		if cfg.Count {
			return nil
		}
		for _, m := range matches {
			if _, err := fmt.Fprintln(cc.Out, m); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return err
	}
	if cfg.Count {
		_, err = fmt.Fprintln(cc.Out, total)
	}
	return err
}

func findMatches(prog *vm.Program, root ast.Node) ([]string, error) {
	var matches []string
	depth := -1
	err := ast.Visit(root, func(n ast.Node, post bool) (bool, error) {
		if post {
			depth--
			return true, nil
		}
		depth++
		env := emptyFindEnv()
		env["kind"] = ast.Kind(n)
		env["text"] = ast.Print(n)
		env["depth"] = depth
		if pos := ast.StartPosition(n); pos != nil {
			env["line"], env["col"] = pos.LineCol()
		}
		out, err := expr.Run(prog, env)
		if err != nil {
			return false, fmt.Errorf("error evaluating find expression: %w", err)
		}
		if out.(bool) {
			matches = append(matches, formatMatch(env))
		}
		return true, nil
	})
	if err != nil {
		return nil, err
	}
	return matches, nil
}

func formatMatch(env findEnv) string {
	text := strings.TrimSpace(env["text"].(string))
	if env["line"] == 0 {
		return fmt.Sprintf("%s: %s", env["kind"], text)
	}
	return fmt.Sprintf("%d:%d: %s: %s", env["line"], env["col"], env["kind"], text)
}
