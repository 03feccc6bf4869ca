package main

import (
	"fmt"

	"github.com/scott-cotton/cli"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"

	"github.com/sol-lang/go-sol/ast"
)

func check(cfg *CheckConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Check.Parse(cc, args)
	if err != nil {
		return err
	}
	failed := 0
	err = eachSrc(cc, args, func(name string, d []byte) error {
		n, err := cfg.parseNode(d)
		if err != nil {
			return fmt.Errorf("error parsing: %w", err)
		}
		got := ast.Print(n)
		if got == string(d) {
			fmt.Fprintf(cc.Out, "%s: ok\n", name)
			return nil
		}
		failed++
		fmt.Fprintf(cc.Out, "%s: render mismatch\n", name)
		if cfg.Quiet {
			return nil
		}
		diffCfg := diffpatch.New()
		diffs := diffCfg.DiffMain(string(d), got, true)
		fmt.Fprintln(cc.Out, diffCfg.DiffPrettyText(diffs))
		return nil
	})
	if err != nil {
		return err
	}
	if failed > 0 {
		return cli.ExitCodeErr(1)
	}
	return nil
}
