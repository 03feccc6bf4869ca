package main

import (
	"github.com/scott-cotton/cli"
)

func MainCommand() *cli.Command {
	cfg := &MainConfig{}
	sOpts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	opts := append(sOpts, []*cli.Opt{
		{
			Name:        "o",
			Description: "output file (default stdout)",
			Type:        cli.NamedFuncOpt(cfg.outOpt, "(filepath)"),
		},
		{
			Name:        "k",
			Aliases:     []string{"kind"},
			Description: "node kind: type/t, decl/d, assign/a",
			Type:        cli.NamedFuncOpt(cfg.kindOpt, "(kind)"),
		},
		{
			Name:        "O",
			Aliases:     []string{"ofmt"},
			Description: "output format: sol/s, json/j, yaml/y",
			Type:        cli.NamedFuncOpt(cfg.fmtOpt, "(format)"),
		},
	}...)

	return cli.NewCommandAt(&cfg.Main, "sol-cst").
		WithSynopsis("sol-cst [opts] command [opts]").
		WithDescription("sol-cst is a tool for working with Sol type syntax trees.").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return cstMain(cfg, cc, args)
		}).
		WithSubs(
			DumpCommand(cfg),
			ViewCommand(cfg),
			CheckCommand(cfg),
			FindCommand(cfg),
			PatchCommand(cfg))
}

func DumpCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &DumpConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.Dump, "dump").
		WithAliases("d").
		WithSynopsis("dump [files]").
		WithDescription("dump the structured form of parsed nodes").
		WithRun(func(cc *cli.Context, args []string) error {
			return dump(cfg, cc, args)
		})
}

func ViewCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &ViewConfig{MainConfig: mainCfg, Trivia: true}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	cmd := cli.NewCommand("view").
		WithAliases("v").
		WithOpts(opts...).
		WithSynopsis("view [files]").
		WithDescription("view source files with tokens in color").
		WithRun(func(cc *cli.Context, args []string) error {
			return view(cfg, cc, args)
		})
	cfg.View = cmd
	return cmd
}

func CheckCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &CheckConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	cmd := cli.NewCommand("check").
		WithAliases("c", "ck").
		WithOpts(opts...).
		WithSynopsis("check [files]").
		WithDescription("verify files parse and render back byte for byte").
		WithRun(func(cc *cli.Context, args []string) error {
			return check(cfg, cc, args)
		})
	cfg.Check = cmd
	return cmd
}

func FindCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &FindConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	cmd := cli.NewCommand("find").
		WithAliases("f").
		WithOpts(opts...).
		WithSynopsis("find <expr> [files]").
		WithDescription(findDescription).
		WithRun(func(cc *cli.Context, args []string) error {
			return find(cfg, cc, args)
		})
	cfg.Find = cmd
	return cmd
}

const findDescription = `find prints nodes matching a boolean expression.

The expression is evaluated against every node in the tree with the
following variables in scope:

  kind   the node kind name, such as "basic" or "type_field"
  text   the node's rendered text, trivia included
  depth  the node's depth below the root, root being 0
  line   the 1-based source line of the node's first token, 0 if unknown
  col    the 1-based source column of the node's first token, 0 if unknown

For example:

  sol-cst find 'kind == "union" && depth > 0' file.sol`

func PatchCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &PatchConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	cmd := cli.NewCommand("patch").
		WithAliases("p", "pa").
		WithOpts(opts...).
		WithSynopsis("patch [opts] <jsonpatch> [files]").
		WithDescription("apply a JSON patch to the structured form and render the result").
		WithRun(func(cc *cli.Context, args []string) error {
			return patch(cfg, cc, args)
		})
	cfg.Patch = cmd
	return cmd
}
