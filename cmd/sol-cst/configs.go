package main

import (
	"fmt"
	"io"
	"os"

	"github.com/scott-cotton/cli"

	"github.com/mattn/go-isatty"

	"github.com/sol-lang/go-sol/ast"
	"github.com/sol-lang/go-sol/encode"
	"github.com/sol-lang/go-sol/parse"
)

type MainConfig struct {
	Color bool `cli:"name=color desc='encode with color'"`
	Owned bool `cli:"name=owned desc='detach parsed nodes from their source buffers'"`

	Kind      string
	OutFormat *encode.Format

	Out      string
	CloseOut func() error

	Main *cli.Command
}

// node kinds accepted by -k.
const (
	kindType   = "type"
	kindDecl   = "decl"
	kindAssign = "assign"
)

func (cfg *MainConfig) kindOpt(_ *cli.Context, a string) (any, error) {
	switch a {
	case "type", "t":
		cfg.Kind = kindType
	case "decl", "declaration", "d":
		cfg.Kind = kindDecl
	case "assign", "assignment", "a":
		cfg.Kind = kindAssign
	default:
		return nil, fmt.Errorf("%w: unknown node kind %q", cli.ErrUsage, a)
	}
	return cfg.Kind, nil
}

func (cfg *MainConfig) fmtOpt(_ *cli.Context, a string) (any, error) {
	var f encode.Format
	switch a {
	case "sol", "s", "source":
		f = encode.SourceFormat
	case "json", "j":
		f = encode.JSONFormat
	case "yaml", "y":
		f = encode.YAMLFormat
	default:
		return nil, fmt.Errorf("%w: unknown output format %q", cli.ErrUsage, a)
	}
	cfg.OutFormat = &f
	return f, nil
}

func (cfg *MainConfig) parseOpts() []parse.ParseOption {
	if cfg.Owned {
		return []parse.ParseOption{parse.ParseOwned(true)}
	}
	return nil
}

// parseNode parses d as the configured node kind, defaulting to a type
// expression.
func (cfg *MainConfig) parseNode(d []byte) (ast.Node, error) {
	switch cfg.Kind {
	case kindDecl:
		return parse.ParseDeclaration(d, cfg.parseOpts()...)
	case kindAssign:
		return parse.ParseCompoundAssignment(d, cfg.parseOpts()...)
	default:
		return parse.ParseType(d, cfg.parseOpts()...)
	}
}

func (cfg *MainConfig) encOpts(w io.Writer) []encode.EncodeOption {
	var res []encode.EncodeOption
	if cfg.OutFormat != nil {
		res = append(res, encode.EncodeFormat(*cfg.OutFormat))
	}
	if cfg.Color {
		res = append(res, encode.EncodeColors(encode.NewColors()))
		return res
	}
	colorsSet := false
	for _, opt := range cfg.Main.Opts {
		if opt.Name != "color" {
			continue
		}
		colorsSet = opt.Value != nil
		break
	}
	if colorsSet {
		return res
	}
	f, ok := w.(*os.File)
	if !ok {
		return res
	}
	if isatty.IsTerminal(f.Fd()) {
		res = append(res, encode.EncodeColors(encode.NewColors()))
	}
	return res
}

type DumpConfig struct {
	*MainConfig
	Dump *cli.Command
}

type ViewConfig struct {
	*MainConfig
	Trivia bool `cli:"name=trivia desc='include whitespace and comment trivia'"`

	View *cli.Command
}

type CheckConfig struct {
	*MainConfig
	Quiet bool `cli:"name=q desc='suppress the diff on mismatch'"`

	Check *cli.Command
}

type FindConfig struct {
	*MainConfig
	Count bool `cli:"name=count desc='print only the number of matches'"`

	Find *cli.Command
}

type PatchConfig struct {
	*MainConfig
	String bool `cli:"name=s desc='patch arg as string'"`
	File   bool `cli:"name=f desc='patch arg as file'"`

	Patch *cli.Command
}
