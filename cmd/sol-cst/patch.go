package main

import (
	"fmt"
	"os"

	jsonpatch "github.com/evanphx/json-patch"
	"github.com/scott-cotton/cli"

	"github.com/sol-lang/go-sol/ast"
	"github.com/sol-lang/go-sol/encode"
)

func patch(cfg *PatchConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Patch.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: patch requires a patch argument", cli.ErrUsage)
	}
	pd, err := patchBytes(cfg, args[0])
	if err != nil {
		return err
	}
	p, err := jsonpatch.DecodePatch(pd)
	if err != nil {
		return fmt.Errorf("error decoding patch: %w", err)
	}
	return eachSrc(cc, args[1:], func(name string, d []byte) error {
		n, err := cfg.parseNode(d)
		if err != nil {
			return fmt.Errorf("error parsing: %w", err)
		}
		doc, err := ast.MarshalNode(n)
		if err != nil {
			return fmt.Errorf("internal error: %w", err)
		}
		patched, err := p.Apply(doc)
		if err != nil {
			return fmt.Errorf("error applying patch: %w", err)
		}
		res, err := ast.UnmarshalNode(patched)
		if err != nil {
			return fmt.Errorf("error decoding patched node: %w", err)
		}
		opts := cfg.MainConfig.encOpts(cc.Out)
		if err := encode.Encode(res, cc.Out, opts...); err != nil {
			return fmt.Errorf("error encoding result: %w", err)
		}
		_, err = cc.Out.Write([]byte("\n"))
		return err
	})
}

// patchBytes resolves the patch argument: a string with -s, a file with
// -f, and otherwise a file if one exists at that path, a string if not.
func patchBytes(cfg *PatchConfig, arg string) ([]byte, error) {
	if cfg.String && cfg.File {
		return nil, fmt.Errorf("%w: -s and -f are mutually exclusive", cli.ErrUsage)
	}
	if cfg.String {
		return []byte(arg), nil
	}
	d, err := os.ReadFile(arg)
	if err != nil {
		if cfg.File {
			return nil, fmt.Errorf("could not read patch %q: %w", arg, err)
		}
		return []byte(arg), nil
	}
	return d, nil
}
