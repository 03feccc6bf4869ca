package main

import (
	"fmt"

	"github.com/scott-cotton/cli"

	"github.com/sol-lang/go-sol/encode"
)

func view(cfg *ViewConfig, cc *cli.Context, args []string) error {
	args, err := cfg.View.Parse(cc, args)
	if err != nil {
		return err
	}
	return eachSrc(cc, args, func(name string, d []byte) error {
		n, err := cfg.parseNode(d)
		if err != nil {
			return fmt.Errorf("error parsing: %w", err)
		}
		opts := cfg.MainConfig.encOpts(cc.Out)
		opts = append(opts, encode.EncodeTrivia(cfg.Trivia))
		if err := encode.Encode(n, cc.Out, opts...); err != nil {
			return fmt.Errorf("error encoding: %w", err)
		}
		// with trivia on, any final newline is already in the output
		if !cfg.Trivia {
			_, err = cc.Out.Write([]byte("\n"))
		}
		return err
	})
}
