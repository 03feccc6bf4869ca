package main

import (
	"fmt"

	"github.com/scott-cotton/cli"

	"github.com/sol-lang/go-sol/encode"
)

func dump(cfg *DumpConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Dump.Parse(cc, args)
	if err != nil {
		return err
	}
	return eachSrc(cc, args, func(name string, d []byte) error {
		n, err := cfg.parseNode(d)
		if err != nil {
			return fmt.Errorf("error parsing: %w", err)
		}
		fmat := encode.JSONFormat
		if cfg.OutFormat != nil {
			fmat = *cfg.OutFormat
		}
		switch fmat {
		case encode.YAMLFormat:
			return encode.EncodeYAML(n, cc.Out)
		default:
			return encode.EncodeJSON(n, cc.Out)
		}
	})
}
