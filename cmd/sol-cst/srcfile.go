package main

import (
	"fmt"
	"io"
	"os"

	"github.com/scott-cotton/cli"
)

// readSrc reads a source argument: a file path, or "-" for the command
// input.
func readSrc(cc *cli.Context, path string) ([]byte, error) {
	var r io.Reader
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("could not open %q: %w", path, err)
		}
		defer f.Close()
		r = f
	} else {
		r = cc.In
	}
	d, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("error reading %q: %w", path, err)
	}
	return d, nil
}

// eachSrc runs fn over every file argument, or over the command input
// when there are none.
func eachSrc(cc *cli.Context, args []string, fn func(name string, d []byte) error) error {
	if len(args) == 0 {
		d, err := readSrc(cc, "-")
		if err != nil {
			return err
		}
		return fn("-", d)
	}
	for _, file := range args {
		d, err := readSrc(cc, file)
		if err != nil {
			return err
		}
		if err := fn(file, d); err != nil {
			return fmt.Errorf("error processing %s: %w", file, err)
		}
	}
	return nil
}
