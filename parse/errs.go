package parse

import (
	"errors"
	"fmt"

	"github.com/sol-lang/go-sol/token"
)

var ErrParse = errors.New("parse error")

func expectedErr(what string, at *token.Ref) error {
	if at == nil || at.Start() == nil {
		return fmt.Errorf("%w: expected %s at end of input", ErrParse, what)
	}
	return fmt.Errorf("%w: expected %s, got %q at %s", ErrParse, what, at.Text(), at.Start())
}

func trailingErr(at *token.Ref) error {
	return fmt.Errorf("%w: unexpected trailing input %q at %s", ErrParse, at.Text(), at.Start())
}
