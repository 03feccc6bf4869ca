package encode

import (
	"strings"

	"github.com/fatih/color"

	"github.com/sol-lang/go-sol/token"
)

type Colors struct {
	Default func(string, ...any) string
	Map     map[token.TokenType]func(string, ...any) string
}

func NewColors() *Colors {
	colors := &Colors{
		Default: colorDefault,
		Map:     map[token.TokenType]func(string, ...any) string{},
	}
	colors.Map[token.TComment] = color.BlueString
	colors.Map[token.TKeyword] = color.RGB(196, 96, 16).SprintfFunc()
	colors.Map[token.TIdent] = color.RGB(128, 168, 196).SprintfFunc()
	colors.Map[token.TNumber] = color.RGB(128, 216, 236).SprintfFunc()
	colors.Map[token.TString] = color.RGB(8, 196, 16).SprintfFunc()
	colors.Map[token.TSymbol] = color.RGB(255, 0, 196).SprintfFunc()
	for k, f := range colors.Map {
		colors.Map[k] = func(v string, _ ...any) string {
			return f(strings.Replace(v, "%", "%%", -1))
		}
	}
	return colors
}

func colorDefault(v string, _ ...any) string { return v }

func (c *Colors) Color(t token.TokenType, s string) string {
	return c.Get(t)(s)
}

func (c *Colors) Get(t token.TokenType) func(string, ...any) string {
	f := c.Map[t]
	if f == nil {
		return c.Default
	}
	return f
}
