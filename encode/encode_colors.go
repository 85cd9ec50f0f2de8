package encode

import (
	"strings"

	"github.com/jagprog5/language-expression/ir"

	"github.com/fatih/color"
)

type Colorable struct {
	Type ir.Type
	Attr ColorAttr
}

type ColorAttr int

const (
	NameColor ColorAttr = iota
	SepColor
	ValueColor
	EscapeColor
)

type Colors struct {
	Default func(string, ...any) string
	Map     map[Colorable]func(string, ...any) string
}

func NewColors() *Colors {
	colors := &Colors{
		Default: colorDefault,
		Map:     map[Colorable]func(string, ...any) string{},
	}

	able := Colorable{Type: ir.CallType, Attr: NameColor}
	colors.Map[able] = color.RGB(196, 96, 16).SprintfFunc()
	able.Attr = SepColor
	colors.Map[able] = color.RGB(255, 0, 196).SprintfFunc()

	able = Colorable{Type: ir.TextType, Attr: EscapeColor}
	colors.Map[able] = color.RGB(96, 96, 96).SprintfFunc()

	for k, f := range colors.Map {
		colors.Map[k] = func(v string, _ ...any) string {
			return f(strings.Replace(v, "%", "%%", -1))
		}
	}
	return colors
}

func colorDefault(v string, _ ...any) string { return v }

func (c *Colors) Color(t ir.Type, a ColorAttr, s string) string {
	res := c.Get(t, a)(s)
	return res
}

func (c *Colors) Get(t ir.Type, a ColorAttr) func(string, ...any) string {
	f := c.Map[Colorable{Type: t, Attr: a}]
	if f == nil {
		return c.Default
	}
	return f
}
