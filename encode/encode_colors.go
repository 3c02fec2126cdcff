package encode

import (
	"strings"

	"github.com/fatih/color"

	"github.com/signadot/pack/ir"
)

// ColorAttr is the role of a piece of output text.
type ColorAttr int

const (
	FieldColor ColorAttr = iota
	ValueColor
	SepColor
)

// ColorKey selects a color by node type and role.
type ColorKey struct {
	Type ir.Type
	Attr ColorAttr
}

type Colors struct {
	Default func(string, ...any) string
	Map     map[ColorKey]func(string, ...any) string
}

var palette = []struct {
	key ColorKey
	c   *color.Color
}{
	{ColorKey{ir.NumberType, ValueColor}, color.RGB(128, 216, 236)},
	{ColorKey{ir.NullType, ValueColor}, color.RGB(168, 0, 196)},
	{ColorKey{ir.BoolType, ValueColor}, color.New(color.FgCyan)},
	{ColorKey{ir.StringType, ValueColor}, color.RGB(8, 196, 16)},
	{ColorKey{ir.ObjectType, FieldColor}, color.RGB(128, 168, 196)},
	{ColorKey{ir.ObjectType, SepColor}, color.RGB(196, 128, 128)},
	{ColorKey{ir.ArrayType, SepColor}, color.RGB(255, 0, 196)},
}

// NewColors returns the terminal palette used by the CLI.
func NewColors() *Colors {
	colors := &Colors{
		Default: colorDefault,
		Map:     make(map[ColorKey]func(string, ...any) string, len(palette)),
	}
	for _, p := range palette {
		sprint := p.c.SprintFunc()
		colors.Map[p.key] = func(v string, _ ...any) string { return sprint(v) }
	}
	return colors
}

func colorDefault(v string, _ ...any) string { return v }

func (c *Colors) Color(t ir.Type, a ColorAttr, s string) string {
	return c.Get(t, a)(s)
}

func (c *Colors) Get(t ir.Type, a ColorAttr) func(string, ...any) string {
	if f := c.Map[ColorKey{Type: t, Attr: a}]; f != nil {
		return f
	}
	return c.Default
}

// affixes splits the escape sequences a color function wraps around its
// argument, for printers that take a prefix and suffix.
func affixes(c func(ir.Type, ColorAttr, string) string, t ir.Type, a ColorAttr) (string, string) {
	const mark = "\x00"
	pre, suf, _ := strings.Cut(c(t, a, mark), mark)
	return pre, suf
}
