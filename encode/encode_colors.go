package encode

import (
	"fmt"
	"strings"

	"github.com/fatih/color"

	"github.com/signadot/listmodel/model"
)

type Colorable struct {
	Kind model.Kind
	Attr ColorAttr
}

type ColorAttr int

const (
	ValueColor ColorAttr = iota
	FieldColor
	IndexColor
	SepColor
	ArrayColor
)

type Colors struct {
	Default func(string, ...any) string
	Map     map[Colorable]func(string, ...any) string

	// escape sequences for the YAML printer, keyed like Map
	yaml map[Colorable]color.Attribute
}

func NewColors() *Colors {
	colors := &Colors{
		Default: colorDefault,
		Map:     map[Colorable]func(string, ...any) string{},
		yaml:    map[Colorable]color.Attribute{},
	}
	for _, k := range []model.Kind{model.EmptyKind, model.NodeKind, model.StringKind, model.NumberKind, model.BoolKind} {
		able := Colorable{Kind: k, Attr: SepColor}
		colors.Map[able] = color.RGB(255, 0, 196).SprintfFunc()
		able.Attr = IndexColor
		colors.Map[able] = color.RGB(74, 92, 138).SprintfFunc()
	}
	able := Colorable{Attr: ValueColor}

	able.Kind = model.NumberKind
	colors.Map[able] = color.RGB(128, 216, 236).SprintfFunc()
	colors.yaml[able] = color.FgHiCyan

	able.Kind = model.EmptyKind
	colors.Map[able] = color.RGB(168, 0, 196).SprintfFunc()

	able.Kind = model.BoolKind
	colors.Map[able] = color.CyanString
	colors.yaml[able] = color.FgHiMagenta

	able.Kind = model.StringKind
	colors.Map[able] = color.RGB(8, 196, 16).SprintfFunc()
	colors.yaml[able] = color.FgHiGreen

	able.Kind = model.NodeKind
	able.Attr = FieldColor
	colors.Map[able] = color.RGB(128, 168, 196).SprintfFunc()
	colors.yaml[able] = color.FgHiBlue
	able.Attr = ArrayColor
	colors.Map[able] = color.RGB(196, 168, 128).SprintfFunc()

	for k, f := range colors.Map {
		colors.Map[k] = func(v string, _ ...any) string {
			return f(strings.Replace(v, "%", "%%", -1))
		}
	}
	return colors
}

func colorDefault(v string, _ ...any) string { return v }

func (c *Colors) Color(k model.Kind, a ColorAttr, s string) string {
	return c.Get(k, a)(s)
}

func (c *Colors) Get(k model.Kind, a ColorAttr) func(string, ...any) string {
	f := c.Map[Colorable{Kind: k, Attr: a}]
	if f == nil {
		return c.Default
	}
	return f
}

// escape returns the prefix and suffix wrapping a token of the given
// colorable in YAML output, empty when color is off.
func (c *Colors) escape(k model.Kind, a ColorAttr) (string, string) {
	attr, ok := c.yaml[Colorable{Kind: k, Attr: a}]
	if !ok || color.NoColor {
		return "", ""
	}
	return fmt.Sprintf("\x1b[%dm", attr), fmt.Sprintf("\x1b[%dm", color.Reset)
}
