package encode

import (
	"strings"

	"github.com/fatih/color"
)

type Colorable struct {
	Kind Kind
	Attr ColorAttr
}

type ColorAttr int

const (
	PrefixColor ColorAttr = iota
	NameColor
	SigilColor
	SepColor
	ErrorColor
	InputColor
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
	for _, k := range []Kind{SymbolKind, KeywordKind, TagKind} {
		able := Colorable{Kind: k, Attr: PrefixColor}
		colors.Map[able] = color.RGB(128, 168, 196).SprintfFunc()
		able.Attr = SepColor
		colors.Map[able] = color.RGB(255, 0, 196).SprintfFunc()
	}
	able := Colorable{Kind: SymbolKind, Attr: NameColor}
	colors.Map[able] = color.RGB(8, 196, 16).SprintfFunc()

	able.Kind = KeywordKind
	colors.Map[able] = color.RGB(128, 216, 236).SprintfFunc()
	able.Attr = SigilColor
	colors.Map[able] = color.RGB(196, 96, 16).SprintfFunc()

	able.Kind = TagKind
	able.Attr = NameColor
	colors.Map[able] = color.RGB(198, 198, 46).SprintfFunc()
	able.Attr = SigilColor
	colors.Map[able] = color.RGB(74, 92, 138).SprintfFunc()

	colors.Map[Colorable{Attr: ErrorColor}] = color.RedString
	colors.Map[Colorable{Attr: InputColor}] = color.RGB(96, 96, 96).SprintfFunc()
	for k, f := range colors.Map {
		colors.Map[k] = func(v string, _ ...any) string {
			return f(strings.Replace(v, "%", "%%", -1))
		}
	}
	return colors
}

func colorDefault(v string, _ ...any) string { return v }

func (c *Colors) Color(k Kind, a ColorAttr, s string) string {
	return c.Get(k, a)(s)
}

func (c *Colors) Get(k Kind, a ColorAttr) func(string, ...any) string {
	f := c.Map[Colorable{Kind: k, Attr: a}]
	if f == nil {
		return c.Default
	}
	return f
}
