package edn

import (
	"strings"
	"unicode/utf8"
)

// A Tag is a Named identifier obeying the edn symbol grammar. Tags print
// with a leading hash, which is not part of the name:
//
//	t, _ := edn.NewTag("foo", "bar")
//	t.String() // "#foo/bar"
//
// Tags with no prefix are reserved for the edn format itself.
//
// Unlike Keywords, Tags are not interned: they are plain values, equal
// when their symbols are equal. The zero Tag stands for an absent tag.
type Tag struct {
	sym Symbol
}

// TagFrom returns a Tag with the same prefix and name as sym. It returns an
// error wrapping ErrArgument if sym is the zero Symbol.
func TagFrom(sym Symbol) (Tag, error) {
	if sym.IsZero() {
		return Tag{}, argumentErr("tag symbol")
	}
	return Tag{sym: sym}, nil
}

func NewTag(prefix, name string) (Tag, error) {
	sym, err := NewSymbol(prefix, name)
	if err != nil {
		return Tag{}, err
	}
	return Tag{sym: sym}, nil
}

// NewTagName is equivalent to NewTag("", name).
func NewTagName(name string) (Tag, error) {
	return NewTag("", name)
}

func MustTag(prefix, name string) Tag {
	t, err := NewTag(prefix, name)
	if err != nil {
		panic(err)
	}
	return t
}

// ParseTag parses the printed form of a tag, such as "#foo/bar".
func ParseTag(text string) (Tag, error) {
	rest, ok := strings.CutPrefix(text, "#")
	if !ok {
		return Tag{}, sigilErr("tag", text)
	}
	sym, err := ParseSymbol(rest)
	if err != nil {
		return Tag{}, err
	}
	return Tag{sym: sym}, nil
}

func (t Tag) IsZero() bool   { return t.sym.IsZero() }
func (t Tag) Symbol() Symbol { return t.sym }
func (t Tag) Prefix() string { return t.sym.prefix }
func (t Tag) Name() string   { return t.sym.name }

func (t Tag) String() string {
	if t.IsZero() {
		return ""
	}
	return "#" + t.sym.String()
}

func (t Tag) Compare(o Tag) int {
	return t.sym.Compare(o.sym)
}

func (t Tag) Equal(o Tag) bool {
	return t == o
}

func (t Tag) Hash() uint64 {
	return hashSymbol(tagKind, t.sym)
}

func (t Tag) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

func (t *Tag) UnmarshalText(d []byte) error {
	if len(d) == 0 {
		*t = Tag{}
		return nil
	}
	pt, err := ParseTag(string(d))
	if err != nil {
		return err
	}
	*t = pt
	return nil
}

func (t Tag) GobEncode() ([]byte, error) {
	return t.MarshalText()
}

func (t *Tag) GobDecode(d []byte) error {
	return t.UnmarshalText(d)
}

// sigilErr reports text lacking the leading ':' or '#' of its kind.
func sigilErr(label, text string) error {
	if text == "" {
		return &SyntaxError{Label: label, Reason: EmptyIdent}
	}
	r, _ := utf8.DecodeRuneInString(text)
	return &SyntaxError{Label: label, Ident: text, Reason: ForbiddenStart, Char: r}
}
