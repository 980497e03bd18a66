package edn

import "hash/maphash"

// Named is implemented by identifiers with a local name which may be
// qualified by a prefix (also called namespace). The prefix is always
// present but may be empty; a Named with an empty prefix has no prefix.
type Named interface {
	Prefix() string
	Name() string
	String() string
}

var (
	_ Named = Symbol{}
	_ Named = Keyword{}
	_ Named = Tag{}
)

// hash kinds keep equal (prefix, name) pairs of distinct identifier types
// apart.
const (
	symbolKind byte = iota + 1
	keywordKind
	tagKind
	taggedKind
)

var seed = maphash.MakeSeed()

func hashSymbol(kind byte, s Symbol) uint64 {
	var h maphash.Hash
	h.SetSeed(seed)
	h.WriteByte(kind)
	h.WriteString(s.prefix)
	h.WriteByte('/')
	h.WriteString(s.name)
	return h.Sum64()
}

// ParseNamed parses the printed form of an identifier: a Keyword if text
// begins with ':', a Tag if it begins with '#', and a Symbol otherwise.
func ParseNamed(text string) (Named, error) {
	if text == "" {
		return nil, &SyntaxError{Label: "name", Reason: EmptyIdent}
	}
	var (
		n   Named
		err error
	)
	switch text[0] {
	case ':':
		n, err = ParseKeyword(text)
	case '#':
		n, err = ParseTag(text)
	default:
		n, err = ParseSymbol(text)
	}
	if err != nil {
		return nil, err
	}
	return n, nil
}
