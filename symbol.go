package edn

import (
	"strings"
	"unicode/utf8"

	"github.com/signadot/go-edn/charclass"
)

// A Symbol is a Named identifier obeying the edn symbol grammar.
//
// Symbol is an immutable value type: two Symbols are equal (==) iff their
// prefixes and names are equal. The zero Symbol is never returned by a
// constructor and stands for an absent symbol.
type Symbol struct {
	prefix string
	name   string
}

// NewSymbol returns a Symbol with the given prefix and name. The prefix may
// be empty. Both must otherwise obey the edn symbol grammar, or a
// *SyntaxError is returned.
func NewSymbol(prefix, name string) (Symbol, error) {
	if name != "/" {
		if err := checkIdent("name", name); err != nil {
			return Symbol{}, err
		}
	}
	if prefix != "" {
		if err := checkIdent("prefix", prefix); err != nil {
			return Symbol{}, err
		}
	}
	return Symbol{prefix: prefix, name: name}, nil
}

// NewSymbolName is equivalent to NewSymbol("", name).
func NewSymbolName(name string) (Symbol, error) {
	return NewSymbol("", name)
}

// MustSymbol is like NewSymbol but panics on error.
func MustSymbol(prefix, name string) Symbol {
	s, err := NewSymbol(prefix, name)
	if err != nil {
		panic(err)
	}
	return s
}

// ParseSymbol parses the textual form of a symbol, "name" or
// "prefix/name".
func ParseSymbol(text string) (Symbol, error) {
	i := strings.IndexByte(text, '/')
	if i <= 0 || i == len(text)-1 {
		return NewSymbol("", text)
	}
	return NewSymbol(text[:i], text[i+1:])
}

func checkIdent(label, ident string) error {
	if ident == "" {
		return &SyntaxError{Label: label, Reason: EmptyIdent}
	}
	first, sz := utf8.DecodeRuneInString(ident)
	if charclass.IsDigit(first) {
		return &SyntaxError{Label: label, Ident: ident, Reason: LeadingDigit, Char: first}
	}
	if !charclass.IsSymbolStart(first) {
		return &SyntaxError{Label: label, Ident: ident, Reason: ForbiddenStart, Char: first}
	}
	rest := ident[sz:]
	if first == '.' || first == '-' {
		if second, _ := utf8.DecodeRuneInString(rest); rest != "" && charclass.IsDigit(second) {
			return &SyntaxError{Label: label, Ident: ident, Reason: SignDigit, Char: first}
		}
	}
	off := 1
	for _, r := range rest {
		if !charclass.IsSymbolConstituent(r) {
			return &SyntaxError{Label: label, Ident: ident, Reason: IllegalChar, Char: r, Offset: off}
		}
		off++
	}
	return nil
}

func (s Symbol) Prefix() string { return s.prefix }
func (s Symbol) Name() string   { return s.name }

// IsZero reports whether s is the absent symbol.
func (s Symbol) IsZero() bool { return s.name == "" }

func (s Symbol) String() string {
	if s.prefix == "" {
		return s.name
	}
	return s.prefix + "/" + s.name
}

// Compare orders symbols by prefix, then by name.
func (s Symbol) Compare(o Symbol) int {
	if c := strings.Compare(s.prefix, o.prefix); c != 0 {
		return c
	}
	return strings.Compare(s.name, o.name)
}

func (s Symbol) Equal(o Symbol) bool {
	return s == o
}

func (s Symbol) Hash() uint64 {
	return hashSymbol(symbolKind, s)
}

func (s Symbol) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

func (s *Symbol) UnmarshalText(d []byte) error {
	if len(d) == 0 {
		*s = Symbol{}
		return nil
	}
	ps, err := ParseSymbol(string(d))
	if err != nil {
		return err
	}
	*s = ps
	return nil
}

func (s Symbol) GobEncode() ([]byte, error) {
	return s.MarshalText()
}

func (s *Symbol) GobDecode(d []byte) error {
	return s.UnmarshalText(d)
}
