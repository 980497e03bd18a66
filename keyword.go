package edn

import (
	"strings"

	"github.com/signadot/go-edn/intern"
)

// A Keyword is a Named identifier obeying the edn symbol grammar. Keywords
// print with a leading colon, which is not part of the name:
//
//	k, _ := edn.NewKeyword("foo", "bar")
//	k.Prefix() // "foo"
//	k.Name()   // "bar"
//	k.String() // ":foo/bar"
//
// Keywords are interned: any two Keywords which are equal by value are also
// identical. A Keyword is a handle to its canonical instance, so == compares
// identity, and holding a Keyword keeps the instance alive. Once no Keyword
// refers to an instance, it may be reclaimed.
//
// The zero Keyword stands for an absent keyword.
type Keyword struct {
	k *keyword
}

type keyword struct {
	sym Symbol
}

var keywords = intern.New[Symbol, keyword]()

// KeywordFrom returns the Keyword with the same prefix and name as sym. It
// returns an error wrapping ErrArgument if sym is the zero Symbol.
func KeywordFrom(sym Symbol) (Keyword, error) {
	if sym.IsZero() {
		return Keyword{}, argumentErr("keyword symbol")
	}
	return Keyword{k: keywords.Intern(sym, &keyword{sym: sym})}, nil
}

// NewKeyword returns the Keyword with the given prefix and name, which
// obey the same rules as NewSymbol.
func NewKeyword(prefix, name string) (Keyword, error) {
	sym, err := NewSymbol(prefix, name)
	if err != nil {
		return Keyword{}, err
	}
	return KeywordFrom(sym)
}

// NewKeywordName is equivalent to NewKeyword("", name).
func NewKeywordName(name string) (Keyword, error) {
	return NewKeyword("", name)
}

// MustKeyword is like NewKeyword but panics on error.
func MustKeyword(prefix, name string) Keyword {
	k, err := NewKeyword(prefix, name)
	if err != nil {
		panic(err)
	}
	return k
}

// ParseKeyword parses the printed form of a keyword, such as ":foo/bar".
func ParseKeyword(text string) (Keyword, error) {
	rest, ok := strings.CutPrefix(text, ":")
	if !ok {
		return Keyword{}, sigilErr("keyword", text)
	}
	sym, err := ParseSymbol(rest)
	if err != nil {
		return Keyword{}, err
	}
	return KeywordFrom(sym)
}

// KeywordStats returns the counters of the process-wide keyword cache.
func KeywordStats() intern.Stats {
	return keywords.Stats()
}

// PurgeKeywords removes cache entries of reclaimed keywords and returns the
// number removed.
func PurgeKeywords() int {
	return keywords.Purge()
}

// IsZero reports whether k is the absent keyword.
func (k Keyword) IsZero() bool { return k.k == nil }

func (k Keyword) Symbol() Symbol {
	if k.k == nil {
		return Symbol{}
	}
	return k.k.sym
}

func (k Keyword) Prefix() string { return k.Symbol().prefix }
func (k Keyword) Name() string   { return k.Symbol().name }

func (k Keyword) String() string {
	if k.k == nil {
		return ""
	}
	return ":" + k.k.sym.String()
}

func (k Keyword) Compare(o Keyword) int {
	if k == o {
		return 0
	}
	return k.Symbol().Compare(o.Symbol())
}

// Equal reports whether k and o are the same keyword. For keywords this is
// the same as k == o.
func (k Keyword) Equal(o Keyword) bool {
	return k == o
}

func (k Keyword) Hash() uint64 {
	return hashSymbol(keywordKind, k.Symbol())
}

func (k Keyword) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// UnmarshalText sets k to the canonical Keyword for text, restoring
// identity through the keyword cache.
func (k *Keyword) UnmarshalText(d []byte) error {
	if len(d) == 0 {
		*k = Keyword{}
		return nil
	}
	pk, err := ParseKeyword(string(d))
	if err != nil {
		return err
	}
	*k = pk
	return nil
}

func (k Keyword) GobEncode() ([]byte, error) {
	return k.MarshalText()
}

// GobDecode is like UnmarshalText.
func (k *Keyword) GobDecode(d []byte) error {
	return k.UnmarshalText(d)
}
