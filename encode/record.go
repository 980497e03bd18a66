package encode

import (
	edn "github.com/signadot/go-edn"
)

// Record is the report for one checked identifier.
type Record struct {
	Input     string `json:"input" yaml:"input"`
	Kind      Kind   `json:"kind,omitempty" yaml:"kind,omitempty"`
	Prefix    string `json:"prefix,omitempty" yaml:"prefix,omitempty"`
	Name      string `json:"name,omitempty" yaml:"name,omitempty"`
	Canonical string `json:"canonical,omitempty" yaml:"canonical,omitempty"`
	Error     string `json:"error,omitempty" yaml:"error,omitempty"`
}

type Kind string

const (
	SymbolKind  Kind = "symbol"
	KeywordKind Kind = "keyword"
	TagKind     Kind = "tag"
)

func KindOf(n edn.Named) Kind {
	switch n.(type) {
	case edn.Keyword:
		return KeywordKind
	case edn.Tag:
		return TagKind
	case edn.Symbol:
		return SymbolKind
	default:
		return ""
	}
}

// Check parses input as an identifier and reports the result.
func Check(input string) Record {
	n, err := edn.ParseNamed(input)
	return NewRecord(input, n, err)
}

func NewRecord(input string, n edn.Named, err error) Record {
	if err != nil {
		return Record{Input: input, Error: err.Error()}
	}
	return Record{
		Input:     input,
		Kind:      KindOf(n),
		Prefix:    n.Prefix(),
		Name:      n.Name(),
		Canonical: n.String(),
	}
}

func (r *Record) Valid() bool {
	return r.Error == ""
}
