// Package edn provides the canonical, validated identifiers of the edn
// data notation: symbols, keywords and tags, and tagged values built from
// them.
//
// # Identifiers
//
// All identifiers are Named: they have a non-empty name which may be
// qualified by a prefix, written prefix/name.
//
//   - Symbol: an immutable (prefix, name) value validated against the edn
//     symbol grammar.
//   - Keyword: a Symbol printed with a leading ':'. Keywords are interned.
//   - Tag: a Symbol printed with a leading '#'. Tags are plain values.
//
// Create identifiers with the constructors, which validate their input:
//
//	sym, err := edn.NewSymbol("my.ns", "thing")
//	kw, err := edn.NewKeyword("", "status")
//	tag, err := edn.NewTag("myapp", "Person")
//
// # Interning
//
// Keywords are canonical: for as long as a Keyword is held anywhere in the
// process, every request for an equal keyword returns the same instance, so
// keywords may be compared with ==. The process-wide keyword cache holds
// its instances weakly, so keywords nobody refers to are reclaimed. See
// package github.com/signadot/go-edn/intern.
//
// Keywords read back with UnmarshalText or GobDecode (and so through
// encoding/json, encoding/gob and YAML libraries) go through the same
// cache.
//
// # Tagged Values
//
// A TaggedValue pairs a Tag with an arbitrary payload. It represents
// tagged data for which no handler is known; see package
// github.com/signadot/go-edn/tagged.
//
// # Errors
//
// Malformed identifiers yield a *SyntaxError wrapping ErrSyntax. Absent
// required arguments yield errors wrapping ErrArgument. ErrSyntax and ErrIO
// both wrap ErrGeneral.
//
// # Thread Safety
//
// All identifier types are immutable and safe for concurrent use.
package edn
