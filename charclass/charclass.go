// Package charclass classifies the characters that may appear in edn
// symbols, keywords and tags.
//
// Symbols begin with a non-numeric character and may contain alphanumeric
// characters and . * + ! - _ ? $ % & = < >. The characters : and # are
// allowed as constituents other than as the first character. The / is the
// prefix separator and is not a constituent of either part.
package charclass

import "unicode"

func IsDigit(r rune) bool {
	switch r {
	case '0', '1', '2', '3', '4', '5', '6', '7', '8', '9':
		return true
	default:
		return false
	}
}

// IsSymbolStart reports whether r may begin a symbol name or prefix.
func IsSymbolStart(r rune) bool {
	switch r {
	case '.', '*', '+', '!', '-', '_', '?', '$', '%', '&', '=', '<', '>':
		return true
	}
	return unicode.IsLetter(r)
}

// IsSymbolConstituent reports whether r may appear after the first
// character of a symbol name or prefix.
func IsSymbolConstituent(r rune) bool {
	switch r {
	case ':', '#':
		return true
	}
	return IsSymbolStart(r) || IsDigit(r) || unicode.IsDigit(r)
}
