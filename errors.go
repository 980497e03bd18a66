package edn

import (
	"errors"
	"fmt"
)

var (
	// ErrGeneral is the base of all edn faults.
	ErrGeneral = errors.New("edn")

	ErrSyntax = fmt.Errorf("%w: syntax error", ErrGeneral)
	ErrIO     = fmt.Errorf("%w: i/o error", ErrGeneral)

	// ErrArgument indicates a required argument was absent. It is not an
	// edn fault.
	ErrArgument = errors.New("invalid argument")
)

type Reason int

const (
	EmptyIdent Reason = iota
	LeadingDigit
	ForbiddenStart
	SignDigit
	IllegalChar
)

func (r Reason) String() string {
	switch r {
	case EmptyIdent:
		return "EmptyIdent"
	case LeadingDigit:
		return "LeadingDigit"
	case ForbiddenStart:
		return "ForbiddenStart"
	case SignDigit:
		return "SignDigit"
	case IllegalChar:
		return "IllegalChar"
	default:
		return fmt.Sprintf("Reason(%d)", int(r))
	}
}

// SyntaxError reports a malformed identifier. Label is "name" or "prefix"
// and Ident the offending text. For IllegalChar, Char is the offending
// character and Offset its index in characters.
type SyntaxError struct {
	Label  string
	Ident  string
	Reason Reason
	Char   rune
	Offset int
}

func (e *SyntaxError) Unwrap() error {
	return ErrSyntax
}

func (e *SyntaxError) Error() string {
	var msg string
	switch e.Reason {
	case EmptyIdent:
		msg = fmt.Sprintf("the %s must not be empty", e.Label)
	case LeadingDigit:
		msg = fmt.Sprintf("the %s %q must not begin with a digit", e.Label, e.Ident)
	case ForbiddenStart:
		msg = fmt.Sprintf("the %s %q begins with a forbidden character", e.Label, e.Ident)
	case SignDigit:
		msg = fmt.Sprintf("the %s %q begins with %q followed by a digit", e.Label, e.Ident, e.Char)
	case IllegalChar:
		msg = fmt.Sprintf("the %s %q contains the illegal character %q at offset %d", e.Label, e.Ident, e.Char, e.Offset)
	default:
		msg = fmt.Sprintf("the %s %q is malformed", e.Label, e.Ident)
	}
	return fmt.Sprintf("%s: %s", ErrSyntax, msg)
}

// IOError wraps a failure of an underlying reader or writer.
type IOError struct {
	Msg string
	Err error
}

func NewIOError(msg string, cause error) *IOError {
	return &IOError{Msg: msg, Err: cause}
}

// Cause returns the underlying failure.
func (e *IOError) Cause() error {
	return e.Err
}

func (e *IOError) Unwrap() []error {
	return []error{ErrIO, e.Err}
}

func (e *IOError) Error() string {
	if e.Msg == "" {
		return fmt.Sprintf("%s: %v", ErrIO, e.Err)
	}
	return fmt.Sprintf("%s: %s: %v", ErrIO, e.Msg, e.Err)
}

func argumentErr(what string) error {
	return fmt.Errorf("%w: %s must not be absent", ErrArgument, what)
}
