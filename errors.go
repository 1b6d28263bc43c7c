package husk

import (
	"fmt"
	"strings"
)

// ErrorKind categorizes a husker failure.
type ErrorKind string

// Error kinds
const (
	KindMismatch          ErrorKind = "mismatch"
	KindNotUnique         ErrorKind = "not unique"
	KindMultipleSpecMatch ErrorKind = "multiple spec match"
	KindAttributeNotFound ErrorKind = "attribute not found"
	KindLookup            ErrorKind = "lookup"
	KindValue             ErrorKind = "value"
	KindNotSupported      ErrorKind = "not supported"
)

// Error is the error type returned by all husker operations. The message
// names the husker kind, the rendered spec and a bounded preview of the
// searched value, so a failed extraction can be diagnosed from the error
// text alone.
type Error struct {
	Kind ErrorKind
	Msg  string
}

func (e *Error) Error() string {
	if e.Msg == "" {
		return string(e.Kind)
	}
	return e.Msg
}

// Is reports whether target is an Error of the same kind, so the package
// sentinels work with errors.Is. A sentinel (empty Msg) matches any error of
// its kind.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Kind == e.Kind && (t.Msg == "" || t.Msg == e.Msg)
}

// Sentinels for errors.Is checks. The errors actually returned carry full
// messages; these carry only the kind.
var (
	ErrMismatch          = &Error{Kind: KindMismatch}
	ErrNotUnique         = &Error{Kind: KindNotUnique}
	ErrMultipleSpecMatch = &Error{Kind: KindMultipleSpecMatch}
	ErrAttributeNotFound = &Error{Kind: KindAttributeNotFound}
	ErrLookup            = &Error{Kind: KindLookup}
	ErrValue             = &Error{Kind: KindValue}
	ErrNotSupported      = &Error{Kind: KindNotSupported}
)

func errMismatch(h Husker, spec []any) error {
	return &Error{
		Kind: KindMismatch,
		Msg:  fmt.Sprintf("%s found no matches for %s in %s", h.ID(), h.ReprSpec(spec...), h.ReprValue()),
	}
}

func errNotUnique(h Husker, spec []any, n int) error {
	return &Error{
		Kind: KindNotUnique,
		Msg:  fmt.Sprintf("%s expected 1 match for %s, found %d", h.ID(), h.ReprSpec(spec...), n),
	}
}

func errMultipleSpecMatch(h Husker, first, second []any) error {
	return &Error{
		Kind: KindMultipleSpecMatch,
		Msg:  fmt.Sprintf("%s: both %s and %s matched", h.ID(), h.ReprSpec(first...), h.ReprSpec(second...)),
	}
}

func errNoSpecMatched(h Husker, specs []any) error {
	rendered := make([]string, len(specs))
	for i, spec := range specs {
		rendered[i] = h.ReprSpec(specGroup(spec)...)
	}
	return &Error{
		Kind: KindMismatch,
		Msg:  fmt.Sprintf("%s: none of the specified specs matched: %s", h.ID(), strings.Join(rendered, ", ")),
	}
}

func errAttributeNotFound(h Husker, name string) error {
	return &Error{
		Kind: KindAttributeNotFound,
		Msg:  fmt.Sprintf("%s has no attribute %q", h.ID(), name),
	}
}

func errLookup(h Husker, key string) error {
	return &Error{
		Kind: KindLookup,
		Msg:  fmt.Sprintf("%s: no table entry for %q", h.ID(), key),
	}
}

func errValue(format string, args ...any) error {
	return &Error{Kind: KindValue, Msg: fmt.Sprintf(format, args...)}
}

func errNotSupported(h Husker, op string) error {
	return &Error{
		Kind: KindNotSupported,
		Msg:  fmt.Sprintf("%s does not support %s", h.ID(), op),
	}
}
