package husk

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Default layouts for Date and Datetime.
const (
	DateLayout     = "2006-01-02"
	DatetimeLayout = "2006-01-02T15:04:05"
)

// Husker is an immutable view over one value extracted from a semi-
// structured document: an HTML/XML node, a text string, a decoded JSON
// value, a sequence of other huskers, or the absent-value sentinel Null.
//
// A husker locates the node or substring a scraper is after; it does not
// clean or convert beyond the typed accessors below. Every search goes
// through the single Selection primitive, and the cardinality operators
// (One, Some, First, Last, Any, All and the *Of combinators) are derived
// from it uniformly for all kinds.
type Husker interface {
	// Selection runs a search for the given spec and returns all results.
	// What a spec is depends on the kind: an XPath or CSS selector string
	// for elements, a regex (pattern string plus optional flag letters, or
	// a *regexp.Regexp) for text, a JMESPath expression for structured
	// data, a predicate for sequences.
	Selection(spec ...any) (*ListHusker, error)

	// One requires exactly one match: zero is a mismatch error, more than
	// one a not-unique error.
	One(spec ...any) (Husker, error)
	// Some allows zero or one match; zero yields Null.
	Some(spec ...any) (Husker, error)
	// First requires at least one match and returns the first.
	First(spec ...any) (Husker, error)
	// Last requires at least one match and returns the last.
	Last(spec ...any) (Husker, error)
	// Any returns the first match, or Null if there is none.
	Any(spec ...any) (Husker, error)
	// All requires at least one match and returns them all.
	All(spec ...any) (*ListHusker, error)

	// OneOf requires exactly one of the specs to match; two matching specs
	// is a multiple-spec-match error, none a mismatch. A spec given as
	// []any groups arguments (e.g. a regex pattern with flags).
	OneOf(specs ...any) (Husker, error)
	// SomeOf is OneOf with the mismatch softened to Null.
	SomeOf(specs ...any) (Husker, error)
	// FirstOf returns the first spec's match, trying them in order, and
	// does not check the rest.
	FirstOf(specs ...any) (Husker, error)
	// AnyOf is FirstOf with the mismatch softened to Null.
	AnyOf(specs ...any) (Husker, error)
	// AllOf concatenates All of every spec.
	AllOf(specs ...any) (*ListHusker, error)
	// SelectionOf concatenates Selection of every spec.
	SelectionOf(specs ...any) (*ListHusker, error)

	// Text returns a text husker holding this husker's flattened,
	// whitespace-normalized text contents.
	Text() Husker
	// Multiline is Text with paragraph and line structure preserved.
	Multiline() Husker
	// JSON leniently parses the text contents as JSON and returns a
	// structured-data husker.
	JSON() (Husker, error)

	Str() (string, error)
	Int() (int64, error)
	Float() (float64, error)
	Decimal() (decimal.Decimal, error)
	// Date parses the text with the given layout (default DateLayout).
	Date(layout ...string) (time.Time, error)
	// Datetime parses the text with the given layout (default
	// DatetimeLayout), after stripping any trailing fractional-seconds or
	// timezone suffix.
	Datetime(layout ...string) (time.Time, error)
	// Lookup maps the text through the table, returning the fallback (if
	// given) or a lookup error when absent.
	Lookup(table map[string]string, fallback ...string) (string, error)

	// Map applies fn to this husker.
	Map(fn func(Husker) Husker) Husker
	// Filter returns this husker if fn accepts it, Null otherwise.
	Filter(fn func(Husker) bool) Husker

	// Raw returns the wrapped value.
	Raw() any
	// Ok reports whether the husker holds a value at all, irrespective of
	// that value's own truthiness; only Null and an empty ListHusker are
	// not ok.
	Ok() bool
	// ID names the husker kind for error messages.
	ID() string
	// ReprSpec renders a spec for error messages.
	ReprSpec(spec ...any) string
	// ReprValue renders a bounded preview of the wrapped value for error
	// messages.
	ReprValue() string

	fmt.Stringer
}

// selector derives the shared cardinality operators and typed accessors
// from the kind-specific Selection primitive. Every concrete husker embeds
// it and binds itself at construction.
type selector struct {
	self Husker
}

func (s *selector) bind(self Husker) {
	s.self = self
}

func (s *selector) One(spec ...any) (Husker, error) {
	selected, err := s.self.Selection(spec...)
	if err != nil {
		return nil, err
	}
	switch n := selected.Len(); {
	case n == 0:
		return nil, errMismatch(s.self, spec)
	case n > 1:
		return nil, errNotUnique(s.self, spec, n)
	}
	return selected.Index(0), nil
}

func (s *selector) Some(spec ...any) (Husker, error) {
	selected, err := s.self.Selection(spec...)
	if err != nil {
		return nil, err
	}
	switch n := selected.Len(); {
	case n == 0:
		return Null, nil
	case n > 1:
		return nil, errNotUnique(s.self, spec, n)
	}
	return selected.Index(0), nil
}

func (s *selector) First(spec ...any) (Husker, error) {
	selected, err := s.self.Selection(spec...)
	if err != nil {
		return nil, err
	}
	if selected.Len() == 0 {
		return nil, errMismatch(s.self, spec)
	}
	return selected.Index(0), nil
}

func (s *selector) Last(spec ...any) (Husker, error) {
	selected, err := s.self.Selection(spec...)
	if err != nil {
		return nil, err
	}
	if selected.Len() == 0 {
		return nil, errMismatch(s.self, spec)
	}
	return selected.Index(selected.Len() - 1), nil
}

func (s *selector) Any(spec ...any) (Husker, error) {
	selected, err := s.self.Selection(spec...)
	if err != nil {
		return nil, err
	}
	if selected.Len() == 0 {
		return Null, nil
	}
	return selected.Index(0), nil
}

func (s *selector) All(spec ...any) (*ListHusker, error) {
	selected, err := s.self.Selection(spec...)
	if err != nil {
		return nil, err
	}
	if selected.Len() == 0 {
		return nil, errMismatch(s.self, spec)
	}
	return selected, nil
}

func (s *selector) OneOf(specs ...any) (Husker, error) {
	match, err := s.self.SomeOf(specs...)
	if err != nil {
		return nil, err
	}
	if !match.Ok() {
		return nil, errNoSpecMatched(s.self, specs)
	}
	return match, nil
}

func (s *selector) SomeOf(specs ...any) (Husker, error) {
	var match Husker
	var matched []any
	for _, spec := range specs {
		group := specGroup(spec)
		selected, err := s.self.Some(group...)
		if err != nil {
			return nil, err
		}
		if !selected.Ok() {
			continue
		}
		if match != nil {
			return nil, errMultipleSpecMatch(s.self, matched, group)
		}
		match, matched = selected, group
	}
	if match == nil {
		return Null, nil
	}
	return match, nil
}

func (s *selector) FirstOf(specs ...any) (Husker, error) {
	for _, spec := range specs {
		selected, err := s.self.Any(specGroup(spec)...)
		if err != nil {
			return nil, err
		}
		if selected.Ok() {
			return selected, nil
		}
	}
	return nil, errNoSpecMatched(s.self, specs)
}

func (s *selector) AnyOf(specs ...any) (Husker, error) {
	for _, spec := range specs {
		selected, err := s.self.Any(specGroup(spec)...)
		if err != nil {
			return nil, err
		}
		if selected.Ok() {
			return selected, nil
		}
	}
	return Null, nil
}

func (s *selector) AllOf(specs ...any) (*ListHusker, error) {
	var items []Husker
	for _, spec := range specs {
		selected, err := s.self.All(specGroup(spec)...)
		if err != nil {
			return nil, err
		}
		items = append(items, selected.items...)
	}
	return HuskList(items...), nil
}

func (s *selector) SelectionOf(specs ...any) (*ListHusker, error) {
	var items []Husker
	for _, spec := range specs {
		selected, err := s.self.Selection(specGroup(spec)...)
		if err != nil {
			return nil, err
		}
		items = append(items, selected.items...)
	}
	return HuskList(items...), nil
}

func (s *selector) JSON() (Husker, error) {
	text, err := s.self.Str()
	if err != nil {
		return nil, err
	}
	return DecodeJSON(text)
}

func (s *selector) Str() (string, error) {
	switch t := s.self.Text().(type) {
	case *TextHusker:
		return t.value, nil
	case nullHusker:
		return "", nil
	default:
		return "", errNotSupported(s.self, "Str")
	}
}

func (s *selector) Int() (int64, error) {
	text, err := s.self.Str()
	if err != nil {
		return 0, err
	}
	n, err := strconv.ParseInt(strings.TrimSpace(text), 10, 64)
	if err != nil {
		return 0, errValue("cannot parse %q as integer", text)
	}
	return n, nil
}

func (s *selector) Float() (float64, error) {
	text, err := s.self.Str()
	if err != nil {
		return 0, err
	}
	f, err := strconv.ParseFloat(strings.TrimSpace(text), 64)
	if err != nil {
		return 0, errValue("cannot parse %q as float", text)
	}
	return f, nil
}

func (s *selector) Decimal() (decimal.Decimal, error) {
	text, err := s.self.Str()
	if err != nil {
		return decimal.Zero, err
	}
	d, err := decimal.NewFromString(strings.TrimSpace(text))
	if err != nil {
		return decimal.Zero, errValue("cannot parse %q as decimal", text)
	}
	return d, nil
}

func (s *selector) Date(layout ...string) (time.Time, error) {
	text, err := s.self.Str()
	if err != nil {
		return time.Time{}, err
	}
	t, err := time.Parse(pickLayout(layout, DateLayout), strings.TrimSpace(text))
	if err != nil {
		return time.Time{}, errValue("cannot parse %q as date: %v", text, err)
	}
	return t, nil
}

// datetimeSuffixRegex matches a trailing timezone or fractional-seconds
// suffix, e.g. ".123", "+02:00", "+0200" or "Z", which is stripped before
// parsing.
var datetimeSuffixRegex = regexp.MustCompile(`(?:\.\d+|[+\-]\d\d?(?::?\d\d)?|Z)+$`)

func (s *selector) Datetime(layout ...string) (time.Time, error) {
	text, err := s.self.Str()
	if err != nil {
		return time.Time{}, err
	}
	text = datetimeSuffixRegex.ReplaceAllString(strings.TrimSpace(text), "")
	t, err := time.Parse(pickLayout(layout, DatetimeLayout), text)
	if err != nil {
		return time.Time{}, errValue("cannot parse %q as datetime: %v", text, err)
	}
	return t, nil
}

func (s *selector) Lookup(table map[string]string, fallback ...string) (string, error) {
	key, err := s.self.Str()
	if err != nil {
		return "", err
	}
	if v, ok := table[key]; ok {
		return v, nil
	}
	if len(fallback) > 0 {
		return fallback[0], nil
	}
	return "", errLookup(s.self, key)
}

func (s *selector) Map(fn func(Husker) Husker) Husker {
	return fn(s.self)
}

func (s *selector) Filter(fn func(Husker) bool) Husker {
	if fn(s.self) {
		return s.self
	}
	return Null
}

func (s *selector) ReprSpec(spec ...any) string {
	return reprSpec(spec...)
}

// specGroup normalizes one spec inside a *Of combinator: a []any groups
// several arguments (e.g. regex pattern plus flags) into a single spec.
func specGroup(spec any) []any {
	if group, ok := spec.([]any); ok {
		return group
	}
	return []any{spec}
}

func pickLayout(layout []string, fallback string) string {
	if len(layout) > 0 {
		return layout[0]
	}
	return fallback
}

func reprSpec(spec ...any) string {
	parts := make([]string, len(spec))
	for i, s := range spec {
		switch v := s.(type) {
		case string:
			parts[i] = strconv.Quote(v)
		case fmt.Stringer:
			parts[i] = v.String()
		default:
			parts[i] = fmt.Sprintf("%v", v)
		}
	}
	if len(parts) == 1 {
		return parts[0]
	}
	return "(" + strings.Join(parts, ", ") + ")"
}

const previewMaxLen = 200

// previewString bounds a value rendering for error messages.
func previewString(s string) string {
	runes := []rune(s)
	if len(runes) > previewMaxLen {
		s = string(runes[:previewMaxLen]) + "…"
	}
	return strconv.Quote(s)
}
