package husk

import (
	"encoding/json"
	"strings"

	"github.com/jmespath/go-jmespath"
)

// JmesPathHusker wraps a decoded JSON-like value (maps, slices, scalars)
// and searches it with JMESPath expressions.
type JmesPathHusker struct {
	selector
	value any
}

// HuskJSON wraps a decoded JSON value.
func HuskJSON(value any) *JmesPathHusker {
	h := &JmesPathHusker{value: value}
	h.bind(h)
	return h
}

// Selection evaluates a JMESPath expression. An expression without an
// indexing bracket addresses a single result and yields a one-element
// selection (holding Null when the path finds nothing); a bracketed
// expression yields one element per result. String results stay text
// huskers, numbers and bools become scalars, and nested structures recurse
// so chained queries keep dispatching correctly.
func (h *JmesPathHusker) Selection(spec ...any) (*ListHusker, error) {
	if len(spec) != 1 {
		return nil, errValue("%s: want exactly one path spec, got %d arguments", h.ID(), len(spec))
	}
	path, ok := spec[0].(string)
	if !ok {
		return nil, errValue("%s: path spec must be a string, got %T", h.ID(), spec[0])
	}
	result, err := jmespath.Search(path, h.value)
	if err != nil {
		return nil, errValue("%s: bad path %q: %v", h.ID(), path, err)
	}
	var values []any
	switch {
	case !strings.Contains(path, "["):
		values = []any{result}
	case result == nil:
		values = nil
	default:
		if slice, ok := result.([]any); ok {
			values = slice
		} else {
			values = []any{result}
		}
	}
	items := make([]Husker, len(values))
	for i, v := range values {
		items[i] = jsonChild(v)
	}
	return HuskList(items...), nil
}

func jsonChild(value any) Husker {
	switch v := value.(type) {
	case nil:
		return Null
	case string:
		return HuskText(v)
	case bool, float64, int, int64:
		return HuskScalar(v)
	default:
		return HuskJSON(v)
	}
}

// Get returns the single value at the given path; it is shorthand for One.
func (h *JmesPathHusker) Get(path string) (Husker, error) {
	return h.One(path)
}

// Text returns a string value as-is; any other value renders as compact
// JSON with sorted keys.
func (h *JmesPathHusker) Text() Husker {
	if s, ok := h.value.(string); ok {
		return HuskText(s)
	}
	encoded, err := json.Marshal(h.value)
	if err != nil {
		return Null
	}
	return HuskText(string(encoded))
}

// Multiline is Text with indented JSON rendering.
func (h *JmesPathHusker) Multiline() Husker {
	if s, ok := h.value.(string); ok {
		return HuskText(s)
	}
	encoded, err := json.MarshalIndent(h.value, "", "    ")
	if err != nil {
		return Null
	}
	return HuskText(string(encoded))
}

// List returns the wrapped slice's items as a ListHusker; any other value
// shape is a not-supported error.
func (h *JmesPathHusker) List() (*ListHusker, error) {
	slice, ok := h.value.([]any)
	if !ok {
		return nil, errNotSupported(h, "List (value is not a sequence)")
	}
	items := make([]Husker, len(slice))
	for i, v := range slice {
		items[i] = jsonChild(v)
	}
	return HuskList(items...), nil
}

func (h *JmesPathHusker) Raw() any   { return h.value }
func (h *JmesPathHusker) Ok() bool   { return h.value != nil }
func (h *JmesPathHusker) ID() string { return "JmesPathHusker" }

func (h *JmesPathHusker) ReprValue() string {
	if t, ok := h.Text().(*TextHusker); ok {
		return previewString(t.value)
	}
	return "<unencodable>"
}

func (h *JmesPathHusker) String() string {
	if t, ok := h.Text().(*TextHusker); ok {
		return t.value
	}
	return ""
}
