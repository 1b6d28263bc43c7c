package husk

import (
	"fmt"
	"reflect"
	"strings"
	"time"
)

// ListHusker wraps an ordered sequence of huskers and broadcasts most
// per-item operations element-wise.
type ListHusker struct {
	selector
	items []Husker
}

// HuskList wraps a sequence of huskers.
func HuskList(items ...Husker) *ListHusker {
	h := &ListHusker{items: items}
	h.bind(h)
	return h
}

// EmptyList is the canonical empty sequence, used by Null's search
// operations.
var EmptyList = HuskList()

func (h *ListHusker) Len() int { return len(h.items) }

// Index returns the i-th item.
func (h *ListHusker) Index(i int) Husker { return h.items[i] }

// Items returns the underlying sequence. Callers must not mutate it.
func (h *ListHusker) Items() []Husker { return h.items }

// Each calls fn for every item in order.
func (h *ListHusker) Each(fn func(Husker)) {
	for _, item := range h.items {
		fn(item)
	}
}

// Selection filters the children. With no spec every child is kept; a
// func(Husker) bool spec keeps children the predicate accepts; any other
// spec is run as a per-child query, keeping children with at least one
// match.
func (h *ListHusker) Selection(spec ...any) (*ListHusker, error) {
	if len(spec) == 0 {
		return HuskList(h.items...), nil
	}
	if pred, ok := spec[0].(func(Husker) bool); ok && len(spec) == 1 {
		return h.Filter(pred).(*ListHusker), nil
	}
	var kept []Husker
	for _, child := range h.items {
		selected, err := child.Selection(spec...)
		if err != nil {
			return nil, err
		}
		if selected.Len() > 0 {
			kept = append(kept, child)
		}
	}
	return HuskList(kept...), nil
}

// Dedup returns a stable order-preserving de-duplication, by wrapped value
// or by the supplied key function.
func (h *ListHusker) Dedup(key ...func(Husker) any) *ListHusker {
	keyFn := dedupKey
	if len(key) > 0 {
		keyFn = key[0]
	}
	seen := make(map[any]struct{}, len(h.items))
	var deduped []Husker
	for _, child := range h.items {
		k := keyFn(child)
		if _, ok := seen[k]; ok {
			continue
		}
		seen[k] = struct{}{}
		deduped = append(deduped, child)
	}
	return HuskList(deduped...)
}

// dedupKey keys by the wrapped value when it is comparable, falling back to
// the text rendering for values (sequences, maps) that are not.
func dedupKey(child Husker) any {
	v := child.Raw()
	if v == nil || reflect.TypeOf(v).Comparable() {
		return v
	}
	return child.String()
}

// Filter keeps the items fn accepts.
func (h *ListHusker) Filter(fn func(Husker) bool) Husker {
	var kept []Husker
	for _, child := range h.items {
		if fn(child) {
			kept = append(kept, child)
		}
	}
	return HuskList(kept...)
}

// Map applies fn to every item.
func (h *ListHusker) Map(fn func(Husker) Husker) Husker {
	mapped := make([]Husker, len(h.items))
	for i, child := range h.items {
		mapped[i] = fn(child)
	}
	return HuskList(mapped...)
}

// MapRaw applies fn to every item's wrapped value.
func (h *ListHusker) MapRaw(fn func(any) any) []any {
	out := make([]any, len(h.items))
	for i, child := range h.items {
		out[i] = fn(child.Raw())
	}
	return out
}

// Join concatenates the items' text values around sep.
func (h *ListHusker) Join(sep string) (Husker, error) {
	strs, err := h.Strs()
	if err != nil {
		return nil, err
	}
	return HuskText(strings.Join(strs, sep)), nil
}

// Concat appends another sequence.
func (h *ListHusker) Concat(other *ListHusker) *ListHusker {
	items := make([]Husker, 0, len(h.items)+len(other.items))
	items = append(items, h.items...)
	items = append(items, other.items...)
	return HuskList(items...)
}

// Text broadcasts Text over the items.
func (h *ListHusker) Text() Husker {
	mapped := make([]Husker, len(h.items))
	for i, child := range h.items {
		mapped[i] = child.Text()
	}
	return HuskList(mapped...)
}

// Multiline broadcasts Multiline over the items.
func (h *ListHusker) Multiline() Husker {
	mapped := make([]Husker, len(h.items))
	for i, child := range h.items {
		mapped[i] = child.Multiline()
	}
	return HuskList(mapped...)
}

// Texts is Text with a concrete return type.
func (h *ListHusker) Texts() *ListHusker {
	return h.Text().(*ListHusker)
}

// Multilines is Multiline with a concrete return type.
func (h *ListHusker) Multilines() *ListHusker {
	return h.Multiline().(*ListHusker)
}

// JSONs broadcasts JSON over the items.
func (h *ListHusker) JSONs() (*ListHusker, error) {
	mapped := make([]Husker, len(h.items))
	for i, child := range h.items {
		parsed, err := child.JSON()
		if err != nil {
			return nil, err
		}
		mapped[i] = parsed
	}
	return HuskList(mapped...), nil
}

// JSs broadcasts script extraction over element items.
func (h *ListHusker) JSs(stripComments bool) (*ListHusker, error) {
	mapped := make([]Husker, len(h.items))
	for i, child := range h.items {
		js, ok := child.(interface{ JS(bool) Husker })
		if !ok {
			return nil, errNotSupported(child, "JS")
		}
		mapped[i] = js.JS(stripComments)
	}
	return HuskList(mapped...), nil
}

// Subs broadcasts regex substitution over text items.
func (h *ListHusker) Subs(pattern, replacement string, flags ...string) (*ListHusker, error) {
	mapped := make([]Husker, len(h.items))
	for i, child := range h.items {
		sub, ok := child.(interface {
			Sub(string, string, ...string) (Husker, error)
		})
		if !ok {
			return nil, errNotSupported(child, "Sub")
		}
		replaced, err := sub.Sub(pattern, replacement, flags...)
		if err != nil {
			return nil, err
		}
		mapped[i] = replaced
	}
	return HuskList(mapped...), nil
}

// Attribs broadcasts attribute lookup over element items; a missing
// attribute contributes Null.
func (h *ListHusker) Attribs(name string) (*ListHusker, error) {
	mapped := make([]Husker, len(h.items))
	for i, child := range h.items {
		attr, ok := child.(interface{ Attrib(string) Husker })
		if !ok {
			return nil, errNotSupported(child, "Attrib")
		}
		mapped[i] = attr.Attrib(name)
	}
	return HuskList(mapped...), nil
}

// Raws returns the items' wrapped values.
func (h *ListHusker) Raws() []any {
	out := make([]any, len(h.items))
	for i, child := range h.items {
		out[i] = child.Raw()
	}
	return out
}

// Strs returns the items' text values.
func (h *ListHusker) Strs() ([]string, error) {
	out := make([]string, len(h.items))
	for i, child := range h.items {
		s, err := child.Str()
		if err != nil {
			return nil, err
		}
		out[i] = s
	}
	return out, nil
}

// Ints returns the items' integer values.
func (h *ListHusker) Ints() ([]int64, error) {
	out := make([]int64, len(h.items))
	for i, child := range h.items {
		n, err := child.Int()
		if err != nil {
			return nil, err
		}
		out[i] = n
	}
	return out, nil
}

// Bools returns the items' boolean values.
func (h *ListHusker) Bools() ([]bool, error) {
	out := make([]bool, len(h.items))
	for i, child := range h.items {
		b, ok := child.(interface{ Bool() (bool, error) })
		if !ok {
			return nil, errNotSupported(child, "Bool")
		}
		v, err := b.Bool()
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}

// Floats returns the items' float values.
func (h *ListHusker) Floats() ([]float64, error) {
	out := make([]float64, len(h.items))
	for i, child := range h.items {
		f, err := child.Float()
		if err != nil {
			return nil, err
		}
		out[i] = f
	}
	return out, nil
}

// Dates parses the items' text values as dates.
func (h *ListHusker) Dates(layout ...string) ([]time.Time, error) {
	out := make([]time.Time, len(h.items))
	for i, child := range h.items {
		t, err := child.Date(layout...)
		if err != nil {
			return nil, err
		}
		out[i] = t
	}
	return out, nil
}

// Datetimes parses the items' text values as datetimes.
func (h *ListHusker) Datetimes(layout ...string) ([]time.Time, error) {
	out := make([]time.Time, len(h.items))
	for i, child := range h.items {
		t, err := child.Datetime(layout...)
		if err != nil {
			return nil, err
		}
		out[i] = t
	}
	return out, nil
}

func (h *ListHusker) Raw() any   { return h.Raws() }
func (h *ListHusker) Ok() bool   { return len(h.items) > 0 }
func (h *ListHusker) ID() string { return "ListHusker" }

func (h *ListHusker) ReprValue() string {
	return previewString(h.String())
}

func (h *ListHusker) String() string {
	parts := make([]string, len(h.items))
	for i, child := range h.items {
		parts[i] = child.String()
	}
	return fmt.Sprintf("[%s]", strings.Join(parts, ", "))
}
