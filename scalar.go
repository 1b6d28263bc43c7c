package husk

import (
	"math"
	"strconv"
)

// ScalarHusker wraps a numeric or boolean value, as produced by JSON
// decoding or by value-returning XPath expressions (count(), boolean
// tests). Searching a scalar searches its text rendering.
type ScalarHusker struct {
	selector
	value any // int64, float64 or bool
}

// HuskScalar wraps a number or bool, normalizing integer and float widths.
func HuskScalar(value any) *ScalarHusker {
	h := &ScalarHusker{value: normalizeScalar(value)}
	h.bind(h)
	return h
}

func normalizeScalar(value any) any {
	switch v := value.(type) {
	case bool, int64, float64:
		return v
	case int:
		return int64(v)
	case int8:
		return int64(v)
	case int16:
		return int64(v)
	case int32:
		return int64(v)
	case uint:
		return int64(v)
	case uint8:
		return int64(v)
	case uint16:
		return int64(v)
	case uint32:
		return int64(v)
	case uint64:
		return int64(v)
	case float32:
		return float64(v)
	default:
		return v
	}
}

func (h *ScalarHusker) Selection(spec ...any) (*ListHusker, error) {
	return HuskText(h.text()).Selection(spec...)
}

func (h *ScalarHusker) Text() Husker      { return HuskText(h.text()) }
func (h *ScalarHusker) Multiline() Husker { return HuskText(h.text()) }

func (h *ScalarHusker) Int() (int64, error) {
	switch v := h.value.(type) {
	case int64:
		return v, nil
	case float64:
		if v != math.Trunc(v) {
			return 0, errValue("%v is not an integral number", v)
		}
		return int64(v), nil
	default:
		return 0, errNotSupported(h, "Int")
	}
}

func (h *ScalarHusker) Float() (float64, error) {
	switch v := h.value.(type) {
	case int64:
		return float64(v), nil
	case float64:
		return v, nil
	default:
		return 0, errNotSupported(h, "Float")
	}
}

// Bool returns the wrapped boolean.
func (h *ScalarHusker) Bool() (bool, error) {
	if b, ok := h.value.(bool); ok {
		return b, nil
	}
	return false, errNotSupported(h, "Bool")
}

func (h *ScalarHusker) text() string {
	switch v := h.value.(type) {
	case int64:
		return strconv.FormatInt(v, 10)
	case float64:
		return strconv.FormatFloat(v, 'g', -1, 64)
	case bool:
		return strconv.FormatBool(v)
	default:
		return ""
	}
}

func (h *ScalarHusker) Raw() any           { return h.value }
func (h *ScalarHusker) Ok() bool           { return true }
func (h *ScalarHusker) ID() string         { return "ScalarHusker" }
func (h *ScalarHusker) ReprValue() string  { return previewString(h.text()) }
func (h *ScalarHusker) String() string     { return h.text() }
