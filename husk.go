package husk

import (
	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"

	"github.com/mrjoshuak/husk/internal/jsonrepair"
)

// Husk wraps a raw value in the husker variant matching its shape:
//
//   - a Husker is returned unchanged
//   - a string becomes a TextHusker
//   - a numeric or boolean scalar becomes a ScalarHusker
//   - an *html.Node (or goquery document/selection) becomes an
//     ElementHusker, a selection becoming a ListHusker of elements
//   - a slice becomes a ListHusker, recursively wrapping each item
//   - a map[string]any becomes a JmesPathHusker
//   - nil becomes Null
//
// Anything else, notably raw undecoded []byte, is a value error: guessing
// a text encoding for binary data is the caller's call to make, not ours.
func Husk(value any) (Husker, error) {
	switch v := value.(type) {
	case nil:
		return Null, nil
	case Husker:
		return v, nil
	case string:
		return HuskText(v), nil
	case bool, int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64, float32, float64:
		return HuskScalar(v), nil
	case *html.Node:
		return HuskElement(v), nil
	case *goquery.Document:
		if len(v.Nodes) == 0 {
			return Null, nil
		}
		return HuskElement(v.Nodes[0], AsDocument()), nil
	case *goquery.Selection:
		items := make([]Husker, len(v.Nodes))
		for i, n := range v.Nodes {
			items[i] = HuskElement(n)
		}
		return HuskList(items...), nil
	case []Husker:
		return HuskList(v...), nil
	case []string:
		items := make([]Husker, len(v))
		for i, s := range v {
			items[i] = HuskText(s)
		}
		return HuskList(items...), nil
	case []*html.Node:
		items := make([]Husker, len(v))
		for i, n := range v {
			items[i] = HuskElement(n)
		}
		return HuskList(items...), nil
	case []any:
		items := make([]Husker, len(v))
		for i, item := range v {
			wrapped, err := Husk(item)
			if err != nil {
				return nil, err
			}
			items[i] = wrapped
		}
		return HuskList(items...), nil
	case map[string]any:
		return HuskJSON(v), nil
	default:
		return nil, errValue("cannot husk a %T", value)
	}
}

// MustHusk is Husk for values known to be huskable; it panics otherwise.
func MustHusk(value any) Husker {
	h, err := Husk(value)
	if err != nil {
		panic(err)
	}
	return h
}

// DecodeJSON leniently parses near-JSON text (JS object-literal syntax
// accepted) and wraps the result. A bare null decodes to Null.
func DecodeJSON(text string) (Husker, error) {
	decoded, err := jsonrepair.Decode(text)
	if err != nil {
		return nil, errValue("cannot decode JSON: %v", err)
	}
	if decoded == nil {
		return Null, nil
	}
	return HuskJSON(decoded), nil
}
