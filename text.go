package husk

import (
	"regexp"
	"strings"

	"github.com/mrjoshuak/husk/internal/textutil"
)

// TextHusker wraps a single string and searches it with regular
// expressions.
type TextHusker struct {
	selector
	value string
}

// HuskText wraps a string.
func HuskText(value string) *TextHusker {
	h := &TextHusker{value: value}
	h.bind(h)
	return h
}

// Selection searches the text with a regex spec: a pattern string with
// optional flag letters ("i", "m", "s", "U") as a second argument, or a
// precompiled *regexp.Regexp. With zero or one capturing group each match
// contributes a single text husker (the whole match, or the group); with
// two or more groups each match contributes a list of its groups, an
// unmatched group appearing as Null.
func (h *TextHusker) Selection(spec ...any) (*ListHusker, error) {
	re, err := compileTextSpec(h, spec)
	if err != nil {
		return nil, err
	}
	groups := re.NumSubexp()
	matches := re.FindAllStringSubmatchIndex(h.value, -1)
	items := make([]Husker, 0, len(matches))
	for _, m := range matches {
		if groups < 2 {
			items = append(items, h.group(m, groups))
		} else {
			inner := make([]Husker, 0, groups)
			for g := 1; g <= groups; g++ {
				inner = append(inner, h.group(m, g))
			}
			items = append(items, HuskList(inner...))
		}
	}
	return HuskList(items...), nil
}

func (h *TextHusker) group(m []int, g int) Husker {
	if m[2*g] < 0 {
		return Null
	}
	return HuskText(h.value[m[2*g]:m[2*g+1]])
}

// Sub replaces every match of the pattern, using the same pattern and flag
// conventions as Selection. The replacement may use $1-style group
// references.
func (h *TextHusker) Sub(pattern, replacement string, flags ...string) (Husker, error) {
	spec := []any{pattern}
	if len(flags) > 0 {
		spec = append(spec, flags[0])
	}
	re, err := compileTextSpec(h, spec)
	if err != nil {
		return nil, err
	}
	return HuskText(re.ReplaceAllString(h.value, replacement)), nil
}

// Text returns the husker itself.
func (h *TextHusker) Text() Husker { return h }

// Multiline returns the husker itself.
func (h *TextHusker) Multiline() Husker { return h }

// Normalized collapses whitespace runs to single spaces and trims.
func (h *TextHusker) Normalized() *TextHusker {
	return HuskText(textutil.NormalizeSpaces(h.value))
}

// Clean strips control characters, applies NFKC normalization and
// normalizes whitespace.
func (h *TextHusker) Clean() *TextHusker {
	return HuskText(textutil.NormalizeText(h.value))
}

func (h *TextHusker) Lower() *TextHusker { return HuskText(strings.ToLower(h.value)) }
func (h *TextHusker) Upper() *TextHusker { return HuskText(strings.ToUpper(h.value)) }
func (h *TextHusker) Strip() *TextHusker { return HuskText(strings.TrimSpace(h.value)) }

func (h *TextHusker) Replace(old, new string) *TextHusker {
	return HuskText(strings.ReplaceAll(h.value, old, new))
}

func (h *TextHusker) Contains(sub string) bool     { return strings.Contains(h.value, sub) }
func (h *TextHusker) HasPrefix(prefix string) bool { return strings.HasPrefix(h.value, prefix) }
func (h *TextHusker) HasSuffix(suffix string) bool { return strings.HasSuffix(h.value, suffix) }

// Split cuts the text around each instance of sep.
func (h *TextHusker) Split(sep string) *ListHusker {
	parts := strings.Split(h.value, sep)
	items := make([]Husker, len(parts))
	for i, p := range parts {
		items[i] = HuskText(p)
	}
	return HuskList(items...)
}

// Add concatenates two text huskers.
func (h *TextHusker) Add(other *TextHusker) *TextHusker {
	return HuskText(h.value + other.value)
}

// Equal compares by underlying string value.
func (h *TextHusker) Equal(other *TextHusker) bool { return h.value == other.value }

// Less orders by underlying string value.
func (h *TextHusker) Less(other *TextHusker) bool { return h.value < other.value }

func (h *TextHusker) Raw() any   { return h.value }
func (h *TextHusker) Ok() bool   { return true }
func (h *TextHusker) ID() string { return "TextHusker" }

func (h *TextHusker) ReprSpec(spec ...any) string {
	if len(spec) >= 1 && len(spec) <= 2 {
		flags := ""
		if len(spec) == 2 {
			f, ok := spec[1].(string)
			if !ok {
				return reprSpec(spec...)
			}
			flags = f
		}
		switch p := spec[0].(type) {
		case string:
			return "/" + p + "/" + flags
		case *regexp.Regexp:
			return "/" + p.String() + "/" + flags
		}
	}
	return reprSpec(spec...)
}

func (h *TextHusker) ReprValue() string { return previewString(h.value) }
func (h *TextHusker) String() string    { return h.value }

// compileTextSpec compiles a regex spec. Flag letters map onto Go's inline
// flags: i (case-insensitive), m (multi-line), s (dot matches newline),
// U (ungreedy).
func compileTextSpec(h Husker, spec []any) (*regexp.Regexp, error) {
	if len(spec) == 0 || len(spec) > 2 {
		return nil, errValue("%s: want (pattern) or (pattern, flags), got %d arguments", h.ID(), len(spec))
	}
	switch p := spec[0].(type) {
	case *regexp.Regexp:
		if len(spec) > 1 {
			return nil, errValue("%s: flags cannot be combined with a precompiled pattern", h.ID())
		}
		return p, nil
	case string:
		flags := ""
		if len(spec) == 2 {
			f, ok := spec[1].(string)
			if !ok {
				return nil, errValue("%s: flags must be a string, got %T", h.ID(), spec[1])
			}
			flags = f
		}
		pattern := p
		if flags != "" {
			for _, f := range flags {
				switch f {
				case 'i', 'm', 's', 'U':
				default:
					return nil, errValue("%s: unknown regex flag %q", h.ID(), string(f))
				}
			}
			pattern = "(?" + flags + ")" + pattern
		}
		re, err := regexp.Compile(pattern)
		if err != nil {
			return nil, errValue("%s: bad pattern %s: %v", h.ID(), h.ReprSpec(spec...), err)
		}
		return re, nil
	default:
		return nil, errValue("%s: spec must be a pattern string or *regexp.Regexp, got %T", h.ID(), spec[0])
	}
}
