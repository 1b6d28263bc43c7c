// Package jsonrepair turns JavaScript-object-literal-like text into strict
// JSON and decodes it. Pages routinely embed data as JS literals (single
// quotes, unquoted keys, trailing commas, comments), which the standard
// library's decoder rejects; Repair fixes those deviations outside of quoted
// string spans, and Decode hands the result to encoding/json.
package jsonrepair

import (
	"encoding/json"
	"regexp"
	"strconv"
	"strings"
)

var (
	// Alternation order matters: the two string captures come first so that
	// comment-looking text inside a string literal is left alone.
	jsCommentsRegex = regexp.MustCompile(`(?s)("(?:\\.|[^\\"])*")|('(?:\\.|[^\\'])*')|//[^\n]*|/\*.*?\*/`)

	// \\[^x] consumes escaped pairs so a \x inside them is not misread.
	hexEscapeRegex = regexp.MustCompile(`\\x([0-9a-fA-F]{2})|\\[^x]`)
)

// StripJSComments removes // and /* */ comments from JavaScript source,
// leaving intact anything that merely looks like a comment inside a single-
// or double-quoted string literal.
//
// Regex literals are not recognized; a // or */ inside one would confuse the
// scan, but such patterns are vanishingly rare in embedded page data.
func StripJSComments(js string) string {
	return jsCommentsRegex.ReplaceAllString(js, "$1$2")
}

// Repair rewrites near-JSON text into strict JSON: strips comments, decodes
// \xNN escapes, converts single-quoted strings to double-quoted, quotes bare
// object keys, inserts null for elided array elements ([,,1] becomes
// [null,null,1]) and removes trailing commas. Quoted string spans are copied
// through untouched, so no fix ever applies inside another's match.
func Repair(text string) string {
	text = StripJSComments(text)
	text = decodeHexEscapes(text)

	var b strings.Builder
	b.Grow(len(text))
	prev := byte(0) // last significant byte emitted
	i := 0
	for i < len(text) {
		switch c := text[i]; {
		case c == '"':
			j := skipString(text, i, '"')
			b.WriteString(text[i:j])
			prev = '"'
			i = j
		case c == '\'':
			j := skipString(text, i, '\'')
			b.WriteString(requoteSingle(text[i:j]))
			prev = '"'
			i = j
		case c == ',':
			// Take the whole run of commas and whitespace so trailing
			// commas and elided array elements are decided in one place.
			j := i
			for j < len(text) && (text[j] == ',' || isSpace(text[j])) {
				j++
			}
			if j < len(text) && (text[j] == ']' || text[j] == '}') {
				// trailing commas before a closing bracket: drop them
				i = j
				continue
			}
			p := prev
			for k := i; k < j; k++ {
				ch := text[k]
				if ch == ',' {
					if p == '[' || p == ',' {
						// elided array element
						b.WriteString("null")
					}
					p = ','
				}
				b.WriteByte(ch)
			}
			prev = ','
			i = j
		case isWordChar(c):
			j := i
			for j < len(text) && isWordChar(text[j]) {
				j++
			}
			k := j
			for k < len(text) && isSpace(text[k]) {
				k++
			}
			if k < len(text) && text[k] == ':' && (prev == '{' || prev == ',') {
				b.WriteString(strconv.Quote(text[i:j]))
			} else {
				b.WriteString(text[i:j])
			}
			prev = text[j-1]
			i = j
		default:
			b.WriteByte(c)
			if !isSpace(c) {
				prev = c
			}
			i++
		}
	}
	return b.String()
}

// Decode repairs the given text and unmarshals it. Numbers decode as
// float64, objects as map[string]any, arrays as []any.
func Decode(text string) (any, error) {
	var v any
	if err := json.Unmarshal([]byte(Repair(text)), &v); err != nil {
		return nil, err
	}
	return v, nil
}

func decodeHexEscapes(text string) string {
	return hexEscapeRegex.ReplaceAllStringFunc(text, func(m string) string {
		if strings.HasPrefix(m, `\x`) {
			n, err := strconv.ParseUint(m[2:], 16, 16)
			if err == nil {
				return string(rune(n))
			}
		}
		return m
	})
}

// skipString returns the index just past the string literal that opens at
// start with the given quote character, honoring backslash escapes.
func skipString(text string, start int, quote byte) int {
	j := start + 1
	for j < len(text) {
		switch text[j] {
		case '\\':
			j += 2
		case quote:
			return j + 1
		default:
			j++
		}
	}
	return len(text)
}

// requoteSingle converts a single-quoted literal (quotes included) to a
// double-quoted one: internal double quotes get escaped and erroneously
// escaped single quotes get unescaped.
func requoteSingle(lit string) string {
	inner := lit[1 : len(lit)-1]
	var b strings.Builder
	b.Grow(len(inner) + 2)
	b.WriteByte('"')
	for i := 0; i < len(inner); i++ {
		switch c := inner[i]; c {
		case '\\':
			if i+1 < len(inner) && inner[i+1] == '\'' {
				// the strict parser chokes on \' inside a " string
				b.WriteByte('\'')
				i++
			} else if i+1 < len(inner) {
				b.WriteByte(c)
				b.WriteByte(inner[i+1])
				i++
			} else {
				b.WriteByte(c)
			}
		case '"':
			b.WriteString(`\"`)
		default:
			b.WriteByte(c)
		}
	}
	b.WriteByte('"')
	return b.String()
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r' || c == '\f' || c == '\v'
}

func isWordChar(c byte) bool {
	return c == '_' ||
		(c >= '0' && c <= '9') ||
		(c >= 'a' && c <= 'z') ||
		(c >= 'A' && c <= 'Z')
}
