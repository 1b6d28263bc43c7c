package husk

import (
	"bytes"
	"fmt"
	"io"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/andybalholm/cascadia"
	"github.com/antchfx/htmlquery"
	"github.com/antchfx/xpath"
	"github.com/yosssi/gohtml"
	"golang.org/x/net/html"

	"github.com/mrjoshuak/husk/internal/jsonrepair"
	"github.com/mrjoshuak/husk/internal/textutil"
)

// ElementHusker wraps a single HTML/XML tree node and searches it with
// XPath or CSS selectors.
type ElementHusker struct {
	selector
	node           *html.Node
	isFullDocument bool
}

// ElementOption configures an ElementHusker at construction.
type ElementOption func(*ElementHusker)

// AsDocument marks the husker as the full document root, so absolute XPath
// specs stay absolute instead of being forced relative.
func AsDocument() ElementOption {
	return func(h *ElementHusker) {
		h.isFullDocument = true
	}
}

// HuskElement wraps a parsed tree node.
func HuskElement(node *html.Node, opts ...ElementOption) *ElementHusker {
	h := &ElementHusker{node: node}
	for _, opt := range opts {
		opt(h)
	}
	h.bind(h)
	return h
}

// ParseHTML parses markup from r and returns a document-rooted husker.
func ParseHTML(r io.Reader, opts ...ElementOption) (*ElementHusker, error) {
	doc, err := htmlquery.Parse(r)
	if err != nil {
		return nil, errValue("cannot parse HTML: %v", err)
	}
	return HuskElement(doc, append([]ElementOption{AsDocument()}, opts...)...), nil
}

var (
	// xpathSpecRegex classifies a path spec as XPath rather than CSS:
	// absolute or relative paths, paths containing / or @, or a bare tag
	// name.
	xpathSpecRegex = regexp.MustCompile(`^\./|/|@|^\w+$`)

	// xpathPrefixRegex splits the leading dot and slashes off an XPath
	// spec so root-vs-relative adjustment can rewrite them.
	xpathPrefixRegex = regexp.MustCompile(`^(\.?)(/{0,2})`)
)

// Selection searches descendants with an XPath or CSS selector spec. The
// spec is classified by a fixed heuristic: absolute or ./-relative paths,
// anything containing / or @, and bare tag names are XPath, the rest is
// CSS. XPath specs may use value expressions and the built-in matches()
// regex function, e.g. `//a[matches(text(), "reg(?:ular)?")]`.
func (h *ElementHusker) Selection(spec ...any) (*ListHusker, error) {
	if len(spec) != 1 {
		return nil, errValue("%s: want exactly one path spec, got %d arguments", h.ID(), len(spec))
	}
	path, ok := spec[0].(string)
	if !ok {
		return nil, errValue("%s: path spec must be a string, got %T", h.ID(), spec[0])
	}
	if xpathSpecRegex.MatchString(path) {
		return h.xpathSelection(h.compileXPath(path))
	}
	return h.cssSelection(path)
}

// compileXPath adjusts a path for root-vs-relative search: document-rooted
// huskers keep absolute paths absolute; elsewhere the path is forced
// relative and a bare tag widens to .// so all descendants are searched,
// not just children.
func (h *ElementHusker) compileXPath(path string) string {
	m := xpathPrefixRegex.FindStringSubmatch(path)
	dot, slashes := m[1], m[2]
	if !h.isFullDocument {
		dot = "."
	}
	if slashes == "" {
		slashes = "//"
	}
	return dot + slashes + path[len(m[0]):]
}

func (h *ElementHusker) xpathSelection(path string) (*ListHusker, error) {
	expr, err := xpath.Compile(path)
	if err != nil {
		return nil, errValue("%s: bad XPath %q: %v", h.ID(), path, err)
	}
	var items []Husker
	switch result := expr.Evaluate(htmlquery.CreateXPathNavigator(h.node)).(type) {
	case *xpath.NodeIterator:
		for result.MoveNext() {
			nav, ok := result.Current().(*htmlquery.NodeNavigator)
			if !ok {
				continue
			}
			switch nav.NodeType() {
			case xpath.ElementNode, xpath.RootNode:
				items = append(items, HuskElement(nav.Current()))
			default:
				// attribute, text and comment nodes carry plain text
				items = append(items, HuskText(nav.Value()))
			}
		}
	case string:
		items = append(items, HuskText(result))
	case float64, bool:
		items = append(items, HuskScalar(result))
	}
	return HuskList(items...), nil
}

func (h *ElementHusker) cssSelection(path string) (*ListHusker, error) {
	sel, err := cascadia.Compile(path)
	if err != nil {
		return nil, errValue("%s: bad CSS selector %q: %v", h.ID(), path, err)
	}
	matched := goquery.NewDocumentFromNode(h.node).FindMatcher(sel)
	items := make([]Husker, 0, len(matched.Nodes))
	for _, n := range matched.Nodes {
		items = append(items, HuskElement(n))
	}
	return HuskList(items...), nil
}

// Attr returns the named attribute as a text husker, or an attribute-not-
// found error when absent. Entity references in attribute values are
// already unescaped by the parser.
func (h *ElementHusker) Attr(name string) (Husker, error) {
	for _, a := range h.node.Attr {
		if a.Key == name {
			return HuskText(a.Val), nil
		}
	}
	return nil, errAttributeNotFound(h, name)
}

// Attrib returns the named attribute, or Null when absent.
func (h *ElementHusker) Attrib(name string) Husker {
	return h.AttribOr(name, Null)
}

// AttribOr returns the named attribute, or def when absent.
func (h *ElementHusker) AttribOr(name string, def Husker) Husker {
	for _, a := range h.node.Attr {
		if a.Key == name {
			return HuskText(a.Val)
		}
	}
	return def
}

// lineBreakingTags contribute a single line break in multiline extraction
// and a word break in flattened extraction.
var lineBreakingTags = map[string]bool{
	"br": true,
}

// paragraphBreakingTags surround their text with paragraph breaks in
// multiline extraction and a word break in flattened extraction.
var paragraphBreakingTags = map[string]bool{
	"address": true, "applet": true, "article": true, "aside": true,
	"blockquote": true, "body": true, "canvas": true, "center": true,
	"cite": true, "dd": true, "div": true, "dl": true, "dt": true,
	"fieldset": true, "figcaption": true, "figure": true, "footer": true,
	"form": true, "frame": true, "frameset": true, "h1": true, "h2": true,
	"h3": true, "h4": true, "h5": true, "h6": true, "head": true,
	"header": true, "hr": true, "iframe": true, "li": true, "main": true,
	"nav": true, "noscript": true, "object": true, "ol": true,
	"output": true, "p": true, "pre": true, "section": true, "table": true,
	"tbody": true, "td": true, "textarea": true, "tfoot": true, "th": true,
	"thead": true, "title": true, "tr": true, "ul": true, "video": true,
}

// nonTextTags contribute no text at all; their subtrees are not walked.
var nonTextTags = map[string]bool{
	"script": true,
	"style":  true,
}

// Text returns the element's flattened text content, whitespace-normalized.
// Script/style subtrees and comments are excluded, and line- and
// paragraph-breaking tags insert a word break so text in adjacent blocks
// does not run together.
func (h *ElementHusker) Text() Husker {
	var b strings.Builder
	var visit func(n *html.Node)
	visit = func(n *html.Node) {
		switch n.Type {
		case html.CommentNode:
			return
		case html.TextNode:
			b.WriteString(n.Data)
			return
		case html.ElementNode:
			if nonTextTags[n.Data] {
				return
			}
			breaking := lineBreakingTags[n.Data] || paragraphBreakingTags[n.Data]
			if breaking {
				b.WriteString(" ")
			}
			for c := n.FirstChild; c != nil; c = c.NextSibling {
				visit(c)
			}
			if breaking {
				b.WriteString(" ")
			}
		default:
			for c := n.FirstChild; c != nil; c = c.NextSibling {
				visit(c)
			}
		}
	}
	visit(h.node)
	return HuskText(textutil.NormalizeSpaces(b.String()))
}

// Multiline extracts text preserving paragraph structure: <br> becomes a
// single newline, block-level tags get a paragraph break before and after,
// <pre> content is kept verbatim, script/style content and comments are
// excluded. Consecutive breaks collapse to at most one blank line.
func (h *ElementHusker) Multiline() Husker {
	e := &multilineExtractor{parts: []string{""}}
	e.visit(h.node)
	return HuskText(e.finish())
}

// multilineExtractor lays text out the way a renderer would: contiguous
// text gathers in a buffer, breaks owed to surrounding tags count up in
// newlines, and each flush appends the buffer with at most a blank line
// between paragraphs. Inside <pre> the buffer is flushed verbatim instead
// of space-normalized.
type multilineExtractor struct {
	parts    []string
	buffer   string
	newlines int
	inPre    int
}

func (e *multilineExtractor) visit(n *html.Node) {
	switch n.Type {
	case html.CommentNode:
		return
	case html.TextNode:
		e.text(n.Data)
		return
	case html.ElementNode:
		if nonTextTags[n.Data] {
			return
		}
		after := 0
		if lineBreakingTags[n.Data] {
			e.newlines++
		} else if paragraphBreakingTags[n.Data] {
			e.newlines += 2
			after = 2
			if n.Data == "pre" {
				e.flush()
				e.inPre++
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			e.visit(c)
		}
		e.newlines += after
		if n.Data == "pre" {
			e.flush()
			e.inPre--
		}
	default:
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			e.visit(c)
		}
	}
}

func (e *multilineExtractor) text(text string) {
	switch {
	case e.newlines == 0:
		e.buffer += text
	case strings.TrimSpace(text) != "" || e.inPre > 0:
		e.flush()
		e.buffer = text
	}
	// whitespace-only text after a pending break is dropped
}

func (e *multilineExtractor) flush() {
	last := len(e.parts) - 1
	if e.inPre > 0 {
		e.parts[last] += e.buffer
	} else {
		e.parts[last] += textutil.NormalizeSpaces(e.buffer)
	}
	if e.newlines == 1 {
		e.parts[last] += "\n"
	} else if e.newlines > 1 && e.parts[last] != "" {
		e.parts = append(e.parts, "")
	}
	e.newlines = 0
	e.buffer = ""
}

func (e *multilineExtractor) finish() string {
	e.newlines = 0
	e.flush()
	for len(e.parts) > 0 && e.parts[len(e.parts)-1] == "" {
		e.parts = e.parts[:len(e.parts)-1]
	}
	return strings.Join(e.parts, "\n\n")
}

// JS concatenates the text of all descendant <script> elements, strips
// surrounding HTML comment markers and, when stripComments is set, removes
// JavaScript comments.
func (h *ElementHusker) JS(stripComments bool) Husker {
	var scripts []string
	var visit func(n *html.Node)
	visit = func(n *html.Node) {
		if n.Type == html.ElementNode && n.Data == "script" {
			var b strings.Builder
			for c := n.FirstChild; c != nil; c = c.NextSibling {
				if c.Type == html.TextNode {
					b.WriteString(c.Data)
				}
			}
			text := htmlCommentOpenRegex.ReplaceAllString(b.String(), "")
			text = htmlCommentCloseRegex.ReplaceAllString(text, "")
			scripts = append(scripts, text)
			return
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			visit(c)
		}
	}
	visit(h.node)
	js := strings.Join(scripts, "\n")
	if stripComments {
		js = jsonrepair.StripJSComments(js)
	}
	return HuskText(js)
}

var (
	htmlCommentOpenRegex  = regexp.MustCompile(`^\s*<!--`)
	htmlCommentCloseRegex = regexp.MustCompile(`-->\s*$`)
)

// Head returns the text immediately inside the opening tag, before any
// child element, or Null.
func (h *ElementHusker) Head() Husker {
	if c := h.node.FirstChild; c != nil && c.Type == html.TextNode {
		return HuskText(c.Data)
	}
	return Null
}

// Tail returns the text immediately following the element, or Null.
func (h *ElementHusker) Tail() Husker {
	if s := h.node.NextSibling; s != nil && s.Type == html.TextNode {
		return HuskText(s.Data)
	}
	return Null
}

// Next returns the next sibling element, or Null.
func (h *ElementHusker) Next() Husker {
	for s := h.node.NextSibling; s != nil; s = s.NextSibling {
		if s.Type == html.ElementNode {
			return HuskElement(s)
		}
	}
	return Null
}

// Prev returns the previous sibling element, or Null.
func (h *ElementHusker) Prev() Husker {
	for s := h.node.PrevSibling; s != nil; s = s.PrevSibling {
		if s.Type == html.ElementNode {
			return HuskElement(s)
		}
	}
	return Null
}

// Parent returns the parent node, or Null at the tree root.
func (h *ElementHusker) Parent() Husker {
	if h.node.Parent == nil {
		return Null
	}
	return HuskElement(h.node.Parent)
}

// Tag returns the element's tag name, or Null for non-element nodes.
func (h *ElementHusker) Tag() Husker {
	if h.node.Type != html.ElementNode {
		return Null
	}
	return HuskText(h.node.Data)
}

// Children returns the direct child elements.
func (h *ElementHusker) Children() *ListHusker {
	var items []Husker
	for c := h.node.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode {
			items = append(items, HuskElement(c))
		}
	}
	return HuskList(items...)
}

// Child returns the i-th direct child element, or Null when out of range.
func (h *ElementHusker) Child(i int) Husker {
	if i < 0 {
		return Null
	}
	for c := h.node.FirstChild; c != nil; c = c.NextSibling {
		if c.Type != html.ElementNode {
			continue
		}
		if i == 0 {
			return HuskElement(c)
		}
		i--
	}
	return Null
}

// Len returns the number of direct child elements.
func (h *ElementHusker) Len() int {
	n := 0
	for c := h.node.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode {
			n++
		}
	}
	return n
}

// Descendants returns the node and all its descendant elements in document
// order.
func (h *ElementHusker) Descendants() *ListHusker {
	var items []Husker
	var visit func(n *html.Node)
	visit = func(n *html.Node) {
		if n.Type == html.ElementNode {
			items = append(items, HuskElement(n))
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			visit(c)
		}
	}
	visit(h.node)
	return HuskList(items...)
}

// HTMLSource serializes the node back to markup.
func (h *ElementHusker) HTMLSource() string {
	var b bytes.Buffer
	if err := html.Render(&b, h.node); err != nil {
		return ""
	}
	return b.String()
}

func (h *ElementHusker) Raw() any   { return h.node }
func (h *ElementHusker) Ok() bool   { return true }
func (h *ElementHusker) ID() string { return "ElementHusker" }

func (h *ElementHusker) ReprSpec(spec ...any) string {
	if len(spec) == 1 {
		if path, ok := spec[0].(string); ok {
			return "'" + path + "'"
		}
	}
	return reprSpec(spec...)
}

const (
	reprMaxWidth = 200
	reprMaxLines = 100
	reprMinTrim  = 10
)

// ReprValue renders an indented, bounded preview of the node's markup for
// error messages: long lines are truncated and a long document has its
// middle elided.
func (h *ElementHusker) ReprValue() string {
	lines := strings.Split(gohtml.Format(h.HTMLSource()), "\n")
	for i, line := range lines {
		if runes := []rune(line); len(runes) > reprMaxWidth {
			lines[i] = string(runes[:reprMaxWidth]) + "…"
		}
	}
	if len(lines) >= reprMaxLines+reprMinTrim {
		snipped := len(lines) - reprMaxLines
		head := lines[:reprMaxLines/2]
		tail := lines[len(lines)-reprMaxLines/2:]
		lines = append(append(append([]string{}, head...),
			"",
			fmt.Sprintf("    [… %d lines snipped …]", snipped),
			""),
			tail...)
	}
	rule := strings.Repeat("-", reprMaxWidth)
	return "element:\n\n" + rule + "\n" + strings.TrimSpace(strings.Join(lines, "\n")) + "\n" + rule + "\n"
}

func (h *ElementHusker) String() string {
	if t, ok := h.Text().(*TextHusker); ok {
		return t.value
	}
	return ""
}
