/*
Package husk provides a uniform, chainable query layer over heterogeneous
semi-structured data: HTML/XML trees, plain text, and JSON-like structures.

Each value is wrapped in a "husker", an immutable view exposing one search
primitive (Selection) and a family of cardinality operators that narrow a
selection to zero, one or many results. XPath and CSS selectors, regular
expressions and JMESPath expressions all run behind the same interface, so
scraping code reads the same regardless of the underlying document shape.

Basic usage:

	doc, err := husk.ParseHTML(strings.NewReader(page))
	if err != nil {
	    // Handle error
	}

	// Exactly one <h1> is expected: zero or several is an error.
	title, err := doc.One("//h1")
	if err != nil {
	    // Handle error
	}
	fmt.Println(title.Text())

	// CSS selectors work in the same call.
	links, err := doc.All("div.content a")

	// Optional data degrades to Null instead of failing.
	byline, _ := doc.Some("//span[@class='byline']")
	if byline.Ok() {
	    name, _ := byline.Str()
	    fmt.Println(name)
	}

Cardinality operators:

	One    exactly 1 match   0 matches or >1 is an error
	Some   0 or 1 match      0 yields Null, >1 is an error
	First  at least 1        returns the first
	Last   at least 1        returns the last
	Any    0 or more         returns the first, or Null
	All    at least 1        returns the whole selection

The *Of variants (OneOf, SomeOf, FirstOf, AnyOf, AllOf) take several
alternative specs; OneOf and SomeOf fail when more than one spec matches.

Text values convert through typed accessors (Str, Int, Float, Decimal,
Date, Datetime), and embedded page data parses with a lenient JSON reader
that accepts JavaScript object-literal syntax:

	js := doc.JS(true)                   // all <script> content, comments stripped
	cfg, err := husk.DecodeJSON(`{page: 1, items: [,,'x'],}`)

Huskers are immutable and never retain query state, so independent
documents can be queried from multiple goroutines; mutating a parsed tree
while huskers reference it is unsupported.
*/
package husk
