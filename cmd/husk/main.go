// Package main provides the command-line interface for husk. It reads an
// HTML or JSON document from a file or standard input, applies a query
// spec with a chosen cardinality, and prints the matches.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mrjoshuak/husk"
)

func main() {
	input := flag.String("input", "-", "Input file path ('-' for stdin)")
	asJSON := flag.Bool("json", false, "Treat the input as JSON instead of HTML")
	spec := flag.String("spec", "", "XPath/CSS selector (HTML) or JMESPath expression (JSON)")
	pattern := flag.String("regex", "", "Regex to run over the document text instead of a path spec")
	flags := flag.String("flags", "", "Regex flag letters (i, m, s, U)")
	attr := flag.String("attr", "", "Print this attribute of each matched element")
	mode := flag.String("mode", "all", "Cardinality: one, some, first, last, any or all")
	multiline := flag.Bool("multiline", false, "Preserve paragraph structure in text output")
	format := flag.String("format", "text", "Output format: text or json")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "husk - query HTML and JSON documents\n\n")
		fmt.Fprintf(os.Stderr, "Usage: %s [options]\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  %s -input page.html -spec '//h1' -mode one\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s -input page.html -spec 'div.content a' -attr href\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s -input data.json -json -spec 'items[].name'\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  cat page.html | %s -regex 'id: (\\d+)'\n", os.Args[0])
	}
	flag.Parse()

	if err := run(*input, *asJSON, *spec, *pattern, *flags, *attr, *mode, *multiline, *format); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(input string, asJSON bool, spec, pattern, flags, attr, mode string, multiline bool, format string) error {
	var reader io.Reader
	if input == "-" {
		reader = os.Stdin
	} else {
		f, err := os.Open(input)
		if err != nil {
			return err
		}
		defer f.Close()
		reader = f
	}

	doc, err := loadDocument(reader, asJSON)
	if err != nil {
		return err
	}

	querySpec := spec
	if pattern != "" {
		text := doc.Text()
		str, err := text.Str()
		if err != nil {
			return err
		}
		doc = husk.HuskText(str)
		querySpec = pattern
	}
	if querySpec == "" {
		return fmt.Errorf("one of -spec or -regex is required")
	}

	args := []any{querySpec}
	if pattern != "" && flags != "" {
		args = append(args, flags)
	}

	selected, err := applyMode(doc, mode, args)
	if err != nil {
		return err
	}

	return printResults(os.Stdout, selected, attr, multiline, format)
}

func loadDocument(r io.Reader, asJSON bool) (husk.Husker, error) {
	if asJSON {
		raw, err := io.ReadAll(r)
		if err != nil {
			return nil, err
		}
		return husk.DecodeJSON(string(raw))
	}
	return husk.ParseHTML(r)
}

func applyMode(doc husk.Husker, mode string, args []any) (*husk.ListHusker, error) {
	switch mode {
	case "all":
		return doc.All(args...)
	case "one", "some", "first", "last", "any":
		var (
			h   husk.Husker
			err error
		)
		switch mode {
		case "one":
			h, err = doc.One(args...)
		case "some":
			h, err = doc.Some(args...)
		case "first":
			h, err = doc.First(args...)
		case "last":
			h, err = doc.Last(args...)
		case "any":
			h, err = doc.Any(args...)
		}
		if err != nil {
			return nil, err
		}
		if !h.Ok() {
			return husk.EmptyList, nil
		}
		return husk.HuskList(h), nil
	default:
		return nil, fmt.Errorf("unknown mode %q", mode)
	}
}

func printResults(w io.Writer, selected *husk.ListHusker, attr string, multiline bool, format string) error {
	var values []string
	var err error

	switch {
	case attr != "":
		attrs, aerr := selected.Attribs(attr)
		if aerr != nil {
			return aerr
		}
		values, err = huskStrings(attrs)
	case multiline:
		values, err = huskStrings(selected.Multilines())
	default:
		values, err = selected.Strs()
	}
	if err != nil {
		return err
	}

	switch format {
	case "text":
		for _, v := range values {
			fmt.Fprintln(w, v)
		}
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(values)
	default:
		return fmt.Errorf("unknown format %q", format)
	}
	return nil
}

// huskStrings renders each item's text, with Null items as empty strings.
func huskStrings(list *husk.ListHusker) ([]string, error) {
	out := make([]string, 0, list.Len())
	var firstErr error
	list.Each(func(h husk.Husker) {
		s, err := h.Str()
		if err != nil && firstErr == nil {
			firstErr = err
		}
		out = append(out, strings.TrimSpace(s))
	})
	return out, firstErr
}
