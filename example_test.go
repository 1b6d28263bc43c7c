package husk_test

import (
	"fmt"
	"strings"

	"github.com/mrjoshuak/husk"
)

func ExampleParseHTML() {
	page := `<html><body>
		<h1>Weekly Digest</h1>
		<ul>
			<li><a href="/posts/1">First post</a></li>
			<li><a href="/posts/2">Second post</a></li>
		</ul>
	</body></html>`

	doc, err := husk.ParseHTML(strings.NewReader(page))
	if err != nil {
		panic(err)
	}

	title, _ := doc.One("h1")
	fmt.Println(title.Text())

	links, _ := doc.All("//a/@href")
	joined, _ := links.Join(" ")
	fmt.Println(joined)
	// Output:
	// Weekly Digest
	// /posts/1 /posts/2
}

func ExampleDecodeJSON() {
	// Object-literal syntax straight out of a script tag decodes fine.
	data, err := husk.DecodeJSON(`{page: 1, tags: ['go', 'html'],}`)
	if err != nil {
		panic(err)
	}

	page, _ := data.One("page")
	fmt.Println(page)

	tags, _ := data.All("tags[]")
	joined, _ := tags.Join(", ")
	fmt.Println(joined)
	// Output:
	// 1
	// go, html
}

func ExampleHusker_Some() {
	doc, _ := husk.ParseHTML(strings.NewReader(`<p class="byline">By Ana</p>`))

	byline, _ := doc.Some(".byline")
	subtitle, _ := doc.Some(".subtitle")

	fmt.Println(byline.Text())
	fmt.Println(subtitle.Ok())
	// Output:
	// By Ana
	// false
}
