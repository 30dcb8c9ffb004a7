// File: example_test.go
// Title: Example Tests for markdown Package Documentation
// Description: Executable examples that serve as both documentation and tests.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial example implementation

package markdown_test

import (
	"fmt"

	"github.com/msto63/strkit/pkg/markdown"
)

func ExampleMarkdown_Elements() {
	doc := markdown.Parse("## v1.0.0\n\n### Added\n* item 1\n* item 2")
	for _, e := range doc.Elements() {
		fmt.Printf("%s %q\n", e.Kind(), e.Content().String())
	}
	// Output:
	// heading "v1.0.0"
	// whitespace ""
	// heading "Added"
	// list "item 1\nitem 2"
}

func ExampleMarkdown_Headings() {
	doc := markdown.Parse("# Guide\n## Install\n## Usage\ntext")
	for h := range doc.Headings(true).FilterByLevel(2).Values() {
		fmt.Println(h.Level, h.Title)
	}
	// Output:
	// 2 Install
	// 2 Usage
}

func ExampleMarkdown_ContainsHeadingWithLevel() {
	doc := markdown.Parse("intro\n### Added\n* item")
	found, _ := doc.ContainsHeadingWithLevel("Added", 3)
	fmt.Println(found)

	_, err := doc.ContainsHeadingWithLevel("Added", 9)
	fmt.Println(err)
	// Output:
	// true
	// argument "level" must be in range 1-6
}
