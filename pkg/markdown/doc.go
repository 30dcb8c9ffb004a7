// File: doc.go
// Title: Package Documentation for markdown
// Description: Package markdown extracts headings, lists and text lines
//              from Markdown documents held in a Str.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial implementation

// Package markdown reads the block structure of Markdown text.
//
// Lines are classified by their prefix, which covers changelogs and READMEs.
// HTML gives a full CommonMark rendering (goldmark with the GFM extensions)
// when the structure alone is not enough.
//
//	doc := markdown.Parse("## v1.0.0\n\n### Added\n* item 1\n* item 2")
//	for _, e := range doc.Elements() {
//		fmt.Println(e.Kind(), e.Content())
//	}
//
// Heading levels are 1 to 6. ContainsHeadingWithLevel and NewHeading reject
// other levels with an ARGUMENT_RANGE error.
package markdown
