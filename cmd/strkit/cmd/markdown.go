// File: markdown.go
// Title: markdown Command
// Description: Lists headings and block elements of a Markdown document,
//              prints the items under a section and renders it to HTML.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial implementation

package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/msto63/strkit/pkg/markdown"
)

type elementRecord struct {
	Kind    string `json:"kind" yaml:"kind"`
	Level   int    `json:"level,omitempty" yaml:"level,omitempty"`
	Content string `json:"content" yaml:"content"`
}

func newMarkdownCommand(a *app) *cobra.Command {
	markdownCmd := &cobra.Command{
		Use:     "markdown",
		Aliases: []string{"md"},
		Short:   "Inspect a Markdown document",
		Long: `Inspect a Markdown document read from a file or standard input.

Subcommands:
  headings  - list the "#" headings
  elements  - list the block elements
  section   - list the bullet items under a heading
  html      - render the document to HTML`,
	}

	markdownCmd.AddCommand(
		newMarkdownHeadingsCommand(a),
		newMarkdownElementsCommand(a),
		newMarkdownSectionCommand(a),
		newMarkdownHTMLCommand(a),
	)
	return markdownCmd
}

func newMarkdownHeadingsCommand(a *app) *cobra.Command {
	var (
		format string
		level  int
	)

	headingsCmd := &cobra.Command{
		Use:   "headings [file]",
		Short: "List the headings of a document",
		Args:  cobra.MaximumNArgs(1),
		RunE: a.run("markdown.headings", func(cmd *cobra.Command, args []string) error {
			if err := checkFormat(format); err != nil {
				return err
			}

			text, err := readDocument(cmd, args)
			if err != nil {
				return err
			}

			headings := markdown.New(text).Headings(a.cfg.GetBool("markdown.trim_headings", true))
			if level != 0 {
				headings = headings.FilterByLevel(level)
			}

			if format != formatText {
				return writeEncoded(cmd.OutOrStdout(), format, headings.ToArray())
			}

			out := cmd.OutOrStdout()
			for heading := range headings.Values() {
				indent := strings.Repeat("  ", heading.Level-1)
				if _, err := fmt.Fprintf(out, "%s%s\n", indent, heading.Title); err != nil {
					return err
				}
			}
			return nil
		}),
	}

	headingsCmd.Flags().StringVarP(&format, "format", "f", formatText, "output format (text, json, yaml)")
	headingsCmd.Flags().IntVarP(&level, "level", "l", 0, "only headings of this level")
	return headingsCmd
}

func newMarkdownElementsCommand(a *app) *cobra.Command {
	var format string

	elementsCmd := &cobra.Command{
		Use:   "elements [file]",
		Short: "List the block elements of a document",
		Args:  cobra.MaximumNArgs(1),
		RunE: a.run("markdown.elements", func(cmd *cobra.Command, args []string) error {
			if err := checkFormat(format); err != nil {
				return err
			}

			text, err := readDocument(cmd, args)
			if err != nil {
				return err
			}

			records := elementRecords(markdown.New(text).Elements())
			if format != formatText {
				return writeEncoded(cmd.OutOrStdout(), format, map[string][]elementRecord{"elements": records})
			}

			out := cmd.OutOrStdout()
			for _, rec := range records {
				line := rec.Kind
				if rec.Level > 0 {
					line = fmt.Sprintf("%s(%d)", rec.Kind, rec.Level)
				}
				if rec.Content != "" {
					line += ": " + strings.ReplaceAll(rec.Content, "\n", " | ")
				}
				if _, err := fmt.Fprintln(out, line); err != nil {
					return err
				}
			}
			return nil
		}),
	}

	elementsCmd.Flags().StringVarP(&format, "format", "f", formatText, "output format (text, json, yaml)")
	return elementsCmd
}

func elementRecords(elements []markdown.Element) []elementRecord {
	records := make([]elementRecord, 0, len(elements))
	for _, element := range elements {
		rec := elementRecord{
			Kind:    string(element.Kind()),
			Content: element.Content().String(),
		}
		if heading, ok := element.(markdown.Heading); ok {
			rec.Level = heading.Level
		}
		records = append(records, rec)
	}
	return records
}

func newMarkdownSectionCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "section <title> [file]",
		Short: "List the bullet items under a heading",
		Args:  cobra.RangeArgs(1, 2),
		RunE: a.run("markdown.section", func(cmd *cobra.Command, args []string) error {
			text, err := readDocument(cmd, args[1:])
			if err != nil {
				return err
			}

			items, err := markdown.New(text).SectionItems(args[0])
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for _, item := range items {
				if _, err := fmt.Fprintln(out, item); err != nil {
					return err
				}
			}
			return nil
		}),
	}
}

func newMarkdownHTMLCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "html [file]",
		Short: "Render a document to HTML",
		Args:  cobra.MaximumNArgs(1),
		RunE: a.run("markdown.html", func(cmd *cobra.Command, args []string) error {
			text, err := readDocument(cmd, args)
			if err != nil {
				return err
			}

			html, err := markdown.New(text).HTML()
			if err != nil {
				return err
			}

			_, err = fmt.Fprint(cmd.OutOrStdout(), html)
			return err
		}),
	}
}
