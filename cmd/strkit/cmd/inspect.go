// File: inspect.go
// Title: inspect Command
// Description: Reports lengths, hash and structure of a text.
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
	"io"

	"github.com/spf13/cobra"

	"github.com/msto63/strkit/foundation/utils/stringx"
	"github.com/msto63/strkit/pkg/str"
)

// inspection is the serialized form of the inspect report.
type inspection struct {
	Text      string `json:"text" yaml:"text"`
	Length    int    `json:"length" yaml:"length"`
	Bytes     int    `json:"bytes" yaml:"bytes"`
	Graphemes int    `json:"graphemes" yaml:"graphemes"`
	Width     int    `json:"width" yaml:"width"`
	Hash      int32  `json:"hash" yaml:"hash"`
	Lines     int    `json:"lines" yaml:"lines"`
	Words     int    `json:"words" yaml:"words"`
	Sentences int    `json:"sentences" yaml:"sentences"`
	Case      string `json:"case,omitempty" yaml:"case,omitempty"`
	Number    bool   `json:"number" yaml:"number"`
}

func inspect(s *str.Str) inspection {
	return inspection{
		Text:      s.String(),
		Length:    s.Length(),
		Bytes:     len(s.Bytes()),
		Graphemes: s.GraphemeCount(),
		Width:     s.Width(),
		Hash:      s.HashCode(),
		Lines:     s.LinesCount(),
		Words:     s.Words().OnlyNotEmpty().Count(),
		Sentences: s.Sentences().Count(),
		Case:      detectCase(s),
		Number:    s.IsDigit(),
	}
}

// detectCase names the first naming convention the text satisfies.
func detectCase(s *str.Str) string {
	switch {
	case s.IsEmpty():
		return ""
	case s.IsSnakeCase():
		return "snake"
	case s.IsKebabCase():
		return "kebab"
	case s.IsStudlyCaps():
		return "studly"
	case s.IsCamelCase():
		return "camel"
	case s.IsUpper():
		return "upper"
	case s.IsLower():
		return "lower"
	}
	return ""
}

func newInspectCommand(a *app) *cobra.Command {
	var format string

	inspectCmd := &cobra.Command{
		Use:   "inspect [text...]",
		Short: "Show lengths, hash and structure of a text",
		RunE: a.run("inspect", func(cmd *cobra.Command, args []string) error {
			if err := checkFormat(format); err != nil {
				return err
			}

			text, err := readText(cmd, args)
			if err != nil {
				return err
			}

			report := inspect(text)
			if format != formatText {
				return writeEncoded(cmd.OutOrStdout(), format, report)
			}
			return writeInspection(cmd.OutOrStdout(), report)
		}),
	}

	inspectCmd.Flags().StringVarP(&format, "format", "f", formatText, "output format (text, json, yaml)")
	return inspectCmd
}

func writeInspection(w io.Writer, r inspection) error {
	caseName := r.Case
	if caseName == "" {
		caseName = "-"
	}

	labels := stringx.AddSpaces([]string{
		"Length:", "Bytes:", "Graphemes:", "Width:", "Hash:",
		"Lines:", "Words:", "Sentences:", "Case:", "Number:",
	}, " ")
	values := []any{
		r.Length, r.Bytes, r.Graphemes, r.Width, r.Hash,
		r.Lines, r.Words, r.Sentences, caseName, r.Number,
	}

	for i, label := range labels {
		if _, err := fmt.Fprintf(w, "%s%v\n", label, values[i]); err != nil {
			return err
		}
	}
	return nil
}
