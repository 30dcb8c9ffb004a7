// File: stats.go
// Title: stats Command
// Description: Prints the letter frequencies of a text as a table or as
//              JSON/YAML records.
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
	"slices"
	"strconv"
	"unicode"
	"unicode/utf8"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/msto63/strkit/foundation/core/errors"
	"github.com/msto63/strkit/pkg/str"
)

type letterRecord struct {
	Letter string  `json:"letter" yaml:"letter"`
	Count  int     `json:"count" yaml:"count"`
	Share  float64 `json:"share" yaml:"share"`
}

type statsReport struct {
	Total   int            `json:"total" yaml:"total"`
	Letters []letterRecord `json:"letters" yaml:"letters"`
}

// letterStats orders entries by count, highest first, when byCount is set;
// ties keep first-occurrence order. top <= 0 keeps every letter.
func letterStats(s *str.Str, byCount bool, top int) statsReport {
	stat := s.LettersStat()
	entries := stat.Entries()
	if byCount {
		slices.SortStableFunc(entries, func(a, b str.LetterCount) int {
			return b.Count - a.Count
		})
	}
	if top > 0 && top < len(entries) {
		entries = entries[:top]
	}

	total := stat.Total()
	report := statsReport{Total: total, Letters: make([]letterRecord, 0, len(entries))}
	for _, e := range entries {
		report.Letters = append(report.Letters, letterRecord{
			Letter: e.Letter,
			Count:  e.Count,
			Share:  float64(e.Count) / float64(total),
		})
	}
	return report
}

func newStatsCommand(a *app) *cobra.Command {
	var (
		format  string
		byCount bool
		top     int
	)

	statsCmd := &cobra.Command{
		Use:   "stats [text...]",
		Short: "Show letter frequencies",
		Long: `Show how often each codepoint occurs in a text.

Letters are listed in order of first occurrence unless --sort is given.`,
		RunE: a.run("stats", func(cmd *cobra.Command, args []string) error {
			if err := checkFormat(format); err != nil {
				return err
			}
			if top < 0 {
				return errors.NewErrorBuilder(errors.ModuleCLI).
					Operation("stats").
					Message(`argument "top" must not be negative`).
					Code(errors.CodeArgumentRange).
					Detail("value", top).
					Build()
			}

			text, err := readText(cmd, args)
			if err != nil {
				return err
			}

			report := letterStats(text, byCount, top)
			if format != formatText {
				return writeEncoded(cmd.OutOrStdout(), format, report)
			}
			return writeStatsTable(cmd.OutOrStdout(), report, a.styles())
		}),
	}

	statsCmd.Flags().StringVarP(&format, "format", "f", formatText, "output format (text, json, yaml)")
	statsCmd.Flags().BoolVar(&byCount, "sort", false, "sort by count, highest first")
	statsCmd.Flags().IntVarP(&top, "top", "n", 0, "show only the first n letters")
	return statsCmd
}

func writeStatsTable(w io.Writer, report statsReport, st styles) error {
	if len(report.Letters) == 0 {
		_, err := fmt.Fprintln(w, "no letters")
		return err
	}

	rows := make([][]string, 0, len(report.Letters))
	for _, rec := range report.Letters {
		rows = append(rows, []string{
			displayLetter(rec.Letter),
			strconv.Itoa(rec.Count),
			strconv.FormatFloat(rec.Share*100, 'f', 1, 64) + "%",
		})
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(st.border).
		Headers("LETTER", "COUNT", "SHARE").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return st.header
			case col == 0:
				return st.accent
			}
			return st.cell
		})

	_, err := fmt.Fprintf(w, "%s\n%s\n", st.title.Render(fmt.Sprintf("%d letters", report.Total)), t.Render())
	return err
}

// displayLetter quotes codepoints that would be invisible in a table cell.
func displayLetter(letter string) string {
	r, _ := utf8.DecodeRuneInString(letter)
	if unicode.IsSpace(r) || !unicode.IsPrint(r) {
		return strconv.Quote(letter)
	}
	return letter
}
