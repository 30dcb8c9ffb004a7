// File: case.go
// Title: case Command
// Description: Converts text between naming conventions and case forms.
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
	"slices"
	"strings"

	"github.com/spf13/cobra"

	"github.com/msto63/strkit/foundation/core/errors"
	"github.com/msto63/strkit/pkg/str"
)

// caseModes maps a mode name to its transform. The separator applies to
// snake only.
var caseModes = map[string]func(s *str.Str, separator string) *str.Str{
	"upper":    func(s *str.Str, _ string) *str.Str { return s.ToUpper() },
	"lower":    func(s *str.Str, _ string) *str.Str { return s.ToLower() },
	"snake":    func(s *str.Str, sep string) *str.Str { return s.ToSnakeCaseWith(sep) },
	"kebab":    func(s *str.Str, _ string) *str.Str { return s.ToKebabCase() },
	"camel":    func(s *str.Str, _ string) *str.Str { return s.ToCamelCase() },
	"studly":   func(s *str.Str, _ string) *str.Str { return s.ToStudlyCaps() },
	"swap":     func(s *str.Str, _ string) *str.Str { return s.SwapCase() },
	"sentence": func(s *str.Str, _ string) *str.Str { return s.ToSentence() },
	"reverse":  func(s *str.Str, _ string) *str.Str { return s.Reverse() },
}

func caseModeNames() []string {
	names := make([]string, 0, len(caseModes))
	for name := range caseModes {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

func newCaseCommand(a *app) *cobra.Command {
	var separator string

	caseCmd := &cobra.Command{
		Use:   "case <mode> [text...]",
		Short: "Convert text to another case or naming convention",
		Long: fmt.Sprintf(`Convert text to another case or naming convention.

Modes: %s

The snake separator defaults to case.separator from the configuration.`,
			strings.Join(caseModeNames(), ", ")),
		Args:      cobra.MinimumNArgs(1),
		ValidArgs: caseModeNames(),
		RunE: a.run("case", func(cmd *cobra.Command, args []string) error {
			mode := strings.ToLower(args[0])
			transform, ok := caseModes[mode]
			if !ok {
				return errors.InvalidInput(errors.ModuleCLI, "case", mode, strings.Join(caseModeNames(), ", "))
			}

			text, err := readText(cmd, args[1:])
			if err != nil {
				return err
			}

			if !cmd.Flags().Changed("separator") {
				separator = a.cfg.GetString("case.separator", "_")
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), transform(text, separator))
			return err
		}),
	}

	caseCmd.Flags().StringVarP(&separator, "separator", "s", "_", "separator for snake mode")
	return caseCmd
}
