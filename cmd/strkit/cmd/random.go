// File: random.go
// Title: random Command
// Description: Prints random strings from the alphanumeric or the printable
//              ASCII alphabet.
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

	"github.com/spf13/cobra"

	"github.com/msto63/strkit/foundation/core/errors"
	"github.com/msto63/strkit/pkg/str"
)

func newRandomCommand(a *app) *cobra.Command {
	var (
		length    int
		printable bool
		count     int
	)

	randomCmd := &cobra.Command{
		Use:   "random",
		Short: "Generate random strings",
		Long: `Generate random strings.

Without --fix only letters and digits are used. The default length comes
from random.length in the configuration.`,
		Args: cobra.NoArgs,
		RunE: a.run("random", func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("length") {
				length = a.cfg.GetInt("random.length", 16)
			}
			if length < 1 {
				return errors.ArgumentRange(errors.ModuleCLI, "random", "length", length, 1, "unbounded")
			}

			generate := str.Random
			if printable {
				generate = str.RandomFix
			}

			out := cmd.OutOrStdout()
			for range count {
				s, err := generate(length)
				if err != nil {
					return err
				}
				if _, err := fmt.Fprintln(out, s); err != nil {
					return err
				}
			}
			return nil
		}),
	}

	randomCmd.Flags().IntVarP(&length, "length", "l", 16, "number of codepoints")
	randomCmd.Flags().BoolVar(&printable, "fix", false, "use all printable ASCII characters")
	randomCmd.Flags().IntVarP(&count, "count", "c", 1, "number of strings")
	return randomCmd
}
