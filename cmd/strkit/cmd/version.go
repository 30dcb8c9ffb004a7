// File: version.go
// Title: version Command
// Description: Prints build information of the strkit binary.
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

	"github.com/msto63/strkit/pkg/core/version"
)

func newVersionCommand(a *app) *cobra.Command {
	var format string

	versionCmd := &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Args:  cobra.NoArgs,
		RunE: a.run("version", func(cmd *cobra.Command, args []string) error {
			if err := checkFormat(format); err != nil {
				return err
			}

			info := version.Get()
			if format != formatText {
				return writeEncoded(cmd.OutOrStdout(), format, info)
			}

			_, err := fmt.Fprintf(cmd.OutOrStdout(), `strkit v%s
  Git Commit: %s
  Build Date: %s
  Go Version: %s
  OS/Arch:    %s
`, info.Version, info.GitCommit, info.BuildDate, info.GoVersion, info.Platform)
			return err
		}),
	}

	versionCmd.Flags().StringVarP(&format, "format", "f", formatText, "output format (text, json, yaml)")
	return versionCmd
}
