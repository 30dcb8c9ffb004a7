// File: root.go
// Title: strkit Root Command
// Description: Builds the strkit command tree. The persistent pre-run loads
//              the configuration and creates the logger every command uses;
//              each run is wrapped in a timer tagged with a correlation id.
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
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/msto63/strkit/foundation/core/config"
	"github.com/msto63/strkit/foundation/core/log"
	"github.com/msto63/strkit/foundation/utils/stringx"
)

// app carries the state shared by all commands of one invocation.
type app struct {
	cfgFile string
	verbose bool

	cfg    *config.Config
	logger *log.Logger
}

// NewRootCommand creates the strkit command tree.
func NewRootCommand() *cobra.Command {
	a := &app{}

	rootCmd := &cobra.Command{
		Use:   "strkit",
		Short: "Unicode-aware string toolkit",
		Long: `strkit transforms and inspects text codepoint by codepoint.

Text is taken from the arguments (joined by a space) or, without
arguments, from standard input.

Commands:
  case      - naming conventions and case mapping
  inspect   - lengths, hash and structure of a text
  stats     - letter frequencies
  markdown  - headings, elements and HTML of a Markdown document
  random    - random strings`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
	}

	rootCmd.PersistentFlags().StringVar(&a.cfgFile, "config", "", "config file (default: ./strkit.toml)")
	rootCmd.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "verbose output")

	rootCmd.AddCommand(
		newCaseCommand(a),
		newInspectCommand(a),
		newStatsCommand(a),
		newMarkdownCommand(a),
		newRandomCommand(a),
		newVersionCommand(a),
	)

	return rootCmd
}

// Execute runs the command tree against os.Args.
func Execute() error {
	rootCmd := NewRootCommand()
	if err := rootCmd.Execute(); err != nil {
		printError(rootCmd.ErrOrStderr(), err)
		return err
	}
	return nil
}

func (a *app) setup(cmd *cobra.Command) error {
	cfg, err := loadConfig(a.cfgFile)
	if err != nil {
		return err
	}
	a.cfg = cfg

	level, err := log.ParseLevel(cfg.GetString("log.level"))
	if err != nil {
		return err
	}
	if a.verbose {
		level = log.LevelDebug
	}

	format, err := log.ParseFormat(cfg.GetString("log.format"))
	if err != nil {
		return err
	}

	a.logger = log.NewWithConfig(log.Config{
		Level:  level,
		Format: format,
		Output: cmd.ErrOrStderr(),
		Name:   "strkit",
	}).WithCorrelationID(uuid.NewString())

	a.logger.Debug("configuration loaded", log.Fields{
		"file":   cfg.FilePath(),
		"format": cfg.Format().String(),
	})
	return nil
}

// run wraps a command body with start, finish and failure logging.
func (a *app) run(name string, fn func(cmd *cobra.Command, args []string) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		a.logger.Debug("command started", log.Fields{
			"command": name,
			"args":    stringx.Truncate(strings.Join(args, " "), 40, "..."),
		})
		timer := a.logger.StartTimer(name).WithField("arg_count", len(args))

		if err := fn(cmd, args); err != nil {
			timer.StopWithError(err)
			return err
		}
		timer.Stop()
		return nil
	}
}

func printError(w io.Writer, err error) {
	fmt.Fprintf(w, "Error: %v\n", err)
}
