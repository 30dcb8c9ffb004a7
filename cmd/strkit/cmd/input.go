// File: input.go
// Title: Command Input and Output Helpers
// Description: Reads command text from arguments or standard input and
//              writes results as text, JSON or YAML.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial implementation

package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/msto63/strkit/foundation/core/errors"
	"github.com/msto63/strkit/pkg/str"
)

const (
	formatText = "text"
	formatJSON = "json"
	formatYAML = "yaml"
)

// readText joins args with a space, or reads standard input without its
// final line break when there are no args.
func readText(cmd *cobra.Command, args []string) (*str.Str, error) {
	if len(args) > 0 {
		return str.Of(strings.Join(args, " ")), nil
	}

	data, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return nil, errors.NewErrorBuilder(errors.ModuleCLI).
			Operation("read_input").
			Message("failed to read standard input").
			Cause(err).
			Build()
	}
	return str.Of(string(data)).DeleteWhenEnds("\n").DeleteWhenEnds("\r"), nil
}

// readDocument reads the file named by the only argument, or standard input.
func readDocument(cmd *cobra.Command, args []string) (*str.Str, error) {
	if len(args) == 0 {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return nil, errors.NewErrorBuilder(errors.ModuleCLI).
				Operation("read_document").
				Message("failed to read standard input").
				Cause(err).
				Build()
		}
		return str.Of(string(data)), nil
	}

	data, err := os.ReadFile(args[0])
	if err != nil {
		return nil, errors.NewErrorBuilder(errors.ModuleCLI).
			Operation("read_document").
			Messagef("failed to read %s", args[0]).
			Detail("path", args[0]).
			Cause(err).
			Build()
	}
	return str.Of(string(data)), nil
}

// writeEncoded writes v as JSON or YAML. Text output is left to the caller.
func writeEncoded(w io.Writer, format string, v any) error {
	switch format {
	case formatJSON:
		encoder := json.NewEncoder(w)
		encoder.SetIndent("", "  ")
		return encoder.Encode(v)
	case formatYAML:
		encoder := yaml.NewEncoder(w)
		encoder.SetIndent(2)
		if err := encoder.Encode(v); err != nil {
			return err
		}
		return encoder.Close()
	default:
		return fmt.Errorf("unsupported format %q", format)
	}
}

func checkFormat(format string) error {
	switch format {
	case formatText, formatJSON, formatYAML:
		return nil
	}
	return errors.InvalidInput(errors.ModuleCLI, "format", format, "text, json or yaml")
}
