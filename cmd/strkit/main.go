// File: main.go
// Title: strkit Entry Point
// Description: Runs the strkit command line tool.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial implementation

package main

import (
	"os"

	"github.com/msto63/strkit/cmd/strkit/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
