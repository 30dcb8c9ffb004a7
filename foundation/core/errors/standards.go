// File: standards.go
// Title: Error Standards for strkit
// Description: Module identifiers and standardized error codes shared by the
//              strkit packages. Codes are plain strings so that the builder can
//              accept both these constants and module-generated codes.
// Author: msto63
// Version: v0.2.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial implementation for error standardization
// - 2026-10-19 v0.2.0: Reduced to the string library modules

package errors

import (
	"strings"

	strerr "github.com/msto63/strkit/foundation/core/error"
)

// Module identifiers for error categorization
const (
	ModuleStringx  = "stringx"
	ModuleStr      = "str"
	ModuleMarkdown = "markdown"
	ModuleConfig   = "config"
	ModuleCLI      = "cli"
)

// Standardized error codes
const (
	CodeInvalidInput     = string(strerr.CodeInvalidInput)
	CodeInvalidFormat    = string(strerr.CodeInvalidFormat)
	CodeNotFound         = string(strerr.CodeNotFound)
	CodeValidationFailed = string(strerr.CodeValidationFailed)

	CodeTypeError      = string(strerr.CodeTypeError)
	CodeEmptyOperation = string(strerr.CodeEmptyOperation)
	CodeInvalidPattern = string(strerr.CodeInvalidPattern)
	CodeArgumentRange  = string(strerr.CodeArgumentRange)
)

// getModuleErrorCode derives a code for errors built without an explicit one
func getModuleErrorCode(module, operation string) string {
	if operation == "" {
		return strings.ToUpper(module) + "_ERROR"
	}
	return strings.ToUpper(module) + "_" + strings.ToUpper(operation) + "_FAILED"
}
