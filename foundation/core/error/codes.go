// File: codes.go
// Title: Error Code Definitions
// Description: Defines the error codes used across strkit. The four string
//              codes (type, empty operation, invalid pattern, argument range)
//              are the only errors a library caller can receive; the generic
//              codes serve the configuration and logging layers.
// Author: msto63
// Version: v0.2.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial implementation with core error codes
// - 2026-10-19 v0.2.0: Added string library codes, removed service codes

package error

// Code represents a structured error code for categorizing errors
type Code string

const (
	// Generic codes
	CodeUnknown      Code = "UNKNOWN"
	CodeInternal     Code = "INTERNAL"
	CodeNotFound     Code = "NOT_FOUND"
	CodeInvalidInput Code = "INVALID_INPUT"

	// String library codes
	CodeTypeError      Code = "TYPE_ERROR"
	CodeEmptyOperation Code = "EMPTY_OPERATION"
	CodeInvalidPattern Code = "INVALID_PATTERN"
	CodeArgumentRange  Code = "ARGUMENT_RANGE"

	// Configuration
	CodeConfigError   Code = "CONFIG_ERROR"
	CodeInvalidConfig Code = "INVALID_CONFIG"

	// Validation
	CodeValidationFailed Code = "VALIDATION_FAILED"
	CodeInvalidFormat    Code = "INVALID_FORMAT"
)

// String returns the string representation of the error code
func (c Code) String() string {
	return string(c)
}

// IsValid checks if the error code is a known valid code
func (c Code) IsValid() bool {
	switch c {
	case CodeUnknown, CodeInternal, CodeNotFound, CodeInvalidInput,
		CodeTypeError, CodeEmptyOperation, CodeInvalidPattern, CodeArgumentRange,
		CodeConfigError, CodeInvalidConfig,
		CodeValidationFailed, CodeInvalidFormat:
		return true
	default:
		return false
	}
}

// Category returns the high-level category of the error code
func (c Code) Category() string {
	switch c {
	case CodeTypeError, CodeEmptyOperation, CodeInvalidPattern, CodeArgumentRange:
		return "string"
	case CodeConfigError, CodeInvalidConfig:
		return "configuration"
	case CodeValidationFailed, CodeInvalidFormat, CodeInvalidInput:
		return "validation"
	default:
		return "generic"
	}
}
