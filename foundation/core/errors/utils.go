// File: utils.go
// Title: Shared Error Handling Utilities
// Description: Provides the error builder and the constructors for the error
//              kinds the string library reports, plus predicates that find them
//              anywhere in a wrap chain.
// Author: msto63
// Version: v0.2.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial implementation of shared error utilities
// - 2026-10-19 v0.2.0: Added type, empty operation, pattern and range errors

package errors

import (
	"fmt"

	strerr "github.com/msto63/strkit/foundation/core/error"
)

// ErrorBuilder provides a fluent interface for building standardized errors
type ErrorBuilder struct {
	module    string
	operation string
	message   string
	cause     error
	details   map[string]interface{}
	severity  strerr.Severity
	code      string
}

// NewErrorBuilder creates a new error builder for the specified module
func NewErrorBuilder(module string) *ErrorBuilder {
	return &ErrorBuilder{
		module:   module,
		details:  make(map[string]interface{}),
		severity: strerr.SeverityMedium,
	}
}

// Operation sets the operation name for the error
func (eb *ErrorBuilder) Operation(operation string) *ErrorBuilder {
	eb.operation = operation
	return eb
}

// Message sets the error message
func (eb *ErrorBuilder) Message(message string) *ErrorBuilder {
	eb.message = message
	return eb
}

// Messagef sets the error message with formatting
func (eb *ErrorBuilder) Messagef(format string, args ...interface{}) *ErrorBuilder {
	eb.message = fmt.Sprintf(format, args...)
	return eb
}

// Cause sets the underlying cause of the error
func (eb *ErrorBuilder) Cause(cause error) *ErrorBuilder {
	eb.cause = cause
	return eb
}

// Detail adds a detail key-value pair to the error
func (eb *ErrorBuilder) Detail(key string, value interface{}) *ErrorBuilder {
	eb.details[key] = value
	return eb
}

// Details sets multiple details at once
func (eb *ErrorBuilder) Details(details map[string]interface{}) *ErrorBuilder {
	for k, v := range details {
		eb.details[k] = v
	}
	return eb
}

// Severity sets the error severity
func (eb *ErrorBuilder) Severity(severity strerr.Severity) *ErrorBuilder {
	eb.severity = severity
	return eb
}

// Code sets the error code
func (eb *ErrorBuilder) Code(code string) *ErrorBuilder {
	eb.code = code
	return eb
}

// Build creates the final error
func (eb *ErrorBuilder) Build() *strerr.Error {
	if eb.code == "" {
		eb.code = getModuleErrorCode(eb.module, eb.operation)
	}

	if eb.message == "" {
		if eb.operation != "" {
			eb.message = fmt.Sprintf("%s.%s failed", eb.module, eb.operation)
		} else {
			eb.message = fmt.Sprintf("%s operation failed", eb.module)
		}
	}

	eb.details["module"] = eb.module
	if eb.operation != "" {
		eb.details["operation"] = eb.operation
	}

	var err *strerr.Error
	if eb.cause != nil {
		err = strerr.Wrap(eb.cause, eb.message)
	} else {
		err = strerr.New(eb.message)
	}

	return err.
		WithCode(strerr.Code(eb.code)).
		WithOperation(eb.operation).
		WithDetails(eb.details).
		WithSeverity(eb.severity)
}

// =============================================================================
// STRING LIBRARY ERRORS
// =============================================================================

// TypeError reports an input that is neither text, a number, a stringable
// value nor (where accepted) a slice of those.
func TypeError(module, operation string, input interface{}) *strerr.Error {
	return NewErrorBuilder(module).
		Operation(operation).
		Messagef("%s.%s: unsupported argument type %T", module, operation, input).
		Code(CodeTypeError).
		Detail("type", fmt.Sprintf("%T", input)).
		Severity(strerr.SeverityLow).
		Build()
}

// EmptyOperation reports an operation that needs at least one codepoint
func EmptyOperation(module, operation string) *strerr.Error {
	return NewErrorBuilder(module).
		Operation(operation).
		Messagef("%s.%s: operation on an empty value", module, operation).
		Code(CodeEmptyOperation).
		Severity(strerr.SeverityLow).
		Build()
}

// InvalidPattern reports a pattern the pattern engine rejected
func InvalidPattern(module, pattern string, cause error) *strerr.Error {
	return NewErrorBuilder(module).
		Operation("match").
		Messagef("%s: invalid pattern %q", module, pattern).
		Cause(cause).
		Code(CodeInvalidPattern).
		Detail("pattern", pattern).
		Severity(strerr.SeverityLow).
		Build()
}

// ArgumentRange reports a numeric argument outside its permitted range
func ArgumentRange(module, operation, argument string, value, min, max interface{}) *strerr.Error {
	return NewErrorBuilder(module).
		Operation(operation).
		Messagef("argument %q must be in range %v-%v", argument, min, max).
		Code(CodeArgumentRange).
		Detail("argument", argument).
		Detail("value", value).
		Detail("min", min).
		Detail("max", max).
		Severity(strerr.SeverityLow).
		Build()
}

// =============================================================================
// GENERIC ERRORS
// =============================================================================

// InvalidInput creates a standardized invalid input error
func InvalidInput(module, operation string, input interface{}, expected string) *strerr.Error {
	return NewErrorBuilder(module).
		Operation(operation).
		Message(fmt.Sprintf("invalid input for %s.%s", module, operation)).
		Code(CodeInvalidInput).
		Detail("input", input).
		Detail("expected", expected).
		Severity(strerr.SeverityMedium).
		Build()
}

// NotFound creates a standardized not found error
func NotFound(module, operation string, identifier interface{}) *strerr.Error {
	return NewErrorBuilder(module).
		Operation(operation).
		Message(fmt.Sprintf("item not found in %s.%s", module, operation)).
		Code(CodeNotFound).
		Detail("identifier", identifier).
		Severity(strerr.SeverityMedium).
		Build()
}

// =============================================================================
// ERROR ANALYSIS
// =============================================================================

// IsTypeError reports whether err carries a type error
func IsTypeError(err error) bool {
	return strerr.HasCode(err, strerr.CodeTypeError)
}

// IsEmptyOperation reports whether err carries an empty operation error
func IsEmptyOperation(err error) bool {
	return strerr.HasCode(err, strerr.CodeEmptyOperation)
}

// IsInvalidPattern reports whether err carries an invalid pattern error
func IsInvalidPattern(err error) bool {
	return strerr.HasCode(err, strerr.CodeInvalidPattern)
}

// IsArgumentRange reports whether err carries an argument range error
func IsArgumentRange(err error) bool {
	return strerr.HasCode(err, strerr.CodeArgumentRange)
}

// ExtractDetails extracts all details from a strkit error
func ExtractDetails(err error) map[string]interface{} {
	if e, ok := strerr.As(err); ok {
		return e.Details()
	}
	return nil
}

// ExtractModule extracts the module name from an error
func ExtractModule(err error) string {
	if module, ok := ExtractDetails(err)["module"].(string); ok {
		return module
	}
	return ""
}

// ExtractOperation extracts the operation name from an error
func ExtractOperation(err error) string {
	if operation, ok := ExtractDetails(err)["operation"].(string); ok {
		return operation
	}
	return ""
}

// IsModuleOperation checks if error is from specific module and operation
func IsModuleOperation(err error, module, operation string) bool {
	return ExtractModule(err) == module && ExtractOperation(err) == operation
}
