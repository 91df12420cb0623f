// Package apperrors defines the typed errors and process exit codes shared
// across the application.
//
// Every failure that can reach the user is classified into one of a small
// set of error types so that the top-level runner can pick a stable exit
// code without string matching. The types are:
//
//   - ConfigError: a problem parsing or validating configuration.
//   - InvalidArgumentError: a structurally invalid parameter (wrong sign,
//     out of range).
//   - DomainError: a parameter that is well-formed but violates a domain
//     constraint of an operation.
//   - ReportError: a failure while composing a report, wrapping its cause.
//   - TimeoutError: an operation exceeded its configured limit.
package apperrors

import (
	"context"
	"errors"
	"fmt"
	"time"
)

// Process exit codes. These form the CLI contract and must not be renumbered.
const (
	// ExitSuccess indicates normal termination.
	ExitSuccess = 0
	// ExitErrorGeneric indicates an unclassified failure.
	ExitErrorGeneric = 1
	// ExitErrorTimeout indicates the global timeout or a deadline expired.
	ExitErrorTimeout = 2
	// ExitErrorParameter indicates an invalid or out-of-domain parameter.
	ExitErrorParameter = 3
	// ExitErrorConfig indicates a configuration parsing or validation failure.
	ExitErrorConfig = 4
	// ExitErrorCanceled indicates the user interrupted the run (SIGINT).
	ExitErrorCanceled = 130
)

// ConfigError reports a configuration parsing or validation failure.
type ConfigError struct {
	Message string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("configuration error: %s", e.Message)
}

// NewConfigError creates a ConfigError with a formatted message.
func NewConfigError(format string, a ...interface{}) *ConfigError {
	return &ConfigError{Message: fmt.Sprintf(format, a...)}
}

// InvalidArgumentError reports a structurally invalid parameter.
type InvalidArgumentError struct {
	// Param is the name of the offending parameter.
	Param   string
	Message string
}

func (e *InvalidArgumentError) Error() string {
	return fmt.Sprintf("invalid argument %q: %s", e.Param, e.Message)
}

// NewInvalidArgument creates an InvalidArgumentError for the named parameter
// with a formatted message.
func NewInvalidArgument(param, format string, a ...interface{}) *InvalidArgumentError {
	return &InvalidArgumentError{Param: param, Message: fmt.Sprintf(format, a...)}
}

// DomainError reports a parameter that is well-formed but violates a domain
// constraint of the operation it was passed to.
type DomainError struct {
	// Param is the name of the offending parameter.
	Param string
	// Constraint describes the violated constraint, e.g. "must be > 0".
	Constraint string
	// Value is the offending value, rendered for diagnostics.
	Value string
}

func (e *DomainError) Error() string {
	return fmt.Sprintf("domain error: %s %s (got %s)", e.Param, e.Constraint, e.Value)
}

// NewDomainError creates a DomainError. The value is rendered with %v.
func NewDomainError(param, constraint string, value interface{}) *DomainError {
	return &DomainError{Param: param, Constraint: constraint, Value: fmt.Sprintf("%v", value)}
}

// ReportError wraps a failure that occurred while composing a report variant.
type ReportError struct {
	// Variant names the report being composed, e.g. "sequential".
	Variant string
	Cause   error
}

func (e *ReportError) Error() string {
	return fmt.Sprintf("composing %s report: %v", e.Variant, e.Cause)
}

func (e *ReportError) Unwrap() error {
	return e.Cause
}

// NewReportError wraps cause as a failure of the named report variant.
func NewReportError(variant string, cause error) *ReportError {
	return &ReportError{Variant: variant, Cause: cause}
}

// TimeoutError reports that an operation exceeded its configured limit.
type TimeoutError struct {
	// Operation names what timed out.
	Operation string
	// Limit is the configured deadline.
	Limit time.Duration
}

func (e *TimeoutError) Error() string {
	return fmt.Sprintf("operation %q exceeded its limit of %v", e.Operation, e.Limit)
}

// NewTimeoutError creates a TimeoutError for the named operation.
func NewTimeoutError(operation string, limit time.Duration) *TimeoutError {
	return &TimeoutError{Operation: operation, Limit: limit}
}

// WrapError annotates err with a formatted prefix, preserving the chain for
// errors.Is / errors.As.
func WrapError(err error, format string, a ...interface{}) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, a...), err)
}

// IsContextError reports whether err stems from context cancellation or an
// expired deadline.
func IsContextError(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}

// IsParameterError reports whether err is (or wraps) an invalid-argument or
// domain error.
func IsParameterError(err error) bool {
	var inv *InvalidArgumentError
	if errors.As(err, &inv) {
		return true
	}
	var dom *DomainError
	return errors.As(err, &dom)
}

// ExitCodeFor maps err to the process exit code the CLI contract assigns it.
// A nil error maps to ExitSuccess.
func ExitCodeFor(err error) int {
	switch {
	case err == nil:
		return ExitSuccess
	case errors.Is(err, context.Canceled):
		return ExitErrorCanceled
	case errors.Is(err, context.DeadlineExceeded):
		return ExitErrorTimeout
	case IsParameterError(err):
		return ExitErrorParameter
	default:
	}

	var cfg *ConfigError
	if errors.As(err, &cfg) {
		return ExitErrorConfig
	}
	var to *TimeoutError
	if errors.As(err, &to) {
		return ExitErrorTimeout
	}
	return ExitErrorGeneric
}
