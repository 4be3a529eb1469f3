package apperrors

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"
)

// Application exit codes define the standard exit statuses for the application.
// These codes are used to signal the outcome of the program execution to the OS.
const (
	ExitSuccess       = 0   // Indicates successful execution.
	ExitErrorGeneric  = 1   // Indicates a generic error.
	ExitErrorTimeout  = 2   // Indicates the operation timed out.
	ExitErrorMismatch = 3   // Indicates benchmark runs disagreed on a verdict.
	ExitErrorConfig   = 4   // Indicates a configuration error.
	ExitHostUntrusted = 5   // Indicates the checked host was declared not trustworthy.
	ExitErrorCanceled = 130 // Indicates the operation was canceled (e.g., SIGINT).
)

// ConfigError represents a user configuration error, such as invalid flags or
// values. It indicates that the application cannot proceed due to incorrect user input.
type ConfigError struct {
	// Message explains the specific configuration error.
	Message string
}

// Error returns the error message for a ConfigError.
func (e ConfigError) Error() string { return e.Message }

// NewConfigError creates a new ConfigError with a formatted message.
//
// Parameters:
//   - format: A format string (see fmt.Sprintf).
//   - a: Arguments to be formatted into the string.
//
// Returns:
//   - error: A new ConfigError instance containing the formatted message.
func NewConfigError(format string, a ...any) error {
	return ConfigError{Message: fmt.Sprintf(format, a...)}
}

// InvalidArgumentError reports a violated programming contract: a
// non-positive worker count reaching the partitioner, a negative server
// population, or a result whose counters are inconsistent. These are never
// retried.
type InvalidArgumentError struct {
	// Field names the offending argument.
	Field string
	// Message explains the violation.
	Message string
}

// Error returns a formatted message describing the violation.
func (e InvalidArgumentError) Error() string {
	return fmt.Sprintf("invalid argument %q: %s", e.Field, e.Message)
}

// NewInvalidArgument creates an InvalidArgumentError with a formatted message.
func NewInvalidArgument(field, format string, a ...any) error {
	return InvalidArgumentError{Field: field, Message: fmt.Sprintf(format, a...)}
}

// ScanInterruptedError reports that a scan could not complete its partitions:
// a worker panicked, the oracle failed, or the context was cancelled. No
// partial result accompanies it.
type ScanInterruptedError struct {
	// Host is the identifier whose scan was interrupted.
	Host string
	// Cause is the underlying failure.
	Cause error
}

// Error returns a formatted message including the cause.
func (e ScanInterruptedError) Error() string {
	return fmt.Sprintf("scan of host %q interrupted: %v", e.Host, e.Cause)
}

// Unwrap returns the original cause, allowing for error chain inspection.
func (e ScanInterruptedError) Unwrap() error { return e.Cause }

// TimeoutError represents an operation timeout. It captures the operation
// name and the duration limit that was exceeded.
type TimeoutError struct {
	// Operation is the name of the operation that timed out.
	Operation string
	// Limit is the duration after which the operation was considered timed out.
	Limit time.Duration
}

// Error returns a formatted message describing the timeout.
func (e TimeoutError) Error() string {
	return fmt.Sprintf("operation %q timed out after %s", e.Operation, e.Limit)
}

// ValidationError represents an input validation failure. It identifies which
// field failed validation and provides a human-readable explanation.
type ValidationError struct {
	// Field is the name of the field that failed validation.
	Field string
	// Message explains the validation failure.
	Message string
}

// Error returns a formatted message describing the validation failure.
func (e ValidationError) Error() string {
	return fmt.Sprintf("validation error for %q: %s", e.Field, e.Message)
}

// WrapError wraps an error with additional context using fmt.Errorf and %w.
// This allows the wrapped error to be unwrapped with errors.Unwrap() and
// checked with errors.Is() and errors.As().
//
// Parameters:
//   - err: The error to wrap.
//   - format: A format string for the context message.
//   - args: Arguments for the format string.
//
// Returns:
//   - error: The wrapped error, or nil if err is nil.
func WrapError(err error, format string, args ...any) error {
	if err == nil {
		return nil
	}
	message := fmt.Sprintf(format, args...)
	return fmt.Errorf("%s: %w", message, err)
}

// IsContextError checks if the error is a context cancellation or deadline exceeded error.
func IsContextError(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}

// IsInvalidArgument reports whether err is, or wraps, an InvalidArgumentError.
func IsInvalidArgument(err error) bool {
	var target InvalidArgumentError
	return errors.As(err, &target)
}

// IsScanInterrupted reports whether err is, or wraps, a ScanInterruptedError.
func IsScanInterrupted(err error) bool {
	var target ScanInterruptedError
	return errors.As(err, &target)
}

// ExitCode maps an error to the process exit status.
//
// Parameters:
//   - err: The error returned by a command, or nil.
//
// Returns:
//   - int: One of the Exit* constants.
func ExitCode(err error) int {
	var (
		configErr  ConfigError
		timeoutErr TimeoutError
	)
	switch {
	case err == nil:
		return ExitSuccess
	case errors.As(err, &configErr):
		return ExitErrorConfig
	case errors.As(err, &timeoutErr), errors.Is(err, context.DeadlineExceeded):
		return ExitErrorTimeout
	case errors.Is(err, context.Canceled):
		return ExitErrorCanceled
	default:
		return ExitErrorGeneric
	}
}

// HTTPStatus maps an error to the status code an HTTP caller should see.
// Contract and validation failures are client errors; everything else,
// including interrupted scans, is a server error.
func HTTPStatus(err error) int {
	var validationErr ValidationError
	switch {
	case err == nil:
		return http.StatusOK
	case IsInvalidArgument(err), errors.As(err, &validationErr):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
