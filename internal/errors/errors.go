package apperrors

import (
	"context"
	"errors"
	"fmt"
)

// Application exit codes define the standard exit statuses for the application.
// These codes are used to signal the outcome of the program execution to the OS.
const (
	ExitSuccess             = 0   // Indicates successful execution.
	ExitErrorGeneric        = 1   // Indicates a generic error.
	ExitErrorInvalidInput   = 2   // Indicates the target value was rejected before the search.
	ExitErrorOverflow       = 3   // Indicates a mediant sum exceeded the uint64 range.
	ExitErrorNonConvergence = 4   // Indicates the search hit its iteration ceiling.
	ExitErrorConfig         = 5   // Indicates a configuration error.
	ExitErrorCanceled       = 130 // Indicates the operation was canceled (e.g., SIGINT).
)

// ConfigError represents a user configuration error, such as invalid flags or
// values. It indicates that the application cannot proceed due to incorrect user input.
type ConfigError struct {
	// Message explains the specific configuration error.
	Message string
}

// Error returns the error message for a ConfigError.
//
// Returns:
//   - string: The error message string.
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

// DivisionByZeroError reports an attempt to construct a fraction with a zero
// denominator. It is the only validation failure a fraction itself can raise;
// every other operation assumes the non-zero invariant already holds.
type DivisionByZeroError struct {
	// Numerator is the numerator that accompanied the rejected construction.
	Numerator uint64
}

// Error returns a formatted message describing the rejected construction.
//
// Returns:
//   - string: The error message string.
func (e DivisionByZeroError) Error() string {
	return fmt.Sprintf("division by zero: denominator cannot be zero (numerator %d)", e.Numerator)
}

// OverflowError reports that a mediant step would push a numerator or
// denominator sum past the uint64 range. The naive algorithm silently wraps
// here; this implementation detects the wrap and surfaces it instead of
// producing a corrupted fraction.
type OverflowError struct {
	// Numerator is the numerator sum that overflowed, truncated to 64 bits.
	Numerator uint64
	// Denominator is the denominator sum that overflowed, truncated to 64 bits.
	Denominator uint64
}

// Error returns a formatted message describing the overflow.
//
// Returns:
//   - string: The error message string.
func (e OverflowError) Error() string {
	return fmt.Sprintf("arithmetic overflow: mediant sums %d/%d exceeded the uint64 range", e.Numerator, e.Denominator)
}

// InputError represents a target value rejected before the search loop starts.
// It identifies which aspect of the input failed validation and provides a
// human-readable explanation.
type InputError struct {
	// Field is the name of the input that failed validation.
	Field string
	// Message explains the validation failure.
	Message string
}

// Error returns a formatted message describing the validation failure.
//
// Returns:
//   - string: The error message string.
func (e InputError) Error() string {
	return fmt.Sprintf("invalid input for %q: %s", e.Field, e.Message)
}

// NewInputError creates a new InputError with a formatted message.
//
// Parameters:
//   - field: The name of the input that failed validation.
//   - format: A format string (see fmt.Sprintf).
//   - a: Arguments to be formatted into the string.
//
// Returns:
//   - error: A new InputError instance containing the formatted message.
func NewInputError(field, format string, a ...any) error {
	return InputError{Field: field, Message: fmt.Sprintf(format, a...)}
}

// NonConvergenceError reports that the mediant search exhausted its iteration
// ceiling without satisfying the convergence test. The search loop has no
// other bound; without this error a pathological target would spin forever.
type NonConvergenceError struct {
	// Iterations is the number of bisection steps performed before giving up.
	Iterations int
}

// Error returns a formatted message describing the failed convergence.
//
// Returns:
//   - string: The error message string.
func (e NonConvergenceError) Error() string {
	return fmt.Sprintf("no convergence after %d mediant iterations", e.Iterations)
}

// SearchError encapsulates a search failure while preserving the original
// cause. This allows for structured error handling and inspection of what
// went wrong during the mediant bisection.
type SearchError struct {
	// Cause is the underlying error that aborted the search.
	Cause error
}

// Error returns the error message from the underlying cause.
//
// Returns:
//   - string: The error message string from the wrapped error.
func (e SearchError) Error() string { return e.Cause.Error() }

// Unwrap returns the original wrapped error, allowing for error chain
// inspection (e.g., using errors.Is or errors.As).
//
// Returns:
//   - error: The underlying cause of the SearchError.
func (e SearchError) Unwrap() error { return e.Cause }

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
//
// Parameters:
//   - err: The error to check.
//
// Returns:
//   - bool: true if the error is a context error.
func IsContextError(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}

// ExitCodeFor maps an error to the process exit code that should be reported
// for it. A nil error maps to ExitSuccess.
//
// Parameters:
//   - err: The error to classify.
//
// Returns:
//   - int: The exit code for the error class.
func ExitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}
	if IsContextError(err) {
		return ExitErrorCanceled
	}
	var (
		inputErr    InputError
		overflowErr OverflowError
		noConvErr   NonConvergenceError
		configErr   ConfigError
	)
	switch {
	case errors.As(err, &inputErr):
		return ExitErrorInvalidInput
	case errors.As(err, &overflowErr):
		return ExitErrorOverflow
	case errors.As(err, &noConvErr):
		return ExitErrorNonConvergence
	case errors.As(err, &configErr):
		return ExitErrorConfig
	default:
		return ExitErrorGeneric
	}
}
