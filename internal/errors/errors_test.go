// Package apperrors provides tests for application error types.
package apperrors

import (
	"context"
	"errors"
	"testing"
)

func TestConfigError(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name        string
		err         error
		expected    string
		checkTypeAs bool
	}{
		{
			name:     "Error returns message",
			err:      ConfigError{Message: "invalid flag value"},
			expected: "invalid flag value",
		},
		{
			name:     "NewConfigError creates formatted error",
			err:      NewConfigError("invalid value %q for flag %s", "abc", "--max-iterations"),
			expected: `invalid value "abc" for flag --max-iterations`,
		},
		{
			name:        "ConfigError type assertion",
			err:         NewConfigError("test error"),
			expected:    "test error",
			checkTypeAs: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if tt.err.Error() != tt.expected {
				t.Errorf("expected %q, got %q", tt.expected, tt.err.Error())
			}
			if tt.checkTypeAs {
				var configErr ConfigError
				if !errors.As(tt.err, &configErr) {
					t.Error("expected error to be ConfigError type")
				}
			}
		})
	}
}

func TestDivisionByZeroError(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name      string
		numerator uint64
		expected  string
	}{
		{
			name:      "zero numerator",
			numerator: 0,
			expected:  "division by zero: denominator cannot be zero (numerator 0)",
		},
		{
			name:      "nonzero numerator",
			numerator: 42,
			expected:  "division by zero: denominator cannot be zero (numerator 42)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			err := DivisionByZeroError{Numerator: tt.numerator}
			if err.Error() != tt.expected {
				t.Errorf("expected %q, got %q", tt.expected, err.Error())
			}
		})
	}
}

func TestOverflowError(t *testing.T) {
	t.Parallel()
	err := OverflowError{Numerator: 3, Denominator: 7}
	want := "arithmetic overflow: mediant sums 3/7 exceeded the uint64 range"
	if err.Error() != want {
		t.Errorf("expected %q, got %q", want, err.Error())
	}
}

func TestInputError(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name     string
		err      error
		expected string
	}{
		{
			name:     "direct construction",
			err:      InputError{Field: "number", Message: "must not be negative"},
			expected: `invalid input for "number": must not be negative`,
		},
		{
			name:     "NewInputError formats message",
			err:      NewInputError("number", "integer part %g exceeds uint64 range", 1e20),
			expected: `invalid input for "number": integer part 1e+20 exceeds uint64 range`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if tt.err.Error() != tt.expected {
				t.Errorf("expected %q, got %q", tt.expected, tt.err.Error())
			}
		})
	}
}

func TestNonConvergenceError(t *testing.T) {
	t.Parallel()
	err := NonConvergenceError{Iterations: 64}
	want := "no convergence after 64 mediant iterations"
	if err.Error() != want {
		t.Errorf("expected %q, got %q", want, err.Error())
	}
}

func TestSearchError(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name        string
		cause       error
		expectedMsg string
		checkIs     error
		checkUnwrap bool
	}{
		{
			name:        "Error returns cause message",
			cause:       DivisionByZeroError{},
			expectedMsg: "division by zero: denominator cannot be zero (numerator 0)",
		},
		{
			name:        "Unwrap returns cause",
			cause:       errors.New("original error"),
			expectedMsg: "original error",
			checkUnwrap: true,
		},
		{
			name:        "errors.Is works with wrapped error",
			cause:       context.Canceled,
			expectedMsg: "context canceled",
			checkIs:     context.Canceled,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			err := SearchError{Cause: tt.cause}
			if err.Error() != tt.expectedMsg {
				t.Errorf("expected %q, got %q", tt.expectedMsg, err.Error())
			}
			if tt.checkUnwrap && !errors.Is(err, tt.cause) {
				t.Error("expected errors.Is to find the cause through Unwrap")
			}
			if tt.checkIs != nil && !errors.Is(err, tt.checkIs) {
				t.Errorf("expected errors.Is(err, %v) to be true", tt.checkIs)
			}
		})
	}
}

func TestWrapError(t *testing.T) {
	t.Parallel()

	t.Run("wraps non-nil error", func(t *testing.T) {
		t.Parallel()
		base := errors.New("boom")
		wrapped := WrapError(base, "during step %d", 3)
		if wrapped.Error() != "during step 3: boom" {
			t.Errorf("unexpected message: %q", wrapped.Error())
		}
		if !errors.Is(wrapped, base) {
			t.Error("wrapped error should match base via errors.Is")
		}
	})

	t.Run("nil error stays nil", func(t *testing.T) {
		t.Parallel()
		if WrapError(nil, "context") != nil {
			t.Error("WrapError(nil, ...) should return nil")
		}
	})
}

func TestIsContextError(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"canceled", context.Canceled, true},
		{"deadline exceeded", context.DeadlineExceeded, true},
		{"wrapped canceled", WrapError(context.Canceled, "search aborted"), true},
		{"other error", errors.New("boom"), false},
		{"nil", nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := IsContextError(tt.err); got != tt.want {
				t.Errorf("IsContextError(%v) = %v, want %v", tt.err, got, tt.want)
			}
		})
	}
}

func TestExitCodeFor(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil is success", nil, ExitSuccess},
		{"input error", NewInputError("number", "must be finite"), ExitErrorInvalidInput},
		{"overflow", OverflowError{}, ExitErrorOverflow},
		{"non-convergence", NonConvergenceError{Iterations: 64}, ExitErrorNonConvergence},
		{"config", NewConfigError("bad flag"), ExitErrorConfig},
		{"canceled", context.Canceled, ExitErrorCanceled},
		{"wrapped input error", SearchError{Cause: NewInputError("number", "NaN")}, ExitErrorInvalidInput},
		{"generic", errors.New("boom"), ExitErrorGeneric},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := ExitCodeFor(tt.err); got != tt.want {
				t.Errorf("ExitCodeFor(%v) = %d, want %d", tt.err, got, tt.want)
			}
		})
	}
}
