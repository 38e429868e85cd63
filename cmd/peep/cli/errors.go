// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package cli

import "fmt"

// ErrorCategory classifies command errors.
type ErrorCategory string

const (
	// CategoryValidation indicates bad input: unknown flags, a missing
	// or malformed tty argument, an invalid config value.
	CategoryValidation ErrorCategory = "validation"

	// CategoryInternal indicates a runtime failure: a device that cannot
	// be opened or read, a broken output stream.
	CategoryInternal ErrorCategory = "internal"
)

// CommandError is a categorised error. It wraps the underlying error so
// errors.Is and errors.As see the full chain.
type CommandError struct {
	Category ErrorCategory
	Err      error

	// Hint is an optional suggestion printed after the error.
	Hint string
}

func (e *CommandError) Error() string { return e.Err.Error() }

func (e *CommandError) Unwrap() error { return e.Err }

// WithHint attaches a suggestion for the user and returns e.
func (e *CommandError) WithHint(hint string) *CommandError {
	e.Hint = hint
	return e
}

// Validation creates a validation error: the caller provided bad input.
func Validation(format string, args ...any) *CommandError {
	return &CommandError{Category: CategoryValidation, Err: fmt.Errorf(format, args...)}
}

// Internal creates an internal error: an I/O or runtime failure.
func Internal(format string, args ...any) *CommandError {
	return &CommandError{Category: CategoryInternal, Err: fmt.Errorf(format, args...)}
}

// ExitError signals a non-zero exit code without printing an extra
// error message. The command is expected to have written its own
// output already (usage text, for example).
type ExitError struct {
	Code int
}

func (e *ExitError) Error() string {
	return fmt.Sprintf("exit code %d", e.Code)
}

// ExitCode returns the exit code. main checks for this interface on
// returned errors to distinguish a handled exit from an error to print.
func (e *ExitError) ExitCode() int {
	return e.Code
}
