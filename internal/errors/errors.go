// Package errors is the single import for error handling in this module.
// Inspection (Is, As, Unwrap) passes through the standard library so sentinel
// comparisons behave as usual, while construction and annotation go through
// pkg/errors so every error carries a stack trace from where it was raised.
package errors

import (
	stderrors "errors"

	pkgerrors "github.com/pkg/errors"
)

// New returns an error with the given text and a stack trace.
func New(text string) error {
	return pkgerrors.New(text)
}

// Is reports whether err or any error it wraps matches target.
func Is(err, target error) bool {
	return stderrors.Is(err, target)
}

// As finds the first error in err's chain assignable to target.
func As(err error, target any) bool {
	return stderrors.As(err, target)
}

// Unwrap returns the next error in err's chain, or nil.
func Unwrap(err error) error {
	return stderrors.Unwrap(err)
}

// Wrap annotates err with message and a stack trace. Returns nil if err is nil.
func Wrap(err error, message string) error {
	return pkgerrors.Wrap(err, message)
}

// Wrapf is Wrap with a format specifier.
func Wrapf(err error, format string, args ...any) error {
	return pkgerrors.Wrapf(err, format, args...)
}

// WithStack attaches a stack trace to err without changing its message.
// Used at boundaries where the error text is already descriptive.
func WithStack(err error) error {
	return pkgerrors.WithStack(err)
}
