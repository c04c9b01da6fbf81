// Package errors provides the sentinel errors shared by every domain module.
// Domain packages wrap one of these sentinels so handlers can map a failure to a
// status code without knowing which stage produced it.
package errors

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidInput indicates caller-supplied data is malformed (bad token, bad ciphertext).
	ErrInvalidInput = errors.New("invalid input")

	// ErrNotFound indicates the requested route or resource does not exist.
	ErrNotFound = errors.New("not found")

	// ErrCanceled indicates the operation was abandoned because its context ended.
	ErrCanceled = errors.New("operation canceled")
)

// New creates a new error with the given message.
func New(message string) error {
	return errors.New(message)
}

// Wrap wraps err with message, keeping err in the chain. Returns nil when err is nil.
func Wrap(err error, message string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", message, err)
}

// Wrapf is Wrap with a format string.
func Wrapf(err error, format string, args ...any) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), err)
}

// Is reports whether any error in err's tree matches target.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's tree that matches target.
func As(err error, target any) bool {
	return errors.As(err, target)
}

// Join returns an error wrapping all non-nil errs.
func Join(errs ...error) error {
	return errors.Join(errs...)
}
