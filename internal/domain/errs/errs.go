package errs

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound = errors.New("not found")
	ErrConflict = errors.New("conflict")
)

// ValidationError reports a rejected precondition before anything was written.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return "validation failed: " + e.Reason
	}
	return fmt.Sprintf("validation failed: %s %s", e.Field, e.Reason)
}

func Invalid(field, reason string) error { return &ValidationError{Field: field, Reason: reason} }

// NotFound builds a resource specific error that still matches ErrNotFound.
func NotFound(resource string) error { return fmt.Errorf("%s %w", resource, ErrNotFound) }

// Conflict builds a resource specific error that still matches ErrConflict.
func Conflict(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrConflict, fmt.Sprintf(format, args...))
}

func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
