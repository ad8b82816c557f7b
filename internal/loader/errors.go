package loader

import (
	"errors"
	"fmt"
)

// LoadError reports a record file that could not be turned into a store.
type LoadError struct {
	// Path is the file being loaded, if known.
	Path string

	// Record is the identifier of the offending record, if any.
	Record string

	// Field is the offending field, if any.
	Field string

	// Err is the underlying cause.
	Err error
}

// Error implements the error interface.
func (e *LoadError) Error() string {
	msg := "load records"
	if e.Path != "" {
		msg += " from " + e.Path
	}
	if e.Record != "" {
		msg += fmt.Sprintf(": record %s", e.Record)
	}
	if e.Field != "" {
		msg += fmt.Sprintf(" field %s", e.Field)
	}
	return msg + ": " + e.Err.Error()
}

// Unwrap returns the underlying cause.
func (e *LoadError) Unwrap() error {
	return e.Err
}

// IsLoadError returns true if err is, or wraps, a *LoadError.
func IsLoadError(err error) bool {
	var le *LoadError
	return errors.As(err, &le)
}
