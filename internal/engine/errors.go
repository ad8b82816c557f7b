package engine

import (
	"errors"
	"fmt"
	"strings"
)

// InputError reports a malformed record store detected at evaluation entry.
//
// Input errors include:
//   - A nil store
//   - A person or family with an empty identifier
//   - Two persons or two families sharing an identifier
//
// InputError is distinct from findings: it aborts the whole run.
type InputError struct {
	// Code identifies the error category.
	Code InputErrorCode

	// Message is a human-readable description.
	Message string

	// RecordIDs lists the offending identifiers, if any.
	RecordIDs []string
}

// InputErrorCode categorizes input errors.
type InputErrorCode string

const (
	// ErrCodeNilStore indicates no store was supplied.
	ErrCodeNilStore InputErrorCode = "NIL_STORE"

	// ErrCodeEmptyID indicates a record without an identifier.
	ErrCodeEmptyID InputErrorCode = "EMPTY_ID"

	// ErrCodeDuplicatePersonID indicates colliding person identifiers.
	ErrCodeDuplicatePersonID InputErrorCode = "DUPLICATE_PERSON_ID"

	// ErrCodeDuplicateFamilyID indicates colliding family identifiers.
	ErrCodeDuplicateFamilyID InputErrorCode = "DUPLICATE_FAMILY_ID"
)

// Error implements the error interface.
func (e *InputError) Error() string {
	if len(e.RecordIDs) > 0 {
		return fmt.Sprintf("invalid input: %s: %s (%s)", e.Code, e.Message, strings.Join(e.RecordIDs, ", "))
	}
	return fmt.Sprintf("invalid input: %s: %s", e.Code, e.Message)
}

// IsInvalidInput returns true if err is, or wraps, an *InputError.
func IsInvalidInput(err error) bool {
	var ie *InputError
	return errors.As(err, &ie)
}

// InputErrorCodeOf returns the code of a wrapped *InputError, or "".
func InputErrorCodeOf(err error) InputErrorCode {
	var ie *InputError
	if errors.As(err, &ie) {
		return ie.Code
	}
	return ""
}
