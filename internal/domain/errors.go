package domain

import (
	"errors"
	"fmt"
)

// ErrEmptyResponse is returned when the external model replies with no text.
var ErrEmptyResponse = errors.New("empty response from model")

// ErrTruncatedResponse marks a model reply too short to be a complete
// generation. Retried like any other external-call fault.
var ErrTruncatedResponse = errors.New("model response too short, likely truncated")

// ValidationError reports bad caller input. It is never retried and fails
// the whole run immediately.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return "invalid input: " + e.Reason
	}
	return fmt.Sprintf("invalid input: %s: %s", e.Field, e.Reason)
}

// IsValidationError reports whether err is (or wraps) a ValidationError.
func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// MalformedResponseError wraps a JSON parse failure together with the raw
// model text, for diagnostics.
type MalformedResponseError struct {
	Raw string
	Err error
}

func (e *MalformedResponseError) Error() string {
	return fmt.Sprintf("malformed model response: %v", e.Err)
}

func (e *MalformedResponseError) Unwrap() error { return e.Err }

// SchemaViolationError names the missing or out-of-range key in an
// otherwise parseable model response.
type SchemaViolationError struct {
	Key    string
	Reason string
}

func (e *SchemaViolationError) Error() string {
	return fmt.Sprintf("schema violation: %s: %s", e.Key, e.Reason)
}

// PersistenceError reports a failed store operation. Surfaced immediately,
// never retried.
type PersistenceError struct {
	Op  string
	Err error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("persistence: %s: %v", e.Op, e.Err)
}

func (e *PersistenceError) Unwrap() error { return e.Err }
