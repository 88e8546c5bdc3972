package club

import "fmt"

// The service surfaces three kinds of domain errors. Collaborators (CLI, web
// handlers) only ever need to distinguish these with errors.As.

// ValidationError reports malformed, missing or out-of-range input.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string { return e.Msg }

// validationf builds a ValidationError from a format string.
func validationf(format string, args ...any) error {
	return &ValidationError{Msg: fmt.Sprintf(format, args...)}
}

// NotFoundError reports an id absent from its target collection, or a
// reference to a non-existent foreign entity.
type NotFoundError struct {
	Kind string // entity kind, e.g. "player"
	ID   int
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s with id %d not found", e.Kind, e.ID)
}

func notFound(kind string, id int) error {
	return &NotFoundError{Kind: kind, ID: id}
}

// DecodeError reports a persisted record that fails to parse into a typed
// entity. It is an integrity fault of the data file, not recoverable locally.
type DecodeError struct {
	Field string
	Cause error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("cannot decode %s: %v", e.Field, e.Cause)
}

func (e *DecodeError) Unwrap() error { return e.Cause }
