package entity

import (
	"errors"
	"fmt"
	"strings"
)

// ErrNotFound signals that no stored record matches the requested id or
// natural key. An empty list result is not an error.
var ErrNotFound = errors.New("record not found")

// ErrDuplicateKey is returned by repositories when the database rejects a
// write because of a unique-index violation. Services translate it into a
// UniqueConstraintError with the entity-specific field label.
var ErrDuplicateKey = errors.New("duplicate key")

// ErrCustomerNotFound signals that a booking references a customer id with
// no stored record.
var ErrCustomerNotFound = errors.New("customer not found")

// ErrFlightNotFound signals that a booking references a flight id with no
// stored record.
var ErrFlightNotFound = errors.New("flight not found")

// FieldError is a single field-level validation failure.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationErrors carries the full set of field-level failures for a
// candidate entity. Field checks are reported exhaustively, never truncated
// to the first violation.
type ValidationErrors []FieldError

func (e ValidationErrors) Error() string {
	parts := make([]string, 0, len(e))
	for _, fe := range e {
		parts = append(parts, fmt.Sprintf("%s: %s", fe.Field, fe.Message))
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// Fields returns the failures as a field -> message map for response bodies.
func (e ValidationErrors) Fields() map[string]string {
	m := make(map[string]string, len(e))
	for _, fe := range e {
		m[fe.Field] = fe.Message
	}
	return m
}

// UniqueConstraintError reports a natural-key collision with a different
// existing record.
type UniqueConstraintError struct {
	Field   string
	Message string
}

func (e *UniqueConstraintError) Error() string {
	return e.Message
}
