package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors for errors.Is() checking. The HTTP layer maps these to
// status codes; the message carried by the concrete error type is the body
// the client sees.
var (
	// ErrValidation marks malformed or out-of-range input on the request
	// payload or path.
	ErrValidation = errors.New("validation error")

	// ErrReference marks a create/update whose body references a foreign
	// entity that does not exist. Distinct from ErrNotFound: the target of
	// the operation exists (or is being created), the reference does not.
	ErrReference = errors.New("reference error")

	// ErrNotFound marks an absent target resource (the entity the URL path
	// points at).
	ErrNotFound = errors.New("not found")

	// ErrConflict marks a uniqueness violation (duplicate Category name).
	ErrConflict = errors.New("conflict")
)

// ValidationError carries the single client-facing message for the first
// validation rule that failed. Validation is short-circuit: one violation,
// one message.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string { return e.Msg }

func (e *ValidationError) Unwrap() error { return ErrValidation }

// Validationf builds a *ValidationError with a formatted message.
func Validationf(format string, args ...any) error {
	return &ValidationError{Msg: fmt.Sprintf(format, args...)}
}

// ReferenceError carries the message identifying which foreign reference on
// the request body failed an existence check.
type ReferenceError struct {
	Msg string
}

func (e *ReferenceError) Error() string { return e.Msg }

func (e *ReferenceError) Unwrap() error { return ErrReference }

// Referencef builds a *ReferenceError with a formatted message.
func Referencef(format string, args ...any) error {
	return &ReferenceError{Msg: fmt.Sprintf(format, args...)}
}

// NotFoundError carries the message for an absent target resource.
type NotFoundError struct {
	Msg string
}

func (e *NotFoundError) Error() string { return e.Msg }

func (e *NotFoundError) Unwrap() error { return ErrNotFound }

// NotFoundf builds a *NotFoundError with a formatted message.
func NotFoundf(format string, args ...any) error {
	return &NotFoundError{Msg: fmt.Sprintf(format, args...)}
}

// ConflictError carries the message for a uniqueness violation.
type ConflictError struct {
	Msg string
}

func (e *ConflictError) Error() string { return e.Msg }

func (e *ConflictError) Unwrap() error { return ErrConflict }

// Conflictf builds a *ConflictError with a formatted message.
func Conflictf(format string, args ...any) error {
	return &ConflictError{Msg: fmt.Sprintf(format, args...)}
}
