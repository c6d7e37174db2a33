package domain

import (
	"errors"
	"fmt"
)

// ErrForbidden is returned by capability checks when the caller does not own
// the resource and is not an admin.
var ErrForbidden = errors.New("forbidden")

// ValidationError indicates malformed or logically inconsistent input.
// No state is mutated when one is returned.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string { return e.Msg }

func NewValidationError(format string, args ...any) error {
	return &ValidationError{Msg: fmt.Sprintf(format, args...)}
}

// ConflictError indicates a uniqueness or interval-overlap violation.
type ConflictError struct {
	Msg string
}

func (e *ConflictError) Error() string { return e.Msg }

func NewConflictError(format string, args ...any) error {
	return &ConflictError{Msg: fmt.Sprintf(format, args...)}
}

// InvalidTransitionError indicates a state-machine violation, e.g. paying an
// already-paid invoice or terminating a pending lease.
type InvalidTransitionError struct {
	Msg string
}

func (e *InvalidTransitionError) Error() string { return e.Msg }

func NewInvalidTransitionError(format string, args ...any) error {
	return &InvalidTransitionError{Msg: fmt.Sprintf(format, args...)}
}

// NotFoundError indicates a referenced entity does not exist.
type NotFoundError struct {
	Entity string
	ID     string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %s not found", e.Entity, e.ID)
}

func NewNotFoundError(entity, id string) error {
	return &NotFoundError{Entity: entity, ID: id}
}
