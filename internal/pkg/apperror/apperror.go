// Package apperror defines the domain error taxonomy shared by every
// ads domain. Handlers never inspect these types directly; the
// errorhandler package maps them to HTTP responses.
package apperror

import (
	"errors"
	"fmt"
)

// ValidationError reports a business rule violation on one field
type ValidationError struct {
	Entity string
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s.%s: %s", e.Entity, e.Field, e.Reason)
}

// Validation creates a validation error
func Validation(entity, field, reason string) error {
	return &ValidationError{Entity: entity, Field: field, Reason: reason}
}

// NotFoundError reports a missing entity
type NotFoundError struct {
	Entity string
	ID     string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %s not found", e.Entity, e.ID)
}

// NotFound creates a not found error
func NotFound(entity, id string) error {
	return &NotFoundError{Entity: entity, ID: id}
}

// InvalidTransitionError reports a rejected status transition
type InvalidTransitionError struct {
	Entity string
	ID     string
	From   string
	To     string
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("%s %s: cannot transition from %s to %s", e.Entity, e.ID, e.From, e.To)
}

// InvalidTransition creates an invalid transition error
func InvalidTransition(entity, id, from, to string) error {
	return &InvalidTransitionError{Entity: entity, ID: id, From: from, To: to}
}

// InvalidStateError reports an operation rejected by the entity's
// current state
type InvalidStateError struct {
	Entity string
	ID     string
	State  string
	Op     string
}

func (e *InvalidStateError) Error() string {
	return fmt.Sprintf("%s %s is %s: cannot %s", e.Entity, e.ID, e.State, e.Op)
}

// InvalidState creates an invalid state error
func InvalidState(entity, id, state, op string) error {
	return &InvalidStateError{Entity: entity, ID: id, State: state, Op: op}
}

// TransportError wraps a backing store failure. It marks the error as
// infrastructural rather than a business rule violation.
type TransportError struct {
	Op  string
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// Transport wraps err as a transport error. A nil err yields nil so call
// sites can wrap unconditionally.
func Transport(op string, err error) error {
	if err == nil {
		return nil
	}
	return &TransportError{Op: op, Err: err}
}

// IsValidation reports whether err is a validation error
func IsValidation(err error) bool {
	var e *ValidationError
	return errors.As(err, &e)
}

// IsNotFound reports whether err is a not found error
func IsNotFound(err error) bool {
	var e *NotFoundError
	return errors.As(err, &e)
}

// IsInvalidTransition reports whether err is an invalid transition error
func IsInvalidTransition(err error) bool {
	var e *InvalidTransitionError
	return errors.As(err, &e)
}

// IsInvalidState reports whether err is an invalid state error
func IsInvalidState(err error) bool {
	var e *InvalidStateError
	return errors.As(err, &e)
}

// IsTransport reports whether err is a transport error
func IsTransport(err error) bool {
	var e *TransportError
	return errors.As(err, &e)
}
