package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrMapNotFound is returned when a map does not exist
	ErrMapNotFound = errors.New("map not found")
	// ErrZoneNotFound is returned when a zone does not exist
	ErrZoneNotFound = errors.New("zone not found")
	// ErrTicketNotFound is returned when a ticket does not exist
	ErrTicketNotFound = errors.New("ticket not found")
)

// ValidationError reports input that was rejected before any persistence call.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("validation failed: %s", e.Reason)
	}
	return fmt.Sprintf("validation failed on %s: %s", e.Field, e.Reason)
}

// NewValidationError creates a ValidationError for a single field.
func NewValidationError(field, reason string) *ValidationError {
	return &ValidationError{Field: field, Reason: reason}
}

// NotFoundError reports an operation that targeted a non-existent entity.
type NotFoundError struct {
	Resource string
	ID       string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %q not found", e.Resource, e.ID)
}

// ReferentialError reports a cross-entity invariant violation, such as binding
// a zone to a ticket that belongs to a different event.
type ReferentialError struct {
	Reason string
}

func (e *ReferentialError) Error() string {
	return fmt.Sprintf("referential violation: %s", e.Reason)
}

// PersistenceError wraps an error reported by the storage adapter.
type PersistenceError struct {
	Op  string
	Err error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("persistence failure during %s: %v", e.Op, e.Err)
}

func (e *PersistenceError) Unwrap() error {
	return e.Err
}

// IsValidation reports whether err is a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// IsNotFound reports whether err is a NotFoundError.
func IsNotFound(err error) bool {
	var nf *NotFoundError
	return errors.As(err, &nf)
}

// IsReferential reports whether err is a ReferentialError.
func IsReferential(err error) bool {
	var re *ReferentialError
	return errors.As(err, &re)
}

// IsPersistence reports whether err is a PersistenceError.
func IsPersistence(err error) bool {
	var pe *PersistenceError
	return errors.As(err, &pe)
}
