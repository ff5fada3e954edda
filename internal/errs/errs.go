// Package errs holds the error taxonomy shared by services and controllers.
//
// Every error type unwraps to a sentinel (ErrValidation, ErrNotFound, ...)
// so callers classify failures with errors.Is and extract details with
// errors.As.
package errs

import (
	"errors"
	"fmt"
)

var (
	ErrValidation        = errors.New("validation failed")
	ErrNotFound          = errors.New("not found")
	ErrForbidden         = errors.New("forbidden")
	ErrConflict          = errors.New("conflict")
	ErrTransactionFailed = errors.New("transaction failed")
)

// ValidationError reports missing or malformed input for a single field.
type ValidationError struct {
	Field   string
	Message string
}

func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s: %s", ErrValidation, e.Field, e.Message)
}

func (e *ValidationError) Unwrap() error {
	return ErrValidation
}

// NotFoundError reports a referenced entity that does not exist.
type NotFoundError struct {
	Entity string
	ID     any
}

func NewNotFoundError(entity string, id any) *NotFoundError {
	return &NotFoundError{Entity: entity, ID: id}
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found: %v", e.Entity, e.ID)
}

func (e *NotFoundError) Unwrap() error {
	return ErrNotFound
}

// ForbiddenError reports a failed role or ownership check.
type ForbiddenError struct {
	Operation string
	Reason    string
}

func NewForbiddenError(operation, reason string) *ForbiddenError {
	return &ForbiddenError{Operation: operation, Reason: reason}
}

func (e *ForbiddenError) Error() string {
	return fmt.Sprintf("%s: %s: %s", ErrForbidden, e.Operation, e.Reason)
}

func (e *ForbiddenError) Unwrap() error {
	return ErrForbidden
}

// ConflictError reports a uniqueness or concurrent-modification clash.
type ConflictError struct {
	Field   string
	Message string
}

func NewConflictError(field, message string) *ConflictError {
	return &ConflictError{Field: field, Message: message}
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("%s: %s: %s", ErrConflict, e.Field, e.Message)
}

func (e *ConflictError) Unwrap() error {
	return ErrConflict
}

// TransactionError reports a rolled back multi-write. Cause is kept for
// logging and is also reachable through errors.Is / errors.As.
type TransactionError struct {
	Operation string
	Cause     error
}

func NewTransactionError(operation string, cause error) *TransactionError {
	return &TransactionError{Operation: operation, Cause: cause}
}

func (e *TransactionError) Error() string {
	if e.Cause == nil {
		return fmt.Sprintf("%s: %s", ErrTransactionFailed, e.Operation)
	}
	return fmt.Sprintf("%s: %s (cause: %v)", ErrTransactionFailed, e.Operation, e.Cause)
}

func (e *TransactionError) Unwrap() []error {
	if e.Cause == nil {
		return []error{ErrTransactionFailed}
	}
	return []error{ErrTransactionFailed, e.Cause}
}
