package errors

import (
	"errors"
	"fmt"
)

// Kind identifies the error category exposed to API callers
type Kind string

const (
	KindNotFound   Kind = "not_found"
	KindValidation Kind = "validation"
	KindPermission Kind = "permission"
	KindConflict   Kind = "conflict"
	KindStorage    Kind = "storage"
)

// NotFoundError represents an error when an entity is not found
type NotFoundError struct {
	Entity string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found", e.Entity)
}

// Is enables errors.Is() comparison for NotFoundError
func (e *NotFoundError) Is(target error) bool {
	t, ok := target.(*NotFoundError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
}

// ValidationError represents malformed input or an illegal status transition
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// PermissionError represents an actor whose role or assignment does not
// satisfy the gate for the requested transition or action
type PermissionError struct {
	Message string
}

func (e *PermissionError) Error() string {
	return e.Message
}

// ConflictError represents a uniqueness violation such as a duplicate
// provider assignment
type ConflictError struct {
	Entity  string
	Context string
}

func (e *ConflictError) Error() string {
	if e.Context != "" {
		return fmt.Sprintf("%s already exists %s", e.Entity, e.Context)
	}
	return fmt.Sprintf("%s already exists", e.Entity)
}

// Is enables errors.Is() comparison for ConflictError
func (e *ConflictError) Is(target error) bool {
	t, ok := target.(*ConflictError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
}

// StorageError wraps an error returned by the persistence collaborator
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage failure: %s: %v", e.Op, e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}

// Entity Not Found Errors
var (
	ErrInterventionNotFound = &NotFoundError{Entity: "intervention"}
	ErrUserNotFound         = &NotFoundError{Entity: "user"}
	ErrTimeSlotNotFound     = &NotFoundError{Entity: "time slot"}
	ErrQuoteNotFound        = &NotFoundError{Entity: "quote"}
	ErrAssignmentNotFound   = &NotFoundError{Entity: "assignment"}
)

// Conflict Errors
var (
	ErrProviderAlreadyAssigned  = &ConflictError{Entity: "provider assignment", Context: "on this intervention"}
	ErrAssignmentExists         = &ConflictError{Entity: "assignment", Context: "for this user and role"}
	ErrAcceptedFinalQuoteExists = &ConflictError{Entity: "accepted final quote", Context: "for this intervention"}
)

// Business Rule Errors. Typed as ValidationError so they classify as
// expected domain failures, not storage ones.
var (
	ErrQuoteNotSent    = &ValidationError{Field: "status", Message: "quote is not in sent status"}
	ErrQuoteNotDraft   = &ValidationError{Field: "status", Message: "quote is not in draft status"}
	ErrRejectionReason = &ValidationError{Field: "reason", Message: "rejection reason is required"}
)

// Helper Functions

// IsNotFound checks if an error is a NotFoundError
func IsNotFound(err error) bool {
	var notFoundErr *NotFoundError
	return errors.As(err, &notFoundErr)
}

// IsValidation checks if an error is a ValidationError
func IsValidation(err error) bool {
	var validationErr *ValidationError
	return errors.As(err, &validationErr)
}

// IsPermission checks if an error is a PermissionError
func IsPermission(err error) bool {
	var permErr *PermissionError
	return errors.As(err, &permErr)
}

// IsConflict checks if an error is a ConflictError
func IsConflict(err error) bool {
	var conflictErr *ConflictError
	return errors.As(err, &conflictErr)
}

// IsStorage checks if an error is a StorageError
func IsStorage(err error) bool {
	var storageErr *StorageError
	return errors.As(err, &storageErr)
}

// KindOf classifies an error into the API-facing taxonomy.
// Unclassified errors are reported as storage failures rather than leaking
// collaborator-specific shapes.
func KindOf(err error) Kind {
	switch {
	case IsNotFound(err):
		return KindNotFound
	case IsValidation(err):
		return KindValidation
	case IsPermission(err):
		return KindPermission
	case IsConflict(err):
		return KindConflict
	default:
		return KindStorage
	}
}

// NewNotFoundError creates a new NotFoundError for a custom entity
func NewNotFoundError(entity string) error {
	return &NotFoundError{Entity: entity}
}

// NewValidationError creates a new ValidationError
func NewValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// NewPermissionError creates a new PermissionError
func NewPermissionError(message string) error {
	return &PermissionError{Message: message}
}

// NewConflictError creates a new ConflictError
func NewConflictError(entity, context string) error {
	return &ConflictError{Entity: entity, Context: context}
}

// NewStorageError wraps a persistence failure with the failed operation name
func NewStorageError(op string, err error) error {
	return &StorageError{Op: op, Err: err}
}
