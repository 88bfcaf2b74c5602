package errors

import (
	"errors"
	"fmt"
)

// NotFoundError represents an error when an entity is not found
type NotFoundError struct {
	Entity  string
	Message string // replaces the default "<entity> not found" text when set
}

func (e *NotFoundError) Error() string {
	if e.Message != "" {
		return e.Message
	}
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

// AlreadyExistsError represents an error when an entity already exists
type AlreadyExistsError struct {
	Entity  string
	Context string // Additional context like "with this name"
}

func (e *AlreadyExistsError) Error() string {
	if e.Context != "" {
		return fmt.Sprintf("%s already exists %s", e.Entity, e.Context)
	}
	return fmt.Sprintf("%s already exists", e.Entity)
}

// Is enables errors.Is() comparison for AlreadyExistsError
func (e *AlreadyExistsError) Is(target error) bool {
	t, ok := target.(*AlreadyExistsError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
}

// ValidationError represents a validation error
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

// Entity Not Found Errors
var (
	ErrUserNotFound  = &NotFoundError{Entity: "user"}
	ErrFileNotFound  = &NotFoundError{Entity: "file"}
	ErrRouteNotFound = &NotFoundError{Entity: "route", Message: "nothing here"}
)

// Already Exists Errors
var (
	ErrOrganizationExists = &AlreadyExistsError{Entity: "organization", Context: "with this name"}
	ErrUserExists         = &AlreadyExistsError{Entity: "user", Context: "with this email"}
	ErrLinodeExists       = &AlreadyExistsError{Entity: "linode", Context: "with this name"}
)

// Request Errors
var (
	ErrInvalidPostData       = &ValidationError{Message: "invalid post data"}
	ErrUnknownOrganizationID = &ValidationError{Field: "org_id", Message: "organization does not exist"}
)

// Helper Functions

// IsNotFound checks if an error is a NotFoundError
func IsNotFound(err error) bool {
	var notFoundErr *NotFoundError
	return errors.As(err, &notFoundErr)
}

// IsAlreadyExists checks if an error is an AlreadyExistsError
func IsAlreadyExists(err error) bool {
	var existsErr *AlreadyExistsError
	return errors.As(err, &existsErr)
}

// IsValidation checks if an error is a ValidationError
func IsValidation(err error) bool {
	var validationErr *ValidationError
	return errors.As(err, &validationErr)
}

// IsBadRequest reports whether err is caused by the client: malformed input,
// a failed validation or a duplicate of an existing entity.
func IsBadRequest(err error) bool {
	return IsValidation(err) || IsAlreadyExists(err)
}

// NewValidationError creates a new ValidationError
func NewValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}
