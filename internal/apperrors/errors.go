package apperrors

import (
	"errors"
	"fmt"
)

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrConsistency indicates that a referenced entity is missing from the supplied context
// or belongs to a different parent.
var ErrConsistency = errors.New("consistency error")

// ErrUnauthorized indicates missing or invalid credentials.
var ErrUnauthorized = errors.New("unauthorized")

// ErrForbidden indicates the caller is authenticated but not allowed to act.
var ErrForbidden = errors.New("forbidden")

// FieldError describes a problem with a single input field.
// It unwraps to its Kind so callers can match with errors.Is.
type FieldError struct {
	Kind    error
	Field   string
	Message string
}

func (e *FieldError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("%s: %s", e.Kind, e.Message)
	}
	return fmt.Sprintf("%s: %s %s", e.Kind, e.Field, e.Message)
}

func (e *FieldError) Unwrap() error {
	return e.Kind
}

// NewValidationError builds a FieldError of kind ErrValidation.
func NewValidationError(field, message string) error {
	return &FieldError{Kind: ErrValidation, Field: field, Message: message}
}

// NewConsistencyError builds a FieldError of kind ErrConsistency.
func NewConsistencyError(field, message string) error {
	return &FieldError{Kind: ErrConsistency, Field: field, Message: message}
}

// NewNotFoundError wraps ErrNotFound with the name and key of the missing entity.
func NewNotFoundError(entity string, key any) error {
	return fmt.Errorf("%w: %s %v", ErrNotFound, entity, key)
}
