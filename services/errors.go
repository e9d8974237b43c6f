package services

import (
	"errors"
	"fmt"
)

// ErrDraftNotFound is returned when no wizard session exists for a draft ID.
var ErrDraftNotFound = errors.New("proposal draft not found")

// ValidationError is a step-blocking precondition or field validation
// failure. Handlers map it to HTTP 422; it is the only error class the
// wizard surfaces to the user as blocking.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// NewValidationError creates a field-level validation error.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

// IsValidationError reports whether err is a ValidationError, returning it.
func IsValidationError(err error) (*ValidationError, bool) {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve, true
	}
	return nil, false
}
