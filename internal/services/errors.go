package services

import "errors"

// Sentinel errors for lookups that require the target to exist.
var (
	ErrProductNotFound  = errors.New("product not found")
	ErrCategoryNotFound = errors.New("category not found")
)

// ValidationError reports caller-supplied data that fails a business rule.
// Handlers map it to a 400 response carrying the rule's message.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func newValidationError(message string) *ValidationError {
	return &ValidationError{Message: message}
}
