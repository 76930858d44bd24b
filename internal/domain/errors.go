package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors for common conditions
var (
	ErrInvalidPage = errors.New("invalid page")
	ErrNotFound    = errors.New("not found")
)

// ValidationError represents a page declaration failure with details
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalidPage
}
