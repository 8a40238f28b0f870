package question

import (
	"fmt"

	"github.com/hossam20182020-ops/LLM-Based-Interview-Prep-Platform-prod/internal/db/repository"
)

// ErrNotFound reports that the addressed question or set does not exist.
var ErrNotFound = repository.ErrNotFound

// ValidationError describes malformed or out-of-range input. Operations that
// return it have no side effects.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Message)
}

func invalid(field, format string, args ...interface{}) *ValidationError {
	return &ValidationError{Field: field, Message: fmt.Sprintf(format, args...)}
}
