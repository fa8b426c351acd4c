package services

import (
	"errors"
	"fmt"
	"strings"

	"care-shift-api/internal/models"
)

// Define common service errors
var (
	ErrNotFound            = errors.New("resource not found")
	ErrForbidden           = errors.New("forbidden")
	ErrConflict            = errors.New("conflict") // e.g., duplicate application, state conflict
	ErrValidation          = errors.New("validation failed")
	ErrInvalidTransition   = errors.New("invalid status transition")
	ErrConcurrencyConflict = errors.New("record changed since it was read")
)

// FieldError describes one violated authoring rule, tagged with the field it
// applies to so the caller can highlight it.
type FieldError struct {
	Field   string `json:"field"`
	Rule    string `json:"rule"`
	Message string `json:"message"`
}

// ValidationErrors carries every violated field/rule at once; authoring never
// stops at the first failure.
type ValidationErrors []FieldError

func (ve ValidationErrors) Error() string {
	if len(ve) == 0 {
		return ErrValidation.Error()
	}
	parts := make([]string, 0, len(ve))
	for _, fe := range ve {
		parts = append(parts, fmt.Sprintf("%s: %s", fe.Field, fe.Message))
	}
	return fmt.Sprintf("validation failed: %s", strings.Join(parts, "; "))
}

func (ve ValidationErrors) Unwrap() error { return ErrValidation }

// TransitionError reports an attempted status change that the state machine
// does not permit, including the blocking current status.
type TransitionError struct {
	Current   models.ApplicationStatus
	Attempted models.ApplicationStatus
}

func (te *TransitionError) Error() string {
	return fmt.Sprintf("invalid status transition from %s to %s", te.Current, te.Attempted)
}

func (te *TransitionError) Unwrap() error { return ErrInvalidTransition }
