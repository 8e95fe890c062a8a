// Package config provides the edit plan for pbxkit. It holds the compiled-in
// defaults, loads optional YAML plan files on top of them, applies
// environment overrides, and validates the result.
package config

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for plan operations.
var (
	// ErrPlanNotFound indicates an explicitly requested plan file does not exist.
	ErrPlanNotFound = errors.New("config: plan file not found")

	// ErrInvalidPlan indicates the plan is invalid.
	ErrInvalidPlan = errors.New("config: invalid plan")

	// ErrInvalidYAML indicates invalid YAML syntax in a plan file.
	ErrInvalidYAML = errors.New("config: invalid YAML syntax")

	// ErrInvalidAnchor indicates an anchor pattern that does not compile.
	ErrInvalidAnchor = errors.New("config: invalid anchor pattern")

	// ErrDuplicateMapping indicates two mapping entries share the same source.
	ErrDuplicateMapping = errors.New("config: duplicate mapping source")
)

// ValidationError represents a single validation error with field context.
type ValidationError struct {
	Field   string
	Message string
	Value   any
	Wrapped error // underlying sentinel error for errors.Is support
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	if e.Value != nil {
		return fmt.Sprintf("validation error: field %q: %s (got: %v)", e.Field, e.Message, e.Value)
	}
	return fmt.Sprintf("validation error: field %q: %s", e.Field, e.Message)
}

// Unwrap returns the underlying sentinel error.
func (e *ValidationError) Unwrap() error {
	return e.Wrapped
}

// ValidationErrors is a collection of validation errors.
type ValidationErrors struct {
	Errors []ValidationError
}

// Error implements the error interface.
func (e *ValidationErrors) Error() string {
	if len(e.Errors) == 0 {
		return "validation: no errors"
	}
	msgs := make([]string, len(e.Errors))
	for i, err := range e.Errors {
		msgs[i] = err.Error()
	}
	return fmt.Sprintf("validation failed with %d error(s): %s", len(e.Errors), strings.Join(msgs, "; "))
}

// Is supports errors.Is by checking contained validation errors against the target.
func (e *ValidationErrors) Is(target error) bool {
	if target == ErrInvalidPlan {
		return true
	}
	for _, ve := range e.Errors {
		if ve.Wrapped != nil && errors.Is(ve.Wrapped, target) {
			return true
		}
	}
	return false
}
