// Package errors provides the error taxonomy for medobs.
package errors

import (
	"errors"
	"fmt"
)

// Sentinel errors for common cases
var (
	ErrEmptyMessage  = errors.New("message is empty")
	ErrNoSelection   = errors.New("no model selected")
	ErrCycleInFlight = errors.New("a message is already being sent")
)

// ValidationError is returned when submitted text is empty after trimming.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	if e.Message == "" {
		return "please enter a message"
	}
	return fmt.Sprintf("invalid message: %s", e.Message)
}

// Is allows comparison with sentinel errors
func (e *ValidationError) Is(target error) bool {
	if target == ErrEmptyMessage {
		return true
	}
	_, ok := target.(*ValidationError)
	return ok
}

// NewValidationError creates a new ValidationError
func NewValidationError(message string) *ValidationError {
	return &ValidationError{Message: message}
}

// NoSelectionError is returned when a settings save is attempted without
// one of the enumerated model options chosen.
type NoSelectionError struct {
	// Value is the rejected input, if any.
	Value string
}

func (e *NoSelectionError) Error() string {
	if e.Value == "" {
		return "please select a model"
	}
	return fmt.Sprintf("please select a model: %q is not an available option", e.Value)
}

// Is allows comparison with sentinel errors
func (e *NoSelectionError) Is(target error) bool {
	if target == ErrNoSelection {
		return true
	}
	_, ok := target.(*NoSelectionError)
	return ok
}

// NewNoSelectionError creates a new NoSelectionError
func NewNoSelectionError(value string) *NoSelectionError {
	return &NoSelectionError{Value: value}
}

// IsValidationError reports whether err is, or wraps, a ValidationError.
func IsValidationError(err error) bool {
	return errors.Is(err, ErrEmptyMessage)
}

// IsNoSelectionError reports whether err is, or wraps, a NoSelectionError.
func IsNoSelectionError(err error) bool {
	return errors.Is(err, ErrNoSelection)
}
