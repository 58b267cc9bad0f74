package jira

import (
	"errors"
	"fmt"
)

// ErrNoCreator is returned by Create when the builder has no remote collaborator.
var ErrNoCreator = errors.New("no remote issue creator configured")

// ValidationError reports a required field that was empty at create time.
// Callers must fix their input; retrying does not help.
type ValidationError struct {
	Field string
}

// Error implements the error interface
func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s is required to create an issue", e.Field)
}

// NotSupportedError reports an operation the remote service cannot perform.
// The limitation is permanent.
type NotSupportedError struct {
	Operation string
}

// Error implements the error interface
func (e *NotSupportedError) Error() string {
	return fmt.Sprintf("%s is not supported by the remote service", e.Operation)
}

// TransportError represents a failure reported by the remote issue service
type TransportError struct {
	StatusCode  int
	Message     string
	OriginalErr error
}

// Error implements the error interface
func (e *TransportError) Error() string {
	switch {
	case e.StatusCode != 0 && e.OriginalErr != nil:
		return fmt.Sprintf("jira transport error [%d]: %s (original: %v)", e.StatusCode, e.Message, e.OriginalErr)
	case e.StatusCode != 0:
		return fmt.Sprintf("jira transport error [%d]: %s", e.StatusCode, e.Message)
	case e.OriginalErr != nil:
		return fmt.Sprintf("jira transport error: %s (original: %v)", e.Message, e.OriginalErr)
	default:
		return fmt.Sprintf("jira transport error: %s", e.Message)
	}
}

// Unwrap returns the original error
func (e *TransportError) Unwrap() error {
	return e.OriginalErr
}

// IsValidationError checks if the error is a validation error
func IsValidationError(err error) bool {
	var vErr *ValidationError
	return errors.As(err, &vErr)
}

// IsNotSupportedError checks if the error is a not-supported error
func IsNotSupportedError(err error) bool {
	var nsErr *NotSupportedError
	return errors.As(err, &nsErr)
}

// IsTransportError checks if the error is a transport error
func IsTransportError(err error) bool {
	var tErr *TransportError
	return errors.As(err, &tErr)
}
