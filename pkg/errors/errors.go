package errors

import (
	"errors"
	"fmt"
)

// Domain error types for request handling

var (
	// ErrInvalidInput indicates invalid input parameters
	ErrInvalidInput = errors.New("invalid input")

	// ErrInternal indicates an internal server error
	ErrInternal = errors.New("internal error")

	// ErrUnavailable indicates a service is unavailable
	ErrUnavailable = errors.New("service unavailable")
)

// Agent and backend errors

var (
	// ErrBackend indicates a completion or search backend call failed
	// (network failure, non-success status, or a request that could not
	// be constructed)
	ErrBackend = errors.New("backend request failed")

	// ErrEmptyCompletion indicates the completion backend returned no
	// usable text for a stage
	ErrEmptyCompletion = errors.New("empty completion")

	// ErrSerialization indicates a payload could not be encoded or decoded
	ErrSerialization = errors.New("serialization failed")

	// ErrUnknownAgent indicates an agent name that is not registered
	ErrUnknownAgent = errors.New("unknown agent")
)

// StageError wraps a pipeline stage failure with the agent that produced it
type StageError struct {
	Agent string
	Err   error
}

// Error implements the error interface
func (e *StageError) Error() string {
	return fmt.Sprintf("agent %s: %v", e.Agent, e.Err)
}

// Unwrap returns the wrapped error
func (e *StageError) Unwrap() error {
	return e.Err
}

// NewStageError creates a new stage error
func NewStageError(agent string, err error) *StageError {
	return &StageError{Agent: agent, Err: err}
}

// Helper functions

// Is checks if err is or wraps target
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's chain that matches target type
func As(err error, target interface{}) bool {
	return errors.As(err, target)
}

// Wrap wraps an error with context
func Wrap(err error, message string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", message, err)
}

// Wrapf wraps an error with formatted context
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), err)
}

func New(message string) error {
	return errors.New(message)
}

func Newf(format string, args ...interface{}) error {
	return fmt.Errorf(format, args...)
}
