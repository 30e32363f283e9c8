package app

import (
	"errors"
	"fmt"
)

// Application errors.
var (
	// ErrUsage indicates a command was invoked with bad arguments.
	ErrUsage = errors.New("usage error")

	// ErrUnknownCommand indicates the subcommand name was not recognized.
	ErrUnknownCommand = errors.New("unknown command")

	// ErrInvalidRemaps indicates one or more remap documents failed to load.
	ErrInvalidRemaps = errors.New("invalid remap documents")
)

// OperationError represents an error that occurred during a specific operation.
type OperationError struct {
	Op     string // Operation name (e.g., "check", "fmt", "resolve")
	Target string // Target of the operation (e.g., file path, chord)
	Err    error  // Underlying error
}

// NewOperationError creates a new OperationError.
func NewOperationError(op, target string, err error) *OperationError {
	return &OperationError{
		Op:     op,
		Target: target,
		Err:    err,
	}
}

func (e *OperationError) Error() string {
	if e == nil {
		return ""
	}

	msg := e.Op
	if e.Target != "" {
		msg = fmt.Sprintf("%s %s", e.Op, e.Target)
	}

	if e.Err != nil {
		msg = fmt.Sprintf("%s: %v", msg, e.Err)
	}

	return msg
}

func (e *OperationError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// ErrorList collects multiple errors.
// NOTE: ErrorList is NOT safe for concurrent use.
type ErrorList struct {
	errors []error
}

// NewErrorList creates a new ErrorList.
func NewErrorList() *ErrorList {
	return &ErrorList{
		errors: make([]error, 0),
	}
}

// Add adds an error to the list. Nil errors are ignored.
func (e *ErrorList) Add(err error) {
	if err != nil {
		e.errors = append(e.errors, err)
	}
}

// HasErrors returns true if there are any errors.
func (e *ErrorList) HasErrors() bool {
	return len(e.errors) > 0
}

// Len returns the number of errors.
func (e *ErrorList) Len() int {
	return len(e.errors)
}

// Errors returns a copy of the error slice.
func (e *ErrorList) Errors() []error {
	if e == nil || len(e.errors) == 0 {
		return nil
	}
	out := make([]error, len(e.errors))
	copy(out, e.errors)
	return out
}

// Error returns a combined error message.
func (e *ErrorList) Error() string {
	if e == nil || len(e.errors) == 0 {
		return ""
	}

	if len(e.errors) == 1 {
		return e.errors[0].Error()
	}

	return fmt.Sprintf("%d errors: first: %v", len(e.errors), e.errors[0])
}

// Unwrap exposes the collected errors to errors.Is and errors.As.
func (e *ErrorList) Unwrap() []error {
	return e.Errors()
}

// AsError returns nil if there are no errors, otherwise returns the ErrorList.
func (e *ErrorList) AsError() error {
	if !e.HasErrors() {
		return nil
	}
	return e
}
