package errors

import (
	"errors"
	"fmt"
)

// ErrInvalidArgument is matched by every InvalidArgumentError using errors.Is
var ErrInvalidArgument = errors.New("invalid argument")

// InvalidArgumentError is returned when a constructor or function is called
// with an argument that can not be used, for example a nil value for a
// required field.
type InvalidArgumentError struct {
	// Argument is the name of the offending argument
	Argument string
	// Message is the full, user facing description of the problem
	Message string
}

// NewNotNullError creates an InvalidArgumentError for a required argument
// that was nil, the message has the form "'name' must not be null".
func NewNotNullError(argument string) *InvalidArgumentError {
	return &InvalidArgumentError{
		Argument: argument,
		Message:  fmt.Sprintf("'%s' must not be null", argument),
	}
}

// NewInvalidArgumentError creates an InvalidArgumentError with a custom message
func NewInvalidArgumentError(argument, message string) *InvalidArgumentError {
	return &InvalidArgumentError{
		Argument: argument,
		Message:  message,
	}
}

func (e *InvalidArgumentError) Error() string {
	return e.Message
}

// Is allows errors.Is(err, ErrInvalidArgument)
func (e *InvalidArgumentError) Is(target error) bool {
	return target == ErrInvalidArgument
}
