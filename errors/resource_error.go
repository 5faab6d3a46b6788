package errors

import (
	"fmt"
	"strings"

	"github.com/mitchellh/go-wordwrap"
)

// ResourceNotFoundError is returned when a config data resource could not be
// found at the location it was resolved to
type ResourceNotFoundError struct {
	// Resource is a description of the missing resource
	Resource string
	// Reference describes the request that produced the resource, it is empty
	// when the resource was opened directly
	Reference string
	// Cause is the underlying error, if any
	Cause error
}

func NewResourceNotFoundError(resource, reference string, cause error) *ResourceNotFoundError {
	return &ResourceNotFoundError{
		Resource:  resource,
		Reference: reference,
		Cause:     cause,
	}
}

func (e *ResourceNotFoundError) Error() string {
	msg := fmt.Sprintf("config data resource '%s'", e.Resource)
	if e.Reference != "" {
		msg += fmt.Sprintf(" via location '%s'", e.Reference)
	}

	msg += " cannot be found"

	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}

	return msg
}

func (e *ResourceNotFoundError) Unwrap() error {
	return e.Cause
}

// LocationNotFoundError is returned when a mandatory location, normally a
// directory, does not exist
type LocationNotFoundError struct {
	Location string
}

func NewLocationNotFoundError(location string) *LocationNotFoundError {
	return &LocationNotFoundError{Location: location}
}

func (e *LocationNotFoundError) Error() string {
	return fmt.Sprintf("config data location '%s' cannot be found", e.Location)
}

// UnsupportedExtensionError is returned when a file location has an extension
// that is not in the list of known config data extensions
type UnsupportedExtensionError struct {
	Location   string
	Extension  string
	Extensions []string
}

func NewUnsupportedExtensionError(location, extension string, known []string) *UnsupportedExtensionError {
	return &UnsupportedExtensionError{
		Location:   location,
		Extension:  extension,
		Extensions: known,
	}
}

func (e *UnsupportedExtensionError) Error() string {
	msg := fmt.Sprintf(
		"file extension '%s' of location '%s' is not known, supported extensions are: %s. If the location is meant to reference a directory, it must end in '/'",
		e.Extension,
		e.Location,
		strings.Join(e.Extensions, ", "),
	)

	return wordwrap.WrapString(msg, 120)
}
