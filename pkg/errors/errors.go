package errors

import (
	stdErrors "errors"
	"fmt"
)

// ErrEmptyInput is returned when a render is requested with zero entries.
var ErrEmptyInput = stdErrors.New("empty input: no menu entries to render")

// ParseError represents a YAML or JSON parsing failure with optional line metadata.
type ParseError struct {
	Path    string
	Line    int
	Message string
	Err     error
}

// NewParseError constructs a ParseError.
func NewParseError(path string, line int, err error) error {
	message := ""
	if err != nil {
		message = err.Error()
	}
	return &ParseError{Path: path, Line: line, Message: message, Err: err}
}

func (e *ParseError) Error() string {
	if e == nil {
		return ""
	}

	if e.Line > 0 {
		return fmt.Sprintf("parse error: %s:%d: %s", e.Path, e.Line, e.Message)
	}
	return fmt.Sprintf("parse error: %s: %s", e.Path, e.Message)
}

// Unwrap exposes the underlying error.
func (e *ParseError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// ValidationError captures configuration validation issues.
type ValidationError struct {
	Field   string
	Message string
	Err     error
}

// NewValidationError constructs a ValidationError.
func NewValidationError(field, message string, err error) error {
	return &ValidationError{Field: field, Message: message, Err: err}
}

func (e *ValidationError) Error() string {
	if e == nil {
		return ""
	}
	if e.Field != "" {
		return fmt.Sprintf("validation error: %s: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// Unwrap exposes the underlying error.
func (e *ValidationError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// ResourceError reports a required resource, such as a font file, that could not be loaded.
type ResourceError struct {
	Path string
	Err  error
}

// NewResourceError constructs a ResourceError.
func NewResourceError(path string, err error) error {
	return &ResourceError{Path: path, Err: err}
}

func (e *ResourceError) Error() string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("resource error: %s: %v", e.Path, e.Err)
}

// Unwrap exposes the underlying error.
func (e *ResourceError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// EncodingError reports a failure while encoding or writing the output image.
type EncodingError struct {
	Path string
	Err  error
}

// NewEncodingError constructs an EncodingError. Path may be empty for in-memory encodes.
func NewEncodingError(path string, err error) error {
	return &EncodingError{Path: path, Err: err}
}

func (e *EncodingError) Error() string {
	if e == nil {
		return ""
	}
	if e.Path != "" {
		return fmt.Sprintf("encoding error: %s: %v", e.Path, e.Err)
	}
	return fmt.Sprintf("encoding error: %v", e.Err)
}

// Unwrap exposes the root error.
func (e *EncodingError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}
