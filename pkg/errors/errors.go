package errors

import (
	"fmt"
)

// ParseError represents a theme document decoding failure with optional line metadata.
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

// ValidationError captures a structural problem with a theme or configuration value.
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

// StorageError reports a failed read, write or delete against a storage slot.
type StorageError struct {
	Op  string
	Key string
	Err error
}

// NewStorageError constructs a StorageError for the given operation and key.
func NewStorageError(op, key string, err error) error {
	return &StorageError{Op: op, Key: key, Err: err}
}

func (e *StorageError) Error() string {
	if e == nil {
		return ""
	}
	if e.Key != "" {
		return fmt.Sprintf("storage error: %s %q: %v", e.Op, e.Key, e.Err)
	}
	return fmt.Sprintf("storage error: %s: %v", e.Op, e.Err)
}

// Unwrap exposes the root error.
func (e *StorageError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// MisuseError signals a wiring bug in the calling program, such as reading the
// theme provider from a context that never had one attached.
type MisuseError struct {
	Accessor string
	Message  string
}

// NewMisuseError constructs a MisuseError for the named accessor.
func NewMisuseError(accessor, message string) error {
	return &MisuseError{Accessor: accessor, Message: message}
}

func (e *MisuseError) Error() string {
	if e == nil {
		return ""
	}
	if e.Accessor != "" {
		return fmt.Sprintf("misuse [%s]: %s", e.Accessor, e.Message)
	}
	return fmt.Sprintf("misuse: %s", e.Message)
}
