package core

import "github.com/pkg/errors"

// FieldError is used to indicate an error with a specific struct field.
type FieldError struct {
	Field string
	Error string
}

type ValidationError struct {
	Err    error
	Fields []FieldError
}

func NewValidationError(err error, flds ...FieldError) error {
	return &ValidationError{err, flds}
}

func (err ValidationError) Error() string {
	if err.Err == nil {
		return "invalid data"
	}
	return err.Err.Error()
}

// NotFoundError is returned by repositories when no row matches the requested identifier.
type NotFoundError struct {
	Entity string
}

func NewNotFoundError(entity string) error {
	return &NotFoundError{Entity: entity}
}

func (err NotFoundError) Error() string {
	return err.Entity + " not found"
}

// IsNotFound reports whether the cause of err is a *NotFoundError.
func IsNotFound(err error) bool {
	_, ok := errors.Cause(err).(*NotFoundError)
	return ok
}

type shutdown struct {
	message string
}

func NewShutdownError(msg string) error {
	return &shutdown{message: msg}
}

func (s shutdown) Error() string {
	return s.message
}

func IsShutdown(err error) bool {
	_, ok := errors.Cause(err).(*shutdown)
	return ok
}
