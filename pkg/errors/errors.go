// Package errors carries apigraph's coded errors. Every failure surfaced by
// the library packages is an [*Error] whose [Code] callers can branch on with
// [Is].
//
//	_, err := d.Decompose("Order")
//	if errors.Is(err, errors.ErrCodeTypeNotFound) {
//		// the facts document has no such type
//	}
package errors

import (
	"errors"
	"fmt"
)

// Code represents a machine-readable error code.
type Code string

const (
	ErrCodeInvalidInput  Code = "INVALID_INPUT"  // bad names or flags
	ErrCodeInvalidConfig Code = "INVALID_CONFIG" // apigraph.toml
	ErrCodeInvalidSchema Code = "INVALID_SCHEMA" // facts and graph documents
	ErrCodeInvalidFormat Code = "INVALID_FORMAT" // unsupported render format

	ErrCodeTypeNotFound Code = "TYPE_NOT_FOUND"
	ErrCodeFileNotFound Code = "FILE_NOT_FOUND"

	ErrCodeInternal Code = "INTERNAL_ERROR"
)

// Error is a coded error with an optional cause.
type Error struct {
	Code    Code
	Message string
	Cause   error
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *Error) Unwrap() error { return e.Cause }

// New returns an Error with a formatted message.
func New(code Code, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}

// Wrap returns an Error with cause attached.
func Wrap(code Code, cause error, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Cause:   cause,
	}
}

// Is reports whether the first *Error in err's chain carries code.
func Is(err error, code Code) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Code == code
	}
	return false
}

// GetCode returns the code of the first *Error in err's chain, or "".
func GetCode(err error) Code {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ""
}
