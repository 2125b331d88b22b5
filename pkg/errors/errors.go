package errors

import (
	"errors"
	"fmt"
)

// ErrorCode represents a unique error code for stable testing
type ErrorCode string

// Error codes for different error categories
const (
	// General errors
	ErrUnknown      ErrorCode = "UNKNOWN"
	ErrInternal     ErrorCode = "INTERNAL"
	ErrInvalidInput ErrorCode = "INVALID_INPUT"

	// Action construction errors. A dialog without options, or with an
	// option that was not built by NewDialogOption, fails with this code.
	ErrInvalidConstruction ErrorCode = "INVALID_CONSTRUCTION"

	// Chain errors
	ErrUnknownAction ErrorCode = "UNKNOWN_ACTION"
	ErrEmptyChain    ErrorCode = "EMPTY_CHAIN"
	ErrEncode        ErrorCode = "ENCODE"
	ErrDecode        ErrorCode = "DECODE"

	// Configuration errors
	ErrConfigLoad  ErrorCode = "CONFIG_LOAD"
	ErrConfigParse ErrorCode = "CONFIG_PARSE"

	// Document errors
	ErrDocumentLoad  ErrorCode = "DOCUMENT_LOAD"
	ErrDocumentParse ErrorCode = "DOCUMENT_PARSE"

	// FileSystem errors
	ErrFileWrite ErrorCode = "FILE_WRITE"
)

// ActionqError represents a structured error with code and details
type ActionqError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *ActionqError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *ActionqError) Unwrap() error {
	return e.Wrapped
}

// Is implements errors.Is interface
func (e *ActionqError) Is(target error) bool {
	var targetErr *ActionqError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new ActionqError with the given code and message
func New(code ErrorCode, message string) *ActionqError {
	return &ActionqError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new ActionqError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *ActionqError {
	return &ActionqError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with an ActionqError
func Wrap(err error, code ErrorCode, message string) *ActionqError {
	if err == nil {
		return nil
	}
	return &ActionqError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *ActionqError {
	if err == nil {
		return nil
	}
	return &ActionqError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// WithDetail adds a detail to the error
func (e *ActionqError) WithDetail(key string, value interface{}) *ActionqError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// WithDetails adds multiple details to the error
func (e *ActionqError) WithDetails(details map[string]interface{}) *ActionqError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	for k, v := range details {
		e.Details[k] = v
	}
	return e
}

// IsErrorCode checks if an error has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	var aqErr *ActionqError
	if errors.As(err, &aqErr) {
		return aqErr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not an ActionqError
func GetErrorCode(err error) ErrorCode {
	var aqErr *ActionqError
	if errors.As(err, &aqErr) {
		return aqErr.Code
	}
	return ErrUnknown
}

// GetErrorDetails returns the details from an error, or nil if not an ActionqError
func GetErrorDetails(err error) map[string]interface{} {
	var aqErr *ActionqError
	if errors.As(err, &aqErr) {
		return aqErr.Details
	}
	return nil
}
