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
	ErrUnknown       ErrorCode = "UNKNOWN"
	ErrInternal      ErrorCode = "INTERNAL"
	ErrInvalidInput  ErrorCode = "INVALID_INPUT"
	ErrNotFound      ErrorCode = "NOT_FOUND"
	ErrAlreadyExists ErrorCode = "ALREADY_EXISTS"
	ErrFileAccess    ErrorCode = "FILE_ACCESS"

	// Configuration errors
	ErrConfigLoad    ErrorCode = "CONFIG_LOAD"
	ErrConfigParse   ErrorCode = "CONFIG_PARSE"
	ErrConfigInvalid ErrorCode = "CONFIG_INVALID"

	// Metadata errors
	ErrMetadataSourceMissing ErrorCode = "METADATA_SOURCE_MISSING"
	ErrMetadataSourceLocked  ErrorCode = "METADATA_SOURCE_LOCKED"
	ErrMetadataParse         ErrorCode = "METADATA_PARSE"

	// Link tree errors
	ErrLinkCreate ErrorCode = "LINK_CREATE"
)

// LinkfarmError represents a structured error with code and details
type LinkfarmError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *LinkfarmError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *LinkfarmError) Unwrap() error {
	return e.Wrapped
}

// Is implements errors.Is interface
func (e *LinkfarmError) Is(target error) bool {
	var targetErr *LinkfarmError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new LinkfarmError with the given code and message
func New(code ErrorCode, message string) *LinkfarmError {
	return &LinkfarmError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new LinkfarmError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *LinkfarmError {
	return &LinkfarmError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with a LinkfarmError
func Wrap(err error, code ErrorCode, message string) *LinkfarmError {
	if err == nil {
		return nil
	}
	return &LinkfarmError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *LinkfarmError {
	if err == nil {
		return nil
	}
	return &LinkfarmError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// WithDetail adds a detail to the error
func (e *LinkfarmError) WithDetail(key string, value interface{}) *LinkfarmError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// WithDetails adds multiple details to the error
func (e *LinkfarmError) WithDetails(details map[string]interface{}) *LinkfarmError {
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
	var lfErr *LinkfarmError
	if errors.As(err, &lfErr) {
		return lfErr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not a LinkfarmError
func GetErrorCode(err error) ErrorCode {
	var lfErr *LinkfarmError
	if errors.As(err, &lfErr) {
		return lfErr.Code
	}
	return ErrUnknown
}

// GetErrorDetails returns the details from an error, or nil if not a LinkfarmError
func GetErrorDetails(err error) map[string]interface{} {
	var lfErr *LinkfarmError
	if errors.As(err, &lfErr) {
		return lfErr.Details
	}
	return nil
}
