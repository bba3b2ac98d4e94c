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
	ErrNotFound     ErrorCode = "NOT_FOUND"

	// Configuration errors
	ErrConfigLoad  ErrorCode = "CONFIG_LOAD"
	ErrConfigParse ErrorCode = "CONFIG_PARSE"
	ErrConfigValid ErrorCode = "CONFIG_INVALID"

	// External query errors
	ErrQueryFailed   ErrorCode = "QUERY_FAILED"
	ErrQueryTimedOut ErrorCode = "QUERY_TIMED_OUT"

	// Inventory errors, absorbed per item
	ErrResolutionFailed  ErrorCode = "RESOLUTION_FAILED"
	ErrEnumerationFailed ErrorCode = "ENUMERATION_FAILED"

	// FileSystem errors
	ErrFileNotFound ErrorCode = "FILE_NOT_FOUND"
	ErrFileAccess   ErrorCode = "FILE_ACCESS"
)

// RemediationHint is appended to feature query failures shown to users.
const RemediationHint = "try restarting your computer. If the error persists read the KB957310 article."

// ResidueError represents a structured error with code and details
type ResidueError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *ResidueError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *ResidueError) Unwrap() error {
	return e.Wrapped
}

// Is implements errors.Is interface
func (e *ResidueError) Is(target error) bool {
	var targetErr *ResidueError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new ResidueError with the given code and message
func New(code ErrorCode, message string) *ResidueError {
	return &ResidueError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new ResidueError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *ResidueError {
	return &ResidueError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with a ResidueError
func Wrap(err error, code ErrorCode, message string) *ResidueError {
	if err == nil {
		return nil
	}
	return &ResidueError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *ResidueError {
	if err == nil {
		return nil
	}
	return &ResidueError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// WithDetail adds a detail to the error
func (e *ResidueError) WithDetail(key string, value interface{}) *ResidueError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// IsErrorCode checks if an error has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	var residueErr *ResidueError
	if errors.As(err, &residueErr) {
		return residueErr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not a ResidueError
func GetErrorCode(err error) ErrorCode {
	var residueErr *ResidueError
	if errors.As(err, &residueErr) {
		return residueErr.Code
	}
	return ErrUnknown
}

// GetErrorDetails returns the details from an error, or nil if not a ResidueError
func GetErrorDetails(err error) map[string]interface{} {
	var residueErr *ResidueError
	if errors.As(err, &residueErr) {
		return residueErr.Details
	}
	return nil
}
