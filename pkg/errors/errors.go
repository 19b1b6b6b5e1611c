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

	// Configuration errors
	ErrConfigLoad  ErrorCode = "CONFIG_LOAD"
	ErrConfigParse ErrorCode = "CONFIG_PARSE"

	// Profile errors
	ErrProfileStore  ErrorCode = "PROFILE_STORE"
	ErrProfileImport ErrorCode = "PROFILE_IMPORT"

	// Command errors
	ErrCommandRegister ErrorCode = "COMMAND_REGISTER"

	// FileSystem errors
	ErrFileAccess ErrorCode = "FILE_ACCESS"
	ErrFileCreate ErrorCode = "FILE_CREATE"
	ErrDirCreate  ErrorCode = "DIR_CREATE"
)

// ConfnameError represents a structured error with code and details
type ConfnameError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *ConfnameError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *ConfnameError) Unwrap() error {
	return e.Wrapped
}

// Is matches on error code so callers can compare against a bare New(code, "")
func (e *ConfnameError) Is(target error) bool {
	var targetErr *ConfnameError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new ConfnameError with the given code and message
func New(code ErrorCode, message string) *ConfnameError {
	return &ConfnameError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new ConfnameError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *ConfnameError {
	return &ConfnameError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error. A nil err yields a nil error.
func Wrap(err error, code ErrorCode, message string) error {
	if err == nil {
		return nil
	}
	return &ConfnameError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return &ConfnameError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// WithDetail adds a detail to the error
func (e *ConfnameError) WithDetail(key string, value interface{}) *ConfnameError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// IsErrorCode checks if an error has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	var cerr *ConfnameError
	if errors.As(err, &cerr) {
		return cerr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not a ConfnameError
func GetErrorCode(err error) ErrorCode {
	var cerr *ConfnameError
	if errors.As(err, &cerr) {
		return cerr.Code
	}
	return ErrUnknown
}

// GetErrorDetails returns the details from an error, or nil if not a ConfnameError
func GetErrorDetails(err error) map[string]interface{} {
	var cerr *ConfnameError
	if errors.As(err, &cerr) {
		return cerr.Details
	}
	return nil
}
