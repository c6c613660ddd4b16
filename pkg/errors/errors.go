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

	// Path resolution errors
	ErrEmpty               ErrorCode = "EMPTY"
	ErrMultipleHomeSymbols ErrorCode = "MULTIPLE_HOME_SYMBOLS"
	ErrInvalidExpansion    ErrorCode = "INVALID_EXPANSION"
	ErrComponentNotFound   ErrorCode = "COMPONENT_NOT_FOUND"
	ErrParentNotFound      ErrorCode = "PARENT_NOT_FOUND"
	ErrFileNameNotFound    ErrorCode = "FILENAME_NOT_FOUND"
	ErrExtensionNotFound   ErrorCode = "EXTENSION_NOT_FOUND"

	// Collaborator errors
	ErrVarNotFound  ErrorCode = "VAR_NOT_FOUND"
	ErrHomeNotFound ErrorCode = "HOME_NOT_FOUND"
	ErrCwdAccess    ErrorCode = "CWD_ACCESS"

	// Configuration errors
	ErrConfigLoad  ErrorCode = "CONFIG_LOAD"
	ErrConfigParse ErrorCode = "CONFIG_PARSE"
)

// FungusError represents a structured error with code and details
type FungusError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *FungusError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *FungusError) Unwrap() error {
	return e.Wrapped
}

// Is implements errors.Is interface
func (e *FungusError) Is(target error) bool {
	var targetErr *FungusError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new FungusError with the given code and message
func New(code ErrorCode, message string) *FungusError {
	return &FungusError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new FungusError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *FungusError {
	return &FungusError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with a FungusError
func Wrap(err error, code ErrorCode, message string) *FungusError {
	if err == nil {
		return nil
	}
	return &FungusError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *FungusError {
	if err == nil {
		return nil
	}
	return &FungusError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// WithDetail adds a detail to the error
func (e *FungusError) WithDetail(key string, value interface{}) *FungusError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// WithDetails adds multiple details to the error
func (e *FungusError) WithDetails(details map[string]interface{}) *FungusError {
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
	var fungusErr *FungusError
	if errors.As(err, &fungusErr) {
		return fungusErr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not a FungusError
func GetErrorCode(err error) ErrorCode {
	var fungusErr *FungusError
	if errors.As(err, &fungusErr) {
		return fungusErr.Code
	}
	return ErrUnknown
}

// GetErrorDetails returns the details from an error, or nil if not a FungusError
func GetErrorDetails(err error) map[string]interface{} {
	var fungusErr *FungusError
	if errors.As(err, &fungusErr) {
		return fungusErr.Details
	}
	return nil
}
