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

	// Terminal errors
	ErrRenderWrite ErrorCode = "RENDER_WRITE"
	ErrInputClosed ErrorCode = "INPUT_CLOSED"
	ErrInputRead   ErrorCode = "INPUT_READ"

	// Configuration errors
	ErrConfigLoad  ErrorCode = "CONFIG_LOAD"
	ErrConfigParse ErrorCode = "CONFIG_PARSE"
	ErrConfigValid ErrorCode = "CONFIG_INVALID"

	// FileSystem errors
	ErrFileWrite  ErrorCode = "FILE_WRITE"
	ErrFileExists ErrorCode = "FILE_EXISTS"

	// Help and export errors
	ErrTopicNotFound ErrorCode = "TOPIC_NOT_FOUND"
	ErrExportFormat  ErrorCode = "EXPORT_FORMAT"
)

// TagtermError represents a structured error with code and details
type TagtermError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *TagtermError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *TagtermError) Unwrap() error {
	return e.Wrapped
}

// Is matches any TagtermError carrying the same code
func (e *TagtermError) Is(target error) bool {
	var targetErr *TagtermError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new TagtermError with the given code and message
func New(code ErrorCode, message string) *TagtermError {
	return &TagtermError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new TagtermError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *TagtermError {
	return &TagtermError{
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
	return &TagtermError{
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
	return &TagtermError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// WithDetail adds a detail to the error
func (e *TagtermError) WithDetail(key string, value interface{}) *TagtermError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// IsErrorCode checks if an error has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	var tagErr *TagtermError
	if errors.As(err, &tagErr) {
		return tagErr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not a TagtermError
func GetErrorCode(err error) ErrorCode {
	var tagErr *TagtermError
	if errors.As(err, &tagErr) {
		return tagErr.Code
	}
	return ErrUnknown
}

// GetErrorDetails returns the details from an error, or nil if not a TagtermError
func GetErrorDetails(err error) map[string]interface{} {
	var tagErr *TagtermError
	if errors.As(err, &tagErr) {
		return tagErr.Details
	}
	return nil
}
