// Package errors defines the engine's stable error codes and error type.
package errors

import (
	stderrors "errors"
	"fmt"
)

// ErrorCode represents stable error codes for all failure modes
type ErrorCode string

const (
	// ModelLoadFailed indicates schema.json or instance.json is missing or unparsable
	ModelLoadFailed ErrorCode = "MODEL_LOAD_FAILED"
	// UnsupportedQuery indicates an unrecognized query type, category, or direction
	UnsupportedQuery ErrorCode = "UNSUPPORTED_QUERY"
	// MissingParameter indicates a required parameter was not supplied
	MissingParameter ErrorCode = "MISSING_PARAMETER"
	// InternalError indicates an unexpected error
	InternalError ErrorCode = "INTERNAL_ERROR"
)

// EngineError represents an engine error with a stable code and message.
// Not-found conditions are never represented as errors; callers issuing
// exploratory queries receive empty results instead.
type EngineError struct {
	Code    ErrorCode   `json:"code"`
	Message string      `json:"message"`
	Details interface{} `json:"details,omitempty"`
	cause   error
}

// New creates a new EngineError.
func New(code ErrorCode, message string) *EngineError {
	return &EngineError{Code: code, Message: message}
}

// Newf creates a new EngineError with a formatted message.
func Newf(code ErrorCode, format string, args ...interface{}) *EngineError {
	return &EngineError{Code: code, Message: fmt.Sprintf(format, args...)}
}

// Wrap creates a new EngineError wrapping an underlying cause.
func Wrap(code ErrorCode, message string, cause error) *EngineError {
	return &EngineError{Code: code, Message: message, cause: cause}
}

// Error implements the error interface
func (e *EngineError) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.cause)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap returns the underlying error
func (e *EngineError) Unwrap() error {
	return e.cause
}

// WithDetails adds details to the error
func (e *EngineError) WithDetails(details interface{}) *EngineError {
	e.Details = details
	return e
}

// IsCode reports whether err is an EngineError with the given code.
func IsCode(err error, code ErrorCode) bool {
	var ee *EngineError
	if stderrors.As(err, &ee) {
		return ee.Code == code
	}
	return false
}
