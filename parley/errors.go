package parley

import (
	"errors"
	"fmt"
)

// ErrorCode represents a categorized error type.
type ErrorCode int

const (
	ErrorUnknown ErrorCode = iota

	// Protocol errors
	ErrorDecode        // malformed or unrecognized wire frame
	ErrorNestedDecode  // message-kind payload is not valid ChatMessage JSON
	ErrorSerialization // outbound intent could not be encoded

	// Client-side errors
	ErrorSend
	ErrorConnection
	ErrorDisconnected
	ErrorTimeout
	ErrorInvalidConfig
	ErrorNotConnected
)

// String returns the string representation of an ErrorCode.
func (e ErrorCode) String() string {
	switch e {
	case ErrorUnknown:
		return "unknown"
	case ErrorDecode:
		return "decode_error"
	case ErrorNestedDecode:
		return "nested_decode_error"
	case ErrorSerialization:
		return "serialization_error"
	case ErrorSend:
		return "send_error"
	case ErrorConnection:
		return "connection_error"
	case ErrorDisconnected:
		return "disconnected"
	case ErrorTimeout:
		return "timeout"
	case ErrorInvalidConfig:
		return "invalid_config"
	case ErrorNotConnected:
		return "not_connected"
	default:
		return fmt.Sprintf("unknown_code_%d", e)
	}
}

// ParleyError is a structured error with code and context.
type ParleyError struct {
	Code    ErrorCode
	Message string
	Wrapped error
}

// Error implements the error interface.
func (e *ParleyError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("%s: %s (wrapped: %v)", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the wrapped error for errors.Unwrap support.
func (e *ParleyError) Unwrap() error {
	return e.Wrapped
}

// Is implements errors.Is comparison by code.
func (e *ParleyError) Is(target error) bool {
	t, ok := target.(*ParleyError)
	if !ok {
		return false
	}
	return e.Code == t.Code
}

// NewError creates a new ParleyError with the given code and message.
func NewError(code ErrorCode, message string) *ParleyError {
	return &ParleyError{
		Code:    code,
		Message: message,
	}
}

// WrapError wraps an existing error with a ParleyError.
func WrapError(code ErrorCode, message string, err error) *ParleyError {
	return &ParleyError{
		Code:    code,
		Message: message,
		Wrapped: err,
	}
}

// IsDecodeError checks if an error came from decoding wire text, at either
// envelope or nested-payload level.
func IsDecodeError(err error) bool {
	if err == nil {
		return false
	}
	var pe *ParleyError
	if !errors.As(err, &pe) {
		return false
	}
	return pe.Code == ErrorDecode || pe.Code == ErrorNestedDecode
}

// IsConnectionError checks if an error is a connection-related error.
func IsConnectionError(err error) bool {
	if err == nil {
		return false
	}
	var pe *ParleyError
	if !errors.As(err, &pe) {
		return false
	}
	return pe.Code == ErrorConnection || pe.Code == ErrorDisconnected || pe.Code == ErrorTimeout
}
