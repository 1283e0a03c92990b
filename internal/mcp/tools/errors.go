package tools

import (
	"fmt"
	"log/slog"
)

// Error codes for MCP tool responses.
const (
	ErrCodeInvalidInput = "INVALID_INPUT"
	ErrCodeSchemaError  = "SCHEMA_ERROR"
)

// CodedError is an error with an associated error code.
type CodedError struct {
	Code    string
	Message string
	Cause   error
}

func (e *CodedError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *CodedError) Unwrap() error {
	return e.Cause
}

// ErrInvalidInput creates an invalid input error.
func ErrInvalidInput(message string) error {
	return &CodedError{
		Code:    ErrCodeInvalidInput,
		Message: message,
	}
}

// ErrSchema wraps a schema compilation or decoding failure.
func ErrSchema(message string, cause error) error {
	coded := &CodedError{
		Code:    ErrCodeSchemaError,
		Message: message,
		Cause:   cause,
	}
	slog.Warn("schema error",
		slog.String("code", coded.Code),
		slog.String("message", coded.Message),
	)
	return coded
}
