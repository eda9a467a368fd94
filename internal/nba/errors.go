package nba

import (
	"errors"
	"fmt"

	"purl/pkg/platform/sentinel"
)

// ErrorCategory defines the normalized failure taxonomy
type ErrorCategory string

const (
	// ErrorTimeout indicates the NBA took too long to respond
	ErrorTimeout ErrorCategory = "timeout"

	// ErrorBadData indicates the NBA returned a body that does not decode
	ErrorBadData ErrorCategory = "bad_data"

	// ErrorUnavailable indicates the NBA could not be reached or answered 5xx
	ErrorUnavailable ErrorCategory = "unavailable"

	// ErrorContractMismatch indicates an unexpected 4xx, usually a changed API
	ErrorContractMismatch ErrorCategory = "contract_mismatch"

	// ErrorNotFound indicates the NBA has no document for the identifier
	ErrorNotFound ErrorCategory = "not_found"

	// ErrorInternal indicates an unexpected internal error
	ErrorInternal ErrorCategory = "internal"

	// ErrorCanceled indicates the caller gave up before the NBA answered
	ErrorCanceled ErrorCategory = "canceled"
)

// Error wraps NBA failures with normalized categorization
type Error struct {
	Category   ErrorCategory
	Operation  string
	Message    string
	Underlying error
}

// Error implements the error interface
func (e *Error) Error() string {
	if e.Underlying != nil {
		return fmt.Sprintf("nba %s [%s]: %s: %v", e.Operation, e.Category, e.Message, e.Underlying)
	}
	return fmt.Sprintf("nba %s [%s]: %s", e.Operation, e.Category, e.Message)
}

// Unwrap supports error unwrapping
func (e *Error) Unwrap() error {
	return e.Underlying
}

// Is lets callers test NBA errors against the platform sentinels.
func (e *Error) Is(target error) bool {
	switch e.Category {
	case ErrorNotFound:
		return target == sentinel.ErrNotFound
	case ErrorTimeout:
		return target == sentinel.ErrTimeout
	case ErrorUnavailable:
		return target == sentinel.ErrUnavailable
	case ErrorBadData:
		return target == sentinel.ErrMalformed
	default:
		return false
	}
}

// NewError creates a new normalized NBA error
func NewError(category ErrorCategory, operation, message string, underlying error) *Error {
	return &Error{
		Category:   category,
		Operation:  operation,
		Message:    message,
		Underlying: underlying,
	}
}

// GetCategory extracts the error category from an error
func GetCategory(err error) ErrorCategory {
	var ne *Error
	if errors.As(err, &ne) {
		return ne.Category
	}
	return ErrorInternal
}
