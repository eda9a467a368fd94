// Package domainerrors defines the error taxonomy shared by the resolver, the upstream
// client and the HTTP layer. Services return these (optionally wrapping a cause) and the
// transport layer translates the Code into a status exactly once, at the request boundary.
package domainerrors

import (
	"errors"
	"fmt"
)

// Code classifies a failure. Codes are stable strings so they can appear in logs and
// metric labels.
type Code string

const (
	// CodeNotFound means the identifier does not resolve to a record for this family.
	CodeNotFound Code = "not_found"
	// CodeNotAcceptable means none of the requested media types can be served.
	CodeNotAcceptable Code = "not_acceptable"
	// CodeBadRequest means the request itself is malformed.
	CodeBadRequest Code = "bad_request"
	// CodeConfiguration means a configured value (URL template, base URL) is unusable.
	CodeConfiguration Code = "configuration_error"
	// CodeUpstream means the record or multimedia lookup failed.
	CodeUpstream Code = "upstream_error"
	// CodeIntegrity means upstream data violates an invariant, e.g. a duplicate unitID.
	CodeIntegrity Code = "integrity_error"
	// CodeInternal is everything else, including broken internal invariants.
	CodeInternal Code = "internal_error"
)

// Error is a coded domain error with an optional cause.
type Error struct {
	Code    Code
	Message string
	Err     error
}

// New creates a domain error without a cause.
func New(code Code, message string) *Error {
	return &Error{Code: code, Message: message}
}

// Newf creates a domain error with a formatted message.
func Newf(code Code, format string, args ...any) *Error {
	return &Error{Code: code, Message: fmt.Sprintf(format, args...)}
}

// Wrap attaches a code and message to an underlying error.
func Wrap(err error, code Code, message string) *Error {
	return &Error{Code: code, Message: message, Err: err}
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// CodeOf returns the code of the outermost domain error in err's chain, or CodeInternal
// when the chain carries none.
func CodeOf(err error) Code {
	var de *Error
	if errors.As(err, &de) {
		return de.Code
	}
	return CodeInternal
}

// HasCode reports whether err carries the given code.
func HasCode(err error, code Code) bool {
	return err != nil && CodeOf(err) == code
}

// RootCause unwinds err to the innermost error of its chain.
func RootCause(err error) error {
	for err != nil {
		next := errors.Unwrap(err)
		if next == nil {
			return err
		}
		err = next
	}
	return nil
}
