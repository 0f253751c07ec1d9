// Package errs provides the error type shared by every db-wipe package.
//
// Drivers wrap their native errors into *errs.Error; commands inspect the
// kind through the Is* predicates and never import driver packages.
//
//	if errs.IsInvalidArguments(err) {
//	    // usage problem, nothing was executed
//	}
package errs

import (
	"errors"
	"fmt"
)

// ErrKind categorises an error without exposing driver-specific codes.
type ErrKind int

const (
	ErrKindUnknown          ErrKind = iota
	ErrKindInvalidArguments         // bad flag combination, unknown driver, missing DSN
	ErrKindConnectionFailed         // cannot reach or authenticate to the database
	ErrKindTimeout                  // context deadline / cancellation
	ErrKindPermissionDenied         // insufficient privileges
	ErrKindQueryFailed              // introspection query error
	ErrKindStatementFailed          // a planned statement was rejected
)

func (k ErrKind) String() string {
	switch k {
	case ErrKindInvalidArguments:
		return "invalid_arguments"
	case ErrKindConnectionFailed:
		return "connection_failed"
	case ErrKindTimeout:
		return "timeout"
	case ErrKindPermissionDenied:
		return "permission_denied"
	case ErrKindQueryFailed:
		return "query_failed"
	case ErrKindStatementFailed:
		return "statement_failed"
	default:
		return "unknown"
	}
}

// Error is the single error type returned across db-wipe.
type Error struct {
	Kind    ErrKind
	Message string
	Cause   error // original driver error, kept for logging
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Kind, e.Message, e.Cause)
	}
	return fmt.Sprintf("[%s] %s", e.Kind, e.Message)
}

// Unwrap allows errors.Is / errors.As to traverse the cause chain.
func (e *Error) Unwrap() error {
	return e.Cause
}

// New creates an *Error with no cause.
func New(kind ErrKind, msg string) *Error {
	return &Error{Kind: kind, Message: msg}
}

// Wrap creates an *Error around an underlying cause.
func Wrap(kind ErrKind, msg string, cause error) *Error {
	return &Error{Kind: kind, Message: msg, Cause: cause}
}

// IsInvalidArguments reports whether err was caused by bad input from the user.
func IsInvalidArguments(err error) bool {
	return KindOf(err) == ErrKindInvalidArguments
}

// IsConnectionFailed reports whether err is a connectivity or auth failure.
func IsConnectionFailed(err error) bool {
	return KindOf(err) == ErrKindConnectionFailed
}

// IsTimeout reports whether err was caused by a deadline or cancellation.
func IsTimeout(err error) bool {
	return KindOf(err) == ErrKindTimeout
}

// IsPermissionDenied reports whether err is an access control failure.
func IsPermissionDenied(err error) bool {
	return KindOf(err) == ErrKindPermissionDenied
}

// IsStatementFailed reports whether err is a rejected plan statement.
func IsStatementFailed(err error) bool {
	return KindOf(err) == ErrKindStatementFailed
}

// KindOf extracts the ErrKind from any error in the chain.
func KindOf(err error) ErrKind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return ErrKindUnknown
}

// Message returns the most specific human-readable text for err: the
// driver's own message when one is wrapped, the error string otherwise.
func Message(err error) string {
	if err == nil {
		return ""
	}
	var e *Error
	if errors.As(err, &e) {
		if e.Cause != nil {
			return e.Cause.Error()
		}
		return e.Message
	}
	return err.Error()
}
