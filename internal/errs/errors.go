// Package errs provides the unified error type used across all of imgfit.
//
// Every subsystem (object store, imaging, resizer, server) wraps its native
// errors into *errs.Error before returning them to callers. Callers use the
// Is* predicates to handle errors without importing driver-specific packages.
//
// Usage:
//
//	// In a driver — wrap native errors:
//	return errs.Wrap(errs.ErrKindStoreFailed, "put failed", sdkErr)
//
//	// In a handler — check error kind:
//	if errs.IsNotFound(err) {
//	    http.Error(w, "not found", http.StatusNotFound)
//	}
package errs

import (
	"errors"
	"fmt"
)

// ErrKind categorises an error without exposing subsystem-specific codes.
// Each kind maps to exactly one failure cause in the resize pipeline, so the
// HTTP layer can pick a status from the kind alone.
type ErrKind int

const (
	ErrKindUnknown           ErrKind = iota
	ErrKindInvalidInput              // bad arguments from the caller (mode, body shape)
	ErrKindInvalidURL                // source string matches no accepted object-store URL form
	ErrKindInvalidDimensions         // requested width or height <= 0
	ErrKindNotFound                  // source object absent from the store
	ErrKindStoreFailed               // store call failed for a reason other than absence
	ErrKindDecodeFailed              // fetched bytes are not a decodable image
	ErrKindEncodeFailed              // transformed pixels could not be re-encoded
	ErrKindTimeout                   // context deadline / cancellation
	ErrKindPermissionDenied          // store access denied / auth failure
)

func (k ErrKind) String() string {
	switch k {
	case ErrKindInvalidInput:
		return "invalid_input"
	case ErrKindInvalidURL:
		return "invalid_url"
	case ErrKindInvalidDimensions:
		return "invalid_dimensions"
	case ErrKindNotFound:
		return "not_found"
	case ErrKindStoreFailed:
		return "store_failed"
	case ErrKindDecodeFailed:
		return "decode_failed"
	case ErrKindEncodeFailed:
		return "encode_failed"
	case ErrKindTimeout:
		return "timeout"
	case ErrKindPermissionDenied:
		return "permission_denied"
	default:
		return "unknown"
	}
}

// Error is the single error type returned by all imgfit subsystems.
// Drivers produce it; callers inspect it via the Is* predicates below.
type Error struct {
	Kind    ErrKind
	Message string
	Cause   error // original driver-level error, preserved for logging
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

// --- Constructors ---

// New creates an *Error with the given kind and message and no cause.
func New(kind ErrKind, msg string) *Error {
	return &Error{Kind: kind, Message: msg}
}

// Newf creates an *Error with a formatted message and no cause.
func Newf(kind ErrKind, format string, args ...any) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// Wrap creates an *Error with the given kind, message, and an underlying cause.
func Wrap(kind ErrKind, msg string, cause error) *Error {
	return &Error{Kind: kind, Message: msg, Cause: cause}
}

// --- Predicates ---

// IsInvalidInput reports whether err was caused by bad input from the caller.
func IsInvalidInput(err error) bool {
	return kindOf(err) == ErrKindInvalidInput
}

// IsInvalidURL reports whether err marks a source string that matches none of
// the accepted object-store URL forms.
func IsInvalidURL(err error) bool {
	return kindOf(err) == ErrKindInvalidURL
}

// IsInvalidDimensions reports whether err marks a non-positive target width or height.
func IsInvalidDimensions(err error) bool {
	return kindOf(err) == ErrKindInvalidDimensions
}

// IsNotFound reports whether err represents a missing source object.
func IsNotFound(err error) bool {
	return kindOf(err) == ErrKindNotFound
}

// IsStoreFailed reports whether err is a store failure other than absence
// (network, permissions handled separately, throttling, I/O).
func IsStoreFailed(err error) bool {
	return kindOf(err) == ErrKindStoreFailed
}

// IsDecodeFailed reports whether err marks bytes that could not be decoded as an image.
func IsDecodeFailed(err error) bool {
	return kindOf(err) == ErrKindDecodeFailed
}

// IsEncodeFailed reports whether err marks pixels that could not be re-encoded.
func IsEncodeFailed(err error) bool {
	return kindOf(err) == ErrKindEncodeFailed
}

// IsTimeout reports whether err was caused by a deadline or context cancellation.
func IsTimeout(err error) bool {
	return kindOf(err) == ErrKindTimeout
}

// IsPermissionDenied reports whether err is an access control failure.
func IsPermissionDenied(err error) bool {
	return kindOf(err) == ErrKindPermissionDenied
}

// KindOf extracts the ErrKind from any error in the chain.
// Errors that carry no *errs.Error are ErrKindUnknown.
func KindOf(err error) ErrKind {
	return kindOf(err)
}

func kindOf(err error) ErrKind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return ErrKindUnknown
}
