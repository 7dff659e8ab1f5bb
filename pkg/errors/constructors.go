package errors

import (
	"context"
	"errors"
	"fmt"
	"net"
)

// Permanent creates a non-transient Error.
//
// Example:
//
//	err := errors.Permanent("divide_by_zero", "cannot divide by zero")
func Permanent(code Code, message string) Error {
	return Error{code: code, message: message}
}

// Permanentf creates a non-transient Error with a formatted message.
func Permanentf(code Code, format string, args ...any) Error {
	return Permanent(code, fmt.Sprintf(format, args...))
}

// Transient creates an Error that may clear on retry.
//
// Example:
//
//	err := errors.Transient("timeout", "Service unavailable")
func Transient(code Code, message string) Error {
	return Error{code: code, message: message, transient: true}
}

// Transientf creates a transient Error with a formatted message.
func Transientf(code Code, format string, args ...any) Error {
	return Transient(code, fmt.Sprintf(format, args...))
}

// New creates a new Error with the specified code and message. The
// transient flag follows the code category (see [Code.DefaultTransient]).
//
// Example:
//
//	err := errors.New(errors.CodeValidation, "email address is required")
func New(code Code, message string) Error {
	return Error{code: code, message: message, transient: code.DefaultTransient()}
}

// Newf creates a new Error with the specified code and formatted message.
//
// Example:
//
//	err := errors.Newf(errors.CodeNotFound, "user %q not found", userID)
func Newf(code Code, format string, args ...any) Error {
	return New(code, fmt.Sprintf(format, args...))
}

// Validation creates a new validation error.
// This is a convenience function equivalent to New(CodeValidation, message).
func Validation(message string) Error {
	return New(CodeValidation, message)
}

// Validationf creates a new validation error with a formatted message.
func Validationf(format string, args ...any) Error {
	return Newf(CodeValidation, format, args...)
}

// NotFound creates a new not found error.
//
// Example:
//
//	err := errors.NotFound("user not found")
func NotFound(message string) Error {
	return New(CodeNotFound, message)
}

// NotFoundf creates a new not found error with a formatted message.
func NotFoundf(format string, args ...any) Error {
	return Newf(CodeNotFound, format, args...)
}

// Unauthorized creates a new authentication error.
// Use this when authentication fails (invalid or missing credentials).
func Unauthorized(message string) Error {
	return New(CodeAuthentication, message)
}

// Forbidden creates a new authorization error.
// Use this when the authenticated user lacks permission for an action.
func Forbidden(message string) Error {
	return New(CodeAuthorization, message)
}

// Conflict creates a new conflict error.
func Conflict(message string) Error {
	return New(CodeConflict, message)
}

// Internal creates a new internal error.
// Use this for unexpected system failures that should not expose details to users.
func Internal(message string) Error {
	return New(CodeInternal, message)
}

// Internalf creates a new internal error with a formatted message.
func Internalf(format string, args ...any) Error {
	return Newf(CodeInternal, format, args...)
}

// Unavailable creates a new transient service unavailable error.
func Unavailable(message string) Error {
	return New(CodeUnavailable, message)
}

// Timeout creates a new transient timeout error.
func Timeout(message string) Error {
	return New(CodeTimeout, message)
}

// FromError converts a standard error to an Error.
//
// The conversion rules are, in order:
//   - an Error anywhere in the chain is returned as-is
//   - context.DeadlineExceeded or a net.Error reporting a timeout becomes
//     a transient TIMEOUT_001
//   - context.Canceled becomes a permanent CANCEL_001
//   - a [*PanicError] becomes a permanent INT_004
//   - anything else becomes a permanent INT_001 carrying err.Error()
//
// FromError returns the zero Error for a nil err.
//
// Example:
//
//	r, _ := result.Try(load, errors.FromError, nil)
func FromError(err error) Error {
	if err == nil {
		return Error{}
	}

	var e Error
	if errors.As(err, &e) {
		return e
	}

	var netErr net.Error
	switch {
	case errors.Is(err, context.DeadlineExceeded):
		return Transient(CodeTimeout, err.Error())
	case errors.As(err, &netErr) && netErr.Timeout():
		return Transient(CodeTimeout, err.Error())
	case errors.Is(err, context.Canceled):
		return Permanent(CodeCanceled, err.Error())
	}

	var pe *PanicError
	if errors.As(err, &pe) {
		return Permanent(CodeInternalPanic, pe.Error())
	}

	return Permanent(CodeInternal, err.Error())
}
