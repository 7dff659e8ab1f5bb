package errors

import (
	"errors"
)

// AsError attempts to find an Error in err's chain.
// Returns the Error and true if successful, the zero Error and false otherwise.
// Collections expose their entries through Unwrap, so for an
// [*ErrorCollection] this yields its first entry.
//
// Example:
//
//	if e, ok := errors.AsError(err); ok {
//	    log.Printf("error code: %s, message: %s", e.Code(), e.Message())
//	}
func AsError(err error) (Error, bool) {
	var e Error
	if errors.As(err, &e) {
		return e, true
	}
	return Error{}, false
}

// GetCode returns the error code from an error.
// If no Error is found in the chain, returns an empty code.
func GetCode(err error) Code {
	if e, ok := AsError(err); ok {
		return e.Code()
	}
	return ""
}

// HasCode checks if an error has the specified error code.
// Returns false if the error is nil or holds no Error.
//
// Example:
//
//	if errors.HasCode(err, errors.CodeNotFound) {
//	    // handle not found
//	}
func HasCode(err error, code Code) bool {
	return GetCode(err) == code
}

// IsTransient reports whether err describes a condition that may clear on
// retry. Collections report their aggregate flag; a single Error reports
// its own flag.
//
// Example:
//
//	if errors.IsTransient(err) {
//	    // retry with backoff
//	}
func IsTransient(err error) bool {
	var c *ErrorCollection
	if errors.As(err, &c) {
		return c.IsTransient()
	}
	var v *ValidationErrors
	if errors.As(err, &v) {
		return v.IsTransient()
	}
	e, ok := AsError(err)
	return ok && e.IsTransient()
}

// IsValidation checks if the error is a validation error: a
// [*ValidationErrors] with entries, or an Error in the VAL category.
func IsValidation(err error) bool {
	var v *ValidationErrors
	if errors.As(err, &v) && v.HasErrors() {
		return true
	}
	return hasCategory(err, "VAL")
}

// IsAuthentication checks if the error is an authentication error (AUTH_xxx).
func IsAuthentication(err error) bool {
	return hasCategory(err, "AUTH")
}

// IsAuthorization checks if the error is an authorization error (AUTHZ_xxx).
func IsAuthorization(err error) bool {
	return hasCategory(err, "AUTHZ")
}

// IsNotFound checks if the error is a not found error (NF_xxx).
func IsNotFound(err error) bool {
	return hasCategory(err, "NF")
}

// IsConflict checks if the error is a conflict error (CONF_xxx).
func IsConflict(err error) bool {
	return hasCategory(err, "CONF")
}

// IsInternal checks if the error is an internal error (INT_xxx).
func IsInternal(err error) bool {
	return hasCategory(err, "INT")
}

// IsCanceled checks if the error is a cancellation error (CANCEL_xxx).
func IsCanceled(err error) bool {
	return hasCategory(err, "CANCEL")
}

func hasCategory(err error, category string) bool {
	e, ok := AsError(err)
	return ok && e.Code().Category() == category
}
