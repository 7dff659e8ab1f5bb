// Package errors provides the error values used by the StricklySoft result
// library: a small immutable [Error] record, two immutable order-preserving
// error lists ([ErrorCollection] and [ValidationErrors]) and the fluent
// builders that accumulate them.
//
// # Error Values
//
// An [Error] carries a machine-readable code, a human-readable message and
// a transient flag. Transient errors describe conditions that may clear on
// retry (a dependency timing out); permanent errors do not.
//
//	err := errors.Permanent("not_found", "user not found")
//	err := errors.Transient(errors.CodeUnavailable, "billing service unavailable")
//
// Error is a comparable value: two errors are equal when their code,
// message and transient flag are equal.
//
// # Collections
//
// [ErrorCollection] and [ValidationErrors] are immutable lists. Every
// With* call returns a new collection and the receiver is never modified,
// so collections can be shared freely between goroutines. Insertion order
// is significant: it drives equality and the rendered summary. The
// aggregate transient flag is true when any entry is transient.
//
//	errs := errors.EmptyCollection().
//	    WithError("not_found", "User not found").
//	    WithTransientError("timeout", "Service unavailable")
//	errs.Summary() // "not_found: User not found; timeout: Service unavailable"
//
// ValidationErrors has the same shape, but the code slot of each entry is
// the name of the field that failed validation.
//
// # Builders
//
// [ErrorCollectionBuilder] and [ValidationErrorsBuilder] accumulate entries
// in place and freeze them with Build. Builders are not safe for concurrent
// use; confine each builder to the goroutine that fills it.
//
//	v := errors.NewValidationErrorsBuilder().
//	    RequireNotEmpty(req.Username, "username", "").
//	    Require(len(req.Password) >= 8, "password", "Password too short").
//	    Build()
//
// # Contract Violations
//
// Misuse of the API (blank codes, nil predicates, reading the value of a
// failed result) panics with a [*Violation]. The recovered value unwraps
// to [ErrUninitialized], [ErrWrongState] or [ErrInvalidArgument]:
//
//	defer func() {
//	    if r := recover(); r != nil {
//	        if err, ok := r.(error); ok && errors.Is(err, errors.ErrWrongState) {
//	            // ...
//	        }
//	    }
//	}()
package errors

import (
	"errors"

	"github.com/StricklySoft/stricklysoft-result/internal/contract"
)

// Contract violation kinds. See the package documentation.
var (
	ErrUninitialized   = contract.ErrUninitialized
	ErrWrongState      = contract.ErrWrongState
	ErrInvalidArgument = contract.ErrInvalidArgument
)

// Violation is the panic value raised for contract violations.
type Violation = contract.Violation

// Is reports whether any error in err's chain matches target. It is
// forwarded from the standard library so callers importing this package
// under the name errors keep access to it.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's chain that matches target. It is
// forwarded from the standard library.
func As(err error, target any) bool {
	return errors.As(err, target)
}
