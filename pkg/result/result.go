// Package result provides Result, a generic success/failure container, and
// the combinators that compose Results synchronously, asynchronously and
// across collections.
//
// # States
//
// A Result[T, E] is in exactly one of three states:
//
//   - Uninitialized: the zero value. Only IsUninitialized may be called;
//     every other accessor and operation panics with
//     [sserr.ErrUninitialized].
//   - Success: holds a value of type T.
//   - Failure: holds an error of type E. E need not implement error; it is
//     usually an [sserr.Error], an [*sserr.ErrorCollection] or an
//     [*sserr.ValidationErrors].
//
// Results are immutable. Every operation returns a new Result.
//
// # Composition
//
// Operations that change a type parameter are package functions, because
// Go methods cannot introduce type parameters:
//
//	r := result.Bind(parseID(raw), loadUser)
//	name := result.Map(r, func(u User) string { return u.Name })
//	msg := result.Match(name,
//	    func(n string) string { return "hello " + n },
//	    func(e sserr.Error) string { return e.Message() })
//
// Operations that keep both type parameters are methods:
//
//	r = r.Ensure(isActive, func(u User) sserr.Error {
//	    return sserr.Permanent("inactive", "user is inactive")
//	}).TapError(logFailure)
//
// A function passed to an operation is only invoked on the matching
// state. Panics raised by such a function propagate to the caller
// unchanged; only [Try] and [TryAsync] turn errors and panics into
// Failures.
//
// # Async Variants
//
// The *Async functions take a context.Context and pass it to the supplied
// function, which may block. The context is never inspected by this
// package; cancellation is reported by the caller's function through
// [TryAsync].
//
// # Collections
//
// [Sequence] and [Traverse] stop at the first Failure. [SequenceAll] and
// [TraverseAll] evaluate everything and merge every error; they require a
// mergeable error collection (see [Mergeable]). [SequenceAllAsync] and
// [TraverseAllAsync] start every computation on its own goroutine before
// waiting for any of them.
//
// Unchecked Failures are not escalated. A Failure that is dropped on the
// floor is silently ignored, like an unchecked error return.
package result

import (
	"fmt"
	"log/slog"
	"reflect"

	"github.com/StricklySoft/stricklysoft-result/internal/contract"
)

type state uint8

const (
	uninitialized state = iota
	success
	failure
)

func (s state) String() string {
	switch s {
	case success:
		return "success"
	case failure:
		return "failure"
	default:
		return "uninitialized"
	}
}

// Result holds either a success value of type T or a failure of type E.
// The zero value is uninitialized. See the package documentation.
type Result[T, E any] struct {
	state state
	value T
	err   E
}

// Success returns a successful Result holding v. v may be any value,
// including nil.
func Success[T, E any](v T) Result[T, E] {
	return Result[T, E]{state: success, value: v}
}

// Failure returns a failed Result holding e. It panics with
// [sserr.ErrInvalidArgument] if e is absent: a nil interface, pointer,
// map, slice, function or channel, or a value whose IsZero method reports
// true (such as the zero sserr.Error).
func Failure[T, E any](e E) Result[T, E] {
	if absent(e) {
		contract.Panicf(contract.ErrInvalidArgument, "result: Failure: error must not be absent")
	}
	return Result[T, E]{state: failure, err: e}
}

func absent[E any](e E) bool {
	if contract.IsNil(e) {
		return true
	}
	if z, ok := any(e).(interface{ IsZero() bool }); ok {
		return z.IsZero()
	}
	return false
}

func (r Result[T, E]) mustInit(op string) {
	if r.state == uninitialized {
		contract.Panicf(contract.ErrUninitialized, "result: %s on uninitialized result", op)
	}
}

// IsUninitialized reports whether r is the zero Result. It never panics.
func (r Result[T, E]) IsUninitialized() bool {
	return r.state == uninitialized
}

// IsSuccess reports whether r holds a value.
func (r Result[T, E]) IsSuccess() bool {
	r.mustInit("IsSuccess")
	return r.state == success
}

// IsFailure reports whether r holds an error.
func (r Result[T, E]) IsFailure() bool {
	r.mustInit("IsFailure")
	return r.state == failure
}

// Value returns the success value. It panics with [sserr.ErrWrongState]
// if r is a Failure.
func (r Result[T, E]) Value() T {
	r.mustInit("Value")
	if r.state != success {
		contract.Panicf(contract.ErrWrongState, "result: Value called on failure %v", r.err)
	}
	return r.value
}

// Err returns the failure error. It panics with [sserr.ErrWrongState] if r
// is a Success.
func (r Result[T, E]) Err() E {
	r.mustInit("Err")
	if r.state != failure {
		contract.Panicf(contract.ErrWrongState, "result: Err called on success")
	}
	return r.err
}

// ValueOr returns the success value, or d if r is a Failure.
func (r Result[T, E]) ValueOr(d T) T {
	r.mustInit("ValueOr")
	if r.state == success {
		return r.value
	}
	return d
}

// ErrOr returns the failure error, or d if r is a Success.
func (r Result[T, E]) ErrOr(d E) E {
	r.mustInit("ErrOr")
	if r.state == failure {
		return r.err
	}
	return d
}

// TryValue returns the success value and true, or the zero T and false.
func (r Result[T, E]) TryValue() (T, bool) {
	r.mustInit("TryValue")
	return r.value, r.state == success
}

// TryErr returns the failure error and true, or the zero E and false.
func (r Result[T, E]) TryErr() (E, bool) {
	r.mustInit("TryErr")
	return r.err, r.state == failure
}

// Unpack returns the success flag with the value and error. The slot for
// the state r is not in holds its zero value.
//
// Example:
//
//	if ok, user, err := r.Unpack(); ok {
//	    greet(user)
//	} else {
//	    log.Warn("lookup failed", "error", err)
//	}
func (r Result[T, E]) Unpack() (ok bool, value T, err E) {
	r.mustInit("Unpack")
	return r.state == success, r.value, r.err
}

// Equal reports whether r and other are in the same state with equal
// payloads. Two uninitialized Results are equal. Payloads are compared
// with their own Equal method when they have one, and with
// reflect.DeepEqual otherwise.
func (r Result[T, E]) Equal(other Result[T, E]) bool {
	if r.state != other.state {
		return false
	}
	switch r.state {
	case success:
		return payloadEqual(r.value, other.value)
	case failure:
		return payloadEqual(r.err, other.err)
	default:
		return true
	}
}

func payloadEqual[X any](a, b X) bool {
	if eq, ok := any(a).(interface{ Equal(X) bool }); ok {
		return eq.Equal(b)
	}
	return reflect.DeepEqual(a, b)
}

// String renders "Result<default>", "Success(<value>)" or
// "Failure(<error>)".
func (r Result[T, E]) String() string {
	switch r.state {
	case success:
		return fmt.Sprintf("Success(%v)", r.value)
	case failure:
		return fmt.Sprintf("Failure(%v)", r.err)
	default:
		return "Result<default>"
	}
}

// LogValue implements slog.LogValuer.
func (r Result[T, E]) LogValue() slog.Value {
	switch r.state {
	case success:
		return slog.GroupValue(slog.String("state", r.state.String()), slog.Any("value", r.value))
	case failure:
		return slog.GroupValue(slog.String("state", r.state.String()), slog.Any("error", r.err))
	default:
		return slog.GroupValue(slog.String("state", r.state.String()))
	}
}
