// Package contract defines the programmer-error signals shared by the
// errors and result packages.
//
// A contract violation is a bug in calling code: reading the value of a
// failed result, constructing a failure without an error, passing a blank
// field name to a collection. Violations are raised with panic and are
// never converted into domain failures. The panic value is a [*Violation]
// whose Unwrap returns one of the sentinel kinds, so a recovered value can
// be classified with errors.Is.
package contract

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
)

var (
	// ErrUninitialized marks access to a result that was never constructed
	// with Success or Failure (its zero value).
	ErrUninitialized = errors.New("result is uninitialized")

	// ErrWrongState marks access to the payload of the opposite state, such
	// as reading the value of a failure.
	ErrWrongState = errors.New("result is in the wrong state")

	// ErrInvalidArgument marks a missing or blank required argument.
	ErrInvalidArgument = errors.New("invalid argument")
)

// Violation is the panic value raised for contract violations.
type Violation struct {
	// Kind is one of the sentinel errors declared in this package.
	Kind error

	// Message describes the violation, prefixed with the package name.
	Message string
}

// Error returns the violation message followed by its kind.
func (v *Violation) Error() string {
	return fmt.Sprintf("%s: %v", v.Message, v.Kind)
}

// Unwrap returns the violation kind.
func (v *Violation) Unwrap() error {
	return v.Kind
}

// Panicf raises a [*Violation] of the given kind.
func Panicf(kind error, format string, args ...any) {
	panic(&Violation{Kind: kind, Message: fmt.Sprintf(format, args...)})
}

// NotBlank panics with [ErrInvalidArgument] if value is empty or only
// whitespace. name identifies the argument in the message.
func NotBlank(op, name, value string) {
	if strings.TrimSpace(value) == "" {
		Panicf(ErrInvalidArgument, "%s: %s must not be blank", op, name)
	}
}

// NotNil panics with [ErrInvalidArgument] if fn is nil. It accepts any
// function value.
func NotNil(op, name string, fn any) {
	if IsNil(fn) {
		Panicf(ErrInvalidArgument, "%s: %s must not be nil", op, name)
	}
}

// IsNil reports whether v is absent: a nil interface, or a nil pointer,
// map, slice, function, channel or interface held in v.
func IsNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func,
		reflect.Chan, reflect.Interface, reflect.UnsafePointer:
		return rv.IsNil()
	default:
		return false
	}
}
