package errors

import (
	"fmt"
	"iter"
	"log/slog"
	"net/http"
	"reflect"
	"slices"
	"strings"

	"github.com/StricklySoft/stricklysoft-result/internal/contract"
)

// ValidationErrors is an immutable, order-preserving list of field-scoped
// errors. It has the same shape and guarantees as [ErrorCollection]; the
// code of each entry is the name of the field that failed validation.
//
// A nil *ValidationErrors behaves like the empty list returned by
// [EmptyValidation].
//
// Example:
//
//	errs := errors.EmptyValidation().
//	    RequireNotEmpty(req.Email, "email", "").
//	    Require(strings.Contains(req.Email, "@"), "email", "Email is invalid")
//	if errs.HasErrors() {
//	    return result.Failure[User](errs)
//	}
type ValidationErrors struct {
	list entryList
}

var emptyValidation = &ValidationErrors{}

// EmptyValidation returns the shared empty ValidationErrors.
func EmptyValidation() *ValidationErrors {
	return emptyValidation
}

func (v *ValidationErrors) orEmpty() *ValidationErrors {
	if v == nil {
		return emptyValidation
	}
	return v
}

// WithField returns a new list with a permanent error for field appended.
// It panics with [ErrInvalidArgument] if field or message is blank.
func (v *ValidationErrors) WithField(field, message string) *ValidationErrors {
	return v.WithFieldError(newEntry("errors: WithField", "field", Code(field), message, false))
}

// WithTransientField returns a new list with a transient error for field
// appended.
func (v *ValidationErrors) WithTransientField(field, message string) *ValidationErrors {
	return v.WithFieldError(newEntry("errors: WithTransientField", "field", Code(field), message, true))
}

// WithFieldError returns a new list with e appended. The code of e is the
// field name. It panics with [ErrInvalidArgument] if e is the zero Error.
func (v *ValidationErrors) WithFieldError(e Error) *ValidationErrors {
	checkEntry("errors: WithFieldError", e)
	return &ValidationErrors{list: v.orEmpty().list.with(e)}
}

// Merge returns a list holding v's entries followed by other's. When
// either side is empty the other side is returned unchanged.
func (v *ValidationErrors) Merge(other *ValidationErrors) *ValidationErrors {
	v, other = v.orEmpty(), other.orEmpty()
	switch {
	case len(other.list.items) == 0:
		return v
	case len(v.list.items) == 0:
		return other
	}
	return &ValidationErrors{list: v.list.concat(other.list)}
}

// When appends an error for field iff cond is true.
func (v *ValidationErrors) When(cond bool, field, message string) *ValidationErrors {
	if cond {
		return v.WithField(field, message)
	}
	return v.orEmpty()
}

// WhenFunc appends an error for field iff pred returns true. pred is
// invoked exactly once.
func (v *ValidationErrors) WhenFunc(pred func() bool, field, message string) *ValidationErrors {
	return v.When(evalPredicate("errors: WhenFunc", pred), field, message)
}

// Require appends an error for field iff cond is false.
func (v *ValidationErrors) Require(cond bool, field, message string) *ValidationErrors {
	return v.When(!cond, field, message)
}

// RequireFunc appends an error for field iff pred returns false. pred is
// invoked exactly once.
func (v *ValidationErrors) RequireFunc(pred func() bool, field, message string) *ValidationErrors {
	return v.Require(evalPredicate("errors: RequireFunc", pred), field, message)
}

// WhenError appends e iff cond is true.
func (v *ValidationErrors) WhenError(cond bool, e Error) *ValidationErrors {
	checkEntry("errors: WhenError", e)
	if cond {
		return v.WithFieldError(e)
	}
	return v.orEmpty()
}

// RequireError appends e iff cond is false.
func (v *ValidationErrors) RequireError(cond bool, e Error) *ValidationErrors {
	return v.WhenError(!cond, e)
}

// RequireNotNil appends an error for field when value is nil or holds a
// nil pointer, map, slice, function or channel. An empty message defaults
// to "{field} is required".
func (v *ValidationErrors) RequireNotNil(value any, field, message string) *ValidationErrors {
	return v.Require(!isNil(value), field, defaultMessage(message, field, "is required"))
}

// RequireNotEmpty appends an error for field when value is empty or only
// whitespace. An empty message defaults to "{field} must not be empty".
func (v *ValidationErrors) RequireNotEmpty(value, field, message string) *ValidationErrors {
	return v.Require(!isBlank(value), field, defaultMessage(message, field, "must not be empty"))
}

// RequireNotEmptyItems appends an error for field when items is nil or
// has no elements. items must be a slice, array, map, channel or string;
// any other kind panics with [ErrInvalidArgument]. An empty message
// defaults to "{field} must not be empty".
func (v *ValidationErrors) RequireNotEmptyItems(items any, field, message string) *ValidationErrors {
	ok := hasItems("errors: RequireNotEmptyItems", items)
	return v.Require(ok, field, defaultMessage(message, field, "must not be empty"))
}

// Fields returns the distinct field names in first-seen order.
func (v *ValidationErrors) Fields() []string {
	var fields []string
	for _, e := range v.orEmpty().list.items {
		if !slices.Contains(fields, string(e.code)) {
			fields = append(fields, string(e.code))
		}
	}
	return fields
}

// ForField returns the messages recorded for field in insertion order.
func (v *ValidationErrors) ForField(field string) []string {
	var msgs []string
	for _, e := range v.orEmpty().list.items {
		if string(e.code) == field {
			msgs = append(msgs, e.message)
		}
	}
	return msgs
}

// Collection converts v to an [ErrorCollection] with the same entries.
func (v *ValidationErrors) Collection() *ErrorCollection {
	v = v.orEmpty()
	if len(v.list.items) == 0 {
		return emptyCollection
	}
	return &ErrorCollection{list: v.list}
}

// Summary renders every entry as "{field}: {message}" joined by "; ".
func (v *ValidationErrors) Summary() string {
	return v.SummaryWith(DefaultSeparator)
}

// SummaryWith is Summary with a custom separator.
func (v *ValidationErrors) SummaryWith(sep string) string {
	return v.orEmpty().list.summary(sep)
}

// Len returns the number of entries.
func (v *ValidationErrors) Len() int {
	return len(v.orEmpty().list.items)
}

// HasErrors reports whether there is at least one entry.
func (v *ValidationErrors) HasErrors() bool {
	return v.Len() > 0
}

// IsTransient reports whether any entry is transient.
func (v *ValidationErrors) IsTransient() bool {
	return v.orEmpty().list.transient
}

// Errors returns a copy of the entries in insertion order.
func (v *ValidationErrors) Errors() []Error {
	return slices.Clone(v.orEmpty().list.items)
}

// All returns an iterator over the entries in insertion order.
func (v *ValidationErrors) All() iter.Seq[Error] {
	return v.orEmpty().list.all()
}

// Equal reports whether both lists hold the same entries in the same
// order with the same transient flag.
func (v *ValidationErrors) Equal(other *ValidationErrors) bool {
	return v.orEmpty().list.equal(other.orEmpty().list)
}

// HTTPStatus returns 400 Bad Request.
func (v *ValidationErrors) HTTPStatus() int {
	return http.StatusBadRequest
}

// Error implements the error interface.
func (v *ValidationErrors) Error() string {
	return v.Summary()
}

// Unwrap returns the entries as errors.
func (v *ValidationErrors) Unwrap() []error {
	return v.orEmpty().list.unwrap()
}

// String returns the summary.
func (v *ValidationErrors) String() string {
	return v.Summary()
}

// LogValue implements slog.LogValuer.
func (v *ValidationErrors) LogValue() slog.Value {
	return listLogValue(v.orEmpty().list)
}

func defaultMessage(message, field, suffix string) string {
	if message != "" {
		return message
	}
	return fmt.Sprintf("%s %s", field, suffix)
}

func isNil(v any) bool {
	return contract.IsNil(v)
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}

// hasItems reports whether items holds at least one element.
func hasItems(op string, items any) bool {
	if contract.IsNil(items) {
		return false
	}
	rv := reflect.ValueOf(items)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array, reflect.Map, reflect.Chan, reflect.String:
		return rv.Len() > 0
	case reflect.Pointer:
		if rv.Elem().Kind() == reflect.Array {
			return rv.Elem().Len() > 0
		}
	}
	contract.Panicf(contract.ErrInvalidArgument, "%s: unsupported items type %T", op, items)
	return false
}
