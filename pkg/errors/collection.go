package errors

import (
	"iter"
	"log/slog"
	"slices"
)

// ErrorCollection is an immutable, order-preserving list of [Error]
// values with an aggregate transient flag.
//
// The zero-length collection is a shared singleton returned by
// [EmptyCollection]. A nil *ErrorCollection behaves like the empty
// collection for every read and With* method.
//
// ErrorCollection implements error. Error returns the summary, and Unwrap
// exposes the entries so errors.Is and errors.As see each of them.
type ErrorCollection struct {
	list entryList
}

var emptyCollection = &ErrorCollection{}

// EmptyCollection returns the shared empty ErrorCollection.
func EmptyCollection() *ErrorCollection {
	return emptyCollection
}

// orEmpty maps a nil receiver to the singleton.
func (c *ErrorCollection) orEmpty() *ErrorCollection {
	if c == nil {
		return emptyCollection
	}
	return c
}

// WithError returns a new collection with a permanent entry appended.
// It panics with [ErrInvalidArgument] if code or message is blank.
func (c *ErrorCollection) WithError(code Code, message string) *ErrorCollection {
	return c.WithErrorValue(newEntry("errors: WithError", "code", code, message, false))
}

// WithTransientError returns a new collection with a transient entry
// appended. It panics with [ErrInvalidArgument] if code or message is
// blank.
func (c *ErrorCollection) WithTransientError(code Code, message string) *ErrorCollection {
	return c.WithErrorValue(newEntry("errors: WithTransientError", "code", code, message, true))
}

// WithErrorValue returns a new collection with e appended. It panics with
// [ErrInvalidArgument] if e is the zero Error.
func (c *ErrorCollection) WithErrorValue(e Error) *ErrorCollection {
	checkEntry("errors: WithErrorValue", e)
	return &ErrorCollection{list: c.orEmpty().list.with(e)}
}

// Merge returns a collection holding c's entries followed by other's.
// When either side is empty the other side is returned unchanged.
func (c *ErrorCollection) Merge(other *ErrorCollection) *ErrorCollection {
	c, other = c.orEmpty(), other.orEmpty()
	switch {
	case len(other.list.items) == 0:
		return c
	case len(c.list.items) == 0:
		return other
	}
	return &ErrorCollection{list: c.list.concat(other.list)}
}

// When appends a permanent entry iff cond is true.
func (c *ErrorCollection) When(cond bool, code Code, message string) *ErrorCollection {
	if cond {
		return c.WithError(code, message)
	}
	return c.orEmpty()
}

// WhenFunc appends a permanent entry iff pred returns true. pred is
// invoked exactly once.
func (c *ErrorCollection) WhenFunc(pred func() bool, code Code, message string) *ErrorCollection {
	return c.When(evalPredicate("errors: WhenFunc", pred), code, message)
}

// Require appends a permanent entry iff cond is false.
//
// Example:
//
//	errs = errs.Require(user != nil, "not_found", "User not found")
func (c *ErrorCollection) Require(cond bool, code Code, message string) *ErrorCollection {
	return c.When(!cond, code, message)
}

// RequireFunc appends a permanent entry iff pred returns false. pred is
// invoked exactly once.
func (c *ErrorCollection) RequireFunc(pred func() bool, code Code, message string) *ErrorCollection {
	return c.Require(evalPredicate("errors: RequireFunc", pred), code, message)
}

// WhenError appends e iff cond is true. Use it for transient entries.
func (c *ErrorCollection) WhenError(cond bool, e Error) *ErrorCollection {
	checkEntry("errors: WhenError", e)
	if cond {
		return c.WithErrorValue(e)
	}
	return c.orEmpty()
}

// RequireError appends e iff cond is false.
func (c *ErrorCollection) RequireError(cond bool, e Error) *ErrorCollection {
	return c.WhenError(!cond, e)
}

// Summary renders every entry as "{code}: {message}" joined by "; ".
// The empty collection renders as "".
func (c *ErrorCollection) Summary() string {
	return c.SummaryWith(DefaultSeparator)
}

// SummaryWith is Summary with a custom separator.
func (c *ErrorCollection) SummaryWith(sep string) string {
	return c.orEmpty().list.summary(sep)
}

// Len returns the number of entries.
func (c *ErrorCollection) Len() int {
	return len(c.orEmpty().list.items)
}

// HasErrors reports whether the collection has at least one entry.
func (c *ErrorCollection) HasErrors() bool {
	return c.Len() > 0
}

// IsTransient reports whether any entry is transient.
func (c *ErrorCollection) IsTransient() bool {
	return c.orEmpty().list.transient
}

// Errors returns a copy of the entries in insertion order.
func (c *ErrorCollection) Errors() []Error {
	return slices.Clone(c.orEmpty().list.items)
}

// All returns an iterator over the entries in insertion order.
func (c *ErrorCollection) All() iter.Seq[Error] {
	return c.orEmpty().list.all()
}

// Equal reports whether both collections hold the same entries in the
// same order with the same transient flag.
func (c *ErrorCollection) Equal(other *ErrorCollection) bool {
	return c.orEmpty().list.equal(other.orEmpty().list)
}

// Error implements the error interface.
func (c *ErrorCollection) Error() string {
	return c.Summary()
}

// Unwrap returns the entries as errors.
func (c *ErrorCollection) Unwrap() []error {
	return c.orEmpty().list.unwrap()
}

// String returns the summary.
func (c *ErrorCollection) String() string {
	return c.Summary()
}

// LogValue implements slog.LogValuer.
func (c *ErrorCollection) LogValue() slog.Value {
	return listLogValue(c.orEmpty().list)
}

func listLogValue(l entryList) slog.Value {
	return slog.GroupValue(
		slog.Int("count", len(l.items)),
		slog.Bool("transient", l.transient),
		slog.String("summary", l.summary(DefaultSeparator)),
	)
}
