package errors

import (
	"iter"
	"slices"
	"strings"

	"github.com/StricklySoft/stricklysoft-result/internal/contract"
)

// DefaultSeparator joins entries in Summary.
const DefaultSeparator = "; "

// entryList is the ordered, append-only storage shared by ErrorCollection,
// ValidationErrors and both builders. Collections never mutate their
// list after construction; builders do.
type entryList struct {
	items     []Error
	transient bool
}

// with returns a new list with e appended. The receiver is untouched.
func (l entryList) with(e Error) entryList {
	items := make([]Error, len(l.items), len(l.items)+1)
	copy(items, l.items)
	return entryList{
		items:     append(items, e),
		transient: l.transient || e.transient,
	}
}

// concat returns a new list with other's entries after l's.
func (l entryList) concat(other entryList) entryList {
	items := make([]Error, 0, len(l.items)+len(other.items))
	items = append(items, l.items...)
	items = append(items, other.items...)
	return entryList{items: items, transient: l.transient || other.transient}
}

// push appends e in place.
func (l *entryList) push(e Error) {
	l.items = append(l.items, e)
	l.transient = l.transient || e.transient
}

// pushAll appends other's entries in place.
func (l *entryList) pushAll(other entryList) {
	l.items = append(l.items, other.items...)
	l.transient = l.transient || other.transient
}

func (l *entryList) reset() {
	l.items = l.items[:0]
	l.transient = false
}

// frozen returns an independent copy that a collection may own.
func (l entryList) frozen() entryList {
	return entryList{items: slices.Clone(l.items), transient: l.transient}
}

func (l entryList) summary(sep string) string {
	if len(l.items) == 0 {
		return ""
	}
	var b strings.Builder
	for i, e := range l.items {
		if i > 0 {
			b.WriteString(sep)
		}
		b.WriteString(e.Error())
	}
	return b.String()
}

func (l entryList) equal(other entryList) bool {
	return l.transient == other.transient && slices.Equal(l.items, other.items)
}

func (l entryList) all() iter.Seq[Error] {
	return func(yield func(Error) bool) {
		for _, e := range l.items {
			if !yield(e) {
				return
			}
		}
	}
}

func (l entryList) unwrap() []error {
	if len(l.items) == 0 {
		return nil
	}
	errs := make([]error, len(l.items))
	for i, e := range l.items {
		errs[i] = e
	}
	return errs
}

// newEntry validates a code/message pair and builds an Error from it.
// label names the code slot in the violation message ("code" or "field").
func newEntry(op, label string, code Code, message string, transient bool) Error {
	contract.NotBlank(op, label, string(code))
	contract.NotBlank(op, "message", message)
	return Error{code: code, message: message, transient: transient}
}

// checkEntry rejects the zero Error.
func checkEntry(op string, e Error) Error {
	if e.IsZero() {
		contract.Panicf(contract.ErrInvalidArgument, "%s: error must not be absent", op)
	}
	return e
}

// evalPredicate invokes pred exactly once, panicking first if it is nil.
func evalPredicate(op string, pred func() bool) bool {
	contract.NotNil(op, "predicate", pred)
	return pred()
}
