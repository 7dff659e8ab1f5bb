package errors

import (
	"fmt"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/StricklySoft/stricklysoft-result/internal/testutil"
	"github.com/StricklySoft/stricklysoft-result/internal/testutil/fixtures"
)

func TestErrorCollection_SummaryScenario(t *testing.T) {
	t.Parallel()
	errs := EmptyCollection().
		WithError(fixtures.NotFoundCode, fixtures.NotFoundMessage).
		WithTransientError(fixtures.TimeoutCode, fixtures.TimeoutMessage)

	assert.Equal(t, fixtures.LookupSummary, errs.Summary())
	assert.True(t, errs.IsTransient())
	assert.Equal(t, 2, errs.Len())
	assert.True(t, errs.HasErrors())
}

func TestErrorCollection_Empty(t *testing.T) {
	t.Parallel()
	empty := EmptyCollection()

	assert.Same(t, empty, EmptyCollection(), "empty collection is a singleton")
	assert.Equal(t, 0, empty.Len())
	assert.False(t, empty.HasErrors())
	assert.False(t, empty.IsTransient())
	assert.Equal(t, "", empty.Summary())
	assert.Empty(t, empty.Errors())
	assert.Nil(t, empty.Unwrap())
}

func TestErrorCollection_NilReadsAsEmpty(t *testing.T) {
	t.Parallel()
	var c *ErrorCollection

	assert.Equal(t, 0, c.Len())
	assert.Equal(t, "", c.Summary())
	assert.True(t, c.Equal(EmptyCollection()))
	assert.Same(t, EmptyCollection(), c.Merge(nil))

	grown := c.WithError("a", "m")
	assert.Equal(t, 1, grown.Len())
}

func TestErrorCollection_WithErrorIsImmutable(t *testing.T) {
	t.Parallel()
	base := EmptyCollection().WithError("a", "first")
	left := base.WithError("b", "left")
	right := base.WithError("c", "right")

	assert.Equal(t, 1, base.Len(), "receiver is not modified")
	assert.Equal(t, "a: first; b: left", left.Summary())
	assert.Equal(t, "a: first; c: right", right.Summary())
}

func TestErrorCollection_OrderSensitiveEquality(t *testing.T) {
	t.Parallel()
	ab := EmptyCollection().WithError("a", "m1").WithError("b", "m2")
	ba := EmptyCollection().WithError("b", "m2").WithError("a", "m1")
	ab2 := EmptyCollection().WithError("a", "m1").WithError("b", "m2")

	assert.False(t, ab.Equal(ba))
	assert.True(t, ab.Equal(ab2))
	assert.False(t, ab.Equal(EmptyCollection()))
}

func TestErrorCollection_EqualityIncludesTransientFlag(t *testing.T) {
	t.Parallel()
	p := EmptyCollection().WithError("a", "m")
	tr := EmptyCollection().WithTransientError("a", "m")

	assert.False(t, p.Equal(tr))
}

func TestErrorCollection_TransientPropagation(t *testing.T) {
	t.Parallel()
	permanent := EmptyCollection().WithError("a", "m")
	transient := EmptyCollection().WithTransientError("b", "m")

	assert.False(t, permanent.IsTransient())
	assert.True(t, permanent.WithTransientError("b", "m").IsTransient())
	assert.True(t, permanent.Merge(transient).IsTransient())
	assert.True(t, transient.Merge(permanent).IsTransient())
	assert.True(t, permanent.WithErrorValue(Timeout("slow")).IsTransient())
}

func TestErrorCollection_MergeEmptyIdentity(t *testing.T) {
	t.Parallel()
	nonEmpty := EmptyCollection().WithError("a", "m")

	assert.Same(t, nonEmpty, nonEmpty.Merge(EmptyCollection()))
	assert.Same(t, nonEmpty, EmptyCollection().Merge(nonEmpty))
	assert.Same(t, nonEmpty, nonEmpty.Merge(nil))
}

func TestErrorCollection_MergeOrder(t *testing.T) {
	t.Parallel()
	left := EmptyCollection().WithError("a", "1").WithError("b", "2")
	right := EmptyCollection().WithError("c", "3")

	merged := left.Merge(right)

	assert.Equal(t, "a: 1; b: 2; c: 3", merged.Summary())
	assert.Equal(t, 2, left.Len(), "merge does not modify its operands")
}

func TestErrorCollection_SummaryWith(t *testing.T) {
	t.Parallel()
	errs := EmptyCollection().
		WithError("a", "first").
		WithErrorValue(Permanent("", "bare message"))

	assert.Equal(t, "a: first | bare message", errs.SummaryWith(" | "))
	assert.Equal(t, errs.Summary(), errs.Error())
	assert.Equal(t, errs.Summary(), fmt.Sprint(errs))
}

func TestErrorCollection_InvalidArguments(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		fn   func()
	}{
		{"blank code", func() { EmptyCollection().WithError("", "m") }},
		{"whitespace code", func() { EmptyCollection().WithError("  ", "m") }},
		{"blank message", func() { EmptyCollection().WithError("a", "") }},
		{"blank transient message", func() { EmptyCollection().WithTransientError("a", " ") }},
		{"zero error value", func() { EmptyCollection().WithErrorValue(Error{}) }},
		{"nil WhenFunc predicate", func() { EmptyCollection().WhenFunc(nil, "a", "m") }},
		{"nil RequireFunc predicate", func() { EmptyCollection().RequireFunc(nil, "a", "m") }},
		{"zero WhenError value", func() { EmptyCollection().WhenError(false, Error{}) }},
		{"blank code in taken When", func() { EmptyCollection().When(true, "", "m") }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			testutil.AssertViolation(t, ErrInvalidArgument, tt.fn)
		})
	}
}

func TestErrorCollection_Conditionals(t *testing.T) {
	t.Parallel()
	errs := EmptyCollection().
		When(true, "when_true", "added").
		When(false, "when_false", "skipped").
		Require(false, "require_false", "added").
		Require(true, "require_true", "skipped").
		WhenError(true, Transient("quota", "added")).
		RequireError(true, Transient("skipped", "skipped"))

	codes := make([]Code, 0, errs.Len())
	for e := range errs.All() {
		codes = append(codes, e.Code())
	}
	assert.Equal(t, []Code{"when_true", "require_false", "quota"}, codes)
	assert.True(t, errs.IsTransient())
}

func TestErrorCollection_NotTakenConditionalReturnsReceiver(t *testing.T) {
	t.Parallel()
	base := EmptyCollection().WithError("a", "m")

	assert.Same(t, base, base.When(false, "b", "m"))
	assert.Same(t, base, base.Require(true, "b", "m"))
}

func TestErrorCollection_LazyPredicatesInvokedOnce(t *testing.T) {
	t.Parallel()
	calls := 0
	pred := func(v bool) func() bool {
		return func() bool {
			calls++
			return v
		}
	}

	errs := EmptyCollection().
		WhenFunc(pred(true), "a", "m").
		RequireFunc(pred(false), "b", "m").
		RequireFunc(pred(true), "c", "m")

	assert.Equal(t, 3, calls)
	assert.Equal(t, 2, errs.Len())
}

func TestErrorCollection_ErrorsReturnsCopy(t *testing.T) {
	t.Parallel()
	errs := EmptyCollection().WithError("a", "m")
	got := errs.Errors()
	got[0] = Permanent("mutated", "m")

	assert.Equal(t, Code("a"), errs.Errors()[0].Code())
}

func TestErrorCollection_AllStopsEarly(t *testing.T) {
	t.Parallel()
	errs := EmptyCollection().WithError("a", "1").WithError("b", "2").WithError("c", "3")

	var seen []Code
	for e := range errs.All() {
		seen = append(seen, e.Code())
		if e.Code() == "b" {
			break
		}
	}
	assert.Equal(t, []Code{"a", "b"}, seen)
}

func TestErrorCollection_ErrorsIsAndAs(t *testing.T) {
	t.Parallel()
	notFound := Permanent("not_found", "User not found")
	errs := EmptyCollection().WithError("a", "m").WithErrorValue(notFound)
	wrapped := fmt.Errorf("load profile: %w", errs)

	assert.ErrorIs(t, wrapped, notFound)
	var target *ErrorCollection
	require.ErrorAs(t, wrapped, &target)
	assert.Same(t, errs, target)
	assert.True(t, slices.Equal(errs.Errors(), target.Errors()))
}

func TestErrorCollection_LogValue(t *testing.T) {
	t.Parallel()
	logs := testutil.NewLogBuffer()
	errs := EmptyCollection().WithError("a", "1").WithTransientError("b", "2")

	logs.Logger.Error("batch failed", "errors", errs)

	entries := logs.Entries(t)
	require.Len(t, entries, 1)
	group, ok := entries[0]["errors"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, float64(2), group["count"])
	assert.Equal(t, true, group["transient"])
	assert.Equal(t, "a: 1; b: 2", group["summary"])
}
