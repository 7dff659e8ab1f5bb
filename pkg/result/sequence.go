package result

import (
	"context"
	"fmt"
	"iter"

	"golang.org/x/sync/errgroup"

	"github.com/StricklySoft/stricklysoft-result/internal/contract"
	sserr "github.com/StricklySoft/stricklysoft-result/pkg/errors"
)

// Mergeable constrains collect-all combinators to the error collections
// that can be merged.
type Mergeable[E any] interface {
	*sserr.ErrorCollection | *sserr.ValidationErrors
	Merge(E) E
}

// Sequence collects the values of results in order. It stops at the first
// Failure and returns it; the iterator is not advanced past that element.
//
// Example:
//
//	all := result.Sequence(slices.Values(parsed))
func Sequence[T, E any](results iter.Seq[Result[T, E]]) Result[[]T, E] {
	contract.NotNil("result: Sequence", "results", results)
	values := []T{}
	for r := range results {
		r.mustInit("Sequence")
		if r.state == failure {
			return Result[[]T, E]{state: failure, err: r.err}
		}
		values = append(values, r.value)
	}
	return Success[[]T, E](values)
}

// Traverse applies f to each item in order and collects the values. It
// stops at the first Failure; f is not invoked for later items.
func Traverse[A, B, E any](items iter.Seq[A], f func(A) Result[B, E]) Result[[]B, E] {
	contract.NotNil("result: Traverse", "items", items)
	contract.NotNil("result: Traverse", "f", f)
	return Sequence[B, E](func(yield func(Result[B, E]) bool) {
		for a := range items {
			if !yield(f(a)) {
				return
			}
		}
	})
}

// SequenceAll evaluates every result and merges every error in order. It
// returns Success with all values only if nothing failed.
//
// Example:
//
//	checks := []result.Result[string, *sserr.ValidationErrors]{checkName(n), checkEmail(e)}
//	r := result.SequenceAll(slices.Values(checks))
func SequenceAll[T any, E Mergeable[E]](results iter.Seq[Result[T, E]]) Result[[]T, E] {
	contract.NotNil("result: SequenceAll", "results", results)
	var (
		values = []T{}
		errs   E
		failed bool
	)
	for r := range results {
		r.mustInit("SequenceAll")
		if r.state == failure {
			errs = errs.Merge(r.err)
			failed = true
			continue
		}
		values = append(values, r.value)
	}
	if failed {
		return Failure[[]T](errs)
	}
	return Success[[]T, E](values)
}

// TraverseAll applies f to every item and merges every error in order.
func TraverseAll[A, B any, E Mergeable[E]](items iter.Seq[A], f func(A) Result[B, E]) Result[[]B, E] {
	contract.NotNil("result: TraverseAll", "items", items)
	contract.NotNil("result: TraverseAll", "f", f)
	return SequenceAll[B, E](func(yield func(Result[B, E]) bool) {
		for a := range items {
			if !yield(f(a)) {
				return
			}
		}
	})
}

// SequenceAsync runs fns one after another, each starting only after the
// previous one returned, and stops at the first Failure.
func SequenceAsync[T, E any](ctx context.Context, fns []func(context.Context) Result[T, E]) Result[[]T, E] {
	for i, fn := range fns {
		if fn == nil {
			contract.Panicf(contract.ErrInvalidArgument, "result: SequenceAsync: fns[%d] must not be nil", i)
		}
	}
	values := make([]T, 0, len(fns))
	for _, fn := range fns {
		r := fn(ctx)
		r.mustInit("SequenceAsync")
		if r.state == failure {
			return Result[[]T, E]{state: failure, err: r.err}
		}
		values = append(values, r.value)
	}
	return Success[[]T, E](values)
}

// TraverseAsync applies f to items one after another and stops at the
// first Failure.
func TraverseAsync[A, B, E any](ctx context.Context, items []A, f func(context.Context, A) Result[B, E]) Result[[]B, E] {
	contract.NotNil("result: TraverseAsync", "f", f)
	values := make([]B, 0, len(items))
	for _, a := range items {
		r := f(ctx, a)
		r.mustInit("TraverseAsync")
		if r.state == failure {
			return Result[[]B, E]{state: failure, err: r.err}
		}
		values = append(values, r.value)
	}
	return Success[[]B, E](values)
}

// SequenceAllAsync starts every fn on its own goroutine, waits for all of
// them and merges every error in the order of fns. If any fn panics, the
// panic is re-raised on the calling goroutine after all of them have
// returned.
func SequenceAllAsync[T any, E Mergeable[E]](ctx context.Context, fns []func(context.Context) Result[T, E]) Result[[]T, E] {
	for i, fn := range fns {
		if fn == nil {
			contract.Panicf(contract.ErrInvalidArgument, "result: SequenceAllAsync: fns[%d] must not be nil", i)
		}
	}
	return fanOut(ctx, len(fns), func(ctx context.Context, i int) Result[T, E] {
		return fns[i](ctx)
	})
}

// TraverseAllAsync starts f for every item on its own goroutine, waits for
// all of them and merges every error in the order of items.
//
// Example:
//
//	r := result.TraverseAllAsync(ctx, emails, func(ctx context.Context, e string) result.Result[bool, *sserr.ErrorCollection] {
//	    return checkDeliverable(ctx, e)
//	})
func TraverseAllAsync[A, B any, E Mergeable[E]](ctx context.Context, items []A, f func(context.Context, A) Result[B, E]) Result[[]B, E] {
	contract.NotNil("result: TraverseAllAsync", "f", f)
	return fanOut(ctx, len(items), func(ctx context.Context, i int) Result[B, E] {
		return f(ctx, items[i])
	})
}

// fanOut runs call for indexes [0, n) concurrently and joins the results
// in index order.
func fanOut[T any, E Mergeable[E]](ctx context.Context, n int, call func(context.Context, int) Result[T, E]) Result[[]T, E] {
	results := make([]Result[T, E], n)

	var g errgroup.Group
	for i := range n {
		g.Go(func() (err error) {
			defer func() {
				if p := recover(); p != nil {
					err = &recovered{value: p}
				}
			}()
			results[i] = call(ctx, i)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		panic(err.(*recovered).value)
	}

	return SequenceAll[T, E](func(yield func(Result[T, E]) bool) {
		for _, r := range results {
			if !yield(r) {
				return
			}
		}
	})
}

// recovered carries a goroutine panic through errgroup.Wait.
type recovered struct {
	value any
}

func (r *recovered) Error() string {
	return fmt.Sprintf("panic: %v", r.value)
}
