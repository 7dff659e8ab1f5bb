package result

import (
	"context"

	"github.com/StricklySoft/stricklysoft-result/internal/contract"
)

// The functions in this file mirror the synchronous operations. The
// supplied function receives ctx and may block; the operation returns once
// it has returned. On the state where the function is not invoked nothing
// blocks and r is forwarded immediately.

// MapAsync is the blocking counterpart of [Map].
func MapAsync[T, U, E any](ctx context.Context, r Result[T, E], f func(context.Context, T) U) Result[U, E] {
	contract.NotNil("result: MapAsync", "f", f)
	r.mustInit("MapAsync")
	if r.state == failure {
		return Result[U, E]{state: failure, err: r.err}
	}
	return Result[U, E]{state: success, value: f(ctx, r.value)}
}

// MapErrorAsync is the blocking counterpart of [MapError].
func MapErrorAsync[T, E, F any](ctx context.Context, r Result[T, E], f func(context.Context, E) F) Result[T, F] {
	contract.NotNil("result: MapErrorAsync", "f", f)
	r.mustInit("MapErrorAsync")
	if r.state == success {
		return Result[T, F]{state: success, value: r.value}
	}
	return Failure[T](f(ctx, r.err))
}

// BindAsync is the blocking counterpart of [Bind].
//
// Example:
//
//	order := result.BindAsync(ctx, user, func(ctx context.Context, u User) result.Result[Order, sserr.Error] {
//	    return orders.Latest(ctx, u.ID)
//	})
func BindAsync[T, U, E any](ctx context.Context, r Result[T, E], f func(context.Context, T) Result[U, E]) Result[U, E] {
	contract.NotNil("result: BindAsync", "f", f)
	r.mustInit("BindAsync")
	if r.state == failure {
		return Result[U, E]{state: failure, err: r.err}
	}
	return f(ctx, r.value)
}

// MatchAsync is the blocking counterpart of [Match].
func MatchAsync[T, E, R any](ctx context.Context, r Result[T, E], onSuccess func(context.Context, T) R, onFailure func(context.Context, E) R) R {
	contract.NotNil("result: MatchAsync", "onSuccess", onSuccess)
	contract.NotNil("result: MatchAsync", "onFailure", onFailure)
	r.mustInit("MatchAsync")
	if r.state == success {
		return onSuccess(ctx, r.value)
	}
	return onFailure(ctx, r.err)
}

// TapAsync is the blocking counterpart of [Result.Tap].
func TapAsync[T, E any](ctx context.Context, r Result[T, E], f func(context.Context, T)) Result[T, E] {
	contract.NotNil("result: TapAsync", "f", f)
	r.mustInit("TapAsync")
	if r.state == success {
		f(ctx, r.value)
	}
	return r
}

// TapErrorAsync is the blocking counterpart of [Result.TapError].
func TapErrorAsync[T, E any](ctx context.Context, r Result[T, E], f func(context.Context, E)) Result[T, E] {
	contract.NotNil("result: TapErrorAsync", "f", f)
	r.mustInit("TapErrorAsync")
	if r.state == failure {
		f(ctx, r.err)
	}
	return r
}

// EnsureAsync is the blocking counterpart of [Result.Ensure]. Only pred
// blocks; errFn builds the error from the rejected value.
func EnsureAsync[T, E any](ctx context.Context, r Result[T, E], pred func(context.Context, T) bool, errFn func(T) E) Result[T, E] {
	contract.NotNil("result: EnsureAsync", "pred", pred)
	contract.NotNil("result: EnsureAsync", "errFn", errFn)
	r.mustInit("EnsureAsync")
	if r.state == failure || pred(ctx, r.value) {
		return r
	}
	return Failure[T](errFn(r.value))
}

// OrAsync is the blocking counterpart of [Result.OrFunc].
func OrAsync[T, E any](ctx context.Context, r Result[T, E], f func(context.Context, E) T) Result[T, E] {
	contract.NotNil("result: OrAsync", "f", f)
	r.mustInit("OrAsync")
	if r.state == success {
		return r
	}
	return Success[T, E](f(ctx, r.err))
}

// OrElseAsync is the blocking counterpart of [Result.OrElseFunc].
func OrElseAsync[T, E any](ctx context.Context, r Result[T, E], f func(context.Context, E) Result[T, E]) Result[T, E] {
	contract.NotNil("result: OrElseAsync", "f", f)
	r.mustInit("OrElseAsync")
	if r.state == success {
		return r
	}
	return f(ctx, r.err)
}
