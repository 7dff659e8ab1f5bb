package result

import (
	"context"
	"errors"

	"github.com/StricklySoft/stricklysoft-result/internal/contract"
	sserr "github.com/StricklySoft/stricklysoft-result/pkg/errors"
)

// Try calls fn and converts its outcome into a Result. It is the boundary
// between error returns and panics on one side and Results on the other.
//
//   - fn returns normally: Success(value), nil.
//   - fn returns an error matching context.Canceled: if onCanceled is
//     non-nil, Failure(onCanceled(err)), nil; otherwise the zero Result
//     and err, so the cancellation keeps propagating.
//   - fn returns any other error: Failure(mapErr(err)), nil.
//   - fn panics: the panic value is wrapped in an [*sserr.PanicError] and
//     handled like a returned error. Contract violations are not
//     converted; they are re-raised.
//
// context.DeadlineExceeded is not a cancellation and goes to mapErr.
//
// Example:
//
//	r, err := result.Try(func() (Config, error) {
//	    return parse(raw)
//	}, sserr.FromError, nil)
func Try[T, E any](fn func() (T, error), mapErr func(error) E, onCanceled func(error) E) (Result[T, E], error) {
	contract.NotNil("result: Try", "fn", fn)
	contract.NotNil("result: Try", "mapErr", mapErr)
	v, err := guard(fn)
	return settle(v, err, mapErr, onCanceled)
}

// TryAsync is the context-aware form of [Try]. ctx is passed to fn; a
// cancellation is recognized only through the error fn returns.
//
// Example:
//
//	r, err := result.TryAsync(ctx, func(ctx context.Context) (*User, error) {
//	    return repo.Get(ctx, id)
//	}, sserr.FromError, func(err error) sserr.Error {
//	    return sserr.New(sserr.CodeCanceled, "lookup canceled")
//	})
func TryAsync[T, E any](ctx context.Context, fn func(context.Context) (T, error), mapErr func(error) E, onCanceled func(error) E) (Result[T, E], error) {
	contract.NotNil("result: TryAsync", "fn", fn)
	contract.NotNil("result: TryAsync", "mapErr", mapErr)
	v, err := guard(func() (T, error) { return fn(ctx) })
	return settle(v, err, mapErr, onCanceled)
}

// TryError is [Try] with [sserr.FromError] as the error mapping and no
// cancellation handler.
func TryError[T any](fn func() (T, error)) (Result[T, sserr.Error], error) {
	return Try(fn, sserr.FromError, nil)
}

// TryErrorAsync is [TryAsync] with [sserr.FromError] as the error mapping
// and no cancellation handler.
func TryErrorAsync[T any](ctx context.Context, fn func(context.Context) (T, error)) (Result[T, sserr.Error], error) {
	return TryAsync(ctx, fn, sserr.FromError, nil)
}

// guard calls fn, turning a panic into a *PanicError. Contract violations
// are re-raised.
func guard[T any](fn func() (T, error)) (v T, err error) {
	defer func() {
		p := recover()
		if p == nil {
			return
		}
		if _, ok := p.(*contract.Violation); ok {
			panic(p)
		}
		err = sserr.NewPanicError(p)
	}()
	return fn()
}

func settle[T, E any](v T, err error, mapErr func(error) E, onCanceled func(error) E) (Result[T, E], error) {
	if err == nil {
		return Success[T, E](v), nil
	}
	if errors.Is(err, context.Canceled) {
		if onCanceled == nil {
			return Result[T, E]{}, err
		}
		return Failure[T](onCanceled(err)), nil
	}
	return Failure[T](mapErr(err)), nil
}
