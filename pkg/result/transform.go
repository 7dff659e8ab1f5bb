package result

import (
	"github.com/StricklySoft/stricklysoft-result/internal/contract"
)

// Map applies f to the value of a Success. A Failure is passed through
// and f is not invoked.
//
// Example:
//
//	length := result.Map(name, func(s string) int { return len(s) })
func Map[T, U, E any](r Result[T, E], f func(T) U) Result[U, E] {
	contract.NotNil("result: Map", "f", f)
	r.mustInit("Map")
	if r.state == failure {
		return Result[U, E]{state: failure, err: r.err}
	}
	return Result[U, E]{state: success, value: f(r.value)}
}

// MapError applies f to the error of a Failure. A Success is passed
// through and f is not invoked.
func MapError[T, E, F any](r Result[T, E], f func(E) F) Result[T, F] {
	contract.NotNil("result: MapError", "f", f)
	r.mustInit("MapError")
	if r.state == success {
		return Result[T, F]{state: success, value: r.value}
	}
	return Failure[T](f(r.err))
}

// Bind applies f to the value of a Success and returns its Result. A
// Failure is passed through and f is not invoked, so a chain of Binds
// stops at the first Failure.
//
// Example:
//
//	user := result.Bind(result.Bind(parseID(raw), loadUser), checkActive)
func Bind[T, U, E any](r Result[T, E], f func(T) Result[U, E]) Result[U, E] {
	contract.NotNil("result: Bind", "f", f)
	r.mustInit("Bind")
	if r.state == failure {
		return Result[U, E]{state: failure, err: r.err}
	}
	return f(r.value)
}

// Match invokes exactly one of onSuccess or onFailure and returns its
// result.
func Match[T, E, R any](r Result[T, E], onSuccess func(T) R, onFailure func(E) R) R {
	contract.NotNil("result: Match", "onSuccess", onSuccess)
	contract.NotNil("result: Match", "onFailure", onFailure)
	r.mustInit("Match")
	if r.state == success {
		return onSuccess(r.value)
	}
	return onFailure(r.err)
}

// Switch invokes exactly one of onSuccess or onFailure for its side
// effects.
func (r Result[T, E]) Switch(onSuccess func(T), onFailure func(E)) {
	contract.NotNil("result: Switch", "onSuccess", onSuccess)
	contract.NotNil("result: Switch", "onFailure", onFailure)
	r.mustInit("Switch")
	if r.state == success {
		onSuccess(r.value)
		return
	}
	onFailure(r.err)
}

// Tap invokes f with the value of a Success and returns r unchanged.
func (r Result[T, E]) Tap(f func(T)) Result[T, E] {
	contract.NotNil("result: Tap", "f", f)
	r.mustInit("Tap")
	if r.state == success {
		f(r.value)
	}
	return r
}

// TapError invokes f with the error of a Failure and returns r unchanged.
func (r Result[T, E]) TapError(f func(E)) Result[T, E] {
	contract.NotNil("result: TapError", "f", f)
	r.mustInit("TapError")
	if r.state == failure {
		f(r.err)
	}
	return r
}

// Ensure turns a Success into a Failure when pred rejects its value. The
// error is built by errFn from the rejected value. A Failure is returned
// unchanged and pred is not invoked.
//
// Example:
//
//	adult := r.Ensure(
//	    func(u User) bool { return u.Age >= 18 },
//	    func(u User) sserr.Error { return sserr.Permanentf("underage", "%s is under 18", u.Name) },
//	)
func (r Result[T, E]) Ensure(pred func(T) bool, errFn func(T) E) Result[T, E] {
	contract.NotNil("result: Ensure", "pred", pred)
	contract.NotNil("result: Ensure", "errFn", errFn)
	r.mustInit("Ensure")
	if r.state == failure || pred(r.value) {
		return r
	}
	return Failure[T](errFn(r.value))
}

// Or replaces a Failure with Success(v). A Success is returned unchanged.
func (r Result[T, E]) Or(v T) Result[T, E] {
	r.mustInit("Or")
	if r.state == success {
		return r
	}
	return Success[T, E](v)
}

// OrFunc replaces a Failure with Success(f(err)). f is only invoked on
// Failure.
func (r Result[T, E]) OrFunc(f func(E) T) Result[T, E] {
	contract.NotNil("result: OrFunc", "f", f)
	r.mustInit("OrFunc")
	if r.state == success {
		return r
	}
	return Success[T, E](f(r.err))
}

// OrElse replaces a Failure with alt, which may itself be a Failure. alt
// must be initialized.
func (r Result[T, E]) OrElse(alt Result[T, E]) Result[T, E] {
	r.mustInit("OrElse")
	alt.mustInit("OrElse")
	if r.state == success {
		return r
	}
	return alt
}

// OrElseFunc replaces a Failure with f(err). f is only invoked on Failure.
//
// Example:
//
//	user := fromCache(id).OrElseFunc(func(sserr.Error) result.Result[User, sserr.Error] {
//	    return fromDatabase(id)
//	})
func (r Result[T, E]) OrElseFunc(f func(E) Result[T, E]) Result[T, E] {
	contract.NotNil("result: OrElseFunc", "f", f)
	r.mustInit("OrElseFunc")
	if r.state == success {
		return r
	}
	return f(r.err)
}
