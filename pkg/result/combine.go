package result

import "fmt"

// Tuple2 holds the values of two combined Results.
type Tuple2[A, B any] struct {
	First  A
	Second B
}

func (t Tuple2[A, B]) String() string {
	return fmt.Sprintf("(%v, %v)", t.First, t.Second)
}

// Tuple3 holds the values of three combined Results.
type Tuple3[A, B, C any] struct {
	First  A
	Second B
	Third  C
}

func (t Tuple3[A, B, C]) String() string {
	return fmt.Sprintf("(%v, %v, %v)", t.First, t.Second, t.Third)
}

// Tuple4 holds the values of four combined Results.
type Tuple4[A, B, C, D any] struct {
	First  A
	Second B
	Third  C
	Fourth D
}

func (t Tuple4[A, B, C, D]) String() string {
	return fmt.Sprintf("(%v, %v, %v, %v)", t.First, t.Second, t.Third, t.Fourth)
}

// firstFailure returns the error of the first Failure in rs.
func firstFailure[E any](rs ...interface{ failed() (E, bool) }) (E, bool) {
	for _, r := range rs {
		if e, ok := r.failed(); ok {
			return e, true
		}
	}
	var zero E
	return zero, false
}

// failed reports the error of a Failure. It panics on an uninitialized r.
func (r Result[T, E]) failed() (E, bool) {
	r.mustInit("Combine")
	return r.err, r.state == failure
}

// Combine2 returns a Tuple2 of both values, or the first Failure in
// argument order.
//
// Example:
//
//	pair := result.Combine2(loadUser(id), loadSettings(id))
func Combine2[A, B, E any](a Result[A, E], b Result[B, E]) Result[Tuple2[A, B], E] {
	if e, ok := firstFailure[E](a, b); ok {
		return Failure[Tuple2[A, B]](e)
	}
	return Success[Tuple2[A, B], E](Tuple2[A, B]{a.value, b.value})
}

// Combine3 returns a Tuple3 of all values, or the first Failure in
// argument order.
func Combine3[A, B, C, E any](a Result[A, E], b Result[B, E], c Result[C, E]) Result[Tuple3[A, B, C], E] {
	if e, ok := firstFailure[E](a, b, c); ok {
		return Failure[Tuple3[A, B, C]](e)
	}
	return Success[Tuple3[A, B, C], E](Tuple3[A, B, C]{a.value, b.value, c.value})
}

// Combine4 returns a Tuple4 of all values, or the first Failure in
// argument order.
func Combine4[A, B, C, D, E any](a Result[A, E], b Result[B, E], c Result[C, E], d Result[D, E]) Result[Tuple4[A, B, C, D], E] {
	if e, ok := firstFailure[E](a, b, c, d); ok {
		return Failure[Tuple4[A, B, C, D]](e)
	}
	return Success[Tuple4[A, B, C, D], E](Tuple4[A, B, C, D]{a.value, b.value, c.value, d.value})
}

// mergeFailures merges the errors of every Failure in rs in order.
func mergeFailures[E Mergeable[E]](rs ...interface{ failed() (E, bool) }) (E, bool) {
	var (
		errs  E
		found bool
	)
	for _, r := range rs {
		if e, ok := r.failed(); ok {
			errs = errs.Merge(e)
			found = true
		}
	}
	return errs, found
}

// CombineAll2 returns a Tuple2 of both values, or a Failure merging every
// error in argument order.
func CombineAll2[A, B any, E Mergeable[E]](a Result[A, E], b Result[B, E]) Result[Tuple2[A, B], E] {
	if errs, ok := mergeFailures[E](a, b); ok {
		return Failure[Tuple2[A, B]](errs)
	}
	return Success[Tuple2[A, B], E](Tuple2[A, B]{a.value, b.value})
}

// CombineAll3 returns a Tuple3 of all values, or a Failure merging every
// error in argument order.
//
// Example:
//
//	form := result.CombineAll3(validateName(n), validateEmail(e), validateAge(a))
func CombineAll3[A, B, C any, E Mergeable[E]](a Result[A, E], b Result[B, E], c Result[C, E]) Result[Tuple3[A, B, C], E] {
	if errs, ok := mergeFailures[E](a, b, c); ok {
		return Failure[Tuple3[A, B, C]](errs)
	}
	return Success[Tuple3[A, B, C], E](Tuple3[A, B, C]{a.value, b.value, c.value})
}

// CombineAll4 returns a Tuple4 of all values, or a Failure merging every
// error in argument order.
func CombineAll4[A, B, C, D any, E Mergeable[E]](a Result[A, E], b Result[B, E], c Result[C, E], d Result[D, E]) Result[Tuple4[A, B, C, D], E] {
	if errs, ok := mergeFailures[E](a, b, c, d); ok {
		return Failure[Tuple4[A, B, C, D]](errs)
	}
	return Success[Tuple4[A, B, C, D], E](Tuple4[A, B, C, D]{a.value, b.value, c.value, d.value})
}
