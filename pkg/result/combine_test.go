package result

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/StricklySoft/stricklysoft-result/internal/testutil"
	sserr "github.com/StricklySoft/stricklysoft-result/pkg/errors"
)

func TestCombine(t *testing.T) {
	t.Parallel()
	name := Success[string, sserr.Error]("ada")
	age := Success[int, sserr.Error](36)
	admin := Success[bool, sserr.Error](true)
	score := Success[float64, sserr.Error](9.5)

	assert.Equal(t, Tuple2[string, int]{"ada", 36}, Combine2(name, age).Value())
	assert.Equal(t, Tuple3[string, int, bool]{"ada", 36, true}, Combine3(name, age, admin).Value())
	assert.Equal(t, Tuple4[string, int, bool, float64]{"ada", 36, true, 9.5}, Combine4(name, age, admin, score).Value())
	assert.Equal(t, "(ada, 36)", Combine2(name, age).Value().String())
}

func TestCombine_ReturnsFirstFailure(t *testing.T) {
	t.Parallel()
	first := Failure[int](sserr.NotFound("first"))
	second := Failure[string](sserr.NotFound("second"))

	r := Combine3(Success[bool, sserr.Error](true), first, second)

	testutil.RequireFailure(t, r)
	assert.Equal(t, "first", r.Err().Message())
}

func TestCombineAll_MergesEveryFailure(t *testing.T) {
	t.Parallel()
	name := Failure[string](sserr.EmptyValidation().WithField("name", "Name is required"))
	age := Success[int, *sserr.ValidationErrors](36)
	email := Failure[string](sserr.EmptyValidation().WithField("email", "Email is invalid"))
	terms := Failure[bool](sserr.EmptyValidation().WithTransientField("terms", "Terms service unavailable"))

	r := CombineAll4(name, age, email, terms)

	testutil.RequireFailure(t, r)
	assert.Equal(t, []string{"name", "email", "terms"}, r.Err().Fields())
	assert.True(t, r.Err().IsTransient())

	assert.Equal(t, []string{"name", "email"}, CombineAll3(name, age, email).Err().Fields())
	assert.Equal(t, []string{"name"}, CombineAll2(name, age).Err().Fields())
}

func TestCombineAll_Success(t *testing.T) {
	t.Parallel()
	a := Success[int, *sserr.ErrorCollection](1)
	b := Success[string, *sserr.ErrorCollection]("b")

	assert.Equal(t, Tuple2[int, string]{1, "b"}, CombineAll2(a, b).Value())
}

func TestCombine_UninitializedIsViolation(t *testing.T) {
	t.Parallel()
	var uninit Result[int, sserr.Error]
	testutil.RequireViolation(t, sserr.ErrUninitialized, func() {
		Combine2(Success[int, sserr.Error](1), uninit)
	})
}
