package errors

import (
	"errors"
	"fmt"
	"testing"
)

func TestAsError_ErrorValue(t *testing.T) {
	e := New(CodeValidation, "test")

	got, ok := AsError(e)
	if !ok {
		t.Fatal("AsError should return true for an Error")
	}
	if got != e {
		t.Errorf("AsError = %v, want %v", got, e)
	}
}

func TestAsError_Wrapped(t *testing.T) {
	e := NotFound("user not found")
	wrapped := fmt.Errorf("get user: %w", e)

	got, ok := AsError(wrapped)
	if !ok {
		t.Fatal("AsError should find an Error in the chain")
	}
	if got.Code() != CodeNotFound {
		t.Errorf("AsError code = %v, want %v", got.Code(), CodeNotFound)
	}
}

func TestAsError_StandardError(t *testing.T) {
	got, ok := AsError(errors.New("standard error"))
	if ok {
		t.Error("AsError should return false for a standard error")
	}
	if !got.IsZero() {
		t.Error("AsError should return the zero Error for a standard error")
	}
}

func TestAsError_Nil(t *testing.T) {
	if _, ok := AsError(nil); ok {
		t.Error("AsError should return false for nil")
	}
}

func TestAsError_CollectionYieldsFirstEntry(t *testing.T) {
	c := EmptyCollection().WithError("a", "first").WithError("b", "second")

	got, ok := AsError(c)
	if !ok || got.Code() != "a" {
		t.Errorf("AsError(collection) = %v, %v; want first entry", got, ok)
	}
}

func TestGetCodeAndHasCode(t *testing.T) {
	err := fmt.Errorf("wrapped: %w", Conflict("exists"))

	if got := GetCode(err); got != CodeConflict {
		t.Errorf("GetCode = %v, want %v", got, CodeConflict)
	}
	if !HasCode(err, CodeConflict) {
		t.Error("HasCode should be true for matching code")
	}
	if HasCode(err, CodeNotFound) {
		t.Error("HasCode should be false for a different code")
	}
	if got := GetCode(errors.New("plain")); got != "" {
		t.Errorf("GetCode(plain) = %q, want empty", got)
	}
}

func TestIsTransient(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"nil", nil, false},
		{"plain error", errors.New("x"), false},
		{"permanent error", Permanent("a", "m"), false},
		{"transient error", Transient("a", "m"), true},
		{"wrapped transient", fmt.Errorf("w: %w", Timeout("slow")), true},
		{
			name: "collection with transient second entry",
			err:  EmptyCollection().WithError("a", "m").WithTransientError("b", "m"),
			want: true,
		},
		{
			name: "permanent collection",
			err:  EmptyCollection().WithError("a", "m"),
			want: false,
		},
		{
			name: "transient validation errors",
			err:  EmptyValidation().WithTransientField("email", "lookup unavailable"),
			want: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsTransient(tt.err); got != tt.want {
				t.Errorf("IsTransient() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCategoryChecks(t *testing.T) {
	tests := []struct {
		name  string
		check func(error) bool
		err   error
		want  bool
	}{
		{"IsValidation code", IsValidation, Validation("x"), true},
		{"IsValidation list", IsValidation, EmptyValidation().WithField("email", "bad"), true},
		{"IsValidation other", IsValidation, NotFound("x"), false},
		{"IsAuthentication", IsAuthentication, Unauthorized("x"), true},
		{"IsAuthorization", IsAuthorization, Forbidden("x"), true},
		{"IsAuthentication not authz", IsAuthentication, Forbidden("x"), false},
		{"IsNotFound", IsNotFound, NotFound("x"), true},
		{"IsConflict", IsConflict, Conflict("x"), true},
		{"IsInternal", IsInternal, Internal("x"), true},
		{"IsInternal panic", IsInternal, FromError(NewPanicError("x")), true},
		{"IsCanceled", IsCanceled, New(CodeCanceled, "x"), true},
		{"IsNotFound plain", IsNotFound, errors.New("not found"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.check(tt.err); got != tt.want {
				t.Errorf("%s() = %v, want %v", tt.name, got, tt.want)
			}
		})
	}
}

func TestContractSentinelsAreForwarded(t *testing.T) {
	v := &Violation{Kind: ErrWrongState, Message: "result: Value on failure"}
	if !Is(v, ErrWrongState) {
		t.Error("Is should match the violation kind")
	}
	var target *Violation
	if !As(fmt.Errorf("wrapped: %w", v), &target) {
		t.Error("As should find the violation")
	}
}
