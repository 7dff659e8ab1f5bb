package errors

// ErrorCollectionBuilder accumulates [Error] entries in place and freezes
// them into an [ErrorCollection] with Build. Every mutator returns the
// builder for chaining.
//
// The zero value is ready to use. A builder is not safe for concurrent
// use.
//
// Example:
//
//	errs := errors.NewErrorCollectionBuilder().
//	    Require(user != nil, "not_found", "User not found").
//	    WhenError(quotaErr != nil, errors.Transient("quota", "Quota service unavailable")).
//	    Build()
type ErrorCollectionBuilder struct {
	list entryList
}

// NewErrorCollectionBuilder returns an empty builder.
func NewErrorCollectionBuilder() *ErrorCollectionBuilder {
	return &ErrorCollectionBuilder{}
}

// Add appends a permanent entry. It panics with [ErrInvalidArgument] if
// code or message is blank.
func (b *ErrorCollectionBuilder) Add(code Code, message string) *ErrorCollectionBuilder {
	b.list.push(newEntry("errors: Add", "code", code, message, false))
	return b
}

// AddTransient appends a transient entry.
func (b *ErrorCollectionBuilder) AddTransient(code Code, message string) *ErrorCollectionBuilder {
	b.list.push(newEntry("errors: AddTransient", "code", code, message, true))
	return b
}

// AddError appends e. It panics with [ErrInvalidArgument] if e is the
// zero Error.
func (b *ErrorCollectionBuilder) AddError(e Error) *ErrorCollectionBuilder {
	b.list.push(checkEntry("errors: AddError", e))
	return b
}

// When appends a permanent entry iff cond is true.
func (b *ErrorCollectionBuilder) When(cond bool, code Code, message string) *ErrorCollectionBuilder {
	if cond {
		return b.Add(code, message)
	}
	return b
}

// WhenFunc appends a permanent entry iff pred returns true.
func (b *ErrorCollectionBuilder) WhenFunc(pred func() bool, code Code, message string) *ErrorCollectionBuilder {
	return b.When(evalPredicate("errors: WhenFunc", pred), code, message)
}

// Require appends a permanent entry iff cond is false.
func (b *ErrorCollectionBuilder) Require(cond bool, code Code, message string) *ErrorCollectionBuilder {
	return b.When(!cond, code, message)
}

// RequireFunc appends a permanent entry iff pred returns false.
func (b *ErrorCollectionBuilder) RequireFunc(pred func() bool, code Code, message string) *ErrorCollectionBuilder {
	return b.Require(evalPredicate("errors: RequireFunc", pred), code, message)
}

// WhenError appends e iff cond is true.
func (b *ErrorCollectionBuilder) WhenError(cond bool, e Error) *ErrorCollectionBuilder {
	checkEntry("errors: WhenError", e)
	if cond {
		b.list.push(e)
	}
	return b
}

// RequireError appends e iff cond is false.
func (b *ErrorCollectionBuilder) RequireError(cond bool, e Error) *ErrorCollectionBuilder {
	return b.WhenError(!cond, e)
}

// Merge appends every entry of c.
func (b *ErrorCollectionBuilder) Merge(c *ErrorCollection) *ErrorCollectionBuilder {
	b.list.pushAll(c.orEmpty().list)
	return b
}

// Len returns the number of accumulated entries.
func (b *ErrorCollectionBuilder) Len() int {
	return len(b.list.items)
}

// HasErrors reports whether anything has been added.
func (b *ErrorCollectionBuilder) HasErrors() bool {
	return b.Len() > 0
}

// Build freezes the current entries into an ErrorCollection. It returns
// [EmptyCollection] when nothing was added. The builder keeps its entries.
func (b *ErrorCollectionBuilder) Build() *ErrorCollection {
	if len(b.list.items) == 0 {
		return emptyCollection
	}
	return &ErrorCollection{list: b.list.frozen()}
}

// Clear removes every entry so the builder can be reused.
func (b *ErrorCollectionBuilder) Clear() *ErrorCollectionBuilder {
	b.list.reset()
	return b
}

// ValidationErrorsBuilder accumulates field errors in place and freezes
// them into [ValidationErrors] with Build.
//
// The zero value is ready to use. A builder is not safe for concurrent
// use.
//
// Example:
//
//	errs := errors.NewValidationErrorsBuilder().
//	    RequireNotEmpty(req.Username, "username", "Username is required").
//	    Require(len(req.Password) >= 8, "password", "Password too short").
//	    Build()
type ValidationErrorsBuilder struct {
	list entryList
}

// NewValidationErrorsBuilder returns an empty builder.
func NewValidationErrorsBuilder() *ValidationErrorsBuilder {
	return &ValidationErrorsBuilder{}
}

// AddField appends a permanent error for field. It panics with
// [ErrInvalidArgument] if field or message is blank.
func (b *ValidationErrorsBuilder) AddField(field, message string) *ValidationErrorsBuilder {
	b.list.push(newEntry("errors: AddField", "field", Code(field), message, false))
	return b
}

// AddTransientField appends a transient error for field.
func (b *ValidationErrorsBuilder) AddTransientField(field, message string) *ValidationErrorsBuilder {
	b.list.push(newEntry("errors: AddTransientField", "field", Code(field), message, true))
	return b
}

// AddFieldError appends e, whose code is the field name.
func (b *ValidationErrorsBuilder) AddFieldError(e Error) *ValidationErrorsBuilder {
	b.list.push(checkEntry("errors: AddFieldError", e))
	return b
}

// When appends an error for field iff cond is true.
func (b *ValidationErrorsBuilder) When(cond bool, field, message string) *ValidationErrorsBuilder {
	if cond {
		return b.AddField(field, message)
	}
	return b
}

// WhenFunc appends an error for field iff pred returns true.
func (b *ValidationErrorsBuilder) WhenFunc(pred func() bool, field, message string) *ValidationErrorsBuilder {
	return b.When(evalPredicate("errors: WhenFunc", pred), field, message)
}

// Require appends an error for field iff cond is false.
func (b *ValidationErrorsBuilder) Require(cond bool, field, message string) *ValidationErrorsBuilder {
	return b.When(!cond, field, message)
}

// RequireFunc appends an error for field iff pred returns false.
func (b *ValidationErrorsBuilder) RequireFunc(pred func() bool, field, message string) *ValidationErrorsBuilder {
	return b.Require(evalPredicate("errors: RequireFunc", pred), field, message)
}

// WhenError appends e iff cond is true.
func (b *ValidationErrorsBuilder) WhenError(cond bool, e Error) *ValidationErrorsBuilder {
	checkEntry("errors: WhenError", e)
	if cond {
		b.list.push(e)
	}
	return b
}

// RequireError appends e iff cond is false.
func (b *ValidationErrorsBuilder) RequireError(cond bool, e Error) *ValidationErrorsBuilder {
	return b.WhenError(!cond, e)
}

// RequireNotNil appends an error for field when value is nil. An empty
// message defaults to "{field} is required".
func (b *ValidationErrorsBuilder) RequireNotNil(value any, field, message string) *ValidationErrorsBuilder {
	return b.Require(!isNil(value), field, defaultMessage(message, field, "is required"))
}

// RequireNotEmpty appends an error for field when value is empty or only
// whitespace. An empty message defaults to "{field} must not be empty".
func (b *ValidationErrorsBuilder) RequireNotEmpty(value, field, message string) *ValidationErrorsBuilder {
	return b.Require(!isBlank(value), field, defaultMessage(message, field, "must not be empty"))
}

// RequireNotEmptyItems appends an error for field when items is nil or
// has no elements.
func (b *ValidationErrorsBuilder) RequireNotEmptyItems(items any, field, message string) *ValidationErrorsBuilder {
	ok := hasItems("errors: RequireNotEmptyItems", items)
	return b.Require(ok, field, defaultMessage(message, field, "must not be empty"))
}

// Merge appends every entry of v.
func (b *ValidationErrorsBuilder) Merge(v *ValidationErrors) *ValidationErrorsBuilder {
	b.list.pushAll(v.orEmpty().list)
	return b
}

// Len returns the number of accumulated entries.
func (b *ValidationErrorsBuilder) Len() int {
	return len(b.list.items)
}

// HasErrors reports whether anything has been added.
func (b *ValidationErrorsBuilder) HasErrors() bool {
	return b.Len() > 0
}

// Build freezes the current entries into ValidationErrors. It returns
// [EmptyValidation] when nothing was added. The builder keeps its entries.
func (b *ValidationErrorsBuilder) Build() *ValidationErrors {
	if len(b.list.items) == 0 {
		return emptyValidation
	}
	return &ValidationErrors{list: b.list.frozen()}
}

// Clear removes every entry so the builder can be reused.
func (b *ValidationErrorsBuilder) Clear() *ValidationErrorsBuilder {
	b.list.reset()
	return b
}
