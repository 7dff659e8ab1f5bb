package errors

// Code is the machine-readable classification of an [Error].
//
// Codes are plain strings. Applications are free to use their own
// vocabulary ("not_found", "divide_by_zero"); the well-known codes below
// follow the CATEGORY_XXX pattern and are the ones the library itself
// produces (for example from [FromError]). For field-scoped errors held in
// [ValidationErrors] the code is the field name.
type Code string

// Well-known code categories:
//
//	VAL_xxx     - Validation errors (400 Bad Request)
//	AUTH_xxx    - Authentication errors (401 Unauthorized)
//	AUTHZ_xxx   - Authorization errors (403 Forbidden)
//	NF_xxx      - Not found errors (404 Not Found)
//	CONF_xxx    - Conflict errors (409 Conflict)
//	INT_xxx     - Internal errors (500 Internal Server Error)
//	UNAVAIL_xxx - Service unavailable, transient (503 Service Unavailable)
//	TIMEOUT_xxx - Timeouts, transient (504 Gateway Timeout)
//	CANCEL_xxx  - Canceled operations (499 Client Closed Request)
const (
	// CodeValidation indicates a general validation failure.
	CodeValidation Code = "VAL_001"

	// CodeValidationRequired indicates a required field is missing.
	CodeValidationRequired Code = "VAL_002"

	// CodeValidationFormat indicates a field has an invalid format.
	CodeValidationFormat Code = "VAL_003"

	// CodeAuthentication indicates a general authentication failure.
	CodeAuthentication Code = "AUTH_001"

	// CodeAuthorization indicates a general authorization failure.
	CodeAuthorization Code = "AUTHZ_001"

	// CodeNotFound indicates a general not found error.
	CodeNotFound Code = "NF_001"

	// CodeConflict indicates a general conflict error.
	CodeConflict Code = "CONF_001"

	// CodeInternal indicates a general internal error.
	CodeInternal Code = "INT_001"

	// CodeInternalDatabase indicates a database operation failed.
	CodeInternalDatabase Code = "INT_002"

	// CodeInternalConfiguration indicates a configuration error.
	CodeInternalConfiguration Code = "INT_003"

	// CodeInternalPanic indicates a recovered panic inside a wrapped
	// computation.
	CodeInternalPanic Code = "INT_004"

	// CodeUnavailable indicates a dependency is temporarily unavailable.
	CodeUnavailable Code = "UNAVAIL_001"

	// CodeTimeout indicates an operation exceeded its deadline.
	CodeTimeout Code = "TIMEOUT_001"

	// CodeCanceled indicates an operation was canceled by its caller.
	CodeCanceled Code = "CANCEL_001"
)

// String returns the string representation of the error code.
func (c Code) String() string {
	return string(c)
}

// Category returns the category prefix of the error code (e.g., "VAL",
// "AUTH"). Codes without an underscore are their own category.
func (c Code) Category() string {
	s := string(c)
	for i, r := range s {
		if r == '_' {
			return s[:i]
		}
	}
	return s
}

// DefaultTransient reports whether errors with this code are transient
// unless stated otherwise. Only the UNAVAIL and TIMEOUT categories are.
func (c Code) DefaultTransient() bool {
	switch c.Category() {
	case "UNAVAIL", "TIMEOUT":
		return true
	default:
		return false
	}
}
