package errors

import (
	"fmt"
	"log/slog"
	"net/http"
)

// Error is an immutable error record with a machine-readable code, a
// human-readable message and a transient flag.
//
// Error is a plain value: it is comparable with ==, safe to copy and safe
// to share between goroutines. The zero Error represents an absent error
// and is rejected wherever an error is required (see [Error.IsZero]).
//
// Error implements the standard error interface, [fmt.Formatter] and
// [slog.LogValuer], so it can be returned, wrapped and logged like any
// other error.
type Error struct {
	code      Code
	message   string
	transient bool
}

// Code returns the machine-readable error code. For entries of a
// [ValidationErrors] this is the field name.
func (e Error) Code() Code {
	return e.code
}

// Message returns the human-readable error message.
// This message may be shown to end users and should not contain
// sensitive information such as internal paths or credentials.
func (e Error) Message() string {
	return e.message
}

// IsTransient reports whether the error describes a condition that may
// clear on retry.
func (e Error) IsTransient() bool {
	return e.transient
}

// IsZero reports whether e is the zero Error.
func (e Error) IsZero() bool {
	return e == Error{}
}

// Error implements the error interface. It renders "{code}: {message}",
// or the bare message when the code is blank.
func (e Error) Error() string {
	if e.code == "" {
		return e.message
	}
	return fmt.Sprintf("%s: %s", e.code, e.message)
}

// HTTPStatus returns the appropriate HTTP status code for this error
// based on its error code category. Codes outside the well-known
// categories map to 503 when transient and 500 otherwise.
func (e Error) HTTPStatus() int {
	switch e.code.Category() {
	case "VAL":
		return http.StatusBadRequest
	case "AUTH":
		return http.StatusUnauthorized
	case "AUTHZ":
		return http.StatusForbidden
	case "NF":
		return http.StatusNotFound
	case "CONF":
		return http.StatusConflict
	case "INT":
		return http.StatusInternalServerError
	case "UNAVAIL":
		return http.StatusServiceUnavailable
	case "TIMEOUT":
		return http.StatusGatewayTimeout
	case "CANCEL":
		return statusClientClosedRequest
	default:
		if e.transient {
			return http.StatusServiceUnavailable
		}
		return http.StatusInternalServerError
	}
}

// statusClientClosedRequest is the non-standard 499 status used by
// proxies for requests abandoned by the client.
const statusClientClosedRequest = 499

// AsTransient returns a copy of e with the transient flag set.
func (e Error) AsTransient() Error {
	e.transient = true
	return e
}

// AsPermanent returns a copy of e with the transient flag cleared.
func (e Error) AsPermanent() Error {
	e.transient = false
	return e
}

// Format implements fmt.Formatter for detailed error output.
// Use %v for standard output, %+v for detailed output including the
// transient flag.
func (e Error) Format(s fmt.State, verb rune) {
	switch verb {
	case 'v':
		if s.Flag('+') {
			fmt.Fprintf(s, "Error{Code: %q, Message: %q, Transient: %t}", e.code, e.message, e.transient)
			return
		}
		fallthrough
	case 's':
		fmt.Fprint(s, e.Error())
	case 'q':
		fmt.Fprintf(s, "%q", e.Error())
	}
}

// LogValue implements slog.LogValuer.
func (e Error) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("code", string(e.code)),
		slog.String("message", e.message),
		slog.Bool("transient", e.transient),
	)
}
