// Package rpcstatus maps the error values of pkg/errors to gRPC statuses
// and back.
//
// Use it at a gRPC boundary: handlers return sserr values, and
// [UnaryServerInterceptor] or [FromError] turn them into *status.Status
// with structured details.
//
//   - [sserr.Error] maps by code category and carries an ErrorInfo detail.
//   - [*sserr.ErrorCollection] carries one ErrorInfo detail per entry.
//   - [*sserr.ValidationErrors] maps to InvalidArgument with a BadRequest
//     detail listing every field violation.
//
// On the client side, [ToError] reverses the mapping.
package rpcstatus

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"google.golang.org/genproto/googleapis/rpc/errdetails"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/protoadapt"

	sserr "github.com/StricklySoft/stricklysoft-result/pkg/errors"
	"github.com/StricklySoft/stricklysoft-result/pkg/result"
)

// Domain is the ErrorInfo domain attached to every detail.
const Domain = "stricklysoft.result"

// Metadata keys set on ErrorInfo details.
const (
	MetaTransient = "transient"
	MetaMessage   = "message"
)

// Code returns the gRPC code for e. Well-known categories map directly;
// other codes map to Unavailable when transient and Unknown otherwise.
func Code(e sserr.Error) codes.Code {
	switch e.Code().Category() {
	case "VAL":
		return codes.InvalidArgument
	case "AUTH":
		return codes.Unauthenticated
	case "AUTHZ":
		return codes.PermissionDenied
	case "NF":
		return codes.NotFound
	case "CONF":
		return codes.AlreadyExists
	case "INT":
		return codes.Internal
	case "UNAVAIL":
		return codes.Unavailable
	case "TIMEOUT":
		return codes.DeadlineExceeded
	case "CANCEL":
		return codes.Canceled
	}
	if e.IsTransient() {
		return codes.Unavailable
	}
	return codes.Unknown
}

// FromErrorValue returns a status for e with an ErrorInfo detail.
func FromErrorValue(e sserr.Error) *status.Status {
	st := status.New(Code(e), e.Error())
	return withDetails(st, errorInfo(e))
}

// FromCollection returns a status for c. The code comes from the first
// entry, or Unavailable when any entry is transient. Every entry is
// attached as an ErrorInfo detail. An empty collection yields OK.
func FromCollection(c *sserr.ErrorCollection) *status.Status {
	errs := c.Errors()
	if len(errs) == 0 {
		return status.New(codes.OK, "")
	}
	code := Code(errs[0])
	if c.IsTransient() {
		code = codes.Unavailable
	}
	details := make([]*errdetails.ErrorInfo, 0, len(errs))
	for _, e := range errs {
		details = append(details, errorInfo(e))
	}
	return withDetails(status.New(code, c.Summary()), details...)
}

// FromValidation returns an InvalidArgument status whose BadRequest detail
// lists each field error. An empty list yields OK.
func FromValidation(v *sserr.ValidationErrors) *status.Status {
	if !v.HasErrors() {
		return status.New(codes.OK, "")
	}
	br := &errdetails.BadRequest{}
	for e := range v.All() {
		br.FieldViolations = append(br.FieldViolations, &errdetails.BadRequest_FieldViolation{
			Field:       e.Code().String(),
			Description: e.Message(),
		})
	}
	st, err := status.New(codes.InvalidArgument, v.Summary()).WithDetails(br)
	if err != nil {
		return status.New(codes.InvalidArgument, v.Summary())
	}
	return st
}

// FromError converts any error to a status. Errors that already carry a
// gRPC status keep it; collections and sserr values are mapped as above;
// everything else goes through [sserr.FromError]. A nil err yields OK.
func FromError(err error) *status.Status {
	if err == nil {
		return status.New(codes.OK, "")
	}
	var v *sserr.ValidationErrors
	if errors.As(err, &v) {
		return FromValidation(v)
	}
	var c *sserr.ErrorCollection
	if errors.As(err, &c) {
		return FromCollection(c)
	}
	if _, ok := sserr.AsError(err); !ok {
		if st, ok := status.FromError(err); ok {
			return st
		}
	}
	return FromErrorValue(sserr.FromError(err))
}

// Err converts err with [FromError] and returns it as a gRPC error, or nil
// for a nil err.
func Err(err error) error {
	if err == nil {
		return nil
	}
	return FromError(err).Err()
}

// FromResult returns nil for a Success and a gRPC status error for a
// Failure. Failures whose error type does not implement error are
// reported as Unknown.
//
// Example:
//
//	func (s *server) GetUser(ctx context.Context, req *pb.GetUserRequest) (*pb.User, error) {
//	    r := s.users.Load(ctx, req.GetId())
//	    if err := rpcstatus.FromResult(r); err != nil {
//	        return nil, err
//	    }
//	    return toProto(r.Value()), nil
//	}
func FromResult[T, E any](r result.Result[T, E]) error {
	e, failed := r.TryErr()
	if !failed {
		return nil
	}
	if err, ok := any(e).(error); ok {
		return Err(err)
	}
	return status.Error(codes.Unknown, fmt.Sprint(e))
}

// ToError converts a status back into an sserr.Error. The first ErrorInfo
// detail of this package's domain restores the original code, message and
// transient flag; otherwise the gRPC code selects a well-known code.
func ToError(st *status.Status) sserr.Error {
	if st == nil || st.Code() == codes.OK {
		return sserr.Error{}
	}
	for _, d := range st.Details() {
		info, ok := d.(*errdetails.ErrorInfo)
		if !ok || info.GetDomain() != Domain {
			continue
		}
		msg := info.GetMetadata()[MetaMessage]
		if transient, _ := strconv.ParseBool(info.GetMetadata()[MetaTransient]); transient {
			return sserr.Transient(sserr.Code(info.GetReason()), msg)
		}
		return sserr.Permanent(sserr.Code(info.GetReason()), msg)
	}
	return sserr.New(codeFor(st.Code()), st.Message())
}

// ToResult converts the outcome of a gRPC call into a Result.
func ToResult[T any](v T, err error) result.Result[T, sserr.Error] {
	if err == nil {
		return result.Success[T, sserr.Error](v)
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return result.Failure[T](sserr.FromError(err))
	}
	return result.Failure[T](ToError(status.Convert(err)))
}

func codeFor(c codes.Code) sserr.Code {
	switch c {
	case codes.InvalidArgument, codes.OutOfRange, codes.FailedPrecondition:
		return sserr.CodeValidation
	case codes.Unauthenticated:
		return sserr.CodeAuthentication
	case codes.PermissionDenied:
		return sserr.CodeAuthorization
	case codes.NotFound:
		return sserr.CodeNotFound
	case codes.AlreadyExists, codes.Aborted:
		return sserr.CodeConflict
	case codes.Unavailable, codes.ResourceExhausted:
		return sserr.CodeUnavailable
	case codes.DeadlineExceeded:
		return sserr.CodeTimeout
	case codes.Canceled:
		return sserr.CodeCanceled
	default:
		return sserr.CodeInternal
	}
}

func errorInfo(e sserr.Error) *errdetails.ErrorInfo {
	return &errdetails.ErrorInfo{
		Reason: e.Code().String(),
		Domain: Domain,
		Metadata: map[string]string{
			MetaTransient: strconv.FormatBool(e.IsTransient()),
			MetaMessage:   e.Message(),
		},
	}
}

func withDetails(st *status.Status, details ...*errdetails.ErrorInfo) *status.Status {
	msgs := make([]protoadapt.MessageV1, 0, len(details))
	for _, d := range details {
		msgs = append(msgs, d)
	}
	withD, err := st.WithDetails(msgs...)
	if err != nil {
		return st
	}
	return withD
}
