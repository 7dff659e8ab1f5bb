package rpcstatus

import (
	"context"
	"errors"
	"log/slog"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	sserr "github.com/StricklySoft/stricklysoft-result/pkg/errors"
)

// UnaryServerInterceptor returns a gRPC unary server interceptor that
// translates handler errors into gRPC statuses.
//
// The interceptor performs the following steps:
//  1. Calls the handler, recovering any panic into an [sserr.PanicError]
//  2. Converts a returned error with [FromError]
//  3. Logs server-side failures (Internal, Unknown, Unavailable) at error
//     level and everything else at debug level
//
// Contract violations raised by the handler are programming errors and are
// re-panicked rather than converted.
//
// If logger is nil, [slog.Default] is used.
func UnaryServerInterceptor(logger *slog.Logger) grpc.UnaryServerInterceptor {
	logger = orDefault(logger)
	return func(
		ctx context.Context,
		req any,
		info *grpc.UnaryServerInfo,
		handler grpc.UnaryHandler,
	) (resp any, err error) {
		defer func() {
			if v := recover(); v != nil {
				err = recoverHandler(v)
			}
			if err != nil {
				resp = nil
				err = translate(ctx, logger, info.FullMethod, err)
			}
		}()
		return handler(ctx, req)
	}
}

// StreamServerInterceptor returns a gRPC stream server interceptor that
// applies the same translation as [UnaryServerInterceptor] to the error
// a stream handler returns.
func StreamServerInterceptor(logger *slog.Logger) grpc.StreamServerInterceptor {
	logger = orDefault(logger)
	return func(
		srv any,
		ss grpc.ServerStream,
		info *grpc.StreamServerInfo,
		handler grpc.StreamHandler,
	) (err error) {
		defer func() {
			if v := recover(); v != nil {
				err = recoverHandler(v)
			}
			if err != nil {
				err = translate(ss.Context(), logger, info.FullMethod, err)
			}
		}()
		return handler(srv, ss)
	}
}

// UnaryClientInterceptor returns a gRPC unary client interceptor that
// converts failed calls back into [sserr.Error] values with [ToError], so
// callers can use the category checks of pkg/errors on them. Context
// cancellation and deadline errors raised locally are passed through.
func UnaryClientInterceptor() grpc.UnaryClientInterceptor {
	return func(
		ctx context.Context,
		method string,
		req, reply any,
		cc *grpc.ClientConn,
		invoker grpc.UnaryInvoker,
		opts ...grpc.CallOption,
	) error {
		return fromStatusError(invoker(ctx, method, req, reply, cc, opts...))
	}
}

// StreamClientInterceptor returns a gRPC stream client interceptor that
// converts the error of opening a stream like [UnaryClientInterceptor].
func StreamClientInterceptor() grpc.StreamClientInterceptor {
	return func(
		ctx context.Context,
		desc *grpc.StreamDesc,
		cc *grpc.ClientConn,
		method string,
		streamer grpc.Streamer,
		opts ...grpc.CallOption,
	) (grpc.ClientStream, error) {
		cs, err := streamer(ctx, desc, cc, method, opts...)
		return cs, fromStatusError(err)
	}
}

func recoverHandler(v any) error {
	var violation *sserr.Violation
	if err, ok := v.(error); ok && errors.As(err, &violation) {
		panic(v)
	}
	return sserr.NewPanicError(v)
}

func translate(ctx context.Context, logger *slog.Logger, method string, err error) error {
	st := FromError(err)
	attrs := []any{
		"method", method,
		"code", st.Code().String(),
		"error", err,
	}
	switch st.Code() {
	case codes.Internal, codes.Unknown, codes.Unavailable, codes.DataLoss:
		logger.ErrorContext(ctx, "rpcstatus: handler failed", attrs...)
	default:
		logger.DebugContext(ctx, "rpcstatus: handler rejected request", attrs...)
	}
	return st.Err()
}

func fromStatusError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return err
	}
	st, ok := status.FromError(err)
	if !ok {
		return err
	}
	return ToError(st)
}

func orDefault(logger *slog.Logger) *slog.Logger {
	if logger == nil {
		return slog.Default()
	}
	return logger
}
