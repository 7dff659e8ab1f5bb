package result

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/StricklySoft/stricklysoft-result/internal/contract"
	sserr "github.com/StricklySoft/stricklysoft-result/pkg/errors"
)

// tracerName is the OpenTelemetry instrumentation scope name for this package.
const tracerName = "github.com/StricklySoft/stricklysoft-result/pkg/result"

// Span attribute keys recorded by [Traced].
const (
	AttrState     = attribute.Key("result.state")
	AttrCode      = attribute.Key("error.code")
	AttrTransient = attribute.Key("error.transient")
	AttrCount     = attribute.Key("error.count")
)

// Traced runs fn inside a span named name, using the global tracer
// provider, and records the outcome on the span. A Failure sets the span
// status to Error; a Success sets it to Ok.
//
// Example:
//
//	user := result.Traced(ctx, "users.Load", func(ctx context.Context) result.Result[User, sserr.Error] {
//	    return loadUser(ctx, id)
//	})
func Traced[T, E any](ctx context.Context, name string, fn func(context.Context) Result[T, E]) Result[T, E] {
	return TracedWith(ctx, otel.Tracer(tracerName), name, fn)
}

// TracedWith is [Traced] with an explicit tracer.
func TracedWith[T, E any](ctx context.Context, tracer trace.Tracer, name string, fn func(context.Context) Result[T, E]) Result[T, E] {
	contract.NotNil("result: Traced", "fn", fn)
	contract.NotNil("result: Traced", "tracer", tracer)

	ctx, span := tracer.Start(ctx, name, trace.WithSpanKind(trace.SpanKindInternal))
	defer span.End()

	r := fn(ctx)
	r.mustInit("Traced")
	span.SetAttributes(AttrState.String(r.state.String()))
	if r.state == success {
		span.SetStatus(codes.Ok, "")
		return r
	}

	span.SetAttributes(errorAttributes(r.err)...)
	if err, ok := any(r.err).(error); ok {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	} else {
		span.SetStatus(codes.Error, fmt.Sprint(r.err))
	}
	return r
}

func errorAttributes(e any) []attribute.KeyValue {
	switch e := e.(type) {
	case sserr.Error:
		return []attribute.KeyValue{
			AttrCode.String(e.Code().String()),
			AttrTransient.Bool(e.IsTransient()),
			AttrCount.Int(1),
		}
	case *sserr.ErrorCollection:
		attrs := []attribute.KeyValue{
			AttrTransient.Bool(e.IsTransient()),
			AttrCount.Int(e.Len()),
		}
		if errs := e.Errors(); len(errs) > 0 {
			attrs = append(attrs, AttrCode.String(errs[0].Code().String()))
		}
		return attrs
	case *sserr.ValidationErrors:
		return []attribute.KeyValue{
			AttrCode.String(sserr.CodeValidation.String()),
			AttrTransient.Bool(e.IsTransient()),
			AttrCount.Int(e.Len()),
			attribute.StringSlice("validation.fields", e.Fields()),
		}
	case error:
		return []attribute.KeyValue{
			AttrTransient.Bool(sserr.IsTransient(e)),
			AttrCount.Int(1),
		}
	default:
		return []attribute.KeyValue{AttrCount.Int(1)}
	}
}
