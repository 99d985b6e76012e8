package middleware

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// tracerName is the instrumentation scope name for turbo tracing.
const tracerName = "github.com/turbodsl/turbo"

// Tracing returns middleware that wraps each attempt in an OpenTelemetry
// span. If no TracerProvider is configured globally, the default noop
// tracer is used and this middleware becomes a pass-through with zero
// overhead.
//
// Span attributes include: turbo.job.id, turbo.job.name, turbo.path,
// turbo.attempt. On error, the span status is set to codes.Error with
// the error message.
func Tracing() Middleware {
	tracer := otel.Tracer(tracerName)
	return TracingWithTracer(tracer)
}

// TracingWithTracer returns tracing middleware using the provided tracer.
// This variant allows injecting a specific TracerProvider for testing or
// when multiple providers are in use.
func TracingWithTracer(tracer trace.Tracer) Middleware {
	return func(ctx context.Context, info *Info, next Handler) error {
		ctx, span := tracer.Start(ctx, "turbo.job.execute",
			trace.WithAttributes(
				attribute.String("turbo.job.id", info.ID.String()),
				attribute.String("turbo.job.name", info.Name),
				attribute.String("turbo.path", info.Path),
				attribute.Int("turbo.attempt", info.Attempt),
			),
			trace.WithSpanKind(trace.SpanKindInternal),
		)
		defer span.End()

		err := next(ctx)
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		} else {
			span.SetStatus(codes.Ok, "")
		}

		return err
	}
}
