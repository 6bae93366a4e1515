package observability

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const tracerName = "poster-api"

// GetTracer returns the tracer for the poster service.
func GetTracer() trace.Tracer {
	return otel.Tracer(tracerName)
}

// StartModelSpan starts a client span around a vision model call.
func StartModelSpan(ctx context.Context, model string) (context.Context, trace.Span) {
	return GetTracer().Start(ctx, "llm.describe_image",
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(attribute.String("llm.model", model)),
	)
}

// StartStoreSpan starts a client span around a record store operation.
func StartStoreSpan(ctx context.Context, backend, operation string) (context.Context, trace.Span) {
	return GetTracer().Start(ctx, "store."+operation,
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(
			attribute.String("db.system", backend),
			attribute.String("db.operation", operation),
		),
	)
}

// RecordError records an error on the span
func RecordError(span trace.Span, err error) {
	if span.IsRecording() && err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
}

// GetTraceID returns the trace ID from the current context
func GetTraceID(ctx context.Context) string {
	span := trace.SpanFromContext(ctx)
	if span.SpanContext().IsValid() {
		return span.SpanContext().TraceID().String()
	}
	return ""
}
