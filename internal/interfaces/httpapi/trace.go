package httpapi

import (
	"context"
	"strings"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"
)

var apiTracer = otel.Tracer("olympic-data-hub/internal/interfaces/httpapi")
var noopSpan = trace.SpanFromContext(context.Background())

// tracedSpanPrefixes are the child spans worth recording under a request:
// handlers and the CSV export, which streams a whole result set.
var tracedSpanPrefixes = []string{
	"httpapi.Handler.",
	"httpapi.export.",
}

// startSpan opens a child span only inside a traced request.
func startSpan(ctx context.Context, name string) (context.Context, trace.Span) {
	if !trace.SpanFromContext(ctx).SpanContext().IsValid() || !isTracedSpan(name) {
		return ctx, noopSpan
	}
	return apiTracer.Start(ctx, name)
}

func isTracedSpan(name string) bool {
	for _, prefix := range tracedSpanPrefixes {
		if strings.HasPrefix(name, prefix) {
			return true
		}
	}
	return false
}
