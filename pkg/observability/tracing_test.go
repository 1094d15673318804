package observability

import (
	"context"
	"testing"

	"go.opentelemetry.io/otel"
)

func TestInitTracerWithoutEndpoint(t *testing.T) {
	ctx := context.Background()
	provider, err := InitTracer(ctx, TracingConfig{ServiceName: "pricing-test", SampleRatio: 1})
	if err != nil {
		t.Fatalf("InitTracer: %v", err)
	}
	defer provider.Shutdown(ctx)

	_, span := otel.Tracer("test").Start(ctx, "op")
	defer span.End()

	if !span.SpanContext().IsValid() {
		t.Error("expected a valid span context")
	}
	if !span.SpanContext().IsSampled() {
		t.Error("expected span to be sampled at ratio 1")
	}
}
