package observability

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/otel/attribute"
	promexporter "go.opentelemetry.io/otel/exporters/prometheus"
	"go.opentelemetry.io/otel/metric"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
)

// MetricsConfig holds metrics configuration.
type MetricsConfig struct {
	ServiceName string
}

// InitMetrics initializes the Prometheus metrics exporter on a dedicated
// registry. Returns the MeterProvider and an HTTP handler for the /metrics
// endpoint.
func InitMetrics(cfg MetricsConfig) (*sdkmetric.MeterProvider, http.Handler, error) {
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	exporter, err := promexporter.New(promexporter.WithRegisterer(registry))
	if err != nil {
		return nil, nil, fmt.Errorf("create prometheus exporter for %s: %w", cfg.ServiceName, err)
	}

	provider := sdkmetric.NewMeterProvider(
		sdkmetric.WithReader(exporter),
	)

	handler := promhttp.HandlerFor(registry, promhttp.HandlerOpts{Registry: registry})

	return provider, handler, nil
}

// EngineMetrics counts and times calls into the pricing engine by operation
// and outcome.
type EngineMetrics struct {
	calls    metric.Int64Counter
	duration metric.Float64Histogram
}

// NewEngineMetrics registers the engine instruments on provider.
func NewEngineMetrics(provider metric.MeterProvider) (*EngineMetrics, error) {
	meter := provider.Meter("github.com/BharatAnkh/borrower-insight-hub/engine")

	calls, err := meter.Int64Counter("pricing_engine_calls",
		metric.WithDescription("Calls into the pricing engine by operation and outcome."),
	)
	if err != nil {
		return nil, fmt.Errorf("create calls counter: %w", err)
	}

	duration, err := meter.Float64Histogram("pricing_engine_duration",
		metric.WithDescription("Latency of pricing engine calls."),
		metric.WithUnit("s"),
	)
	if err != nil {
		return nil, fmt.Errorf("create duration histogram: %w", err)
	}

	return &EngineMetrics{calls: calls, duration: duration}, nil
}

// Record adds one call. A nil receiver records nothing.
func (m *EngineMetrics) Record(ctx context.Context, operation, outcome string, elapsed time.Duration) {
	if m == nil {
		return
	}
	attrs := metric.WithAttributes(
		attribute.String("operation", operation),
		attribute.String("outcome", outcome),
	)
	m.calls.Add(ctx, 1, attrs)
	m.duration.Record(ctx, elapsed.Seconds(), attrs)
}
