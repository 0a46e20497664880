// Package metrics exports service and HTTP counters through OpenTelemetry to Prometheus.
package metrics

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/huangsam/teamdisc/internal/contract"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/otel/attribute"
	otelprom "go.opentelemetry.io/otel/exporters/prometheus"
	"go.opentelemetry.io/otel/metric"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
)

// Collector records teamdisc metrics. A disabled Collector drops every event.
type Collector struct {
	provider *sdkmetric.MeterProvider
	registry *prometheus.Registry

	profilesSubmitted metric.Int64Counter
	reportsGenerated  metric.Int64Counter
	storeErrors       metric.Int64Counter
	httpRequests      metric.Int64Counter
	httpLatency       metric.Float64Histogram
}

var _ contract.MetricsRecorder = &Collector{} // Compile-time check

// NewCollector creates a collector backed by its own Prometheus registry.
func NewCollector(enabled bool) (*Collector, error) {
	if !enabled {
		return &Collector{}, nil
	}

	registry := prometheus.NewRegistry()
	exporter, err := otelprom.New(otelprom.WithRegisterer(registry))
	if err != nil {
		return nil, fmt.Errorf("failed to create prometheus exporter: %w", err)
	}
	provider := sdkmetric.NewMeterProvider(sdkmetric.WithReader(exporter))
	meter := provider.Meter("teamdisc")

	c := &Collector{provider: provider, registry: registry}

	if c.profilesSubmitted, err = meter.Int64Counter(
		"teamdisc.profiles.submitted",
		metric.WithDescription("Assessments scored and stored"),
		metric.WithUnit("{profile}"),
	); err != nil {
		return nil, fmt.Errorf("failed to create profiles_submitted counter: %w", err)
	}

	if c.reportsGenerated, err = meter.Int64Counter(
		"teamdisc.reports.generated",
		metric.WithDescription("Analytics reports served, labeled by cache hit"),
		metric.WithUnit("{report}"),
	); err != nil {
		return nil, fmt.Errorf("failed to create reports_generated counter: %w", err)
	}

	if c.storeErrors, err = meter.Int64Counter(
		"teamdisc.store.errors",
		metric.WithDescription("Profile store failures by operation"),
		metric.WithUnit("{error}"),
	); err != nil {
		return nil, fmt.Errorf("failed to create store_errors counter: %w", err)
	}

	if c.httpRequests, err = meter.Int64Counter(
		"teamdisc.http.requests",
		metric.WithDescription("HTTP requests handled by the server"),
		metric.WithUnit("{request}"),
	); err != nil {
		return nil, fmt.Errorf("failed to create http_requests counter: %w", err)
	}

	if c.httpLatency, err = meter.Float64Histogram(
		"teamdisc.http.latency",
		metric.WithDescription("HTTP request latency in seconds"),
		metric.WithUnit("s"),
	); err != nil {
		return nil, fmt.Errorf("failed to create http_latency histogram: %w", err)
	}

	return c, nil
}

// Enabled reports whether events are being recorded.
func (c *Collector) Enabled() bool {
	return c != nil && c.provider != nil
}

// ProfileSubmitted implements contract.MetricsRecorder.
func (c *Collector) ProfileSubmitted(ctx context.Context, department string) {
	if !c.Enabled() {
		return
	}
	c.profilesSubmitted.Add(ctx, 1, metric.WithAttributes(attribute.String("department", department)))
}

// ReportGenerated implements contract.MetricsRecorder.
func (c *Collector) ReportGenerated(ctx context.Context, cached bool) {
	if !c.Enabled() {
		return
	}
	c.reportsGenerated.Add(ctx, 1, metric.WithAttributes(attribute.Bool("cached", cached)))
}

// StoreError implements contract.MetricsRecorder.
func (c *Collector) StoreError(ctx context.Context, op string) {
	if !c.Enabled() {
		return
	}
	c.storeErrors.Add(ctx, 1, metric.WithAttributes(attribute.String("op", op)))
}

// HTTPRequest records one served request.
func (c *Collector) HTTPRequest(ctx context.Context, method, route string, status int, duration time.Duration) {
	if !c.Enabled() {
		return
	}
	attrs := metric.WithAttributes(
		attribute.String("method", method),
		attribute.String("route", route),
		attribute.Int("status", status),
	)
	c.httpRequests.Add(ctx, 1, attrs)
	c.httpLatency.Record(ctx, duration.Seconds(), attrs)
}

// Handler serves the Prometheus scrape endpoint. A disabled collector answers 404.
func (c *Collector) Handler() http.Handler {
	if !c.Enabled() {
		return http.NotFoundHandler()
	}
	return promhttp.HandlerFor(c.registry, promhttp.HandlerOpts{})
}

// Shutdown flushes and stops the meter provider.
func (c *Collector) Shutdown(ctx context.Context) error {
	if !c.Enabled() {
		return nil
	}
	return c.provider.Shutdown(ctx)
}
