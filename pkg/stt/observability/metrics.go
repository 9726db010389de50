package observability

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// MetricsRecorder records rendering metrics.
// Use NewMetricsRecorder() for OTel metrics or NoopMetrics{} when disabled.
type MetricsRecorder interface {
	// RecordRender records a finished render with its duration, output size and error status.
	RecordRender(ctx context.Context, duration time.Duration, outputBytes int, err error)

	// RecordLookup records a single placeholder resolution attempt.
	RecordLookup(ctx context.Context, hit bool)
}

// otelMetrics implements MetricsRecorder using OpenTelemetry.
type otelMetrics struct {
	renders     metric.Int64Counter
	latency     metric.Float64Histogram
	errors      metric.Int64Counter
	outputBytes metric.Int64Histogram
	lookups     metric.Int64Counter
}

var (
	defaultMetrics     *otelMetrics
	defaultMetricsOnce sync.Once
	defaultMetricsErr  error
)

// getDefaultMetrics lazily initializes the shared OTel instruments.
func getDefaultMetrics() (*otelMetrics, error) {
	defaultMetricsOnce.Do(func() {
		defaultMetrics, defaultMetricsErr = newOtelMetrics(otel.GetMeterProvider())
	})
	return defaultMetrics, defaultMetricsErr
}

func newOtelMetrics(provider metric.MeterProvider) (*otelMetrics, error) {
	meter := provider.Meter("stt")

	renders, err := meter.Int64Counter("stt.render.count",
		metric.WithDescription("Number of template renders"),
	)
	if err != nil {
		return nil, err
	}

	latency, err := meter.Float64Histogram("stt.render.latency_ms",
		metric.WithDescription("Render latency in milliseconds"),
		metric.WithUnit("ms"),
	)
	if err != nil {
		return nil, err
	}

	errs, err := meter.Int64Counter("stt.render.errors",
		metric.WithDescription("Number of renders that returned an error"),
	)
	if err != nil {
		return nil, err
	}

	outputBytes, err := meter.Int64Histogram("stt.render.output_bytes",
		metric.WithDescription("Rendered output size in bytes"),
		metric.WithUnit("By"),
	)
	if err != nil {
		return nil, err
	}

	lookups, err := meter.Int64Counter("stt.lookup.count",
		metric.WithDescription("Number of placeholder lookups"),
	)
	if err != nil {
		return nil, err
	}

	return &otelMetrics{
		renders:     renders,
		latency:     latency,
		errors:      errs,
		outputBytes: outputBytes,
		lookups:     lookups,
	}, nil
}

// NewMetricsRecorder returns a MetricsRecorder that uses OpenTelemetry.
// If metrics initialization fails, returns a no-op recorder.
//
// The recorder uses the global OTel meter provider. Configure the provider
// before the first call:
//
//	otel.SetMeterProvider(yourProvider)
func NewMetricsRecorder() MetricsRecorder {
	m, err := getDefaultMetrics()
	if err != nil {
		slog.Warn("metrics initialization failed, using no-op recorder",
			slog.String("error", err.Error()))
		return NoopMetrics{}
	}
	return m
}

// NewMetricsRecorderFromProvider returns a MetricsRecorder bound to the
// given meter provider instead of the global one.
func NewMetricsRecorderFromProvider(provider metric.MeterProvider) (MetricsRecorder, error) {
	m, err := newOtelMetrics(provider)
	if err != nil {
		return nil, err
	}
	return m, nil
}

// RecordRender records a render.
func (m *otelMetrics) RecordRender(ctx context.Context, duration time.Duration, outputBytes int, err error) {
	attrs := metric.WithAttributes(attribute.Bool("success", err == nil))

	m.renders.Add(ctx, 1, attrs)
	m.latency.Record(ctx, Milliseconds(duration), attrs)
	m.outputBytes.Record(ctx, int64(outputBytes), attrs)

	if err != nil {
		m.errors.Add(ctx, 1)
	}
}

// RecordLookup records a lookup.
func (m *otelMetrics) RecordLookup(ctx context.Context, hit bool) {
	m.lookups.Add(ctx, 1, metric.WithAttributes(attribute.Bool("hit", hit)))
}
