package render

import (
	"log/slog"

	"github.com/randalmurphal/stt/pkg/stt"
	"github.com/randalmurphal/stt/pkg/stt/observability"
)

// Option configures a Renderer.
type Option func(*Renderer)

// WithLogger sets the logger used for render events.
// Default: nil (no logging)
func WithLogger(logger *slog.Logger) Option {
	return func(r *Renderer) {
		r.logger = logger
	}
}

// WithMetrics enables OpenTelemetry metrics via the global meter provider.
// Default: false
func WithMetrics(enabled bool) Option {
	return func(r *Renderer) {
		if enabled {
			r.metrics = observability.NewMetricsRecorder()
		} else {
			r.metrics = observability.NoopMetrics{}
		}
	}
}

// WithMetricsRecorder sets a specific metrics recorder.
func WithMetricsRecorder(m observability.MetricsRecorder) Option {
	return func(r *Renderer) {
		if m != nil {
			r.metrics = m
		}
	}
}

// WithTracing enables OpenTelemetry tracing via the global tracer provider.
// Default: false
func WithTracing(enabled bool) Option {
	return func(r *Renderer) {
		if enabled {
			r.spans = observability.NewSpanManager()
		} else {
			r.spans = observability.NoopSpanManager{}
		}
	}
}

// WithSpanManager sets a specific span manager.
func WithSpanManager(s observability.SpanManager) Option {
	return func(r *Renderer) {
		if s != nil {
			r.spans = s
		}
	}
}

// WithTemplateOptions sets the options used by RenderString to build templates.
func WithTemplateOptions(opts ...stt.Option) Option {
	return func(r *Renderer) {
		r.templateOpts = append(r.templateOpts, opts...)
	}
}

// runConfig holds per-call settings.
type runConfig struct {
	renderID string
}

// RunOption configures a single render call.
type RunOption func(*runConfig)

// WithRenderID sets the ID attached to logs and spans for one call.
// Default: a random UUID.
func WithRenderID(id string) RunOption {
	return func(c *runConfig) {
		if id != "" {
			c.renderID = id
		}
	}
}
