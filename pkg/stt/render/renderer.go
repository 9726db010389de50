// Package render runs stt templates with logging, metrics and tracing.
//
// The core stt package is synchronous and has no observability of its own.
// Renderer wraps a render call with a render ID, a span, per-lookup hit and
// miss accounting, and structured logs:
//
//	r := render.New(
//	    render.WithLogger(logger),
//	    render.WithMetrics(true),
//	    render.WithTracing(true),
//	)
//	out, err := r.RenderString(ctx, "Hello $who$!", stt.Single("who", "world"))
package render

import (
	"context"
	"errors"
	"log/slog"

	"github.com/google/uuid"
	"github.com/randalmurphal/stt/pkg/stt"
	"github.com/randalmurphal/stt/pkg/stt/observability"
	"go.opentelemetry.io/otel/attribute"
)

// Sentinel errors for invalid Render arguments.
var (
	// ErrNilContext indicates Render was called with a nil context.
	ErrNilContext = errors.New("context cannot be nil")

	// ErrNilTemplate indicates Render was called with a nil template.
	ErrNilTemplate = errors.New("template cannot be nil")
)

// Renderer executes templates with observability.
// It is safe for concurrent use after construction.
type Renderer struct {
	logger       *slog.Logger
	metrics      observability.MetricsRecorder
	spans        observability.SpanManager
	templateOpts []stt.Option
}

// New creates a Renderer. Logging, metrics and tracing are off by default.
func New(opts ...Option) *Renderer {
	r := &Renderer{
		metrics: observability.NoopMetrics{},
		spans:   observability.NoopSpanManager{},
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// RenderString builds a template from source with the renderer's template
// options and renders it. See Render.
func (r *Renderer) RenderString(ctx context.Context, source string, l stt.Lookup, opts ...RunOption) (string, error) {
	return r.Render(ctx, stt.New(source, r.templateOpts...), l, opts...)
}

// Render executes tmpl against l and reports the outcome.
//
// Errors are those of stt.Template.Execute. A canceled context is checked
// before rendering starts; the scan itself does not block.
func (r *Renderer) Render(ctx context.Context, tmpl *stt.Template, l stt.Lookup, opts ...RunOption) (out string, err error) {
	if ctx == nil {
		return "", ErrNilContext
	}
	if tmpl == nil {
		return "", ErrNilTemplate
	}
	cfg := runConfig{}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.renderID == "" {
		cfg.renderID = uuid.NewString()
	}

	if err := ctx.Err(); err != nil {
		return "", err
	}

	logger := observability.EnrichLogger(r.logger, cfg.renderID, len(tmpl.Source()))
	observability.LogRenderStart(logger)

	ctx, span := r.spans.StartRenderSpan(ctx, cfg.renderID, len(tmpl.Source()))
	defer func() {
		r.spans.EndSpanWithError(span, err)
	}()

	counted := &countingLookup{ctx: ctx, inner: l, renderer: r, logger: logger}
	elapsed := observability.TimedOperation()

	out, err = tmpl.Execute(counted)

	duration := elapsed()
	durationMs := observability.Milliseconds(duration)
	r.metrics.RecordRender(ctx, duration, len(out), err)

	if err != nil {
		observability.LogRenderError(logger, err, durationMs)
	} else {
		observability.LogRenderComplete(logger, durationMs, counted.hits, counted.misses)
	}
	return out, err
}

// countingLookup forwards to inner and records every resolution attempt.
// It lives for a single render and is not shared between goroutines.
type countingLookup struct {
	ctx      context.Context
	inner    stt.Lookup
	renderer *Renderer
	logger   *slog.Logger
	hits     int
	misses   int
}

func (c *countingLookup) Lookup(key string) (string, bool) {
	var (
		v  string
		ok bool
	)
	if c.inner != nil {
		v, ok = c.inner.Lookup(key)
	}

	c.renderer.metrics.RecordLookup(c.ctx, ok)
	if ok {
		c.hits++
		return v, true
	}

	c.misses++
	observability.LogLookupMiss(c.logger, key)
	c.renderer.spans.AddSpanEvent(c.ctx, "lookup.miss", attribute.String("key", key))
	return "", false
}
