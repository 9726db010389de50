// Package observability provides logging, metrics, and tracing for
// template rendering.
//
// Features:
//   - Structured logging via slog (Go stdlib)
//   - Metrics via OpenTelemetry
//   - Tracing via OpenTelemetry
//
// All features are opt-in and have no-op implementations when disabled.
package observability

import (
	"log/slog"
	"time"
)

// EnrichLogger adds render context to a logger.
// Returns a new logger with render_id and template_bytes fields.
//
// Example:
//
//	enriched := EnrichLogger(logger, "render-123", 42)
//	enriched.Info("rendering") // includes render_id, template_bytes
func EnrichLogger(logger *slog.Logger, renderID string, templateBytes int) *slog.Logger {
	if logger == nil {
		return nil
	}
	return logger.With(
		slog.String("render_id", renderID),
		slog.Int("template_bytes", templateBytes),
	)
}

// LogRenderStart logs the start of a render.
// Pass a logger from EnrichLogger so the entry carries the render ID.
func LogRenderStart(logger *slog.Logger) {
	if logger == nil {
		return
	}
	logger.Debug("render starting")
}

// LogRenderComplete logs a successful render.
func LogRenderComplete(logger *slog.Logger, durationMs float64, hits, misses int) {
	if logger == nil {
		return
	}
	logger.Info("render completed",
		slog.Float64("duration_ms", durationMs),
		slog.Int("lookup_hits", hits),
		slog.Int("lookup_misses", misses),
	)
}

// LogRenderError logs a render that surfaced an error.
func LogRenderError(logger *slog.Logger, err error, durationMs float64) {
	if logger == nil {
		return
	}
	logger.Error("render failed",
		slog.String("error", err.Error()),
		slog.Float64("duration_ms", durationMs),
	)
}

// LogLookupMiss logs a key the lookup could not resolve.
func LogLookupMiss(logger *slog.Logger, key string) {
	if logger == nil {
		return
	}
	logger.Debug("lookup miss",
		slog.String("key", key),
	)
}

// TimedOperation measures the duration of an operation.
// Returns a function that, when called, returns the elapsed time.
func TimedOperation() func() time.Duration {
	start := time.Now()
	return func() time.Duration {
		return time.Since(start)
	}
}

// Milliseconds converts d to fractional milliseconds, the unit used by
// log fields and the latency histogram.
func Milliseconds(d time.Duration) float64 {
	return float64(d.Microseconds()) / 1000
}
