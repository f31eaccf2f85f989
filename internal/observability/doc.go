// Package observability groups structured logging, Prometheus metrics and
// OpenTelemetry tracing.
//
// Subpackages:
//   - logging: slog loggers with request and trace ID propagation
//   - metrics: Prometheus metrics registry and recorders
//   - tracing: OpenTelemetry middleware and provider setup
//
// Example usage:
//
//	logger := logging.NewLogger("info")
//	slog.SetDefault(logger)
//	metrics.RecordAnalysisResult("analysis", "live", "", time.Second)
package observability
