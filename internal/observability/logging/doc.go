// Package logging provides structured logging utilities with context propagation.
//
// The API server logs JSON to stdout; the CLI logs text to stderr. Request
// scoped loggers carry request_id and trace_id attributes.
//
// Example usage:
//
//	logger := logging.NewLogger(cfg.Observability.LogLevel)
//	slog.SetDefault(logger)
//
//	func handle(ctx context.Context) {
//	    logging.WithRequestID(ctx, slog.Default()).Info("processing request")
//	}
package logging
