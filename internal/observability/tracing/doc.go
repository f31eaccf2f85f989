// Package tracing provides OpenTelemetry tracing integration.
//
// Middleware opens a server span per HTTP request; the analysis service opens
// child spans around each requestor call. Init installs an SDK provider when
// TRACING_ENABLED is set; otherwise the no-op global provider is used.
//
//	shutdown := tracing.Init("localbiz-insights")
//	defer func() { _ = shutdown(context.Background()) }()
package tracing
