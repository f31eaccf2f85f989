// Package metrics provides Prometheus metrics registry and recording utilities.
//
// This package centralizes the service-level metrics:
//   - HTTP request metrics (duration, count, size) keyed by route pattern
//   - Analysis and insight results by provenance (live or fallback) and reason
//   - Catalog size
//
// Backend call metrics live with the generators in internal/infra/generator.
// Everything registers with the default registry exposed on /metrics.
package metrics
