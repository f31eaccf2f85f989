package http

import (
	"net/http"
	"strconv"
	"time"

	"localbiz-insights/internal/handler/http/responsewriter"
	"localbiz-insights/internal/observability/metrics"

	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// unmatchedRoute labels requests no route matched, keeping label cardinality bounded.
const unmatchedRoute = "unmatched"

// MetricsMiddleware records request count, latency and sizes labelled by the
// matched route pattern. It must wrap the ServeMux directly so that the
// pattern set during routing is visible on r.
func MetricsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rw := responsewriter.Wrap(w)

		start := time.Now()
		next.ServeHTTP(rw, r)
		duration := time.Since(start)

		route := r.Pattern
		if route == "" {
			route = unmatchedRoute
		}
		metrics.RecordHTTPRequest(
			r.Method,
			route,
			strconv.Itoa(rw.StatusCode()),
			duration,
			int(max(r.ContentLength, 0)),
			rw.BytesWritten(),
		)
	})
}

// MetricsHandler serves the Prometheus exposition format.
func MetricsHandler() http.Handler {
	return promhttp.Handler()
}
