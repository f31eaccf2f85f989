package generator

import (
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Call outcomes recorded by MetricsRecorder.
const (
	OutcomeSuccess   = "success"
	OutcomeTransport = "transport"
	OutcomeEnvelope  = "envelope"
	OutcomeRejected  = "rejected"
)

// MetricsRecorder abstracts metric recording so tests can inject an isolated
// registry and backends can share one implementation.
type MetricsRecorder interface {
	// RecordCall records one backend call with its outcome and latency.
	RecordCall(backend, outcome string, duration time.Duration)

	// RecordResponseLength records the length of generated text in runes.
	RecordResponseLength(backend string, runes int)
}

// PrometheusMetrics implements MetricsRecorder using Prometheus metrics.
type PrometheusMetrics struct {
	calls    *prometheus.CounterVec
	duration *prometheus.HistogramVec
	length   *prometheus.HistogramVec
}

var (
	defaultMetrics     *PrometheusMetrics
	defaultMetricsOnce sync.Once
)

// DefaultMetrics returns the recorder registered with the default Prometheus
// registry. Uses a singleton to avoid duplicate registration.
func DefaultMetrics() *PrometheusMetrics {
	defaultMetricsOnce.Do(func() {
		defaultMetrics = NewPrometheusMetrics(prometheus.DefaultRegisterer)
	})
	return defaultMetrics
}

// NewPrometheusMetrics creates a recorder whose collectors are registered with reg.
func NewPrometheusMetrics(reg prometheus.Registerer) *PrometheusMetrics {
	factory := promauto.With(reg)
	return &PrometheusMetrics{
		calls: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "text_generation_calls_total",
			Help: "Total number of text generation backend calls by outcome",
		}, []string{"backend", "outcome"}),
		duration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "text_generation_duration_seconds",
			Help:    "Latency of text generation backend calls",
			Buckets: prometheus.ExponentialBuckets(0.1, 2, 10),
		}, []string{"backend", "outcome"}),
		length: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "text_generation_response_length_runes",
			Help:    "Distribution of generated text lengths in runes",
			Buckets: []float64{50, 100, 250, 500, 1000, 2000, 4000},
		}, []string{"backend"}),
	}
}

// RecordCall implements MetricsRecorder.RecordCall
func (p *PrometheusMetrics) RecordCall(backend, outcome string, duration time.Duration) {
	p.calls.WithLabelValues(backend, outcome).Inc()
	p.duration.WithLabelValues(backend, outcome).Observe(duration.Seconds())
}

// RecordResponseLength implements MetricsRecorder.RecordResponseLength
func (p *PrometheusMetrics) RecordResponseLength(backend string, runes int) {
	p.length.WithLabelValues(backend).Observe(float64(runes))
}
