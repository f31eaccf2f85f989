// Package generator provides text-generation backends for the analysis
// service: Gemini over raw HTTP, Claude and OpenAI through their SDKs, and a
// disabled backend. Every call runs through a circuit breaker that counts
// only transport failures, and records Prometheus metrics.
package generator

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"localbiz-insights/internal/config"
	"localbiz-insights/internal/resilience/circuitbreaker"
	"localbiz-insights/internal/usecase/analysis"
	"localbiz-insights/internal/utils/text"

	"github.com/google/uuid"
)

// Status describes a backend for health and readiness checks.
type Status struct {
	Backend     string
	Enabled     bool
	CircuitOpen bool
	State       string
}

// StatusReporter is implemented by every backend in this package.
type StatusReporter interface {
	Status() Status
}

// Option customizes a backend.
type Option func(*options)

type options struct {
	httpClient *http.Client
	baseURL    string
	metrics    MetricsRecorder
	breaker    *circuitbreaker.CircuitBreaker
}

// WithHTTPClient sets the HTTP client used for outbound calls.
func WithHTTPClient(c *http.Client) Option {
	return func(o *options) { o.httpClient = c }
}

// WithBaseURL overrides the SDK base URL of the Claude and OpenAI backends.
func WithBaseURL(u string) Option {
	return func(o *options) { o.baseURL = u }
}

// WithMetrics sets the metrics recorder. Defaults to DefaultMetrics().
func WithMetrics(m MetricsRecorder) Option {
	return func(o *options) { o.metrics = m }
}

// WithCircuitBreaker replaces the breaker built from configuration.
func WithCircuitBreaker(cb *circuitbreaker.CircuitBreaker) Option {
	return func(o *options) { o.breaker = cb }
}

func buildOptions(preset circuitbreaker.Config, cbCfg config.CircuitBreakerConfig, opts []Option) options {
	o := options{}
	for _, opt := range opts {
		opt(&o)
	}
	if o.httpClient == nil {
		o.httpClient = &http.Client{}
	}
	if o.metrics == nil {
		o.metrics = DefaultMetrics()
	}
	if o.breaker == nil {
		o.breaker = circuitbreaker.New(BreakerConfig(preset, cbCfg))
	}
	return o
}

// BreakerConfig overlays configuration on a backend preset and makes the
// breaker trip on transport failures only. A caller that cancels its own
// request does not count.
func BreakerConfig(preset circuitbreaker.Config, cfg config.CircuitBreakerConfig) circuitbreaker.Config {
	c := preset
	if cfg.MaxRequests > 0 {
		c.MaxRequests = cfg.MaxRequests
	}
	if cfg.Interval > 0 {
		c.Interval = cfg.Interval
	}
	if cfg.Timeout > 0 {
		c.Timeout = cfg.Timeout
	}
	if cfg.FailureThreshold > 0 {
		c.FailureThreshold = cfg.FailureThreshold
	}
	if cfg.MinRequests > 0 {
		c.MinRequests = cfg.MinRequests
	}
	c.IsFailure = func(err error) bool {
		return errors.Is(err, analysis.ErrTransport) && !errors.Is(err, context.Canceled)
	}
	return c
}

// backend holds what every remote generator shares.
type backend struct {
	name    string
	breaker *circuitbreaker.CircuitBreaker
	metrics MetricsRecorder
}

// Name implements analysis.TextGenerator.
func (b *backend) Name() string {
	return b.name
}

// Status implements StatusReporter.
func (b *backend) Status() Status {
	return Status{
		Backend:     b.name,
		Enabled:     true,
		CircuitOpen: b.breaker.IsOpen(),
		State:       b.breaker.State().String(),
	}
}

// execute runs call through the breaker and records logs and metrics.
func (b *backend) execute(ctx context.Context, call func(ctx context.Context, requestID string) (string, error)) (string, error) {
	requestID := uuid.New().String()
	start := time.Now()

	out, err := b.breaker.Execute(func() (interface{}, error) {
		return call(ctx, requestID)
	})
	duration := time.Since(start)

	if err != nil {
		outcome := OutcomeTransport
		switch {
		case circuitbreaker.Rejected(err):
			outcome = OutcomeRejected
			slog.WarnContext(ctx, "text generation rejected, circuit breaker open",
				slog.String("request_id", requestID),
				slog.String("backend", b.name),
				slog.String("state", b.breaker.State().String()))
			err = fmt.Errorf("%w: %s circuit breaker open", analysis.ErrTransport, b.name)
		case errors.Is(err, analysis.ErrEnvelope):
			outcome = OutcomeEnvelope
		}
		b.metrics.RecordCall(b.name, outcome, duration)
		if outcome != OutcomeRejected {
			slog.WarnContext(ctx, "text generation failed",
				slog.String("request_id", requestID),
				slog.String("backend", b.name),
				slog.String("outcome", outcome),
				slog.Duration("duration", duration),
				slog.String("error", err.Error()))
		}
		return "", err
	}

	generated, _ := out.(string)
	length := text.CountRunes(generated)
	b.metrics.RecordCall(b.name, OutcomeSuccess, duration)
	b.metrics.RecordResponseLength(b.name, length)

	slog.InfoContext(ctx, "text generation completed",
		slog.String("request_id", requestID),
		slog.String("backend", b.name),
		slog.Int("response_length", length),
		slog.Duration("duration", duration))

	return generated, nil
}
