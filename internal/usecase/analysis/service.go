// Package analysis implements the analysis and insight requestors: it builds
// prompts, submits them to a TextGenerator, extracts the JSON embedded in the
// reply and falls back to static values whenever any stage fails.
package analysis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"localbiz-insights/internal/domain/entity"
	"localbiz-insights/internal/observability/logging"
	"localbiz-insights/internal/observability/metrics"
	"localbiz-insights/internal/observability/tracing"
	"localbiz-insights/internal/utils/jsonx"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/errgroup"
)

const (
	operationAnalysis = "analysis"
	operationInsights = "insights"

	defaultTimeout = 30 * time.Second
)

// Service answers analysis and insight requests. Its methods never fail:
// every call resolves to a live or fallback Result.
type Service struct {
	generator       TextGenerator
	analysisTimeout time.Duration
	insightsTimeout time.Duration
	tracer          trace.Tracer
}

// Option configures a Service.
type Option func(*Service)

// WithTimeouts bounds each analysis and insights call. Non-positive values
// keep the 30s default.
func WithTimeouts(analysis, insights time.Duration) Option {
	return func(s *Service) {
		if analysis > 0 {
			s.analysisTimeout = analysis
		}
		if insights > 0 {
			s.insightsTimeout = insights
		}
	}
}

// WithTracer overrides the global tracer.
func WithTracer(t trace.Tracer) Option {
	return func(s *Service) {
		s.tracer = t
	}
}

// NewService creates a service backed by generator.
func NewService(generator TextGenerator, opts ...Option) *Service {
	s := &Service{
		generator:       generator,
		analysisTimeout: defaultTimeout,
		insightsTimeout: defaultTimeout,
		tracer:          tracing.GetTracer(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// GeneratorName returns the name of the configured backend.
func (s *Service) GeneratorName() string {
	return s.generator.Name()
}

// AnalyzeBusiness asks the model for a digital-presence analysis of profile.
// On any failure it returns FallbackAnalysis(profile) tagged with the failing stage.
func (s *Service) AnalyzeBusiness(ctx context.Context, profile entity.BusinessProfile) Result[entity.BusinessAnalysis] {
	start := time.Now()
	ctx, span := s.tracer.Start(ctx, "analysis.AnalyzeBusiness",
		trace.WithAttributes(
			attribute.String("business.name", profile.Name),
			attribute.String("business.category", profile.Category),
			attribute.String("generator", s.generator.Name()),
		))
	defer span.End()

	var result Result[entity.BusinessAnalysis]
	value, err := s.requestAnalysis(ctx, profile)
	if err != nil {
		result = Fallback(FallbackAnalysis(profile), ReasonOf(err))
	} else {
		result = Live(value)
	}

	s.observe(ctx, span, operationAnalysis, result.Kind, result.Reason, err, start)
	return result
}

// MarketInsights asks the model for insights on a category in a location.
// On any failure it returns FallbackInsights(location, category).
func (s *Service) MarketInsights(ctx context.Context, location, category string) Result[[]string] {
	start := time.Now()
	ctx, span := s.tracer.Start(ctx, "analysis.MarketInsights",
		trace.WithAttributes(
			attribute.String("market.location", location),
			attribute.String("market.category", category),
			attribute.String("generator", s.generator.Name()),
		))
	defer span.End()

	var result Result[[]string]
	value, err := s.requestInsights(ctx, location, category)
	if err != nil {
		result = Fallback(FallbackInsights(location, category), ReasonOf(err))
	} else {
		result = Live(value)
	}

	s.observe(ctx, span, operationInsights, result.Kind, result.Reason, err, start)
	return result
}

// AnalyzeWithInsights runs AnalyzeBusiness and MarketInsights concurrently,
// using the profile's address and category as the market, and waits for both.
func (s *Service) AnalyzeWithInsights(ctx context.Context, profile entity.BusinessProfile) CombinedResult {
	ctx, span := s.tracer.Start(ctx, "analysis.AnalyzeWithInsights")
	defer span.End()

	location, category := InsightsTarget(profile.Address, profile.Category)

	var (
		combined CombinedResult
		g        errgroup.Group
	)
	g.Go(func() error {
		combined.Analysis = s.AnalyzeBusiness(ctx, profile)
		return nil
	})
	g.Go(func() error {
		combined.Insights = s.MarketInsights(ctx, location, category)
		return nil
	})
	_ = g.Wait()

	return combined
}

func (s *Service) requestAnalysis(ctx context.Context, profile entity.BusinessProfile) (entity.BusinessAnalysis, error) {
	ctx, cancel := context.WithTimeout(ctx, s.analysisTimeout)
	defer cancel()

	text, err := s.generate(ctx, AnalysisPrompt(profile), AnalysisGenerationConfig)
	if err != nil {
		return entity.BusinessAnalysis{}, err
	}

	raw, err := extract(text, '{', '}')
	if err != nil {
		return entity.BusinessAnalysis{}, err
	}
	return DecodeAnalysis(raw)
}

func (s *Service) requestInsights(ctx context.Context, location, category string) ([]string, error) {
	ctx, cancel := context.WithTimeout(ctx, s.insightsTimeout)
	defer cancel()

	text, err := s.generate(ctx, InsightsPrompt(location, category), InsightsGenerationConfig)
	if err != nil {
		return nil, err
	}

	raw, err := extract(text, '[', ']')
	if err != nil {
		return nil, err
	}
	return DecodeInsights(raw)
}

func (s *Service) generate(ctx context.Context, prompt string, cfg GenerationConfig) (string, error) {
	text, err := s.generator.Generate(ctx, prompt, cfg)
	if err != nil {
		if !errors.Is(err, ErrTransport) && !errors.Is(err, ErrEnvelope) {
			err = fmt.Errorf("%w: %v", ErrTransport, err)
		}
		return "", err
	}
	// A reply that arrives after the deadline is still a transport failure.
	if ctxErr := ctx.Err(); ctxErr != nil {
		return "", fmt.Errorf("%w: %v", ErrTransport, ctxErr)
	}
	return text, nil
}

func extract(text string, open, close byte) (json.RawMessage, error) {
	raw, err := jsonx.Extract[json.RawMessage](text, open, close)
	switch {
	case errors.Is(err, jsonx.ErrNoMatch):
		return nil, fmt.Errorf("%w: %v", ErrExtraction, err)
	case err != nil:
		return nil, fmt.Errorf("%w: %v", ErrParse, err)
	}
	return raw, nil
}

func (s *Service) observe(ctx context.Context, span trace.Span, operation string, kind Kind, reason Reason, err error, start time.Time) {
	elapsed := time.Since(start)
	metrics.RecordAnalysisResult(operation, string(kind), string(reason), elapsed)

	span.SetAttributes(
		attribute.String("result.kind", string(kind)),
		attribute.String("result.reason", string(reason)),
	)

	logger := logging.WithRequestID(ctx, logging.FromContext(ctx))
	if err != nil {
		span.RecordError(err)
		logger.Warn("serving fallback",
			slog.String("operation", operation),
			slog.String("generator", s.generator.Name()),
			slog.String("reason", string(reason)),
			slog.Duration("duration", elapsed),
			slog.Any("error", err))
		return
	}

	logger.Info("served live result",
		slog.String("operation", operation),
		slog.String("generator", s.generator.Name()),
		slog.Duration("duration", elapsed))
}
