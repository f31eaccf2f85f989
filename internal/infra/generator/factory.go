package generator

import (
	"fmt"
	"log/slog"

	"localbiz-insights/internal/config"
	"localbiz-insights/internal/usecase/analysis"
)

// Generator is a text generator that reports its health.
type Generator interface {
	analysis.TextGenerator
	StatusReporter
}

// New selects a backend from cfg.Provider. A disabled configuration or a
// missing API key yields a Disabled backend rather than an error.
func New(cfg *config.AIConfig, opts ...Option) (Generator, error) {
	if !cfg.Enabled || cfg.Provider == config.ProviderDisabled {
		slog.Info("text generation disabled, serving fallbacks only")
		return NewDisabled("AI features are disabled"), nil
	}

	if cfg.APIKey() == "" {
		slog.Warn("no API key configured, serving fallbacks only",
			slog.String("provider", cfg.Provider))
		return NewDisabled(fmt.Sprintf("no API key configured for %s", cfg.Provider)), nil
	}

	switch cfg.Provider {
	case config.ProviderGemini:
		g, err := NewGemini(cfg.Gemini, cfg.CircuitBreaker, opts...)
		if err != nil {
			return nil, err
		}
		slog.Info("initialized text generator",
			slog.String("provider", cfg.Provider),
			slog.String("endpoint_host", g.endpoint.Host))
		return g, nil
	case config.ProviderClaude:
		slog.Info("initialized text generator",
			slog.String("provider", cfg.Provider),
			slog.String("model", cfg.Claude.Model))
		return NewClaude(cfg.Claude, cfg.CircuitBreaker, opts...), nil
	case config.ProviderOpenAI:
		slog.Info("initialized text generator",
			slog.String("provider", cfg.Provider),
			slog.String("model", cfg.OpenAI.Model))
		return NewOpenAI(cfg.OpenAI, cfg.CircuitBreaker, opts...), nil
	default:
		return nil, fmt.Errorf("unknown AI provider %q", cfg.Provider)
	}
}
