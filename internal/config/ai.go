package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	envconfig "localbiz-insights/pkg/config"
)

// Supported values for AI_PROVIDER.
const (
	ProviderGemini   = "gemini"
	ProviderClaude   = "claude"
	ProviderOpenAI   = "openai"
	ProviderDisabled = "disabled"
)

// DefaultGeminiEndpoint is the generateContent endpoint of the hosted model.
const DefaultGeminiEndpoint = "https://generativelanguage.googleapis.com/v1beta/models/gemini-pro:generateContent"

// AIConfig holds configuration for the text-generation backend used by the
// analysis and insight requestors.
type AIConfig struct {
	// Provider selects the backend: gemini, claude, openai or disabled.
	// Default: "gemini"
	Provider string

	// Enabled controls whether any backend is contacted. When false every
	// request is served from the deterministic fallbacks.
	// Default: true
	Enabled bool

	Gemini GeminiConfig
	Claude ClaudeConfig
	OpenAI OpenAIConfig

	// Timeouts bounds each requestor call.
	Timeouts TimeoutConfig

	// CircuitBreaker guards the selected backend.
	CircuitBreaker CircuitBreakerConfig

	Observability ObservabilityConfig
}

// GeminiConfig configures the raw-HTTP Gemini backend.
type GeminiConfig struct {
	// Endpoint is the full generateContent URL; the key is appended as a query parameter.
	Endpoint string
	// APIKey is read from GEMINI_API_KEY and never logged.
	APIKey string
}

// ClaudeConfig configures the Anthropic backend.
type ClaudeConfig struct {
	APIKey string
	Model  string
}

// OpenAIConfig configures the OpenAI backend.
type OpenAIConfig struct {
	APIKey string
	Model  string
}

// TimeoutConfig holds per-operation deadlines.
type TimeoutConfig struct {
	// Analysis timeout. Default: 30s
	Analysis time.Duration
	// Insights timeout. Default: 30s
	Insights time.Duration
}

// CircuitBreakerConfig for backend resilience.
type CircuitBreakerConfig struct {
	// MaxRequests in half-open state.
	MaxRequests uint32

	// Interval for clearing failure counts.
	Interval time.Duration

	// Timeout before transitioning from open to half-open.
	Timeout time.Duration

	// FailureThreshold ratio to trip circuit (0.0 to 1.0).
	FailureThreshold float64

	// MinRequests before calculating failure ratio.
	MinRequests uint32
}

// ObservabilityConfig holds logging and tracing settings.
type ObservabilityConfig struct {
	// EnableTracing installs an OpenTelemetry SDK tracer provider.
	EnableTracing bool
	// LogLevel is "debug", "info", "warn" or "error". Default: "info"
	LogLevel string
}

// LoadAIConfig loads AI configuration from environment variables.
// Returns a config with defaults if environment variables are not set.
func LoadAIConfig() (*AIConfig, error) {
	config := &AIConfig{
		Provider: strings.ToLower(envconfig.GetEnvString("AI_PROVIDER", ProviderGemini)),
		Enabled:  envconfig.GetEnvBool("AI_ENABLED", true),
		Gemini: GeminiConfig{
			Endpoint: envconfig.GetEnvString("GEMINI_ENDPOINT", DefaultGeminiEndpoint),
			APIKey:   envconfig.GetEnvString("GEMINI_API_KEY", ""),
		},
		Claude: ClaudeConfig{
			APIKey: envconfig.GetEnvString("ANTHROPIC_API_KEY", ""),
			Model:  envconfig.GetEnvString("CLAUDE_MODEL", "claude-sonnet-4-5-20250929"),
		},
		OpenAI: OpenAIConfig{
			APIKey: envconfig.GetEnvString("OPENAI_API_KEY", ""),
			Model:  envconfig.GetEnvString("OPENAI_MODEL", "gpt-4o-mini"),
		},
		Timeouts: TimeoutConfig{
			Analysis: envconfig.GetEnvDuration("AI_TIMEOUT_ANALYSIS", 30*time.Second),
			Insights: envconfig.GetEnvDuration("AI_TIMEOUT_INSIGHTS", 30*time.Second),
		},
		CircuitBreaker: CircuitBreakerConfig{
			MaxRequests:      uint32(envconfig.GetEnvInt("AI_CB_MAX_REQUESTS", 3)), // #nosec G115 -- validated below
			Interval:         envconfig.GetEnvDuration("AI_CB_INTERVAL", 30*time.Second),
			Timeout:          envconfig.GetEnvDuration("AI_CB_TIMEOUT", 60*time.Second),
			FailureThreshold: envconfig.GetEnvFloat("AI_CB_FAILURE_THRESHOLD", 0.6),
			MinRequests:      5,
		},
		Observability: ObservabilityConfig{
			EnableTracing: envconfig.GetEnvBool("TRACING_ENABLED", false),
			LogLevel:      strings.ToLower(envconfig.GetEnvString("LOG_LEVEL", "info")),
		},
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid AI configuration: %w", err)
	}

	return config, nil
}

// Validate checks configuration correctness.
// A missing API key is not an error: the backend factory degrades to the
// disabled generator so that every request is still answered.
func (c *AIConfig) Validate() error {
	switch c.Provider {
	case ProviderGemini, ProviderClaude, ProviderOpenAI, ProviderDisabled:
	default:
		return fmt.Errorf("AI_PROVIDER must be one of gemini, claude, openai, disabled (got %q)", c.Provider)
	}

	if c.Provider == ProviderGemini {
		u, err := url.Parse(c.Gemini.Endpoint)
		if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
			return fmt.Errorf("GEMINI_ENDPOINT must be an absolute http(s) URL")
		}
	}

	if c.Provider == ProviderClaude && c.Claude.Model == "" {
		return fmt.Errorf("CLAUDE_MODEL cannot be empty")
	}

	if c.Provider == ProviderOpenAI && c.OpenAI.Model == "" {
		return fmt.Errorf("OPENAI_MODEL cannot be empty")
	}

	if err := envconfig.ValidatePositiveDuration(c.Timeouts.Analysis); err != nil {
		return fmt.Errorf("AI_TIMEOUT_ANALYSIS: %w", err)
	}

	if err := envconfig.ValidatePositiveDuration(c.Timeouts.Insights); err != nil {
		return fmt.Errorf("AI_TIMEOUT_INSIGHTS: %w", err)
	}

	if c.CircuitBreaker.MaxRequests == 0 {
		return fmt.Errorf("AI_CB_MAX_REQUESTS must be positive")
	}

	if c.CircuitBreaker.Interval <= 0 {
		return fmt.Errorf("AI_CB_INTERVAL must be positive")
	}

	if c.CircuitBreaker.Timeout <= 0 {
		return fmt.Errorf("AI_CB_TIMEOUT must be positive")
	}

	if c.CircuitBreaker.FailureThreshold <= 0 || c.CircuitBreaker.FailureThreshold > 1 {
		return fmt.Errorf("AI_CB_FAILURE_THRESHOLD must be in (0.0, 1.0]")
	}

	switch c.Observability.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("LOG_LEVEL must be one of debug, info, warn, error")
	}

	return nil
}

// APIKey returns the credential of the selected provider.
func (c *AIConfig) APIKey() string {
	switch c.Provider {
	case ProviderGemini:
		return c.Gemini.APIKey
	case ProviderClaude:
		return c.Claude.APIKey
	case ProviderOpenAI:
		return c.OpenAI.APIKey
	default:
		return ""
	}
}
