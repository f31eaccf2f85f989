package generator

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"

	"localbiz-insights/internal/config"
	"localbiz-insights/internal/resilience/circuitbreaker"
	"localbiz-insights/internal/usecase/analysis"
)

// Claude generates text with the Anthropic Messages API.
type Claude struct {
	backend
	client anthropic.Client
	model  string
}

// NewClaude creates a Claude backend. SDK retries are disabled: a failed
// call is answered from the fallbacks instead.
func NewClaude(cfg config.ClaudeConfig, cbCfg config.CircuitBreakerConfig, opts ...Option) *Claude {
	o := buildOptions(circuitbreaker.ClaudeAPIConfig(), cbCfg, opts)

	clientOpts := []option.RequestOption{
		option.WithAPIKey(cfg.APIKey),
		option.WithMaxRetries(0),
		option.WithHTTPClient(o.httpClient),
	}
	if o.baseURL != "" {
		clientOpts = append(clientOpts, option.WithBaseURL(o.baseURL))
	}

	return &Claude{
		backend: backend{name: config.ProviderClaude, breaker: o.breaker, metrics: o.metrics},
		client:  anthropic.NewClient(clientOpts...),
		model:   cfg.Model,
	}
}

// Generate implements analysis.TextGenerator.
func (c *Claude) Generate(ctx context.Context, prompt string, cfg analysis.GenerationConfig) (string, error) {
	return c.execute(ctx, func(ctx context.Context, _ string) (string, error) {
		return c.doGenerate(ctx, prompt, cfg)
	})
}

func (c *Claude) doGenerate(ctx context.Context, prompt string, cfg analysis.GenerationConfig) (string, error) {
	message, err := c.client.Messages.New(ctx, anthropic.MessageNewParams{
		Model:       anthropic.Model(c.model),
		MaxTokens:   int64(cfg.MaxOutputTokens),
		Temperature: anthropic.Float(cfg.Temperature),
		TopK:        anthropic.Int(int64(cfg.TopK)),
		TopP:        anthropic.Float(cfg.TopP),
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(prompt)),
		},
	})
	if err != nil {
		var apiErr *anthropic.Error
		if errors.As(err, &apiErr) {
			return "", fmt.Errorf("%w: claude api status %d", analysis.ErrTransport, apiErr.StatusCode)
		}
		return "", fmt.Errorf("%w: claude api: %w", analysis.ErrTransport, err)
	}

	var parts []string
	for _, block := range message.Content {
		if tb, ok := block.AsAny().(anthropic.TextBlock); ok {
			parts = append(parts, tb.Text)
		}
	}
	if len(parts) == 0 {
		return "", fmt.Errorf("%w: claude reply has no text block", analysis.ErrEnvelope)
	}
	return strings.Join(parts, ""), nil
}
