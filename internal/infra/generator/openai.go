package generator

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/sashabaranov/go-openai"

	"localbiz-insights/internal/config"
	"localbiz-insights/internal/resilience/circuitbreaker"
	"localbiz-insights/internal/usecase/analysis"
)

// OpenAI generates text with the chat completions API. Top-K has no
// equivalent there and is not sent.
type OpenAI struct {
	backend
	client *openai.Client
	model  string
}

// NewOpenAI creates an OpenAI backend.
func NewOpenAI(cfg config.OpenAIConfig, cbCfg config.CircuitBreakerConfig, opts ...Option) *OpenAI {
	o := buildOptions(circuitbreaker.OpenAIAPIConfig(), cbCfg, opts)

	clientCfg := openai.DefaultConfig(cfg.APIKey)
	clientCfg.HTTPClient = o.httpClient
	if o.baseURL != "" {
		clientCfg.BaseURL = o.baseURL
	}

	return &OpenAI{
		backend: backend{name: config.ProviderOpenAI, breaker: o.breaker, metrics: o.metrics},
		client:  openai.NewClientWithConfig(clientCfg),
		model:   cfg.Model,
	}
}

// Generate implements analysis.TextGenerator.
func (o *OpenAI) Generate(ctx context.Context, prompt string, cfg analysis.GenerationConfig) (string, error) {
	return o.execute(ctx, func(ctx context.Context, _ string) (string, error) {
		return o.doGenerate(ctx, prompt, cfg)
	})
}

func (o *OpenAI) doGenerate(ctx context.Context, prompt string, cfg analysis.GenerationConfig) (string, error) {
	resp, err := o.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: o.model,
		Messages: []openai.ChatCompletionMessage{{
			Role:    openai.ChatMessageRoleUser,
			Content: prompt,
		}},
		Temperature: float32(cfg.Temperature),
		TopP:        float32(cfg.TopP),
		MaxTokens:   cfg.MaxOutputTokens,
	})
	if err != nil {
		var apiErr *openai.APIError
		if errors.As(err, &apiErr) {
			return "", fmt.Errorf("%w: openai api status %d", analysis.ErrTransport, apiErr.HTTPStatusCode)
		}
		return "", fmt.Errorf("%w: openai api: %w", analysis.ErrTransport, err)
	}

	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("%w: openai reply has no choices", analysis.ErrEnvelope)
	}
	content := resp.Choices[0].Message.Content
	if strings.TrimSpace(content) == "" && resp.Choices[0].Message.Refusal != "" {
		return "", fmt.Errorf("%w: openai refused the prompt", analysis.ErrEnvelope)
	}
	return content, nil
}
