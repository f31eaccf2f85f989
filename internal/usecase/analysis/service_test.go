package analysis

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"testing"
	"time"

	"localbiz-insights/internal/domain/entity"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

/* ───────── test doubles ───────── */

type generateCall struct {
	Prompt string
	Config GenerationConfig
}

// stubGenerator answers prompts with fn and records every call.
type stubGenerator struct {
	mu    sync.Mutex
	calls []generateCall
	fn    func(ctx context.Context, prompt string, cfg GenerationConfig) (string, error)
}

func (g *stubGenerator) Generate(ctx context.Context, prompt string, cfg GenerationConfig) (string, error) {
	g.mu.Lock()
	g.calls = append(g.calls, generateCall{Prompt: prompt, Config: cfg})
	g.mu.Unlock()
	return g.fn(ctx, prompt, cfg)
}

func (g *stubGenerator) Name() string { return "stub" }

func replying(text string) *stubGenerator {
	return &stubGenerator{fn: func(context.Context, string, GenerationConfig) (string, error) {
		return text, nil
	}}
}

func failing(err error) *stubGenerator {
	return &stubGenerator{fn: func(context.Context, string, GenerationConfig) (string, error) {
		return "", err
	}}
}

// routing answers analysis prompts with analysis and insight prompts with insights.
func routing(analysis, insights func() (string, error)) *stubGenerator {
	return &stubGenerator{fn: func(_ context.Context, prompt string, _ GenerationConfig) (string, error) {
		if strings.Contains(prompt, "Gere insights de mercado") {
			return insights()
		}
		return analysis()
	}}
}

func padaria() entity.BusinessProfile {
	return entity.BusinessProfile{
		Name:        "Padaria Doce Pão",
		Category:    "Padaria",
		Rating:      4.6,
		ReviewCount: 200,
		Address:     "Rua das Flores, 123 - São Paulo, SP",
		HasWebsite:  true,
		HasPhone:    true,
	}
}

func restaurante() entity.BusinessProfile {
	return entity.BusinessProfile{
		Name:        "Restaurante Sabor Caseiro",
		Category:    "Restaurante",
		Rating:      3.8,
		ReviewCount: 30,
		Address:     "Belo Horizonte, MG",
		HasWebsite:  false,
		HasPhone:    true,
	}
}

const liveAnalysisReply = "Claro! Aqui está a análise:\n```json\n" + `{
  "digitalPresenceScore": 82,
  "strengths": ["Ótima reputação", "Site ativo", "Atendimento"],
  "weaknesses": ["Pouco Instagram", "SEO fraco", "Sem delivery"],
  "recommendations": ["Postar diariamente", "Investir em SEO", "Parcerias com apps"],
  "marketOpportunities": ["Cafés especiais", "Encomendas corporativas"],
  "competitiveAdvantage": "Pães artesanais de fermentação natural",
  "summary": "Negócio sólido com espaço para crescer online."
}` + "\n```\nEspero ter ajudado."

/* ───────── AnalyzeBusiness ───────── */

func TestAnalyzeBusiness_Live(t *testing.T) {
	gen := replying(liveAnalysisReply)
	svc := NewService(gen)

	result := svc.AnalyzeBusiness(context.Background(), padaria())

	require.True(t, result.IsLive())
	assert.Equal(t, ReasonNone, result.Reason)
	want := entity.BusinessAnalysis{
		DigitalPresenceScore: 82,
		Strengths:            []string{"Ótima reputação", "Site ativo", "Atendimento"},
		Weaknesses:           []string{"Pouco Instagram", "SEO fraco", "Sem delivery"},
		Recommendations:      []string{"Postar diariamente", "Investir em SEO", "Parcerias com apps"},
		MarketOpportunities:  []string{"Cafés especiais", "Encomendas corporativas"},
		CompetitiveAdvantage: "Pães artesanais de fermentação natural",
		Summary:              "Negócio sólido com espaço para crescer online.",
	}
	if diff := cmp.Diff(want, result.Value); diff != "" {
		t.Errorf("analysis mismatch (-want +got):\n%s", diff)
	}

	require.Len(t, gen.calls, 1)
	assert.Equal(t, AnalysisGenerationConfig, gen.calls[0].Config)
	assert.Contains(t, gen.calls[0].Prompt, "Nome: Padaria Doce Pão")
}

func TestAnalyzeBusiness_FallbackReasons(t *testing.T) {
	tests := []struct {
		name       string
		generator  *stubGenerator
		wantReason Reason
	}{
		{
			name:       "transport error",
			generator:  failing(fmt.Errorf("%w: connection refused", ErrTransport)),
			wantReason: ReasonTransport,
		},
		{
			name:       "unclassified error counts as transport",
			generator:  failing(errors.New("boom")),
			wantReason: ReasonTransport,
		},
		{
			name:       "envelope error",
			generator:  failing(fmt.Errorf("%w: no candidates", ErrEnvelope)),
			wantReason: ReasonEnvelope,
		},
		{
			name:       "no braces",
			generator:  replying("Desculpe, não consigo ajudar com isso."),
			wantReason: ReasonExtraction,
		},
		{
			name:       "malformed JSON",
			generator:  replying(`{"digitalPresenceScore": 80, "strengths": [}`),
			wantReason: ReasonParse,
		},
		{
			name:       "missing fields",
			generator:  replying(`{"digitalPresenceScore": 80}`),
			wantReason: ReasonParse,
		},
		{
			name: "wrong field type",
			generator: replying(`{"digitalPresenceScore": "alta", "strengths": [], "weaknesses": [],
				"recommendations": [], "marketOpportunities": [], "competitiveAdvantage": "x", "summary": "y"}`),
			wantReason: ReasonParse,
		},
		{
			name: "score too large for an int",
			generator: replying(`{"digitalPresenceScore": 1e300, "strengths": [], "weaknesses": [],
				"recommendations": [], "marketOpportunities": [], "competitiveAdvantage": "x", "summary": "y"}`),
			wantReason: ReasonParse,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewService(tt.generator)

			result := svc.AnalyzeBusiness(context.Background(), padaria())

			assert.Equal(t, KindFallback, result.Kind)
			assert.Equal(t, tt.wantReason, result.Reason)
			assert.Equal(t, FallbackAnalysis(padaria()), result.Value)
		})
	}
}

func TestAnalyzeBusiness_FallbackIsDeterministic(t *testing.T) {
	svc := NewService(failing(ErrTransport))

	first := svc.AnalyzeBusiness(context.Background(), padaria())
	second := svc.AnalyzeBusiness(context.Background(), padaria())

	assert.Equal(t, first, second)
}

func TestAnalyzeBusiness_PadariaScenario(t *testing.T) {
	svc := NewService(failing(ErrTransport))

	result := svc.AnalyzeBusiness(context.Background(), padaria())

	assert.Equal(t, 75, result.Value.DigitalPresenceScore)
	assert.Contains(t, result.Value.Strengths, "Avaliação positiva de 4.6/5")
	assert.Contains(t, result.Value.Strengths, "200 avaliações dos clientes")
}

func TestAnalyzeBusiness_Timeout(t *testing.T) {
	gen := &stubGenerator{fn: func(ctx context.Context, _ string, _ GenerationConfig) (string, error) {
		<-ctx.Done()
		return "", ctx.Err()
	}}
	svc := NewService(gen, WithTimeouts(20*time.Millisecond, 20*time.Millisecond))

	start := time.Now()
	result := svc.AnalyzeBusiness(context.Background(), padaria())

	assert.Less(t, time.Since(start), 2*time.Second)
	assert.Equal(t, KindFallback, result.Kind)
	assert.Equal(t, ReasonTransport, result.Reason)
}

func TestAnalyzeBusiness_LateReplyIsTransportFailure(t *testing.T) {
	gen := &stubGenerator{fn: func(ctx context.Context, _ string, _ GenerationConfig) (string, error) {
		<-ctx.Done()
		return liveAnalysisReply, nil
	}}
	svc := NewService(gen, WithTimeouts(10*time.Millisecond, 10*time.Millisecond))

	result := svc.AnalyzeBusiness(context.Background(), padaria())

	assert.Equal(t, ReasonTransport, result.Reason)
}

func TestAnalyzeBusiness_CancelledCaller(t *testing.T) {
	gen := &stubGenerator{fn: func(ctx context.Context, _ string, _ GenerationConfig) (string, error) {
		return "", fmt.Errorf("%w: %v", ErrTransport, ctx.Err())
	}}
	svc := NewService(gen)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	result := svc.AnalyzeBusiness(ctx, padaria())

	assert.Equal(t, KindFallback, result.Kind)
	assert.Equal(t, ReasonTransport, result.Reason)
}

/* ───────── MarketInsights ───────── */

func TestMarketInsights_Live(t *testing.T) {
	gen := replying("Aqui estão:\n[\"Demanda por delivery cresce\", \"Clientes valorizam pães artesanais\", \"Festas juninas\", \"Parcerias com cafés\"]")
	svc := NewService(gen)

	result := svc.MarketInsights(context.Background(), "São Paulo, SP", "Padaria")

	require.True(t, result.IsLive())
	assert.Equal(t, []string{
		"Demanda por delivery cresce",
		"Clientes valorizam pães artesanais",
		"Festas juninas",
		"Parcerias com cafés",
	}, result.Value)

	require.Len(t, gen.calls, 1)
	assert.Equal(t, InsightsGenerationConfig, gen.calls[0].Config)
	assert.Contains(t, gen.calls[0].Prompt, `categoria "Padaria" localizado em "São Paulo, SP"`)
}

func TestMarketInsights_FallbackReasons(t *testing.T) {
	tests := []struct {
		name       string
		generator  *stubGenerator
		wantReason Reason
	}{
		{name: "transport", generator: failing(ErrTransport), wantReason: ReasonTransport},
		{name: "envelope", generator: failing(ErrEnvelope), wantReason: ReasonEnvelope},
		{name: "no brackets", generator: replying("Sem insights hoje."), wantReason: ReasonExtraction},
		{name: "empty array", generator: replying("[]"), wantReason: ReasonParse},
		{name: "non-string items", generator: replying("[1, 2, 3]"), wantReason: ReasonParse},
		{name: "broken array", generator: replying(`["a", "b"`), wantReason: ReasonExtraction},
		{name: "unterminated string", generator: replying(`["a, "b"]`), wantReason: ReasonParse},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewService(tt.generator)

			result := svc.MarketInsights(context.Background(), "Belo Horizonte, MG", "Restaurante")

			assert.Equal(t, KindFallback, result.Kind)
			assert.Equal(t, tt.wantReason, result.Reason)
			assert.GreaterOrEqual(t, len(result.Value), 4)
			assert.Contains(t, result.Value[0], "Restaurante")
			assert.Contains(t, result.Value[0], "Belo Horizonte, MG")
		})
	}
}

/* ───────── AnalyzeWithInsights ───────── */

func TestAnalyzeWithInsights_BothLive(t *testing.T) {
	gen := routing(
		func() (string, error) { return liveAnalysisReply, nil },
		func() (string, error) { return `["Insight A", "Insight B"]`, nil },
	)
	svc := NewService(gen)

	combined := svc.AnalyzeWithInsights(context.Background(), padaria())

	assert.True(t, combined.Analysis.IsLive())
	assert.True(t, combined.Insights.IsLive())
	assert.Equal(t, []string{"Insight A", "Insight B"}, combined.Insights.Value)
	assert.Len(t, gen.calls, 2)
}

func TestAnalyzeWithInsights_OneSideFallsBack(t *testing.T) {
	gen := routing(
		func() (string, error) { return "", ErrTransport },
		func() (string, error) { return `["Insight A"]`, nil },
	)
	svc := NewService(gen)

	combined := svc.AnalyzeWithInsights(context.Background(), restaurante())

	assert.Equal(t, KindFallback, combined.Analysis.Kind)
	assert.Equal(t, 45, combined.Analysis.Value.DigitalPresenceScore)
	assert.True(t, combined.Insights.IsLive())
	assert.Equal(t, []string{"Insight A"}, combined.Insights.Value)
}

func TestAnalyzeWithInsights_UsesAddressAndCategory(t *testing.T) {
	svc := NewService(failing(ErrTransport))

	combined := svc.AnalyzeWithInsights(context.Background(), restaurante())

	assert.Equal(t, "Mercado de Restaurante em Belo Horizonte, MG apresenta oportunidades de crescimento",
		combined.Insights.Value[0])
}

func TestAnalyzeWithInsights_BlankMarketUsesDefaults(t *testing.T) {
	svc := NewService(failing(ErrTransport))

	profile := padaria()
	profile.Address = "  "
	profile.Category = ""
	combined := svc.AnalyzeWithInsights(context.Background(), profile)

	assert.Contains(t, combined.Insights.Value[0], DefaultLocation)
	assert.Contains(t, combined.Insights.Value[0], DefaultCategory)
}

func TestAnalyzeWithInsights_RunsConcurrently(t *testing.T) {
	var wg sync.WaitGroup
	wg.Add(2)
	gen := &stubGenerator{fn: func(ctx context.Context, _ string, _ GenerationConfig) (string, error) {
		wg.Done()
		wg.Wait() // deadlocks unless both calls are in flight together
		return "", ErrTransport
	}}
	svc := NewService(gen, WithTimeouts(5*time.Second, 5*time.Second))

	done := make(chan CombinedResult, 1)
	go func() { done <- svc.AnalyzeWithInsights(context.Background(), padaria()) }()

	select {
	case combined := <-done:
		assert.Equal(t, KindFallback, combined.Analysis.Kind)
		assert.Equal(t, KindFallback, combined.Insights.Kind)
	case <-time.After(3 * time.Second):
		t.Fatal("requestors did not run concurrently")
	}
}

/* ───────── tracing ───────── */

func TestService_RecordsSpans(t *testing.T) {
	exporter := tracetest.NewInMemoryExporter()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSyncer(exporter))
	defer func() { _ = tp.Shutdown(context.Background()) }()

	svc := NewService(failing(ErrTransport), WithTracer(tp.Tracer("test")))
	svc.MarketInsights(context.Background(), "Salvador, BA", "Loja de Eletrônicos")

	spans := exporter.GetSpans()
	require.Len(t, spans, 1)
	assert.Equal(t, "analysis.MarketInsights", spans[0].Name)

	attrs := map[string]string{}
	for _, a := range spans[0].Attributes {
		attrs[string(a.Key)] = a.Value.Emit()
	}
	assert.Equal(t, "fallback", attrs["result.kind"])
	assert.Equal(t, "transport", attrs["result.reason"])
	assert.Equal(t, "stub", attrs["generator"])
}

func TestService_GeneratorName(t *testing.T) {
	assert.Equal(t, "stub", NewService(failing(ErrTransport)).GeneratorName())
}
