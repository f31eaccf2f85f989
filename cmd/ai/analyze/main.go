// Package main provides a CLI command for analyzing a business's digital presence.
// Usage: localbiz-analyze --name NAME [--category C] [--rating R] [--reviews N]
// [--address A] [--website] [--phone] [--insights-only] [--output text|json]
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"localbiz-insights/internal/config"
	"localbiz-insights/internal/domain/entity"
	"localbiz-insights/internal/infra/generator"
	"localbiz-insights/internal/observability/logging"
	"localbiz-insights/internal/usecase/analysis"
	envconfig "localbiz-insights/pkg/config"
)

type options struct {
	profile      entity.BusinessProfile
	insightsOnly bool
	location     string
	category     string
	output       string
	timeout      time.Duration
}

// AnalysisOutput is the JSON form of a tagged analysis.
type AnalysisOutput struct {
	Kind     string                  `json:"kind"`
	Reason   string                  `json:"reason,omitempty"`
	Analysis entity.BusinessAnalysis `json:"analysis"`
}

// InsightsOutput is the JSON form of tagged insights.
type InsightsOutput struct {
	Kind     string   `json:"kind"`
	Reason   string   `json:"reason,omitempty"`
	Location string   `json:"location"`
	Category string   `json:"category"`
	Insights []string `json:"insights"`
}

// CombinedOutput is printed when both results are requested.
type CombinedOutput struct {
	Business entity.BusinessProfile `json:"business"`
	Analysis AnalysisOutput         `json:"analysis"`
	Insights InsightsOutput         `json:"insights"`
}

func main() {
	opts, err := parseFlags(os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n\n", err)
		fmt.Fprintln(os.Stderr, "Usage: localbiz-analyze --name NAME [--category C] [--rating R] [--reviews N] [--address A] [--website] [--phone] [--output json]")
		fmt.Fprintln(os.Stderr, "       localbiz-analyze --insights-only [--location L] [--category C] [--output json]")
		fmt.Fprintln(os.Stderr, "")
		fmt.Fprintln(os.Stderr, "Examples:")
		fmt.Fprintln(os.Stderr, `  localbiz-analyze --name "Padaria Doce Pão" --category Padaria --rating 4.6 --reviews 200 --website --phone`)
		fmt.Fprintln(os.Stderr, `  localbiz-analyze --insights-only --location "Belo Horizonte, MG" --category Restaurante`)
		os.Exit(2)
	}

	if _, err := envconfig.LoadDotEnv(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	aiConfig, err := config.LoadAIConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: Invalid AI configuration: %v\n", err)
		os.Exit(1)
	}

	logger := logging.NewTextLogger(aiConfig.Observability.LogLevel)
	slog.SetDefault(logger)

	gen, err := generator.New(aiConfig)
	if err != nil {
		logger.Error("failed to create text generator", slog.Any("error", err))
		os.Exit(1)
	}

	svc := analysis.NewService(gen,
		analysis.WithTimeouts(aiConfig.Timeouts.Analysis, aiConfig.Timeouts.Insights))

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	ctx, cancel := context.WithTimeout(ctx, opts.timeout)
	defer cancel()

	logger.Info("running analysis",
		slog.String("backend", gen.Name()),
		slog.Bool("insights_only", opts.insightsOnly))

	if err := run(ctx, svc, opts, os.Stdout); err != nil {
		logger.Error("failed to write output", slog.Any("error", err))
		os.Exit(1)
	}
}

func parseFlags(args []string) (options, error) {
	var opts options
	fs := flag.NewFlagSet("localbiz-analyze", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.StringVar(&opts.profile.Name, "name", "", "Business name")
	fs.StringVar(&opts.profile.Category, "category", "", "Business category")
	fs.Float64Var(&opts.profile.Rating, "rating", 0, "Average rating (0-5)")
	fs.IntVar(&opts.profile.ReviewCount, "reviews", 0, "Number of reviews")
	fs.StringVar(&opts.profile.Address, "address", "", "Business address")
	fs.BoolVar(&opts.profile.HasWebsite, "website", false, "Business has a website")
	fs.BoolVar(&opts.profile.HasPhone, "phone", false, "Business has a phone number")
	fs.BoolVar(&opts.insightsOnly, "insights-only", false, "Only print market insights")
	fs.StringVar(&opts.location, "location", "", "Market location for --insights-only")
	fs.StringVar(&opts.output, "output", "text", "Output format: text or json")
	fs.DurationVar(&opts.timeout, "timeout", 90*time.Second, "Overall deadline")

	if err := fs.Parse(args); err != nil {
		return opts, err
	}
	opts.category = opts.profile.Category

	if opts.output != "text" && opts.output != "json" {
		return opts, fmt.Errorf("invalid output format %q (must be 'text' or 'json')", opts.output)
	}
	if !opts.insightsOnly && opts.profile.Name == "" {
		return opts, fmt.Errorf("--name is required unless --insights-only is set")
	}
	if opts.timeout <= 0 {
		return opts, fmt.Errorf("--timeout must be positive")
	}
	return opts, nil
}

func run(ctx context.Context, svc *analysis.Service, opts options, w io.Writer) error {
	if opts.insightsOnly {
		location, category := analysis.InsightsTarget(opts.location, opts.category)
		out := toInsightsOutput(svc.MarketInsights(ctx, location, category), location, category)
		if opts.output == "json" {
			return writeJSON(w, out)
		}
		return writeInsightsText(w, out)
	}

	combined := svc.AnalyzeWithInsights(ctx, opts.profile)
	location, category := analysis.InsightsTarget(opts.profile.Address, opts.profile.Category)
	out := CombinedOutput{
		Business: opts.profile,
		Analysis: AnalysisOutput{
			Kind:     string(combined.Analysis.Kind),
			Reason:   string(combined.Analysis.Reason),
			Analysis: combined.Analysis.Value,
		},
		Insights: toInsightsOutput(combined.Insights, location, category),
	}
	if opts.output == "json" {
		return writeJSON(w, out)
	}
	return writeCombinedText(w, out)
}

func toInsightsOutput(r analysis.Result[[]string], location, category string) InsightsOutput {
	return InsightsOutput{
		Kind:     string(r.Kind),
		Reason:   string(r.Reason),
		Location: location,
		Category: category,
		Insights: r.Value,
	}
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func provenance(kind, reason string) string {
	if reason == "" {
		return kind
	}
	return fmt.Sprintf("%s, %s", kind, reason)
}

func writeList(w io.Writer, title string, items []string) {
	fmt.Fprintf(w, "%s:\n", title)
	for _, item := range items {
		fmt.Fprintf(w, "  - %s\n", item)
	}
}

func writeInsightsText(w io.Writer, out InsightsOutput) error {
	fmt.Fprintf(w, "Market insights for %s in %s (%s)\n", out.Category, out.Location, provenance(out.Kind, out.Reason))
	for i, insight := range out.Insights {
		fmt.Fprintf(w, "%d. %s\n", i+1, insight)
	}
	return nil
}

func writeCombinedText(w io.Writer, out CombinedOutput) error {
	a := out.Analysis.Analysis
	fmt.Fprintf(w, "%s (%s)\n", out.Business.Name, provenance(out.Analysis.Kind, out.Analysis.Reason))
	fmt.Fprintf(w, "Digital presence score: %d/100\n\n", a.DigitalPresenceScore)
	fmt.Fprintf(w, "Summary:\n%s\n\n", a.Summary)
	writeList(w, "Strengths", a.Strengths)
	writeList(w, "Weaknesses", a.Weaknesses)
	writeList(w, "Recommendations", a.Recommendations)
	writeList(w, "Market opportunities", a.MarketOpportunities)
	fmt.Fprintf(w, "Competitive advantage: %s\n\n", a.CompetitiveAdvantage)
	return writeInsightsText(w, out.Insights)
}
