package main

import (
	"context"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	httpSwagger "github.com/swaggo/http-swagger/v2"

	"localbiz-insights/internal/config"
	"localbiz-insights/internal/infra/catalog"
	"localbiz-insights/internal/infra/generator"
	"localbiz-insights/internal/observability/logging"
	"localbiz-insights/internal/observability/metrics"
	"localbiz-insights/internal/observability/tracing"
	analysisUC "localbiz-insights/internal/usecase/analysis"
	"localbiz-insights/internal/usecase/directory"
	envconfig "localbiz-insights/pkg/config"

	hhttp "localbiz-insights/internal/handler/http"
	hanalysis "localbiz-insights/internal/handler/http/analysis"
	hbusiness "localbiz-insights/internal/handler/http/business"
	"localbiz-insights/internal/handler/http/middleware"
	"localbiz-insights/internal/handler/http/requestid"

	_ "localbiz-insights/docs" // swagger docs
)

// @title           Local Business Insights API
// @version         1.0
// @description     Directory of local businesses with AI-generated digital presence analysis and market insights.
// @description     Every analysis answer is tagged live or fallback; the service never fails an analysis request because the model is unavailable.

// @license.name  MIT
// @license.url   https://opensource.org/licenses/MIT

// @host      localhost:8080
// @BasePath  /

func main() {
	envFile, err := envconfig.LoadDotEnv()
	if err != nil {
		slog.Error("failed to load .env file", slog.Any("error", err))
		os.Exit(1)
	}

	aiCfg, err := config.LoadAIConfig()
	if err != nil {
		slog.Error("failed to load AI configuration", slog.Any("error", err))
		os.Exit(1)
	}
	logger := initLogger(aiCfg.Observability.LogLevel)
	if envFile != "" {
		logger.Info("loaded environment file", slog.String("path", envFile))
	}

	serverCfg, err := config.LoadServerConfig()
	if err != nil {
		logger.Error("failed to load server configuration", slog.Any("error", err))
		os.Exit(1)
	}
	if err := serverCfg.ValidateAgainst(aiCfg); err != nil {
		logger.Error("invalid timeout configuration", slog.Any("error", err))
		os.Exit(1)
	}

	shutdownTracing := initTracing(logger, aiCfg.Observability.EnableTracing)
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdownTracing(ctx); err != nil {
			logger.Error("failed to shut down tracer provider", slog.Any("error", err))
		}
	}()

	version := getVersion()
	handler := setupServer(logger, aiCfg, serverCfg, version)
	runServer(logger, serverCfg, handler, version)
}

// initLogger installs the JSON logger as the process default.
func initLogger(level string) *slog.Logger {
	logger := logging.NewLogger(level)
	slog.SetDefault(logger)
	return logger
}

// initTracing installs the SDK tracer provider when enabled. The returned
// function is a no-op otherwise.
func initTracing(logger *slog.Logger, enabled bool) func(context.Context) error {
	if !enabled {
		return func(context.Context) error { return nil }
	}
	logger.Info("tracing enabled", slog.String("service", tracing.InstrumentationName))
	return tracing.Init(tracing.InstrumentationName)
}

// getVersion reads VERSION, defaulting to "dev".
func getVersion() string {
	version := os.Getenv("VERSION")
	if version == "" {
		version = "dev"
	}
	return version
}

func setupServer(logger *slog.Logger, aiCfg *config.AIConfig, serverCfg *config.ServerConfig, version string) http.Handler {
	cat, err := catalog.Load(serverCfg.CatalogPath)
	if err != nil {
		logger.Error("failed to load business catalog", slog.Any("error", err))
		os.Exit(1)
	}
	metrics.UpdateCatalogListings(cat.Len())

	gen, err := generator.New(aiCfg)
	if err != nil {
		logger.Error("failed to create text generator", slog.Any("error", err))
		os.Exit(1)
	}
	logger.Info("text generator ready",
		slog.String("backend", gen.Name()),
		slog.Bool("enabled", gen.Status().Enabled),
		slog.Int("listings", cat.Len()))

	analysisSvc := analysisUC.NewService(gen,
		analysisUC.WithTimeouts(aiCfg.Timeouts.Analysis, aiCfg.Timeouts.Insights))
	dirSvc := &directory.Service{Repo: cat}

	mux := http.NewServeMux()
	aiHealth := hhttp.NewAIHealthHandler(gen)
	mux.Handle("GET /health", &hhttp.HealthHandler{Version: version, Catalog: cat, Generator: gen})
	mux.HandleFunc("GET /health/ai", aiHealth.Health)
	mux.HandleFunc("GET /ready/ai", aiHealth.Ready)
	mux.Handle("GET /metrics", hhttp.MetricsHandler())
	mux.Handle("GET /swagger/", httpSwagger.WrapHandler)

	hanalysis.Register(mux, analysisSvc)
	hbusiness.Register(mux, dirSvc, analysisSvc)

	corsConfig := middleware.LoadCORSConfig()
	corsConfig.Logger = logger
	if len(corsConfig.AllowedOrigins) == 0 {
		logger.Info("CORS disabled: CORS_ALLOWED_ORIGINS is empty")
	} else {
		logger.Info("CORS enabled", slog.Any("allowed_origins", corsConfig.AllowedOrigins))
	}

	// tracing and metrics sit directly on the mux so both see r.Pattern
	return hhttp.Chain(mux,
		middleware.CORS(corsConfig),
		requestid.Middleware,
		hhttp.Recover(logger),
		hhttp.Logging(logger),
		hhttp.LimitRequestBody(hhttp.DefaultMaxBodyBytes),
		hhttp.Timeout(serverCfg.RequestTimeout),
		tracing.Middleware,
		hhttp.MetricsMiddleware,
	)
}

// runServer serves until SIGINT or SIGTERM, then shuts down gracefully.
func runServer(logger *slog.Logger, cfg *config.ServerConfig, handler http.Handler, version string) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	srv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
		BaseContext: func(_ net.Listener) context.Context {
			return ctx
		},
	}

	go func() {
		logger.Info("server starting",
			slog.String("addr", cfg.Addr),
			slog.String("version", version))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server failed", slog.Any("error", err))
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("shutting down server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown failed", slog.Any("error", err))
	}
	cancel()
	logger.Info("server stopped")
}
