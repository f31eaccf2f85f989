// Package middleware holds cross-cutting HTTP middleware that needs its own
// configuration, currently CORS for the browser frontend.
package middleware

import (
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	envconfig "localbiz-insights/pkg/config"
)

// CORSConfig is the CORS policy.
type CORSConfig struct {
	// AllowedOrigins is an exact-match whitelist. Empty disables CORS headers.
	AllowedOrigins []string
	AllowedMethods []string
	AllowedHeaders []string
	// MaxAge is the preflight cache lifetime in seconds.
	MaxAge int
	Logger *slog.Logger
}

// LoadCORSConfig reads CORS_ALLOWED_ORIGINS, CORS_ALLOWED_METHODS,
// CORS_ALLOWED_HEADERS and CORS_MAX_AGE.
func LoadCORSConfig() CORSConfig {
	return CORSConfig{
		AllowedOrigins: envconfig.GetEnvStringList("CORS_ALLOWED_ORIGINS", nil),
		AllowedMethods: envconfig.GetEnvStringList("CORS_ALLOWED_METHODS", []string{http.MethodGet, http.MethodPost, http.MethodOptions}),
		AllowedHeaders: envconfig.GetEnvStringList("CORS_ALLOWED_HEADERS", []string{"Content-Type", "X-Request-ID"}),
		MaxAge:         envconfig.GetEnvInt("CORS_MAX_AGE", 86400),
	}
}

// normalizeOrigin lowercases and strips a trailing slash.
func normalizeOrigin(origin string) string {
	return strings.TrimSuffix(strings.ToLower(strings.TrimSpace(origin)), "/")
}

// CORS sets CORS headers for whitelisted origins and answers their preflight
// requests with 204. Requests from other origins pass through without CORS
// headers, so the browser blocks the response.
func CORS(cfg CORSConfig) func(http.Handler) http.Handler {
	allowed := make(map[string]struct{}, len(cfg.AllowedOrigins))
	for _, o := range cfg.AllowedOrigins {
		if o = normalizeOrigin(o); o != "" {
			allowed[o] = struct{}{}
		}
	}
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}
	methods := strings.Join(cfg.AllowedMethods, ", ")
	headers := strings.Join(cfg.AllowedHeaders, ", ")
	maxAge := strconv.Itoa(cfg.MaxAge)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			origin := r.Header.Get("Origin")
			if origin == "" {
				next.ServeHTTP(w, r)
				return
			}

			w.Header().Add("Vary", "Origin")
			if _, ok := allowed[normalizeOrigin(origin)]; !ok {
				logger.Warn("CORS: origin not allowed",
					slog.String("origin", origin),
					slog.String("path", r.URL.Path),
					slog.String("method", r.Method))
				next.ServeHTTP(w, r)
				return
			}

			w.Header().Set("Access-Control-Allow-Origin", origin)

			if r.Method == http.MethodOptions && r.Header.Get("Access-Control-Request-Method") != "" {
				w.Header().Set("Access-Control-Allow-Methods", methods)
				w.Header().Set("Access-Control-Allow-Headers", headers)
				w.Header().Set("Access-Control-Max-Age", maxAge)
				w.WriteHeader(http.StatusNoContent)
				return
			}

			w.Header().Set("Access-Control-Expose-Headers", "X-Request-ID, X-Trace-Id")
			next.ServeHTTP(w, r)
		})
	}
}
