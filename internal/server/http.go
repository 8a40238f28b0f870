package server

import (
	"context"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"github.com/hossam20182020-ops/LLM-Based-Interview-Prep-Platform-prod/internal/config"
	"github.com/hossam20182020-ops/LLM-Based-Interview-Prep-Platform-prod/internal/metrics"
	"github.com/hossam20182020-ops/LLM-Based-Interview-Prep-Platform-prod/internal/question"
	"github.com/hossam20182020-ops/LLM-Based-Interview-Prep-Platform-prod/internal/stats"
	httperrors "github.com/hossam20182020-ops/LLM-Based-Interview-Prep-Platform-prod/pkg/http/errors"
)

const healthTimeout = 2 * time.Second

// Pinger checks store connectivity.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Handlers bundles everything the router needs.
type Handlers struct {
	Questions *question.HTTPHandler
	Stats     *stats.HTTPHandler
	Store     Pinger
	Metrics   *metrics.Metrics
	Gatherer  prometheus.Gatherer
}

// NewHTTPServer wires routes and middleware for the API service.
func NewHTTPServer(cfg *config.App, logger zerolog.Logger, h Handlers) *http.Server {
	return &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           NewHandler(cfg, logger, h),
		ReadHeaderTimeout: 10 * time.Second,
	}
}

// NewHandler builds the routed handler with the middleware chain applied.
func NewHandler(cfg *config.App, logger zerolog.Logger, h Handlers) http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /healthz", healthHandler(h.Store, logger))

	gatherer := h.Gatherer
	if gatherer == nil {
		gatherer = prometheus.DefaultGatherer
	}
	mux.Handle("GET /metrics", promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}))

	if q := h.Questions; q != nil {
		mux.HandleFunc("POST /api/questions/generate", q.Generate)
		mux.HandleFunc("POST /api/questions", q.CreateSet)
		mux.HandleFunc("GET /api/questions", q.List)
		mux.HandleFunc("GET /api/questions/page", q.ListLegacy)
		mux.HandleFunc("PATCH /api/questions/{id}", q.Update)
		mux.HandleFunc("DELETE /api/questions/{id}", q.Delete)
		mux.HandleFunc("GET /api/sets", q.ListSets)
		mux.HandleFunc("GET /api/sets/{id}", q.GetSet)
		mux.HandleFunc("DELETE /api/sets/{id}", q.DeleteSet)
	}
	if h.Stats != nil {
		mux.HandleFunc("GET /api/stats", h.Stats.Get)
	}

	var handler http.Handler = mux
	if h.Metrics != nil {
		handler = h.Metrics.Middleware(handler)
	}
	handler = CORS(cfg.CORS)(handler)
	handler = RequestLogger(logger)(handler)
	handler = Recover(logger)(handler)
	return handler
}

func healthHandler(store Pinger, logger zerolog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if store != nil {
			ctx, cancel := context.WithTimeout(r.Context(), healthTimeout)
			defer cancel()
			if err := store.Ping(ctx); err != nil {
				logger.Error().Err(err).Msg("store ping failed")
				httperrors.RespondJSON(w, http.StatusServiceUnavailable, map[string]string{
					"status":  "unavailable",
					"error":   httperrors.ErrCodeServiceUnavailable,
					"message": "database unreachable",
				})
				return
			}
		}
		httperrors.RespondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	}
}
