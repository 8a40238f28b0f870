package stats

import (
	"net/http"

	"github.com/rs/zerolog"

	httperrors "github.com/hossam20182020-ops/LLM-Based-Interview-Prep-Platform-prod/pkg/http/errors"
)

// HTTPHandler serves GET /api/stats.
type HTTPHandler struct {
	svc    *Service
	logger zerolog.Logger
}

func NewHTTPHandler(svc *Service, logger zerolog.Logger) *HTTPHandler {
	return &HTTPHandler{
		svc:    svc,
		logger: logger.With().Str("component", "stats_http").Logger(),
	}
}

func (h *HTTPHandler) Get(w http.ResponseWriter, r *http.Request) {
	s, err := h.svc.Get(r.Context())
	if err != nil {
		h.logger.Error().Err(err).Msg("stats query failed")
		httperrors.RespondInternalError(w, "Internal server error")
		return
	}
	httperrors.RespondJSON(w, http.StatusOK, s)
}
