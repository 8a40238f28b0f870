package question

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/rs/zerolog"

	"github.com/hossam20182020-ops/LLM-Based-Interview-Prep-Platform-prod/internal/logging"
	httperrors "github.com/hossam20182020-ops/LLM-Based-Interview-Prep-Platform-prod/pkg/http/errors"
)

const maxBodyBytes = 1 << 20

// HTTPHandler exposes REST endpoints for sets and questions.
type HTTPHandler struct {
	svc    *Service
	logger zerolog.Logger
}

// NewHTTPHandler constructs a question HTTP handler.
func NewHTTPHandler(svc *Service, logger zerolog.Logger) *HTTPHandler {
	return &HTTPHandler{
		svc:    svc,
		logger: logger.With().Str("component", "question_http").Logger(),
	}
}

type generateRequest struct {
	JobTitle string `json:"job_title"`
}

type createSetRequest struct {
	JobTitle  string  `json:"job_title"`
	Name      *string `json:"name"`
	Questions []Draft `json:"questions"`
}

type patchRequest struct {
	UserAnswer *string  `json:"user_answer"`
	Difficulty *float64 `json:"difficulty"`
	Flagged    *bool    `json:"flagged"`
}

type legacyPage struct {
	Page[Question]
	PageSize int `json:"page_size"`
}

// Generate handles POST /api/questions/generate
func (h *HTTPHandler) Generate(w http.ResponseWriter, r *http.Request) {
	var req generateRequest
	if !h.decode(w, r, &req) {
		return
	}

	drafts, err := h.svc.Generate(r.Context(), req.JobTitle)
	if err != nil {
		h.respondErr(w, r, err, "question")
		return
	}
	httperrors.RespondJSON(w, http.StatusOK, map[string]interface{}{
		"questions": drafts,
	})
}

// CreateSet handles POST /api/questions
func (h *HTTPHandler) CreateSet(w http.ResponseWriter, r *http.Request) {
	var req createSetRequest
	if !h.decode(w, r, &req) {
		return
	}

	set, err := h.svc.CreateSet(r.Context(), CreateSetInput{
		JobTitle:  req.JobTitle,
		Name:      req.Name,
		Questions: req.Questions,
	})
	if err != nil {
		h.respondErr(w, r, err, "set")
		return
	}
	httperrors.RespondJSON(w, http.StatusCreated, set)
}

// List handles GET /api/questions?set_id=&page=&size=
func (h *HTTPHandler) List(w http.ResponseWriter, r *http.Request) {
	params, err := listParams(r, "size", "page_size")
	if err != nil {
		h.respondErr(w, r, err, "question")
		return
	}

	page, err := h.svc.List(r.Context(), params)
	if err != nil {
		h.respondErr(w, r, err, "question")
		return
	}
	httperrors.RespondJSON(w, http.StatusOK, page)
}

// ListLegacy handles GET /api/questions/page?set_id=&page=&page_size=
// The body mirrors List plus a page_size field for older clients.
func (h *HTTPHandler) ListLegacy(w http.ResponseWriter, r *http.Request) {
	params, err := listParams(r, "page_size", "size")
	if err != nil {
		h.respondErr(w, r, err, "question")
		return
	}

	page, err := h.svc.List(r.Context(), params)
	if err != nil {
		h.respondErr(w, r, err, "question")
		return
	}
	httperrors.RespondJSON(w, http.StatusOK, legacyPage{Page: page, PageSize: page.Size})
}

// Update handles PATCH /api/questions/{id}
func (h *HTTPHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		h.respondErr(w, r, err, "question")
		return
	}
	var req patchRequest
	if !h.decode(w, r, &req) {
		return
	}

	q, err := h.svc.UpdateQuestion(r.Context(), id, Patch{
		UserAnswer: req.UserAnswer,
		Difficulty: req.Difficulty,
		Flagged:    req.Flagged,
	})
	if err != nil {
		h.respondErr(w, r, err, "question")
		return
	}
	httperrors.RespondJSON(w, http.StatusOK, q)
}

// Delete handles DELETE /api/questions/{id}
func (h *HTTPHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		h.respondErr(w, r, err, "question")
		return
	}
	if err := h.svc.DeleteQuestion(r.Context(), id); err != nil {
		h.respondErr(w, r, err, "question")
		return
	}
	httperrors.RespondJSON(w, http.StatusOK, map[string]bool{"ok": true})
}

// ListSets handles GET /api/sets?page=&size=
func (h *HTTPHandler) ListSets(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	page, err := intParam(q.Get("page"), "page", DefaultPage)
	if err != nil {
		h.respondErr(w, r, err, "set")
		return
	}
	size, err := intParam(firstNonEmpty(q.Get("size"), q.Get("page_size")), "size", DefaultPageSize)
	if err != nil {
		h.respondErr(w, r, err, "set")
		return
	}

	out, err := h.svc.ListSets(r.Context(), page, size)
	if err != nil {
		h.respondErr(w, r, err, "set")
		return
	}
	httperrors.RespondJSON(w, http.StatusOK, out)
}

// GetSet handles GET /api/sets/{id}
func (h *HTTPHandler) GetSet(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		h.respondErr(w, r, err, "set")
		return
	}
	set, err := h.svc.GetSet(r.Context(), id)
	if err != nil {
		h.respondErr(w, r, err, "set")
		return
	}
	httperrors.RespondJSON(w, http.StatusOK, set)
}

// DeleteSet handles DELETE /api/sets/{id}
func (h *HTTPHandler) DeleteSet(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		h.respondErr(w, r, err, "set")
		return
	}
	if err := h.svc.DeleteSet(r.Context(), id); err != nil {
		h.respondErr(w, r, err, "set")
		return
	}
	httperrors.RespondJSON(w, http.StatusOK, map[string]bool{"ok": true})
}

func (h *HTTPHandler) decode(w http.ResponseWriter, r *http.Request, dst interface{}) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		httperrors.RespondBadRequest(w, "Invalid JSON payload")
		return false
	}
	return true
}

func (h *HTTPHandler) respondErr(w http.ResponseWriter, r *http.Request, err error, resource string) {
	var verr *ValidationError
	switch {
	case errors.As(err, &verr):
		httperrors.RespondValidationError(w, verr.Message, verr.Field)
	case errors.Is(err, ErrNotFound):
		httperrors.RespondNotFound(w, resource+" not found")
	default:
		logger := logging.FromContextOr(r.Context(), h.logger)
		logger.Error().Err(err).Str("path", r.URL.Path).Msg("request failed")
		httperrors.RespondInternalError(w, "Internal server error")
	}
}

func listParams(r *http.Request, sizeKey, aliasKey string) (ListParams, error) {
	q := r.URL.Query()
	params := ListParams{}

	var err error
	if params.Page, err = intParam(q.Get("page"), "page", DefaultPage); err != nil {
		return ListParams{}, err
	}
	if params.Size, err = intParam(firstNonEmpty(q.Get(sizeKey), q.Get(aliasKey)), "size", DefaultPageSize); err != nil {
		return ListParams{}, err
	}
	if raw := q.Get("set_id"); raw != "" {
		id, perr := strconv.ParseInt(raw, 10, 64)
		if perr != nil {
			return ListParams{}, invalid("set_id", "set_id must be an integer")
		}
		params.SetID = &id
	}
	return params, nil
}

func intParam(raw, field string, def int) (int, error) {
	if raw == "" {
		return def, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, invalid(field, "%s must be an integer", field)
	}
	return v, nil
}

func pathID(r *http.Request) (int64, error) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		return 0, invalid("id", "id must be an integer")
	}
	return id, nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
