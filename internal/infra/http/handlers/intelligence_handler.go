package handlers

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/xavierca1/nexus-prive/internal/usecase"
)

type IntelligenceHandler struct {
	UC          *usecase.IntelligenceUseCase
	Logger      *zap.Logger
	rateLimiter *RateLimiter
}

// NewIntelligenceHandler takes the limiter guarding the public concierge;
// nil disables it.
func NewIntelligenceHandler(uc *usecase.IntelligenceUseCase, limiter *RateLimiter, logger *zap.Logger) *IntelligenceHandler {
	return &IntelligenceHandler{UC: uc, Logger: orNop(logger), rateLimiter: limiter}
}

type textResponse struct {
	LeadID string `json:"leadId,omitempty"`
	Text   string `json:"text"`
}

func (h *IntelligenceHandler) Memo(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	text, err := h.UC.Memo(r.Context(), id)
	if err != nil {
		writeUseCaseError(w, h.Logger, err)
		return
	}
	writeJSON(w, http.StatusOK, textResponse{LeadID: id, Text: text})
}

func (h *IntelligenceHandler) Outreach(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	text, err := h.UC.Outreach(r.Context(), id)
	if err != nil {
		writeUseCaseError(w, h.Logger, err)
		return
	}
	writeJSON(w, http.StatusOK, textResponse{LeadID: id, Text: text})
}

func (h *IntelligenceHandler) Dossier(w http.ResponseWriter, r *http.Request) {
	d, err := h.UC.Dossier(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeUseCaseError(w, h.Logger, err)
		return
	}
	writeJSON(w, http.StatusOK, d)
}

func (h *IntelligenceHandler) Forecast(w http.ResponseWriter, r *http.Request) {
	text, err := h.UC.Forecast(r.Context())
	if err != nil {
		writeUseCaseError(w, h.Logger, err)
		return
	}
	writeJSON(w, http.StatusOK, textResponse{Text: text})
}

type profileRequest struct {
	Profile string `json:"profile"`
}

func (h *IntelligenceHandler) Profile(w http.ResponseWriter, r *http.Request) {
	var req profileRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if strings.TrimSpace(req.Profile) == "" {
		writeErrorResponse(w, http.StatusBadRequest, usecase.CodeValidation, "profile: is required")
		return
	}

	p, err := h.UC.Profile(r.Context(), req.Profile)
	if err != nil {
		writeUseCaseError(w, h.Logger, err)
		return
	}
	writeJSON(w, http.StatusOK, p)
}

type conciergeRequest struct {
	Query string `json:"query"`
}

// Concierge answers questions from the public site.
func (h *IntelligenceHandler) Concierge(w http.ResponseWriter, r *http.Request) {
	if h.rateLimiter != nil && !h.rateLimiter.Allow(getClientIP(r)) {
		writeErrorResponse(w, http.StatusTooManyRequests, "RATE_LIMITED", "Too many requests. Please try again later.")
		return
	}

	var req conciergeRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if strings.TrimSpace(req.Query) == "" {
		writeErrorResponse(w, http.StatusBadRequest, usecase.CodeValidation, "query: is required")
		return
	}

	writeJSON(w, http.StatusOK, textResponse{Text: h.UC.Advice(r.Context(), req.Query)})
}
