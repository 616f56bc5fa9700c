package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/xavierca1/nexus-prive/internal/infra/http/middleware"
	"github.com/xavierca1/nexus-prive/internal/usecase"
)

type MandateHandler struct {
	ReportUC *usecase.PipelineReportUseCase
	StatusUC *usecase.UpdateStatusUseCase
	Logger   *zap.Logger
}

func NewMandateHandler(report *usecase.PipelineReportUseCase, status *usecase.UpdateStatusUseCase, logger *zap.Logger) *MandateHandler {
	return &MandateHandler{ReportUC: report, StatusUC: status, Logger: orNop(logger)}
}

// List handles GET /mandates?q=&residency=&scope=
func (h *MandateHandler) List(w http.ResponseWriter, r *http.Request) {
	role, _ := middleware.RoleFrom(r.Context())
	q := r.URL.Query()

	out, err := h.ReportUC.Search(r.Context(), usecase.SearchInput{
		Role:      role,
		Query:     q.Get("q"),
		Residency: q.Get("residency"),
		Scope:     q.Get("scope"),
	})
	if err != nil {
		writeUseCaseError(w, h.Logger, err)
		return
	}

	writeJSON(w, http.StatusOK, out)
}

func (h *MandateHandler) Get(w http.ResponseWriter, r *http.Request) {
	out, err := h.ReportUC.Detail(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeUseCaseError(w, h.Logger, err)
		return
	}
	writeJSON(w, http.StatusOK, out)
}

type updateStatusRequest struct {
	Status string `json:"status"`
}

func (h *MandateHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	var req updateStatusRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	role, _ := middleware.RoleFrom(r.Context())
	out, err := h.StatusUC.Execute(r.Context(), usecase.UpdateStatusInput{
		LeadID: chi.URLParam(r, "id"),
		Status: req.Status,
		Role:   role,
	})
	if err != nil {
		writeUseCaseError(w, h.Logger, err)
		return
	}

	writeJSON(w, http.StatusOK, out)
}
