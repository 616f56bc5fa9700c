package handlers

import (
	"net/http"

	"go.uber.org/zap"

	"github.com/xavierca1/nexus-prive/internal/usecase"
)

type PipelineHandler struct {
	ReportUC *usecase.PipelineReportUseCase
	Logger   *zap.Logger
}

func NewPipelineHandler(uc *usecase.PipelineReportUseCase, logger *zap.Logger) *PipelineHandler {
	return &PipelineHandler{ReportUC: uc, Logger: orNop(logger)}
}

func (h *PipelineHandler) Ledger(w http.ResponseWriter, r *http.Request) {
	out, err := h.ReportUC.Ledger(r.Context())
	if err != nil {
		writeUseCaseError(w, h.Logger, err)
		return
	}
	writeJSON(w, http.StatusOK, out)
}

func (h *PipelineHandler) Funnel(w http.ResponseWriter, r *http.Request) {
	out, err := h.ReportUC.Funnel(r.Context())
	if err != nil {
		writeUseCaseError(w, h.Logger, err)
		return
	}
	writeJSON(w, http.StatusOK, out)
}
