package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"go.uber.org/zap"

	"github.com/xavierca1/nexus-prive/internal/usecase"
)

type errorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}

func writeErrorResponse(w http.ResponseWriter, status int, code, message string) {
	writeJSON(w, status, errorResponse{Error: code, Message: message})
}

var domainStatus = map[string]int{
	usecase.CodeValidation:           http.StatusBadRequest,
	usecase.CodeInvalidStatus:        http.StatusBadRequest,
	usecase.CodeInvalidRole:          http.StatusBadRequest,
	usecase.CodeInvalidFilter:        http.StatusBadRequest,
	usecase.CodeUnauthorized:         http.StatusForbidden,
	usecase.CodeViewForbidden:        http.StatusForbidden,
	usecase.CodeLeadNotFound:         http.StatusNotFound,
	usecase.CodeDuplicateLead:        http.StatusConflict,
	usecase.CodeTransitionNotAllowed: http.StatusConflict,
}

// writeUseCaseError maps use case errors onto HTTP. Technical details are
// logged, never returned.
func writeUseCaseError(w http.ResponseWriter, logger *zap.Logger, err error) {
	var de *usecase.DomainError
	if errors.As(err, &de) {
		status, ok := domainStatus[de.Code]
		if !ok {
			status = http.StatusBadRequest
		}
		writeErrorResponse(w, status, de.Code, de.Message)
		return
	}

	var te *usecase.TechnicalError
	if errors.As(err, &te) {
		logger.Error("request failed", zap.String("code", te.Code), zap.Error(te.Err))
		status := http.StatusInternalServerError
		if te.Code == usecase.CodeGenerationFailed {
			status = http.StatusBadGateway
		}
		writeErrorResponse(w, status, te.Code, te.Message)
		return
	}

	logger.Error("unexpected error", zap.Error(err))
	writeErrorResponse(w, http.StatusInternalServerError, "INTERNAL_ERROR", "internal error")
}

// MaxBodyBytes caps every JSON request body.
const MaxBodyBytes = 64 << 10

func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) bool {
	body := http.MaxBytesReader(w, r.Body, MaxBodyBytes)
	if err := json.NewDecoder(body).Decode(dst); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			writeErrorResponse(w, http.StatusRequestEntityTooLarge, "BODY_TOO_LARGE", "request body is too large")
			return false
		}
		writeErrorResponse(w, http.StatusBadRequest, "INVALID_JSON", "request body is not valid JSON")
		return false
	}
	return true
}

func orNop(l *zap.Logger) *zap.Logger {
	if l == nil {
		return zap.NewNop()
	}
	return l
}
