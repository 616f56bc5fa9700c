package handlers

import (
	"net/http"
	"time"

	"github.com/xavierca1/nexus-prive/internal/entity"
	"github.com/xavierca1/nexus-prive/internal/policy"
	"github.com/xavierca1/nexus-prive/internal/usecase"
)

type SessionIssuer interface {
	Issue(role entity.Role) (string, time.Time, error)
}

type SessionHandler struct {
	Issuer SessionIssuer
}

func NewSessionHandler(issuer SessionIssuer) *SessionHandler {
	return &SessionHandler{Issuer: issuer}
}

type sessionRequest struct {
	Role string `json:"role"`
}

type viewItem struct {
	ID    entity.View `json:"id"`
	Label string      `json:"label"`
}

type sessionResponse struct {
	Token       string      `json:"token"`
	Role        entity.Role `json:"role"`
	Views       []viewItem  `json:"views"`
	DefaultView entity.View `json:"defaultView"`
	ExpiresAt   time.Time   `json:"expiresAt"`
}

// Create switches the console to a desk role.
func (h *SessionHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req sessionRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	role, err := entity.ParseRole(req.Role)
	if err != nil {
		writeErrorResponse(w, http.StatusBadRequest, usecase.CodeInvalidRole, err.Error())
		return
	}

	token, exp, err := h.Issuer.Issue(role)
	if err != nil {
		writeErrorResponse(w, http.StatusInternalServerError, "SESSION_FAILURE", "could not issue session")
		return
	}

	views := policy.Views(role)
	items := make([]viewItem, 0, len(views))
	for _, v := range views {
		items = append(items, viewItem{ID: v, Label: v.Label()})
	}

	writeJSON(w, http.StatusCreated, sessionResponse{
		Token:       token,
		Role:        role,
		Views:       items,
		DefaultView: policy.DefaultView(role),
		ExpiresAt:   exp.UTC(),
	})
}

// Roles lists the selectable desk roles.
func (h *SessionHandler) Roles(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, entity.Roles())
}
