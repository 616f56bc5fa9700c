package handlers

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/xavierca1/nexus-prive/internal/entity"
)

type PropertyHandler struct {
	Catalog entity.PropertyCatalog
}

func NewPropertyHandler(c entity.PropertyCatalog) *PropertyHandler {
	return &PropertyHandler{Catalog: c}
}

func (h *PropertyHandler) List(w http.ResponseWriter, r *http.Request) {
	props, err := h.Catalog.List(r.Context())
	if err != nil {
		writeErrorResponse(w, http.StatusInternalServerError, "CATALOG_ERROR", "catalogue unavailable")
		return
	}
	writeJSON(w, http.StatusOK, props)
}

func (h *PropertyHandler) Get(w http.ResponseWriter, r *http.Request) {
	p, err := h.Catalog.FindByID(r.Context(), chi.URLParam(r, "id"))
	if errors.Is(err, entity.ErrPropertyNotFound) {
		writeErrorResponse(w, http.StatusNotFound, "PROPERTY_NOT_FOUND", "no such property")
		return
	}
	if err != nil {
		writeErrorResponse(w, http.StatusInternalServerError, "CATALOG_ERROR", "catalogue unavailable")
		return
	}
	writeJSON(w, http.StatusOK, p)
}
