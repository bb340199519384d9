package http

import (
	"net/http"
	"net/url"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-form-keeper/internal/utils"
)

func (h *Handler) listRegions(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, h.services.GeographyService.Regions(r.Context()), http.StatusOK)
}

func (h *Handler) listCommunes(w http.ResponseWriter, r *http.Request) {
	region := chi.URLParam(r, "region")
	if unescaped, err := url.PathUnescape(region); err == nil {
		region = unescaped
	}

	communes, err := h.services.GeographyService.Communes(r.Context(), region)
	if err != nil {
		writeError(w, r, err, "*Handler.listCommunes")
		return
	}

	utils.WriteJSON(w, communes, http.StatusOK)
}
