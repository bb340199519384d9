package http

import (
	"net/http"

	"github.com/MKhiriev/go-form-keeper/internal/utils"
)

// getServerVersion answers GET /api/version with the plain version string.
func (h *Handler) getServerVersion(w http.ResponseWriter, r *http.Request) {
	utils.WriteText(w, h.services.AppInfoService.Version(r.Context()), http.StatusOK)
}
