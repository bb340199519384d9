package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-form-keeper/internal/app"
	"github.com/MKhiriev/go-form-keeper/internal/logger"
	"github.com/MKhiriev/go-form-keeper/internal/utils"
	"github.com/MKhiriev/go-form-keeper/models"
)

func (h *Handler) listForms(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, h.services.IntakeService.Forms(r.Context()), http.StatusOK)
}

func (h *Handler) submit(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)
	formID := chi.URLParam(r, "form")

	var sub models.Submission
	if err := json.NewDecoder(r.Body).Decode(&sub); err != nil {
		log.Err(err).Str("func", "*Handler.submit").Msg("invalid JSON was passed")
		utils.WriteText(w, app.MsgInvalidDataProvided, http.StatusBadRequest)
		return
	}

	receipt, err := h.services.IntakeService.Accept(r.Context(), formID, sub)
	if err != nil {
		writeError(w, r, err, "*Handler.submit")
		return
	}

	utils.WriteJSON(w, receipt, http.StatusCreated)
}

func (h *Handler) listSubmissions(w http.ResponseWriter, r *http.Request) {
	formID := chi.URLParam(r, "form")

	limit, err := parseLimit(r)
	if err != nil {
		writeError(w, r, err, "*Handler.listSubmissions")
		return
	}

	records, err := h.services.IntakeService.History(r.Context(), formID, limit)
	if err != nil {
		writeError(w, r, err, "*Handler.listSubmissions")
		return
	}
	if records == nil {
		records = []models.Record{}
	}

	utils.WriteJSON(w, records, http.StatusOK)
}

// parseLimit reads ?limit=. A missing value means no limit.
func parseLimit(r *http.Request) (uint64, error) {
	raw := r.URL.Query().Get("limit")
	if raw == "" {
		return 0, nil
	}
	limit, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return 0, ErrInvalidLimit
	}
	return limit, nil
}

func writeError(w http.ResponseWriter, r *http.Request, err error, fn string) {
	resp := responseFromError(err)

	log := logger.FromRequest(r)
	event := log.Warn()
	if resp.status >= http.StatusInternalServerError {
		event = log.Error()
	}
	event.Err(err).Str("func", fn).Int("status", resp.status).Msg("request failed")

	utils.WriteText(w, resp.message, resp.status)
}
