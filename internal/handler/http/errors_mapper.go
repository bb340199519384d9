package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-form-keeper/internal/app"
	"github.com/MKhiriev/go-form-keeper/internal/catalog"
	"github.com/MKhiriev/go-form-keeper/internal/service"
	"github.com/MKhiriev/go-form-keeper/internal/store"
)

type errorResponse struct {
	status  int
	message string
}

// errorResponses is checked in order; the first matching target wins.
var errorResponses = []struct {
	target error
	errorResponse
}{
	{catalog.ErrUnknownForm, errorResponse{http.StatusNotFound, app.MsgUnknownForm}},
	{service.ErrUnknownRegion, errorResponse{http.StatusNotFound, app.MsgUnknownRegion}},
	{service.ErrInvalidSubmission, errorResponse{http.StatusBadRequest, app.MsgInvalidSubmission}},
	{ErrInvalidLimit, errorResponse{http.StatusBadRequest, app.MsgInvalidLimit}},
	{store.ErrSubmissionExists, errorResponse{http.StatusConflict, app.MsgSubmissionExists}},
	{store.ErrTemporarilyUnavailable, errorResponse{http.StatusServiceUnavailable, app.MsgTemporarilyUnavailable}},
}

func responseFromError(err error) errorResponse {
	for _, e := range errorResponses {
		if errors.Is(err, e.target) {
			return e.errorResponse
		}
	}
	return errorResponse{http.StatusInternalServerError, app.MsgInternalServerError}
}
