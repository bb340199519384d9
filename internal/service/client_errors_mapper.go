// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-form-keeper/internal/adapter"
	"github.com/MKhiriev/go-form-keeper/internal/app"
)

// mapAdapterError translates the adapter's transport error into an error
// whose message can be shown to the user.
func mapAdapterError(err error) error {
	if err == nil {
		return nil
	}

	msg := extractBody(err)

	switch {
	case errors.Is(err, adapter.ErrConflict):
		return ErrAlreadySubmitted

	case errors.Is(err, adapter.ErrNotFound):
		if msg == app.MsgUnknownForm {
			return ErrFormNotOnServer
		}

	case errors.Is(err, adapter.ErrBadRequest):
		if msg == app.MsgInvalidSubmission || msg == app.MsgInvalidDataProvided {
			return ErrRejectedByServer
		}
		return fmt.Errorf("%w: %s", ErrRejectedByServer, msg)

	case errors.Is(err, adapter.ErrServiceUnavailable), errors.Is(err, adapter.ErrBadGateway):
		return ErrServerUnavailable

	case errors.Is(err, adapter.ErrInternalServerError):
		return ErrServerFailure
	}

	return err
}

// extractBody extracts the body from a message of the form "conflict: <body>".
func extractBody(err error) string {
	msg := err.Error()
	if idx := strings.Index(msg, ": "); idx != -1 {
		return msg[idx+2:]
	}
	return msg
}
