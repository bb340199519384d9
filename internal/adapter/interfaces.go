// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the client's transport to the intake server.
//
// [IntakeAdapter] decouples the submitters and listing pages from HTTP. Error
// values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] (e.g. [ErrConflict] for
// 409, [ErrServiceUnavailable] for 503).
package adapter

import (
	"context"

	"github.com/MKhiriev/go-form-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/intake_adapter_mock.go -package=mock

// IntakeAdapter talks to the intake server.
type IntakeAdapter interface {
	// Submit posts sub to POST /api/forms/{form}/submissions and returns the
	// server's receipt. The submission ID is the idempotency key: a second
	// post of the same ID yields [ErrConflict].
	Submit(ctx context.Context, sub models.Submission) (models.Receipt, error)

	// List fetches up to limit accepted submissions of a form, newest first.
	List(ctx context.Context, formID string, limit uint64) ([]models.Record, error)

	// Regions fetches the region names in display order.
	Regions(ctx context.Context) ([]string, error)

	// Communes fetches the communes of region. An unknown region yields
	// [ErrNotFound].
	Communes(ctx context.Context, region string) ([]string, error)

	// Version fetches the server version string.
	Version(ctx context.Context) (string, error)
}
