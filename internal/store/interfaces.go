// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package store persists accepted form submissions and serves the static
// geography table used by region and commune selects.
//
// Submissions live in SQLite (the client's local store, or a small server)
// or PostgreSQL, chosen by the DSN. Schema changes are applied with goose
// migrations on startup.
package store

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

import (
	"context"

	"github.com/MKhiriev/go-form-keeper/models"
)

// SubmissionRepository stores accepted submissions.
type SubmissionRepository interface {

	// Save inserts rec. A record with the same ID yields ErrSubmissionExists.
	Save(ctx context.Context, rec models.Record) error

	// Get returns the record with the given ID or ErrSubmissionNotFound.
	Get(ctx context.Context, id string) (models.Record, error)

	// List returns up to limit records of a form, newest first. A zero limit
	// means no limit.
	List(ctx context.Context, formID string, limit uint64) ([]models.Record, error)
}

// GeographyRepository serves regions and their communes in display order.
type GeographyRepository interface {
	Regions() []string
	Communes(region string) []string
	All() []models.Region
}

// ErrorClassificator inspects driver errors.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
	IsDuplicate(err error) bool
}
