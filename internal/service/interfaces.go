// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package service holds the business layer of the intake server and the
// submitters used by the terminal client.
//
// Server side: [IntakeService] accepts and lists submissions,
// [GeographyService] serves regions and communes, [AppInfoService] reports
// the version. Client side: submitters implementing
// [submission.Submitter] (simulated, remote, recording) and
// [HistoryService] for the listing pages.
package service

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

import (
	"context"

	"github.com/MKhiriev/go-form-keeper/models"
)

// IntakeService accepts submissions for catalog forms and lists them.
type IntakeService interface {
	// Forms lists the forms the server accepts, in catalog order.
	Forms(ctx context.Context) []models.FormSummary

	// Accept stores sub as a submission of formID and returns its receipt.
	Accept(ctx context.Context, formID string, sub models.Submission) (models.Receipt, error)

	// History returns up to limit accepted submissions of formID, newest
	// first. A zero limit means no limit.
	History(ctx context.Context, formID string, limit uint64) ([]models.Record, error)
}

// GeographyService serves the region table.
type GeographyService interface {
	Regions(ctx context.Context) []string
	Communes(ctx context.Context, region string) ([]string, error)
}

// AppInfoService reports build information.
type AppInfoService interface {
	Version(ctx context.Context) string
}

// HistoryService lists the submissions shown on the client's destination
// pages.
type HistoryService interface {
	List(ctx context.Context, formID string, limit uint64) ([]models.Record, error)
}
