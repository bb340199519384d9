// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"slices"

	"github.com/MKhiriev/go-form-keeper/internal/catalog"
	"github.com/MKhiriev/go-form-keeper/internal/form"
	"github.com/MKhiriev/go-form-keeper/internal/utils"
	"github.com/MKhiriev/go-form-keeper/models"
)

// intakeValidationService checks the shape of incoming submissions before
// delegating to the wrapped service. Field values are not re-validated:
// secret fields arrive hashed.
type intakeValidationService struct {
	inner   IntakeService
	catalog *catalog.Catalog
}

// NewIntakeValidationService returns an [IntakeServiceWrapper] that rejects
// malformed submissions with [ErrInvalidSubmission] and unknown forms with
// [catalog.ErrUnknownForm].
func NewIntakeValidationService(cat *catalog.Catalog) IntakeServiceWrapper {
	return &intakeValidationService{catalog: cat}
}

// Wrap implements [IntakeServiceWrapper].
func (v *intakeValidationService) Wrap(inner IntakeService) IntakeService {
	return &intakeValidationService{inner: inner, catalog: v.catalog}
}

func (v *intakeValidationService) Forms(ctx context.Context) []models.FormSummary {
	return v.inner.Forms(ctx)
}

func (v *intakeValidationService) Accept(ctx context.Context, formID string, sub models.Submission) (models.Receipt, error) {
	def, err := v.catalog.Definition(formID)
	if err != nil {
		return models.Receipt{}, err
	}

	if sub.FormID == "" {
		sub.FormID = formID
	}
	if err = checkSubmission(def, sub); err != nil {
		return models.Receipt{}, err
	}

	return v.inner.Accept(ctx, formID, sub)
}

func (v *intakeValidationService) History(ctx context.Context, formID string, limit uint64) ([]models.Record, error) {
	return v.inner.History(ctx, formID, limit)
}

func checkSubmission(def catalog.Definition, sub models.Submission) error {
	switch {
	case !utils.IsUUID(sub.ID):
		return fmt.Errorf("%w: id %q is not a UUID", ErrInvalidSubmission, sub.ID)
	case sub.FormID != def.ID:
		return fmt.Errorf("%w: submission of %q posted to %q", ErrInvalidSubmission, sub.FormID, def.ID)
	case len(sub.Payload) == 0:
		return fmt.Errorf("%w: empty payload", ErrInvalidSubmission)
	case sub.SubmittedAt.IsZero():
		return fmt.Errorf("%w: missing submitted_at", ErrInvalidSubmission)
	}

	accepted := make([]string, 0, len(def.Fields))
	for _, f := range def.Fields {
		if form.Coercion(f.Coerce) != form.CoerceOmit {
			accepted = append(accepted, f.Name)
		}
	}
	for key := range sub.Payload {
		if !slices.Contains(accepted, key) {
			return fmt.Errorf("%w: field %q is not part of %s", ErrInvalidSubmission, key, def.ID)
		}
	}
	return nil
}
