package service

import (
	"context"
	"fmt"

	"github.com/benbjohnson/clock"

	"github.com/MKhiriev/go-form-keeper/internal/catalog"
	"github.com/MKhiriev/go-form-keeper/internal/logger"
	"github.com/MKhiriev/go-form-keeper/internal/store"
	"github.com/MKhiriev/go-form-keeper/models"
)

type intakeService struct {
	catalog    *catalog.Catalog
	repository store.SubmissionRepository
	clock      clock.Clock

	logger *logger.Logger
}

// NewIntakeService constructs an [IntakeService] persisting to repository.
// The returned service does not check submissions; wrap it with
// [NewIntakeValidationService].
func NewIntakeService(cat *catalog.Catalog, repository store.SubmissionRepository, c clock.Clock, logger *logger.Logger) IntakeService {
	if c == nil {
		c = clock.New()
	}
	return &intakeService{
		catalog:    cat,
		repository: repository,
		clock:      c,
		logger:     logger,
	}
}

func (s *intakeService) Forms(ctx context.Context) []models.FormSummary {
	ids := s.catalog.IDs()
	forms := make([]models.FormSummary, 0, len(ids))
	for _, id := range ids {
		def, err := s.catalog.Definition(id)
		if err != nil {
			continue
		}
		forms = append(forms, models.FormSummary{ID: def.ID, Title: def.DisplayName(), Destination: def.Destination})
	}
	return forms
}

func (s *intakeService) Accept(ctx context.Context, formID string, sub models.Submission) (models.Receipt, error) {
	log := logger.FromContext(ctx)

	rec := models.NewRecord(sub, s.clock.Now().UTC())
	if err := s.repository.Save(ctx, rec); err != nil {
		log.Err(err).Str("func", "*intakeService.Accept").Str("submission_id", sub.ID).Msg("error saving submission")
		return models.Receipt{}, fmt.Errorf("accept %s submission: %w", formID, err)
	}

	log.Info().Str("form", formID).Str("submission_id", sub.ID).Msg("submission accepted")
	return rec.Receipt(), nil
}

func (s *intakeService) History(ctx context.Context, formID string, limit uint64) ([]models.Record, error) {
	if _, err := s.catalog.Definition(formID); err != nil {
		return nil, err
	}

	records, err := s.repository.List(ctx, formID, limit)
	if err != nil {
		return nil, fmt.Errorf("list %s submissions: %w", formID, err)
	}
	return records, nil
}
