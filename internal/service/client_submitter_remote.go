package service

import (
	"context"

	"github.com/MKhiriev/go-form-keeper/internal/adapter"
	"github.com/MKhiriev/go-form-keeper/internal/logger"
	"github.com/MKhiriev/go-form-keeper/internal/submission"
	"github.com/MKhiriev/go-form-keeper/models"
)

type remoteSubmitter struct {
	intake adapter.IntakeAdapter

	logger *logger.Logger
}

// NewRemoteSubmitter returns a submitter that posts to the intake server.
// Transport errors are translated into user-facing errors by
// mapAdapterError.
func NewRemoteSubmitter(intake adapter.IntakeAdapter, logger *logger.Logger) submission.Submitter {
	return &remoteSubmitter{intake: intake, logger: logger}
}

func (s *remoteSubmitter) Submit(ctx context.Context, sub models.Submission) (models.Receipt, error) {
	receipt, err := s.intake.Submit(ctx, sub)
	if err != nil {
		s.logger.Err(err).Str("func", "*remoteSubmitter.Submit").Str("submission_id", sub.ID).Msg("remote submission failed")
		return models.Receipt{}, mapAdapterError(err)
	}
	return receipt, nil
}
