package service

import (
	"context"
	"errors"

	"github.com/MKhiriev/go-form-keeper/internal/logger"
	"github.com/MKhiriev/go-form-keeper/internal/store"
	"github.com/MKhiriev/go-form-keeper/internal/submission"
	"github.com/MKhiriev/go-form-keeper/models"
)

type recordingWrapper struct {
	repository store.SubmissionRepository
	logger     *logger.Logger
}

// NewRecordingWrapper returns a [SubmitterWrapper] that saves every accepted
// submission to repository. A failed save is logged and never turns an
// accepted submission into a rejected one.
func NewRecordingWrapper(repository store.SubmissionRepository, logger *logger.Logger) SubmitterWrapper {
	return &recordingWrapper{repository: repository, logger: logger}
}

// Wrap implements [SubmitterWrapper].
func (w *recordingWrapper) Wrap(next submission.Submitter) submission.Submitter {
	return &recordingSubmitter{next: next, repository: w.repository, logger: w.logger}
}

type recordingSubmitter struct {
	next       submission.Submitter
	repository store.SubmissionRepository
	logger     *logger.Logger
}

func (s *recordingSubmitter) Submit(ctx context.Context, sub models.Submission) (models.Receipt, error) {
	receipt, err := s.next.Submit(ctx, sub)
	if err != nil {
		return receipt, err
	}

	// the submission is accepted; a timeout racing with the save must not
	// lose the local copy
	saveCtx := context.WithoutCancel(ctx)
	rec := models.NewRecord(sub, receipt.AcceptedAt)
	if err = s.repository.Save(saveCtx, rec); err != nil && !errors.Is(err, store.ErrSubmissionExists) {
		s.logger.Err(err).Str("func", "*recordingSubmitter.Submit").Str("submission_id", sub.ID).Msg("error recording submission")
	}
	return receipt, nil
}
