package service

import (
	"context"
	"time"

	"github.com/benbjohnson/clock"

	"github.com/MKhiriev/go-form-keeper/internal/logger"
	"github.com/MKhiriev/go-form-keeper/internal/submission"
	"github.com/MKhiriev/go-form-keeper/models"
)

type simulatedSubmitter struct {
	clock clock.Clock
	delay time.Duration

	logger *logger.Logger
}

// NewSimulatedSubmitter returns a submitter that accepts every submission
// after delay, measured on c.
func NewSimulatedSubmitter(c clock.Clock, delay time.Duration, logger *logger.Logger) submission.Submitter {
	if c == nil {
		c = clock.New()
	}
	return &simulatedSubmitter{clock: c, delay: delay, logger: logger}
}

// Submit waits for the delay or for ctx, whichever comes first.
func (s *simulatedSubmitter) Submit(ctx context.Context, sub models.Submission) (models.Receipt, error) {
	timer := s.clock.Timer(s.delay)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return models.Receipt{}, ctx.Err()
	case <-timer.C:
	}

	s.logger.Debug().Str("form", sub.FormID).Str("submission_id", sub.ID).Msg("simulated submission accepted")
	return models.Receipt{
		SubmissionID: sub.ID,
		FormID:       sub.FormID,
		AcceptedAt:   s.clock.Now().UTC(),
	}, nil
}
