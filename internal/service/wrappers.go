package service

import "github.com/MKhiriev/go-form-keeper/internal/submission"

// IntakeServiceWrapper decorates an IntakeService with extra behavior such
// as request validation.
type IntakeServiceWrapper interface {
	Wrap(IntakeService) IntakeService
}

// SubmitterWrapper decorates a submitter, e.g. to persist accepted
// submissions.
type SubmitterWrapper interface {
	Wrap(submission.Submitter) submission.Submitter
}
