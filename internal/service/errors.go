package service

import "errors"

// Server-side errors.
var (
	// ErrInvalidSubmission is returned when a submission is structurally
	// unusable: missing or malformed ID, mismatching form, empty payload or
	// undeclared fields.
	ErrInvalidSubmission = errors.New("invalid submission")

	// ErrUnknownRegion is returned for a region that is not in the table.
	ErrUnknownRegion = errors.New("unknown region")

	// ErrVersionIsNotSpecified is returned when the server is started
	// without a version string.
	ErrVersionIsNotSpecified = errors.New("app version is not specified")
)

// Client-side errors. Their messages are shown to the user as the reason of
// a rejected submission.
var (
	ErrAlreadySubmitted   = errors.New("this submission was already received")
	ErrServerUnavailable  = errors.New("the server is temporarily unavailable, please try again")
	ErrRejectedByServer   = errors.New("the server rejected the form")
	ErrFormNotOnServer    = errors.New("the server does not accept this form")
	ErrServerFailure      = errors.New("the server failed to process the form")
	ErrNoIntakeAdapter    = errors.New("remote submitter needs an intake adapter")
	ErrUnknownSubmitter   = errors.New("unknown submitter")
	ErrHistoryUnavailable = errors.New("submission history is unavailable")
)
