package submission

import "errors"

var (
	ErrSubmissionInProgress = errors.New("submission already in progress")
	ErrFormInvalid          = errors.New("form has invalid fields")
	ErrNotSubmitting        = errors.New("no submission is awaiting completion")
	ErrSubmissionRejected   = errors.New("submission rejected")
	ErrSubmissionTimeout    = errors.New("submission timed out")
	ErrSubmissionCancelled  = errors.New("submission cancelled")
)
