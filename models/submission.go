package models

import "time"

// Payload is the assembled, coerced set of field values of a submitted form.
// Values are strings, float64, int64 or bool depending on the field coercion.
type Payload map[string]any

// Submission is a single form submission ready to be handed to a submitter.
type Submission struct {
	// ID is a client-generated UUID; the intake server treats it as an
	// idempotency key.
	ID string `json:"id"`

	// FormID names the catalog definition the payload was assembled from
	// (e.g. "product", "user").
	FormID string `json:"form_id"`

	Payload     Payload   `json:"payload"`
	SubmittedAt time.Time `json:"submitted_at"`
}

// Receipt is the acknowledgement returned by a submitter for an accepted
// submission.
type Receipt struct {
	SubmissionID string    `json:"submission_id"`
	FormID       string    `json:"form_id"`
	AcceptedAt   time.Time `json:"accepted_at"`
}

// ResultStatus is the outcome class of a submission attempt.
type ResultStatus int

const (
	ResultPending ResultStatus = iota
	ResultSucceeded
	ResultRejected
)

func (s ResultStatus) String() string {
	switch s {
	case ResultSucceeded:
		return "succeeded"
	case ResultRejected:
		return "rejected"
	default:
		return "pending"
	}
}

// SubmissionResult is either Succeeded (with the receipt) or Rejected (with a
// human-readable reason and the underlying error). The zero value is Pending.
type SubmissionResult struct {
	Status     ResultStatus
	Submission Submission
	Receipt    Receipt
	Reason     string
	Err        error
}

// Succeeded builds a successful result.
func Succeeded(submission Submission, receipt Receipt) SubmissionResult {
	return SubmissionResult{
		Status:     ResultSucceeded,
		Submission: submission,
		Receipt:    receipt,
	}
}

// Rejected builds a rejected result carrying reason and the causing error.
func Rejected(submission Submission, reason string, err error) SubmissionResult {
	return SubmissionResult{
		Status:     ResultRejected,
		Submission: submission,
		Reason:     reason,
		Err:        err,
	}
}

// Record is a submission as kept by a repository.
type Record struct {
	Submission
	AcceptedAt time.Time `json:"accepted_at"`
}

// NewRecord pairs a submission with the time it was accepted.
func NewRecord(sub Submission, acceptedAt time.Time) Record {
	return Record{Submission: sub, AcceptedAt: acceptedAt}
}

// Receipt returns the acknowledgement for the stored submission.
func (r Record) Receipt() Receipt {
	return Receipt{SubmissionID: r.ID, FormID: r.FormID, AcceptedAt: r.AcceptedAt}
}
