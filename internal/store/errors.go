package store

import "errors"

// Sentinel errors returned by repository methods. Callers match them with
// [errors.Is].
var (
	// ErrSubmissionExists is returned when a submission with the same ID was
	// already stored.
	ErrSubmissionExists = errors.New("submission already exists")

	// ErrSubmissionNotFound is returned when no submission has the requested ID.
	ErrSubmissionNotFound = errors.New("submission was not found")

	// ErrTemporarilyUnavailable wraps driver errors classified as Retryable.
	ErrTemporarilyUnavailable = errors.New("database temporarily unavailable")

	// ErrUnknownRegion is returned by the geography loader for a commune list
	// without a region name.
	ErrUnknownRegion = errors.New("unknown region")
)

// Low-level database operation errors.
var (
	ErrBuildingSQLQuery = errors.New("error building sql query")
	ErrExecutingQuery   = errors.New("error executing sql query")
	ErrScanningRows     = errors.New("failed to scan submission rows")
	ErrEncodingPayload  = errors.New("failed to encode submission payload")
	ErrDecodingPayload  = errors.New("failed to decode submission payload")
	ErrUnsupportedDSN   = errors.New("unsupported database dsn")
)
