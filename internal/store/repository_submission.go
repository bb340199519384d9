package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-form-keeper/internal/logger"
	"github.com/MKhiriev/go-form-keeper/models"
)

// submissionRepository is the SQL implementation of [SubmissionRepository].
// Payloads are stored as JSON text.
type submissionRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewSubmissionRepository constructs a [SubmissionRepository] over db.
func NewSubmissionRepository(db *DB, logger *logger.Logger) SubmissionRepository {
	logger.Debug().Str("dialect", string(db.dialect)).Msg("creating submission repository")
	return &submissionRepository{
		db:     db,
		logger: logger,
	}
}

// Save inserts rec.
//
// Error handling:
//   - unique/primary key violation → [ErrSubmissionExists].
//   - retryable driver error → wrapped [ErrTemporarilyUnavailable].
func (r *submissionRepository) Save(ctx context.Context, rec models.Record) error {
	log := logger.FromContext(ctx)

	payload, err := json.Marshal(rec.Payload)
	if err != nil {
		log.Err(err).Str("func", "*submissionRepository.Save").Msg("error encoding payload")
		return fmt.Errorf("%w: %w", ErrEncodingPayload, err)
	}

	query, args, err := buildInsertSubmissionQuery(r.db.builder(), rec, string(payload))
	if err != nil {
		log.Err(err).Str("func", "*submissionRepository.Save").Msg("error building query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = r.db.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).Str("func", "*submissionRepository.Save").Str("submission_id", rec.ID).Msg("error inserting submission")
		if r.db.isDuplicate(err) {
			return fmt.Errorf("%w: %s", ErrSubmissionExists, rec.ID)
		}
		return fmt.Errorf("%w: %w", ErrExecutingQuery, r.db.classify(err))
	}

	return nil
}

// Get returns a single record by ID.
func (r *submissionRepository) Get(ctx context.Context, id string) (models.Record, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectSubmissionQuery(r.db.builder(), id)
	if err != nil {
		return models.Record{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rec, err := scanRecord(r.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Record{}, fmt.Errorf("%w: %s", ErrSubmissionNotFound, id)
	}
	if err != nil {
		log.Err(err).Str("func", "*submissionRepository.Get").Str("submission_id", id).Msg("error reading submission")
		return models.Record{}, r.db.classify(err)
	}
	return rec, nil
}

// List returns the newest records of a form first.
func (r *submissionRepository) List(ctx context.Context, formID string, limit uint64) ([]models.Record, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListSubmissionsQuery(r.db.builder(), formID, limit)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*submissionRepository.List").Str("form", formID).Msg("error listing submissions")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, r.db.classify(err))
	}
	defer rows.Close()

	records := make([]models.Record, 0)
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			log.Err(err).Str("func", "*submissionRepository.List").Msg("error scanning submission")
			return nil, err
		}
		records = append(records, rec)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}
	return records, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanRecord(row rowScanner) (models.Record, error) {
	var (
		rec     models.Record
		payload string
	)
	if err := row.Scan(&rec.ID, &rec.FormID, &payload, &rec.SubmittedAt, &rec.AcceptedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Record{}, err
		}
		return models.Record{}, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}
	if err := json.Unmarshal([]byte(payload), &rec.Payload); err != nil {
		return models.Record{}, fmt.Errorf("%w: %w", ErrDecodingPayload, err)
	}
	return rec, nil
}
