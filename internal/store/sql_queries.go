package store

import (
	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-form-keeper/models"
)

const submissionsTable = "submissions"

var submissionColumns = []string{"id", "form_id", "payload", "submitted_at", "accepted_at"}

func buildInsertSubmissionQuery(b sq.StatementBuilderType, rec models.Record, payload string) (string, []any, error) {
	return b.Insert(submissionsTable).
		Columns(submissionColumns...).
		Values(rec.ID, rec.FormID, payload, rec.SubmittedAt.UTC(), rec.AcceptedAt.UTC()).
		ToSql()
}

func buildSelectSubmissionQuery(b sq.StatementBuilderType, id string) (string, []any, error) {
	return b.Select(submissionColumns...).
		From(submissionsTable).
		Where(sq.Eq{"id": id}).
		ToSql()
}

func buildListSubmissionsQuery(b sq.StatementBuilderType, formID string, limit uint64) (string, []any, error) {
	q := b.Select(submissionColumns...).
		From(submissionsTable).
		Where(sq.Eq{"form_id": formID}).
		OrderBy("accepted_at DESC", "id")
	if limit > 0 {
		q = q.Limit(limit)
	}
	return q.ToSql()
}
