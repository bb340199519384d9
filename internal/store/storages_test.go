package store

import (
	"context"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-form-keeper/internal/config"
	"github.com/MKhiriev/go-form-keeper/internal/logger"
)

func TestNewStorages_SQLite(t *testing.T) {
	ctx := context.Background()
	dsn := filepath.Join(t.TempDir(), "data", "forms.db")

	s, err := NewStorages(ctx, config.DBConfig{DSN: "sqlite://" + dsn}, logger.Nop())
	if err != nil && strings.Contains(err.Error(), "CGO_ENABLED") {
		t.Skip("go-sqlite3 needs cgo")
	}
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })

	rec := testRecord()
	require.NoError(t, s.SubmissionRepository.Save(ctx, rec))

	err = s.SubmissionRepository.Save(ctx, rec)
	assert.ErrorIs(t, err, ErrSubmissionExists)

	got, err := s.SubmissionRepository.Get(ctx, rec.ID)
	require.NoError(t, err)
	assert.Equal(t, rec.FormID, got.FormID)
	assert.Equal(t, "Lamp", got.Payload["name"])
	assert.True(t, testAccepted.Equal(got.AcceptedAt))

	list, err := s.SubmissionRepository.List(ctx, "product", 0)
	require.NoError(t, err)
	assert.Len(t, list, 1)

	assert.Len(t, s.GeographyRepository.Regions(), 16)
}

func TestNewStorages_BadDSN(t *testing.T) {
	_, err := NewStorages(context.Background(), config.DBConfig{DSN: "mysql://localhost/x"}, logger.Nop())
	assert.ErrorIs(t, err, ErrUnsupportedDSN)
}

func TestStorages_CloseWithoutDB(t *testing.T) {
	assert.NoError(t, (&Storages{}).Close())
}
