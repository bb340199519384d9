package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-form-keeper/internal/config"
	"github.com/MKhiriev/go-form-keeper/internal/logger"
)

// Storages bundles the repositories used by the client and the server.
type Storages struct {
	SubmissionRepository SubmissionRepository
	GeographyRepository  GeographyRepository

	db *DB
}

// NewStorages connects to cfg.DSN, applies migrations and builds every
// repository.
func NewStorages(ctx context.Context, cfg config.DBConfig, log *logger.Logger) (*Storages, error) {
	db, err := Open(ctx, cfg, log)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	if err = db.Migrate(); err != nil {
		_ = db.Close()
		log.Err(err).Str("func", "store.NewStorages").Msg("migration failed")
		return nil, err
	}

	geography, err := NewGeographyRepository()
	if err != nil {
		_ = db.Close()
		return nil, err
	}

	return &Storages{
		SubmissionRepository: NewSubmissionRepository(db, log),
		GeographyRepository:  geography,
		db:                   db,
	}, nil
}

// Close releases the database connection.
func (s *Storages) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}
