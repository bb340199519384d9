package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-form-keeper/internal/adapter"
	"github.com/MKhiriev/go-form-keeper/internal/logger"
	"github.com/MKhiriev/go-form-keeper/internal/store"
	"github.com/MKhiriev/go-form-keeper/models"
)

type localHistory struct {
	repository store.SubmissionRepository
	logger     *logger.Logger
}

// NewLocalHistory lists the submissions recorded in the client's own store.
func NewLocalHistory(repository store.SubmissionRepository, logger *logger.Logger) HistoryService {
	return &localHistory{repository: repository, logger: logger}
}

func (h *localHistory) List(ctx context.Context, formID string, limit uint64) ([]models.Record, error) {
	records, err := h.repository.List(ctx, formID, limit)
	if err != nil {
		h.logger.Err(err).Str("func", "*localHistory.List").Str("form", formID).Msg("error listing local submissions")
		return nil, fmt.Errorf("%w: %w", ErrHistoryUnavailable, err)
	}
	return records, nil
}

type remoteHistory struct {
	intake adapter.IntakeAdapter
	logger *logger.Logger
}

// NewRemoteHistory lists the submissions accepted by the intake server.
func NewRemoteHistory(intake adapter.IntakeAdapter, logger *logger.Logger) HistoryService {
	return &remoteHistory{intake: intake, logger: logger}
}

func (h *remoteHistory) List(ctx context.Context, formID string, limit uint64) ([]models.Record, error) {
	records, err := h.intake.List(ctx, formID, limit)
	if err != nil {
		h.logger.Err(err).Str("func", "*remoteHistory.List").Str("form", formID).Msg("error listing remote submissions")
		return nil, fmt.Errorf("%w: %w", ErrHistoryUnavailable, mapAdapterError(err))
	}
	return records, nil
}
