package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-form-keeper/internal/logger"
	"github.com/MKhiriev/go-form-keeper/internal/store"
)

type geographyService struct {
	repository store.GeographyRepository

	logger *logger.Logger
}

// NewGeographyService constructs a [GeographyService] over repository.
func NewGeographyService(repository store.GeographyRepository, logger *logger.Logger) GeographyService {
	return &geographyService{repository: repository, logger: logger}
}

func (s *geographyService) Regions(ctx context.Context) []string {
	return s.repository.Regions()
}

// Communes returns [ErrUnknownRegion] for a region outside the table. A known
// region without communes yields an empty slice.
func (s *geographyService) Communes(ctx context.Context, region string) ([]string, error) {
	communes := s.repository.Communes(region)
	if communes == nil {
		return nil, fmt.Errorf("%w: %s", ErrUnknownRegion, region)
	}
	return communes, nil
}
