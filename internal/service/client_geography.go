package service

import (
	"context"

	"github.com/MKhiriev/go-form-keeper/internal/adapter"
	"github.com/MKhiriev/go-form-keeper/internal/logger"
	"github.com/MKhiriev/go-form-keeper/internal/store"
	"github.com/MKhiriev/go-form-keeper/models"
)

// FetchGeography downloads the region table from the intake server. Any
// failure falls back to fallback, so selects always have options.
func FetchGeography(ctx context.Context, intake adapter.IntakeAdapter, fallback store.GeographyRepository, logger *logger.Logger) store.GeographyRepository {
	regionNames, err := intake.Regions(ctx)
	if err != nil {
		logger.Warn().Err(err).Str("func", "service.FetchGeography").Msg("using embedded geography")
		return fallback
	}

	regions := make([]models.Region, 0, len(regionNames))
	for _, name := range regionNames {
		communes, err := intake.Communes(ctx, name)
		if err != nil {
			logger.Warn().Err(err).Str("func", "service.FetchGeography").Str("region", name).Msg("using embedded geography")
			return fallback
		}
		regions = append(regions, models.Region{Name: name, Communes: communes})
	}

	repo, err := store.NewGeographyFrom(regions)
	if err != nil || len(regions) == 0 {
		logger.Warn().Err(err).Str("func", "service.FetchGeography").Msg("server geography unusable, using embedded geography")
		return fallback
	}
	return repo
}
