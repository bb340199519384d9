package service

import (
	"github.com/benbjohnson/clock"

	"github.com/MKhiriev/go-form-keeper/internal/catalog"
	"github.com/MKhiriev/go-form-keeper/internal/config"
	"github.com/MKhiriev/go-form-keeper/internal/logger"
	"github.com/MKhiriev/go-form-keeper/internal/store"
)

// Services bundles the intake server's business services.
type Services struct {
	IntakeService    IntakeService
	GeographyService GeographyService
	AppInfoService   AppInfoService
}

// NewServices wires the server services over storages and the form catalog.
func NewServices(storages *store.Storages, cat *catalog.Catalog, cfg config.App, c clock.Clock, logger *logger.Logger) (*Services, error) {
	appInfo, err := NewAppInfoService(cfg, logger)
	if err != nil {
		return nil, err
	}

	intake := NewIntakeService(cat, storages.SubmissionRepository, c, logger)

	return &Services{
		IntakeService:    NewIntakeValidationService(cat).Wrap(intake),
		GeographyService: NewGeographyService(storages.GeographyRepository, logger),
		AppInfoService:   appInfo,
	}, nil
}
