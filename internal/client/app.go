package client

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/benbjohnson/clock"

	"github.com/MKhiriev/go-form-keeper/internal/adapter"
	"github.com/MKhiriev/go-form-keeper/internal/catalog"
	"github.com/MKhiriev/go-form-keeper/internal/config"
	"github.com/MKhiriev/go-form-keeper/internal/logger"
	"github.com/MKhiriev/go-form-keeper/internal/service"
	"github.com/MKhiriev/go-form-keeper/internal/store"
	"github.com/MKhiriev/go-form-keeper/internal/tui"
	"github.com/MKhiriev/go-form-keeper/internal/validators"
	"github.com/MKhiriev/go-form-keeper/models"
)

const versionTimeout = 3 * time.Second

type App struct {
	ui      UI
	closers []func() error
	logger  *logger.Logger
}

// NewApp builds every client dependency from cfg. The intake adapter is only
// created for the remote submitter.
func NewApp(ctx context.Context, cfg *config.ClientConfig, buildInfo models.AppBuildInfo, log *logger.Logger) (*App, error) {
	storages, err := store.NewStorages(ctx, cfg.Storage.DB, log)
	if err != nil {
		return nil, fmt.Errorf("create local storage: %w", err)
	}

	var intake adapter.IntakeAdapter
	if cfg.Forms.Submitter == config.SubmitterRemote {
		intake, err = adapter.NewHTTPIntakeAdapter(cfg.Adapter, log)
		if err != nil {
			_ = storages.Close()
			return nil, fmt.Errorf("create intake adapter: %w", err)
		}
	}

	c := clock.New()
	services, err := service.NewClientServices(ctx, cfg.Forms, storages, intake, c, log)
	if err != nil {
		_ = storages.Close()
		return nil, fmt.Errorf("create client services: %w", err)
	}

	forms, err := catalog.LoadDir(cfg.Forms.DefinitionsDir, validators.NewRegistry(c), services.Geography)
	if err != nil {
		_ = storages.Close()
		return nil, fmt.Errorf("load form definitions: %w", err)
	}

	ui := tui.New(services, forms, cfg.Forms, c, buildInfo, log)
	if intake != nil {
		ui.ServerVersion = serverVersion(ctx, intake, log)
	}

	return NewAppWith(ui, log, storages.Close), nil
}

// NewAppWith assembles an App from a ready UI. closers run after the UI
// returns.
func NewAppWith(ui UI, log *logger.Logger, closers ...func() error) *App {
	return &App{ui: ui, closers: closers, logger: log}
}

// Run blocks until the UI exits. Leaving with ctrl+c is a normal exit.
func (a *App) Run(ctx context.Context) error {
	defer a.close()

	err := a.ui.Run(ctx)
	switch {
	case err == nil, errors.Is(err, tui.ErrUserQuit):
		a.logger.Info().Msg("client stopped")
		return nil
	case errors.Is(err, context.Canceled):
		a.logger.Info().Msg("client interrupted")
		return nil
	default:
		return fmt.Errorf("run ui: %w", err)
	}
}

func (a *App) close() {
	for _, closeFn := range a.closers {
		if err := closeFn(); err != nil {
			a.logger.Err(err).Str("func", "*App.close").Msg("error releasing resource")
		}
	}
}

func serverVersion(ctx context.Context, intake adapter.IntakeAdapter, log *logger.Logger) string {
	ctx, cancel := context.WithTimeout(ctx, versionTimeout)
	defer cancel()

	version, err := intake.Version(ctx)
	if err != nil {
		log.Warn().Err(err).Msg("intake server version is unavailable")
		return ""
	}
	return version
}
