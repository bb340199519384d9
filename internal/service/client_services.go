// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/benbjohnson/clock"

	"github.com/MKhiriev/go-form-keeper/internal/adapter"
	"github.com/MKhiriev/go-form-keeper/internal/config"
	"github.com/MKhiriev/go-form-keeper/internal/form"
	"github.com/MKhiriev/go-form-keeper/internal/logger"
	"github.com/MKhiriev/go-form-keeper/internal/store"
	"github.com/MKhiriev/go-form-keeper/internal/submission"
)

// ClientServices bundles what the terminal client needs from the business
// layer.
type ClientServices struct {
	Submitter submission.Submitter
	History   HistoryService
	Geography form.OptionsLookup
}

// NewClientServices picks the submitter strategy from cfg.Submitter. The
// remote strategy requires intake; the simulated one ignores it. Either way
// accepted submissions are recorded in storages.
func NewClientServices(ctx context.Context, cfg config.Forms, storages *store.Storages, intake adapter.IntakeAdapter, c clock.Clock, logger *logger.Logger) (*ClientServices, error) {
	recording := NewRecordingWrapper(storages.SubmissionRepository, logger)

	switch cfg.Submitter {
	case config.SubmitterSimulated:
		return &ClientServices{
			Submitter: recording.Wrap(NewSimulatedSubmitter(c, cfg.SubmitDelay, logger)),
			History:   NewLocalHistory(storages.SubmissionRepository, logger),
			Geography: storages.GeographyRepository,
		}, nil

	case config.SubmitterRemote:
		if intake == nil {
			return nil, ErrNoIntakeAdapter
		}
		return &ClientServices{
			Submitter: recording.Wrap(NewRemoteSubmitter(intake, logger)),
			History:   NewRemoteHistory(intake, logger),
			Geography: FetchGeography(ctx, intake, storages.GeographyRepository, logger),
		}, nil
	}

	return nil, fmt.Errorf("%w: %q", ErrUnknownSubmitter, cfg.Submitter)
}
