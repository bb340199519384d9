// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"

	"github.com/rs/zerolog"
)

// validate checks settings every binary relies on.
func (cfg *StructuredConfig) validate() error {
	if cfg.App.LogLevel != "" {
		if _, err := zerolog.ParseLevel(cfg.App.LogLevel); err != nil {
			return fmt.Errorf("%w: log level %q", ErrInvalidAppConfigs, cfg.App.LogLevel)
		}
	}

	switch cfg.Forms.Submitter {
	case "", SubmitterSimulated, SubmitterRemote:
	default:
		return fmt.Errorf("%w: unknown submitter %q", ErrInvalidFormsConfigs, cfg.Forms.Submitter)
	}

	if cfg.Forms.SubmitDelay < 0 || cfg.Forms.NavigateDelay < 0 || cfg.Forms.SubmitTimeout < 0 {
		return fmt.Errorf("%w: negative duration", ErrInvalidFormsConfigs)
	}

	// a simulated submission that outlives its timeout can never succeed
	simulated := cfg.Forms.Submitter == "" || cfg.Forms.Submitter == SubmitterSimulated
	if simulated && cfg.Forms.SubmitTimeout > 0 && cfg.Forms.SubmitDelay >= cfg.Forms.SubmitTimeout {
		return fmt.Errorf("%w: submit delay %s must be below submit timeout %s",
			ErrInvalidFormsConfigs, cfg.Forms.SubmitDelay, cfg.Forms.SubmitTimeout)
	}

	return nil
}

func (cfg *ClientConfig) validate() error {
	if cfg.Storage.DB.DSN == "" {
		return ErrInvalidStorageConfigs
	}

	if cfg.Forms.Submitter == SubmitterRemote &&
		(cfg.Adapter.HTTPAddress == "" || cfg.Adapter.RequestTimeout <= 0) {
		return ErrInvalidAdapterConfigs
	}

	return nil
}

func (cfg *ServerConfig) validate() error {
	if cfg.Storage.DB.DSN == "" {
		return ErrInvalidStorageConfigs
	}

	if cfg.Server.HTTPAddress == "" || cfg.Server.RequestTimeout <= 0 {
		return ErrInvalidServerConfigs
	}

	return nil
}
