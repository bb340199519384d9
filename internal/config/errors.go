package config

import "errors"

// Validation errors returned when required configuration groups are
// incomplete or invalid.
var (
	// ErrInvalidAdapterConfigs indicates invalid client adapter settings
	// (for example, a remote submitter without a server URL).
	ErrInvalidAdapterConfigs = errors.New("invalid adapter configuration")
	// ErrInvalidStorageConfigs indicates invalid storage settings
	// (for example, an empty DSN).
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidAppConfigs indicates invalid application-level settings
	// (for example, an unknown log level).
	ErrInvalidAppConfigs = errors.New("invalid app configuration")
	// ErrInvalidFormsConfigs indicates invalid submission settings
	// (for example, an unknown submitter or a negative delay).
	ErrInvalidFormsConfigs = errors.New("invalid forms configuration")
	// ErrInvalidServerConfigs indicates invalid intake server settings.
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
)
