package config

import "time"

// Defaults used when no source sets a field.
const (
	DefaultLogLevel          = "info"
	DefaultSubmitDelay       = 1500 * time.Millisecond
	DefaultNavigateDelay     = 2 * time.Second
	DefaultSubmitTimeout     = 10 * time.Second
	DefaultDSN               = "forms.db"
	DefaultHTTPAddress       = "localhost:8080"
	DefaultServerTimeout     = 30 * time.Second
	DefaultAdapterTimeout    = 10 * time.Second
	DefaultSubmitterStrategy = SubmitterSimulated
)

func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{LogLevel: DefaultLogLevel},
		Forms: Forms{
			Submitter:     DefaultSubmitterStrategy,
			SubmitDelay:   DefaultSubmitDelay,
			NavigateDelay: DefaultNavigateDelay,
			SubmitTimeout: DefaultSubmitTimeout,
		},
		Storage: Storage{DB: DBConfig{DSN: DefaultDSN}},
		Server: Server{
			HTTPAddress:    DefaultHTTPAddress,
			RequestTimeout: DefaultServerTimeout,
		},
		Adapter: Adapter{
			HTTPAddress:    DefaultHTTPAddress,
			RequestTimeout: DefaultAdapterTimeout,
		},
	}
}
