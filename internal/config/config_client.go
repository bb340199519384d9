package config

import (
	"fmt"
)

// ClientConfig is the view of [StructuredConfig] used by the terminal client.
type ClientConfig struct {
	App     App
	Forms   Forms
	Storage Storage
	Adapter Adapter
}

// GetClientConfig builds and validates the client configuration.
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	return newClientConfig(cfg)
}

func newClientConfig(cfg *StructuredConfig) (*ClientConfig, error) {
	clientCfg := &ClientConfig{
		App:     cfg.App,
		Forms:   cfg.Forms,
		Storage: cfg.Storage,
		Adapter: cfg.Adapter,
	}

	return clientCfg, clientCfg.validate()
}
