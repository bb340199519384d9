package config

import "fmt"

// ServerConfig is the view of [StructuredConfig] used by the intake server.
// Forms is kept for DefinitionsDir.
type ServerConfig struct {
	App     App
	Forms   Forms
	Storage Storage
	Server  Server
}

// GetServerConfig builds and validates the intake server configuration.
func GetServerConfig() (*ServerConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	return newServerConfig(cfg)
}

func newServerConfig(cfg *StructuredConfig) (*ServerConfig, error) {
	serverCfg := &ServerConfig{
		App:     cfg.App,
		Forms:   cfg.Forms,
		Storage: cfg.Storage,
		Server:  cfg.Server,
	}

	return serverCfg, serverCfg.validate()
}
