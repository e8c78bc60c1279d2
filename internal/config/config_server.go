package config

import "fmt"

// ServerConfig is the maintenance server configuration assembled from
// [StructuredConfig].
type ServerConfig struct {
	App    App
	DB     DB
	Server Server
}

// GetServerConfig loads the merged config via [GetStructuredConfig] and
// returns the validated server view.
func GetServerConfig() (*ServerConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	serverCfg := &ServerConfig{
		App:    cfg.App,
		DB:     cfg.Storage.DB,
		Server: cfg.Server,
	}

	return serverCfg, serverCfg.validate()
}
