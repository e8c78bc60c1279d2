package config

import (
	"fmt"
)

// ClientConfig is the terminal client configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	// App contains version, cache TTL and log file settings.
	App App
	// Remote contains the backend location, key and bucket names.
	Remote Remote
	// Storage contains the local SQLite settings.
	Storage Local
	// Workers contains background job settings.
	Workers Workers
}

// GetClientConfig builds and validates the client config view.
//
// The client does not parse the maintenance server flags: its command line
// belongs to cobra. jsonPath, when non-empty, takes precedence over the
// CONFIG environment variable.
func GetClientConfig(jsonPath string) (*ClientConfig, error) {
	cfg, err := newConfigBuilder().
		withDefaults().
		withEnv().
		withConfigPath(jsonPath).
		withJSON().
		build()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := &ClientConfig{
		App:     cfg.App,
		Remote:  cfg.Remote,
		Storage: cfg.Storage.Local,
		Workers: cfg.Workers,
	}

	return clientCfg, clientCfg.validate()
}
