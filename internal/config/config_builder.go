package config

import (
	"errors"
	"fmt"
	"time"

	"dario.cat/mergo"
)

// Built-in defaults applied before any other source.
const (
	DefaultCacheTTL       = 5 * time.Minute
	DefaultTrashRetention = 14 * 24 * time.Hour
	DefaultRequestTimeout = 15 * time.Second
	DefaultBackupInterval = time.Hour
	DefaultImagesBucket   = "note_images"
	DefaultBackupsBucket  = "backups"
	DefaultLogFile        = "notes-client.log"
	DefaultLocalDSN       = "notes-client.db"
)

type configBuilder struct {
	configs []*StructuredConfig
	err     error
}

func newConfigBuilder() *configBuilder {
	return &configBuilder{
		configs: make([]*StructuredConfig, 0, 5),
	}
}

func (b *configBuilder) build() (*StructuredConfig, error) {
	if b.err != nil {
		return nil, fmt.Errorf("error occured during building config: %w", b.err)
	}

	config := new(StructuredConfig)
	for _, cfg := range b.configs {
		if err := mergo.Merge(config, cfg, mergo.WithOverride); err != nil {
			return nil, fmt.Errorf("error merging configs: %w", err)
		}
	}

	return config, config.validate()
}

func (b *configBuilder) withDefaults() *configBuilder {
	b.configs = append(b.configs, &StructuredConfig{
		App: App{
			CacheTTL:       DefaultCacheTTL,
			TrashRetention: DefaultTrashRetention,
			LogFile:        DefaultLogFile,
		},
		Remote: Remote{
			RequestTimeout: DefaultRequestTimeout,
			ImagesBucket:   DefaultImagesBucket,
			BackupsBucket:  DefaultBackupsBucket,
		},
		Storage: Storage{
			Local: Local{
				DSN: DefaultLocalDSN,
			},
		},
		Server: Server{
			RequestTimeout: DefaultRequestTimeout,
		},
		Workers: Workers{
			BackupInterval: DefaultBackupInterval,
		},
	})
	return b
}

func (b *configBuilder) withEnv() *configBuilder {
	envCfg := &StructuredConfig{}
	if err := parseEnv(envCfg); err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}

	b.configs = append(b.configs, envCfg)
	return b
}

func (b *configBuilder) withFlags() *configBuilder {
	flags, err := ParseFlags()
	if err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}

	b.configs = append(b.configs, flags)
	return b
}

// withConfigPath records an explicitly supplied JSON path (e.g. the client's
// --config flag) so that withJSON picks it up.
func (b *configBuilder) withConfigPath(path string) *configBuilder {
	if path != "" {
		b.configs = append(b.configs, &StructuredConfig{JSONFilePath: path})
	}
	return b
}

func (b *configBuilder) withJSON() *configBuilder {
	var jsonPath string
	for _, cfg := range b.configs {
		if cfg.JSONFilePath != "" {
			jsonPath = cfg.JSONFilePath
		}
	}

	if jsonPath == "" {
		return b
	}

	jsonCfg, err := parseJSON(jsonPath)
	if err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}
	b.configs = append(b.configs, jsonCfg)

	return b
}
