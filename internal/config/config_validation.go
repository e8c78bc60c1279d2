// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"net/url"
	"strings"
)

// validate checks invariants shared by every binary. Role-specific rules
// live on the [ClientConfig] and [ServerConfig] views.
func (cfg *StructuredConfig) validate() error {
	if cfg.Remote.URL != "" {
		if _, err := url.ParseRequestURI(cfg.Remote.URL); err != nil {
			return ErrInvalidRemoteConfigs
		}
	}

	return nil
}

func (cfg *ClientConfig) validate() error {
	if cfg.Remote.URL == "" || cfg.Remote.AnonKey == "" || cfg.Remote.RequestTimeout <= 0 {
		return ErrInvalidRemoteConfigs
	}

	if cfg.Remote.ImagesBucket == "" || cfg.Remote.BackupsBucket == "" {
		return ErrInvalidRemoteConfigs
	}

	if cfg.Storage.DSN == "" || strings.Contains(cfg.Storage.DSN, "memory") {
		return ErrInvalidStorageConfigs
	}

	if cfg.App.CacheTTL <= 0 {
		return ErrInvalidAppConfigs
	}

	if cfg.Workers.BackupInterval <= 0 {
		return ErrInvalidWorkerConfigs
	}

	return nil
}

func (cfg *ServerConfig) validate() error {
	if cfg.DB.DSN == "" {
		return ErrInvalidStorageConfigs
	}

	if cfg.Server.HTTPAddress == "" || cfg.Server.RequestTimeout <= 0 {
		return ErrInvalidServerConfigs
	}

	if cfg.App.TrashRetention <= 0 {
		return ErrInvalidAppConfigs
	}

	return nil
}
