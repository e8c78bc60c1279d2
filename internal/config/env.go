// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"os"

	"github.com/caarlos0/env/v11"
)

// envAliases lets the remote backend be configured with the variable names
// the Supabase CLI prints. The config's own name wins when both are set.
var envAliases = map[string]string{
	"SUPABASE_URL":      "REMOTE_URL",
	"SUPABASE_ANON_KEY": "REMOTE_ANON_KEY",
}

// parseEnv populates cfg from environment variables using the `env` and
// `envPrefix` tags defined on [StructuredConfig] and its nested types.
func parseEnv(cfg any) error {
	environ := env.ToMap(os.Environ())
	for alias, name := range envAliases {
		if v := environ[alias]; v != "" && environ[name] == "" {
			environ[name] = v
		}
	}

	if err := env.ParseWithOptions(cfg, env.Options{Environment: environ}); err != nil {
		return fmt.Errorf("error getting env configs: %w", err)
	}

	return nil
}
