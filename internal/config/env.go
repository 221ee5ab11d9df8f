// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// envPrefix namespaces every variable read by parseEnv.
const envPrefix = "VAULT_"

// parseEnv populates cfg from VAULT_-prefixed environment variables. Field
// names come from the `env` and `envPrefix` tags on [StructuredConfig], so
// STORAGE_PATH is read from VAULT_STORAGE_PATH.
func parseEnv(cfg any) error {
	err := env.ParseWithOptions(cfg, env.Options{Prefix: envPrefix})
	if err != nil {
		return fmt.Errorf("error getting env configs: %w", err)
	}

	return nil
}
