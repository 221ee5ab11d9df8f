// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"

	"github.com/rs/zerolog"
)

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
func (cfg *StructuredConfig) validate() error {
	switch cfg.Storage.Driver {
	case DriverSQLite, DriverFile, DriverBolt:
		if cfg.Storage.Path == "" {
			return fmt.Errorf("%w: empty path for driver %q", ErrInvalidStorageConfigs, cfg.Storage.Driver)
		}
	case DriverMemory:
	default:
		return fmt.Errorf("%w: unknown driver %q", ErrInvalidStorageConfigs, cfg.Storage.Driver)
	}

	if cfg.Session.AutoLock <= 0 {
		return ErrInvalidSessionConfigs
	}

	if cfg.Clipboard.ClearAfter <= 0 {
		return ErrInvalidClipboardConfigs
	}

	if _, err := zerolog.ParseLevel(cfg.Log.Level); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidLogConfigs, err)
	}

	return nil
}
