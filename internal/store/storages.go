// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-pass-vault/internal/config"
	"github.com/MKhiriev/go-pass-vault/internal/logger"
)

// NewVaultStore opens the backend selected by cfg.Driver:
//   - sqlite: connects to cfg.Path and runs pending migrations;
//   - file: a JSON document at cfg.Path;
//   - bolt: a bbolt database at cfg.Path;
//   - memory: a process-local map, cfg.Path is ignored.
func NewVaultStore(ctx context.Context, cfg config.Storage, logger *logger.Logger) (VaultStore, error) {
	logger.Debug().Str("driver", cfg.Driver).Msg("opening vault store...")

	switch cfg.Driver {
	case config.DriverSQLite:
		db, err := NewConnectSQLite(ctx, cfg.Path, logger)
		if err != nil {
			return nil, fmt.Errorf("sqlite connection error: %w", err)
		}
		if err := db.Migrate(); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("migration failed: %w", err)
		}
		return NewSQLiteVaultStore(db, logger), nil

	case config.DriverFile:
		return NewFileVaultStore(cfg.Path, logger), nil

	case config.DriverBolt:
		return NewBoltVaultStore(cfg.Path, logger)

	case config.DriverMemory:
		return NewMemoryVaultStore(), nil

	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownDriver, cfg.Driver)
	}
}
