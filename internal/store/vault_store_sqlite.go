// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/MKhiriev/go-pass-vault/internal/logger"
)

type sqliteVaultStore struct {
	*DB
	logger *logger.Logger
	now    func() time.Time
}

// NewSQLiteVaultStore returns a [VaultStore] over the slots table of db.
// The schema must already be migrated.
func NewSQLiteVaultStore(db *DB, logger *logger.Logger) VaultStore {
	return &sqliteVaultStore{
		DB:     db,
		logger: logger,
		now:    func() time.Time { return time.Now().UTC() },
	}
}

func (s *sqliteVaultStore) Get(ctx context.Context, slot string) (string, error) {
	if slot == "" {
		return "", ErrEmptySlotName
	}

	query, args, err := buildSelectSlotQuery(slot)
	if err != nil {
		return "", err
	}

	var value string
	err = s.withRetry(ctx, func(ctx context.Context) error {
		return s.DB.QueryRowContext(ctx, query, args...).Scan(&value)
	})
	if errors.Is(err, sql.ErrNoRows) {
		return "", ErrSlotNotFound
	}
	if err != nil {
		s.logger.Err(err).
			Str("func", "sqliteVaultStore.Get").
			Str("slot", slot).
			Msg("failed to read slot")
		return "", fmt.Errorf("%w: %v", ErrScanningRow, err)
	}

	return value, nil
}

func (s *sqliteVaultStore) Set(ctx context.Context, values map[string]string) error {
	if len(values) == 0 {
		return nil
	}

	slots := make([]string, 0, len(values))
	for slot := range values {
		if slot == "" {
			return ErrEmptySlotName
		}
		slots = append(slots, slot)
	}
	sort.Strings(slots)

	now := s.now()
	return s.withRetry(ctx, func(ctx context.Context) error {
		return s.inTx(ctx, "sqliteVaultStore.Set", func(tx *sql.Tx) error {
			for _, slot := range slots {
				query, args, err := buildUpsertSlotQuery(slot, values[slot], now)
				if err != nil {
					return err
				}
				if _, err = tx.ExecContext(ctx, query, args...); err != nil {
					return fmt.Errorf("%w (slot=%s): %w", ErrExecutingStatement, slot, err)
				}
			}
			return nil
		})
	})
}

func (s *sqliteVaultStore) Delete(ctx context.Context, slots ...string) error {
	if len(slots) == 0 {
		return nil
	}

	query, args, err := buildDeleteSlotsQuery(slots...)
	if err != nil {
		return err
	}

	return s.withRetry(ctx, func(ctx context.Context) error {
		return s.inTx(ctx, "sqliteVaultStore.Delete", func(tx *sql.Tx) error {
			if _, err := tx.ExecContext(ctx, query, args...); err != nil {
				return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
			}
			return nil
		})
	})
}

func (s *sqliteVaultStore) Close() error {
	return s.DB.Close()
}

// inTx runs fn inside a transaction, rolling back on any error.
func (s *sqliteVaultStore) inTx(ctx context.Context, funcName string, fn func(tx *sql.Tx) error) error {
	tx, err := s.DB.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Err(err).Str("func", funcName).Msg("failed to begin transaction")
		return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}

	if err = fn(tx); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			s.logger.Err(rbErr).Str("func", funcName).Msg("failed to rollback transaction")
		}
		s.logger.Err(err).Str("func", funcName).Msg("transaction rolled back")
		return err
	}

	if err = tx.Commit(); err != nil {
		s.logger.Err(err).Str("func", funcName).Msg("failed to commit transaction")
		return fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	return nil
}
