// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"go.etcd.io/bbolt"

	"github.com/MKhiriev/go-pass-vault/internal/logger"
)

var slotsBucket = []byte("slots")

const boltOpenTimeout = time.Second

type boltVaultStore struct {
	db     *bbolt.DB
	logger *logger.Logger
}

// NewBoltVaultStore opens (or creates) a bbolt database at path and makes
// sure the slots bucket exists.
func NewBoltVaultStore(path string, logger *logger.Logger) (VaultStore, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return nil, fmt.Errorf("create bolt dir: %w", err)
	}

	db, err := bbolt.Open(path, 0o600, &bbolt.Options{Timeout: boltOpenTimeout})
	if err != nil {
		logger.Err(err).Str("func", "NewBoltVaultStore").Msg("error opening bolt database")
		return nil, fmt.Errorf("open bolt database: %w", err)
	}

	err = db.Update(func(tx *bbolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(slotsBucket)
		return err
	})
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("create slots bucket: %w", err)
	}

	return &boltVaultStore{db: db, logger: logger}, nil
}

func (b *boltVaultStore) Get(ctx context.Context, slot string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if slot == "" {
		return "", ErrEmptySlotName
	}

	var value string
	err := b.db.View(func(tx *bbolt.Tx) error {
		raw := tx.Bucket(slotsBucket).Get([]byte(slot))
		if raw == nil {
			return ErrSlotNotFound
		}
		// raw is only valid inside the transaction
		value = string(raw)
		return nil
	})
	if err != nil {
		return "", err
	}
	return value, nil
}

func (b *boltVaultStore) Set(ctx context.Context, values map[string]string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	for slot := range values {
		if slot == "" {
			return ErrEmptySlotName
		}
	}

	err := b.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(slotsBucket)
		for slot, value := range values {
			if err := bucket.Put([]byte(slot), []byte(value)); err != nil {
				return fmt.Errorf("put slot %s: %w", slot, err)
			}
		}
		return nil
	})
	if err != nil {
		b.logger.Err(err).Str("func", "boltVaultStore.Set").Msg("failed to write slots")
	}
	return err
}

func (b *boltVaultStore) Delete(ctx context.Context, slots ...string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	err := b.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(slotsBucket)
		for _, slot := range slots {
			if slot == "" {
				continue
			}
			if err := bucket.Delete([]byte(slot)); err != nil {
				return fmt.Errorf("delete slot %s: %w", slot, err)
			}
		}
		return nil
	})
	if err != nil {
		b.logger.Err(err).Str("func", "boltVaultStore.Delete").Msg("failed to delete slots")
	}
	return err
}

func (b *boltVaultStore) Close() error {
	return b.db.Close()
}
