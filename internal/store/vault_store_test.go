// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-pass-vault/internal/config"
	"github.com/MKhiriev/go-pass-vault/internal/logger"
)

const (
	slotHash  = "master_hash"
	slotVault = "encrypted_vault"
)

type storeOpener func(t *testing.T, path string) VaultStore

func openers() map[string]storeOpener {
	return map[string]storeOpener{
		config.DriverMemory: func(t *testing.T, _ string) VaultStore {
			return NewMemoryVaultStore()
		},
		config.DriverFile: func(t *testing.T, path string) VaultStore {
			return NewFileVaultStore(path, logger.Nop())
		},
		config.DriverBolt: func(t *testing.T, path string) VaultStore {
			s, err := NewBoltVaultStore(path, logger.Nop())
			require.NoError(t, err)
			return s
		},
		config.DriverSQLite: func(t *testing.T, path string) VaultStore {
			s, err := NewVaultStore(context.Background(), config.Storage{Driver: config.DriverSQLite, Path: path}, logger.Nop())
			require.NoError(t, err)
			return s
		},
	}
}

// TestVaultStore_Behaviour runs the same contract against every backend.
func TestVaultStore_Behaviour(t *testing.T) {
	for driver, open := range openers() {
		t.Run(driver, func(t *testing.T) {
			ctx := context.Background()
			s := open(t, filepath.Join(t.TempDir(), "nested", "vault.db"))
			t.Cleanup(func() { _ = s.Close() })

			_, err := s.Get(ctx, slotHash)
			require.ErrorIs(t, err, ErrSlotNotFound)

			require.NoError(t, s.Set(ctx, map[string]string{slotHash: "hash-1", slotVault: "vault-1"}))

			got, err := s.Get(ctx, slotHash)
			require.NoError(t, err)
			assert.Equal(t, "hash-1", got)

			got, err = s.Get(ctx, slotVault)
			require.NoError(t, err)
			assert.Equal(t, "vault-1", got)

			// overwrite one slot, keep the other
			require.NoError(t, s.Set(ctx, map[string]string{slotVault: "vault-2"}))
			got, err = s.Get(ctx, slotVault)
			require.NoError(t, err)
			assert.Equal(t, "vault-2", got)
			got, err = s.Get(ctx, slotHash)
			require.NoError(t, err)
			assert.Equal(t, "hash-1", got)

			// missing slots are ignored
			require.NoError(t, s.Delete(ctx, slotHash, slotVault, "never-written"))
			_, err = s.Get(ctx, slotHash)
			assert.ErrorIs(t, err, ErrSlotNotFound)
			_, err = s.Get(ctx, slotVault)
			assert.ErrorIs(t, err, ErrSlotNotFound)

			require.NoError(t, s.Delete(ctx))
			require.NoError(t, s.Set(ctx, nil))

			assert.ErrorIs(t, s.Set(ctx, map[string]string{"": "x"}), ErrEmptySlotName)
			_, err = s.Get(ctx, "")
			assert.ErrorIs(t, err, ErrEmptySlotName)
		})
	}
}

func TestVaultStore_CanceledContext(t *testing.T) {
	for driver, open := range openers() {
		t.Run(driver, func(t *testing.T) {
			s := open(t, filepath.Join(t.TempDir(), "vault.db"))
			t.Cleanup(func() { _ = s.Close() })

			ctx, cancel := context.WithCancel(context.Background())
			cancel()

			_, err := s.Get(ctx, slotHash)
			assert.ErrorIs(t, err, context.Canceled)
			assert.ErrorIs(t, s.Set(ctx, map[string]string{slotHash: "x"}), context.Canceled)
			assert.ErrorIs(t, s.Delete(ctx, slotHash), context.Canceled)
		})
	}
}

func TestVaultStore_SurvivesReopen(t *testing.T) {
	for driver, open := range openers() {
		if driver == config.DriverMemory {
			continue
		}
		t.Run(driver, func(t *testing.T) {
			ctx := context.Background()
			path := filepath.Join(t.TempDir(), "vault.db")

			s := open(t, path)
			require.NoError(t, s.Set(ctx, map[string]string{slotHash: "persisted-hash", slotVault: "persisted-vault"}))
			require.NoError(t, s.Close())

			reopened := open(t, path)
			t.Cleanup(func() { _ = reopened.Close() })

			got, err := reopened.Get(ctx, slotVault)
			require.NoError(t, err)
			assert.Equal(t, "persisted-vault", got)
		})
	}
}

func TestMemoryVaultStore_ClosedStore(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryVaultStore()
	require.NoError(t, s.Set(ctx, map[string]string{slotHash: "x"}))
	require.NoError(t, s.Close())

	_, err := s.Get(ctx, slotHash)
	assert.ErrorIs(t, err, ErrStoreClosed)
	assert.ErrorIs(t, s.Set(ctx, map[string]string{slotHash: "y"}), ErrStoreClosed)
	assert.ErrorIs(t, s.Delete(ctx, slotHash), ErrStoreClosed)
}

func TestFileVaultStore_WritesOwnerOnlyWithoutTempLeftovers(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "vault.json")
	s := NewFileVaultStore(path, logger.Nop())

	require.NoError(t, s.Set(context.Background(), map[string]string{slotHash: "h", slotVault: "v"}))
	require.NoError(t, s.Delete(context.Background(), slotHash))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "vault.json", entries[0].Name())
}

func TestFileVaultStore_CorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "vault.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o600))

	s := NewFileVaultStore(path, logger.Nop())

	_, err := s.Get(context.Background(), slotHash)
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrSlotNotFound)

	// a failed read must not clobber the file
	assert.Error(t, s.Set(context.Background(), map[string]string{slotHash: "x"}))
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "{not json", string(data))
}

func TestNewVaultStore_UnknownDriver(t *testing.T) {
	_, err := NewVaultStore(context.Background(), config.Storage{Driver: "postgres"}, logger.Nop())
	assert.ErrorIs(t, err, ErrUnknownDriver)
}

func TestNewVaultStore_Drivers(t *testing.T) {
	for _, driver := range []string{config.DriverMemory, config.DriverFile, config.DriverBolt, config.DriverSQLite} {
		t.Run(driver, func(t *testing.T) {
			s, err := NewVaultStore(context.Background(), config.Storage{
				Driver: driver,
				Path:   filepath.Join(t.TempDir(), "vault"),
			}, logger.Nop())
			require.NoError(t, err)
			require.NotNil(t, s)
			assert.NoError(t, s.Close())
		})
	}
}
