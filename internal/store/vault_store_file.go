// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"maps"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/MKhiriev/go-pass-vault/internal/logger"
)

// fileVaultStore keeps all slots in one JSON document. Every write replaces
// the document through a temp file, fsync and rename, so a crash leaves
// either the old or the new document on disk.
type fileVaultStore struct {
	path   string
	logger *logger.Logger

	mu     sync.Mutex
	closed bool
}

type filePersistedState struct {
	Slots     map[string]string `json:"slots"`
	UpdatedAt time.Time         `json:"updated_at"`
}

// NewFileVaultStore returns a [VaultStore] persisted at path. The file is
// created on the first write.
func NewFileVaultStore(path string, logger *logger.Logger) VaultStore {
	return &fileVaultStore{
		path:   path,
		logger: logger,
	}
}

func (f *fileVaultStore) Get(ctx context.Context, slot string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if slot == "" {
		return "", ErrEmptySlotName
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	if f.closed {
		return "", ErrStoreClosed
	}

	state, err := f.load()
	if err != nil {
		return "", err
	}
	value, ok := state.Slots[slot]
	if !ok {
		return "", ErrSlotNotFound
	}
	return value, nil
}

func (f *fileVaultStore) Set(ctx context.Context, values map[string]string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	for slot := range values {
		if slot == "" {
			return ErrEmptySlotName
		}
	}

	return f.update(func(slots map[string]string) {
		maps.Copy(slots, values)
	})
}

func (f *fileVaultStore) Delete(ctx context.Context, slots ...string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	return f.update(func(current map[string]string) {
		for _, slot := range slots {
			delete(current, slot)
		}
	})
}

func (f *fileVaultStore) Close() error {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.closed = true
	return nil
}

func (f *fileVaultStore) update(mutate func(slots map[string]string)) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.closed {
		return ErrStoreClosed
	}

	state, err := f.load()
	if err != nil {
		return err
	}
	mutate(state.Slots)
	state.UpdatedAt = time.Now().UTC()

	payload, err := json.MarshalIndent(state, "", "  ")
	if err != nil {
		return fmt.Errorf("encode vault file: %w", err)
	}

	if err = atomicWriteFile(f.path, payload, 0o600); err != nil {
		f.logger.Err(err).Str("func", "fileVaultStore.update").Msg("failed to write vault file")
		return err
	}
	return nil
}

func (f *fileVaultStore) load() (filePersistedState, error) {
	state := filePersistedState{Slots: make(map[string]string)}

	data, err := os.ReadFile(f.path)
	if errors.Is(err, os.ErrNotExist) {
		return state, nil
	}
	if err != nil {
		return state, fmt.Errorf("read vault file: %w", err)
	}

	if err = json.Unmarshal(data, &state); err != nil {
		return state, fmt.Errorf("decode vault file: %w", err)
	}
	if state.Slots == nil {
		state.Slots = make(map[string]string)
	}
	return state, nil
}

// atomicWriteFile writes data to a temp file in the target directory, syncs
// it and renames it over path.
func atomicWriteFile(path string, data []byte, perm os.FileMode) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return fmt.Errorf("create vault dir: %w", err)
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpName := tmp.Name()
	defer func() {
		if err != nil {
			_ = os.Remove(tmpName)
		}
	}()

	if _, err = tmp.Write(data); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("write temp file: %w", err)
	}
	if err = tmp.Sync(); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("sync temp file: %w", err)
	}
	if err = tmp.Close(); err != nil {
		return fmt.Errorf("close temp file: %w", err)
	}
	if err = os.Chmod(tmpName, perm); err != nil {
		return fmt.Errorf("chmod temp file: %w", err)
	}
	if err = os.Rename(tmpName, path); err != nil {
		return fmt.Errorf("rename temp file: %w", err)
	}

	return nil
}
