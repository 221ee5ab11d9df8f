// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"maps"
	"sync"
)

// memoryVaultStore keeps slots in process memory. Nothing survives Close.
type memoryVaultStore struct {
	mu     sync.RWMutex
	slots  map[string]string
	closed bool
}

// NewMemoryVaultStore returns an empty in-memory [VaultStore].
func NewMemoryVaultStore() VaultStore {
	return &memoryVaultStore{slots: make(map[string]string)}
}

func (m *memoryVaultStore) Get(ctx context.Context, slot string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if slot == "" {
		return "", ErrEmptySlotName
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.closed {
		return "", ErrStoreClosed
	}
	value, ok := m.slots[slot]
	if !ok {
		return "", ErrSlotNotFound
	}
	return value, nil
}

func (m *memoryVaultStore) Set(ctx context.Context, values map[string]string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	for slot := range values {
		if slot == "" {
			return ErrEmptySlotName
		}
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if m.closed {
		return ErrStoreClosed
	}
	next := maps.Clone(m.slots)
	maps.Copy(next, values)
	m.slots = next
	return nil
}

func (m *memoryVaultStore) Delete(ctx context.Context, slots ...string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if m.closed {
		return ErrStoreClosed
	}
	next := maps.Clone(m.slots)
	for _, slot := range slots {
		delete(next, slot)
	}
	m.slots = next
	return nil
}

func (m *memoryVaultStore) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.closed = true
	m.slots = nil
	return nil
}
