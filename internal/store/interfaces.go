// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// VaultStore is a small key/value store holding the two vault slots
// ([models.SlotMasterHash] and [models.SlotEncryptedVault]) as text.
//
// Multi-slot writes and deletes are atomic: after a failed call either every
// slot has its new state or none has.
type VaultStore interface {
	// Get returns the text stored under slot, or [ErrSlotNotFound].
	Get(ctx context.Context, slot string) (string, error)

	// Set stores every entry of values in one atomic write.
	Set(ctx context.Context, values map[string]string) error

	// Delete removes the given slots in one atomic write. Slots that do not
	// exist are ignored.
	Delete(ctx context.Context, slots ...string) error

	// Close releases the underlying resources.
	Close() error
}

// ErrorClassificator decides whether a failed database operation may be
// retried.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}
