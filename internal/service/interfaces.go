// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/go-pass-vault/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// VaultService is the only entry point front-ends use to reach the vault.
// It owns the two storage slots and never hands out keys or artifacts.
//
// Every unlock failure caused by the password or the stored bytes (wrong
// password, corrupt container, failed authentication, unsupported version)
// is reported as the single [ErrCannotUnlock].
type VaultService interface {
	// VaultExists reports whether a vault has been created. A vault exists
	// when the master_hash slot is present.
	VaultExists(ctx context.Context) (bool, error)

	// CreateVault stores a verification artifact for password together with
	// an empty sealed collection. Fails with [ErrVaultAlreadyExists] if a
	// vault exists.
	CreateVault(ctx context.Context, password string) error

	// UnlockVault verifies password and opens the stored collection.
	// Returns nil and [ErrCannotUnlock] on any verification or decryption
	// failure, and [ErrVaultNotFound] when no vault exists.
	UnlockVault(ctx context.Context, password string) (*models.VaultCollection, error)

	// SaveVault re-seals collection under password and replaces the stored
	// container. The password must match the stored artifact.
	SaveVault(ctx context.Context, collection *models.VaultCollection, password string) error

	// ChangePassword re-seals the collection under newPassword and replaces
	// both slots in one atomic write.
	ChangePassword(ctx context.Context, oldPassword, newPassword string) error

	// DeleteVault clears both storage slots.
	DeleteVault(ctx context.Context) error

	// ExportVault copies both slots verbatim into an [models.ExportRecord].
	ExportVault(ctx context.Context) (models.ExportRecord, error)

	// ImportVault checks record and installs both slots atomically,
	// replacing any existing vault.
	ImportVault(ctx context.Context, record models.ExportRecord) error
}
