// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/awnumar/memguard"

	"github.com/MKhiriev/go-pass-vault/internal/crypto"
	"github.com/MKhiriev/go-pass-vault/internal/logger"
	"github.com/MKhiriev/go-pass-vault/internal/store"
	"github.com/MKhiriev/go-pass-vault/internal/validators"
	"github.com/MKhiriev/go-pass-vault/models"
)

type vaultService struct {
	store     store.VaultStore
	keyChain  crypto.KeyDerivation
	codec     crypto.VaultCodec
	validator validators.Validator

	// mu serializes every operation that writes slots, including the
	// recovery write performed by UnlockVault.
	mu sync.Mutex

	logger *logger.Logger
}

func NewVaultService(vaultStore store.VaultStore, keyChain crypto.KeyDerivation, codec crypto.VaultCodec, validator validators.Validator, logger *logger.Logger) VaultService {
	return &vaultService{
		store:     vaultStore,
		keyChain:  keyChain,
		codec:     codec,
		validator: validator,
		logger:    logger,
	}
}

func (v *vaultService) VaultExists(ctx context.Context) (bool, error) {
	_, err := v.store.Get(ctx, models.SlotMasterHash)
	if errors.Is(err, store.ErrSlotNotFound) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("read master hash: %w", err)
	}

	return true, nil
}

func (v *vaultService) CreateVault(ctx context.Context, password string) error {
	if password == "" {
		return ErrEmptyPassword
	}

	v.mu.Lock()
	defer v.mu.Unlock()

	exists, err := v.VaultExists(ctx)
	if err != nil {
		return err
	}
	if exists {
		return ErrVaultAlreadyExists
	}

	if err = ctx.Err(); err != nil {
		return err
	}

	artifact, err := v.keyChain.MakeVerificationArtifact(password)
	if err != nil {
		return fmt.Errorf("make verification artifact: %w", err)
	}
	defer memguard.WipeBytes(artifact)

	sealed, err := v.codec.Seal(models.NewVaultCollection(), password)
	if err != nil {
		return fmt.Errorf("seal empty vault: %w", err)
	}

	err = v.store.Set(ctx, map[string]string{
		models.SlotMasterHash:     crypto.EncodeArtifact(artifact),
		models.SlotEncryptedVault: sealed,
	})
	if err != nil {
		return fmt.Errorf("store new vault: %w", err)
	}

	v.logger.Info().Msg("vault created")
	return nil
}

func (v *vaultService) UnlockVault(ctx context.Context, password string) (*models.VaultCollection, error) {
	v.mu.Lock()
	defer v.mu.Unlock()

	collection, err := v.unlock(ctx, password)
	if err != nil {
		return nil, err
	}

	v.logger.Debug().Int("credentials", len(collection.Credentials)).Msg("vault unlocked")
	return collection, nil
}

func (v *vaultService) SaveVault(ctx context.Context, collection *models.VaultCollection, password string) error {
	if password == "" {
		return ErrEmptyPassword
	}
	if err := v.validator.Validate(ctx, collection); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidCollection, err)
	}

	v.mu.Lock()
	defer v.mu.Unlock()

	if err := v.verify(ctx, password); err != nil {
		return err
	}

	sealed, err := v.codec.Seal(collection, password)
	if err != nil {
		return fmt.Errorf("seal vault: %w", err)
	}

	if err = v.store.Set(ctx, map[string]string{models.SlotEncryptedVault: sealed}); err != nil {
		return fmt.Errorf("store vault: %w", err)
	}

	v.logger.Debug().Int("credentials", len(collection.Credentials)).Msg("vault saved")
	return nil
}

func (v *vaultService) ChangePassword(ctx context.Context, oldPassword, newPassword string) error {
	if newPassword == "" {
		return ErrEmptyPassword
	}

	v.mu.Lock()
	defer v.mu.Unlock()

	collection, err := v.unlock(ctx, oldPassword)
	if err != nil {
		return err
	}

	artifact, err := v.keyChain.MakeVerificationArtifact(newPassword)
	if err != nil {
		return fmt.Errorf("make verification artifact: %w", err)
	}
	defer memguard.WipeBytes(artifact)

	sealed, err := v.codec.Seal(collection, newPassword)
	if err != nil {
		return fmt.Errorf("seal vault: %w", err)
	}

	err = v.store.Set(ctx, map[string]string{
		models.SlotMasterHash:     crypto.EncodeArtifact(artifact),
		models.SlotEncryptedVault: sealed,
	})
	if err != nil {
		return fmt.Errorf("store re-keyed vault: %w", err)
	}

	v.logger.Info().Msg("master password changed")
	return nil
}

func (v *vaultService) DeleteVault(ctx context.Context) error {
	v.mu.Lock()
	defer v.mu.Unlock()

	if err := v.store.Delete(ctx, models.SlotMasterHash, models.SlotEncryptedVault); err != nil {
		return fmt.Errorf("delete vault slots: %w", err)
	}

	v.logger.Info().Msg("vault deleted")
	return nil
}

func (v *vaultService) ExportVault(ctx context.Context) (models.ExportRecord, error) {
	hash, err := v.readSlot(ctx, models.SlotMasterHash)
	if err != nil {
		return models.ExportRecord{}, err
	}

	encrypted, err := v.readSlot(ctx, models.SlotEncryptedVault)
	if err != nil {
		return models.ExportRecord{}, err
	}

	return models.ExportRecord{
		Encrypted: encrypted,
		Hash:      hash,
		Version:   models.CurrentVaultVersion,
	}, nil
}

func (v *vaultService) ImportVault(ctx context.Context, record models.ExportRecord) error {
	if err := v.validator.Validate(ctx, record); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidImport, err)
	}
	if _, err := crypto.DecodeContainer(record.Encrypted); err != nil {
		return fmt.Errorf("%w: encrypted: %w", ErrInvalidImport, err)
	}
	if _, err := crypto.DecodeArtifact(record.Hash); err != nil {
		return fmt.Errorf("%w: hash: %w", ErrInvalidImport, err)
	}

	v.mu.Lock()
	defer v.mu.Unlock()

	err := v.store.Set(ctx, map[string]string{
		models.SlotMasterHash:     record.Hash,
		models.SlotEncryptedVault: record.Encrypted,
	})
	if err != nil {
		return fmt.Errorf("store imported vault: %w", err)
	}

	v.logger.Info().Msg("vault imported")
	return nil
}

// unlock verifies password and opens the container. The caller must hold mu.
func (v *vaultService) unlock(ctx context.Context, password string) (*models.VaultCollection, error) {
	if err := v.verify(ctx, password); err != nil {
		return nil, err
	}

	sealed, err := v.store.Get(ctx, models.SlotEncryptedVault)
	if errors.Is(err, store.ErrSlotNotFound) {
		return v.recoverEmpty(ctx, password)
	}
	if err != nil {
		return nil, fmt.Errorf("read encrypted vault: %w", err)
	}

	collection, err := v.codec.Open(sealed, password)
	if err != nil {
		v.logger.Warn().Msg("unlock rejected")
		return nil, ErrCannotUnlock
	}

	if err = v.validator.Validate(ctx, collection); err != nil {
		v.logger.Warn().Msg("unlock rejected")
		return nil, ErrCannotUnlock
	}

	return collection, nil
}

// verify checks password against the stored artifact. The caller must hold mu.
func (v *vaultService) verify(ctx context.Context, password string) error {
	hash, err := v.readSlot(ctx, models.SlotMasterHash)
	if err != nil {
		return err
	}

	artifact, err := crypto.DecodeArtifact(hash)
	if err != nil {
		v.logger.Warn().Msg("unlock rejected")
		return ErrCannotUnlock
	}
	defer memguard.WipeBytes(artifact)

	if err = ctx.Err(); err != nil {
		return err
	}

	if !v.keyChain.Verify(password, artifact) {
		v.logger.Warn().Msg("unlock rejected")
		return ErrCannotUnlock
	}

	return nil
}

// recoverEmpty handles a verified master hash whose container is missing,
// the state left behind by an interrupted first write. An empty collection
// is sealed and stored in its place.
func (v *vaultService) recoverEmpty(ctx context.Context, password string) (*models.VaultCollection, error) {
	v.logger.Warn().Msg("encrypted vault missing, storing an empty collection")

	collection := models.NewVaultCollection()
	sealed, err := v.codec.Seal(collection, password)
	if err != nil {
		v.logger.Err(err).Msg("seal recovered vault")
		return nil, ErrCannotUnlock
	}

	if err = v.store.Set(ctx, map[string]string{models.SlotEncryptedVault: sealed}); err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, ctxErr
		}
		v.logger.Err(err).Msg("store recovered vault")
		return nil, ErrCannotUnlock
	}

	return collection, nil
}

func (v *vaultService) readSlot(ctx context.Context, slot string) (string, error) {
	value, err := v.store.Get(ctx, slot)
	if errors.Is(err, store.ErrSlotNotFound) {
		return "", ErrVaultNotFound
	}
	if err != nil {
		return "", fmt.Errorf("read %s: %w", slot, err)
	}

	return value, nil
}
