// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"github.com/MKhiriev/go-pass-vault/internal/crypto"
	"github.com/MKhiriev/go-pass-vault/internal/logger"
	"github.com/MKhiriev/go-pass-vault/internal/store"
	"github.com/MKhiriev/go-pass-vault/internal/utils"
	"github.com/MKhiriev/go-pass-vault/internal/validators"
)

type Services struct {
	VaultService VaultService
	AutoLockJob  AutoLockJob
	IDGenerator  utils.IDGenerator
}

func NewServices(vaultStore store.VaultStore, logger *logger.Logger) *Services {
	keyChain := crypto.NewKeyChain()

	return &Services{
		VaultService: NewVaultService(vaultStore, keyChain, crypto.NewVaultCodec(keyChain), validators.NewVaultValidator(), logger),
		AutoLockJob:  NewAutoLockJob(logger),
		IDGenerator:  utils.NewUUIDGenerator(),
	}
}
