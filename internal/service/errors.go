// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import "errors"

var (
	// ErrCannotUnlock is the single outcome of every unlock failure caused
	// by the password or the stored bytes.
	ErrCannotUnlock = errors.New("cannot unlock vault")

	ErrVaultNotFound      = errors.New("vault not found")
	ErrVaultAlreadyExists = errors.New("vault already exists")
	ErrEmptyPassword      = errors.New("master password is empty")

	ErrInvalidImport     = errors.New("invalid import data")
	ErrInvalidCollection = errors.New("invalid vault collection")

	ErrSessionLocked       = errors.New("session is locked")
	ErrCredentialNotFound  = errors.New("credential not found")
	ErrAmbiguousCredential = errors.New("more than one credential matches")
)
