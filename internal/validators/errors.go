// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrInvalidVersion     = errors.New("invalid vault version")
	ErrNilCollection      = errors.New("vault collection is nil")
	ErrEmptyCredentialID  = errors.New("credential id is required")
	ErrDuplicateID        = errors.New("duplicate credential id")
	ErrEmptyName          = errors.New("credential name is required")
	ErrInvalidCategory    = errors.New("invalid credential category")
	ErrInvalidTimestamps  = errors.New("credential updated before it was created")
	ErrInvalidUTF8        = errors.New("credential text is not valid UTF-8")
	ErrEmptyEncryptedSlot = errors.New("encrypted vault is required")
	ErrEmptyHashSlot      = errors.New("master hash is required")
)
