// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidStorageConfigs indicates an unknown driver or a missing path.
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidSessionConfigs indicates a non-positive auto-lock timeout.
	ErrInvalidSessionConfigs = errors.New("invalid session configuration")
	// ErrInvalidClipboardConfigs indicates a non-positive clear delay.
	ErrInvalidClipboardConfigs = errors.New("invalid clipboard configuration")
	// ErrInvalidLogConfigs indicates an unparsable log level.
	ErrInvalidLogConfigs = errors.New("invalid log configuration")
)
