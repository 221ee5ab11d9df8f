// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container for the
// go-pass-vault application. It aggregates all sub-configurations and is
// populated by merging values from command-line flags, environment variables,
// an optional JSON file and built-in defaults.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env:       direct environment variable name for scalar fields.
type StructuredConfig struct {
	// Storage selects the backend holding the two vault slots.
	Storage Storage `envPrefix:"STORAGE_"`

	// Session holds settings of an unlocked vault session.
	Session Session `envPrefix:"SESSION_"`

	// Clipboard holds settings of the CLI copy command.
	Clipboard Clipboard `envPrefix:"CLIPBOARD_"`

	// Log holds logger settings.
	Log Log `envPrefix:"LOG_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the VAULT_CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// Storage configures the vault slot store.
type Storage struct {
	// Driver is one of "sqlite", "file", "bolt" or "memory".
	// Env: VAULT_STORAGE_DRIVER
	Driver string `env:"DRIVER"`

	// Path is the database or file location. Ignored by the memory driver.
	// A leading "~/" is expanded to the user's home directory.
	// Env: VAULT_STORAGE_PATH
	Path string `env:"PATH"`
}

// Session configures unlocked sessions.
type Session struct {
	// AutoLock is the idle time after which a session locks itself.
	// Env: VAULT_SESSION_AUTO_LOCK
	AutoLock time.Duration `env:"AUTO_LOCK"`
}

// Clipboard configures the copy command.
type Clipboard struct {
	// ClearAfter is how long a copied password stays on the clipboard.
	// Env: VAULT_CLIPBOARD_CLEAR_AFTER
	ClearAfter time.Duration `env:"CLEAR_AFTER"`
}

// Log configures the application logger.
type Log struct {
	// Level is a zerolog level name (e.g. "debug", "info", "warn").
	// Env: VAULT_LOG_LEVEL
	Level string `env:"LEVEL"`

	// File is the log destination. Empty means stderr.
	// Env: VAULT_LOG_FILE
	File string `env:"FILE"`
}

// Storage drivers accepted by [Storage.Driver].
const (
	DriverSQLite = "sqlite"
	DriverFile   = "file"
	DriverBolt   = "bolt"
	DriverMemory = "memory"
)

// GetStructuredConfig loads, merges, and validates the application
// configuration. Sources are consulted in the following priority order
// (the first non-zero value of a field wins):
//  1. Command-line flags parsed from args
//  2. Environment variables
//  3. JSON file (path resolved from sources 1 and 2)
//  4. Built-in defaults
//
// The positional arguments left after flag parsing are returned alongside
// the config so the caller can dispatch a subcommand.
func GetStructuredConfig(args []string) (*StructuredConfig, []string, error) {
	b := newConfigBuilder().
		withFlags(args).
		withEnv().
		withJSON()

	cfg, err := b.build()
	if err != nil {
		return nil, nil, err
	}

	return cfg, b.args, nil
}
