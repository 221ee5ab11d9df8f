// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Credential is a single stored secret.
// It is held in plaintext only while the vault is unlocked and is persisted
// exclusively as part of an encrypted [VaultCollection].
//
// The JSON field order below is the canonical serialization order; do not
// reorder fields without bumping [CurrentVaultVersion].
type Credential struct {
	// ID is the opaque unique identifier assigned at creation.
	// It never changes for the lifetime of the credential.
	ID string `json:"id"`

	// Name is the human-readable display name (e.g. "GitHub").
	Name string `json:"name"`

	// Username is the login identifier used on the target resource.
	Username string `json:"username"`

	// Password is the secret itself.
	Password string `json:"password"`

	// URL is the optional resource the credential applies to.
	URL string `json:"url,omitempty"`

	// Notes holds optional free-form text.
	Notes string `json:"notes,omitempty"`

	// Category groups the credential into one of the fixed [Category] values.
	Category Category `json:"category"`

	// CreatedAt is when the credential was first added.
	CreatedAt time.Time `json:"created_at"`

	// UpdatedAt is when any mutable field last changed.
	UpdatedAt time.Time `json:"updated_at"`

	// Favorite marks the credential as pinned by the user.
	Favorite bool `json:"favorite"`
}

// Touch moves UpdatedAt to now. UpdatedAt never goes before CreatedAt.
func (c *Credential) Touch(now time.Time) {
	now = now.UTC()
	if now.Before(c.CreatedAt) {
		now = c.CreatedAt
	}
	c.UpdatedAt = now
}
