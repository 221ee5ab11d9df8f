// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import "github.com/MKhiriev/go-pass-vault/models"

//go:generate mockgen -source=interfaces.go -destination=../mock/crypto_mock.go -package=mock

// KeyDerivation turns a master password into cryptographic material. It knows
// nothing about storage, containers or credentials.
//
// Scheme:
//
//	stretched = PBKDF2-HMAC-SHA256(password, salt, 100 000, 32)
//	key       = HKDF-SHA256(stretched, info="…/encryption")     (DeriveKey)
//	bits      = HKDF-SHA256(stretched, info="…/verification")   (artifact)
//	artifact  = salt ‖ bits
type KeyDerivation interface {
	// DeriveKey deterministically derives a 256-bit encryption key from the
	// password and the explicit salt.
	DeriveKey(password string, salt []byte) ([]byte, error)

	// MakeVerificationArtifact generates a fresh salt and returns
	// salt ‖ verification bits. The artifact is never usable as a key.
	MakeVerificationArtifact(password string) ([]byte, error)

	// Verify re-derives the verification bits for password with the salt
	// embedded in artifact and compares them in constant time. A malformed
	// artifact yields false.
	Verify(password string, artifact []byte) bool
}

// VaultCodec seals and opens a whole [models.VaultCollection] into and out of
// the text-encoded container stored in the encrypted_vault slot.
type VaultCodec interface {
	// Seal encrypts the collection under a key derived from password with a
	// fresh salt and nonce and returns the base64 container text.
	Seal(collection *models.VaultCollection, password string) (string, error)

	// Open decodes the container text, derives the key, authenticates and
	// decrypts, and parses the collection. It never returns partial plaintext.
	Open(container string, password string) (*models.VaultCollection, error)
}
