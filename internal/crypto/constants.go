// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

const (
	// SaltSize is the length of every random salt in bytes (128 bits).
	SaltSize = 16

	// NonceSize is the AES-GCM nonce length in bytes (96 bits).
	NonceSize = 12

	// TagSize is the AES-GCM authentication tag length in bytes.
	TagSize = 16

	// KeySize is the length of derived keys and verification bits (256 bits).
	KeySize = 32

	// Iterations is the PBKDF2-HMAC-SHA256 iteration count. It is part of the
	// on-disk format: changing it makes existing vaults unreadable.
	Iterations = 100_000

	// ArtifactSize is the raw length of a verification artifact: salt ‖ bits.
	ArtifactSize = SaltSize + KeySize

	// containerHeaderSize is the fixed salt ‖ nonce prefix of a container.
	containerHeaderSize = SaltSize + NonceSize

	// minContainerSize is the smallest well-formed container: header plus the
	// tag of an empty plaintext.
	minContainerSize = containerHeaderSize + TagSize
)

// HKDF info labels. They separate the two uses of the stretched password so
// that verification bits and the encryption key never coincide.
const (
	encryptionKeyInfo   = "go-pass-vault/v1/encryption"
	verificationKeyInfo = "go-pass-vault/v1/verification"
)
