// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"fmt"
	"io"

	"github.com/awnumar/memguard"
	"golang.org/x/crypto/hkdf"
	"golang.org/x/crypto/pbkdf2"
)

// keyChain is the private implementation of [KeyDerivation].
type keyChain struct {
	// PBKDF2 parameters. Kept on the struct like the rest of the tuning
	// knobs, but fixed by [NewKeyChain]: they are part of the stored format.
	iterations int
	keyLen     int
	saltLen    int

	random io.Reader
}

// NewKeyChain constructs a [KeyDerivation] using PBKDF2-HMAC-SHA256 with
// [Iterations] rounds, [SaltSize]-byte salts and [KeySize]-byte output.
func NewKeyChain() KeyDerivation {
	return &keyChain{
		iterations: Iterations,
		keyLen:     KeySize,
		saltLen:    SaltSize,
		random:     rand.Reader,
	}
}

// DeriveKey implements [KeyDerivation]. The stretched password is expanded
// with the encryption label, so the result differs from the verification
// bits produced for the same password and salt.
func (k *keyChain) DeriveKey(password string, salt []byte) ([]byte, error) {
	return k.derive(password, salt, encryptionKeyInfo)
}

// MakeVerificationArtifact implements [KeyDerivation]. It reads a fresh salt
// from the CSPRNG and returns salt ‖ verification bits ([ArtifactSize] bytes).
func (k *keyChain) MakeVerificationArtifact(password string) ([]byte, error) {
	salt, err := k.newSalt()
	if err != nil {
		return nil, err
	}

	bits, err := k.derive(password, salt, verificationKeyInfo)
	if err != nil {
		return nil, err
	}
	defer memguard.WipeBytes(bits)

	artifact := make([]byte, 0, len(salt)+len(bits))
	artifact = append(artifact, salt...)
	artifact = append(artifact, bits...)
	return artifact, nil
}

// Verify implements [KeyDerivation]. The comparison uses
// [subtle.ConstantTimeCompare]; its running time does not depend on the
// position of the first differing byte.
func (k *keyChain) Verify(password string, artifact []byte) bool {
	if len(artifact) != k.saltLen+k.keyLen {
		return false
	}

	salt, stored := artifact[:k.saltLen], artifact[k.saltLen:]

	candidate, err := k.derive(password, salt, verificationKeyInfo)
	if err != nil {
		return false
	}
	defer memguard.WipeBytes(candidate)

	return subtle.ConstantTimeCompare(candidate, stored) == 1
}

// derive stretches password with PBKDF2 and expands the result with HKDF
// under the given info label. Intermediate buffers are wiped.
func (k *keyChain) derive(password string, salt []byte, info string) ([]byte, error) {
	pw := []byte(password)
	defer memguard.WipeBytes(pw)

	stretched := pbkdf2.Key(pw, salt, k.iterations, k.keyLen, sha256.New)
	defer memguard.WipeBytes(stretched)

	out := make([]byte, k.keyLen)
	if _, err := io.ReadFull(hkdf.New(sha256.New, stretched, nil, []byte(info)), out); err != nil {
		return nil, fmt.Errorf("expand key: %w", err)
	}

	return out, nil
}

func (k *keyChain) newSalt() ([]byte, error) {
	salt := make([]byte, k.saltLen)
	if _, err := io.ReadFull(k.random, salt); err != nil {
		return nil, fmt.Errorf("generate salt: %w", err)
	}
	return salt, nil
}
