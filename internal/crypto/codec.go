// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"bytes"
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"unicode/utf8"

	"github.com/awnumar/memguard"

	"github.com/MKhiriev/go-pass-vault/models"
)

// vaultCodec is the private implementation of [VaultCodec].
type vaultCodec struct {
	keyChain KeyDerivation
	random   io.Reader
}

// NewVaultCodec constructs a [VaultCodec] that derives its keys through
// keyChain and encrypts with AES-256-GCM.
func NewVaultCodec(keyChain KeyDerivation) VaultCodec {
	return &vaultCodec{
		keyChain: keyChain,
		random:   rand.Reader,
	}
}

// Seal implements [VaultCodec].
//
//  1. Serialize the collection to canonical JSON.
//  2. Generate a fresh salt and nonce.
//  3. Derive the key for (password, salt).
//  4. AES-256-GCM seal; the tag is appended to the ciphertext.
//  5. Return base64(salt ‖ nonce ‖ ciphertext).
//
// A new salt and nonce are drawn on every call, so the same (key, nonce)
// pair is never used twice.
func (c *vaultCodec) Seal(collection *models.VaultCollection, password string) (string, error) {
	if collection == nil {
		return "", ErrNilCollection
	}
	if collection.Version != models.CurrentVaultVersion {
		return "", fmt.Errorf("%w: %d", ErrVersionMismatch, collection.Version)
	}

	plaintext, err := marshalCollection(collection)
	if err != nil {
		return "", err
	}
	defer memguard.WipeBytes(plaintext)

	return c.sealPlaintext(plaintext, password)
}

// Open implements [VaultCodec]. Failures are reported as one of
// [ErrCorruptContainer], [ErrAuthenticationFailed] or [ErrVersionMismatch].
func (c *vaultCodec) Open(text string, password string) (*models.VaultCollection, error) {
	plaintext, err := c.openPlaintext(text, password)
	if err != nil {
		return nil, err
	}
	defer memguard.WipeBytes(plaintext)

	return unmarshalCollection(plaintext)
}

func (c *vaultCodec) sealPlaintext(plaintext []byte, password string) (string, error) {
	salt := make([]byte, SaltSize)
	if _, err := io.ReadFull(c.random, salt); err != nil {
		return "", fmt.Errorf("generate salt: %w", err)
	}
	nonce := make([]byte, NonceSize)
	if _, err := io.ReadFull(c.random, nonce); err != nil {
		return "", fmt.Errorf("generate nonce: %w", err)
	}

	key, err := c.keyChain.DeriveKey(password, salt)
	if err != nil {
		return "", fmt.Errorf("derive key: %w", err)
	}
	defer memguard.WipeBytes(key)

	gcm, err := newGCM(key)
	if err != nil {
		return "", err
	}

	container := Container{
		Salt:       salt,
		Nonce:      nonce,
		Ciphertext: gcm.Seal(nil, nonce, plaintext, nil),
	}
	return container.Encode(), nil
}

func (c *vaultCodec) openPlaintext(text string, password string) ([]byte, error) {
	container, err := DecodeContainer(text)
	if err != nil {
		return nil, err
	}

	key, err := c.keyChain.DeriveKey(password, container.Salt)
	if err != nil {
		return nil, fmt.Errorf("derive key: %w", err)
	}
	defer memguard.WipeBytes(key)

	gcm, err := newGCM(key)
	if err != nil {
		return nil, err
	}

	// gcm.Open checks the tag before releasing any plaintext.
	plaintext, err := gcm.Open(nil, container.Nonce, container.Ciphertext, nil)
	if err != nil {
		return nil, ErrAuthenticationFailed
	}

	return plaintext, nil
}

func newGCM(key []byte) (cipher.AEAD, error) {
	if len(key) != KeySize {
		return nil, fmt.Errorf("%w: %d", ErrInvalidKeySize, len(key))
	}

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("create cipher: %w", err)
	}

	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("create gcm: %w", err)
	}

	return gcm, nil
}

// marshalCollection produces the canonical JSON form: struct field order,
// and an empty array rather than null for an empty collection. Strings that
// are not valid UTF-8 are rejected rather than rewritten by the encoder.
func marshalCollection(collection *models.VaultCollection) ([]byte, error) {
	for i, c := range collection.Credentials {
		for _, s := range []string{c.ID, c.Name, c.Username, c.Password, c.URL, c.Notes, string(c.Category)} {
			if !utf8.ValidString(s) {
				return nil, fmt.Errorf("%w: credential at index %d", ErrInvalidText, i)
			}
		}
	}

	canonical := models.VaultCollection{
		Version:     collection.Version,
		Credentials: collection.Credentials,
	}
	if canonical.Credentials == nil {
		canonical.Credentials = []models.Credential{}
	}

	plaintext, err := json.Marshal(canonical)
	if err != nil {
		return nil, fmt.Errorf("marshal collection: %w", err)
	}
	return plaintext, nil
}

// unmarshalCollection checks the version tag first so an unknown version is
// reported as such, then decodes strictly: unknown fields and trailing data
// are rejected.
func unmarshalCollection(plaintext []byte) (*models.VaultCollection, error) {
	var header struct {
		Version *int `json:"version"`
	}
	if err := json.Unmarshal(plaintext, &header); err != nil {
		return nil, fmt.Errorf("%w: decode header: %v", ErrCorruptContainer, err)
	}
	if header.Version == nil {
		return nil, fmt.Errorf("%w: missing version", ErrCorruptContainer)
	}
	if *header.Version != models.CurrentVaultVersion {
		return nil, fmt.Errorf("%w: %d", ErrVersionMismatch, *header.Version)
	}

	dec := json.NewDecoder(bytes.NewReader(plaintext))
	dec.DisallowUnknownFields()

	var collection models.VaultCollection
	if err := dec.Decode(&collection); err != nil {
		return nil, fmt.Errorf("%w: decode collection: %v", ErrCorruptContainer, err)
	}
	if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: trailing data after collection", ErrCorruptContainer)
	}
	if collection.Credentials == nil {
		collection.Credentials = []models.Credential{}
	}

	return &collection, nil
}
