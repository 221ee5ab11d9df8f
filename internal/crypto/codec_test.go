// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"bytes"
	"encoding/base64"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-pass-vault/models"
)

func newTestCodec(t *testing.T) *vaultCodec {
	t.Helper()
	return NewVaultCodec(NewKeyChain()).(*vaultCodec)
}

func exampleCredential() models.Credential {
	ts := time.Date(2026, 3, 14, 15, 9, 26, 0, time.UTC)
	return models.Credential{
		ID:        "0195f3a2-7c1e-7000-8000-000000000001",
		Name:      "Example",
		Username:  "user@example.com",
		Password:  "p@ssW0rd!",
		Category:  models.CategoryOther,
		CreatedAt: ts,
		UpdatedAt: ts,
	}
}

func flipByte(t *testing.T, text string, idx int) string {
	t.Helper()
	raw, err := base64.StdEncoding.DecodeString(text)
	require.NoError(t, err)
	raw[idx] ^= 0x01
	return base64.StdEncoding.EncodeToString(raw)
}

// ── Seal / Open ─────────────────────────────────────────────────────────────

func TestVaultCodec_RoundTrip(t *testing.T) {
	ts := time.Date(2025, 12, 31, 23, 59, 59, 123456789, time.UTC)

	tests := []struct {
		name       string
		collection *models.VaultCollection
	}{
		{
			name:       "empty",
			collection: models.NewVaultCollection(),
		},
		{
			name:       "single credential",
			collection: models.NewVaultCollection(exampleCredential()),
		},
		{
			name: "several credentials keep order",
			collection: models.NewVaultCollection(
				models.Credential{ID: "c", Name: "Zeta", Username: "z", Password: "1", Category: models.CategoryWork, CreatedAt: ts, UpdatedAt: ts, Favorite: true},
				models.Credential{ID: "a", Name: "Alpha", Username: "a", Password: "2", URL: "https://alpha.example", Notes: "multi\nline\tnotes", Category: models.CategoryFinance, CreatedAt: ts, UpdatedAt: ts},
				models.Credential{ID: "b", Name: "Юникод 🔐", Username: "ü", Password: "密码", Category: models.CategorySocial, CreatedAt: ts, UpdatedAt: ts},
			),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			codec := newTestCodec(t)

			sealed, err := codec.Seal(tt.collection, "correct-horse-battery")
			require.NoError(t, err)

			got, err := codec.Open(sealed, "correct-horse-battery")
			require.NoError(t, err)
			assert.Equal(t, tt.collection, got)
		})
	}
}

func TestVaultCodec_SealNilCredentialsOpensAsEmpty(t *testing.T) {
	codec := newTestCodec(t)

	sealed, err := codec.Seal(&models.VaultCollection{Version: models.CurrentVaultVersion}, "pw")
	require.NoError(t, err)

	got, err := codec.Open(sealed, "pw")
	require.NoError(t, err)
	require.NotNil(t, got.Credentials)
	assert.Empty(t, got.Credentials)
}

func TestVaultCodec_SealDoesNotLeakPlaintext(t *testing.T) {
	codec := newTestCodec(t)

	sealed, err := codec.Seal(models.NewVaultCollection(exampleCredential()), "pw")
	require.NoError(t, err)

	raw, err := base64.StdEncoding.DecodeString(sealed)
	require.NoError(t, err)

	for _, secret := range []string{"Example", "user@example.com", "p@ssW0rd!", "credentials"} {
		assert.False(t, bytes.Contains(raw, []byte(secret)), "container leaks %q", secret)
		assert.NotContains(t, sealed, secret)
	}
}

func TestVaultCodec_ContainerLayout(t *testing.T) {
	codec := newTestCodec(t)
	collection := models.NewVaultCollection(exampleCredential())

	sealed, err := codec.Seal(collection, "pw")
	require.NoError(t, err)

	plaintext, err := marshalCollection(collection)
	require.NoError(t, err)

	c, err := DecodeContainer(sealed)
	require.NoError(t, err)
	assert.Len(t, c.Salt, 16)
	assert.Len(t, c.Nonce, 12)
	assert.Len(t, c.Ciphertext, len(plaintext)+TagSize)
}

func TestVaultCodec_SealRejectsInvalidUTF8(t *testing.T) {
	codec := newTestCodec(t)

	tests := map[string]func(c *models.Credential){
		"password": func(c *models.Credential) { c.Password = "p\xffw\xc3d" },
		"name":     func(c *models.Credential) { c.Name = "\xc3" },
		"username": func(c *models.Credential) { c.Username = "user\xfe" },
		"url":      func(c *models.Credential) { c.URL = "https://\x80" },
		"notes":    func(c *models.Credential) { c.Notes = "caf\xc3" },
	}

	for name, mutate := range tests {
		t.Run(name, func(t *testing.T) {
			c := exampleCredential()
			mutate(&c)

			sealed, err := codec.Seal(models.NewVaultCollection(exampleCredential(), c), "pw")
			assert.ErrorIs(t, err, ErrInvalidText)
			assert.Contains(t, err.Error(), "index 1")
			assert.Empty(t, sealed)
		})
	}
}

func TestVaultCodec_RoundTripKeepsPasswordBytes(t *testing.T) {
	codec := newTestCodec(t)
	c := exampleCredential()
	c.Password = "\u00e9\u00e8 \U0001F511 \t\\\"<>&"

	sealed, err := codec.Seal(models.NewVaultCollection(c), "pw")
	require.NoError(t, err)

	got, err := codec.Open(sealed, "pw")
	require.NoError(t, err)
	assert.Equal(t, []byte(c.Password), []byte(got.Credentials[0].Password))
}

func TestVaultCodec_SealNil(t *testing.T) {
	_, err := newTestCodec(t).Seal(nil, "pw")
	assert.ErrorIs(t, err, ErrNilCollection)
}

func TestVaultCodec_SealUnsupportedVersion(t *testing.T) {
	_, err := newTestCodec(t).Seal(&models.VaultCollection{Version: 7}, "pw")
	assert.ErrorIs(t, err, ErrVersionMismatch)
}

func TestVaultCodec_SealRandomFailure(t *testing.T) {
	codec := newTestCodec(t)
	codec.random = failingReader{}

	_, err := codec.Seal(models.NewVaultCollection(), "pw")
	assert.Error(t, err)
}

// ── freshness ───────────────────────────────────────────────────────────────

func TestVaultCodec_FreshSaltAndNoncePerSeal(t *testing.T) {
	codec := newTestCodec(t)
	collection := models.NewVaultCollection(exampleCredential())

	const samples = 5
	salts := make(map[string]struct{}, samples)
	nonces := make(map[string]struct{}, samples)
	blobs := make(map[string]struct{}, samples)

	for i := 0; i < samples; i++ {
		sealed, err := codec.Seal(collection, "same-password")
		require.NoError(t, err)

		c, err := DecodeContainer(sealed)
		require.NoError(t, err)

		salts[string(c.Salt)] = struct{}{}
		nonces[string(c.Nonce)] = struct{}{}
		blobs[sealed] = struct{}{}
	}

	assert.Len(t, salts, samples, "salt reused across seals")
	assert.Len(t, nonces, samples, "nonce reused across seals")
	assert.Len(t, blobs, samples, "identical containers across seals")
}

// ── failures ────────────────────────────────────────────────────────────────

func TestVaultCodec_WrongPassword(t *testing.T) {
	codec := newTestCodec(t)

	sealed, err := codec.Seal(models.NewVaultCollection(exampleCredential()), "p@ssW0rd-master")
	require.NoError(t, err)

	for _, wrong := range []string{"wrong", "", "p@ssW0rd-maste", "P@ssW0rd-master"} {
		got, err := codec.Open(sealed, wrong)
		assert.ErrorIs(t, err, ErrAuthenticationFailed, "password %q", wrong)
		assert.Nil(t, got)
	}
}

func TestVaultCodec_TamperCiphertextEveryByte(t *testing.T) {
	codec := newTestCodec(t)

	sealed, err := codec.Seal(models.NewVaultCollection(), "pw")
	require.NoError(t, err)

	raw, err := base64.StdEncoding.DecodeString(sealed)
	require.NoError(t, err)

	for idx := containerHeaderSize; idx < len(raw); idx++ {
		got, err := codec.Open(flipByte(t, sealed, idx), "pw")
		require.ErrorIs(t, err, ErrAuthenticationFailed, "flipped byte %d", idx)
		require.Nil(t, got)
	}
}

func TestVaultCodec_TamperHeader(t *testing.T) {
	codec := newTestCodec(t)

	sealed, err := codec.Seal(models.NewVaultCollection(exampleCredential()), "pw")
	require.NoError(t, err)

	tests := map[string]int{
		"first salt byte":  0,
		"last salt byte":   SaltSize - 1,
		"first nonce byte": SaltSize,
		"last nonce byte":  containerHeaderSize - 1,
	}

	for name, idx := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := codec.Open(flipByte(t, sealed, idx), "pw")
			assert.ErrorIs(t, err, ErrAuthenticationFailed)
		})
	}
}

func TestVaultCodec_TruncatedTag(t *testing.T) {
	codec := newTestCodec(t)

	sealed, err := codec.Seal(models.NewVaultCollection(exampleCredential()), "pw")
	require.NoError(t, err)

	raw, err := base64.StdEncoding.DecodeString(sealed)
	require.NoError(t, err)

	_, err = codec.Open(base64.StdEncoding.EncodeToString(raw[:len(raw)-1]), "pw")
	assert.ErrorIs(t, err, ErrAuthenticationFailed)
}

func TestVaultCodec_OpenCorruptText(t *testing.T) {
	codec := newTestCodec(t)

	tests := map[string]string{
		"empty":      "",
		"not base64": "!!not-base64!!",
		"too short":  base64.StdEncoding.EncodeToString(make([]byte, minContainerSize-1)),
	}

	for name, text := range tests {
		t.Run(name, func(t *testing.T) {
			got, err := codec.Open(text, "pw")
			assert.ErrorIs(t, err, ErrCorruptContainer)
			assert.Nil(t, got)
		})
	}
}

func TestVaultCodec_VersionRejection(t *testing.T) {
	codec := newTestCodec(t)

	for _, version := range []int{0, 2, -1, 100} {
		plaintext := []byte(`{"version":` + strconv.Itoa(version) + `,"credentials":[]}`)
		sealed, err := codec.sealPlaintext(plaintext, "correct-horse-battery")
		require.NoError(t, err)

		got, err := codec.Open(sealed, "correct-horse-battery")
		assert.ErrorIs(t, err, ErrVersionMismatch, "version %d", version)
		assert.Nil(t, got)
	}
}

func TestVaultCodec_StructuralMalformation(t *testing.T) {
	codec := newTestCodec(t)

	tests := map[string]string{
		"not json":        `not json at all`,
		"missing version": `{"credentials":[]}`,
		"unknown field":   `{"version":1,"credentials":[],"extra":true}`,
		"wrong type":      `{"version":1,"credentials":"nope"}`,
		"trailing data":   `{"version":1,"credentials":[]}{"version":1}`,
	}

	for name, plaintext := range tests {
		t.Run(name, func(t *testing.T) {
			sealed, err := codec.sealPlaintext([]byte(plaintext), "pw")
			require.NoError(t, err)

			got, err := codec.Open(sealed, "pw")
			assert.ErrorIs(t, err, ErrCorruptContainer)
			assert.Nil(t, got)
		})
	}
}
