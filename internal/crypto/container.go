// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"encoding/base64"
	"fmt"
)

// Container is the parsed form of the persisted encrypted vault.
//
// Byte layout (authoritative):
//
//	[0,16)   salt
//	[16,28)  nonce
//	[28,end) ciphertext ‖ GCM tag
//
// All offset arithmetic for the layout lives in [Container.Bytes] and
// [ParseContainer].
type Container struct {
	Salt       []byte
	Nonce      []byte
	Ciphertext []byte
}

// Bytes serializes the container to salt ‖ nonce ‖ ciphertext.
func (c Container) Bytes() []byte {
	raw := make([]byte, 0, len(c.Salt)+len(c.Nonce)+len(c.Ciphertext))
	raw = append(raw, c.Salt...)
	raw = append(raw, c.Nonce...)
	raw = append(raw, c.Ciphertext...)
	return raw
}

// Encode returns the standard base64 text form of the container, suitable
// for text-only key-value storage.
func (c Container) Encode() string {
	return base64.StdEncoding.EncodeToString(c.Bytes())
}

// ParseContainer splits raw bytes by the fixed-length prefix rule. The
// returned slices are copies. Returns [ErrCorruptContainer] if raw is shorter
// than header plus tag.
func ParseContainer(raw []byte) (Container, error) {
	if len(raw) < minContainerSize {
		return Container{}, fmt.Errorf("%w: %d bytes, want at least %d", ErrCorruptContainer, len(raw), minContainerSize)
	}

	c := Container{
		Salt:       make([]byte, SaltSize),
		Nonce:      make([]byte, NonceSize),
		Ciphertext: make([]byte, len(raw)-containerHeaderSize),
	}
	copy(c.Salt, raw[:SaltSize])
	copy(c.Nonce, raw[SaltSize:containerHeaderSize])
	copy(c.Ciphertext, raw[containerHeaderSize:])

	return c, nil
}

// DecodeContainer base64-decodes text and parses it with [ParseContainer].
func DecodeContainer(text string) (Container, error) {
	raw, err := base64.StdEncoding.DecodeString(text)
	if err != nil {
		return Container{}, fmt.Errorf("%w: decode base64: %v", ErrCorruptContainer, err)
	}
	return ParseContainer(raw)
}

// EncodeArtifact returns the standard base64 text form of a verification
// artifact.
func EncodeArtifact(artifact []byte) string {
	return base64.StdEncoding.EncodeToString(artifact)
}

// DecodeArtifact base64-decodes a verification artifact and checks its
// length. Returns [ErrCorruptContainer] on malformed input.
func DecodeArtifact(text string) ([]byte, error) {
	artifact, err := base64.StdEncoding.DecodeString(text)
	if err != nil {
		return nil, fmt.Errorf("%w: decode artifact: %v", ErrCorruptContainer, err)
	}
	if len(artifact) != ArtifactSize {
		return nil, fmt.Errorf("%w: artifact is %d bytes, want %d", ErrCorruptContainer, len(artifact), ArtifactSize)
	}
	return artifact, nil
}
