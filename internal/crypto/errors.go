// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import "errors"

// Failure taxonomy of the vault engine. Callers outside the service layer
// must never surface these individually to the user; they are collapsed into
// a single "cannot unlock" outcome.
var (
	// ErrInvalidPassword is returned when a candidate password does not match
	// the stored verification artifact.
	ErrInvalidPassword = errors.New("invalid password")

	// ErrCorruptContainer is returned when stored bytes are structurally
	// malformed: bad text encoding, wrong length, or undecodable plaintext.
	ErrCorruptContainer = errors.New("corrupt container")

	// ErrAuthenticationFailed is returned when AES-GCM rejects the
	// ciphertext/tag/nonce combination (tampering or wrong key).
	ErrAuthenticationFailed = errors.New("authentication failed")

	// ErrVersionMismatch is returned when a decrypted collection carries a
	// version tag the codec does not support.
	ErrVersionMismatch = errors.New("unsupported vault version")

	// ErrInvalidKeySize is returned when a key is not [KeySize] bytes long.
	ErrInvalidKeySize = errors.New("invalid key size")

	// ErrInvalidText is returned by Seal when a credential string is not
	// valid UTF-8 and would not survive the JSON round trip.
	ErrInvalidText = errors.New("credential text is not valid UTF-8")

	// ErrNilCollection is returned when Seal is called without a collection.
	ErrNilCollection = errors.New("nil vault collection")
)
