// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// CurrentVaultVersion is the only [VaultCollection.Version] the codec accepts.
const CurrentVaultVersion = 1

// Storage slot names. Both slots are written together on creation and
// removed together on reset.
const (
	// SlotMasterHash holds the text-encoded password verification artifact.
	SlotMasterHash = "master_hash"

	// SlotEncryptedVault holds the text-encoded encrypted container.
	SlotEncryptedVault = "encrypted_vault"
)

// VaultCollection is the ordered list of all credentials plus a format
// version tag. It is the single unit of encryption: the whole collection is
// sealed and opened atomically.
type VaultCollection struct {
	// Version is the format tag; must equal [CurrentVaultVersion].
	Version int `json:"version"`

	// Credentials keeps insertion order.
	Credentials []Credential `json:"credentials"`
}

// NewVaultCollection returns an empty collection tagged with
// [CurrentVaultVersion].
func NewVaultCollection(credentials ...Credential) *VaultCollection {
	if credentials == nil {
		credentials = []Credential{}
	}
	return &VaultCollection{
		Version:     CurrentVaultVersion,
		Credentials: credentials,
	}
}

// Clone returns a deep copy of the collection so callers can hand it out
// without sharing the backing slice.
func (v *VaultCollection) Clone() *VaultCollection {
	if v == nil {
		return nil
	}
	creds := make([]Credential, len(v.Credentials))
	copy(creds, v.Credentials)
	return &VaultCollection{Version: v.Version, Credentials: creds}
}

// Find returns the index of the credential with the given id, or -1.
func (v *VaultCollection) Find(id string) int {
	for i := range v.Credentials {
		if v.Credentials[i].ID == id {
			return i
		}
	}
	return -1
}

// ExportRecord is the offline backup format. Both text fields are copied
// verbatim from the storage slots; neither carries plaintext.
type ExportRecord struct {
	// Encrypted is the text-encoded encrypted container.
	Encrypted string `json:"encrypted"`

	// Hash is the text-encoded verification artifact.
	Hash string `json:"hash"`

	// Version is the collection format version at export time.
	Version int `json:"version"`
}
