// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/MKhiriev/go-pass-vault/models"
)

// Field name constants used to restrict validation to a subset of fields.
const (
	// FieldID targets the immutable credential identifier.
	FieldID = "id"

	// FieldName targets the credential display name.
	FieldName = "name"

	// FieldCategory targets the credential category.
	FieldCategory = "category"

	// FieldText targets the UTF-8 validity of every credential string.
	FieldText = "text"

	// FieldTimestamps targets the CreatedAt/UpdatedAt ordering rule.
	FieldTimestamps = "timestamps"

	// FieldVersion targets the collection or export format version.
	FieldVersion = "version"

	// FieldCredentials targets every credential of a collection, including
	// identifier uniqueness.
	FieldCredentials = "credentials"

	// FieldEncrypted targets the container text of an export record.
	FieldEncrypted = "encrypted"

	// FieldHash targets the artifact text of an export record.
	FieldHash = "hash"
)

// VaultValidator validates [models.Credential], [models.VaultCollection]
// and [models.ExportRecord] values.
type VaultValidator struct {
}

// NewVaultValidator returns a [Validator] for vault data.
func NewVaultValidator() Validator {
	return &VaultValidator{}
}

// Validate implements [Validator]. Pointers and values are both accepted.
// With no fields given, every rule for the type is checked.
func (v *VaultValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.Credential:
		return v.validateCredential(ctx, value, fields...)
	case *models.Credential:
		return v.validateCredential(ctx, *value, fields...)

	case models.VaultCollection:
		return v.validateCollection(ctx, &value, fields...)
	case *models.VaultCollection:
		if value == nil {
			return ErrNilCollection
		}
		return v.validateCollection(ctx, value, fields...)

	case models.ExportRecord:
		return v.validateExportRecord(ctx, value, fields...)
	case *models.ExportRecord:
		return v.validateExportRecord(ctx, *value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *VaultValidator) validateCredential(_ context.Context, c models.Credential, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldID, FieldName, FieldCategory, FieldText, FieldTimestamps}
	}

	for _, f := range fields {
		switch f {
		case FieldID:
			if strings.TrimSpace(c.ID) == "" {
				return ErrEmptyCredentialID
			}
		case FieldName:
			if strings.TrimSpace(c.Name) == "" {
				return ErrEmptyName
			}
		case FieldCategory:
			if !c.Category.IsValid() {
				return fmt.Errorf("%w: %q", ErrInvalidCategory, c.Category)
			}
		case FieldText:
			if field, ok := invalidUTF8Field(c); !ok {
				return fmt.Errorf("%w: %s", ErrInvalidUTF8, field)
			}
		case FieldTimestamps:
			if !c.CreatedAt.IsZero() && !c.UpdatedAt.IsZero() && c.UpdatedAt.Before(c.CreatedAt) {
				return ErrInvalidTimestamps
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

// invalidUTF8Field names the first string field of c that is not valid
// UTF-8. JSON encoding would replace such bytes with U+FFFD.
func invalidUTF8Field(c models.Credential) (string, bool) {
	fields := []struct {
		name  string
		value string
	}{
		{"id", c.ID},
		{"name", c.Name},
		{"username", c.Username},
		{"password", c.Password},
		{"url", c.URL},
		{"notes", c.Notes},
		{"category", string(c.Category)},
	}
	for _, f := range fields {
		if !utf8.ValidString(f.value) {
			return f.name, false
		}
	}
	return "", true
}

func (v *VaultValidator) validateCollection(ctx context.Context, collection *models.VaultCollection, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldVersion, FieldCredentials}
	}

	for _, f := range fields {
		switch f {
		case FieldVersion:
			if collection.Version != models.CurrentVaultVersion {
				return fmt.Errorf("%w: %d", ErrInvalidVersion, collection.Version)
			}
		case FieldCredentials:
			seen := make(map[string]struct{}, len(collection.Credentials))
			for i, c := range collection.Credentials {
				if err := v.validateCredential(ctx, c); err != nil {
					return fmt.Errorf("validation error at index %d: %w", i, err)
				}
				if _, dup := seen[c.ID]; dup {
					return fmt.Errorf("validation error at index %d: %w: %s", i, ErrDuplicateID, c.ID)
				}
				seen[c.ID] = struct{}{}
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *VaultValidator) validateExportRecord(_ context.Context, record models.ExportRecord, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldEncrypted, FieldHash, FieldVersion}
	}

	for _, f := range fields {
		switch f {
		case FieldEncrypted:
			if strings.TrimSpace(record.Encrypted) == "" {
				return ErrEmptyEncryptedSlot
			}
		case FieldHash:
			if strings.TrimSpace(record.Hash) == "" {
				return ErrEmptyHashSlot
			}
		case FieldVersion:
			if record.Version != models.CurrentVaultVersion {
				return fmt.Errorf("%w: %d", ErrInvalidVersion, record.Version)
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}
