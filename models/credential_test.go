// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCredential_Touch(t *testing.T) {
	created := time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)

	t.Run("moves forward", func(t *testing.T) {
		c := Credential{CreatedAt: created, UpdatedAt: created}
		later := created.Add(time.Hour).In(time.FixedZone("X", 3*3600))

		c.Touch(later)
		assert.True(t, c.UpdatedAt.Equal(later))
		assert.Equal(t, time.UTC, c.UpdatedAt.Location())
	})

	t.Run("never before creation", func(t *testing.T) {
		c := Credential{CreatedAt: created, UpdatedAt: created}

		c.Touch(created.Add(-time.Minute))
		assert.Equal(t, created, c.UpdatedAt)
	})
}

func TestCategory_IsValid(t *testing.T) {
	for _, c := range Categories {
		assert.True(t, c.IsValid(), c)
	}
	assert.False(t, Category("").IsValid())
	assert.False(t, Category("Login").IsValid())
	assert.False(t, Category("banking").IsValid())
}

func TestVaultCollection_CloneIsDeep(t *testing.T) {
	original := NewVaultCollection(Credential{ID: "a", Name: "A"}, Credential{ID: "b", Name: "B"})

	clone := original.Clone()
	require.Equal(t, original, clone)

	clone.Credentials[0].Name = "changed"
	clone.Credentials = append(clone.Credentials, Credential{ID: "c"})

	assert.Equal(t, "A", original.Credentials[0].Name)
	assert.Len(t, original.Credentials, 2)
}

func TestVaultCollection_Find(t *testing.T) {
	v := NewVaultCollection(Credential{ID: "a"}, Credential{ID: "b"})

	assert.Equal(t, 1, v.Find("b"))
	assert.Equal(t, -1, v.Find("zzz"))
}
