// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/awnumar/memguard"

	"github.com/MKhiriev/go-pass-vault/internal/utils"
	"github.com/MKhiriev/go-pass-vault/models"
)

// Session is an unlocked vault held in memory. Each mutation is applied to a
// copy of the collection, sealed through [VaultService.SaveVault] and only
// then made current, so the in-memory state never runs ahead of storage.
//
// The master password is kept in a memguard enclave for re-sealing. After
// Lock every method returns [ErrSessionLocked].
type Session struct {
	vault VaultService
	ids   utils.IDGenerator

	mu         sync.Mutex
	password   *memguard.Enclave
	collection *models.VaultCollection
	lastActive time.Time
	locked     bool

	now func() time.Time
}

// OpenSession unlocks the vault with password and returns a session over the
// decrypted collection.
func OpenSession(ctx context.Context, vault VaultService, ids utils.IDGenerator, password string) (*Session, error) {
	if password == "" {
		return nil, ErrEmptyPassword
	}

	collection, err := vault.UnlockVault(ctx, password)
	if err != nil {
		return nil, err
	}

	s := &Session{
		vault:      vault,
		ids:        ids,
		password:   memguard.NewEnclave([]byte(password)),
		collection: collection,
		now:        time.Now,
	}
	s.lastActive = s.now()

	return s, nil
}

// Credentials returns a copy of every credential in insertion order.
func (s *Session) Credentials() ([]models.Credential, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.locked {
		return nil, ErrSessionLocked
	}
	s.touch()

	return s.collection.Clone().Credentials, nil
}

// Find resolves query to one credential. An exact ID wins; otherwise the
// name is matched case-insensitively and must be unique.
func (s *Session) Find(query string) (models.Credential, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.locked {
		return models.Credential{}, ErrSessionLocked
	}
	s.touch()

	if i := s.collection.Find(query); i >= 0 {
		return s.collection.Credentials[i], nil
	}

	var (
		found models.Credential
		count int
	)
	for _, c := range s.collection.Credentials {
		if strings.EqualFold(c.Name, strings.TrimSpace(query)) {
			found = c
			count++
		}
	}

	switch count {
	case 0:
		return models.Credential{}, fmt.Errorf("%w: %s", ErrCredentialNotFound, query)
	case 1:
		return found, nil
	default:
		return models.Credential{}, fmt.Errorf("%w: %q matches %d entries", ErrAmbiguousCredential, query, count)
	}
}

// Add assigns a new ID and timestamps to c, appends it and persists the
// vault. An empty category becomes [models.CategoryOther].
func (s *Session) Add(ctx context.Context, c models.Credential) (models.Credential, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.locked {
		return models.Credential{}, ErrSessionLocked
	}
	s.touch()

	now := s.now().UTC()
	c.ID = s.ids.Generate()
	c.CreatedAt = now
	c.UpdatedAt = now
	if c.Category == "" {
		c.Category = models.CategoryOther
	}

	next := s.collection.Clone()
	next.Credentials = append(next.Credentials, c)

	if err := s.persist(ctx, next); err != nil {
		return models.Credential{}, err
	}

	return c, nil
}

// Update replaces the credential with the same ID. ID and CreatedAt are
// kept from the stored entry.
func (s *Session) Update(ctx context.Context, c models.Credential) (models.Credential, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.locked {
		return models.Credential{}, ErrSessionLocked
	}
	s.touch()

	i := s.collection.Find(c.ID)
	if i < 0 {
		return models.Credential{}, fmt.Errorf("%w: %s", ErrCredentialNotFound, c.ID)
	}

	next := s.collection.Clone()
	c.CreatedAt = next.Credentials[i].CreatedAt
	c.UpdatedAt = next.Credentials[i].UpdatedAt
	c.Touch(s.now().UTC())
	next.Credentials[i] = c

	if err := s.persist(ctx, next); err != nil {
		return models.Credential{}, err
	}

	return c, nil
}

// Remove deletes the credential with the given ID.
func (s *Session) Remove(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.locked {
		return ErrSessionLocked
	}
	s.touch()

	i := s.collection.Find(id)
	if i < 0 {
		return fmt.Errorf("%w: %s", ErrCredentialNotFound, id)
	}

	next := s.collection.Clone()
	next.Credentials = append(next.Credentials[:i], next.Credentials[i+1:]...)

	return s.persist(ctx, next)
}

// SetFavorite flags or unflags the credential with the given ID.
func (s *Session) SetFavorite(ctx context.Context, id string, favorite bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.locked {
		return ErrSessionLocked
	}
	s.touch()

	i := s.collection.Find(id)
	if i < 0 {
		return fmt.Errorf("%w: %s", ErrCredentialNotFound, id)
	}
	if s.collection.Credentials[i].Favorite == favorite {
		return nil
	}

	next := s.collection.Clone()
	next.Credentials[i].Favorite = favorite
	next.Credentials[i].Touch(s.now().UTC())

	return s.persist(ctx, next)
}

// Lock drops the collection and the sealed password. It is safe to
// call more than once.
func (s *Session) Lock() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.locked {
		return
	}

	s.locked = true
	s.collection = nil
	s.password = nil
}

func (s *Session) Locked() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.locked
}

// IdleFor reports the time since the last call on the session.
func (s *Session) IdleFor() time.Duration {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.now().Sub(s.lastActive)
}

func (s *Session) touch() {
	s.lastActive = s.now()
}

// persist seals next and makes it current. The caller must hold mu.
func (s *Session) persist(ctx context.Context, next *models.VaultCollection) error {
	buf, err := s.password.Open()
	if err != nil {
		return fmt.Errorf("open session password: %w", err)
	}
	password := string(buf.Bytes())
	buf.Destroy()

	if err = s.vault.SaveVault(ctx, next, password); err != nil {
		return err
	}

	s.collection = next
	return nil
}
