// Package credentials persists the bearer token and the last known user
// profile between runs. It is a thin typed layer over a keyvalue.Repository;
// the token and the user snapshot live under independent keys and are not
// written atomically — the session manager pairs the writes.
package credentials

import (
	"context"
	"encoding/json"

	"github.com/dvalero/finwallet/internal/client/models"
	"github.com/dvalero/finwallet/internal/client/repositories/keyvalue"
)

const (
	tokenKey = "token"
	userKey  = "user"
)

type Store struct {
	repo keyvalue.Repository
}

func NewStore(repo keyvalue.Repository) *Store {
	return &Store{repo: repo}
}

// SaveToken persists the bearer token, overwriting any previous value.
func (s *Store) SaveToken(ctx context.Context, token string) error {
	if err := s.repo.Set(ctx, tokenKey, []byte(token)); err != nil {
		return &StorageError{Op: "save token", Err: err}
	}
	return nil
}

// LoadToken returns the persisted token. Absence is not an error: the
// second return value reports whether a token was found.
func (s *Store) LoadToken(ctx context.Context) (string, bool, error) {
	value, err := s.repo.Get(ctx, tokenKey)
	if err != nil {
		return "", false, &StorageError{Op: "load token", Err: err}
	}
	if value == nil {
		return "", false, nil
	}
	return string(value), true, nil
}

// ClearToken removes the persisted token. Clearing an absent token is a no-op.
func (s *Store) ClearToken(ctx context.Context) error {
	if err := s.repo.Delete(ctx, tokenKey); err != nil {
		return &StorageError{Op: "clear token", Err: err}
	}
	return nil
}

// SaveUser persists a JSON snapshot of the user profile.
func (s *Store) SaveUser(ctx context.Context, user models.User) error {
	data, err := json.Marshal(user)
	if err != nil {
		return &StorageError{Op: "encode user", Err: err}
	}
	if err := s.repo.Set(ctx, userKey, data); err != nil {
		return &StorageError{Op: "save user", Err: err}
	}
	return nil
}

// LoadUser returns the stored user snapshot, or (nil, nil) when absent.
func (s *Store) LoadUser(ctx context.Context) (*models.User, error) {
	value, err := s.repo.Get(ctx, userKey)
	if err != nil {
		return nil, &StorageError{Op: "load user", Err: err}
	}
	if value == nil {
		return nil, nil
	}
	var user models.User
	if err := json.Unmarshal(value, &user); err != nil {
		return nil, &StorageError{Op: "decode user", Err: err}
	}
	return &user, nil
}

// ClearUser removes the stored user snapshot. Idempotent.
func (s *Store) ClearUser(ctx context.Context) error {
	if err := s.repo.Delete(ctx, userKey); err != nil {
		return &StorageError{Op: "clear user", Err: err}
	}
	return nil
}
