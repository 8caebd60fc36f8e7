// Package tokenstore holds the bearer token of the current session.
//
// A Store is either empty or holds exactly one token. Reads are served from
// memory; a durable store also writes every change to the local database so
// the session survives a restart.
package tokenstore

import (
	"context"
	"database/sql"
	"fmt"
	"sync"
	"time"

	"github.com/dmitrijs2005/scripto/internal/client/repositories/metadata"
	"github.com/dmitrijs2005/scripto/internal/dbx"
)

const (
	keyToken   = "access_token"
	keySavedAt = "token_saved_at"
)

// Store is safe for concurrent use.
type Store struct {
	mu      sync.RWMutex
	token   string
	savedAt time.Time

	db  *sql.DB // nil for in-memory stores
	now func() time.Time
}

// NewInMemory returns an empty store that forgets its token on exit.
func NewInMemory() *Store {
	return &Store{now: time.Now}
}

// Open returns a durable store backed by db and loads the token persisted by
// an earlier session, if any. The metadata table must already exist.
func Open(ctx context.Context, db *sql.DB) (*Store, error) {
	s := &Store{db: db, now: time.Now}

	repo := metadata.NewSQLiteRepository(db)
	tok, ok, err := repo.Get(ctx, keyToken)
	if err != nil {
		return nil, fmt.Errorf("load token: %w", err)
	}
	if !ok || tok.Value == "" {
		return s, nil
	}

	s.token = tok.Value
	s.savedAt = tok.UpdatedAt
	if at, ok, err := repo.Get(ctx, keySavedAt); err == nil && ok {
		if t, err := time.Parse(time.RFC3339Nano, at.Value); err == nil {
			s.savedAt = t
		}
	}
	return s, nil
}

// Get returns the current token. It has no side effects.
func (s *Store) Get() (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token, s.token != ""
}

// SavedAt reports when the current token was stored.
func (s *Store) SavedAt() (time.Time, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.savedAt, s.token != ""
}

// Save replaces the stored token. Saving an empty token is the same as Clear.
func (s *Store) Save(ctx context.Context, token string) error {
	if token == "" {
		return s.Clear(ctx)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	at := s.now().UTC()
	if s.db != nil {
		err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
			repo := metadata.NewSQLiteRepository(tx)
			if err := repo.Set(ctx, keyToken, token); err != nil {
				return err
			}
			return repo.Set(ctx, keySavedAt, at.Format(time.RFC3339Nano))
		})
		if err != nil {
			return fmt.Errorf("save token: %w", err)
		}
	}

	s.token = token
	s.savedAt = at
	return nil
}

// Clear forgets the token. The in-memory token is dropped even when the
// database write fails, so Get reports empty afterwards in every case.
func (s *Store) Clear(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.token = ""
	s.savedAt = time.Time{}

	if s.db != nil {
		err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
			repo := metadata.NewSQLiteRepository(tx)
			if err := repo.Delete(ctx, keyToken); err != nil {
				return err
			}
			return repo.Delete(ctx, keySavedAt)
		})
		if err != nil {
			return fmt.Errorf("clear token: %w", err)
		}
	}
	return nil
}
