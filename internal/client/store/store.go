// Package store persists the active session across process restarts.
package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/pressly/goose/v3"
	_ "modernc.org/sqlite"

	"github.com/poleforge/poleforge/internal/client/models"
	"github.com/poleforge/poleforge/internal/client/repositories/metadata"
	"github.com/poleforge/poleforge/internal/client/store/migrations"
	"github.com/poleforge/poleforge/internal/dbx"
)

// Stable keys of the persisted session entries.
const (
	tokenKey = "auth_token"
	userKey  = "auth_user"
)

// InitDatabase opens the client-local sqlite database and applies the
// embedded migrations.
func InitDatabase(ctx context.Context, dsn string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}

	goose.SetBaseFS(migrations.Migrations)
	if err := goose.SetDialect("sqlite3"); err != nil {
		return nil, err
	}
	if err := goose.UpContext(ctx, db, "."); err != nil {
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}
	return db, nil
}

// SessionStore writes the current session to the local database.
// Save overwrites any prior session (last write wins, no versioning).
type SessionStore struct {
	db *sql.DB
}

func NewSessionStore(db *sql.DB) *SessionStore {
	return &SessionStore{db: db}
}

// Save persists the token and the serialized user in one transaction, so
// a reader can never observe a token without its user or vice versa.
func (s *SessionStore) Save(ctx context.Context, sess *models.Session) error {
	encoded, err := json.Marshal(sess.User)
	if err != nil {
		return fmt.Errorf("failed to encode user: %w", err)
	}

	return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := metadata.NewSQLiteRepository(tx)
		if err := repo.Set(ctx, tokenKey, sess.Token); err != nil {
			return err
		}
		return repo.Set(ctx, userKey, string(encoded))
	})
}

// Load returns the persisted session, or (nil, nil) when none is stored.
// Incomplete or unparsable entries are treated as absent, never as an
// error: a corrupted cache must not block startup.
func (s *SessionStore) Load(ctx context.Context) (*models.Session, error) {
	repo := metadata.NewSQLiteRepository(s.db)

	token, ok, err := repo.Get(ctx, tokenKey)
	if err != nil {
		return nil, err
	}
	if !ok || token == "" {
		return nil, nil
	}

	encoded, ok, err := repo.Get(ctx, userKey)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, nil
	}

	var user models.User
	if err := json.Unmarshal([]byte(encoded), &user); err != nil {
		return nil, nil
	}
	return &models.Session{Token: token, User: &user}, nil
}

// Clear removes both session entries. Idempotent.
func (s *SessionStore) Clear(ctx context.Context) error {
	return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := metadata.NewSQLiteRepository(tx)
		if err := repo.Delete(ctx, tokenKey); err != nil {
			return err
		}
		return repo.Delete(ctx, userKey)
	})
}
