package store

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/poleforge/poleforge/internal/client/models"
)

func setupStore(t *testing.T) (*SessionStore, *sql.DB) {
	t.Helper()
	db, err := InitDatabase(context.Background(), "file:store_tests?mode=memory&cache=shared")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return NewSessionStore(db), db
}

func testSession() *models.Session {
	return &models.Session{
		Token: "tok1",
		User: &models.User{
			ID:        "u1",
			Email:     "user@example.com",
			Name:      "User",
			CreatedAt: "2024-01-01",
		},
	}
}

func TestSessionStore_RoundTrip(t *testing.T) {
	s, _ := setupStore(t)
	ctx := context.Background()

	require.NoError(t, s.Save(ctx, testSession()))

	loaded, err := s.Load(ctx)
	require.NoError(t, err)
	require.NotNil(t, loaded)

	assert.Equal(t, "tok1", loaded.Token)
	assert.Equal(t, "u1", loaded.User.ID)
	assert.Equal(t, "user@example.com", loaded.User.Email)
	assert.Equal(t, "User", loaded.User.Name)
	assert.Equal(t, "2024-01-01", loaded.User.CreatedAt)
}

func TestSessionStore_LoadAbsent(t *testing.T) {
	s, _ := setupStore(t)

	loaded, err := s.Load(context.Background())
	require.NoError(t, err)
	assert.Nil(t, loaded)
}

func TestSessionStore_SaveOverwritesPrior(t *testing.T) {
	s, _ := setupStore(t)
	ctx := context.Background()

	require.NoError(t, s.Save(ctx, testSession()))

	replacement := &models.Session{
		Token: "tok2",
		User:  &models.User{ID: "u2", Email: "other@example.com"},
	}
	require.NoError(t, s.Save(ctx, replacement))

	loaded, err := s.Load(ctx)
	require.NoError(t, err)
	require.NotNil(t, loaded)
	assert.Equal(t, "tok2", loaded.Token)
	assert.Equal(t, "u2", loaded.User.ID)
}

func TestSessionStore_ClearIsIdempotent(t *testing.T) {
	s, _ := setupStore(t)
	ctx := context.Background()

	require.NoError(t, s.Save(ctx, testSession()))
	require.NoError(t, s.Clear(ctx))
	require.NoError(t, s.Clear(ctx))

	loaded, err := s.Load(ctx)
	require.NoError(t, err)
	assert.Nil(t, loaded)
}

func TestSessionStore_CorruptUserTreatedAsAbsent(t *testing.T) {
	s, db := setupStore(t)
	ctx := context.Background()

	require.NoError(t, s.Save(ctx, testSession()))

	_, err := db.Exec(`UPDATE metadata SET value = 'not-json' WHERE key = 'auth_user'`)
	require.NoError(t, err)

	loaded, err := s.Load(ctx)
	require.NoError(t, err, "a corrupted cache must not block startup")
	assert.Nil(t, loaded)
}

func TestSessionStore_MissingUserEntryTreatedAsAbsent(t *testing.T) {
	s, db := setupStore(t)
	ctx := context.Background()

	require.NoError(t, s.Save(ctx, testSession()))

	_, err := db.Exec(`DELETE FROM metadata WHERE key = 'auth_user'`)
	require.NoError(t, err)

	loaded, err := s.Load(ctx)
	require.NoError(t, err)
	assert.Nil(t, loaded)
}
