package store

import (
	"context"
	"database/sql"
	"testing"

	"github.com/inkwell-blog/inkwell/internal/db"
	"github.com/inkwell-blog/inkwell/types"
	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"
)

// newTestDB opens an in-memory SQLite database with the real schema.
// MaxOpenConns is pinned to 1 so every statement sees the same memory
// database.
func newTestDB(t *testing.T) *sql.DB {
	t.Helper()

	conn, err := sql.Open("sqlite", "file::memory:?_pragma=foreign_keys(1)")
	require.NoError(t, err)
	conn.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = conn.Close() })

	require.NoError(t, db.InitSchema(context.Background(), conn))
	return conn
}

func createTestUser(t *testing.T, conn *sql.DB, username string) types.User {
	t.Helper()

	repo := NewUserRepository(conn)
	user, err := repo.Create(context.Background(), types.User{
		Username:     username,
		PasswordHash: "hash-" + username,
	})
	require.NoError(t, err)
	return user
}
