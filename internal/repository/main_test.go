package repository

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/plebtools/plebtools/internal/db"
	"github.com/plebtools/plebtools/internal/model"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

// newTestDB opens a throwaway sqlite database with the real migrations
// applied.
func newTestDB(t *testing.T) *sqlx.DB {
	t.Helper()

	dsn := filepath.Join(t.TempDir(), "test.db") + "?_pragma=foreign_keys(1)"
	conn, err := db.Init("sqlite", dsn)
	require.NoError(t, err, "failed to open test database")

	err = db.RunMigrations(conn.DB, "sqlite")
	require.NoError(t, err, "failed to run migrations")

	t.Cleanup(func() { conn.Close() })
	return conn
}

func newTestUser(t *testing.T, users UserRepository, username string) *model.User {
	t.Helper()

	user := &model.User{
		Username:     username,
		PasswordHash: "x",
		CreatedAt:    time.Now().UTC(),
	}
	require.NoError(t, users.Create(user))
	return user
}

func dec(t *testing.T, s string) decimal.Decimal {
	t.Helper()

	d, err := decimal.NewFromString(s)
	require.NoError(t, err)
	return d
}
