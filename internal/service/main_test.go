package service

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/plebtools/plebtools/internal/db"
	"github.com/plebtools/plebtools/internal/model"
	"github.com/plebtools/plebtools/internal/repository"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func newServiceDB(t *testing.T) *sqlx.DB {
	t.Helper()

	dsn := filepath.Join(t.TempDir(), "test.db") + "?_pragma=foreign_keys(1)"
	conn, err := db.Init("sqlite", dsn)
	require.NoError(t, err)
	require.NoError(t, db.RunMigrations(conn.DB, "sqlite"))
	t.Cleanup(func() { conn.Close() })
	return conn
}

func seedUser(t *testing.T, conn *sqlx.DB, username string) *model.User {
	t.Helper()

	user := &model.User{
		Username:     username,
		PasswordHash: "x",
		CreatedAt:    time.Now().UTC(),
	}
	require.NoError(t, repository.NewUserRepository(conn).Create(user))
	return user
}

func decPtr(t *testing.T, s string) *decimal.Decimal {
	t.Helper()

	d, err := decimal.NewFromString(s)
	require.NoError(t, err)
	return &d
}
