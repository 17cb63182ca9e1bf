// Package storetest opens migrated in-memory databases for tests.
package storetest

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/jsamuelsen/quotes-service/internal/adapters/store"
	"github.com/jsamuelsen/quotes-service/internal/platform/config"
)

// Config returns database settings for a private in-memory SQLite database.
func Config() *config.DatabaseConfig {
	return &config.DatabaseConfig{
		DSN:             ":memory:",
		MaxOpenConns:    1,
		MaxIdleConns:    1,
		ConnMaxLifetime: time.Hour,
		PingTimeout:     time.Second,
		LogLevel:        "silent",
	}
}

// New opens and migrates a fresh database that is closed when t ends.
func New(t testing.TB) *gorm.DB {
	t.Helper()

	db, err := store.Open(context.Background(), Config(), nil)
	require.NoError(t, err)

	t.Cleanup(func() { _ = store.Close(db) })

	require.NoError(t, store.Migrate(context.Background(), db))

	return db
}
