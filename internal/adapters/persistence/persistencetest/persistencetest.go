// Package persistencetest provides in-memory SQLite databases seeded with sample quotes.
package persistencetest

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/jsamuelsen/quotes-service/internal/adapters/persistence"
	"github.com/jsamuelsen/quotes-service/internal/platform/config"
)

// Config returns database settings for a private in-memory SQLite database.
func Config() *config.DatabaseConfig {
	return &config.DatabaseConfig{
		Driver:          "sqlite",
		DSN:             fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString()),
		MaxOpenConns:    1,
		MaxIdleConns:    1,
		ConnMaxLifetime: time.Hour,
		LogLevel:        "silent",
	}
}

// NewDB opens an empty, migrated database that is closed when tb finishes.
func NewDB(tb testing.TB) *gorm.DB {
	tb.Helper()

	ctx := context.Background()

	db, err := persistence.Open(ctx, Config(), nil)
	require.NoError(tb, err)

	tb.Cleanup(func() { _ = persistence.Close(db) })

	require.NoError(tb, persistence.Migrate(ctx, db))

	return db
}

// NewSeededDB opens a migrated database loaded with persistence.Sample.
func NewSeededDB(tb testing.TB) *gorm.DB {
	tb.Helper()

	db := NewDB(tb)
	require.NoError(tb, persistence.Seed(context.Background(), db, persistence.Sample()))

	return db
}
