package database_test

import (
	"context"
	"database/sql"
	"messageboard/internal/database"
	"messageboard/internal/models"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

// newTestDB opens a fresh sqlite file and creates the schema.
func newTestDB(t *testing.T) *sql.DB {
	t.Helper()
	sugar := zaptest.NewLogger(t).Sugar()

	cfg := &models.ConfigFile{
		SelfContained: true,
		SqlitePath:    filepath.Join(t.TempDir(), "messages.db"),
	}

	db, dialect, err := database.Open(cfg, sugar)
	require.NoError(t, err)
	require.Equal(t, database.SQLite, dialect)
	t.Cleanup(func() { db.Close() })

	err = database.Initialize(context.Background(), db, dialect, 1, 0, sugar)
	require.NoError(t, err)

	return db
}
