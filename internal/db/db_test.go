package db_test

import (
	"io"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hichamcc/Memory-Training-Game/internal/db"
	"github.com/hichamcc/Memory-Training-Game/internal/logger"
)

func init() {
	logger.SetDefault(logger.New(logger.WithOutput(io.Discard), logger.WithLevel(logger.ERROR)))
}

func tableNames(t *testing.T, database *db.DB) map[string]bool {
	t.Helper()
	rows, err := database.Query(`SELECT name FROM sqlite_master WHERE type = 'table'`)
	require.NoError(t, err)
	defer rows.Close()

	names := map[string]bool{}
	for rows.Next() {
		var name string
		require.NoError(t, rows.Scan(&name))
		names[name] = true
	}
	require.NoError(t, rows.Err())
	return names
}

func TestOpen_AppliesMigrations(t *testing.T) {
	database, err := db.Open(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	defer database.Close()

	names := tableNames(t, database)
	assert.True(t, names["schema_migrations"])
	assert.True(t, names["high_scores"])
	assert.True(t, names["game_sessions"])
}

func TestOpen_MigrationsAreIdempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.db")

	first, err := db.Open(path)
	require.NoError(t, err)
	require.NoError(t, first.Close())

	second, err := db.Open(path)
	require.NoError(t, err)
	defer second.Close()

	var applied int
	require.NoError(t, second.QueryRow(`SELECT COUNT(*) FROM schema_migrations`).Scan(&applied))
	assert.Equal(t, 1, applied, "each migration records exactly one version row")
}
