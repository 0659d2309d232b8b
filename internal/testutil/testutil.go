package testutil

import (
	"io"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/hichamcc/Memory-Training-Game/internal/db"
	"github.com/hichamcc/Memory-Training-Game/internal/logger"
)

// NewTestDB creates an in-memory SQLite database with all migrations
// applied. Logging is silenced so test output stays readable.
func NewTestDB(t *testing.T) *db.DB {
	t.Helper()

	logger.SetDefault(logger.New(logger.WithOutput(io.Discard), logger.WithLevel(logger.ERROR)))

	database, err := db.Open(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = database.Close() })
	return database
}

// MustClose closes a resource and fails the test on error.
func MustClose(t *testing.T, closer interface{ Close() error }) {
	require.NoError(t, closer.Close())
}
