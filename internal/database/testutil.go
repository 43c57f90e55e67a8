package database

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// SetupTestDB creates an in-memory SQLite database for testing
func SetupTestDB(t *testing.T) *DB {
	t.Helper()

	// Create in-memory SQLite database
	db, err := NewSQLite(":memory:")
	require.NoError(t, err, "Failed to create test database")

	// Run migrations to create tables
	err = db.Migrate()
	require.NoError(t, err, "Failed to run migrations on test database")

	return db
}

// CleanupTestDB closes the test database
func CleanupTestDB(t *testing.T, db *DB) {
	t.Helper()

	err := db.Close()
	require.NoError(t, err, "Failed to close test database")
}
