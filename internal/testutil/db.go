// Package testutil creates throwaway kiro-cli conversation stores for tests.
package testutil

import (
	"database/sql"
	"encoding/json"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"
)

// CreateStore creates an empty conversation store at path with the
// conversations_v2 schema kiro-cli uses.
func CreateStore(t *testing.T, path string) {
	t.Helper()

	db, err := sql.Open("sqlite", path)
	require.NoError(t, err)
	defer db.Close()

	_, err = db.Exec(`
		CREATE TABLE IF NOT EXISTS conversations_v2 (
			key TEXT NOT NULL,
			conversation_id TEXT NOT NULL,
			value TEXT NOT NULL,
			created_at INTEGER NOT NULL,
			updated_at INTEGER NOT NULL
		)`)
	require.NoError(t, err)
}

// InsertConversation serializes payload and inserts it for key with the given
// creation time, returning the generated conversation id.
func InsertConversation(t *testing.T, path, key string, createdAt int64, payload any) string {
	t.Helper()

	value, err := json.Marshal(payload)
	require.NoError(t, err)
	return InsertRawConversation(t, path, key, createdAt, string(value))
}

// InsertRawConversation inserts an arbitrary value string, letting tests seed
// corrupt payloads.
func InsertRawConversation(t *testing.T, path, key string, createdAt int64, value string) string {
	t.Helper()

	db, err := sql.Open("sqlite", path)
	require.NoError(t, err)
	defer db.Close()

	id := uuid.NewString()
	_, err = db.Exec(
		`INSERT INTO conversations_v2 (key, conversation_id, value, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?)`,
		key, id, value, createdAt, createdAt,
	)
	require.NoError(t, err)
	return id
}
