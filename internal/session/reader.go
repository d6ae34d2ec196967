package session

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
	_ "modernc.org/sqlite"

	"github.com/itsmostafa/ralphw/internal/logging"
)

// DefaultStorePath returns the path of the kiro-cli conversation store,
// honoring XDG_DATA_HOME.
func DefaultStorePath() (string, error) {
	if dir := os.Getenv("XDG_DATA_HOME"); dir != "" {
		return filepath.Join(dir, "kiro-cli", "data.sqlite3"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to resolve home directory: %w", err)
	}
	return filepath.Join(home, ".local", "share", "kiro-cli", "data.sqlite3"), nil
}

// Reader provides read-only access to the kiro-cli conversation store.
// Conversations are keyed by the absolute path of the working directory they
// were recorded in; the newest record wins.
type Reader struct {
	Path   string // store file location
	Logger zerolog.Logger
}

// NewReader creates a Reader over the store file at path.
func NewReader(path string) *Reader {
	return &Reader{Path: path, Logger: logging.Component("session")}
}

// Latest returns the most recent conversation recorded for workDir, or
// nil if none exists. Store corruption and read failures are logged as
// warnings and reported as absence; they never fail the caller.
func (r *Reader) Latest(workDir string) (*Session, error) {
	key, err := filepath.Abs(workDir)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve working directory: %w", err)
	}

	if _, err := os.Stat(r.Path); errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}

	db, err := sql.Open("sqlite", r.Path)
	if err != nil {
		r.Logger.Warn().Err(err).Str("store", r.Path).Msg("could not open conversation store")
		return nil, nil
	}
	defer db.Close()

	var value string
	err = db.QueryRow(
		`SELECT value FROM conversations_v2
		 WHERE key = ?
		 ORDER BY created_at DESC
		 LIMIT 1`,
		key,
	).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		r.Logger.Warn().Err(err).Str("store", r.Path).Msg("could not read conversation store")
		return nil, nil
	}

	var sess Session
	if err := json.Unmarshal([]byte(value), &sess); err != nil {
		r.Logger.Warn().Err(err).Msg("could not parse conversation payload")
		return nil, nil
	}
	return &sess, nil
}
