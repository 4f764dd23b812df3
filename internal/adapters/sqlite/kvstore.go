package sqlite

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"taskquest/internal/ports"

	_ "modernc.org/sqlite"
)

const schemaVersion = "1"

// DatabaseName is the file created inside the data directory
const DatabaseName = "taskquest.db"

// KVStore implements ports.KeyValueStore using SQLite
type KVStore struct {
	db     *sql.DB
	dbPath string
}

// Ensure KVStore implements KeyValueStore
var _ ports.KeyValueStore = (*KVStore)(nil)

// Open creates or opens the database inside dataDir
func Open(dataDir string) (*KVStore, error) {
	// Expand ~ in path
	if len(dataDir) > 0 && dataDir[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("failed to get home directory: %w", err)
		}
		dataDir = filepath.Join(home, dataDir[1:])
	}

	if err := os.MkdirAll(dataDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}

	return OpenFile(filepath.Join(dataDir, DatabaseName))
}

// OpenFile opens the database at an explicit path
func OpenFile(dbPath string) (*KVStore, error) {
	db, err := sql.Open("sqlite", dbPath+"?_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// Pragmas + schema in single batch
	_, err = db.Exec(`
		PRAGMA synchronous = NORMAL;
		PRAGMA busy_timeout = 5000;

		CREATE TABLE IF NOT EXISTS kv (
			key TEXT PRIMARY KEY,
			value TEXT NOT NULL,
			updated_at INTEGER NOT NULL
		);
		CREATE TABLE IF NOT EXISTS meta (
			key TEXT PRIMARY KEY,
			value TEXT NOT NULL
		);
	`)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to setup database: %w", err)
	}

	if _, err := db.Exec(
		`INSERT OR REPLACE INTO meta (key, value) VALUES ('schema_version', ?)`,
		schemaVersion,
	); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to update metadata: %w", err)
	}

	return &KVStore{db: db, dbPath: dbPath}, nil
}

// Path returns the database file path
func (s *KVStore) Path() string {
	return s.dbPath
}

// Close closes the database connection
func (s *KVStore) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// Get retrieves the document stored under key
func (s *KVStore) Get(key string) ([]byte, bool, error) {
	var value string
	err := s.db.QueryRow(`SELECT value FROM kv WHERE key = ?`, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("failed to read %s: %w", key, err)
	}
	return []byte(value), true, nil
}

// Set inserts or replaces the document stored under key
func (s *KVStore) Set(key string, value []byte) error {
	_, err := s.db.Exec(`
		INSERT INTO kv (key, value, updated_at) VALUES (?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at
	`, key, string(value), time.Now().Unix())
	if err != nil {
		return fmt.Errorf("failed to write %s: %w", key, err)
	}
	return nil
}

// SchemaVersion returns the schema version recorded in the database
func (s *KVStore) SchemaVersion() (string, error) {
	var version string
	err := s.db.QueryRow(`SELECT value FROM meta WHERE key = 'schema_version'`).Scan(&version)
	return version, err
}
