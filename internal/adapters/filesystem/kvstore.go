package filesystem

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"taskquest/internal/ports"
)

// Keys become file names, so they are restricted to a safe alphabet
var keyPattern = regexp.MustCompile(`^[A-Za-z0-9_.-]+$`)

// KVStore implements ports.KeyValueStore as one JSON file per key
type KVStore struct {
	dir string
}

// Ensure KVStore implements KeyValueStore
var _ ports.KeyValueStore = (*KVStore)(nil)

// NewKVStore creates a store rooted at dir, creating the directory if needed
func NewKVStore(dir string) (*KVStore, error) {
	// Expand ~ to home directory
	if strings.HasPrefix(dir, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("failed to get home directory: %w", err)
		}
		dir = filepath.Join(home, dir[1:])
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}
	return &KVStore{dir: dir}, nil
}

// Dir returns the directory holding the documents
func (s *KVStore) Dir() string {
	return s.dir
}

// Get reads <dir>/<key>.json
func (s *KVStore) Get(key string) ([]byte, bool, error) {
	path, err := s.pathFor(key)
	if err != nil {
		return nil, false, err
	}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("failed to read %s: %w", key, err)
	}
	return data, true, nil
}

// Set replaces <dir>/<key>.json by writing a temp file and renaming it over
// the old one, so readers never see a half-written document
func (s *KVStore) Set(key string, value []byte) error {
	path, err := s.pathFor(key)
	if err != nil {
		return err
	}

	tmp, err := os.CreateTemp(s.dir, "."+key+"-*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create temp file for %s: %w", key, err)
	}
	tmpPath := tmp.Name()

	if _, err := tmp.Write(value); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return fmt.Errorf("failed to write %s: %w", key, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("failed to write %s: %w", key, err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("failed to replace %s: %w", key, err)
	}
	return nil
}

// Close is a no-op; files are closed after every operation
func (s *KVStore) Close() error {
	return nil
}

func (s *KVStore) pathFor(key string) (string, error) {
	if !keyPattern.MatchString(key) {
		return "", fmt.Errorf("invalid key %q", key)
	}
	return filepath.Join(s.dir, key+".json"), nil
}
