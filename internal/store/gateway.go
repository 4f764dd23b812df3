// Package store implements the task list and stats singleton on top of a
// key-value persistence gateway.
package store

import (
	"encoding/json"
	"fmt"
	"log/slog"

	"taskquest/internal/ports"
)

// Persisted document keys
const (
	TasksKey = "tasks"
	StatsKey = "userStats"
)

// Load returns the JSON document stored under key decoded as T.
// A missing key, a failed read or malformed JSON all yield def; the latter
// two are logged and never returned.
func Load[T any](kv ports.KeyValueStore, logger *slog.Logger, key string, def T) T {
	raw, found, err := kv.Get(key)
	if err != nil {
		logger.Warn("persisted state unreadable, using default", "key", key, "error", err)
		return def
	}
	if !found || len(raw) == 0 {
		return def
	}

	var value T
	if err := json.Unmarshal(raw, &value); err != nil {
		logger.Warn("persisted state corrupt, using default", "key", key, "error", err)
		return def
	}
	return value
}

// Save serializes value as JSON and overwrites whatever is stored under key
func Save(kv ports.KeyValueStore, key string, value any) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", key, err)
	}
	if err := kv.Set(key, raw); err != nil {
		return fmt.Errorf("failed to save %s: %w", key, err)
	}
	return nil
}
