// Package bootstrap wires the configured storage backend to the task store,
// stats tracker and timer service shared by every front end.
package bootstrap

import (
	"fmt"
	"log/slog"

	"taskquest/internal/adapters/filesystem"
	"taskquest/internal/adapters/memory"
	"taskquest/internal/adapters/sqlite"
	"taskquest/internal/config"
	"taskquest/internal/ports"
	"taskquest/internal/store"
	"taskquest/internal/timer"
)

// Services bundles the components a front end works with
type Services struct {
	KV            ports.KeyValueStore
	Tasks         *store.TaskStore
	Stats         *store.StatsTracker
	Timers        *timer.Service
	PointsPerTask int
	Logger        *slog.Logger
}

// Open creates the services for cfg. Callers must Close the result.
func Open(cfg *config.Config, logger *slog.Logger) (*Services, error) {
	if logger == nil {
		logger = slog.Default()
	}

	kv, err := OpenKV(cfg)
	if err != nil {
		return nil, err
	}
	logger.Debug("storage opened", "backend", cfg.Backend, "data_dir", cfg.DataDir)

	return &Services{
		KV:            kv,
		Tasks:         store.NewTaskStore(kv, store.WithTaskLogger(logger)),
		Stats:         store.NewStatsTracker(kv, store.WithStatsLogger(logger)),
		Timers:        timer.NewService(),
		PointsPerTask: cfg.PointsPerTask,
		Logger:        logger,
	}, nil
}

// OpenKV opens the key-value backend selected by cfg
func OpenKV(cfg *config.Config) (ports.KeyValueStore, error) {
	switch cfg.Backend {
	case config.BackendSQLite:
		kv, err := sqlite.Open(cfg.DataDir)
		if err != nil {
			return nil, fmt.Errorf("failed to open sqlite store: %w", err)
		}
		return kv, nil
	case config.BackendFile:
		kv, err := filesystem.NewKVStore(cfg.DataDir)
		if err != nil {
			return nil, fmt.Errorf("failed to open file store: %w", err)
		}
		return kv, nil
	case config.BackendMemory:
		return memory.NewKVStore(), nil
	default:
		return nil, fmt.Errorf("unknown backend %q", cfg.Backend)
	}
}

// Reset clears tasks, stats and timers
func (s *Services) Reset() error {
	if err := s.Tasks.Reset(); err != nil {
		return err
	}
	if err := s.Stats.Reset(); err != nil {
		return err
	}
	s.Timers.Reset()
	return nil
}

// Close releases the storage backend
func (s *Services) Close() error {
	return s.KV.Close()
}
