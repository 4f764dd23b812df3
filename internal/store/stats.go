package store

import (
	"log/slog"
	"time"

	"taskquest/internal/application"
	"taskquest/internal/domain"
	"taskquest/internal/ports"
)

// StatsTracker implements ports.StatsRepository as a JSON object under StatsKey
type StatsTracker struct {
	kv     ports.KeyValueStore
	logger *slog.Logger
	now    func() time.Time
	loc    *time.Location
}

// Ensure StatsTracker implements StatsRepository
var _ ports.StatsRepository = (*StatsTracker)(nil)

// StatsOption configures a StatsTracker
type StatsOption func(*StatsTracker)

// WithClock sets the time source used to determine "today"
func WithClock(now func() time.Time) StatsOption {
	return func(t *StatsTracker) {
		t.now = now
	}
}

// WithLocation sets the timezone calendar dates are taken in
func WithLocation(loc *time.Location) StatsOption {
	return func(t *StatsTracker) {
		t.loc = loc
	}
}

// WithStatsLogger sets the logger used for corruption warnings
func WithStatsLogger(logger *slog.Logger) StatsOption {
	return func(t *StatsTracker) {
		t.logger = logger
	}
}

// NewStatsTracker creates a stats tracker over the given key-value store
func NewStatsTracker(kv ports.KeyValueStore, opts ...StatsOption) *StatsTracker {
	t := &StatsTracker{
		kv:     kv,
		logger: slog.Default(),
		now:    time.Now,
		loc:    time.Local,
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Current returns the stored stats with the level recomputed from points
func (t *StatsTracker) Current() (domain.Stats, error) {
	return Load(t.kv, t.logger, StatsKey, domain.DefaultStats()).Normalize(), nil
}

// RecordCompletion awards points and advances the daily streak
func (t *StatsTracker) RecordCompletion(points int) (domain.Stats, error) {
	if points < 0 {
		return domain.Stats{}, &application.ValidationError{
			Field:   "points",
			Message: "points must not be negative",
		}
	}

	current, err := t.Current()
	if err != nil {
		return domain.Stats{}, err
	}
	next := current.WithCompletion(points, t.now().In(t.loc))
	if err := Save(t.kv, StatsKey, next); err != nil {
		return current, err
	}

	t.logger.Debug("completion recorded",
		"points", next.Points, "level", next.Level, "streak", next.Streak)
	return next, nil
}

// Reset persists the default stats
func (t *StatsTracker) Reset() error {
	return Save(t.kv, StatsKey, domain.DefaultStats())
}
