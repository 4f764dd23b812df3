package store

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"taskquest/internal/adapters/memory"
	"taskquest/internal/application"
	"taskquest/internal/domain"
)

type fakeClock struct {
	now time.Time
}

func (c *fakeClock) Now() time.Time { return c.now }

func newTestTracker(t *testing.T, start time.Time) (*StatsTracker, *fakeClock, *memory.KVStore) {
	t.Helper()
	kv := memory.NewKVStore()
	clock := &fakeClock{now: start}
	tracker := NewStatsTracker(kv,
		WithClock(clock.Now),
		WithLocation(time.UTC),
		WithStatsLogger(discardLogger()),
	)
	return tracker, clock, kv
}

func TestStatsTracker_DefaultsWhenEmpty(t *testing.T) {
	tracker, _, _ := newTestTracker(t, time.Date(2025, 1, 10, 9, 0, 0, 0, time.UTC))

	stats, err := tracker.Current()
	require.NoError(t, err)
	assert.Equal(t, domain.Stats{Points: 0, Level: 1, Streak: 0}, stats)
}

func TestStatsTracker_SameDayIsIdempotentForStreak(t *testing.T) {
	tracker, clock, _ := newTestTracker(t, time.Date(2025, 1, 10, 9, 0, 0, 0, time.UTC))

	first, err := tracker.RecordCompletion(50)
	require.NoError(t, err)
	assert.Equal(t, 1, first.Streak)

	clock.now = clock.now.Add(6 * time.Hour)
	second, err := tracker.RecordCompletion(50)
	require.NoError(t, err)
	assert.Equal(t, first.Streak, second.Streak)
	assert.Equal(t, 100, second.Points)
	assert.Equal(t, 2, second.Level)
}

func TestStatsTracker_ConsecutiveDaysAndGap(t *testing.T) {
	tracker, clock, _ := newTestTracker(t, time.Date(2025, 1, 10, 22, 0, 0, 0, time.UTC))

	for want := 1; want <= 3; want++ {
		stats, err := tracker.RecordCompletion(50)
		require.NoError(t, err)
		assert.Equal(t, want, stats.Streak)
		clock.now = clock.now.AddDate(0, 0, 1)
	}

	// clock is now on day 4; skip it and complete on day 5
	clock.now = clock.now.AddDate(0, 0, 1)
	stats, err := tracker.RecordCompletion(50)
	require.NoError(t, err)
	assert.Equal(t, 1, stats.Streak)
	assert.Equal(t, "2025-01-14", stats.LastCompletedDate)
}

func TestStatsTracker_LevelFollowsPoints(t *testing.T) {
	tracker, clock, _ := newTestTracker(t, time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC))

	awards := []int{50, 50, 30, 0, 120, 75, 1}
	for _, pts := range awards {
		stats, err := tracker.RecordCompletion(pts)
		require.NoError(t, err)
		assert.Equal(t, stats.Points/100+1, stats.Level)
		clock.now = clock.now.Add(time.Hour)
	}

	stats, _ := tracker.Current()
	assert.Equal(t, 326, stats.Points)
	assert.Equal(t, 4, stats.Level)
}

func TestStatsTracker_PersistsEveryCompletion(t *testing.T) {
	tracker, _, kv := newTestTracker(t, time.Date(2025, 1, 10, 9, 0, 0, 0, time.UTC))

	_, err := tracker.RecordCompletion(50)
	require.NoError(t, err)

	reopened := NewStatsTracker(kv, WithStatsLogger(discardLogger()))
	stats, err := reopened.Current()
	require.NoError(t, err)
	assert.Equal(t, 50, stats.Points)
	assert.Equal(t, "2025-01-10", stats.LastCompletedDate)
}

func TestStatsTracker_CorrectsStoredLevel(t *testing.T) {
	tracker, _, kv := newTestTracker(t, time.Date(2025, 1, 10, 9, 0, 0, 0, time.UTC))
	require.NoError(t, kv.Set(StatsKey, []byte(`{"points":250,"level":40,"streak":2}`)))

	stats, err := tracker.Current()
	require.NoError(t, err)
	assert.Equal(t, 3, stats.Level)
}

func TestStatsTracker_CorruptStatsResetToDefault(t *testing.T) {
	tracker, _, kv := newTestTracker(t, time.Date(2025, 1, 10, 9, 0, 0, 0, time.UTC))
	require.NoError(t, kv.Set(StatsKey, []byte(`{"points":`)))

	stats, err := tracker.RecordCompletion(50)
	require.NoError(t, err)
	assert.Equal(t, domain.Stats{Points: 50, Level: 1, Streak: 1, LastCompletedDate: "2025-01-10"}, stats)
}

func TestStatsTracker_RejectsNegativePoints(t *testing.T) {
	tracker, _, _ := newTestTracker(t, time.Date(2025, 1, 10, 9, 0, 0, 0, time.UTC))

	_, err := tracker.RecordCompletion(-5)
	assert.True(t, application.IsValidation(err))

	stats, _ := tracker.Current()
	assert.Equal(t, 0, stats.Points)
	assert.Equal(t, 0, stats.Streak)
}

func TestStatsTracker_Reset(t *testing.T) {
	tracker, _, _ := newTestTracker(t, time.Date(2025, 1, 10, 9, 0, 0, 0, time.UTC))
	_, _ = tracker.RecordCompletion(500)

	require.NoError(t, tracker.Reset())

	stats, _ := tracker.Current()
	assert.Equal(t, domain.DefaultStats(), stats)
}

func TestStatsTracker_UsesLocalCalendarDate(t *testing.T) {
	// 23:30 UTC on Jan 10 is already Jan 11 in UTC+2
	loc := time.FixedZone("UTC+2", 2*60*60)
	kv := memory.NewKVStore()
	tracker := NewStatsTracker(kv,
		WithClock(func() time.Time { return time.Date(2025, 1, 10, 23, 30, 0, 0, time.UTC) }),
		WithLocation(loc),
		WithStatsLogger(discardLogger()),
	)

	stats, err := tracker.RecordCompletion(10)
	require.NoError(t, err)
	assert.Equal(t, "2025-01-11", stats.LastCompletedDate)
}

func TestStatsTracker_StorageFailures(t *testing.T) {
	tracker := NewStatsTracker(failingKV{},
		WithClock(func() time.Time { return time.Date(2025, 1, 10, 9, 0, 0, 0, time.UTC) }),
		WithLocation(time.UTC),
		WithStatsLogger(discardLogger()),
	)

	// unreadable stats fall back to defaults, the failed write is reported
	current, err := tracker.Current()
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultStats(), current)

	_, err = tracker.RecordCompletion(50)
	assert.ErrorContains(t, err, "disk gone")
}
