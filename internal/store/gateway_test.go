package store

import (
	"bytes"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"taskquest/internal/adapters/memory"
	"taskquest/internal/domain"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type failingKV struct{}

func (failingKV) Get(string) ([]byte, bool, error) { return nil, false, errors.New("disk gone") }
func (failingKV) Set(string, []byte) error         { return errors.New("disk gone") }
func (failingKV) Close() error                     { return nil }

func TestLoad_MissingKeyReturnsDefault(t *testing.T) {
	kv := memory.NewKVStore()

	got := Load(kv, discardLogger(), StatsKey, domain.DefaultStats())
	assert.Equal(t, domain.DefaultStats(), got)
}

func TestSaveLoad_RoundTrip(t *testing.T) {
	kv := memory.NewKVStore()
	log := discardLogger()

	tasks := []domain.Task{
		{ID: "1", Description: "Write Report", Deadline: "2025-01-10", Urgency: domain.RatingHigh, Importance: domain.RatingMedium},
		{ID: "2", Description: "Upload Files", Deadline: "2025-01-11", Urgency: domain.RatingLow, Importance: domain.RatingLow, Completed: true},
	}
	stats := domain.Stats{Points: 150, Level: 2, Streak: 3, LastCompletedDate: "2025-01-09"}

	require.NoError(t, Save(kv, TasksKey, tasks))
	require.NoError(t, Save(kv, StatsKey, stats))

	assert.Equal(t, tasks, Load(kv, log, TasksKey, []domain.Task{}))
	assert.Equal(t, stats, Load(kv, log, StatsKey, domain.DefaultStats()))
}

func TestSave_UsesDocumentedFieldNames(t *testing.T) {
	kv := memory.NewKVStore()
	require.NoError(t, Save(kv, StatsKey, domain.Stats{Points: 50, Level: 1, Streak: 1, LastCompletedDate: "2025-01-10"}))
	require.NoError(t, Save(kv, TasksKey, []domain.Task{{ID: "x", Description: "d", Deadline: "2025-01-10", Urgency: "Low", Importance: "High"}}))

	raw, found, err := kv.Get(StatsKey)
	require.NoError(t, err)
	require.True(t, found)
	assert.JSONEq(t, `{"points":50,"level":1,"streak":1,"lastCompletedDate":"2025-01-10"}`, string(raw))

	raw, _, _ = kv.Get(TasksKey)
	assert.JSONEq(t,
		`[{"id":"x","description":"d","deadline":"2025-01-10","urgency":"Low","importance":"High","completed":false}]`,
		string(raw))
}

func TestLoad_CorruptJSONFallsBackAndLogs(t *testing.T) {
	kv := memory.NewKVStore()
	require.NoError(t, kv.Set(TasksKey, []byte(`[{"id":`)))

	var logBuf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&logBuf, nil))

	got := Load(kv, logger, TasksKey, []domain.Task{})
	assert.Empty(t, got)
	assert.Contains(t, logBuf.String(), "persisted state corrupt")
	assert.Contains(t, logBuf.String(), "key=tasks")
}

func TestLoad_ReadErrorFallsBack(t *testing.T) {
	got := Load(failingKV{}, discardLogger(), StatsKey, domain.DefaultStats())
	assert.Equal(t, domain.DefaultStats(), got)
}

func TestSave_PropagatesWriteError(t *testing.T) {
	err := Save(failingKV{}, StatsKey, domain.DefaultStats())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to save userStats")
}
