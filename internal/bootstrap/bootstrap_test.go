package bootstrap

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"taskquest/internal/config"
	"taskquest/internal/domain"
)

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestOpen_Backends(t *testing.T) {
	for _, backend := range []string{config.BackendSQLite, config.BackendFile, config.BackendMemory} {
		t.Run(backend, func(t *testing.T) {
			cfg := &config.Config{DataDir: t.TempDir(), Backend: backend, PointsPerTask: 50}

			svc, err := Open(cfg, quietLogger())
			require.NoError(t, err)
			defer svc.Close()

			task, err := svc.Tasks.Add(domain.NewTask{Description: "Write Report", Deadline: "2025-01-10"})
			require.NoError(t, err)

			got, err := svc.Tasks.Get(task.ID)
			require.NoError(t, err)
			assert.Equal(t, "Write Report", got.Description)
			assert.Equal(t, 50, svc.PointsPerTask)
		})
	}
}

func TestOpen_FileBackendWritesDocuments(t *testing.T) {
	dir := t.TempDir()
	svc, err := Open(&config.Config{DataDir: dir, Backend: config.BackendFile}, quietLogger())
	require.NoError(t, err)
	defer svc.Close()

	_, err = svc.Tasks.Add(domain.NewTask{Description: "Upload Files", Deadline: "2025-01-11"})
	require.NoError(t, err)

	_, err = os.Stat(filepath.Join(dir, "tasks.json"))
	assert.NoError(t, err)
}

func TestOpen_UnknownBackend(t *testing.T) {
	_, err := Open(&config.Config{DataDir: t.TempDir(), Backend: "redis"}, quietLogger())
	assert.Error(t, err)
}

func TestServices_Reset(t *testing.T) {
	svc, err := Open(&config.Config{Backend: config.BackendMemory}, quietLogger())
	require.NoError(t, err)
	defer svc.Close()

	task, _ := svc.Tasks.Add(domain.NewTask{Description: "Project Work", Deadline: "2025-01-09"})
	svc.Timers.Start(task.ID)
	_, _ = svc.Stats.RecordCompletion(120)

	require.NoError(t, svc.Reset())

	tasks, _ := svc.Tasks.List()
	assert.Empty(t, tasks)
	stats, _ := svc.Stats.Current()
	assert.Equal(t, domain.DefaultStats(), stats)
	assert.Empty(t, svc.Timers.Running())
}
