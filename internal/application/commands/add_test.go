package commands

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"strings"
	"testing"
	"time"

	"taskquest/internal/adapters/memory"
	"taskquest/internal/application"
	"taskquest/internal/domain"
	"taskquest/internal/store"
	"taskquest/internal/timer"
)

type fixture struct {
	tasks  *store.TaskStore
	stats  *store.StatsTracker
	timers *timer.Service
	kv     *memory.KVStore
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	kv := memory.NewKVStore()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	now := time.Date(2025, time.January, 10, 9, 0, 0, 0, time.UTC)
	return &fixture{
		tasks: store.NewTaskStore(kv, store.WithTaskLogger(logger)),
		stats: store.NewStatsTracker(kv,
			store.WithStatsLogger(logger),
			store.WithClock(func() time.Time { return now }),
			store.WithLocation(time.UTC)),
		timers: timer.NewService(),
		kv:     kv,
	}
}

func (f *fixture) add(t *testing.T, description string) *domain.Task {
	t.Helper()
	result, err := NewAddTaskCommand(f.tasks, description, "2025-01-10", "High", "Medium").Execute(context.Background())
	if err != nil {
		t.Fatalf("add %q failed: %v", description, err)
	}
	return result.Task
}

func TestAddTaskCommand_Validate(t *testing.T) {
	tests := []struct {
		name        string
		description string
		deadline    string
		urgency     string
		importance  string
		wantErr     bool
		errMsg      string
	}{
		{
			name:        "valid task",
			description: "Write Report",
			deadline:    "2025-01-10",
			urgency:     "High",
			importance:  "Medium",
		},
		{
			name:        "ratings default to low",
			description: "Write Report",
			deadline:    "2025-01-10",
		},
		{
			name:     "empty description",
			deadline: "2025-01-10",
			wantErr:  true,
			errMsg:   "description is required",
		},
		{
			name:        "empty deadline",
			description: "Write Report",
			wantErr:     true,
			errMsg:      "deadline is required",
		},
		{
			name:        "malformed deadline",
			description: "Write Report",
			deadline:    "next friday",
			wantErr:     true,
			errMsg:      "must be a date",
		},
		{
			name:        "unknown urgency",
			description: "Write Report",
			deadline:    "2025-01-10",
			urgency:     "Critical",
			wantErr:     true,
			errMsg:      "urgency must be Low, Medium or High",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd := &AddTaskCommand{
				Description: tt.description,
				Deadline:    tt.deadline,
				Urgency:     tt.urgency,
				Importance:  tt.importance,
			}
			_, err := cmd.Validate()

			if tt.wantErr {
				if err == nil {
					t.Errorf("expected error containing %q, got nil", tt.errMsg)
					return
				}
				if !strings.Contains(err.Error(), tt.errMsg) {
					t.Errorf("expected error containing %q, got %q", tt.errMsg, err.Error())
				}
				if !application.IsValidation(err) {
					t.Errorf("expected ValidationError, got %T", err)
				}
			} else if err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}

func TestAddTaskCommand_Execute(t *testing.T) {
	f := newFixture(t)

	result, err := NewAddTaskCommand(f.tasks, "  Write Report ", "2025-01-10", "high", "medium").Execute(context.Background())
	if err != nil {
		t.Fatalf("Execute failed: %v", err)
	}

	task := result.Task
	if task.Description != "Write Report" || task.Deadline != "2025-01-10" {
		t.Errorf("unexpected task %+v", task)
	}
	if task.Urgency != domain.RatingHigh || task.Importance != domain.RatingMedium {
		t.Errorf("ratings not normalized: %+v", task)
	}
	if task.Completed {
		t.Error("new task must not be completed")
	}
	if !strings.Contains(result.Message, "Write Report") {
		t.Errorf("unexpected message %q", result.Message)
	}
}

func TestAddTaskCommand_InvalidLeavesListUnchanged(t *testing.T) {
	f := newFixture(t)
	f.add(t, "Project Work")

	_, err := NewAddTaskCommand(f.tasks, "", "2025-01-10", "", "").Execute(context.Background())
	var valErr *application.ValidationError
	if !errors.As(err, &valErr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}

	tasks, _ := f.tasks.List()
	if len(tasks) != 1 {
		t.Errorf("expected 1 task, got %d", len(tasks))
	}
}
