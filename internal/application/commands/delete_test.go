package commands

import (
	"context"
	"errors"
	"testing"

	"taskquest/internal/application"
	"taskquest/internal/timer"
)

func TestDeleteCommand_Validate(t *testing.T) {
	if err := (&DeleteCommand{}).Validate(); err == nil {
		t.Error("expected error for empty ID")
	}
	if err := (&DeleteCommand{ID: "abc"}).Validate(); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestDeleteCommand_RemovesTaskAndTimer(t *testing.T) {
	f := newFixture(t)
	keep := f.add(t, "Project Work")
	gone := f.add(t, "Write Report")
	f.timers.Start(gone.ID)
	f.timers.Tick(gone.ID)

	result, err := NewDeleteCommand(f.tasks, f.timers, gone.ID).Execute(context.Background())
	if err != nil {
		t.Fatalf("Execute failed: %v", err)
	}
	if result.DeletedID != gone.ID {
		t.Errorf("expected deleted ID %s, got %s", gone.ID, result.DeletedID)
	}

	tasks, _ := f.tasks.List()
	if len(tasks) != 1 || tasks[0].ID != keep.ID {
		t.Errorf("unexpected remaining tasks %+v", tasks)
	}
	if f.timers.State(gone.ID) != timer.NotStarted {
		t.Error("expected timer slot to be dropped")
	}
}

func TestDeleteCommand_NotFound(t *testing.T) {
	f := newFixture(t)

	_, err := NewDeleteCommand(f.tasks, nil, "missing").Execute(context.Background())
	if !errors.Is(err, application.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}
