package commands

import (
	"context"
	"fmt"
	"strings"

	"taskquest/internal/application"
	"taskquest/internal/domain"
	"taskquest/internal/ports"
)

// CompleteResult contains the result of completing a task
type CompleteResult struct {
	Task           *domain.Task
	Stats          domain.Stats
	PointsAwarded  int
	ElapsedSeconds int
	LeveledUp      bool
	Message        string
}

// CompleteTaskCommand runs the completion workflow: stop the task's timer,
// mark the task completed (it stays in the list, frozen) and award points.
type CompleteTaskCommand struct {
	tasks  ports.TaskRepository
	stats  ports.StatsRepository
	timers ports.TimerControl
	ID     string
	Points int
}

// NewCompleteTaskCommand creates a new CompleteTaskCommand. timers may be nil.
func NewCompleteTaskCommand(tasks ports.TaskRepository, stats ports.StatsRepository, timers ports.TimerControl, id string, points int) *CompleteTaskCommand {
	return &CompleteTaskCommand{
		tasks:  tasks,
		stats:  stats,
		timers: timers,
		ID:     id,
		Points: points,
	}
}

// Validate checks if the complete operation is valid
func (c *CompleteTaskCommand) Validate() error {
	if err := application.ValidateRequired("taskID", c.ID); err != nil {
		return err
	}
	if c.Points < 0 {
		return &application.ValidationError{
			Field:   "points",
			Message: "points must not be negative",
		}
	}
	return nil
}

// Execute runs the complete command
func (c *CompleteTaskCommand) Execute(ctx context.Context) (*CompleteResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	id := strings.TrimSpace(c.ID)
	current, err := c.tasks.Get(id)
	if err != nil {
		return nil, err
	}
	if current.Completed {
		return nil, &application.TaskError{ID: id, Err: application.ErrTaskCompleted}
	}

	elapsed := 0
	if c.timers != nil {
		c.timers.Stop(id)
		elapsed = c.timers.Elapsed(id)
	}

	done := true
	task, err := c.tasks.Edit(id, domain.TaskPatch{Completed: &done})
	if err != nil {
		return nil, fmt.Errorf("failed to complete task: %w", err)
	}

	before, err := c.stats.Current()
	if err != nil {
		return nil, fmt.Errorf("failed to read stats: %w", err)
	}
	after, err := c.stats.RecordCompletion(c.Points)
	if err != nil {
		// reopen the task so a retry can still award the points
		undone := false
		if _, undoErr := c.tasks.Edit(id, domain.TaskPatch{Completed: &undone}); undoErr != nil {
			return nil, fmt.Errorf("failed to record completion: %w (task left completed: %v)", err, undoErr)
		}
		return nil, fmt.Errorf("failed to record completion: %w", err)
	}

	return &CompleteResult{
		Task:           task,
		Stats:          after,
		PointsAwarded:  c.Points,
		ElapsedSeconds: elapsed,
		LeveledUp:      after.Level > before.Level,
		Message: fmt.Sprintf("Completed %s: +%d points (level %d, streak %d)",
			task.Description, c.Points, after.Level, after.Streak),
	}, nil
}
