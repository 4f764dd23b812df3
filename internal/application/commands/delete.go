package commands

import (
	"context"
	"fmt"
	"strings"

	"taskquest/internal/application"
	"taskquest/internal/ports"
)

// DeleteResult contains the result of a delete operation
type DeleteResult struct {
	DeletedID string
	Message   string
}

// DeleteCommand deletes a task by ID and drops its timer
type DeleteCommand struct {
	repo   ports.TaskRepository
	timers ports.TimerControl
	ID     string
}

// NewDeleteCommand creates a new DeleteCommand. timers may be nil.
func NewDeleteCommand(repo ports.TaskRepository, timers ports.TimerControl, id string) *DeleteCommand {
	return &DeleteCommand{
		repo:   repo,
		timers: timers,
		ID:     id,
	}
}

// Validate checks if the delete operation is valid
func (c *DeleteCommand) Validate() error {
	return application.ValidateRequired("taskID", c.ID)
}

// Execute runs the delete command
func (c *DeleteCommand) Execute(ctx context.Context) (*DeleteResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	id := strings.TrimSpace(c.ID)
	task, err := c.repo.Get(id)
	if err != nil {
		return nil, err
	}

	if err := c.repo.Delete(id); err != nil {
		return nil, fmt.Errorf("failed to delete %s: %w", id, err)
	}
	if c.timers != nil {
		c.timers.Stop(id)
		c.timers.Forget(id)
	}

	return &DeleteResult{
		DeletedID: id,
		Message:   fmt.Sprintf("Deleted task: %s", task.Description),
	}, nil
}
