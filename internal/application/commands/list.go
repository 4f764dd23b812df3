package commands

import (
	"context"

	"taskquest/internal/domain"
	"taskquest/internal/ports"
)

// ListTasksCommand lists tasks in insertion order
type ListTasksCommand struct {
	repo ports.TaskRepository
	// PendingOnly skips completed tasks
	PendingOnly bool
}

// NewListTasksCommand creates a new ListTasksCommand
func NewListTasksCommand(repo ports.TaskRepository, pendingOnly bool) *ListTasksCommand {
	return &ListTasksCommand{
		repo:        repo,
		PendingOnly: pendingOnly,
	}
}

// Execute runs the list command
func (c *ListTasksCommand) Execute(ctx context.Context) ([]domain.Task, error) {
	tasks, err := c.repo.List()
	if err != nil {
		return nil, err
	}
	if !c.PendingOnly {
		return tasks, nil
	}

	pending := make([]domain.Task, 0, len(tasks))
	for _, t := range tasks {
		if !t.Completed {
			pending = append(pending, t)
		}
	}
	return pending, nil
}

// GetTaskCommand fetches a single task
type GetTaskCommand struct {
	repo ports.TaskRepository
	ID   string
}

// NewGetTaskCommand creates a new GetTaskCommand
func NewGetTaskCommand(repo ports.TaskRepository, id string) *GetTaskCommand {
	return &GetTaskCommand{repo: repo, ID: id}
}

// Execute runs the get command
func (c *GetTaskCommand) Execute(ctx context.Context) (*domain.Task, error) {
	return c.repo.Get(c.ID)
}
