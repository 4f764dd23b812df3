package commands

import (
	"context"
	"fmt"
	"strings"

	"taskquest/internal/application"
	"taskquest/internal/domain"
	"taskquest/internal/ports"
)

// EditTaskResult contains the result of an edit
type EditTaskResult struct {
	Task    *domain.Task
	Message string
}

// EditTaskCommand overwrites selected fields of a task in place.
// Nil fields are left unchanged.
type EditTaskCommand struct {
	repo        ports.TaskRepository
	ID          string
	Description *string
	Deadline    *string
	Urgency     *string
	Importance  *string
}

// NewEditTaskCommand creates a new EditTaskCommand
func NewEditTaskCommand(repo ports.TaskRepository, id string) *EditTaskCommand {
	return &EditTaskCommand{
		repo: repo,
		ID:   id,
	}
}

// SetDescription sets the new description
func (c *EditTaskCommand) SetDescription(v string) *EditTaskCommand {
	c.Description = &v
	return c
}

// SetDeadline sets the new deadline
func (c *EditTaskCommand) SetDeadline(v string) *EditTaskCommand {
	c.Deadline = &v
	return c
}

// SetUrgency sets the new urgency
func (c *EditTaskCommand) SetUrgency(v string) *EditTaskCommand {
	c.Urgency = &v
	return c
}

// SetImportance sets the new importance
func (c *EditTaskCommand) SetImportance(v string) *EditTaskCommand {
	c.Importance = &v
	return c
}

// Validate checks the raw input and returns the patch to apply
func (c *EditTaskCommand) Validate() (domain.TaskPatch, error) {
	var patch domain.TaskPatch

	if err := application.ValidateRequired("taskID", c.ID); err != nil {
		return patch, err
	}

	if c.Description != nil {
		if err := application.ValidateRequired("description", *c.Description); err != nil {
			return patch, err
		}
		patch.Description = c.Description
	}
	if c.Deadline != nil {
		if err := application.ValidateDate("deadline", *c.Deadline); err != nil {
			return patch, err
		}
		patch.Deadline = c.Deadline
	}
	if c.Urgency != nil {
		r, err := application.ParseRatingField("urgency", *c.Urgency)
		if err != nil {
			return patch, err
		}
		patch.Urgency = &r
	}
	if c.Importance != nil {
		r, err := application.ParseRatingField("importance", *c.Importance)
		if err != nil {
			return patch, err
		}
		patch.Importance = &r
	}

	if patch.IsEmpty() {
		return patch, &application.ValidationError{
			Field:   "fields",
			Message: "nothing to change",
		}
	}
	return patch, nil
}

// Execute runs the edit command. Completed tasks are frozen.
func (c *EditTaskCommand) Execute(ctx context.Context) (*EditTaskResult, error) {
	patch, err := c.Validate()
	if err != nil {
		return nil, err
	}

	id := strings.TrimSpace(c.ID)
	current, err := c.repo.Get(id)
	if err != nil {
		return nil, err
	}
	if current.Completed {
		return nil, &application.TaskError{ID: id, Err: application.ErrTaskCompleted}
	}

	task, err := c.repo.Edit(id, patch)
	if err != nil {
		return nil, fmt.Errorf("failed to edit task: %w", err)
	}

	return &EditTaskResult{
		Task:    task,
		Message: fmt.Sprintf("Updated task: %s", task.Description),
	}, nil
}
