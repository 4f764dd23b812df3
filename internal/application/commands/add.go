package commands

import (
	"context"
	"fmt"
	"strings"

	"taskquest/internal/application"
	"taskquest/internal/domain"
	"taskquest/internal/ports"
)

// AddTaskResult contains the result of adding a task
type AddTaskResult struct {
	Task    *domain.Task
	Message string
}

// AddTaskCommand adds a task from raw form or flag values
type AddTaskCommand struct {
	repo        ports.TaskRepository
	Description string
	Deadline    string
	Urgency     string
	Importance  string
}

// NewAddTaskCommand creates a new AddTaskCommand
func NewAddTaskCommand(repo ports.TaskRepository, description, deadline, urgency, importance string) *AddTaskCommand {
	return &AddTaskCommand{
		repo:        repo,
		Description: description,
		Deadline:    deadline,
		Urgency:     urgency,
		Importance:  importance,
	}
}

// Validate checks the raw input and returns the task to add
func (c *AddTaskCommand) Validate() (domain.NewTask, error) {
	if err := application.ValidateRequired("description", c.Description); err != nil {
		return domain.NewTask{}, err
	}
	if err := application.ValidateDate("deadline", c.Deadline); err != nil {
		return domain.NewTask{}, err
	}

	urgency, err := application.ParseRatingField("urgency", c.Urgency)
	if err != nil {
		return domain.NewTask{}, err
	}
	importance, err := application.ParseRatingField("importance", c.Importance)
	if err != nil {
		return domain.NewTask{}, err
	}

	return domain.NewTask{
		Description: strings.TrimSpace(c.Description),
		Deadline:    strings.TrimSpace(c.Deadline),
		Urgency:     urgency,
		Importance:  importance,
	}, nil
}

// Execute runs the add task command
func (c *AddTaskCommand) Execute(ctx context.Context) (*AddTaskResult, error) {
	input, err := c.Validate()
	if err != nil {
		return nil, err
	}

	task, err := c.repo.Add(input)
	if err != nil {
		return nil, fmt.Errorf("failed to add task: %w", err)
	}

	return &AddTaskResult{
		Task:    task,
		Message: fmt.Sprintf("Added task: %s (due %s)", task.Description, task.Deadline),
	}, nil
}
