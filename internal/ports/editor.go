package ports

import "taskquest/internal/domain"

// TaskEditor lets the user change a task's fields in an external editor
type TaskEditor interface {
	// EditTask returns the fields as the user saved them, unvalidated
	EditTask(current domain.NewTask) (domain.NewTask, error)
}
