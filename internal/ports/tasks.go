package ports

import "taskquest/internal/domain"

// TaskRepository owns the ordered list of tasks
type TaskRepository interface {
	// Read operations
	List() ([]domain.Task, error)
	Get(id string) (*domain.Task, error)

	// Mutations are persisted before they return
	Add(task domain.NewTask) (*domain.Task, error)
	Edit(id string, patch domain.TaskPatch) (*domain.Task, error)
	Delete(id string) error

	// Reset replaces the list with an empty one
	Reset() error
}

// StatsRepository owns the points/level/streak singleton
type StatsRepository interface {
	Current() (domain.Stats, error)
	RecordCompletion(points int) (domain.Stats, error)
	Reset() error
}

// TimerControl is the part of the timer service the completion workflow needs
type TimerControl interface {
	Stop(id string)
	Forget(id string)
	Elapsed(id string) int
}
