package store

import (
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"taskquest/internal/application"
	"taskquest/internal/domain"
	"taskquest/internal/ports"
)

// TaskStore implements ports.TaskRepository as a JSON array under TasksKey.
// Every call reads the array afresh and every mutation writes it back before
// returning; nothing is cached between calls.
type TaskStore struct {
	kv     ports.KeyValueStore
	logger *slog.Logger
	newID  func() string
}

// Ensure TaskStore implements TaskRepository
var _ ports.TaskRepository = (*TaskStore)(nil)

// TaskOption configures a TaskStore
type TaskOption func(*TaskStore)

// WithIDGenerator replaces the UUID generator, mainly for tests
func WithIDGenerator(gen func() string) TaskOption {
	return func(s *TaskStore) {
		s.newID = gen
	}
}

// WithTaskLogger sets the logger used for corruption warnings and mutations
func WithTaskLogger(logger *slog.Logger) TaskOption {
	return func(s *TaskStore) {
		s.logger = logger
	}
}

// NewTaskStore creates a task store over the given key-value store
func NewTaskStore(kv ports.KeyValueStore, opts ...TaskOption) *TaskStore {
	s := &TaskStore{
		kv:     kv,
		logger: slog.Default(),
		newID:  newTaskID,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// newTaskID returns a time-ordered UUID, falling back to a random one
func newTaskID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.New().String()
	}
	return id.String()
}

func (s *TaskStore) load() []domain.Task {
	tasks := Load(s.kv, s.logger, TasksKey, []domain.Task{})
	if tasks == nil {
		tasks = []domain.Task{}
	}
	return tasks
}

func (s *TaskStore) save(tasks []domain.Task) error {
	return Save(s.kv, TasksKey, tasks)
}

// List returns all tasks in insertion order
func (s *TaskStore) List() ([]domain.Task, error) {
	return s.load(), nil
}

// Get returns the task with the given ID
func (s *TaskStore) Get(id string) (*domain.Task, error) {
	tasks := s.load()
	i := domain.IndexOf(tasks, id)
	if i < 0 {
		return nil, application.NotFoundError(id)
	}
	task := tasks[i]
	return &task, nil
}

// Add validates and appends a new incomplete task
func (s *TaskStore) Add(n domain.NewTask) (*domain.Task, error) {
	n = domain.NewTask{
		Description: strings.TrimSpace(n.Description),
		Deadline:    strings.TrimSpace(n.Deadline),
		Urgency:     orLow(n.Urgency),
		Importance:  orLow(n.Importance),
	}
	if err := application.ValidateNewTask(n); err != nil {
		return nil, err
	}

	task := domain.Task{
		Description: n.Description,
		Deadline:    n.Deadline,
		Urgency:     n.Urgency,
		Importance:  n.Importance,
		Completed:   false,
	}

	task.ID = s.newID()
	tasks := append(s.load(), task)
	if err := s.save(tasks); err != nil {
		return nil, err
	}

	s.logger.Debug("task added", "id", task.ID, "description", task.Description)
	return &task, nil
}

// Edit overwrites the patch fields of a task in place
func (s *TaskStore) Edit(id string, patch domain.TaskPatch) (*domain.Task, error) {
	tasks := s.load()
	i := domain.IndexOf(tasks, id)
	if i < 0 {
		return nil, application.NotFoundError(id)
	}

	updated := patch.Apply(tasks[i])
	if err := application.ValidateTask(updated); err != nil {
		return nil, err
	}

	tasks[i] = updated
	if err := s.save(tasks); err != nil {
		return nil, err
	}

	s.logger.Debug("task edited", "id", id)
	return &updated, nil
}

// Delete removes a task
func (s *TaskStore) Delete(id string) error {
	tasks := s.load()
	i := domain.IndexOf(tasks, id)
	if i < 0 {
		return application.NotFoundError(id)
	}

	tasks = append(tasks[:i], tasks[i+1:]...)
	if err := s.save(tasks); err != nil {
		return err
	}

	s.logger.Debug("task deleted", "id", id)
	return nil
}

// Reset persists an empty task list
func (s *TaskStore) Reset() error {
	return s.save([]domain.Task{})
}

func orLow(r domain.Rating) domain.Rating {
	if r == "" {
		return domain.RatingLow
	}
	return r
}
