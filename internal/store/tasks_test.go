package store

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"taskquest/internal/adapters/memory"
	"taskquest/internal/application"
	"taskquest/internal/domain"
)

func sequentialIDs() func() string {
	n := 0
	return func() string {
		n++
		return fmt.Sprintf("task-%d", n)
	}
}

func newTestTaskStore(t *testing.T) (*TaskStore, *memory.KVStore) {
	t.Helper()
	kv := memory.NewKVStore()
	s := NewTaskStore(kv, WithIDGenerator(sequentialIDs()), WithTaskLogger(discardLogger()))
	return s, kv
}

func writeReport() domain.NewTask {
	return domain.NewTask{
		Description: "Write Report",
		Deadline:    "2025-01-10",
		Urgency:     domain.RatingHigh,
		Importance:  domain.RatingMedium,
	}
}

func TestTaskStore_AddPreservesInsertionOrder(t *testing.T) {
	s, _ := newTestTaskStore(t)

	names := []string{"Project Work", "Write Report", "Upload Files", "Review PR"}
	for _, name := range names {
		_, err := s.Add(domain.NewTask{Description: name, Deadline: "2025-03-01"})
		require.NoError(t, err)
	}

	tasks, err := s.List()
	require.NoError(t, err)
	require.Len(t, tasks, len(names))
	for i, name := range names {
		assert.Equal(t, name, tasks[i].Description)
		assert.False(t, tasks[i].Completed)
	}
}

func TestTaskStore_AddAssignsUniqueIDs(t *testing.T) {
	kv := memory.NewKVStore()
	s := NewTaskStore(kv, WithTaskLogger(discardLogger()))

	seen := map[string]bool{}
	for i := 0; i < 20; i++ {
		task, err := s.Add(writeReport())
		require.NoError(t, err)
		assert.NotEmpty(t, task.ID)
		assert.False(t, seen[task.ID], "duplicate id %s", task.ID)
		seen[task.ID] = true
	}
}

func TestTaskStore_AddDefaultsRatingsToLow(t *testing.T) {
	s, _ := newTestTaskStore(t)

	task, err := s.Add(domain.NewTask{Description: "Upload Files", Deadline: "2025-01-12"})
	require.NoError(t, err)
	assert.Equal(t, domain.RatingLow, task.Urgency)
	assert.Equal(t, domain.RatingLow, task.Importance)
}

func TestTaskStore_AddRejectsInvalidInput(t *testing.T) {
	tests := []struct {
		name  string
		input domain.NewTask
		field string
	}{
		{"empty description", domain.NewTask{Deadline: "2025-01-10"}, "description"},
		{"blank description", domain.NewTask{Description: "  ", Deadline: "2025-01-10"}, "description"},
		{"empty deadline", domain.NewTask{Description: "Write Report"}, "deadline"},
		{"bad deadline", domain.NewTask{Description: "Write Report", Deadline: "tomorrow"}, "deadline"},
		{"bad urgency", domain.NewTask{Description: "Write Report", Deadline: "2025-01-10", Urgency: "Now"}, "urgency"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, kv := newTestTaskStore(t)
			_, err := s.Add(writeReport())
			require.NoError(t, err)
			before, _, _ := kv.Get(TasksKey)

			_, err = s.Add(tt.input)

			var valErr *application.ValidationError
			require.ErrorAs(t, err, &valErr)
			assert.Equal(t, tt.field, valErr.Field)

			tasks, _ := s.List()
			assert.Len(t, tasks, 1)
			after, _, _ := kv.Get(TasksKey)
			assert.Equal(t, before, after, "persisted list must be unchanged")
		})
	}
}

func TestTaskStore_WriteReportScenario(t *testing.T) {
	s, kv := newTestTaskStore(t)

	added, err := s.Add(writeReport())
	require.NoError(t, err)

	tasks, err := s.List()
	require.NoError(t, err)
	require.Len(t, tasks, 1)
	assert.Equal(t, domain.Task{
		ID:          added.ID,
		Description: "Write Report",
		Deadline:    "2025-01-10",
		Urgency:     domain.RatingHigh,
		Importance:  domain.RatingMedium,
		Completed:   false,
	}, tasks[0])

	require.NoError(t, s.Delete(added.ID))

	tasks, err = s.List()
	require.NoError(t, err)
	assert.Empty(t, tasks)

	raw, found, err := kv.Get(TasksKey)
	require.NoError(t, err)
	require.True(t, found)
	assert.JSONEq(t, `[]`, string(raw))
}

func TestTaskStore_EditInPlace(t *testing.T) {
	s, _ := newTestTaskStore(t)
	first, _ := s.Add(domain.NewTask{Description: "Project Work", Deadline: "2025-01-09"})
	second, _ := s.Add(writeReport())
	third, _ := s.Add(domain.NewTask{Description: "Upload Files", Deadline: "2025-01-11"})

	desc := "Write Final Report"
	urg := domain.RatingLow
	edited, err := s.Edit(second.ID, domain.TaskPatch{Description: &desc, Urgency: &urg})
	require.NoError(t, err)
	assert.Equal(t, "Write Final Report", edited.Description)
	assert.Equal(t, domain.RatingMedium, edited.Importance)

	tasks, _ := s.List()
	require.Len(t, tasks, 3)
	assert.Equal(t, []string{first.ID, second.ID, third.ID},
		[]string{tasks[0].ID, tasks[1].ID, tasks[2].ID})
	assert.Equal(t, "Write Final Report", tasks[1].Description)
	assert.Equal(t, domain.RatingLow, tasks[1].Urgency)
}

func TestTaskStore_EditRejectsEmptyDescription(t *testing.T) {
	s, _ := newTestTaskStore(t)
	task, _ := s.Add(writeReport())

	empty := ""
	_, err := s.Edit(task.ID, domain.TaskPatch{Description: &empty})
	assert.True(t, application.IsValidation(err))

	got, err := s.Get(task.ID)
	require.NoError(t, err)
	assert.Equal(t, "Write Report", got.Description)
}

func TestTaskStore_MissingIDIsNotFound(t *testing.T) {
	s, _ := newTestTaskStore(t)
	_, _ = s.Add(writeReport())

	done := true
	_, err := s.Edit("nope", domain.TaskPatch{Completed: &done})
	assert.True(t, errors.Is(err, application.ErrNotFound))

	err = s.Delete("nope")
	assert.True(t, errors.Is(err, application.ErrNotFound))

	_, err = s.Get("nope")
	assert.True(t, errors.Is(err, application.ErrNotFound))

	tasks, _ := s.List()
	assert.Len(t, tasks, 1)
}

func TestTaskStore_DeleteByIDNotPosition(t *testing.T) {
	s, _ := newTestTaskStore(t)
	a, _ := s.Add(domain.NewTask{Description: "A", Deadline: "2025-01-01"})
	b, _ := s.Add(domain.NewTask{Description: "B", Deadline: "2025-01-02"})
	c, _ := s.Add(domain.NewTask{Description: "C", Deadline: "2025-01-03"})

	require.NoError(t, s.Delete(a.ID))
	// b is now at index 0; deleting c must still remove c
	require.NoError(t, s.Delete(c.ID))

	tasks, _ := s.List()
	require.Len(t, tasks, 1)
	assert.Equal(t, b.ID, tasks[0].ID)
}

func TestTaskStore_CorruptListReadsAsEmpty(t *testing.T) {
	s, kv := newTestTaskStore(t)
	require.NoError(t, kv.Set(TasksKey, []byte("not json")))

	tasks, err := s.List()
	require.NoError(t, err)
	assert.Empty(t, tasks)

	// The next mutation overwrites the corrupt document
	_, err = s.Add(writeReport())
	require.NoError(t, err)
	tasks, _ = s.List()
	assert.Len(t, tasks, 1)
}

func TestTaskStore_Reset(t *testing.T) {
	s, kv := newTestTaskStore(t)
	_, _ = s.Add(writeReport())

	require.NoError(t, s.Reset())

	tasks, _ := s.List()
	assert.Empty(t, tasks)
	raw, _, _ := kv.Get(TasksKey)
	assert.JSONEq(t, `[]`, string(raw))
}

func TestTaskStore_SharesStateAcrossInstances(t *testing.T) {
	kv := memory.NewKVStore()
	a := NewTaskStore(kv, WithTaskLogger(discardLogger()))
	b := NewTaskStore(kv, WithTaskLogger(discardLogger()))

	task, err := a.Add(writeReport())
	require.NoError(t, err)

	got, err := b.Get(task.ID)
	require.NoError(t, err)
	assert.Equal(t, *task, *got)
}
