package memory

import (
	"daily-task-scheduler/internal/domain"
	"daily-task-scheduler/internal/store"
	"slices"
	"sync"
)

var _ store.TaskStore = (*TaskStore)(nil)

// TaskStore holds one day's tasks. Storage order is insertion order with
// removals closed up; nothing depends on it except removal and priority
// filtering, which both scan in that order.
type TaskStore struct {
	mu    sync.RWMutex
	tasks []domain.Task
}

func New() *TaskStore {
	return &TaskStore{}
}

// Add stores t unless its interval overlaps a stored task. The conflict scan
// and the append happen under one lock so concurrent adds cannot both pass
// the check.
func (ts *TaskStore) Add(t domain.Task) error {
	ts.mu.Lock()
	defer ts.mu.Unlock()

	for _, existing := range ts.tasks {
		if t.Overlaps(existing) {
			return &store.ConflictError{Existing: existing}
		}
	}

	ts.tasks = append(ts.tasks, t)
	return nil
}

// Get returns the first task with the given description.
func (ts *TaskStore) Get(description string) (domain.Task, bool) {
	ts.mu.RLock()
	defer ts.mu.RUnlock()

	i := ts.indexLocked(description)
	if i < 0 {
		return domain.Task{}, false
	}
	return ts.tasks[i], true
}

// Remove deletes the first task whose description matches exactly. Later
// tasks sharing the description are left in place.
func (ts *TaskStore) Remove(description string) (domain.Task, error) {
	ts.mu.Lock()
	defer ts.mu.Unlock()

	i := ts.indexLocked(description)
	if i < 0 {
		return domain.Task{}, store.ErrNotFound
	}

	removed := ts.tasks[i]
	ts.tasks = slices.Delete(ts.tasks, i, i+1)
	return removed, nil
}

// Complete marks the stored task completed in place.
func (ts *TaskStore) Complete(description string) (domain.Task, error) {
	ts.mu.Lock()
	defer ts.mu.Unlock()

	i := ts.indexLocked(description)
	if i < 0 {
		return domain.Task{}, store.ErrNotFound
	}

	ts.tasks[i].MarkCompleted()
	return ts.tasks[i], nil
}

// List returns a copy sorted by start time. Equal start times keep their
// storage order.
func (ts *TaskStore) List() []domain.Task {
	ts.mu.RLock()
	tasks := slices.Clone(ts.tasks)
	ts.mu.RUnlock()

	slices.SortStableFunc(tasks, func(a, b domain.Task) int {
		return int(a.Start) - int(b.Start)
	})
	return tasks
}

// ListByPriority returns tasks whose priority matches p exactly, in storage
// order.
func (ts *TaskStore) ListByPriority(p domain.Priority) []domain.Task {
	ts.mu.RLock()
	defer ts.mu.RUnlock()

	var tasks []domain.Task
	for _, t := range ts.tasks {
		if t.Priority == p {
			tasks = append(tasks, t)
		}
	}
	return tasks
}

func (ts *TaskStore) Len() int {
	ts.mu.RLock()
	defer ts.mu.RUnlock()
	return len(ts.tasks)
}

func (ts *TaskStore) indexLocked(description string) int {
	return slices.IndexFunc(ts.tasks, func(t domain.Task) bool {
		return t.Description == description
	})
}
