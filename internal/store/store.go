package store

import (
	"daily-task-scheduler/internal/domain"
	"errors"
	"fmt"
)

var (
	ErrNotFound = errors.New("task not found")
	ErrConflict = errors.New("task conflicts with an existing task")
)

// ConflictError names the stored task that blocked an insert.
type ConflictError struct {
	Existing domain.Task
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("%v: %s", ErrConflict, e.Existing)
}

func (e *ConflictError) Unwrap() error { return ErrConflict }

type TaskStore interface {
	Add(t domain.Task) error
	Get(description string) (domain.Task, bool)
	Remove(description string) (domain.Task, error)
	Complete(description string) (domain.Task, error)
	List() []domain.Task
	ListByPriority(p domain.Priority) []domain.Task
	Len() int
}
