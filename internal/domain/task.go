package domain

import (
	"daily-task-scheduler/internal/clock"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Priority is an opaque label; only equality is meaningful.
type Priority string

const (
	PriorityHigh   Priority = "High"
	PriorityMedium Priority = "Medium"
	PriorityLow    Priority = "Low"
)

type Task struct {
	ID          uuid.UUID
	Description string
	Start       clock.Time
	End         clock.Time
	Priority    Priority
	Completed   bool

	CreatedAt time.Time
}

// ParseError reports a start or end time that is not HH:MM.
type ParseError struct {
	Field string
	Input string
	Err   error
}

func (e *ParseError) Error() string {
	// the wrapped clock error already quotes the input
	return fmt.Sprintf("%s: %v", e.Field, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// NewTask builds a pending task from its text form. It does not check that
// start is before end.
func NewTask(description, start, end string, priority Priority) (Task, error) {
	s, err := clock.Parse(start)
	if err != nil {
		return Task{}, &ParseError{Field: "start", Input: start, Err: err}
	}
	e, err := clock.Parse(end)
	if err != nil {
		return Task{}, &ParseError{Field: "end", Input: end, Err: err}
	}

	return Task{
		ID:          uuid.New(),
		Description: description,
		Start:       s,
		End:         e,
		Priority:    priority,
		CreatedAt:   time.Now(),
	}, nil
}

// IsParseError reports whether err came from a malformed time string.
func IsParseError(err error) bool {
	var pe *ParseError
	return errors.As(err, &pe)
}

// Overlaps treats both intervals as half-open, so tasks that only touch
// (a.End == b.Start) do not overlap.
func (t Task) Overlaps(other Task) bool {
	return t.Start.Before(other.End) && t.End.After(other.Start)
}

// MarkCompleted is one-way; there is no way back to pending.
func (t *Task) MarkCompleted() {
	t.Completed = true
}

func (t Task) String() string {
	return fmt.Sprintf("%s - %s: %s [%s]", t.Start, t.End, t.Description, t.Priority)
}
