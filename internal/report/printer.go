// Package report renders schedule outcomes as the plain console messages
// the demo prints.
package report

import (
	"daily-task-scheduler/internal/domain"
	"daily-task-scheduler/internal/store"
	"errors"
	"fmt"
	"io"
)

type Printer struct {
	w io.Writer
}

func New(w io.Writer) *Printer {
	return &Printer{w: w}
}

func (p *Printer) Section(title string) {
	fmt.Fprintf(p.w, "\n--- %s ---\n", title)
}

// Added reports the result of an add. Errors other than a conflict are
// returned to the caller unprinted.
func (p *Printer) Added(err error) error {
	switch {
	case err == nil:
		fmt.Fprintln(p.w, "Task added successfully. No conflicts.")
	case errors.Is(err, store.ErrConflict):
		fmt.Fprintln(p.w, "Error: Task conflicts with an existing task.")
	default:
		return err
	}
	return nil
}

func (p *Printer) Removed(description string, err error) error {
	switch {
	case err == nil:
		fmt.Fprintf(p.w, "Task '%s' removed successfully.\n", description)
	case errors.Is(err, store.ErrNotFound):
		fmt.Fprintf(p.w, "Error: Task '%s' not found.\n", description)
	default:
		return err
	}
	return nil
}

func (p *Printer) Tasks(tasks []domain.Task) {
	if len(tasks) == 0 {
		fmt.Fprintln(p.w, "No tasks scheduled for the day.")
		return
	}
	p.list(tasks)
}

func (p *Printer) TasksByPriority(priority domain.Priority, tasks []domain.Task) {
	if len(tasks) == 0 {
		fmt.Fprintf(p.w, "No tasks with priority '%s' found.\n", priority)
		return
	}
	p.list(tasks)
}

func (p *Printer) Completed(task domain.Task) {
	fmt.Fprintf(p.w, "\nTask '%s' marked as completed: %t\n", task.Description, task.Completed)
}

func (p *Printer) InvalidTime() {
	fmt.Fprintln(p.w, "Error: Invalid time format.")
}

func (p *Printer) list(tasks []domain.Task) {
	for _, t := range tasks {
		fmt.Fprintln(p.w, t)
	}
}
