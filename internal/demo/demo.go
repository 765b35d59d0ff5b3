// Package demo drives the fixed one-day example schedule.
package demo

import (
	"daily-task-scheduler/internal/domain"
	"daily-task-scheduler/internal/report"
	"daily-task-scheduler/internal/service"
)

type taskInput struct {
	description string
	start, end  string
	priority    domain.Priority
}

var day = []taskInput{
	{"Morning Exercise", "07:00", "08:00", domain.PriorityHigh},
	{"Team Meeting", "09:00", "10:00", domain.PriorityMedium},
	{"Lunch Break", "12:00", "13:00", domain.PriorityLow},
}

var conflicting = taskInput{"Training Session", "09:30", "10:30", domain.PriorityHigh}

// Run executes the sequence against svc. A malformed time stops the run: it
// is printed and returned.
func Run(svc *service.ScheduleService, out *report.Printer) error {
	tasks := make([]domain.Task, 0, len(day))
	for _, in := range day {
		task, err := svc.CreateTask(in.description, in.start, in.end, in.priority)
		if err != nil {
			return invalid(out, err)
		}
		tasks = append(tasks, task)
	}

	for _, task := range tasks {
		if err := out.Added(svc.AddTask(task)); err != nil {
			return err
		}
	}

	out.Section("Viewing All Tasks")
	out.Tasks(svc.ViewTasks())

	task, err := svc.CreateTask(conflicting.description, conflicting.start, conflicting.end, conflicting.priority)
	if err != nil {
		return invalid(out, err)
	}
	if err := out.Added(svc.AddTask(task)); err != nil {
		return err
	}

	_, err = svc.RemoveTask("Team Meeting")
	if err := out.Removed("Team Meeting", err); err != nil {
		return err
	}

	out.Section("Viewing Tasks with High Priority")
	out.TasksByPriority(domain.PriorityHigh, svc.ViewTasksByPriority(domain.PriorityHigh))

	done, err := svc.MarkCompleted(tasks[0].Description)
	if err != nil {
		return err
	}
	out.Completed(done)

	return nil
}

func invalid(out *report.Printer, err error) error {
	if domain.IsParseError(err) {
		out.InvalidTime()
	}
	return err
}
