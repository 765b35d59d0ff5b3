package domain

import (
	"daily-task-scheduler/internal/clock"
	"errors"
	"strings"
	"testing"

	"github.com/google/uuid"
)

func TestNewTask(t *testing.T) {
	task, err := NewTask("Morning Exercise", "07:00", "08:00", PriorityHigh)
	if err != nil {
		t.Fatalf("NewTask() err = %v, want nil", err)
	}
	if task.ID == uuid.Nil {
		t.Fatal("NewTask() ID is nil, want generated id")
	}
	if task.Completed {
		t.Fatal("NewTask() Completed = true, want false")
	}
	if task.Start != clock.MustParse("07:00") || task.End != clock.MustParse("08:00") {
		t.Fatalf("NewTask() interval = %s-%s, want 07:00-08:00", task.Start, task.End)
	}
	if task.CreatedAt.IsZero() {
		t.Fatal("CreatedAt is zero, want non-zero")
	}
}

func TestNewTask_InvalidTime(t *testing.T) {
	tests := []struct {
		name  string
		start string
		end   string
		field string
		input string
	}{
		{name: "bad start", start: "7am", end: "08:00", field: "start", input: "7am"},
		{name: "bad end", start: "07:00", end: "25:00", field: "end", input: "25:00"},
		{name: "bad minute", start: "07:61", end: "08:00", field: "start", input: "07:61"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewTask("x", tt.start, tt.end, PriorityLow)
			if err == nil {
				t.Fatal("NewTask() err = nil, want parse error")
			}
			var pe *ParseError
			if !errors.As(err, &pe) {
				t.Fatalf("NewTask() err = %T, want *ParseError", err)
			}
			if pe.Field != tt.field {
				t.Fatalf("ParseError.Field = %s, want %s", pe.Field, tt.field)
			}
			if !errors.Is(err, clock.ErrInvalidFormat) {
				t.Fatalf("NewTask() err = %v, want wrapping %v", err, clock.ErrInvalidFormat)
			}
			if !IsParseError(err) {
				t.Fatal("IsParseError() = false, want true")
			}
			if n := strings.Count(err.Error(), tt.input); n != 1 {
				t.Fatalf("Error() = %q mentions input %d times, want 1", err.Error(), n)
			}
		})
	}
}

func TestNewTask_InvertedRangeAccepted(t *testing.T) {
	task, err := NewTask("backwards", "10:00", "09:00", PriorityMedium)
	if err != nil {
		t.Fatalf("NewTask() err = %v, want nil", err)
	}
	if !task.End.Before(task.Start) {
		t.Fatalf("interval = %s-%s, want end before start", task.Start, task.End)
	}
}

func TestOverlaps(t *testing.T) {
	meeting := mustTask(t, "Team Meeting", "09:00", "10:00")

	tests := []struct {
		name  string
		start string
		end   string
		want  bool
	}{
		{name: "partial overlap after", start: "09:30", end: "10:30", want: true},
		{name: "partial overlap before", start: "08:30", end: "09:30", want: true},
		{name: "contained", start: "09:15", end: "09:45", want: true},
		{name: "containing", start: "08:00", end: "11:00", want: true},
		{name: "identical", start: "09:00", end: "10:00", want: true},
		{name: "touching end", start: "10:00", end: "11:00", want: false},
		{name: "touching start", start: "08:00", end: "09:00", want: false},
		{name: "disjoint", start: "12:00", end: "13:00", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			other := mustTask(t, "other", tt.start, tt.end)
			if got := meeting.Overlaps(other); got != tt.want {
				t.Fatalf("Overlaps() = %v, want %v", got, tt.want)
			}
			if got := other.Overlaps(meeting); got != tt.want {
				t.Fatalf("Overlaps() reversed = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestMarkCompleted(t *testing.T) {
	task := mustTask(t, "Lunch Break", "12:00", "13:00")
	task.MarkCompleted()
	task.MarkCompleted()
	if !task.Completed {
		t.Fatal("Completed = false after MarkCompleted, want true")
	}
}

func TestString(t *testing.T) {
	task, _ := NewTask("Morning Exercise", "07:00", "08:00", PriorityHigh)
	want := "07:00 - 08:00: Morning Exercise [High]"
	if got := task.String(); got != want {
		t.Fatalf("String() = %q, want %q", got, want)
	}
}

func mustTask(t *testing.T, description, start, end string) Task {
	t.Helper()
	task, err := NewTask(description, start, end, PriorityMedium)
	if err != nil {
		t.Fatalf("NewTask(%q) err = %v", description, err)
	}
	return task
}
