package service

import (
	"daily-task-scheduler/internal/domain"
	"daily-task-scheduler/internal/store"
	"errors"
	"fmt"
	"sync"

	"github.com/rs/zerolog"
)

type TaskStore interface {
	Add(t domain.Task) error
	Get(description string) (domain.Task, bool)
	Remove(description string) (domain.Task, error)
	Complete(description string) (domain.Task, error)
	List() []domain.Task
	ListByPriority(p domain.Priority) []domain.Task
}

// Options switch on checks the scheduler does not make by default: inverted
// intervals and repeated descriptions are otherwise accepted.
type Options struct {
	RejectInvertedRanges bool
	UniqueDescriptions   bool
}

type ScheduleService struct {
	// addMu serialises the duplicate check with the insert
	addMu sync.Mutex

	store TaskStore
	opts  Options
	log   zerolog.Logger
}

func New(store TaskStore, log zerolog.Logger, opts Options) (*ScheduleService, error) {
	if store == nil {
		return nil, ErrStoreNil
	}

	return &ScheduleService{
		store: store,
		opts:  opts,
		log:   log.With().Str("component", "schedule").Logger(),
	}, nil
}

// CreateTask parses the times and builds a pending task. A malformed time
// yields a *domain.ParseError.
func (s *ScheduleService) CreateTask(description, start, end string, priority domain.Priority) (domain.Task, error) {
	task, err := domain.NewTask(description, start, end, priority)
	if err != nil {
		s.log.Warn().Err(err).Str("description", description).Msg("invalid task time")
		return domain.Task{}, err
	}

	if s.opts.RejectInvertedRanges && !task.Start.Before(task.End) {
		return domain.Task{}, fmt.Errorf("%w: %s - %s", ErrInvalidRange, task.Start, task.End)
	}
	return task, nil
}

// AddTask stores task unless it conflicts. A conflict is reported as an error
// wrapping store.ErrConflict; the schedule is unchanged in that case.
func (s *ScheduleService) AddTask(task domain.Task) error {
	s.addMu.Lock()
	defer s.addMu.Unlock()

	if s.opts.UniqueDescriptions {
		if _, ok := s.store.Get(task.Description); ok {
			return fmt.Errorf("%w: %q", ErrDuplicateDescription, task.Description)
		}
	}

	if err := s.store.Add(task); err != nil {
		var ce *store.ConflictError
		if errors.As(err, &ce) {
			s.log.Info().
				Str("description", task.Description).
				Str("conflicts_with", ce.Existing.Description).
				Msg("task rejected")
		}
		return err
	}

	s.log.Info().
		Str("id", task.ID.String()).
		Str("description", task.Description).
		Stringer("start", task.Start).
		Stringer("end", task.End).
		Str("priority", string(task.Priority)).
		Msg("task added")
	return nil
}

// ScheduleTask is CreateTask followed by AddTask.
func (s *ScheduleService) ScheduleTask(description, start, end string, priority domain.Priority) (domain.Task, error) {
	task, err := s.CreateTask(description, start, end, priority)
	if err != nil {
		return domain.Task{}, err
	}
	if err := s.AddTask(task); err != nil {
		return task, err
	}
	return task, nil
}

func (s *ScheduleService) RemoveTask(description string) (domain.Task, error) {
	removed, err := s.store.Remove(description)
	if err != nil {
		s.log.Info().Str("description", description).Msg("remove: task not found")
		return domain.Task{}, err
	}

	s.log.Info().Str("id", removed.ID.String()).Str("description", description).Msg("task removed")
	return removed, nil
}

// ViewTasks returns all tasks ordered by start time. An empty result means
// nothing is scheduled.
func (s *ScheduleService) ViewTasks() []domain.Task {
	return s.store.List()
}

// ViewTasksByPriority returns tasks with exactly this priority in storage order.
func (s *ScheduleService) ViewTasksByPriority(priority domain.Priority) []domain.Task {
	return s.store.ListByPriority(priority)
}

func (s *ScheduleService) MarkCompleted(description string) (domain.Task, error) {
	task, err := s.store.Complete(description)
	if err != nil {
		return domain.Task{}, err
	}

	s.log.Info().Str("id", task.ID.String()).Str("description", description).Msg("task completed")
	return task, nil
}
