package handlers

import (
	"daily-task-scheduler/internal/domain"
	"daily-task-scheduler/internal/http/dto"
	"daily-task-scheduler/internal/service"
	"daily-task-scheduler/internal/store"
	"encoding/json"
	"errors"
	"net/http"
)

type ScheduleService interface {
	ScheduleTask(description, start, end string, priority domain.Priority) (domain.Task, error)
	RemoveTask(description string) (domain.Task, error)
	ViewTasks() []domain.Task
	ViewTasksByPriority(priority domain.Priority) []domain.Task
	MarkCompleted(description string) (domain.Task, error)
}

type TaskHandler struct {
	schedule ScheduleService
}

func New(schedule ScheduleService) *TaskHandler {
	return &TaskHandler{schedule: schedule}
}

// POST /tasks
func (h *TaskHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateTaskRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())

		return
	}

	task, err := h.schedule.ScheduleTask(req.Description, req.Start, req.End, domain.Priority(req.Priority))
	if err != nil {
		switch {
		case domain.IsParseError(err):
			writeError(w, http.StatusBadRequest, err.Error())
			return
		case errors.Is(err, service.ErrInvalidRange):
			writeError(w, http.StatusBadRequest, err.Error())
			return
		case errors.Is(err, store.ErrConflict), errors.Is(err, service.ErrDuplicateDescription):
			writeError(w, http.StatusConflict, err.Error())
			return
		default:
			writeError(w, http.StatusInternalServerError, "internal server error")
			return
		}
	}

	writeJSON(w, http.StatusCreated, dto.FromTask(task))
}

// GET /tasks, GET /tasks?priority=High
func (h *TaskHandler) List(w http.ResponseWriter, r *http.Request) {
	if r.URL.Query().Has("priority") {
		priority := domain.Priority(r.URL.Query().Get("priority"))
		writeJSON(w, http.StatusOK, dto.FromTasks(h.schedule.ViewTasksByPriority(priority)))

		return
	}

	writeJSON(w, http.StatusOK, dto.FromTasks(h.schedule.ViewTasks()))
}

// DELETE /tasks/{description}
func (h *TaskHandler) Remove(w http.ResponseWriter, r *http.Request) {
	description := r.PathValue("description")

	if _, err := h.schedule.RemoveTask(description); err != nil {
		switch {
		case errors.Is(err, store.ErrNotFound):
			writeError(w, http.StatusNotFound, store.ErrNotFound.Error())
			return
		default:
			writeError(w, http.StatusInternalServerError, "failed removing task")
			return
		}
	}

	w.WriteHeader(http.StatusNoContent)
}

// POST /tasks/{description}/complete
func (h *TaskHandler) Complete(w http.ResponseWriter, r *http.Request) {
	description := r.PathValue("description")

	task, err := h.schedule.MarkCompleted(description)
	if err != nil {
		switch {
		case errors.Is(err, store.ErrNotFound):
			writeError(w, http.StatusNotFound, store.ErrNotFound.Error())
			return
		default:
			writeError(w, http.StatusInternalServerError, "failed completing task")
			return
		}
	}

	writeJSON(w, http.StatusOK, dto.FromTask(task))
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, dto.ErrorResponse{Error: msg})
}
