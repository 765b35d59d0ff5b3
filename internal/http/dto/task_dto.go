package dto

import "daily-task-scheduler/internal/domain"

type CreateTaskRequest struct {
	Description string `json:"description"`
	Start       string `json:"start"`
	End         string `json:"end"`
	Priority    string `json:"priority"`
}

type TaskResponse struct {
	ID          string `json:"id"`
	Description string `json:"description"`
	Start       string `json:"start"`
	End         string `json:"end"`
	Priority    string `json:"priority"`
	Completed   bool   `json:"completed"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

func FromTask(t domain.Task) TaskResponse {
	return TaskResponse{
		ID:          t.ID.String(),
		Description: t.Description,
		Start:       t.Start.String(),
		End:         t.End.String(),
		Priority:    string(t.Priority),
		Completed:   t.Completed,
	}
}

func FromTasks(tasks []domain.Task) []TaskResponse {
	out := make([]TaskResponse, 0, len(tasks))
	for _, t := range tasks {
		out = append(out, FromTask(t))
	}
	return out
}
