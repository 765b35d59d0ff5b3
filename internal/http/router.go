package router

import (
	"daily-task-scheduler/internal/http/handlers"
	"net/http"
)

func New(handler *handlers.TaskHandler) http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("POST /tasks", handler.Create)
	mux.HandleFunc("GET /tasks", handler.List)
	mux.HandleFunc("DELETE /tasks/{description}", handler.Remove)
	mux.HandleFunc("POST /tasks/{description}/complete", handler.Complete)

	return mux
}
