package handler

import (
	"github.com/wil-ckaew/taskdocs/internal/server"
	"github.com/wil-ckaew/taskdocs/internal/service"
)

type Handlers struct {
	Health   *HealthHandler
	Task     *TaskHandler
	Document *DocumentHandler
}

func NewHandlers(s *server.Server, services *service.Services) *Handlers {
	return &Handlers{
		Health:   NewHealthHandler(s),
		Task:     NewTaskHandler(s, services.Task),
		Document: NewDocumentHandler(s, services.Document),
	}
}
