package repository

import (
	"github.com/wil-ckaew/taskdocs/internal/server"
)

// Repositories groups the gateways built on the shared pool.
type Repositories struct {
	Task     *TaskRepository
	Document *DocumentRepository
}

func NewRepositories(s *server.Server) *Repositories {
	return &Repositories{
		Task:     NewTaskRepository(s.DB.Pool),
		Document: NewDocumentRepository(s.DB.Pool),
	}
}
