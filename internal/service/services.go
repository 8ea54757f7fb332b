package service

import (
	"github.com/wil-ckaew/taskdocs/internal/repository"
)

type Services struct {
	Task     *TaskService
	Document *DocumentService
}

func NewServices(repos *repository.Repositories) *Services {
	return &Services{
		Task:     NewTaskService(repos.Task),
		Document: NewDocumentService(repos.Document, nil),
	}
}
