package service

import (
	"context"
	"fmt"
	"net/http"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/wil-ckaew/taskdocs/internal/errs"
	"github.com/wil-ckaew/taskdocs/internal/model"
	"github.com/wil-ckaew/taskdocs/internal/sqlerr"
)

type TaskService struct {
	repo TaskRepository
}

func NewTaskService(repo TaskRepository) *TaskService {
	return &TaskService{repo: repo}
}

func (s *TaskService) Create(ctx context.Context, req *model.CreateTaskRequest) (*model.Task, error) {
	task, err := s.repo.Insert(ctx, model.TaskFields{
		Title:   *req.Title,
		Content: *req.Content,
	})
	if err != nil {
		return nil, writeFailure(err, "Failed to create task")
	}

	zerolog.Ctx(ctx).Info().
		Str("event", "task_created").
		Str("task_id", task.ID.String()).
		Msg("task created")

	return task, nil
}

// List returns one page of tasks. An empty page is an empty, non-nil slice.
func (s *TaskService) List(ctx context.Context, query *model.ListQuery) ([]model.Task, error) {
	limit, offset := query.Window()

	tasks, err := s.repo.ListPage(ctx, limit, offset)
	if err != nil {
		return nil, errs.NewInternalServerError(fmt.Sprintf("Failed to get tasks: %v", err)).Wrap(err)
	}
	if tasks == nil {
		tasks = []model.Task{}
	}
	return tasks, nil
}

func (s *TaskService) Get(ctx context.Context, id uuid.UUID) (*model.Task, error) {
	task, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if sqlerr.IsNotFound(err) {
			return nil, errs.NewFailError(http.StatusNotFound, fmt.Sprintf("Task not found: %s", id)).Wrap(err)
		}
		return nil, errs.NewInternalServerError(fmt.Sprintf("Failed to get task: %v", err)).Wrap(err)
	}
	return task, nil
}

// Update reads the stored task, overlays the fields present in req and
// writes the result back. There is no version check between the read
// and the write.
func (s *TaskService) Update(ctx context.Context, id uuid.UUID, req *model.UpdateTaskRequest) (*model.Task, error) {
	current, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if sqlerr.IsNotFound(err) {
			return nil, errs.NewNotFoundError(fmt.Sprintf("Task not found: %v", err)).Wrap(err)
		}
		return nil, errs.NewInternalServerError(fmt.Sprintf("Failed to get task: %v", err)).Wrap(err)
	}

	task, err := s.repo.Update(ctx, id, req.Merge(current))
	if err != nil {
		return nil, writeFailure(err, "Failed to update task")
	}

	zerolog.Ctx(ctx).Info().
		Str("event", "task_updated").
		Str("task_id", task.ID.String()).
		Msg("task updated")

	return task, nil
}

// Delete reports every failure, a missing row included, as 404 fail.
func (s *TaskService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.DeleteByID(ctx, id); err != nil {
		return errs.NewFailError(http.StatusNotFound, fmt.Sprintf("Failed to delete task: %v", err)).Wrap(err)
	}

	zerolog.Ctx(ctx).Info().
		Str("event", "task_deleted").
		Str("task_id", id.String()).
		Msg("task deleted")

	return nil
}
