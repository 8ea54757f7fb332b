package service

import (
	"context"
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/wil-ckaew/taskdocs/internal/errs"
	"github.com/wil-ckaew/taskdocs/internal/model"
)

func requireHTTPError(t *testing.T, err error, code int, status string) *errs.HTTPError {
	t.Helper()
	var httpErr *errs.HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, code, httpErr.Code)
	assert.Equal(t, status, httpErr.Status)
	return httpErr
}

func TestTaskServiceCreate(t *testing.T) {
	ctx := context.Background()
	repo := new(mockTaskRepository)
	svc := NewTaskService(repo)

	stored := &model.Task{ID: uuid.New(), Title: "A", Content: "B"}
	repo.On("Insert", ctx, model.TaskFields{Title: "A", Content: "B"}).Return(stored, nil)

	task, err := svc.Create(ctx, &model.CreateTaskRequest{Title: ptr("A"), Content: ptr("B")})
	require.NoError(t, err)
	assert.Equal(t, stored, task)
	repo.AssertExpectations(t)
}

func TestTaskServiceCreateFailure(t *testing.T) {
	ctx := context.Background()
	repo := new(mockTaskRepository)
	svc := NewTaskService(repo)

	repo.On("Insert", ctx, mock.Anything).Return(nil, errors.New("connection refused"))

	_, err := svc.Create(ctx, &model.CreateTaskRequest{Title: ptr("A"), Content: ptr("B")})
	httpErr := requireHTTPError(t, err, http.StatusInternalServerError, errs.StatusError)
	assert.Equal(t, "Failed to create task: connection refused", httpErr.Message)
}

func TestTaskServiceListWindow(t *testing.T) {
	tests := []struct {
		name   string
		query  model.ListQuery
		limit  int
		offset int
	}{
		{"defaults", model.ListQuery{}, 10, 0},
		{"second page", model.ListQuery{Page: 2, Limit: 5}, 5, 5},
		{"page clamped", model.ListQuery{Page: -3, Limit: 5}, 5, 0},
		{"limit defaulted", model.ListQuery{Page: 3, Limit: 0}, 10, 20},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := context.Background()
			repo := new(mockTaskRepository)
			repo.On("ListPage", ctx, tt.limit, tt.offset).Return(nil, nil)

			tasks, err := NewTaskService(repo).List(ctx, &tt.query)
			require.NoError(t, err)
			assert.NotNil(t, tasks)
			assert.Empty(t, tasks)
			repo.AssertExpectations(t)
		})
	}
}

func TestTaskServiceGetNotFound(t *testing.T) {
	ctx := context.Background()
	repo := new(mockTaskRepository)
	id := uuid.New()
	repo.On("GetByID", ctx, id).Return(nil, errors.Wrapf(pgx.ErrNoRows, "get task %s", id))

	_, err := NewTaskService(repo).Get(ctx, id)
	httpErr := requireHTTPError(t, err, http.StatusNotFound, errs.StatusFail)
	assert.Contains(t, httpErr.Message, id.String())
	assert.ErrorIs(t, err, pgx.ErrNoRows)
}

func TestTaskServiceGetServerError(t *testing.T) {
	ctx := context.Background()
	repo := new(mockTaskRepository)
	id := uuid.New()
	repo.On("GetByID", ctx, id).Return(nil, errors.New("pool closed"))

	_, err := NewTaskService(repo).Get(ctx, id)
	requireHTTPError(t, err, http.StatusInternalServerError, errs.StatusError)
}

func TestTaskServiceUpdateMerges(t *testing.T) {
	ctx := context.Background()
	repo := new(mockTaskRepository)
	id := uuid.New()

	current := &model.Task{ID: id, Title: "A", Content: "B"}
	merged := model.TaskFields{Title: "C", Content: "B"}
	repo.On("GetByID", ctx, id).Return(current, nil)
	repo.On("Update", ctx, id, merged).Return(&model.Task{ID: id, Title: "C", Content: "B"}, nil)

	task, err := NewTaskService(repo).Update(ctx, id, &model.UpdateTaskRequest{Title: ptr("C")})
	require.NoError(t, err)
	assert.Equal(t, "C", task.Title)
	assert.Equal(t, "B", task.Content)
	repo.AssertExpectations(t)
}

func TestTaskServiceUpdateMissing(t *testing.T) {
	ctx := context.Background()
	repo := new(mockTaskRepository)
	id := uuid.New()
	repo.On("GetByID", ctx, id).Return(nil, errors.Wrap(pgx.ErrNoRows, "get task"))

	_, err := NewTaskService(repo).Update(ctx, id, &model.UpdateTaskRequest{Title: ptr("C")})
	httpErr := requireHTTPError(t, err, http.StatusNotFound, errs.StatusNotFound)
	assert.Contains(t, httpErr.Message, "Task not found: ")
	repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything, mock.Anything)
}

func TestTaskServiceUpdateWriteFailure(t *testing.T) {
	ctx := context.Background()
	repo := new(mockTaskRepository)
	id := uuid.New()
	repo.On("GetByID", ctx, id).Return(&model.Task{ID: id}, nil)
	repo.On("Update", ctx, id, mock.Anything).Return(nil, errors.New("deadlock detected"))

	_, err := NewTaskService(repo).Update(ctx, id, &model.UpdateTaskRequest{})
	httpErr := requireHTTPError(t, err, http.StatusInternalServerError, errs.StatusError)
	assert.Equal(t, "Failed to update task: deadlock detected", httpErr.Message)
}

func TestTaskServiceDelete(t *testing.T) {
	ctx := context.Background()
	repo := new(mockTaskRepository)
	id := uuid.New()
	repo.On("DeleteByID", ctx, id).Return(nil).Once()
	repo.On("DeleteByID", ctx, id).Return(errors.Wrap(pgx.ErrNoRows, "delete task")).Once()

	svc := NewTaskService(repo)
	require.NoError(t, svc.Delete(ctx, id))

	err := svc.Delete(ctx, id)
	requireHTTPError(t, err, http.StatusNotFound, errs.StatusFail)
}

func TestTaskServiceCreateNotNullViolation(t *testing.T) {
	ctx := context.Background()
	repo := new(mockTaskRepository)
	repo.On("Insert", ctx, mock.Anything).Return(nil, &pgconn.PgError{
		Code:       "23502",
		TableName:  "tasks",
		ColumnName: "content",
	})

	_, err := NewTaskService(repo).Create(ctx, &model.CreateTaskRequest{Title: ptr("A"), Content: ptr("B")})
	httpErr := requireHTTPError(t, err, http.StatusBadRequest, errs.StatusFail)
	assert.Equal(t, "The Content is required", httpErr.Message)
	assert.Equal(t, []errs.FieldError{{Field: "content", Error: "is required"}}, httpErr.Errors)
}

func TestTaskServiceUpdateExclusionViolationStaysInternal(t *testing.T) {
	ctx := context.Background()
	repo := new(mockTaskRepository)
	id := uuid.New()
	repo.On("GetByID", ctx, id).Return(&model.Task{ID: id, Title: "A", Content: "B"}, nil)
	repo.On("Update", ctx, id, mock.Anything).Return(nil, &pgconn.PgError{Code: "23P01", Message: "conflicting key value"})

	_, err := NewTaskService(repo).Update(ctx, id, &model.UpdateTaskRequest{})
	httpErr := requireHTTPError(t, err, http.StatusInternalServerError, errs.StatusError)
	assert.Contains(t, httpErr.Message, "Failed to update task: ")
}
