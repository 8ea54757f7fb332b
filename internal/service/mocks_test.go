package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/wil-ckaew/taskdocs/internal/model"
)

type mockTaskRepository struct {
	mock.Mock
}

func (m *mockTaskRepository) Insert(ctx context.Context, fields model.TaskFields) (*model.Task, error) {
	args := m.Called(ctx, fields)
	task, _ := args.Get(0).(*model.Task)
	return task, args.Error(1)
}

func (m *mockTaskRepository) ListPage(ctx context.Context, limit, offset int) ([]model.Task, error) {
	args := m.Called(ctx, limit, offset)
	tasks, _ := args.Get(0).([]model.Task)
	return tasks, args.Error(1)
}

func (m *mockTaskRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Task, error) {
	args := m.Called(ctx, id)
	task, _ := args.Get(0).(*model.Task)
	return task, args.Error(1)
}

func (m *mockTaskRepository) Update(ctx context.Context, id uuid.UUID, fields model.TaskFields) (*model.Task, error) {
	args := m.Called(ctx, id, fields)
	task, _ := args.Get(0).(*model.Task)
	return task, args.Error(1)
}

func (m *mockTaskRepository) DeleteByID(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

type mockDocumentRepository struct {
	mock.Mock
}

func (m *mockDocumentRepository) Insert(ctx context.Context, fields model.DocumentFields, filename string) (*model.Document, error) {
	args := m.Called(ctx, fields, filename)
	doc, _ := args.Get(0).(*model.Document)
	return doc, args.Error(1)
}

func (m *mockDocumentRepository) ListPage(ctx context.Context, limit, offset int) ([]model.Document, error) {
	args := m.Called(ctx, limit, offset)
	docs, _ := args.Get(0).([]model.Document)
	return docs, args.Error(1)
}

func (m *mockDocumentRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Document, error) {
	args := m.Called(ctx, id)
	doc, _ := args.Get(0).(*model.Document)
	return doc, args.Error(1)
}

func (m *mockDocumentRepository) Update(ctx context.Context, id uuid.UUID, fields model.DocumentFields) (*model.Document, error) {
	args := m.Called(ctx, id, fields)
	doc, _ := args.Get(0).(*model.Document)
	return doc, args.Error(1)
}

func (m *mockDocumentRepository) DeleteByID(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

func ptr[T any](v T) *T {
	return &v
}
