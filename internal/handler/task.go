package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/wil-ckaew/taskdocs/internal/model"
	"github.com/wil-ckaew/taskdocs/internal/server"
	"github.com/wil-ckaew/taskdocs/internal/service"
	"github.com/wil-ckaew/taskdocs/internal/validation"
)

type TaskHandler struct {
	Handler
	taskService *service.TaskService
}

func NewTaskHandler(s *server.Server, taskService *service.TaskService) *TaskHandler {
	return &TaskHandler{
		Handler:     NewHandler(s),
		taskService: taskService,
	}
}

func (h *TaskHandler) CreateTask(c echo.Context, req *model.CreateTaskRequest) (*model.TaskResponse, error) {
	task, err := h.taskService.Create(c.Request().Context(), req)
	if err != nil {
		return nil, err
	}
	return &model.TaskResponse{Status: model.StatusSuccess, Task: task}, nil
}

func (h *TaskHandler) ListTasks(c echo.Context, query *model.ListQuery) (*model.TaskListResponse, error) {
	tasks, err := h.taskService.List(c.Request().Context(), query)
	if err != nil {
		return nil, err
	}
	return &model.TaskListResponse{Status: model.StatusSuccess, Task: tasks}, nil
}

func (h *TaskHandler) GetTask(c echo.Context, req *model.IDParam) (*model.TaskResponse, error) {
	id, err := validation.ParseUUID("id", req.ID)
	if err != nil {
		return nil, err
	}

	task, err := h.taskService.Get(c.Request().Context(), id)
	if err != nil {
		return nil, err
	}
	return &model.TaskResponse{Status: model.StatusSuccess, Task: task}, nil
}

func (h *TaskHandler) UpdateTask(c echo.Context, req *model.UpdateTaskRequest) (*model.TaskResponse, error) {
	id, err := validation.ParseUUID("id", req.ID)
	if err != nil {
		return nil, err
	}

	task, err := h.taskService.Update(c.Request().Context(), id, req)
	if err != nil {
		return nil, err
	}
	return &model.TaskResponse{Status: model.StatusSuccess, Task: task}, nil
}

func (h *TaskHandler) DeleteTask(c echo.Context, req *model.IDParam) error {
	id, err := validation.ParseUUID("id", req.ID)
	if err != nil {
		return err
	}
	return h.taskService.Delete(c.Request().Context(), id)
}

// RegisterRoutes mounts the task endpoints on g.
func (h *TaskHandler) RegisterRoutes(g *echo.Group) {
	g.POST("/task", Handle(h.Handler, h.CreateTask, http.StatusOK, newRequest[model.CreateTaskRequest]))
	g.GET("/tasks", Handle(h.Handler, h.ListTasks, http.StatusOK, newRequest[model.ListQuery]))
	g.GET("/tasks/:id", Handle(h.Handler, h.GetTask, http.StatusOK, newRequest[model.IDParam]))
	g.PATCH("/tasks/:id", Handle(h.Handler, h.UpdateTask, http.StatusOK, newRequest[model.UpdateTaskRequest]))
	g.DELETE("/tasks/:id", HandleNoContent(h.Handler, h.DeleteTask, http.StatusNoContent, newRequest[model.IDParam]))
}

func newRequest[T any]() *T {
	return new(T)
}
