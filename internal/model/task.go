package model

import (
	"time"

	"github.com/google/uuid"
)

// Task is a row of the tasks table.
type Task struct {
	ID        uuid.UUID  `json:"id" db:"id"`
	Title     string     `json:"title" db:"title"`
	Content   string     `json:"content" db:"content"`
	CreatedAt *time.Time `json:"created_at" db:"created_at"`
}

// CreateTaskRequest is the body of POST /api/task.
//
// Fields are pointers so that "present but empty" is accepted while
// "absent" is rejected: validation is on presence and type only.
type CreateTaskRequest struct {
	Title   *string `json:"title" validate:"required"`
	Content *string `json:"content" validate:"required"`
}

func (r *CreateTaskRequest) Validate() error {
	return validate.Struct(r)
}

// UpdateTaskRequest is the body of PATCH /api/tasks/:id.
// A nil field means "keep the stored value".
type UpdateTaskRequest struct {
	ID      string  `param:"id" json:"-" validate:"required,uuid_any"`
	Title   *string `json:"title"`
	Content *string `json:"content"`
}

func (r *UpdateTaskRequest) Validate() error {
	return validate.Struct(r)
}

// Merge resolves the request against the stored task. Absent fields
// take the stored value, present fields replace it.
func (r *UpdateTaskRequest) Merge(current *Task) TaskFields {
	fields := TaskFields{
		Title:   current.Title,
		Content: current.Content,
	}
	if r.Title != nil {
		fields.Title = *r.Title
	}
	if r.Content != nil {
		fields.Content = *r.Content
	}
	return fields
}

// TaskFields is the mutable part of a task, as written by insert and update.
type TaskFields struct {
	Title   string
	Content string
}
