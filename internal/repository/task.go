package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/pkg/errors"

	"github.com/wil-ckaew/taskdocs/internal/model"
)

const taskColumns = "id, title, content, created_at"

type TaskRepository struct {
	db DBTX
}

func NewTaskRepository(db DBTX) *TaskRepository {
	return &TaskRepository{db: db}
}

func (r *TaskRepository) Insert(ctx context.Context, fields model.TaskFields) (*model.Task, error) {
	stmt := `
		INSERT INTO tasks (title, content)
		VALUES ($1, $2)
		RETURNING ` + taskColumns

	rows, err := r.db.Query(ctx, stmt, fields.Title, fields.Content)
	if err != nil {
		return nil, errors.Wrap(err, "insert task")
	}

	task, err := pgx.CollectExactlyOneRow(rows, pgx.RowToAddrOfStructByName[model.Task])
	if err != nil {
		return nil, errors.Wrap(err, "insert task")
	}
	return task, nil
}

// ListPage returns at most limit tasks ordered by id, skipping offset.
func (r *TaskRepository) ListPage(ctx context.Context, limit, offset int) ([]model.Task, error) {
	stmt := `SELECT ` + taskColumns + ` FROM tasks ORDER BY id LIMIT $1 OFFSET $2`

	rows, err := r.db.Query(ctx, stmt, limit, offset)
	if err != nil {
		return nil, errors.Wrap(err, "list tasks")
	}

	tasks, err := pgx.CollectRows(rows, pgx.RowToStructByName[model.Task])
	if err != nil {
		return nil, errors.Wrap(err, "list tasks")
	}
	return tasks, nil
}

// GetByID returns an error wrapping pgx.ErrNoRows when id is unknown.
func (r *TaskRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Task, error) {
	stmt := `SELECT ` + taskColumns + ` FROM tasks WHERE id = $1`

	rows, err := r.db.Query(ctx, stmt, id)
	if err != nil {
		return nil, errors.Wrapf(err, "get task %s", id)
	}

	task, err := pgx.CollectExactlyOneRow(rows, pgx.RowToAddrOfStructByName[model.Task])
	if err != nil {
		return nil, errors.Wrapf(err, "get task %s", id)
	}
	return task, nil
}

// Update writes the full field set. It does not compare versions, so
// concurrent updates to the same row are last-write-wins.
func (r *TaskRepository) Update(ctx context.Context, id uuid.UUID, fields model.TaskFields) (*model.Task, error) {
	stmt := `
		UPDATE tasks
		SET title = $1, content = $2
		WHERE id = $3
		RETURNING ` + taskColumns

	rows, err := r.db.Query(ctx, stmt, fields.Title, fields.Content, id)
	if err != nil {
		return nil, errors.Wrapf(err, "update task %s", id)
	}

	task, err := pgx.CollectExactlyOneRow(rows, pgx.RowToAddrOfStructByName[model.Task])
	if err != nil {
		return nil, errors.Wrapf(err, "update task %s", id)
	}
	return task, nil
}

// DeleteByID reports pgx.ErrNoRows when nothing was deleted.
func (r *TaskRepository) DeleteByID(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM tasks WHERE id = $1`, id)
	if err != nil {
		return errors.Wrapf(err, "delete task %s", id)
	}
	if tag.RowsAffected() == 0 {
		return errors.Wrapf(pgx.ErrNoRows, "delete task %s", id)
	}
	return nil
}
