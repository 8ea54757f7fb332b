// Package service holds the resource operations behind the HTTP handlers.
//
// Services own the request semantics: pagination windows, read-merge-write
// updates, filename generation, and the mapping of storage failures onto
// response envelopes. Storage errors are classified with sqlerr.KindOf;
// each operation decides which envelope a classification produces.
package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/wil-ckaew/taskdocs/internal/errs"
	"github.com/wil-ckaew/taskdocs/internal/model"
	"github.com/wil-ckaew/taskdocs/internal/sqlerr"
)

// TaskRepository is the storage gateway for tasks.
type TaskRepository interface {
	Insert(ctx context.Context, fields model.TaskFields) (*model.Task, error)
	ListPage(ctx context.Context, limit, offset int) ([]model.Task, error)
	GetByID(ctx context.Context, id uuid.UUID) (*model.Task, error)
	Update(ctx context.Context, id uuid.UUID, fields model.TaskFields) (*model.Task, error)
	DeleteByID(ctx context.Context, id uuid.UUID) error
}

// DocumentRepository is the storage gateway for documents.
type DocumentRepository interface {
	Insert(ctx context.Context, fields model.DocumentFields, filename string) (*model.Document, error)
	ListPage(ctx context.Context, limit, offset int) ([]model.Document, error)
	GetByID(ctx context.Context, id uuid.UUID) (*model.Document, error)
	Update(ctx context.Context, id uuid.UUID, fields model.DocumentFields) (*model.Document, error)
	DeleteByID(ctx context.Context, id uuid.UUID) error
}

// writeFailure maps a failed insert or update. Constraint violations
// become 409 or 400 fail envelopes; anything else is a 500 whose message
// starts with action.
func writeFailure(err error, action string) error {
	if sqlerr.KindOf(err) == sqlerr.KindConstraintViolation {
		var httpErr *errs.HTTPError
		if errors.As(sqlerr.HandleError(err), &httpErr) && httpErr.Code < 500 {
			return httpErr.Wrap(err)
		}
	}
	return errs.NewInternalServerError(fmt.Sprintf("%s: %v", action, err)).Wrap(err)
}
