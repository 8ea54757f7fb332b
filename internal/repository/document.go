package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/pkg/errors"

	"github.com/wil-ckaew/taskdocs/internal/model"
)

const documentColumns = "id, user_id, doc_type, filename, created_at"

type DocumentRepository struct {
	db DBTX
}

func NewDocumentRepository(db DBTX) *DocumentRepository {
	return &DocumentRepository{db: db}
}

// Insert stores a document under filename, which the caller generates.
func (r *DocumentRepository) Insert(ctx context.Context, fields model.DocumentFields, filename string) (*model.Document, error) {
	stmt := `
		INSERT INTO documents (user_id, doc_type, filename)
		VALUES ($1, $2, $3)
		RETURNING ` + documentColumns

	rows, err := r.db.Query(ctx, stmt, fields.UserID, fields.DocType, filename)
	if err != nil {
		return nil, errors.Wrap(err, "insert document")
	}

	doc, err := pgx.CollectExactlyOneRow(rows, pgx.RowToAddrOfStructByName[model.Document])
	if err != nil {
		return nil, errors.Wrap(err, "insert document")
	}
	return doc, nil
}

func (r *DocumentRepository) ListPage(ctx context.Context, limit, offset int) ([]model.Document, error) {
	stmt := `SELECT ` + documentColumns + ` FROM documents ORDER BY id LIMIT $1 OFFSET $2`

	rows, err := r.db.Query(ctx, stmt, limit, offset)
	if err != nil {
		return nil, errors.Wrap(err, "list documents")
	}

	docs, err := pgx.CollectRows(rows, pgx.RowToStructByName[model.Document])
	if err != nil {
		return nil, errors.Wrap(err, "list documents")
	}
	return docs, nil
}

func (r *DocumentRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Document, error) {
	stmt := `SELECT ` + documentColumns + ` FROM documents WHERE id = $1`

	rows, err := r.db.Query(ctx, stmt, id)
	if err != nil {
		return nil, errors.Wrapf(err, "get document %s", id)
	}

	doc, err := pgx.CollectExactlyOneRow(rows, pgx.RowToAddrOfStructByName[model.Document])
	if err != nil {
		return nil, errors.Wrapf(err, "get document %s", id)
	}
	return doc, nil
}

// Update writes owner and type; filename and created_at are untouched.
func (r *DocumentRepository) Update(ctx context.Context, id uuid.UUID, fields model.DocumentFields) (*model.Document, error) {
	stmt := `
		UPDATE documents
		SET user_id = $1, doc_type = $2
		WHERE id = $3
		RETURNING ` + documentColumns

	rows, err := r.db.Query(ctx, stmt, fields.UserID, fields.DocType, id)
	if err != nil {
		return nil, errors.Wrapf(err, "update document %s", id)
	}

	doc, err := pgx.CollectExactlyOneRow(rows, pgx.RowToAddrOfStructByName[model.Document])
	if err != nil {
		return nil, errors.Wrapf(err, "update document %s", id)
	}
	return doc, nil
}

func (r *DocumentRepository) DeleteByID(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM documents WHERE id = $1`, id)
	if err != nil {
		return errors.Wrapf(err, "delete document %s", id)
	}
	if tag.RowsAffected() == 0 {
		return errors.Wrapf(pgx.ErrNoRows, "delete document %s", id)
	}
	return nil
}
