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

func TestDocumentServiceCreateGeneratesFilename(t *testing.T) {
	ctx := context.Background()
	repo := new(mockDocumentRepository)
	userID := uuid.New()

	fields := model.DocumentFields{UserID: userID, DocType: "passport"}
	stored := &model.Document{ID: uuid.New(), UserID: userID, DocType: "passport", Filename: "document_fixed.jpg"}
	repo.On("Insert", ctx, fields, "document_fixed.jpg").Return(stored, nil)

	svc := NewDocumentService(repo, func() string { return "document_fixed.jpg" })
	doc, err := svc.Create(ctx, &model.CreateDocumentRequest{UserID: userID.String(), DocType: ptr("passport")})
	require.NoError(t, err)
	assert.Equal(t, "document_fixed.jpg", doc.Filename)
	repo.AssertExpectations(t)
}

func TestDocumentServiceDefaultFilename(t *testing.T) {
	ctx := context.Background()
	repo := new(mockDocumentRepository)
	repo.On("Insert", ctx, mock.Anything, mock.MatchedBy(func(name string) bool {
		return len(name) == len("document_")+36+len(".jpg")
	})).Return(&model.Document{}, nil)

	_, err := NewDocumentService(repo, nil).Create(ctx, &model.CreateDocumentRequest{
		UserID:  uuid.NewString(),
		DocType: ptr("invoice"),
	})
	require.NoError(t, err)
	repo.AssertExpectations(t)
}

func TestDocumentServiceCreateFailure(t *testing.T) {
	ctx := context.Background()
	repo := new(mockDocumentRepository)
	repo.On("Insert", ctx, mock.Anything, mock.Anything).Return(nil, errors.New("duplicate key"))

	_, err := NewDocumentService(repo, nil).Create(ctx, &model.CreateDocumentRequest{
		UserID:  uuid.NewString(),
		DocType: ptr("invoice"),
	})
	httpErr := requireHTTPError(t, err, http.StatusInternalServerError, errs.StatusError)
	assert.Equal(t, "Failed to create document: duplicate key", httpErr.Message)
}

func TestDocumentServiceCreateDuplicateFilename(t *testing.T) {
	ctx := context.Background()
	repo := new(mockDocumentRepository)
	dup := &pgconn.PgError{
		Code:           "23505",
		Message:        "duplicate key value violates unique constraint",
		TableName:      "documents",
		ConstraintName: "documents_filename_key",
	}
	repo.On("Insert", ctx, mock.Anything, mock.Anything).Return(nil, errors.Wrap(dup, "insert document"))

	_, err := NewDocumentService(repo, nil).Create(ctx, &model.CreateDocumentRequest{
		UserID:  uuid.NewString(),
		DocType: ptr("invoice"),
	})
	httpErr := requireHTTPError(t, err, http.StatusConflict, errs.StatusFail)
	assert.Equal(t, "A Document with this Filename already exists", httpErr.Message)
	assert.ErrorIs(t, err, dup)
}

func TestDocumentServiceUpdateUnknownOwner(t *testing.T) {
	ctx := context.Background()
	repo := new(mockDocumentRepository)
	id := uuid.New()
	repo.On("GetByID", ctx, id).Return(&model.Document{ID: id, UserID: uuid.New(), DocType: "passport"}, nil)
	repo.On("Update", ctx, id, mock.Anything).Return(nil, &pgconn.PgError{
		Code:       "23503",
		TableName:  "documents",
		ColumnName: "user_id",
	})

	_, err := NewDocumentService(repo, nil).Update(ctx, id, &model.UpdateDocumentRequest{UserID: ptr(uuid.NewString())})
	httpErr := requireHTTPError(t, err, http.StatusBadRequest, errs.StatusFail)
	assert.Equal(t, "The referenced User does not exist", httpErr.Message)
}

func TestDocumentServiceListEmpty(t *testing.T) {
	ctx := context.Background()
	repo := new(mockDocumentRepository)
	repo.On("ListPage", ctx, 10, 0).Return([]model.Document(nil), nil)

	docs, err := NewDocumentService(repo, nil).List(ctx, &model.ListQuery{})
	require.NoError(t, err)
	assert.NotNil(t, docs)
	assert.Empty(t, docs)
}

func TestDocumentServiceGetNotFound(t *testing.T) {
	ctx := context.Background()
	repo := new(mockDocumentRepository)
	id := uuid.New()
	repo.On("GetByID", ctx, id).Return(nil, errors.Wrap(pgx.ErrNoRows, "get document"))

	_, err := NewDocumentService(repo, nil).Get(ctx, id)
	requireHTTPError(t, err, http.StatusNotFound, errs.StatusFail)
}

func TestDocumentServiceUpdateKeepsFilename(t *testing.T) {
	ctx := context.Background()
	repo := new(mockDocumentRepository)
	id := uuid.New()
	owner := uuid.New()
	newOwner := uuid.New()

	current := &model.Document{ID: id, UserID: owner, DocType: "passport", Filename: "document_a.jpg"}
	repo.On("GetByID", ctx, id).Return(current, nil)
	repo.On("Update", ctx, id, model.DocumentFields{UserID: newOwner, DocType: "passport"}).
		Return(&model.Document{ID: id, UserID: newOwner, DocType: "passport", Filename: "document_a.jpg"}, nil)

	doc, err := NewDocumentService(repo, nil).Update(ctx, id, &model.UpdateDocumentRequest{UserID: ptr(newOwner.String())})
	require.NoError(t, err)
	assert.Equal(t, newOwner, doc.UserID)
	assert.Equal(t, "document_a.jpg", doc.Filename)
	repo.AssertExpectations(t)
}

func TestDocumentServiceUpdateMissing(t *testing.T) {
	ctx := context.Background()
	repo := new(mockDocumentRepository)
	id := uuid.New()
	repo.On("GetByID", ctx, id).Return(nil, errors.Wrap(pgx.ErrNoRows, "get document"))

	_, err := NewDocumentService(repo, nil).Update(ctx, id, &model.UpdateDocumentRequest{DocType: ptr("x")})
	httpErr := requireHTTPError(t, err, http.StatusNotFound, errs.StatusNotFound)
	assert.Contains(t, httpErr.Message, "Document not found: ")
}

func TestDocumentServiceDeleteMissing(t *testing.T) {
	ctx := context.Background()
	repo := new(mockDocumentRepository)
	id := uuid.New()
	repo.On("DeleteByID", ctx, id).Return(errors.Wrap(pgx.ErrNoRows, "delete document"))

	err := NewDocumentService(repo, nil).Delete(ctx, id)
	httpErr := requireHTTPError(t, err, http.StatusNotFound, errs.StatusFail)
	assert.Contains(t, httpErr.Message, "no rows in result set")
}
