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

type DocumentService struct {
	repo        DocumentRepository
	newFilename func() string
}

// NewDocumentService builds the service. newFilename may be nil, in which
// case model.NewDocumentFilename is used.
func NewDocumentService(repo DocumentRepository, newFilename func() string) *DocumentService {
	if newFilename == nil {
		newFilename = model.NewDocumentFilename
	}
	return &DocumentService{repo: repo, newFilename: newFilename}
}

// Create stores a document under a freshly generated filename.
func (s *DocumentService) Create(ctx context.Context, req *model.CreateDocumentRequest) (*model.Document, error) {
	userID, err := uuid.Parse(req.UserID)
	if err != nil {
		return nil, errs.NewBadRequestError("Validation failed", []errs.FieldError{
			{Field: "user_id", Error: "must be a valid UUID"},
		})
	}

	doc, err := s.repo.Insert(ctx, model.DocumentFields{
		UserID:  userID,
		DocType: *req.DocType,
	}, s.newFilename())
	if err != nil {
		return nil, writeFailure(err, "Failed to create document")
	}

	zerolog.Ctx(ctx).Info().
		Str("event", "document_created").
		Str("document_id", doc.ID.String()).
		Str("filename", doc.Filename).
		Msg("document created")

	return doc, nil
}

func (s *DocumentService) List(ctx context.Context, query *model.ListQuery) ([]model.Document, error) {
	limit, offset := query.Window()

	docs, err := s.repo.ListPage(ctx, limit, offset)
	if err != nil {
		return nil, errs.NewInternalServerError(fmt.Sprintf("Failed to get documents: %v", err)).Wrap(err)
	}
	if docs == nil {
		docs = []model.Document{}
	}
	return docs, nil
}

func (s *DocumentService) Get(ctx context.Context, id uuid.UUID) (*model.Document, error) {
	doc, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if sqlerr.IsNotFound(err) {
			return nil, errs.NewFailError(http.StatusNotFound, fmt.Sprintf("Document not found: %s", id)).Wrap(err)
		}
		return nil, errs.NewInternalServerError(fmt.Sprintf("Failed to get document: %v", err)).Wrap(err)
	}
	return doc, nil
}

func (s *DocumentService) Update(ctx context.Context, id uuid.UUID, req *model.UpdateDocumentRequest) (*model.Document, error) {
	current, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if sqlerr.IsNotFound(err) {
			return nil, errs.NewNotFoundError(fmt.Sprintf("Document not found: %v", err)).Wrap(err)
		}
		return nil, errs.NewInternalServerError(fmt.Sprintf("Failed to get document: %v", err)).Wrap(err)
	}

	doc, err := s.repo.Update(ctx, id, req.Merge(current))
	if err != nil {
		return nil, writeFailure(err, "Failed to update document")
	}

	zerolog.Ctx(ctx).Info().
		Str("event", "document_updated").
		Str("document_id", doc.ID.String()).
		Msg("document updated")

	return doc, nil
}

func (s *DocumentService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.DeleteByID(ctx, id); err != nil {
		return errs.NewFailError(http.StatusNotFound, fmt.Sprintf("Failed to delete document: %v", err)).Wrap(err)
	}

	zerolog.Ctx(ctx).Info().
		Str("event", "document_deleted").
		Str("document_id", id.String()).
		Msg("document deleted")

	return nil
}
