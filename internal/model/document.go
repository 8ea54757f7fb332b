package model

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Document is a row of the documents table.
type Document struct {
	ID        uuid.UUID  `json:"id" db:"id"`
	UserID    uuid.UUID  `json:"user_id" db:"user_id"`
	DocType   string     `json:"doc_type" db:"doc_type"`
	Filename  string     `json:"filename" db:"filename"`
	CreatedAt *time.Time `json:"created_at" db:"created_at"`
}

// CreateDocumentRequest is the body of POST /api/documents.
// Any client supplied filename is ignored; see NewDocumentFilename.
type CreateDocumentRequest struct {
	UserID  string  `json:"user_id" validate:"required,uuid_any"`
	DocType *string `json:"doc_type" validate:"required"`
}

func (r *CreateDocumentRequest) Validate() error {
	return validate.Struct(r)
}

// UpdateDocumentRequest is the body of PATCH /api/documents/:id.
type UpdateDocumentRequest struct {
	ID      string  `param:"id" json:"-" validate:"required,uuid_any"`
	UserID  *string `json:"user_id" validate:"omitempty,uuid_any"`
	DocType *string `json:"doc_type"`
}

func (r *UpdateDocumentRequest) Validate() error {
	return validate.Struct(r)
}

// Merge resolves the request against the stored document. The filename
// is not part of DocumentFields and so never changes after creation.
func (r *UpdateDocumentRequest) Merge(current *Document) DocumentFields {
	fields := DocumentFields{
		UserID:  current.UserID,
		DocType: current.DocType,
	}
	if r.UserID != nil {
		// Validate has already checked the format.
		fields.UserID = uuid.MustParse(*r.UserID)
	}
	if r.DocType != nil {
		fields.DocType = *r.DocType
	}
	return fields
}

// DocumentFields is the client controlled part of a document.
type DocumentFields struct {
	UserID  uuid.UUID
	DocType string
}

// NewDocumentFilename derives a filename from a fresh random token.
func NewDocumentFilename() string {
	return fmt.Sprintf("document_%s.jpg", uuid.New())
}
