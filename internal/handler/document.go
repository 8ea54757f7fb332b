package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/wil-ckaew/taskdocs/internal/model"
	"github.com/wil-ckaew/taskdocs/internal/server"
	"github.com/wil-ckaew/taskdocs/internal/service"
	"github.com/wil-ckaew/taskdocs/internal/validation"
)

type DocumentHandler struct {
	Handler
	documentService *service.DocumentService
}

func NewDocumentHandler(s *server.Server, documentService *service.DocumentService) *DocumentHandler {
	return &DocumentHandler{
		Handler:         NewHandler(s),
		documentService: documentService,
	}
}

func (h *DocumentHandler) CreateDocument(c echo.Context, req *model.CreateDocumentRequest) (*model.DocumentResponse, error) {
	doc, err := h.documentService.Create(c.Request().Context(), req)
	if err != nil {
		return nil, err
	}
	return &model.DocumentResponse{Status: model.StatusSuccess, Document: doc}, nil
}

func (h *DocumentHandler) ListDocuments(c echo.Context, query *model.ListQuery) (*model.DocumentListResponse, error) {
	docs, err := h.documentService.List(c.Request().Context(), query)
	if err != nil {
		return nil, err
	}
	return &model.DocumentListResponse{Status: model.StatusSuccess, Documents: docs}, nil
}

func (h *DocumentHandler) GetDocument(c echo.Context, req *model.IDParam) (*model.DocumentResponse, error) {
	id, err := validation.ParseUUID("id", req.ID)
	if err != nil {
		return nil, err
	}

	doc, err := h.documentService.Get(c.Request().Context(), id)
	if err != nil {
		return nil, err
	}
	return &model.DocumentResponse{Status: model.StatusSuccess, Document: doc}, nil
}

func (h *DocumentHandler) UpdateDocument(c echo.Context, req *model.UpdateDocumentRequest) (*model.DocumentResponse, error) {
	id, err := validation.ParseUUID("id", req.ID)
	if err != nil {
		return nil, err
	}

	doc, err := h.documentService.Update(c.Request().Context(), id, req)
	if err != nil {
		return nil, err
	}
	return &model.DocumentResponse{Status: model.StatusSuccess, Document: doc}, nil
}

func (h *DocumentHandler) DeleteDocument(c echo.Context, req *model.IDParam) error {
	id, err := validation.ParseUUID("id", req.ID)
	if err != nil {
		return err
	}
	return h.documentService.Delete(c.Request().Context(), id)
}

func (h *DocumentHandler) RegisterRoutes(g *echo.Group) {
	g.POST("/documents", Handle(h.Handler, h.CreateDocument, http.StatusOK, newRequest[model.CreateDocumentRequest]))
	g.GET("/documents", Handle(h.Handler, h.ListDocuments, http.StatusOK, newRequest[model.ListQuery]))
	g.GET("/documents/:id", Handle(h.Handler, h.GetDocument, http.StatusOK, newRequest[model.IDParam]))
	g.PATCH("/documents/:id", Handle(h.Handler, h.UpdateDocument, http.StatusOK, newRequest[model.UpdateDocumentRequest]))
	g.DELETE("/documents/:id", HandleNoContent(h.Handler, h.DeleteDocument, http.StatusNoContent, newRequest[model.IDParam]))
}
