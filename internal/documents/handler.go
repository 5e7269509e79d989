package documents

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/Saubhagya1707/crying-tailor/internal/shared/server/middleware"
	"github.com/Saubhagya1707/crying-tailor/internal/shared/server/respond"
	"github.com/Saubhagya1707/crying-tailor/resume/render"
)

// Handler wires HTTP handlers to the service.
type Handler struct {
	Svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches document routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/documents", h.create)
	rg.GET("/documents", h.list)
	rg.GET("/documents/:id", h.get)
	rg.PUT("/documents/:id", h.update)
	rg.DELETE("/documents/:id", h.delete)
	rg.GET("/documents/:id/export", h.export)
	rg.POST("/export", h.exportContent)
}

type createRequest struct {
	Title          *string `json:"title"`
	JobDescription string  `json:"jobDescription"`
}

func (h *Handler) create(c *gin.Context) {
	c.Set(middleware.OperationKey, "tailor")
	userID := middleware.UserIDFromContext(c)

	var req createRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}

	doc, err := h.Svc.Generate(c.Request.Context(), userID, req.Title, req.JobDescription)
	if err != nil {
		h.fail(c, err, "failed to generate document")
		return
	}
	c.Set(middleware.DocumentIDKey, doc.ID)
	respond.JSON(c, http.StatusCreated, doc)
}

func (h *Handler) list(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)

	limit := 20
	offset := 0
	if v := c.Query("limit"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			limit = parsed
		}
	}
	if limit <= 0 {
		limit = 20
	}
	if limit > 50 {
		limit = 50
	}
	if v := c.Query("offset"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			offset = parsed
		}
	}
	if offset < 0 {
		offset = 0
	}

	docs, err := h.Svc.List(c.Request.Context(), userID, limit, offset)
	if err != nil {
		h.fail(c, err, "failed to list documents")
		return
	}
	respond.OK(c, docs)
}

func (h *Handler) get(c *gin.Context) {
	id := c.Param("id")
	c.Set(middleware.DocumentIDKey, id)

	doc, err := h.Svc.Get(c.Request.Context(), middleware.UserIDFromContext(c), id)
	if err != nil {
		h.fail(c, err, "failed to fetch document")
		return
	}
	respond.OK(c, doc)
}

func (h *Handler) update(c *gin.Context) {
	id := c.Param("id")
	c.Set(middleware.DocumentIDKey, id)

	var req UpdateInput
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}

	doc, err := h.Svc.Update(c.Request.Context(), middleware.UserIDFromContext(c), id, req)
	if err != nil {
		h.fail(c, err, "failed to update document")
		return
	}
	respond.OK(c, doc)
}

func (h *Handler) delete(c *gin.Context) {
	id := c.Param("id")
	c.Set(middleware.DocumentIDKey, id)

	if err := h.Svc.Delete(c.Request.Context(), middleware.UserIDFromContext(c), id); err != nil {
		h.fail(c, err, "failed to delete document")
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *Handler) export(c *gin.Context) {
	c.Set(middleware.OperationKey, "export")
	id := c.Param("id")
	c.Set(middleware.DocumentIDKey, id)

	name, pdf, err := h.Svc.Export(c.Request.Context(), middleware.UserIDFromContext(c), id)
	if err != nil {
		h.fail(c, err, "failed to export document")
		return
	}
	writePDF(c, name, pdf)
}

type exportRequest struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

func (h *Handler) exportContent(c *gin.Context) {
	c.Set(middleware.OperationKey, "export")

	var req exportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}

	name, pdf, err := h.Svc.ExportContent(c.Request.Context(), req.Title, req.Content)
	if err != nil {
		h.fail(c, err, "failed to export document")
		return
	}
	writePDF(c, name, pdf)
}

func writePDF(c *gin.Context, name string, pdf []byte) {
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", name))
	c.Header("Cache-Control", "no-store")
	c.Data(http.StatusOK, "application/pdf", pdf)
}

func (h *Handler) fail(c *gin.Context, err error, fallback string) {
	if respond.LLMError(c, err) {
		return
	}
	switch {
	case errors.Is(err, ErrInvalidInput):
		respond.Error(c, http.StatusBadRequest, "validation_error", err.Error(), nil)
	case errors.Is(err, render.ErrEmptyContent):
		respond.Error(c, http.StatusBadRequest, "validation_error", err.Error(), nil)
	case errors.Is(err, ErrNotFound):
		respond.Error(c, http.StatusNotFound, "not_found", "document not found", nil)
	case errors.Is(err, render.ErrExport):
		respond.Error(c, http.StatusInternalServerError, "export_failed", "PDF export failed. Please try again or copy the text instead.", nil)
	default:
		respond.Error(c, http.StatusInternalServerError, "internal_error", fallback, nil)
	}
}
