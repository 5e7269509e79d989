package profiles

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/Saubhagya1707/crying-tailor/internal/shared/server/middleware"
	"github.com/Saubhagya1707/crying-tailor/internal/shared/server/respond"
	"github.com/Saubhagya1707/crying-tailor/resume/model"
)

const maxUploadSize = 10 << 20 // 10MB

// Handler wires HTTP handlers to the service.
type Handler struct {
	Svc      *Service
	Importer Importer
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service, importer Importer) *Handler {
	return &Handler{Svc: svc, Importer: importer}
}

// RegisterRoutes attaches profile routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/profile", h.get)
	rg.POST("/profile", h.onboard)
	rg.PUT("/profile", h.replace)
	rg.POST("/profile/import", h.importText)
	rg.POST("/profile/import/file", h.importFile)
}

func (h *Handler) get(c *gin.Context) {
	res, err := h.Svc.Get(c.Request.Context(), middleware.UserIDFromContext(c))
	if err != nil {
		h.fail(c, err, "failed to load profile")
		return
	}
	respond.OK(c, res)
}

func (h *Handler) onboard(c *gin.Context) {
	var req model.Resume
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}
	res, err := h.Svc.Onboard(c.Request.Context(), middleware.UserIDFromContext(c), req)
	if err != nil {
		h.fail(c, err, "failed to save profile")
		return
	}
	respond.JSON(c, http.StatusCreated, res)
}

func (h *Handler) replace(c *gin.Context) {
	var req model.Resume
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}
	res, err := h.Svc.Save(c.Request.Context(), middleware.UserIDFromContext(c), req)
	if err != nil {
		h.fail(c, err, "failed to save profile")
		return
	}
	respond.OK(c, res)
}

type importRequest struct {
	Text string `json:"text"`
}

func (h *Handler) importText(c *gin.Context) {
	c.Set(middleware.OperationKey, "extract")
	var req importRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}
	res, err := h.Importer.Import(c.Request.Context(), middleware.UserIDFromContext(c), req.Text)
	if err != nil {
		h.fail(c, err, "failed to import resume")
		return
	}
	respond.OK(c, res)
}

func (h *Handler) importFile(c *gin.Context) {
	c.Set(middleware.OperationKey, "extract")
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxUploadSize)

	fileHeader, err := c.FormFile("file")
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "file is required", nil)
		return
	}
	file, err := fileHeader.Open()
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "unable to read file", nil)
		return
	}
	defer file.Close()

	res, err := h.Importer.ImportFile(c.Request.Context(), middleware.UserIDFromContext(c), fileHeader.Filename, file)
	if err != nil {
		h.fail(c, err, "failed to import resume")
		return
	}
	respond.OK(c, res)
}

func (h *Handler) fail(c *gin.Context, err error, fallback string) {
	if respond.LLMError(c, err) {
		return
	}
	var verr *ValidationError
	switch {
	case errors.As(err, &verr):
		respond.Error(c, http.StatusBadRequest, "validation_error", "profile failed validation", verr.Problems)
	case errors.Is(err, ErrInvalidInput):
		respond.Error(c, http.StatusBadRequest, "validation_error", strings.TrimPrefix(err.Error(), "invalid input: "), nil)
	case errors.Is(err, ErrNotFound):
		respond.Error(c, http.StatusNotFound, "profile_not_found", "complete onboarding first", nil)
	case errors.Is(err, ErrAlreadyOnboarded):
		respond.Error(c, http.StatusConflict, "already_onboarded", "profile already exists, use PUT to update", nil)
	default:
		respond.Error(c, http.StatusInternalServerError, "internal_error", fallback, nil)
	}
}
