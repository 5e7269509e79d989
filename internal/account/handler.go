package account

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Saubhagya1707/crying-tailor/internal/shared/server/middleware"
	"github.com/Saubhagya1707/crying-tailor/internal/shared/server/respond"
	"github.com/Saubhagya1707/crying-tailor/internal/users"
)

type Handler struct {
	Svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.DELETE("/account", h.deleteAccount)
}

func (h *Handler) deleteAccount(c *gin.Context) {
	if h.Svc == nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "service unavailable", nil)
		return
	}
	userID := middleware.UserIDFromContext(c)
	if userID == "" {
		respond.Error(c, http.StatusUnauthorized, "unauthorized", "login required", nil)
		return
	}
	if err := h.Svc.Delete(c.Request.Context(), userID); err != nil {
		if errors.Is(err, users.ErrNotFound) {
			respond.Error(c, http.StatusNotFound, "not_found", "account not found", nil)
			return
		}
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to delete account", nil)
		return
	}
	c.Status(http.StatusNoContent)
}
