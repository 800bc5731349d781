package export

import (
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"sheetlens-backend/internal/backend"
	"sheetlens-backend/internal/shared/server/middleware"
	"sheetlens-backend/internal/shared/server/respond"
)

// Handler wires HTTP handlers to the export service.
type Handler struct {
	Svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches export routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/files/:id/export", h.export)
	rg.GET("/exports/:id", h.download)
}

func (h *Handler) export(c *gin.Context) {
	token := middleware.AuthTokenFromContext(c)
	fileID := c.Param("id")
	c.Set("fileId", fileID)

	artifact, err := h.Svc.Export(c.Request.Context(), token, fileID)
	if err != nil {
		switch {
		case errors.Is(err, ErrNotAllowed):
			respond.Error(c, http.StatusPaymentRequired, "export_not_allowed", "subscription does not include PDF export", nil)
		case errors.Is(err, backend.ErrNotFound):
			respond.Error(c, http.StatusNotFound, "not_found", "file not found", nil)
		case errors.Is(err, backend.ErrUnauthorized):
			respond.Error(c, http.StatusUnauthorized, "unauthorized", "missing or invalid token", nil)
		default:
			respond.Error(c, http.StatusBadGateway, "upstream_error", "analytics backend unavailable", nil)
		}
		return
	}

	respond.Created(c, artifact)
}

func (h *Handler) download(c *gin.Context) {
	token := middleware.AuthTokenFromContext(c)
	exportID := c.Param("id")

	artifact, body, err := h.Svc.Open(c.Request.Context(), token, exportID)
	if err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			respond.Error(c, http.StatusNotFound, "not_found", "export not found", nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to open export", nil)
		}
		return
	}
	defer body.Close()

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", artifact.FileID+".pdf"))
	c.Header("Content-Type", artifact.ContentType)
	c.Status(http.StatusOK)
	_, _ = io.Copy(c.Writer, body)
}
