package files

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"sheetlens-backend/internal/backend"
	"sheetlens-backend/internal/shared/server/middleware"
	"sheetlens-backend/internal/shared/server/respond"
)

// Handler proxies file metadata operations to the analytics backend.
type Handler struct {
	Client *backend.Client
}

// NewHandler constructs a Handler.
func NewHandler(client *backend.Client) *Handler {
	return &Handler{Client: client}
}

// RegisterRoutes attaches file routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/files", h.list)
	rg.GET("/files/:id", h.get)
	rg.DELETE("/files/:id", h.delete)
	rg.POST("/files/:id/analyze", h.analyze)
}

func (h *Handler) list(c *gin.Context) {
	token := middleware.AuthTokenFromContext(c)

	files, err := h.Client.ListFiles(c.Request.Context(), token)
	if err != nil {
		respondBackendErr(c, err)
		return
	}

	respond.OK(c, files)
}

func (h *Handler) get(c *gin.Context) {
	token := middleware.AuthTokenFromContext(c)
	fileID := c.Param("id")
	c.Set("fileId", fileID)

	file, err := h.Client.GetFile(c.Request.Context(), token, fileID)
	if err != nil {
		respondBackendErr(c, err)
		return
	}

	respond.OK(c, file)
}

func (h *Handler) delete(c *gin.Context) {
	token := middleware.AuthTokenFromContext(c)
	fileID := c.Param("id")
	c.Set("fileId", fileID)

	if err := h.Client.DeleteFile(c.Request.Context(), token, fileID); err != nil {
		respondBackendErr(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *Handler) analyze(c *gin.Context) {
	token := middleware.AuthTokenFromContext(c)
	fileID := c.Param("id")
	c.Set("fileId", fileID)

	result, err := h.Client.Analyze(c.Request.Context(), token, fileID)
	if err != nil {
		respondBackendErr(c, err)
		return
	}

	respond.Accepted(c, result)
}

func respondBackendErr(c *gin.Context, err error) {
	switch {
	case errors.Is(err, backend.ErrNotFound):
		respond.Error(c, http.StatusNotFound, "not_found", "file not found", nil)
	case errors.Is(err, backend.ErrUnauthorized):
		respond.Error(c, http.StatusUnauthorized, "unauthorized", "missing or invalid token", nil)
	default:
		respond.Error(c, http.StatusBadGateway, "upstream_error", "analytics backend unavailable", nil)
	}
}
