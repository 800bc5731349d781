package uploads

import (
	"bytes"
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"sheetlens-backend/internal/backend"
	"sheetlens-backend/internal/shared/server/middleware"
	"sheetlens-backend/internal/shared/server/respond"
)

// Handler validates spreadsheet uploads and forwards them to the backend.
type Handler struct {
	Client   *backend.Client
	MaxBytes int64
}

// NewHandler constructs a Handler.
func NewHandler(client *backend.Client, maxBytes int64) *Handler {
	if maxBytes <= 0 {
		maxBytes = 10 << 20
	}
	return &Handler{Client: client, MaxBytes: maxBytes}
}

// RegisterRoutes attaches upload routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/uploads", h.upload)
}

func (h *Handler) upload(c *gin.Context) {
	token := middleware.AuthTokenFromContext(c)
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, h.MaxBytes)

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

	data, err := io.ReadAll(file)
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "unable to read file", nil)
		return
	}

	if err := Validate(fileHeader.Filename, data); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", err.Error(), nil)
		return
	}

	uploaded, err := h.Client.Upload(c.Request.Context(), token, fileHeader.Filename, bytes.NewReader(data))
	if err != nil {
		switch {
		case errors.Is(err, backend.ErrUnauthorized):
			respond.Error(c, http.StatusUnauthorized, "unauthorized", "missing or invalid token", nil)
		default:
			respond.Error(c, http.StatusBadGateway, "upstream_error", "analytics backend unavailable", nil)
		}
		return
	}

	c.Set("fileId", uploaded.ID)
	respond.Created(c, uploaded)
}
