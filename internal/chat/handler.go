package chat

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"sheetlens-backend/internal/backend"
	"sheetlens-backend/internal/shared/server/middleware"
	"sheetlens-backend/internal/shared/server/respond"
)

const maxQuestionLen = 2000

// Handler proxies chat Q&A over a file's data to the analytics backend.
type Handler struct {
	Client *backend.Client
}

// NewHandler constructs a Handler.
func NewHandler(client *backend.Client) *Handler {
	return &Handler{Client: client}
}

// RegisterRoutes attaches chat routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/files/:id/chat", h.history)
	rg.POST("/chat", h.ask)
}

func (h *Handler) history(c *gin.Context) {
	token := middleware.AuthTokenFromContext(c)
	fileID := c.Param("id")
	c.Set("fileId", fileID)

	turns, err := h.Client.ChatHistory(c.Request.Context(), token, fileID)
	if err != nil {
		respondBackendErr(c, err)
		return
	}

	respond.OK(c, turns)
}

type askRequest struct {
	FileID   string `json:"file_id"`
	Question string `json:"question"`
}

func (h *Handler) ask(c *gin.Context) {
	token := middleware.AuthTokenFromContext(c)

	var req askRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}

	req.FileID = strings.TrimSpace(req.FileID)
	req.Question = strings.TrimSpace(req.Question)

	if req.FileID == "" {
		respond.Error(c, http.StatusBadRequest, "validation_error", "file_id is required", nil)
		return
	}
	if req.Question == "" {
		respond.Error(c, http.StatusBadRequest, "validation_error", "question is required", nil)
		return
	}
	if len(req.Question) > maxQuestionLen {
		respond.Error(c, http.StatusBadRequest, "validation_error", "question is too long", nil)
		return
	}
	c.Set("fileId", req.FileID)

	turn, err := h.Client.Chat(c.Request.Context(), token, req.FileID, req.Question)
	if err != nil {
		respondBackendErr(c, err)
		return
	}

	respond.OK(c, turn)
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
