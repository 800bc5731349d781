package subscription

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"sheetlens-backend/internal/backend"
	"sheetlens-backend/internal/shared/server/middleware"
	"sheetlens-backend/internal/shared/server/respond"
)

// Handler exposes the caller's subscription state.
type Handler struct {
	Client *backend.Client
}

// NewHandler constructs a Handler.
func NewHandler(client *backend.Client) *Handler {
	return &Handler{Client: client}
}

// RegisterRoutes attaches subscription routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/subscription", h.get)
}

func (h *Handler) get(c *gin.Context) {
	token := middleware.AuthTokenFromContext(c)

	sub, err := h.Client.GetSubscription(c.Request.Context(), token)
	if err != nil {
		switch {
		case errors.Is(err, backend.ErrUnauthorized):
			respond.Error(c, http.StatusUnauthorized, "unauthorized", "missing or invalid token", nil)
		default:
			respond.Error(c, http.StatusBadGateway, "upstream_error", "analytics backend unavailable", nil)
		}
		return
	}

	respond.OK(c, sub)
}

// ExportAllowed reports whether the subscription entitles the caller to PDF
// export: an active paid plan, or remaining export credits on any plan.
func ExportAllowed(sub backend.Subscription) bool {
	status := strings.ToLower(strings.TrimSpace(sub.Status))
	plan := strings.ToLower(strings.TrimSpace(sub.Plan))

	if status != "active" && status != "trialing" {
		return sub.CreditsLeft > 0
	}
	if plan != "" && plan != "free" {
		return true
	}
	return sub.CreditsLeft > 0
}
