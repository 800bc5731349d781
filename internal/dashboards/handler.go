package dashboards

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"sheetlens-backend/internal/analytics"
	"sheetlens-backend/internal/backend"
	"sheetlens-backend/internal/shared/metrics"
	"sheetlens-backend/internal/shared/server/middleware"
	"sheetlens-backend/internal/shared/server/respond"
)

// Handler serves normalized dashboards built from backend analysis records.
type Handler struct {
	Client *backend.Client
}

// NewHandler constructs a Handler.
func NewHandler(client *backend.Client) *Handler {
	return &Handler{Client: client}
}

// RegisterRoutes attaches dashboard routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/files/:id/dashboard", h.dashboard)
}

// Response is the dashboard payload returned to the UI.
type Response struct {
	FileID   string                  `json:"file_id"`
	Domain   string                  `json:"domain"`
	Mode     string                  `json:"mode"`
	Sections []analytics.RenderModel `json:"sections"`
}

func (h *Handler) dashboard(c *gin.Context) {
	token := middleware.AuthTokenFromContext(c)
	fileID := c.Param("id")
	c.Set("fileId", fileID)

	mode := analytics.ParseMode(c.Query("mode"))
	c.Set("dashboardMode", string(mode))

	raw, err := h.Client.GetAnalysis(c.Request.Context(), token, fileID)
	if err != nil {
		respondBackendErr(c, err)
		return
	}

	rec := analytics.ParseRecord(raw)

	rawDomain := rec.String("domain")
	if rawDomain == "" {
		file, err := h.Client.GetFile(c.Request.Context(), token, fileID)
		if err == nil {
			rawDomain = file.SpreadsheetType
		}
	}
	c.Set("domain", rawDomain)

	// Unknown domain is not an error: the dashboard is simply empty.
	domain, known := analytics.ParseDomain(rawDomain)
	start := time.Now()
	sections := analytics.BuildDashboard(domain, rec, mode)
	metrics.IncDashboardBuilt()
	metrics.ObserveDashboardDurationMs(float64(time.Since(start).Microseconds()) / 1000.0)

	domainLabel := string(domain)
	if !known {
		domainLabel = rawDomain
	}

	respond.OK(c, Response{
		FileID:   fileID,
		Domain:   domainLabel,
		Mode:     string(mode),
		Sections: sections,
	})
}

func respondBackendErr(c *gin.Context, err error) {
	switch {
	case errors.Is(err, backend.ErrNotFound):
		respond.Error(c, http.StatusNotFound, "not_found", "analysis not found", nil)
	case errors.Is(err, backend.ErrUnauthorized):
		respond.Error(c, http.StatusUnauthorized, "unauthorized", "missing or invalid token", nil)
	default:
		metrics.IncUpstreamError()
		respond.Error(c, http.StatusBadGateway, "upstream_error", "analytics backend unavailable", nil)
	}
}
