package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"sheetlens-backend/internal/chat"
	"sheetlens-backend/internal/dashboards"
	"sheetlens-backend/internal/export"
	"sheetlens-backend/internal/files"
	"sheetlens-backend/internal/shared/config"
	"sheetlens-backend/internal/shared/metrics"
	"sheetlens-backend/internal/shared/server/middleware"
	"sheetlens-backend/internal/shared/server/respond"
	"sheetlens-backend/internal/subscription"
	"sheetlens-backend/internal/uploads"
)

// RouterDeps carries the per-feature handlers the router wires up.
type RouterDeps struct {
	Config              config.Config
	UploadHandler       *uploads.Handler
	FileHandler         *files.Handler
	DashboardHandler    *dashboards.Handler
	ChatHandler         *chat.Handler
	SubscriptionHandler *subscription.Handler
	ExportHandler       *export.Handler
}

// NewRouter constructs the Gin engine with middleware and routes registered.
func NewRouter(deps RouterDeps) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	r.Use(
		middleware.RequestID(),
		middleware.Logging(),
		middleware.Recovery(),
		middleware.CORS(deps.Config.CORSAllowOrigin),
	)

	r.GET("/metrics", metrics.Handler())

	api := r.Group("/api/v1")
	api.GET("/health", func(c *gin.Context) {
		respond.JSON(c, http.StatusOK, gin.H{"ok": true})
	})

	authed := api.Group("")
	authed.Use(middleware.Auth())
	authed.Use(middleware.RateLimit(middleware.RateLimitConfig{
		DefaultGroup: "DEFAULT",
		GroupFor: func(c *gin.Context) string {
			if c.Request.Method == http.MethodGet && c.FullPath() == "/api/v1/files/:id/dashboard" {
				return "POLLING"
			}
			return "DEFAULT"
		},
		Rules: map[string]middleware.RateLimitRule{
			"DEFAULT": {Rate: 5, Burst: 20},
			"POLLING": {Rate: 20, Burst: 60},
		},
	}))
	if deps.UploadHandler != nil {
		deps.UploadHandler.RegisterRoutes(authed)
	}
	if deps.FileHandler != nil {
		deps.FileHandler.RegisterRoutes(authed)
	}
	if deps.DashboardHandler != nil {
		deps.DashboardHandler.RegisterRoutes(authed)
	}
	if deps.ChatHandler != nil {
		deps.ChatHandler.RegisterRoutes(authed)
	}
	if deps.SubscriptionHandler != nil {
		deps.SubscriptionHandler.RegisterRoutes(authed)
	}
	if deps.ExportHandler != nil {
		deps.ExportHandler.RegisterRoutes(authed)
	}

	return r
}

// Addr normalizes the listen address.
func Addr(port string) string {
	if port == "" {
		return ":8080"
	}
	if port[0] == ':' {
		return port
	}
	return ":" + port
}
