package bootstrap

import (
	"context"
	"strings"

	"github.com/gin-gonic/gin"

	"sheetlens-backend/internal/backend"
	"sheetlens-backend/internal/chat"
	"sheetlens-backend/internal/dashboards"
	"sheetlens-backend/internal/export"
	"sheetlens-backend/internal/files"
	"sheetlens-backend/internal/shared/config"
	"sheetlens-backend/internal/shared/server"
	"sheetlens-backend/internal/shared/storage/object"
	localstore "sheetlens-backend/internal/shared/storage/object/local"
	s3store "sheetlens-backend/internal/shared/storage/object/s3"
	"sheetlens-backend/internal/subscription"
	"sheetlens-backend/internal/uploads"
)

// App holds shared dependencies.
type App struct {
	Config config.Config
	Router *gin.Engine
	Store  object.ObjectStore
	Client *backend.Client
}

// Build prepares shared dependencies and wires the router.
func Build(cfg config.Config) (*App, error) {
	if strings.TrimSpace(cfg.Env) == "" {
		cfg.Env = "dev"
	}
	if strings.TrimSpace(cfg.ObjectStoreType) == "" {
		cfg.ObjectStoreType = "local"
	}
	ctx := context.Background()

	store, err := buildStore(ctx, cfg)
	if err != nil {
		return nil, err
	}

	client, err := backend.NewClient(cfg.BackendBaseURL, cfg.BackendTimeout)
	if err != nil {
		return nil, err
	}

	app := &App{
		Config: cfg,
		Store:  store,
		Client: client,
	}

	exportSvc := export.NewService(client, store)

	app.Router = server.NewRouter(server.RouterDeps{
		Config:              cfg,
		UploadHandler:       uploads.NewHandler(client, cfg.MaxUploadBytes),
		FileHandler:         files.NewHandler(client),
		DashboardHandler:    dashboards.NewHandler(client),
		ChatHandler:         chat.NewHandler(client),
		SubscriptionHandler: subscription.NewHandler(client),
		ExportHandler:       export.NewHandler(exportSvc),
	})

	return app, nil
}

func buildStore(ctx context.Context, cfg config.Config) (object.ObjectStore, error) {
	switch cfg.ObjectStoreType {
	case "s3":
		return s3store.New(ctx, cfg.AWSRegion, cfg.S3Bucket, cfg.S3Prefix, cfg.SSEKMSKeyID)
	default:
		return localstore.New(cfg.LocalStoreDir), nil
	}
}
