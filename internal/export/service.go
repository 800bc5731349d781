package export

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/google/uuid"

	"sheetlens-backend/internal/backend"
	"sheetlens-backend/internal/shared/metrics"
	"sheetlens-backend/internal/shared/storage/object"
	"sheetlens-backend/internal/shared/telemetry"
	"sheetlens-backend/internal/shared/util"
	"sheetlens-backend/internal/subscription"
)

var (
	// ErrNotAllowed means the caller's subscription does not cover export.
	ErrNotAllowed = errors.New("export not allowed")
	// ErrNotFound means no cached artifact exists for the given ID.
	ErrNotFound = errors.New("export not found")
)

// Artifact describes a cached export PDF.
type Artifact struct {
	ID          string    `json:"export_id"`
	FileID      string    `json:"file_id"`
	ContentType string    `json:"content_type"`
	SizeBytes   int64     `json:"size_bytes"`
	CreatedAt   time.Time `json:"created_at"`

	namespace  string
	storageKey string
}

// Service gates export behind the subscription and caches rendered PDFs in
// the object store so repeat exports of the same file skip the backend.
// Artifacts are scoped to the caller: the cache key and the storage path
// both carry the caller namespace, and lookups from a different caller
// miss, so file ownership is always re-checked against the backend.
type Service struct {
	Client *backend.Client
	Store  object.ObjectStore

	mu     sync.Mutex
	byID   map[string]Artifact
	byFile map[string]string
}

// NewService constructs a Service.
func NewService(client *backend.Client, store object.ObjectStore) *Service {
	return &Service{
		Client: client,
		Store:  store,
		byID:   make(map[string]Artifact),
		byFile: make(map[string]string),
	}
}

// Export returns the caller's cached artifact for the file, rendering and
// caching one if none exists yet.
func (s *Service) Export(ctx context.Context, token, fileID string) (Artifact, error) {
	sub, err := s.Client.GetSubscription(ctx, token)
	if err != nil {
		return Artifact{}, fmt.Errorf("fetch subscription: %w", err)
	}
	if !subscription.ExportAllowed(sub) {
		return Artifact{}, ErrNotAllowed
	}

	ns := util.HashStorageKey(token)
	cacheKey := ns + "|" + fileID

	s.mu.Lock()
	if id, ok := s.byFile[cacheKey]; ok {
		artifact := s.byID[id]
		s.mu.Unlock()
		return artifact, nil
	}
	s.mu.Unlock()

	body, contentType, err := s.Client.ExportPDF(ctx, token, fileID)
	if err != nil {
		return Artifact{}, fmt.Errorf("fetch export: %w", err)
	}
	defer body.Close()

	storageKey, size, sniffed, err := s.Store.Save(ctx, token, fileID+".pdf", body)
	if err != nil {
		return Artifact{}, fmt.Errorf("cache artifact: %w", err)
	}
	if contentType == "" {
		contentType = sniffed
	}

	artifact := Artifact{
		ID:          uuid.NewString(),
		FileID:      fileID,
		ContentType: contentType,
		SizeBytes:   size,
		CreatedAt:   time.Now().UTC(),
		namespace:   ns,
		storageKey:  storageKey,
	}

	s.mu.Lock()
	s.byID[artifact.ID] = artifact
	s.byFile[cacheKey] = artifact.ID
	s.mu.Unlock()

	metrics.IncExportCached()
	telemetry.Info("export.cached", map[string]any{
		"export_id":  artifact.ID,
		"file_id":    fileID,
		"size_bytes": size,
	})
	return artifact, nil
}

// Open streams a cached artifact belonging to the caller. Artifacts cached
// under a different token are reported as not found. The caller must close
// the reader.
func (s *Service) Open(ctx context.Context, token, exportID string) (Artifact, io.ReadCloser, error) {
	ns := util.HashStorageKey(token)

	s.mu.Lock()
	artifact, ok := s.byID[exportID]
	s.mu.Unlock()
	if !ok || artifact.namespace != ns {
		return Artifact{}, nil, ErrNotFound
	}

	r, err := s.Store.Open(ctx, artifact.storageKey)
	if err != nil {
		return Artifact{}, nil, fmt.Errorf("open artifact: %w", err)
	}
	return artifact, r, nil
}
