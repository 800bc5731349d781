package export

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"sheetlens-backend/internal/backend"
	"sheetlens-backend/internal/shared/server/middleware"
	localstore "sheetlens-backend/internal/shared/storage/object/local"
)

type stubBackend struct {
	sub        backend.Subscription
	pdf        string
	owner      string
	exportHits int
}

func (s *stubBackend) handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/subscription", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(s.sub)
	})
	mux.HandleFunc("/export/", func(w http.ResponseWriter, r *http.Request) {
		s.exportHits++
		if s.owner != "" && r.Header.Get("Authorization") != "Bearer "+s.owner {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		w.Header().Set("Content-Type", "application/pdf")
		w.Write([]byte(s.pdf))
	})
	return mux
}

func newExportRouter(t *testing.T, stub *stubBackend) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	srv := httptest.NewServer(stub.handler())
	t.Cleanup(srv.Close)
	client, err := backend.NewClient(srv.URL, 5*time.Second)
	if err != nil {
		t.Fatalf("new client: %v", err)
	}

	svc := NewService(client, localstore.New(t.TempDir()))
	r := gin.New()
	api := r.Group("/api/v1")
	api.Use(middleware.Auth())
	NewHandler(svc).RegisterRoutes(api)
	return r
}

func doExport(t *testing.T, router *gin.Engine, token, fileID string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/files/"+fileID+"/export", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	return resp
}

func doDownload(t *testing.T, router *gin.Engine, token, exportID string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/exports/"+exportID, nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	return resp
}

func TestExportBlockedWithoutEntitlement(t *testing.T) {
	stub := &stubBackend{
		sub: backend.Subscription{Plan: "free", Status: "active"},
		pdf: "%PDF-1.4 fake",
	}
	router := newExportRouter(t, stub)

	resp := doExport(t, router, "tok-owner", "f1")
	if resp.Code != http.StatusPaymentRequired {
		t.Fatalf("expected 402, got %d: %s", resp.Code, resp.Body.String())
	}
	if stub.exportHits != 0 {
		t.Fatalf("blocked export must not call upstream, got %d calls", stub.exportHits)
	}

	var payload map[string]map[string]any
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		t.Fatalf("decode error body: %v", err)
	}
	if payload["error"]["code"] != "export_not_allowed" {
		t.Fatalf("unexpected error code: %v", payload["error"]["code"])
	}
}

func TestExportCachesAndStreamsArtifact(t *testing.T) {
	stub := &stubBackend{
		sub: backend.Subscription{Plan: "pro", Status: "active"},
		pdf: "%PDF-1.4 report body",
	}
	router := newExportRouter(t, stub)

	resp := doExport(t, router, "tok-owner", "f1")
	if resp.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", resp.Code, resp.Body.String())
	}

	var first Artifact
	if err := json.NewDecoder(resp.Body).Decode(&first); err != nil {
		t.Fatalf("decode artifact: %v", err)
	}
	if first.ID == "" || first.FileID != "f1" {
		t.Fatalf("unexpected artifact: %+v", first)
	}
	if first.SizeBytes != int64(len(stub.pdf)) {
		t.Fatalf("expected size %d, got %d", len(stub.pdf), first.SizeBytes)
	}

	// Second export of the same file reuses the cached artifact.
	resp2 := doExport(t, router, "tok-owner", "f1")
	var second Artifact
	if err := json.NewDecoder(resp2.Body).Decode(&second); err != nil {
		t.Fatalf("decode artifact: %v", err)
	}
	if second.ID != first.ID {
		t.Fatalf("expected cached artifact %s, got %s", first.ID, second.ID)
	}
	if stub.exportHits != 1 {
		t.Fatalf("expected one upstream render, got %d", stub.exportHits)
	}

	// Download streams the cached bytes.
	dl := doDownload(t, router, "tok-owner", first.ID)
	if dl.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", dl.Code)
	}
	if dl.Body.String() != stub.pdf {
		t.Fatalf("unexpected body: %q", dl.Body.String())
	}
	if ct := dl.Header().Get("Content-Type"); ct != "application/pdf" {
		t.Fatalf("unexpected content type %q", ct)
	}
	if cd := dl.Header().Get("Content-Disposition"); !strings.Contains(cd, "attachment") {
		t.Fatalf("expected attachment disposition, got %q", cd)
	}
}

func TestExportCacheScopedToCaller(t *testing.T) {
	stub := &stubBackend{
		sub:   backend.Subscription{Plan: "pro", Status: "active"},
		pdf:   "%PDF-1.4 private report",
		owner: "tok-owner",
	}
	router := newExportRouter(t, stub)

	resp := doExport(t, router, "tok-owner", "f1")
	if resp.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", resp.Code, resp.Body.String())
	}
	var owned Artifact
	if err := json.NewDecoder(resp.Body).Decode(&owned); err != nil {
		t.Fatalf("decode artifact: %v", err)
	}

	// A different caller never sees the cached artifact: ownership is
	// re-checked against the backend, which rejects the export.
	other := doExport(t, router, "tok-other", "f1")
	if other.Code != http.StatusNotFound {
		t.Fatalf("expected 404 for non-owner, got %d: %s", other.Code, other.Body.String())
	}
	if stub.exportHits != 2 {
		t.Fatalf("expected backend consulted for non-owner, got %d calls", stub.exportHits)
	}

	// Nor can another caller download the owner's artifact by ID.
	dl := doDownload(t, router, "tok-other", owned.ID)
	if dl.Code != http.StatusNotFound {
		t.Fatalf("expected 404 for cross-caller download, got %d", dl.Code)
	}

	// The owner still downloads normally.
	dl = doDownload(t, router, "tok-owner", owned.ID)
	if dl.Code != http.StatusOK {
		t.Fatalf("expected 200 for owner download, got %d", dl.Code)
	}
	if dl.Body.String() != stub.pdf {
		t.Fatalf("unexpected body: %q", dl.Body.String())
	}
}

func TestDownloadUnknownExport(t *testing.T) {
	stub := &stubBackend{sub: backend.Subscription{Plan: "pro", Status: "active"}}
	router := newExportRouter(t, stub)

	resp := doDownload(t, router, "tok-owner", "nope")
	if resp.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", resp.Code)
	}
}
