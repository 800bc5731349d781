package server

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"sheetlens-backend/internal/backend"
	"sheetlens-backend/internal/files"
	"sheetlens-backend/internal/shared/config"
)

func newTestRouter(t *testing.T) http.Handler {
	t.Helper()

	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[]`))
	}))
	t.Cleanup(upstream.Close)

	client, err := backend.NewClient(upstream.URL, 5*time.Second)
	if err != nil {
		t.Fatalf("new client: %v", err)
	}

	return NewRouter(RouterDeps{
		Config:      config.Config{CORSAllowOrigin: []string{"http://localhost:3000"}},
		FileHandler: files.NewHandler(client),
	})
}

func TestHealthNeedsNoAuth(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/health", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}
	if !strings.Contains(resp.Body.String(), `"ok":true`) {
		t.Fatalf("unexpected body: %s", resp.Body.String())
	}
}

func TestMetricsNeedsNoAuth(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}
	if !strings.Contains(resp.Body.String(), "dashboards_built_total") {
		t.Fatalf("expected metrics exposition, got: %s", resp.Body.String())
	}
}

func TestProtectedRoutesRequireToken(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/files", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", resp.Code)
	}

	authed := httptest.NewRequest(http.MethodGet, "/api/v1/files", nil)
	authed.Header.Set("Authorization", "Bearer tok-1")
	resp = httptest.NewRecorder()
	router.ServeHTTP(resp, authed)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 with token, got %d", resp.Code)
	}
}

func TestAddr(t *testing.T) {
	if got := Addr(""); got != ":8080" {
		t.Fatalf("expected :8080, got %s", got)
	}
	if got := Addr("9090"); got != ":9090" {
		t.Fatalf("expected :9090, got %s", got)
	}
	if got := Addr(":7070"); got != ":7070" {
		t.Fatalf("expected :7070, got %s", got)
	}
}
