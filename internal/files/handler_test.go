package files

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"sheetlens-backend/internal/backend"
	"sheetlens-backend/internal/shared/server/middleware"
)

func newFilesRouter(t *testing.T, upstream http.Handler) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	srv := httptest.NewServer(upstream)
	t.Cleanup(srv.Close)
	client, err := backend.NewClient(srv.URL, 5*time.Second)
	if err != nil {
		t.Fatalf("new client: %v", err)
	}

	r := gin.New()
	r.Use(middleware.Auth())
	api := r.Group("/api/v1")
	NewHandler(client).RegisterRoutes(api)
	return r
}

func authedRequest(method, url string) *http.Request {
	req := httptest.NewRequest(method, url, nil)
	req.Header.Set("Authorization", "Bearer tok-1")
	return req
}

func TestListFilesForwardsToken(t *testing.T) {
	var gotAuth string
	router := newFilesRouter(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		json.NewEncoder(w).Encode([]backend.File{
			{ID: "f1", Filename: "sales.xlsx", SpreadsheetType: "sales"},
			{ID: "f2", Filename: "hr.csv", SpreadsheetType: "hr"},
		})
	}))

	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, authedRequest(http.MethodGet, "/api/v1/files"))

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}
	if gotAuth != "Bearer tok-1" {
		t.Fatalf("expected forwarded token, got %q", gotAuth)
	}

	var files []backend.File
	if err := json.NewDecoder(resp.Body).Decode(&files); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(files) != 2 || files[1].SpreadsheetType != "hr" {
		t.Fatalf("unexpected files: %+v", files)
	}
}

func TestGetFileNotFound(t *testing.T) {
	router := newFilesRouter(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))

	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, authedRequest(http.MethodGet, "/api/v1/files/missing"))

	if resp.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", resp.Code)
	}
}

func TestDeleteFile(t *testing.T) {
	var gotMethod, gotPath string
	router := newFilesRouter(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotPath = r.URL.Path
		w.WriteHeader(http.StatusOK)
	}))

	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, authedRequest(http.MethodDelete, "/api/v1/files/f1"))

	if resp.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", resp.Code)
	}
	if gotMethod != http.MethodDelete || gotPath != "/files/f1" {
		t.Fatalf("unexpected upstream call: %s %s", gotMethod, gotPath)
	}
}

func TestAnalyzeTrigger(t *testing.T) {
	router := newFilesRouter(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/analyze/f1" {
			t.Errorf("unexpected upstream call: %s %s", r.Method, r.URL.Path)
		}
		w.Write([]byte(`{"status": "processing"}`))
	}))

	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, authedRequest(http.MethodPost, "/api/v1/files/f1/analyze"))

	if resp.Code != http.StatusAccepted {
		t.Fatalf("expected 202, got %d", resp.Code)
	}
}

func TestListFilesUpstreamDown(t *testing.T) {
	router := newFilesRouter(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))

	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, authedRequest(http.MethodGet, "/api/v1/files"))

	if resp.Code != http.StatusBadGateway {
		t.Fatalf("expected 502, got %d", resp.Code)
	}

	var payload map[string]map[string]any
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		t.Fatalf("decode error body: %v", err)
	}
	if payload["error"]["code"] != "upstream_error" {
		t.Fatalf("unexpected error code: %v", payload["error"]["code"])
	}
}
