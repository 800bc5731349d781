package dashboards

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"sheetlens-backend/internal/analytics"
	"sheetlens-backend/internal/backend"
)

func newDashboardRouter(t *testing.T, upstream http.Handler) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	srv := httptest.NewServer(upstream)
	t.Cleanup(srv.Close)
	client, err := backend.NewClient(srv.URL, 5*time.Second)
	if err != nil {
		t.Fatalf("new client: %v", err)
	}

	r := gin.New()
	api := r.Group("/api/v1")
	NewHandler(client).RegisterRoutes(api)
	return r
}

func getDashboard(t *testing.T, router *gin.Engine, fileID, mode string) (*httptest.ResponseRecorder, Response) {
	t.Helper()
	url := "/api/v1/files/" + fileID + "/dashboard"
	if mode != "" {
		url += "?mode=" + mode
	}
	req := httptest.NewRequest(http.MethodGet, url, nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	var body Response
	if resp.Code == http.StatusOK {
		if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
			t.Fatalf("decode response: %v", err)
		}
	}
	return resp, body
}

func TestDashboardManualMode(t *testing.T) {
	router := newDashboardRouter(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/analysis/f1" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		w.Write([]byte(`{
			"domain": "HR",
			"workforce_overview": {"total_employees": 100, "active_employees": 90}
		}`))
	}))

	resp, body := getDashboard(t, router, "f1", "")
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", resp.Code, resp.Body.String())
	}
	if body.Domain != "HR" || body.Mode != "manual" {
		t.Fatalf("unexpected envelope: %+v", body)
	}
	if len(body.Sections) != 1 || body.Sections[0].Key != "workforce_overview" {
		t.Fatalf("unexpected sections: %+v", body.Sections)
	}
}

func TestDashboardAIMode(t *testing.T) {
	router := newDashboardRouter(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{
			"domain": "Finance",
			"cashflow_overview": {"total_inflows": 10},
			"trends": ["Revenue up 10% in Q2"],
			"anomalies": ["Spike in March refunds"]
		}`))
	}))

	resp, body := getDashboard(t, router, "f1", "ai")
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}
	if body.Mode != "ai" {
		t.Fatalf("unexpected mode: %s", body.Mode)
	}
	if len(body.Sections) != 2 {
		t.Fatalf("expected 2 insight cards, got %d", len(body.Sections))
	}
	if body.Sections[0].Key != "insights_trends" || body.Sections[1].Key != "insights_anomalies" {
		t.Fatalf("unexpected cards: %+v", body.Sections)
	}
}

func TestDashboardUnknownDomainIsEmptyNotError(t *testing.T) {
	router := newDashboardRouter(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"domain": "Astrology", "workforce_overview": {"total_employees": 5}}`))
	}))

	resp, body := getDashboard(t, router, "f1", "")
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}
	if body.Domain != "Astrology" {
		t.Fatalf("unexpected domain: %s", body.Domain)
	}
	if len(body.Sections) != 0 {
		t.Fatalf("expected no sections, got %+v", body.Sections)
	}
}

func TestDashboardDomainFallsBackToFileMetadata(t *testing.T) {
	router := newDashboardRouter(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/analysis/f1":
			w.Write([]byte(`{"workforce_overview": {"total_employees": 100, "active_employees": 50}}`))
		case "/files/f1":
			json.NewEncoder(w).Encode(backend.File{ID: "f1", SpreadsheetType: "hr"})
		default:
			t.Errorf("unexpected path %s", r.URL.Path)
		}
	}))

	resp, body := getDashboard(t, router, "f1", "")
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}
	if body.Domain != string(analytics.DomainHR) {
		t.Fatalf("expected HR fallback, got %q", body.Domain)
	}
	if len(body.Sections) != 1 {
		t.Fatalf("expected workforce section, got %+v", body.Sections)
	}
}

func TestDashboardUpstreamNotFound(t *testing.T) {
	router := newDashboardRouter(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))

	resp, _ := getDashboard(t, router, "missing", "")
	if resp.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", resp.Code)
	}
}

func TestDashboardUpstreamFailureIs502(t *testing.T) {
	router := newDashboardRouter(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))

	resp, _ := getDashboard(t, router, "f1", "")
	if resp.Code != http.StatusBadGateway {
		t.Fatalf("expected 502, got %d", resp.Code)
	}
}
