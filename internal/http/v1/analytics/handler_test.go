package analytics

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/danielgtaylor/huma/v2"
	humachi "github.com/danielgtaylor/huma/v2/adapters/humachi"
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	appmiddleware "github.com/sudhanshu-jha/portfolio-api/internal/middleware"
	"github.com/sudhanshu-jha/portfolio-api/internal/respond"
	analyticssvc "github.com/sudhanshu-jha/portfolio-api/internal/service/analytics"
)

func newTestRouter(svc analyticssvc.Service) chi.Router {
	router := chi.NewRouter()
	router.Use(
		appmiddleware.RequestID(),
		chimiddleware.RealIP,
		appmiddleware.ClientMetadata(),
		appmiddleware.RequestLogger(),
		respond.Recoverer(),
	)
	api := humachi.New(router, huma.DefaultConfig("AnalyticsTest", "test"))
	Register(api, svc)
	return router
}

func TestRecordPageView(t *testing.T) {
	svc := analyticssvc.NewMockService()
	router := newTestRouter(svc)

	req := httptest.NewRequest(http.MethodPost, "/analytics/page-view",
		strings.NewReader(`{"page": "/projects", "referrer": "https://www.google.com/"}`))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Real-IP", "203.0.113.7")
	req.Header.Set("User-Agent", "Mozilla/5.0 (test)")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", resp.Code, resp.Body.String())
	}

	var out RecordData
	if err := json.Unmarshal(resp.Body.Bytes(), &out); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !out.Success {
		t.Fatal("expected success")
	}
	if out.Message != "Page view logged" {
		t.Fatalf("unexpected message %q", out.Message)
	}
}

func TestRecordPageViewValidation(t *testing.T) {
	tests := []struct {
		name    string
		payload string
	}{
		{"missing page", `{}`},
		{"empty page", `{"page": ""}`},
		{"page too long", `{"page": "/` + strings.Repeat("p", 200) + `"}`},
		{"referrer too long", `{"page": "/", "referrer": "https://` + strings.Repeat("r", 500) + `"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := newTestRouter(analyticssvc.NewMockService())
			req := httptest.NewRequest(http.MethodPost, "/analytics/page-view", strings.NewReader(tt.payload))
			req.Header.Set("Content-Type", "application/json")
			resp := httptest.NewRecorder()
			router.ServeHTTP(resp, req)
			if resp.Code != http.StatusUnprocessableEntity {
				t.Fatalf("expected 422, got %d: %s", resp.Code, resp.Body.String())
			}
		})
	}
}

func TestRecordPageViewStoreFailure(t *testing.T) {
	svc := analyticssvc.NewMockService()
	svc.Err = errors.New("firestore unavailable")
	router := newTestRouter(svc)

	req := httptest.NewRequest(http.MethodPost, "/analytics/page-view",
		strings.NewReader(`{"page": "/"}`))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", resp.Code)
	}
}

func TestSummary(t *testing.T) {
	svc := analyticssvc.NewMockService()
	now := time.Date(2025, 3, 31, 12, 0, 0, 0, time.UTC)
	svc.NowFunc = func() time.Time { return now }
	svc.AddView("/", now)
	svc.AddView("/", now.AddDate(0, 0, -1))
	svc.AddView("/projects", now)
	svc.AddContact(now.AddDate(0, 0, -2))
	router := newTestRouter(svc)

	req := httptest.NewRequest(http.MethodGet, "/analytics/summary?days=7", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", resp.Code, resp.Body.String())
	}

	var out SummaryData
	if err := json.Unmarshal(resp.Body.Bytes(), &out); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if out.TotalViews != 3 {
		t.Errorf("expected 3 views, got %d", out.TotalViews)
	}
	if out.TotalContacts != 1 {
		t.Errorf("expected 1 contact, got %d", out.TotalContacts)
	}
	if out.Period != "Last 7 days" {
		t.Errorf("unexpected period %q", out.Period)
	}
	if len(out.TopPages) != 2 || out.TopPages[0].Page != "/" || out.TopPages[0].Views != 2 {
		t.Errorf("unexpected top pages %+v", out.TopPages)
	}
}

func TestSummaryDefaultWindow(t *testing.T) {
	svc := analyticssvc.NewMockService()
	router := newTestRouter(svc)

	req := httptest.NewRequest(http.MethodGet, "/analytics/summary", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}
	var out SummaryData
	if err := json.Unmarshal(resp.Body.Bytes(), &out); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if out.Period != "Last 30 days" {
		t.Errorf("expected default period, got %q", out.Period)
	}
}

func TestSummaryDaysValidation(t *testing.T) {
	router := newTestRouter(analyticssvc.NewMockService())

	for _, days := range []string{"0", "366", "-5"} {
		req := httptest.NewRequest(http.MethodGet, "/analytics/summary?days="+days, nil)
		resp := httptest.NewRecorder()
		router.ServeHTTP(resp, req)
		if resp.Code != http.StatusUnprocessableEntity {
			t.Errorf("days %s: expected 422, got %d", days, resp.Code)
		}
	}
}

func TestSummaryStoreFailure(t *testing.T) {
	svc := analyticssvc.NewMockService()
	svc.Err = errors.New("firestore unavailable")
	router := newTestRouter(svc)

	req := httptest.NewRequest(http.MethodGet, "/analytics/summary", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", resp.Code)
	}
}
