package portfolio

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/danielgtaylor/huma/v2"
	humachi "github.com/danielgtaylor/huma/v2/adapters/humachi"
	"github.com/go-chi/chi/v5"

	appmiddleware "github.com/sudhanshu-jha/portfolio-api/internal/middleware"
	"github.com/sudhanshu-jha/portfolio-api/internal/respond"
	portfoliosvc "github.com/sudhanshu-jha/portfolio-api/internal/service/portfolio"
)

func newTestRouter(svc portfoliosvc.Service) chi.Router {
	router := chi.NewRouter()
	router.Use(
		appmiddleware.RequestID(),
		appmiddleware.RequestLogger(),
		respond.Recoverer(),
	)
	api := humachi.New(router, huma.DefaultConfig("PortfolioTest", "test"))
	Register(api, svc)
	return router
}

func getPortfolio(router chi.Router) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/portfolio", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	return resp
}

func TestGetPortfolio(t *testing.T) {
	svc := portfoliosvc.NewMockService()
	if err := portfoliosvc.Initialize(context.Background(), svc); err != nil {
		t.Fatalf("seed: %v", err)
	}
	router := newTestRouter(svc)

	resp := getPortfolio(router)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", resp.Code, resp.Body.String())
	}

	var p Portfolio
	if err := json.Unmarshal(resp.Body.Bytes(), &p); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if p.ID == "" {
		t.Error("expected an id")
	}
	if p.Personal.Name == "" || p.Personal.Email == "" {
		t.Error("expected personal info")
	}
	if len(p.Experience) == 0 {
		t.Error("expected experience entries")
	}
	if len(p.Projects) == 0 {
		t.Error("expected project entries")
	}
	if p.LastUpdated.IsZero() {
		t.Error("expected lastUpdated to be set")
	}
}

func TestGetPortfolioWireFormat(t *testing.T) {
	svc := portfoliosvc.NewMockService()
	if err := portfoliosvc.Initialize(context.Background(), svc); err != nil {
		t.Fatalf("seed: %v", err)
	}
	router := newTestRouter(svc)

	resp := getPortfolio(router)
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(resp.Body.Bytes(), &raw); err != nil {
		t.Fatalf("decode: %v", err)
	}
	for _, field := range []string{"id", "personal", "about", "skills", "experience", "projects", "certifications", "achievements", "lastUpdated"} {
		if _, ok := raw[field]; !ok {
			t.Errorf("missing field %q", field)
		}
	}
}

func TestGetPortfolioNotFound(t *testing.T) {
	router := newTestRouter(portfoliosvc.NewMockService())

	resp := getPortfolio(router)
	if resp.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", resp.Code)
	}
}

func TestGetPortfolioStoreFailure(t *testing.T) {
	svc := portfoliosvc.NewMockService()
	svc.Err = errors.New("firestore unavailable")
	router := newTestRouter(svc)

	resp := getPortfolio(router)
	if resp.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", resp.Code)
	}
}
