package controllers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"

	menusvc "github.com/seorin-lab/resto-backoffice/internal/menu"
	"github.com/seorin-lab/resto-backoffice/pkg/db/models"
	pkgerrors "github.com/seorin-lab/resto-backoffice/pkg/errors"
)

type stubMenuService struct {
	created   *menusvc.CreateInput
	setActive *bool
	err       error
}

func (s *stubMenuService) List(context.Context, bool) ([]models.MenuItem, error) {
	return []models.MenuItem{}, s.err
}

func (s *stubMenuService) Get(context.Context, int64) (*models.MenuItem, error) {
	if s.err != nil {
		return nil, s.err
	}
	return &models.MenuItem{ID: 1, Name: "Margherita", Price: 10, Active: true}, nil
}

func (s *stubMenuService) Create(_ context.Context, input menusvc.CreateInput) (int64, error) {
	s.created = &input
	return 7, s.err
}

func (s *stubMenuService) Update(context.Context, int64, menusvc.UpdateInput) error {
	return s.err
}

func (s *stubMenuService) SetActive(_ context.Context, _ int64, active bool) error {
	s.setActive = &active
	return s.err
}

func (s *stubMenuService) ListRecipes(context.Context, int64) ([]models.Recipe, error) {
	return []models.Recipe{}, s.err
}

func (s *stubMenuService) AddRecipe(context.Context, int64, menusvc.RecipeInput) (int64, error) {
	return 3, s.err
}

func (s *stubMenuService) DeleteRecipe(context.Context, int64) error {
	return s.err
}

func withPathID(req *http.Request, key, value string) *http.Request {
	routeCtx := chi.NewRouteContext()
	routeCtx.URLParams.Add(key, value)
	return req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, routeCtx))
}

func TestCreateMenuItem(t *testing.T) {
	logg := testLogger()

	t.Run("success", func(t *testing.T) {
		stub := &stubMenuService{}
		body := `{"name":"Margherita","category":"main","price":10.5}`
		req := httptest.NewRequest(http.MethodPost, "/api/v1/menu", strings.NewReader(body))
		rec := httptest.NewRecorder()

		CreateMenuItem(stub, logg).ServeHTTP(rec, req)

		if rec.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
		}
		if stub.created == nil || stub.created.Name != "Margherita" {
			t.Fatalf("unexpected forwarded input %+v", stub.created)
		}
	})

	t.Run("zero price rejected before the service", func(t *testing.T) {
		stub := &stubMenuService{}
		body := `{"name":"Margherita","price":0}`
		req := httptest.NewRequest(http.MethodPost, "/api/v1/menu", strings.NewReader(body))
		rec := httptest.NewRecorder()

		CreateMenuItem(stub, logg).ServeHTTP(rec, req)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
		if stub.created != nil {
			t.Fatalf("service should not have been called")
		}
	})
}

func TestSetMenuItemActive(t *testing.T) {
	logg := testLogger()

	t.Run("deactivate", func(t *testing.T) {
		stub := &stubMenuService{}
		req := httptest.NewRequest(http.MethodPatch, "/api/v1/menu/1/active", strings.NewReader(`{"active":false}`))
		req = withPathID(req, "id", "1")
		rec := httptest.NewRecorder()

		SetMenuItemActive(stub, logg).ServeHTTP(rec, req)

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}
		if stub.setActive == nil || *stub.setActive {
			t.Fatalf("expected active=false forwarded, got %+v", stub.setActive)
		}
	})

	t.Run("missing body field", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPatch, "/api/v1/menu/1/active", strings.NewReader(`{}`))
		req = withPathID(req, "id", "1")
		rec := httptest.NewRecorder()

		SetMenuItemActive(&stubMenuService{}, logg).ServeHTTP(rec, req)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})

	t.Run("invalid id", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPatch, "/api/v1/menu/zero/active", strings.NewReader(`{"active":true}`))
		req = withPathID(req, "id", "zero")
		rec := httptest.NewRecorder()

		SetMenuItemActive(&stubMenuService{}, logg).ServeHTTP(rec, req)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})

	t.Run("missing item maps to 404", func(t *testing.T) {
		stub := &stubMenuService{err: pkgerrors.New(pkgerrors.CodeNotFound, "menu item not found")}
		req := httptest.NewRequest(http.MethodPatch, "/api/v1/menu/99/active", strings.NewReader(`{"active":true}`))
		req = withPathID(req, "id", "99")
		rec := httptest.NewRecorder()

		SetMenuItemActive(stub, logg).ServeHTTP(rec, req)

		if rec.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", rec.Code)
		}
	})
}
