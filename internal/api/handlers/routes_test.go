package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"visit-route-service/internal/api/dto"
	"visit-route-service/internal/domain"
	"visit-route-service/internal/ports"
)

// memoryRouteRepository keeps saved routes in insertion order, newest first
// on list, mirroring the persistence contract without a database.
type memoryRouteRepository struct {
	routes []*domain.SavedRoute
}

func (m *memoryRouteRepository) SaveRoute(_ context.Context, route *domain.SavedRoute) error {
	if route.ID == "" {
		route.ID = "route-" + time.Now().Format("150405.000000000")
	}
	if route.CreatedAt.IsZero() {
		route.CreatedAt = time.Now().UTC()
	}
	m.routes = append([]*domain.SavedRoute{route}, m.routes...)
	return nil
}

func (m *memoryRouteRepository) ListRoutes(context.Context) ([]*domain.SavedRoute, error) {
	return m.routes, nil
}

func (m *memoryRouteRepository) DeleteRoute(_ context.Context, id string) error {
	for i, r := range m.routes {
		if r.ID == id {
			m.routes = append(m.routes[:i], m.routes[i+1:]...)
			return nil
		}
	}
	return ports.ErrRouteNotFound
}

func TestSaveAndListRoutes(t *testing.T) {
	h := &RouteHandler{Repo: &memoryRouteRepository{}}

	body := `{
		"name": "saturday errands",
		"points": [
			{"id": "a", "name": "Bakery", "lat": 34.05, "lon": -118.24},
			{"id": "b", "name": "Library", "lat": 34.06, "lon": -118.25}
		],
		"total_distance_meters": 1500,
		"total_duration_seconds": 3600
	}`

	req := httptest.NewRequest(http.MethodPost, "/routes", strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.Collection(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("save status = %d, want 201, body: %s", rec.Code, rec.Body.String())
	}

	var saved dto.SavedRouteResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &saved); err != nil {
		t.Fatalf("decode save response: %v", err)
	}
	if saved.ID == "" {
		t.Error("saved route must be assigned an id")
	}
	if saved.Name != "saturday errands" {
		t.Errorf("name = %q, want %q", saved.Name, "saturday errands")
	}

	req = httptest.NewRequest(http.MethodGet, "/routes", nil)
	rec = httptest.NewRecorder()
	h.Collection(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("list status = %d, want 200", rec.Code)
	}

	var list dto.ListRoutesResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &list); err != nil {
		t.Fatalf("decode list response: %v", err)
	}
	if len(list.Routes) != 1 {
		t.Fatalf("got %d routes, want 1", len(list.Routes))
	}
	if len(list.Routes[0].Stops) != 2 {
		t.Errorf("got %d stops, want 2", len(list.Routes[0].Stops))
	}
}

func TestSaveRouteRejectsInvalidInput(t *testing.T) {
	h := &RouteHandler{Repo: &memoryRouteRepository{}}

	cases := []struct {
		name string
		body string
	}{
		{"missing name", `{"points": [{"id": "a", "lat": 1, "lon": 2}]}`},
		{"no points", `{"name": "empty", "points": []}`},
		{"point without coordinates", `{"name": "bad", "points": [{"id": "a", "address": "1 Main St"}]}`},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/routes", strings.NewReader(tc.body))
			rec := httptest.NewRecorder()
			h.Collection(rec, req)
			if rec.Code != http.StatusBadRequest {
				t.Errorf("status = %d, want 400, body: %s", rec.Code, rec.Body.String())
			}
		})
	}
}

func TestDeleteRoute(t *testing.T) {
	repo := &memoryRouteRepository{}
	repo.routes = append(repo.routes, &domain.SavedRoute{ID: "r1", Name: "old"})
	h := &RouteHandler{Repo: repo}

	req := httptest.NewRequest(http.MethodDelete, "/routes/r1", nil)
	rec := httptest.NewRecorder()
	h.Delete(rec, req)

	if rec.Code != http.StatusNoContent {
		t.Fatalf("status = %d, want 204", rec.Code)
	}
	if len(repo.routes) != 0 {
		t.Error("route should have been removed")
	}
}

func TestDeleteRouteNotFound(t *testing.T) {
	h := &RouteHandler{Repo: &memoryRouteRepository{}}

	req := httptest.NewRequest(http.MethodDelete, "/routes/missing", nil)
	rec := httptest.NewRecorder()
	h.Delete(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", rec.Code)
	}
}
