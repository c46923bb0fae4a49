package routing

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"visit-route-service/internal/domain"
	"visit-route-service/internal/ports"
)

func mustCoord(t *testing.T, lat, lon float64) domain.Coordinates {
	t.Helper()
	c, err := domain.NewCoordinates(lat, lon)
	if err != nil {
		t.Fatalf("NewCoordinates(%v, %v) failed: %v", lat, lon, err)
	}
	return c
}

func newTestLegProvider(t *testing.T, srv *httptest.Server) *ORSLegProvider {
	t.Helper()
	p, err := NewORSLegProvider("test-key", nil)
	if err != nil {
		t.Fatalf("NewORSLegProvider failed: %v", err)
	}
	p.baseURL = srv.URL
	p.session = srv.Client()
	return p
}

func TestORSLegProviderParsesSummary(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("method = %s, want POST", r.Method)
		}
		if r.URL.Path != "/v2/directions/foot-walking" {
			t.Errorf("path = %s, want /v2/directions/foot-walking", r.URL.Path)
		}
		if got := r.Header.Get("Authorization"); got != "test-key" {
			t.Errorf("Authorization = %q, want test-key", got)
		}

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"routes":[{"summary":{"distance":1820.4,"duration":1311.6}}]}`))
	}))
	defer srv.Close()

	p := newTestLegProvider(t, srv)

	got, err := p.GetLeg(context.Background(),
		mustCoord(t, 34.05, -118.24), mustCoord(t, 34.06, -118.30), ports.ModeWalking)
	if err != nil {
		t.Fatalf("GetLeg failed: %v", err)
	}

	if got.DistanceMeters != 1820 {
		t.Errorf("DistanceMeters = %d, want 1820", got.DistanceMeters)
	}
	if got.DurationSeconds != 1312 {
		t.Errorf("DurationSeconds = %d, want 1312", got.DurationSeconds)
	}
}

func TestORSLegProviderNotFoundMapsToNoRoute(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":{"code":2010,"message":"Could not find routable point"}}`, http.StatusNotFound)
	}))
	defer srv.Close()

	p := newTestLegProvider(t, srv)

	_, err := p.GetLeg(context.Background(),
		mustCoord(t, 34.05, -118.24), mustCoord(t, 0, 0), ports.ModeDriving)
	if !errors.Is(err, ports.ErrNoRouteFound) {
		t.Fatalf("err = %v, want ErrNoRouteFound", err)
	}
}

func TestORSLegProviderEmptyRoutesMapsToNoRoute(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"routes":[]}`))
	}))
	defer srv.Close()

	p := newTestLegProvider(t, srv)

	_, err := p.GetLeg(context.Background(),
		mustCoord(t, 34.05, -118.24), mustCoord(t, 34.06, -118.30), ports.ModeWalking)
	if !errors.Is(err, ports.ErrNoRouteFound) {
		t.Fatalf("err = %v, want ErrNoRouteFound", err)
	}
}

func TestORSLegProviderRejectsUnknownMode(t *testing.T) {
	p, err := NewORSLegProvider("test-key", nil)
	if err != nil {
		t.Fatalf("NewORSLegProvider failed: %v", err)
	}

	_, err = p.GetLeg(context.Background(),
		mustCoord(t, 34.05, -118.24), mustCoord(t, 34.06, -118.30), ports.TravelMode("cycling"))
	if err == nil {
		t.Fatal("expected error for unknown travel mode")
	}
}
