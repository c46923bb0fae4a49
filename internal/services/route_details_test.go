package services

import (
	"context"
	"errors"
	"testing"

	"visit-route-service/internal/adapters/routing"
	"visit-route-service/internal/domain"
	"visit-route-service/internal/ports"
)

func TestCalculateRouteDetailsEmptyTour(t *testing.T) {
	start := domain.Coordinates{Lat: 34.0522, Lon: -118.2437}

	result, err := CalculateRouteDetails(context.Background(), start, domain.Tour{}, routing.HaversineLegProvider{}, ports.ModeWalking)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if result.TotalDistanceMeters != 0 || result.TotalDurationSeconds != 0 || len(result.Legs) != 0 {
		t.Fatalf("empty tour result = %+v, want all zeros", result)
	}
}

func TestCalculateRouteDetailsSinglePointIncludesDwell(t *testing.T) {
	start := domain.Coordinates{Lat: 34.0522, Lon: -118.2437}
	tour := domain.Tour{mustPoint(t, "only", 34.0430, -118.2517)}

	result, err := CalculateRouteDetails(context.Background(), start, tour, routing.HaversineLegProvider{}, ports.ModeWalking)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(result.Legs) != 1 {
		t.Fatalf("legs = %d, want 1", len(result.Legs))
	}
	// Travel time plus the 900s dwell; must strictly exceed the dwell alone.
	if result.TotalDurationSeconds <= domain.DefaultDwellSeconds {
		t.Fatalf("duration = %d, want > %d", result.TotalDurationSeconds, domain.DefaultDwellSeconds)
	}
}

func TestCalculateRouteDetailsAggregatesLegs(t *testing.T) {
	start := domain.Coordinates{Lat: 0, Lon: 0}
	a := mustPoint(t, "a", 0, 1)
	b := mustPoint(t, "b", 0, 2)
	tour := domain.Tour{a, b}

	provider := routing.NewMockLegProvider([]routing.MockLeg{
		{From: start, To: a.Coord, Meters: 1000, Seconds: 300},
		{From: a.Coord, To: b.Coord, Meters: 800, Seconds: 240},
	})

	result, err := CalculateRouteDetails(context.Background(), start, tour, provider, ports.ModeWalking)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if result.TotalDistanceMeters != 1800 {
		t.Fatalf("distance = %d, want 1800", result.TotalDistanceMeters)
	}
	wantDuration := 300 + 240 + 2*domain.DefaultDwellSeconds
	if result.TotalDurationSeconds != wantDuration {
		t.Fatalf("duration = %d, want %d", result.TotalDurationSeconds, wantDuration)
	}
	if len(result.Legs) != 2 {
		t.Fatalf("legs = %d, want 2", len(result.Legs))
	}
	if result.Legs[0].DistanceMeters != 1000 || result.Legs[1].DistanceMeters != 800 {
		t.Fatalf("leg distances = %d, %d, want 1000, 800", result.Legs[0].DistanceMeters, result.Legs[1].DistanceMeters)
	}
}

func TestCalculateRouteDetailsAbortsOnFirstFailedLeg(t *testing.T) {
	start := domain.Coordinates{Lat: 0, Lon: 0}
	a := mustPoint(t, "a", 0, 1)
	b := mustPoint(t, "b", 0, 2)
	tour := domain.Tour{a, b}

	// Second leg missing from the table: the calculation must abort with
	// NoRouteFound and publish nothing.
	provider := routing.NewMockLegProvider([]routing.MockLeg{
		{From: start, To: a.Coord, Meters: 1000, Seconds: 300},
	})

	result, err := CalculateRouteDetails(context.Background(), start, tour, provider, ports.ModeWalking)
	if !errors.Is(err, ports.ErrNoRouteFound) {
		t.Fatalf("err = %v, want ErrNoRouteFound", err)
	}
	if result != nil {
		t.Fatalf("partial result published: %+v", result)
	}
}

func TestCalculateRouteDetailsRespectsCancellation(t *testing.T) {
	start := domain.Coordinates{Lat: 0, Lon: 0}
	tour := domain.Tour{mustPoint(t, "a", 0, 1)}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	result, err := CalculateRouteDetails(ctx, start, tour, routing.HaversineLegProvider{}, ports.ModeWalking)
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("err = %v, want context.Canceled", err)
	}
	if result != nil {
		t.Fatalf("result published after cancellation: %+v", result)
	}
}
