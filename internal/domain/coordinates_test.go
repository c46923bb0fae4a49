package domain

import (
	"errors"
	"math"
	"testing"
)

func TestNewCoordinatesRejectsOutOfRange(t *testing.T) {
	cases := []struct {
		name string
		lat  float64
		lon  float64
	}{
		{"lat too low", -90.5, 0},
		{"lat too high", 91, 0},
		{"lon too low", 0, -181},
		{"lon too high", 0, 180.01},
		{"lat NaN", math.NaN(), 0},
		{"lon NaN", 0, math.NaN()},
	}

	for _, tc := range cases {
		if _, err := NewCoordinates(tc.lat, tc.lon); !errors.Is(err, ErrInvalidCoordinate) {
			t.Errorf("%s: err = %v, want ErrInvalidCoordinate", tc.name, err)
		}
	}

	if _, err := NewCoordinates(34.0522, -118.2437); err != nil {
		t.Fatalf("valid coordinate rejected: %v", err)
	}
}

func TestHaversineSymmetricAndZero(t *testing.T) {
	a := Coordinates{Lat: 34.0522, Lon: -118.2437}
	b := Coordinates{Lat: 34.1022, Lon: -118.3351}

	ab := Haversine(a, b)
	ba := Haversine(b, a)

	if ab <= 0 {
		t.Fatalf("distance = %v, want > 0", ab)
	}
	if math.Abs(ab-ba) > 1e-9 {
		t.Fatalf("asymmetric: a->b = %v, b->a = %v", ab, ba)
	}
	if d := Haversine(a, a); d != 0 {
		t.Fatalf("self distance = %v, want 0", d)
	}
}

func TestHaversineKnownDistance(t *testing.T) {
	// Downtown LA to Santa Monica, roughly 23 km as the crow flies.
	a := Coordinates{Lat: 34.0522, Lon: -118.2437}
	b := Coordinates{Lat: 34.0195, Lon: -118.4912}

	d := Haversine(a, b)
	if d < 22000 || d > 24000 {
		t.Fatalf("distance = %v, want within [22000, 24000]", d)
	}
}

func TestHaversineDegenerateInputsFinite(t *testing.T) {
	cases := []struct {
		name string
		a, b Coordinates
	}{
		{"identical", Coordinates{Lat: 10, Lon: 10}, Coordinates{Lat: 10, Lon: 10}},
		{"antipodal", Coordinates{Lat: 0, Lon: 0}, Coordinates{Lat: 0, Lon: 180}},
		{"near antipodal", Coordinates{Lat: 0.0000001, Lon: 0}, Coordinates{Lat: 0, Lon: 180}},
		{"poles", Coordinates{Lat: 90, Lon: 0}, Coordinates{Lat: -90, Lon: 0}},
	}

	for _, tc := range cases {
		d := Haversine(tc.a, tc.b)
		if math.IsNaN(d) || math.IsInf(d, 0) || d < 0 {
			t.Errorf("%s: distance = %v, want finite non-negative", tc.name, d)
		}
	}
}

func TestNewPointDefaultsAndValidation(t *testing.T) {
	p, err := NewPoint("apt-1", "Loft", "123 Main St", 34.05, -118.24, "", 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.DwellSeconds != DefaultDwellSeconds {
		t.Fatalf("dwell = %d, want %d", p.DwellSeconds, DefaultDwellSeconds)
	}

	if _, err := NewPoint("apt-2", "", "", 120, 0, "", 0); !errors.Is(err, ErrInvalidCoordinate) {
		t.Fatalf("err = %v, want ErrInvalidCoordinate", err)
	}

	if _, err := NewPoint("  ", "", "", 0, 0, "", 0); err == nil {
		t.Fatal("expected error for blank id")
	}
}
