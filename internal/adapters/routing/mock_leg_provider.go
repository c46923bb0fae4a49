package routing

import (
	"context"
	"fmt"

	"visit-route-service/internal/domain"
	"visit-route-service/internal/ports"
)

type MockLeg struct {
	From, To domain.Coordinates
	Meters   int
	Seconds  int
}

// MockLegProvider resolves legs from a fixed table. Missing pairs fail with
// ErrNoRouteFound, which makes it useful for exercising abort semantics.
type MockLegProvider struct {
	m map[string]ports.LegResult
}

func NewMockLegProvider(legs []MockLeg) *MockLegProvider {
	m := make(map[string]ports.LegResult, len(legs))
	for _, l := range legs {
		m[pairKey(l.From, l.To)] = ports.LegResult{DistanceMeters: l.Meters, DurationSeconds: l.Seconds}
	}
	return &MockLegProvider{m: m}
}

func (p *MockLegProvider) GetLeg(ctx context.Context, origin, destination domain.Coordinates, mode ports.TravelMode) (ports.LegResult, error) {
	r, ok := p.m[pairKey(origin, destination)]
	if !ok {
		return ports.LegResult{}, fmt.Errorf("mock leg %s -> %s: %w", coordKey(origin), coordKey(destination), ports.ErrNoRouteFound)
	}

	return r, nil
}

func pairKey(a, b domain.Coordinates) string {
	return coordKey(a) + "|" + coordKey(b)
}

// coordKey rounds to ~0.1m so float noise does not split cache entries.
func coordKey(c domain.Coordinates) string {
	return fmt.Sprintf("%.6f,%.6f", c.Lat, c.Lon)
}
