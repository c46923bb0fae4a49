package routing

import (
	"context"
	"fmt"
	"math"

	"visit-route-service/internal/domain"
	"visit-route-service/internal/ports"
)

// Assumed average speeds for the offline estimator, meters per second.
const (
	walkingSpeed = 1.4
	drivingSpeed = 11.0
)

// HaversineLegProvider estimates legs from great-circle distance and a fixed
// per-mode speed. It makes no external calls, which makes it the default for
// local development and a convenient test double for pipeline-level tests.
// Estimates are optimistic: real road networks are never shorter than the
// crow flies.
type HaversineLegProvider struct{}

func (HaversineLegProvider) GetLeg(ctx context.Context, origin, destination domain.Coordinates, mode ports.TravelMode) (ports.LegResult, error) {
	if err := ctx.Err(); err != nil {
		return ports.LegResult{}, err
	}

	speed := walkingSpeed
	switch mode {
	case ports.ModeWalking:
	case ports.ModeDriving:
		speed = drivingSpeed
	default:
		return ports.LegResult{}, fmt.Errorf("haversine leg provider: unknown travel mode %q", mode)
	}

	meters := domain.Haversine(origin, destination)

	return ports.LegResult{
		DistanceMeters:  int(math.Round(meters)),
		DurationSeconds: int(math.Round(meters / speed)),
	}, nil
}
