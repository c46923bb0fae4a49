package ports

import (
	"context"
	"errors"

	"visit-route-service/internal/domain"
)

// TravelMode selects the routing profile used to resolve legs.
type TravelMode string

const (
	ModeWalking TravelMode = "walking"
	ModeDriving TravelMode = "driving"
)

// ErrNoRouteFound reports that the routing provider could not resolve a leg
// between two coordinates. The first unresolvable leg aborts the whole
// detail calculation.
var ErrNoRouteFound = errors.New("no route found")

// Real-world metrics for a single resolved leg.
type LegResult struct {
	DistanceMeters  int
	DurationSeconds int
}

// Contract for resolving one leg through an external routing service.
type LegProvider interface {
	// Return travel distance and duration between two coordinates for the
	// given travel mode, or fail with ErrNoRouteFound.
	GetLeg(ctx context.Context, origin, destination domain.Coordinates, mode TravelMode) (LegResult, error)
}
