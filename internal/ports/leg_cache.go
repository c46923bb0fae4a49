package ports

import (
	"context"

	"visit-route-service/internal/domain"
)

// LegCache caches resolved leg metrics so repeated optimizations over the
// same selection do not re-query the routing provider.
type LegCache interface {
	// Return the cached result and whether it was present.
	GetLeg(ctx context.Context, origin, destination domain.Coordinates, mode TravelMode) (LegResult, bool, error)
	// Store a resolved leg result.
	PutLeg(ctx context.Context, origin, destination domain.Coordinates, mode TravelMode, result LegResult) error
}
