package ports

import (
	"context"
	"errors"

	"visit-route-service/internal/domain"
)

// ErrRouteNotFound reports that no saved route exists with the given id.
var ErrRouteNotFound = errors.New("route not found")

// Port: a boundary for persisting named routes. The sequencing engine is a
// pure computation stage between "selected points" and "saved route"; only
// the host surfaces go through this port.
type RouteRepository interface {
	// Persist a named route with its ordered point list and metrics.
	SaveRoute(ctx context.Context, route *domain.SavedRoute) error
	// Return all saved routes, most recent first.
	ListRoutes(ctx context.Context) ([]*domain.SavedRoute, error)
	// Delete a saved route, failing with ErrRouteNotFound if absent.
	DeleteRoute(ctx context.Context, id string) error
}
