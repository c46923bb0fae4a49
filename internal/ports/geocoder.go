package ports

import (
	"context"
	"errors"

	"visit-route-service/internal/domain"
)

// ErrGeocodingFailed reports that an address could not be resolved to a
// coordinate.
var ErrGeocodingFailed = errors.New("geocoding failed")

// Contract for resolving a street address to a coordinate. Consumed by the
// API layer for address-only points; the sequencing engine itself only ever
// sees coordinates.
type Geocoder interface {
	Geocode(ctx context.Context, address string) (domain.Coordinates, error)
}
